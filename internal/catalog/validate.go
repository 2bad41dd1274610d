package catalog

import (
	"fmt"
	"strings"
)

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func newValidationError(problems []string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateQuestions performs the per-question structural checks.
func validateQuestions(questions []Question) []string {
	var errs []string

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question at position %d has an empty ID", i))
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		switch q.Section {
		case SectionPsychometric, SectionTechnical:
		case SectionWISCAR:
			if !isDimension(q.Category) {
				errs = append(errs, fmt.Sprintf("question %q: wiscar category must be one of the six dimensions, got %q", q.ID, q.Category))
			}
		default:
			errs = append(errs, fmt.Sprintf("question %q: unknown section %q", q.ID, q.Section))
		}

		switch q.Type {
		case TypeLikert:
			if q.Likert.Min >= q.Likert.Max {
				errs = append(errs, fmt.Sprintf("question %q: likert min must be below max, got %d..%d", q.ID, q.Likert.Min, q.Likert.Max))
			}
		case TypeMultipleChoice:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %q: multiple-choice question has no options", q.ID))
			}
			opts := make(map[string]bool, len(q.Options))
			for _, o := range q.Options {
				if opts[o] {
					errs = append(errs, fmt.Sprintf("question %q: duplicate option %q", q.ID, o))
				}
				opts[o] = true
			}
		default:
			errs = append(errs, fmt.Sprintf("question %q: unknown type %q", q.ID, q.Type))
		}
	}

	return errs
}
