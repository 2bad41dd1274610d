package catalog

import (
	"strings"
	"testing"
)

func TestValidate_SeedCatalogPasses(t *testing.T) {
	if _, err := New(seedQuestions(), seedRules()); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func mc(id string, options ...string) Question {
	return Question{ID: id, Section: SectionTechnical, Category: "x", Type: TypeMultipleChoice, Options: options}
}

func TestValidate_DetectsDuplicateID(t *testing.T) {
	_, err := New([]Question{mc("a", "x"), mc("a", "y")}, nil)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), `duplicate question ID: "a"`) {
		t.Errorf("error should mention duplicate ID, got: %v", err)
	}
}

func TestValidate_DetectsUnknownSection(t *testing.T) {
	q := mc("a", "x")
	q.Section = "bogus"
	_, err := New([]Question{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown section") {
		t.Errorf("expected unknown section error, got: %v", err)
	}
}

func TestValidate_DetectsBadWISCARCategory(t *testing.T) {
	q := Question{ID: "w", Section: SectionWISCAR, Category: "grit", Type: TypeLikert, Likert: DefaultLikert()}
	_, err := New([]Question{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "six dimensions") {
		t.Errorf("expected dimension error, got: %v", err)
	}
}

func TestValidate_DetectsBadLikertRange(t *testing.T) {
	q := Question{ID: "l", Section: SectionPsychometric, Category: "x", Type: TypeLikert, Likert: LikertScale{Min: 5, Max: 5}}
	_, err := New([]Question{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "likert min must be below max") {
		t.Errorf("expected likert range error, got: %v", err)
	}
}

func TestValidate_DetectsChoiceWithoutOptions(t *testing.T) {
	_, err := New([]Question{mc("a")}, nil)
	if err == nil || !strings.Contains(err.Error(), "no options") {
		t.Errorf("expected no-options error, got: %v", err)
	}
}

func TestValidate_DetectsDuplicateOption(t *testing.T) {
	_, err := New([]Question{mc("a", "x", "x")}, nil)
	if err == nil || !strings.Contains(err.Error(), `duplicate option "x"`) {
		t.Errorf("expected duplicate option error, got: %v", err)
	}
}

func TestValidate_DetectsUnknownType(t *testing.T) {
	q := mc("a", "x")
	q.Type = "true-false"
	_, err := New([]Question{q}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown type") {
		t.Errorf("expected unknown type error, got: %v", err)
	}
}

func TestValidate_RuleProblems(t *testing.T) {
	likertQ := Question{ID: "l", Section: SectionPsychometric, Category: "x", Type: TypeLikert, Likert: DefaultLikert()}
	tests := []struct {
		name  string
		rules RuleSource
		want  string
	}{
		{"unknown question", RuleSource{"zzz": {"x": 1}}, `unknown question "zzz"`},
		{"likert question", RuleSource{"l": {"x": 1}}, `likert question "l"`},
		{"reworded option", RuleSource{"a": {"X ": 1}}, `has no option "X "`},
		{"points too high", RuleSource{"a": {"x": 6}}, "points must be in [0, 5]"},
		{"negative points", RuleSource{"a": {"x": -1}}, "got -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New([]Question{mc("a", "x"), likertQ}, tt.rules)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should contain %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	_, err := New([]Question{mc("a"), mc("a", "x", "x")}, RuleSource{"b": {"x": 1}})
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Problems) != 4 {
		t.Errorf("got %d problems, want 4: %v", len(ve.Problems), ve.Problems)
	}
}
