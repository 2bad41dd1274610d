package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// SectionCoverage counts answered questions in one section.
type SectionCoverage struct {
	Section  catalog.Section `json:"section"`
	Answered int             `json:"answered"`
	Total    int             `json:"total"`
}

// Coverage reports how much of the catalog a response set answers.
type Coverage struct {
	Sections []SectionCoverage `json:"sections"`
	Answered int               `json:"answered"`
	Total    int               `json:"total"`
	// Ignored counts distinct question IDs that are not in the catalog.
	Ignored int `json:"ignored"`
}

// Complete reports whether every catalog question was answered.
func (c Coverage) Complete() bool {
	return c.Answered == c.Total
}

// CoverageOf counts answered questions per section. Duplicate responses to
// the same question count once.
func CoverageOf(c *catalog.Catalog, responses []Response) Coverage {
	answers := index(responses)

	var cov Coverage
	for _, s := range catalog.AllSections() {
		sc := SectionCoverage{Section: s}
		for _, q := range c.BySection(s) {
			sc.Total++
			if _, ok := answers[q.ID]; ok {
				sc.Answered++
			}
		}
		cov.Sections = append(cov.Sections, sc)
		cov.Answered += sc.Answered
		cov.Total += sc.Total
	}
	for id := range answers {
		if _, ok := c.Question(id); !ok {
			cov.Ignored++
		}
	}
	return cov
}
