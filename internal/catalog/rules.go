package catalog

import "fmt"

// OptionKey addresses one option of one multiple-choice question.
type OptionKey struct {
	QuestionID string
	Index      int
}

// RuleSource is the authored form of a scoring rule table: question id to
// option text to points. It is resolved to option indices when a Catalog is
// built, so wording drift between questions and rules fails loudly.
type RuleSource map[string]map[string]int

// Rules is the resolved scoring rule table. Pairs absent from it score 0.
type Rules map[OptionKey]int

// resolveRules converts authored rules into index-keyed rules. Problems are
// appended to errs rather than returned so validation can report them all.
func resolveRules(src RuleSource, byID map[string]*Question, errs []string) (Rules, []string) {
	rules := make(Rules)
	for _, qid := range sortedKeys(src) {
		q, ok := byID[qid]
		if !ok {
			errs = append(errs, fmt.Sprintf("scoring rules reference unknown question %q", qid))
			continue
		}
		if q.Type != TypeMultipleChoice {
			errs = append(errs, fmt.Sprintf("scoring rules reference %s question %q", q.Type, qid))
			continue
		}
		for _, text := range sortedKeys(src[qid]) {
			points := src[qid][text]
			idx := indexOf(q.Options, text)
			if idx < 0 {
				errs = append(errs, fmt.Sprintf("question %q has no option %q", qid, text))
				continue
			}
			if points < 0 || points > MaxChoicePoints {
				errs = append(errs, fmt.Sprintf("question %q option %q: points must be in [0, %d], got %d", qid, text, MaxChoicePoints, points))
				continue
			}
			rules[OptionKey{QuestionID: qid, Index: idx}] = points
		}
	}
	return rules, errs
}

func indexOf(options []string, text string) int {
	for i, o := range options {
		if o == text {
			return i
		}
	}
	return -1
}
