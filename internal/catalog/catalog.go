package catalog

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

type categoryKey struct {
	section  Section
	category string
}

// Catalog is an immutable question bank with precomputed indices and its
// resolved scoring rule table. It is safe for concurrent readers.
type Catalog struct {
	questions  []Question
	byID       map[string]*Question
	bySection  map[Section][]Question
	byCategory map[categoryKey][]Question
	rules      Rules
}

// New validates the questions and rules and builds a Catalog. Every problem
// found is reported in the returned error.
func New(questions []Question, src RuleSource) (*Catalog, error) {
	qs := cloneAll(questions)

	c := &Catalog{
		questions:  qs,
		byID:       make(map[string]*Question, len(qs)),
		bySection:  make(map[Section][]Question),
		byCategory: make(map[categoryKey][]Question),
	}

	errs := validateQuestions(qs)

	for i := range c.questions {
		q := &c.questions[i]
		if _, dup := c.byID[q.ID]; dup {
			continue
		}
		c.byID[q.ID] = q
		c.bySection[q.Section] = append(c.bySection[q.Section], *q)
		key := categoryKey{section: q.Section, category: q.Category}
		c.byCategory[key] = append(c.byCategory[key], *q)
	}

	c.rules, errs = resolveRules(src, c.byID, errs)

	if len(errs) > 0 {
		return nil, newValidationError(errs)
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in Process Optimization Consultant question bank.
// It panics if the seed data is invalid, which the package tests rule out.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(seedQuestions(), seedRules())
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid seed data: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Question returns a question by ID.
func (c *Catalog) Question(id string) (Question, bool) {
	q, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return q.clone(), true
}

// All returns every question in catalog order.
func (c *Catalog) All() []Question {
	return cloneAll(c.questions)
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// BySection returns the questions of a section in catalog order.
func (c *Catalog) BySection(s Section) []Question {
	return cloneAll(c.bySection[s])
}

// ByCategory returns the questions of a section carrying the given category tag.
func (c *Catalog) ByCategory(s Section, category string) []Question {
	return cloneAll(c.byCategory[categoryKey{section: s, category: category}])
}

// OptionIndex returns the position of text among the options of question id,
// or -1 when the question is unknown or has no such option.
func (c *Catalog) OptionIndex(id, text string) int {
	q, ok := c.byID[id]
	if !ok {
		return -1
	}
	return indexOf(q.Options, text)
}

// Points returns the rule-table score for an option and whether the table
// carries the pair at all.
func (c *Catalog) Points(id string, index int) (int, bool) {
	p, ok := c.rules[OptionKey{QuestionID: id, Index: index}]
	return p, ok
}

// Rules returns a copy of the resolved rule table.
func (c *Catalog) Rules() Rules {
	out := make(Rules, len(c.rules))
	for k, v := range c.rules {
		out[k] = v
	}
	return out
}

func (q Question) clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

func cloneAll(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q.clone()
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
