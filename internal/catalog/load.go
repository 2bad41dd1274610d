package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/careerfit/internal/schema"
)

type fileDocument struct {
	Questions []fileQuestion `yaml:"questions"`
}

type fileQuestion struct {
	ID       string       `yaml:"id"`
	Section  string       `yaml:"section"`
	Category string       `yaml:"category"`
	Text     string       `yaml:"text"`
	Type     string       `yaml:"type"`
	Likert   *fileLikert  `yaml:"likert"`
	Options  []fileOption `yaml:"options"`
}

type fileLikert struct {
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	MinLabel string `yaml:"minLabel"`
	MaxLabel string `yaml:"maxLabel"`
}

// fileOption is written either as a bare string (unscored) or as
// {text, points}.
type fileOption struct {
	Text   string
	Points *int
}

func (o *fileOption) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&o.Text)
	}
	var v struct {
		Text   string `yaml:"text"`
		Points *int   `yaml:"points"`
	}
	if err := node.Decode(&v); err != nil {
		return err
	}
	o.Text, o.Points = v.Text, v.Points
	return nil
}

// Load reads and builds a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from a YAML (or JSON) document. The document is
// checked against the catalog schema first, then structurally validated.
func Parse(data []byte) (*Catalog, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	if err := schema.ValidateValue(FileSchema, generic); err != nil {
		return nil, err
	}

	var file fileDocument
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	questions := make([]Question, 0, len(file.Questions))
	rules := make(RuleSource)
	for _, fq := range file.Questions {
		q := Question{
			ID:       fq.ID,
			Section:  Section(fq.Section),
			Category: fq.Category,
			Text:     fq.Text,
			Type:     Type(fq.Type),
		}
		if fq.Likert != nil {
			q.Likert = LikertScale(*fq.Likert)
		} else if q.Type == TypeLikert {
			q.Likert = DefaultLikert()
		}
		for _, o := range fq.Options {
			q.Options = append(q.Options, o.Text)
			if o.Points == nil {
				continue
			}
			if rules[q.ID] == nil {
				rules[q.ID] = make(map[string]int)
			}
			rules[q.ID][o.Text] = *o.Points
		}
		questions = append(questions, q)
	}

	return New(questions, rules)
}
