package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/careerfit/internal/schema"
)

// ErrInvalidResponses is wrapped by every DecodeResponses failure.
var ErrInvalidResponses = errors.New("invalid responses")

// Answer is the value given to a question: a number for likert questions or
// the exact option text for multiple-choice questions.
type Answer struct {
	number float64
	text   string
	isText bool
}

// Number returns a numeric answer.
func Number(v float64) Answer {
	return Answer{number: v}
}

// Text returns a textual answer.
func Text(s string) Answer {
	return Answer{text: s, isText: true}
}

// ParseAnswer turns command-line input into an Answer: anything that parses
// as a finite number is numeric, everything else is text.
func ParseAnswer(s string) Answer {
	if v, ok := parseFinite(s); ok {
		return Number(v)
	}
	return Text(s)
}

// parseFinite parses s as a number, rejecting NaN and infinities.
func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// IsText reports whether the answer was given as text.
func (a Answer) IsText() bool { return a.isText }

// Value returns the numeric value of the answer. Text is parsed leniently;
// text that is not a finite number yields (0, false).
func (a Answer) Value() (float64, bool) {
	if !a.isText {
		if math.IsNaN(a.number) || math.IsInf(a.number, 0) {
			return 0, false
		}
		return a.number, true
	}
	return parseFinite(a.text)
}

func (a Answer) String() string {
	if a.isText {
		return a.text
	}
	return strconv.FormatFloat(a.number, 'f', -1, 64)
}

// MarshalJSON encodes the answer as a JSON number or string.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isText {
		return json.Marshal(a.text)
	}
	return json.Marshal(a.number)
}

// UnmarshalJSON accepts a JSON number or string.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("answer must be a number or a string: %s", data)
	}
	*a = Number(f)
	return nil
}

// Response is one answered question.
type Response struct {
	QuestionID string `json:"questionId"`
	Value      Answer `json:"value"`
}

// ResponsesSchema describes the response document: a JSON array of
// {questionId, value} objects.
var ResponsesSchema = &schema.Schema{
	Name: "responses",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionId": map[string]any{"type": "string", "minLength": 1},
				"value":      map[string]any{"type": []any{"string", "number"}},
			},
			"required":             []any{"questionId", "value"},
			"additionalProperties": false,
		},
	},
}

// DecodeResponses validates and decodes a JSON response document.
func DecodeResponses(data []byte) ([]Response, error) {
	if err := schema.ValidateJSON(ResponsesSchema, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponses, err)
	}
	var out []Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponses, err)
	}
	return out, nil
}

// index collapses responses into a lookup, last write wins.
func index(responses []Response) map[string]Answer {
	m := make(map[string]Answer, len(responses))
	for _, r := range responses {
		m[r.QuestionID] = r.Value
	}
	return m
}
