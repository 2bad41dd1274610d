// Package report wraps a scored assessment in a document and renders it as
// a terminal report or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerfit/internal/scoring"
)

// Document is one rendered assessment.
type Document struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Result      scoring.Result   `json:"result"`
	Coverage    scoring.Coverage `json:"coverage"`
}

// New stamps a result with a fresh ID and the current time.
func New(res scoring.Result, cov scoring.Coverage) Document {
	return Document{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Result:      res,
		Coverage:    cov,
	}
}

// RenderJSON writes the document as indented JSON.
func RenderJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
