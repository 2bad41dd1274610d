package report

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// DefaultWidth is used when Options.Width is not set.
const DefaultWidth = 72

const (
	minWidth   = 40
	bandWidth  = 12 // "  Needs Work"
	labelWidth = 22
)

// Options controls text rendering.
type Options struct {
	NoColor bool
	Width   int
}

type renderer struct {
	plain bool
	width int
}

func (r renderer) style(s lipgloss.Style) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return s
}

func (r renderer) fg(c color.Color) lipgloss.Style {
	if r.plain {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// RenderText writes a styled, human-readable report.
func RenderText(w io.Writer, doc Document, opts Options) error {
	r := renderer{plain: opts.NoColor, width: opts.Width}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.width < minWidth {
		r.width = minWidth
	}
	res := doc.Result

	var b strings.Builder

	// Title.
	b.WriteString(r.style(theme.Title).Render("Process Optimization Consultant Assessment"))
	b.WriteString("\n")
	b.WriteString(r.style(theme.Subtitle).Render(fmt.Sprintf("Report %s, generated %s",
		doc.ID, doc.GeneratedAt.Format("2006-01-02 15:04 MST"))))
	b.WriteString("\n\n")

	// Recommendation.
	headline := r.fg(recommendationColor(res.Recommendation)).Bold(!r.plain).
		Render(res.Recommendation.Headline())
	summary := r.style(theme.Body).Width(r.width - 6).Render(res.Recommendation.Summary())
	b.WriteString(r.style(theme.Card).Render(headline + "\n" + summary))
	b.WriteString("\n\n")

	b.WriteString(r.scoreLine("Overall confidence", res.OverallConfidence))
	b.WriteString("\n\n")

	// Section scores.
	r.heading(&b, "Scores")
	b.WriteString(r.scoreLine("Psychological Fit", res.PsychometricScore))
	b.WriteString("\n")
	b.WriteString(r.scoreLine("Technical Readiness", res.TechnicalScore))
	b.WriteString("\n\n")

	r.heading(&b, catalog.SectionTitle(catalog.SectionWISCAR))
	for _, d := range catalog.AllDimensions() {
		b.WriteString(r.scoreLine(catalog.DimensionDisplayName(d), res.WISCARScores.Get(d)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Coverage.
	cov := doc.Coverage
	if cov.Total > 0 {
		line := fmt.Sprintf("Answered %d of %d questions", cov.Answered, cov.Total)
		if cov.Ignored > 0 {
			line += fmt.Sprintf(", ignored %d unknown", cov.Ignored)
		}
		b.WriteString(r.style(theme.Hint).Render(line))
		b.WriteString("\n\n")
	}

	r.list(&b, "Strengths", res.Strengths, func(int) string { return "+ " }, theme.Success)
	r.list(&b, "Areas to develop", res.Weaknesses, func(int) string { return "- " }, theme.Warning)
	r.list(&b, "Career roles", res.CareerRoles, func(int) string { return "* " }, theme.Secondary)
	r.list(&b, "Next steps", res.NextSteps, func(i int) string { return fmt.Sprintf("%d. ", i+1) }, theme.Primary)

	// Learning path.
	r.heading(&b, "Learning path")
	stages := []struct {
		name  string
		items []string
	}{
		{"Beginner", res.LearningPath.Beginner},
		{"Intermediate", res.LearningPath.Intermediate},
		{"Advanced", res.LearningPath.Advanced},
	}
	for _, st := range stages {
		b.WriteString(r.style(theme.Body).Bold(!r.plain).Render(st.name))
		b.WriteString("\n")
		for _, item := range st.items {
			b.WriteString("  " + r.fg(theme.TextDim).Render("* ") + r.style(theme.Body).Render(item))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (r renderer) heading(b *strings.Builder, title string) {
	b.WriteString(r.style(theme.Heading).Render(title))
	b.WriteString("\n")
	b.WriteString(r.fg(theme.Border).Render(strings.Repeat("─", min(r.width, 60))))
	b.WriteString("\n")
}

func (r renderer) list(b *strings.Builder, title string, items []string, marker func(int) string, c color.Color) {
	if len(items) == 0 {
		return
	}
	r.heading(b, title)
	for i, item := range items {
		b.WriteString("  " + r.fg(c).Render(marker(i)) + r.style(theme.Body).Render(item))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// scoreLine renders a labelled bar followed by the score band.
func (r renderer) scoreLine(label string, score int) string {
	band := scoring.Band(score)
	bar := components.NewProgressBar(label, float64(score)/100, true, r.width-bandWidth)
	bar.LabelWidth = labelWidth
	bar.Plain = r.plain
	bar.Filled = r.fg(theme.ForBand(band))
	return bar.View() + "  " + r.fg(theme.ForBand(band)).Render(band)
}

func recommendationColor(rec scoring.Recommendation) color.Color {
	switch rec {
	case scoring.RecommendYes:
		return theme.Success
	case scoring.RecommendMaybe:
		return theme.Warning
	default:
		return theme.Error
	}
}
