package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
)

// run executes the CLI in isolation from the user's config and returns
// stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	orig := newLogger
	newLogger = func(level, format string) (*zap.Logger, error) {
		return zaptest.NewLogger(t), nil
	}
	t.Cleanup(func() { newLogger = orig })

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

type jsonReport struct {
	ID       string           `json:"id"`
	Result   scoring.Result   `json:"result"`
	Coverage scoring.Coverage `json:"coverage"`
}

func decodeReport(t *testing.T, out string) jsonReport {
	t.Helper()
	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	return rep
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "careerfit (devel)\n", out)
}

func TestScore_File(t *testing.T) {
	path := writeFile(t, "responses.json", `[
		{"questionId": "psych_1", "value": 5},
		{"questionId": "tech_1", "value": "Step C (7 minutes)"}
	]`)

	out, err := run(t, "", "score", path, "--format", "json")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, 100, rep.Result.PsychometricScore)
	assert.Equal(t, 100, rep.Result.TechnicalScore)
	assert.Equal(t, 2, rep.Coverage.Answered)
	assert.Equal(t, 24, rep.Coverage.Total)
}

func TestScore_Stdin(t *testing.T) {
	out, err := run(t, `[{"questionId": "tech_2", "value": "34%"}]`, "score", "-", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, 100, decodeReport(t, out).Result.TechnicalScore)
}

func TestScore_AnswerFlags(t *testing.T) {
	out, err := run(t, "",
		"score", "--format", "json",
		"--answer", "psych_1=4",
		"-a", "tech_2=20%",
		"-a", "wiscar_will_1=5",
	)
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, 80, rep.Result.PsychometricScore)
	assert.Equal(t, 20, rep.Result.TechnicalScore)
	assert.Equal(t, 100, rep.Result.WISCARScores.Will)
}

func TestScore_AnswerFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "responses.json", `[{"questionId": "psych_1", "value": 1}]`)

	out, err := run(t, "", "score", path, "--format", "json", "--answer", "psych_1=5")
	require.NoError(t, err)
	assert.Equal(t, 100, decodeReport(t, out).Result.PsychometricScore)
}

func TestScore_TextReport(t *testing.T) {
	out, err := run(t, "", "score", "--no-color", "-a", "psych_1=5")
	require.NoError(t, err)
	assert.Contains(t, out, "Process Optimization Consultant Assessment")
	assert.Contains(t, out, "Consider Alternatives")
	assert.NotContains(t, out, "\x1b[")
}

func TestScore_EnvFormat(t *testing.T) {
	t.Setenv("CAREERFIT_FORMAT", "json")
	out, err := run(t, "", "score", "-a", "psych_1=5")
	require.NoError(t, err)
	assert.Equal(t, 100, decodeReport(t, out).Result.PsychometricScore)
}

func TestScore_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "careerfit.yaml", "format: json\n")
	out, err := run(t, "", "--config", cfgPath, "score", "-a", "psych_1=5")
	require.NoError(t, err)
	decodeReport(t, out)
}

func TestScore_CustomCatalog(t *testing.T) {
	catPath := writeFile(t, "catalog.yaml", `
questions:
  - id: q1
    section: technical
    category: logic
    type: multiple-choice
    text: Pick one
    options:
      - text: "42"
        points: 5
      - "7"
`)
	out, err := run(t, "", "score", "--catalog", catPath, "--format", "json", "-a", "q1=42")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, 100, rep.Result.TechnicalScore)
	assert.Equal(t, 1, rep.Coverage.Total)
}

func TestScore_Errors(t *testing.T) {
	bad := writeFile(t, "bad.json", `{"questionId": "psych_1"}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"score"}, "no responses"},
		{"missing file", []string{"score", filepath.Join(t.TempDir(), "nope.json")}, "read responses"},
		{"bad answer flag", []string{"score", "-a", "psych_1"}, "invalid --answer"},
		{"empty answer id", []string{"score", "-a", "=3"}, "invalid --answer"},
		{"bad format", []string{"score", "-a", "psych_1=3", "--format", "xml"}, "invalid configuration"},
		{"bad catalog", []string{"score", "-a", "psych_1=3", "--catalog", filepath.Join(t.TempDir(), "nope.yaml")}, "read catalog"},
		{"too many args", []string{"score", "a.json", "b.json"}, "accepts at most 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := run(t, "", "score", bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scoring.ErrInvalidResponses))
}

func TestQuestions(t *testing.T) {
	out, err := run(t, "", "questions")
	require.NoError(t, err)
	assert.Contains(t, out, catalog.SectionTitle(catalog.SectionPsychometric))
	assert.Contains(t, out, catalog.SectionTitle(catalog.SectionWISCAR))
	assert.Contains(t, out, "- Step C (7 minutes) [5]")
	assert.True(t, strings.HasSuffix(out, "24 questions\n"), out)
}

func TestQuestions_Section(t *testing.T) {
	out, err := run(t, "", "questions", "--section", "technical")
	require.NoError(t, err)
	assert.NotContains(t, out, "psych_1")
	assert.Contains(t, out, "tech_6")
	assert.True(t, strings.HasSuffix(out, "6 questions\n"), out)
}

func TestQuestions_UnknownSection(t *testing.T) {
	_, err := run(t, "", "questions", "--section", "sales")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestParseAnswerFlag(t *testing.T) {
	c := catalog.Default()

	r, err := parseAnswerFlag(c, "psych_1= 4")
	require.NoError(t, err)
	assert.False(t, r.Value.IsText())

	r, err = parseAnswerFlag(c, "tech_2=20%")
	require.NoError(t, err)
	assert.True(t, r.Value.IsText())

	r, err = parseAnswerFlag(c, "unknown=x=y")
	require.NoError(t, err)
	assert.Equal(t, "unknown", r.QuestionID)
	assert.Equal(t, "x=y", r.Value.String())
}
