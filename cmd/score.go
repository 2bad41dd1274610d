package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
)

func newScoreCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file|-]",
		Short: "Score a set of assessment responses",
		Long: "Reads a JSON array of {\"questionId\": ..., \"value\": ...} objects from a file,\n" +
			"or from stdin when the argument is \"-\". Answers given with --answer are\n" +
			"applied after the file, so they replace earlier answers to the same question.",
		Example: "  careerfit score responses.json\n" +
			"  careerfit score --answer psych_1=5 --answer \"tech_1=Step C (7 minutes)\"\n" +
			"  cat responses.json | careerfit score - --format json",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, _ := cmd.Flags().GetStringArray("answer")
			if len(args) == 0 && len(answers) == 0 {
				return errors.New("no responses: pass a file, - for stdin, or --answer id=value")
			}

			c, err := opts.catalog()
			if err != nil {
				return err
			}

			var responses []scoring.Response
			if len(args) == 1 {
				data, err := readInput(cmd.InOrStdin(), args[0])
				if err != nil {
					return err
				}
				responses, err = scoring.DecodeResponses(data)
				if err != nil {
					return fmt.Errorf("responses %s: %w", args[0], err)
				}
			}
			for _, a := range answers {
				r, err := parseAnswerFlag(c, a)
				if err != nil {
					return err
				}
				responses = append(responses, r)
			}

			res := scoring.New(c, scoring.WithLogger(opts.log)).Score(responses)
			cov := scoring.CoverageOf(c, responses)
			if cov.Ignored > 0 {
				opts.log.Warn("responses reference unknown questions", zap.Int("ignored", cov.Ignored))
			}

			doc := report.New(res, cov)
			out := cmd.OutOrStdout()
			if opts.cfg.Format == config.FormatJSON {
				return report.RenderJSON(out, doc)
			}
			return report.RenderText(out, doc, report.Options{NoColor: opts.cfg.NoColor})
		},
	}

	cmd.Flags().StringArrayP("answer", "a", nil, "Answer a question as questionId=value (repeatable)")
	cmd.Flags().String("format", config.FormatText, "Output format: text or json")
	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read responses from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	return data, nil
}

// parseAnswerFlag splits questionId=value. Multiple-choice answers are
// always option text, even when the option looks like a number.
func parseAnswerFlag(c *catalog.Catalog, s string) (scoring.Response, error) {
	id, value, ok := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return scoring.Response{}, fmt.Errorf("invalid --answer %q: want questionId=value", s)
	}
	if q, found := c.Question(id); found && q.Type == catalog.TypeMultipleChoice {
		return scoring.Response{QuestionID: id, Value: scoring.Text(value)}, nil
	}
	return scoring.Response{QuestionID: id, Value: scoring.ParseAnswer(value)}, nil
}
