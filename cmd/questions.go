package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/catalog"
)

func newQuestionsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the assessment questions (optionally filtered by section)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			section, _ := cmd.Flags().GetString("section")

			c, err := opts.catalog()
			if err != nil {
				return err
			}

			sections := catalog.AllSections()
			if section != "" {
				s := catalog.Section(section)
				if !isSection(s) {
					return fmt.Errorf("unknown section %q (want psychometric, technical or wiscar)", section)
				}
				sections = []catalog.Section{s}
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, s := range sections {
				questions := c.BySection(s)
				if len(questions) == 0 {
					continue
				}
				fmt.Fprintln(out, catalog.SectionTitle(s))
				fmt.Fprintln(out, strings.Repeat("─", 60))
				if d := catalog.SectionDescription(s); d != "" {
					fmt.Fprintf(out, "%s\n\n", d)
				}

				for _, q := range questions {
					fmt.Fprintf(out, "%-20s  %-18s  %s\n", q.ID, q.Category, q.Text)
					switch q.Type {
					case catalog.TypeLikert:
						fmt.Fprintf(out, "%22s%d (%s) to %d (%s)\n", "",
							q.Likert.Min, q.Likert.MinLabel, q.Likert.Max, q.Likert.MaxLabel)
					case catalog.TypeMultipleChoice:
						for i, opt := range q.Options {
							points, _ := c.Points(q.ID, i)
							fmt.Fprintf(out, "%22s- %s [%d]\n", "", opt, points)
						}
					}
				}
				fmt.Fprintln(out)
				total += len(questions)
			}

			fmt.Fprintf(out, "%d questions\n", total)
			return nil
		},
	}

	cmd.Flags().String("section", "", "Filter by section (psychometric, technical or wiscar)")
	return cmd
}

func isSection(s catalog.Section) bool {
	for _, known := range catalog.AllSections() {
		if s == known {
			return true
		}
	}
	return false
}
