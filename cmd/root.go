package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/logging"
)

// newLogger is swapped out in tests.
var newLogger = logging.New

// options is the resolved state shared by all subcommands.
type options struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.DefaultConfig(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "careerfit",
		Short: "Career fit assessment for process optimization consultants",
		Long: "careerfit scores a self-assessment for the Process Optimization Consultant career path.\n" +
			"It reports psychometric, technical and WISCAR scores, an overall confidence,\n" +
			"a recommendation and a suggested learning path.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a config file (default: ./careerfit.yaml if present)")
	pf.String("catalog", "", "Path to a YAML question catalog (overrides CAREERFIT_CATALOG)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "console", "Log format: console or json")
	pf.Bool("no-color", false, "Disable colors in text output")

	root.AddCommand(newScoreCmd(opts))
	root.AddCommand(newQuestionsCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// load resolves configuration and builds the logger.
func (o *options) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.cfg = cfg
	o.log = log
	return nil
}

// catalog returns the configured catalog, or the built-in one.
func (o *options) catalog() (*catalog.Catalog, error) {
	if o.cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.Load(o.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	o.log.Info("loaded catalog", zap.String("path", o.cfg.Catalog), zap.Int("questions", c.Len()))
	return c, nil
}
