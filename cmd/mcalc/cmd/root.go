package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mCALC/foundation/core/error"
	mdwlog "github.com/msto63/mCALC/foundation/core/log"
	"github.com/msto63/mCALC/internal/evaluator"
	"github.com/msto63/mCALC/pkg/calculator"
	"github.com/msto63/mCALC/pkg/core/config"
	"github.com/msto63/mCALC/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// app holds what PersistentPreRunE builds for the subcommands
type app struct {
	config    *config.Config
	logConfig logging.LoggerConfig
	logger    *mdwlog.Logger
	evaluator *evaluator.Evaluator
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "mcalc",
	Short: "mCALC - Rechner für die Kommandozeile",
	Long: `mCALC ist ein Rechner mit Basis- und wissenschaftlichen Operationen.

Rechner:
  add, sub, mul, div          - Basis-Rechner (liefert Fehlertexte statt Abbruch)
  div --strict                - Division mit harten Fehlern
  sqrt, pow, log, ln          - Wissenschaftlicher Rechner
  sin, cos, tan               - Trigonometrie (Bogenmaß, Grad oder Gon)
  radians, round              - Hilfsfunktionen

Konfiguration wird aus --config, $MCALC_CONFIG, ./mcalc.toml, ./mcalc.yaml
oder ~/.config/mcalc/config.toml gelesen; MCALC_* Variablen überschreiben sie.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps err to the process exit status: 0 on success, 1 for
// calculation and unclassified errors, 2 for malformed input and 3 for
// configuration errors
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./mcalc.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output (Debug-Logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: text, json, console oder logfmt")
}

// setup discovers the configuration and builds logger and evaluator
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Discover(config.DiscoveryOptions{
		Explicit:   cfgFile,
		Candidates: config.DefaultCandidates(),
	})
	if err != nil {
		return mdwerror.Wrap(err, "failed to load configuration").
			WithCode(mdwerror.CodeConfigError)
	}

	lc := logging.FromConfig("mcalc", cfg.Log)
	lc.Verbose = verbose
	lc.Output = cmd.ErrOrStderr()
	if logFormat != "" {
		lc.Format = logFormat
	}
	logger, err := logging.NewLogger(lc)
	if err != nil {
		return err
	}

	ev, err := newEvaluator(cfg, logger)
	if err != nil {
		return err
	}

	if path := cfg.Path(); path != "" {
		logger.Debug("configuration loaded", mdwlog.Fields{"path": path})
	}

	current = &app{
		config:    cfg,
		logConfig: lc,
		logger:    logger,
		evaluator: ev,
	}
	return nil
}

// newEvaluator builds an evaluator with the calculator defaults of cfg
func newEvaluator(cfg *config.Config, logger *mdwlog.Logger) (*evaluator.Evaluator, error) {
	opts, err := cfg.CalculatorOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, calculator.WithLogger(logger))
	return evaluator.New(opts...), nil
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
