package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/mCALC/foundation/core/log"
	"github.com/msto63/mCALC/internal/tui"
	"github.com/msto63/mCALC/pkg/core/config"
	"github.com/msto63/mCALC/pkg/core/logging"
)

var (
	watchConfig bool
	replLogFile string
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"tui"},
	Short:   "Startet den interaktiven Rechner",
	Long: `Startet die Terminal User Interface (TUI) von mCALC.

Änderungen an der Config-Datei werden automatisch übernommen.
Log-Ausgaben gehen nur mit --log-file in eine Datei, nie ins Terminal.

Navigation:
  Enter     - Zeile berechnen
  ↑/↓       - Verlauf
  Tab       - Zwischen Ansichten wechseln
  Ctrl+L    - Verlauf leeren
  Esc       - Beenden`,
	RunE: runREPL,
}

func init() {
	replCmd.Flags().BoolVar(&watchConfig, "watch", true, "Config-Datei überwachen und neu laden")
	replCmd.Flags().StringVar(&replLogFile, "log-file", "", "Log-Datei für die TUI (default: kein Logging)")
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal; log lines on stderr would corrupt it.
	logger, closeLog, err := replLogger(current.logConfig, replLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ev, err := newEvaluator(current.config, logger)
	if err != nil {
		return err
	}

	path := current.config.Path()
	if !watchConfig || path == "" {
		return tui.Run(ev, logger, nil)
	}

	updates := make(chan tui.EvaluatorChangedMsg, 1)

	watcher, err := config.NewWatcher(path, logger, func(cfg *config.Config, err error) {
		msg := tui.EvaluatorChangedMsg{Source: path, Err: err}
		if err == nil {
			msg.Evaluator, msg.Err = newEvaluator(cfg, logger)
		}
		select {
		case updates <- msg:
		default:
			logger.Warn("configuration update dropped")
		}
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(cmd.Context()); err != nil {
		return err
	}
	defer watcher.Stop()

	return tui.Run(ev, logger, updates)
}

// replLogger rebuilds the logger of lc to write into path, or nowhere when
// path is empty
func replLogger(lc logging.LoggerConfig, path string) (*mdwlog.Logger, func(), error) {
	closeLog := func() {}
	lc.Output = io.Discard
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("Log-Datei Fehler: %w", err)
		}
		lc.Output = f
		closeLog = func() { f.Close() }
	}

	logger, err := logging.NewLogger(lc)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return logger, closeLog, nil
}
