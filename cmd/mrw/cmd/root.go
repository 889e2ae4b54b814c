package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mRW/foundation/calc"
	"github.com/msto63/mRW/foundation/calc/ast"
	"github.com/msto63/mRW/foundation/core/config"
	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/session"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mrw",
	Short: "meinRECHENWERK - Wissenschaftlicher Rechner",
	Long: `meinRECHENWERK ist ein wissenschaftlicher Rechner für das Terminal.

Ausdrücke werden über eine Tokenizer → Shunting-Yard → RPN Pipeline
ausgewertet, mit Operator-Präzedenz, impliziter Multiplikation,
Betragsstrichen und umschaltbarem Winkelmodus (DEG/RAD).

Befehle:
  eval     - Ausdruck direkt auswerten
  tui      - Interaktive TUI starten
  serve    - HTTP/WebSocket Gateway starten
  version  - Version anzeigen`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// loadConfig resolves the configuration file, falling back to defaults
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = "./configs/config.toml"
	}
	return config.LoadOrDefault(path)
}

// buildLogger creates the process logger from configuration and flags
func buildLogger(cfg *config.Config) *mrwlog.Logger {
	level, err := mrwlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = mrwlog.DefaultLevel()
	}
	if verbose {
		level = mrwlog.LevelDebug
	}

	format, err := mrwlog.ParseFormat(cfg.Log.Format)
	if err != nil {
		format = mrwlog.FormatJSON
	}

	return mrwlog.NewWithConfig(mrwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "mrw",
	})
}

// newSession builds a session from configuration
func newSession(cfg *config.Config, logger *mrwlog.Logger) (*session.Session, error) {
	mode, err := ast.ParseAngleMode(cfg.Calculator.AngleMode)
	if err != nil {
		return nil, err
	}

	engine := calc.NewEngine(calc.Options{
		Logger:              logger,
		MaxExpressionLength: cfg.Calculator.MaxExpressionLength,
		AngleMode:           mode,
	})

	return session.New(session.Options{
		Engine:      engine,
		Logger:      logger,
		HistorySize: cfg.Calculator.HistorySize,
	}), nil
}

// joinArgs merges CLI args into one expression string
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
