package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mRW/internal/tui/calculator"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive TUI",
	Long: `Startet die Terminal User Interface (TUI) von meinRECHENWERK.

Navigation:
  Enter     - Ausdruck auswerten
  F2        - Winkelmodus umschalten (DEG/RAD)
  ↑/↓       - Eingabe-Historie
  Ctrl+L    - Historie leeren
  Esc       - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration laden", err)
		return err
	}
	logger := buildLogger(cfg)

	sess, err := newSession(cfg, logger)
	if err != nil {
		printError("Session erstellen", err)
		return err
	}

	if err := calculator.Run(sess); err != nil {
		printError("TUI", err)
		return err
	}
	return nil
}
