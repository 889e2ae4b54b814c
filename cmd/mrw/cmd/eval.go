package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mRW/foundation/calc/ast"
)

var evalMode string

var evalCmd = &cobra.Command{
	Use:   "eval [ausdruck]",
	Short: "Wertet einen Ausdruck aus",
	Long: `Wertet einen Ausdruck direkt auf der Kommandozeile aus.

Beispiele:
  mrw eval "2+3*4"
  mrw eval "sin(30)"
  mrw eval --mode rad "sin(pi/2)"
  mrw eval "1,234.5 * 2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalMode, "mode", "m", "", "Winkelmodus: deg oder rad (default aus Config)")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
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

	if evalMode != "" {
		mode, err := ast.ParseAngleMode(evalMode)
		if err != nil {
			printError("Winkelmodus", err)
			return err
		}
		sess.Engine().SetAngleMode(mode)
	}

	entry, err := sess.Evaluate(joinArgs(args))
	if err != nil {
		printError("Auswertung", err)
		return err
	}

	fmt.Println(entry.Result)
	return nil
}
