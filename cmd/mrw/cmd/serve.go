package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/mRW/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet das HTTP/WebSocket Gateway",
	Long: `Startet das Gateway mit JSON-API und WebSocket-Kanal.

Endpunkte:
  POST   /api/v1/evaluate     - Ausdruck auswerten
  GET    /api/v1/history      - Historie abrufen
  DELETE /api/v1/history      - Historie leeren
  GET    /api/v1/mode         - Winkelmodus abrufen
  PUT    /api/v1/mode         - Winkelmodus setzen
  POST   /api/v1/mode/toggle  - Winkelmodus umschalten
  GET    /health              - Health Check
  GET    /ws                  - WebSocket (eval/mode/history/ping)`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen-Adresse (default aus Config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration laden", err)
		return err
	}
	if serveAddr != "" {
		cfg.Server.Address = serveAddr
	}
	logger := buildLogger(cfg)

	sess, err := newSession(cfg, logger)
	if err != nil {
		printError("Session erstellen", err)
		return err
	}

	srv := server.New(cfg, sess, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			printError("Gateway", err)
			return err
		}
		return nil
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
