package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/owlet-db/owlet/errors"
	"github.com/owlet-db/owlet/logger"
	"github.com/owlet-db/owlet/server"
)

// ServeCmd starts the ontology REST API server.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ontology REST API server",
	Long: `Start the HTTP server exposing the ontology API.

The listen address and CORS origin come from configuration
(server.addr, server.cors_origin). With --seed-demo, a small demo
university ontology is created when the store is empty.

Examples:
  owlet serve                  # Serve on the configured address
  owlet serve --addr :8080     # Override the listen address
  owlet serve --seed-demo      # Seed demo data on startup`,
	RunE: runServe,
}

var (
	serveAddrFlag string
	seedDemoFlag  bool
)

func init() {
	ServeCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "Listen address (overrides configuration)")
	ServeCmd.Flags().BoolVar(&seedDemoFlag, "seed-demo", false, "Seed demo ontology when the store is empty")
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, database, cfg, err := openService()
	if err != nil {
		return err
	}
	defer database.Close()

	if seedDemoFlag || cfg.Seed.Demo {
		if err := svc.SeedDemo(); err != nil {
			return errors.Wrap(err, "seed demo data")
		}
	}

	addr := cfg.Server.Addr
	if serveAddrFlag != "" {
		addr = serveAddrFlag
	}

	srv := server.New(svc, server.Config{
		Addr:       addr,
		CORSOrigin: cfg.Server.CORSOrigin,
	}, logger.Logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Infow("Received shutdown signal", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
