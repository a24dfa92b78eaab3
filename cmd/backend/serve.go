package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dashboard/config"
	"dashboard/logger"
	"dashboard/server"
	"dashboard/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard web app",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if err := logger.Init(cfg.LogLevel); err != nil {
			return err
		}
		defer logger.Sync()

		// Register the component on the server side too for correct routing generation
		ui.RegisterRoutes()

		srv := server.New(server.Config{
			Addr:       cfg.Addr,
			Name:       cfg.Name,
			Color:      cfg.Color,
			Navigation: cfg.Navigation,
			AllowAll:   cfg.AllowAll,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- srv.Start() }()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		logger.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
