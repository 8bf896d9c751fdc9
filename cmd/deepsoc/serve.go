package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/deepsoc/deepsoc/pkg/api"
	"github.com/deepsoc/deepsoc/pkg/auth"
	"github.com/deepsoc/deepsoc/pkg/bus"
	"github.com/deepsoc/deepsoc/pkg/cleanup"
	"github.com/deepsoc/deepsoc/pkg/version"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the warroom HTTP API and WebSocket gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext(context.Background())
			defer stop()

			boot, err := connect(ctx)
			if err != nil {
				return err
			}
			defer boot.close()

			tokens := auth.NewTokenManager(boot.cfg.Auth.JWTSecret, boot.cfg.Auth.TokenTTL)
			hub := api.NewHub()
			consumer := bus.NewConsumer(boot.cfg.Broker, hub.HandleDelivery)
			consumer.Start()

			retention := cleanup.NewService(boot.cfg.Retention, boot.db.Client)
			retention.Start(ctx)

			srv := api.NewServer(boot.cfg.Server, boot.db, tokens, boot.notifier, hub)
			httpServer := srv.HTTPServer()

			errCh := make(chan error, 1)
			go func() {
				slog.Info("HTTP server listening", "addr", httpServer.Addr, "version", version.Full())
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			var runErr error
			select {
			case <-ctx.Done():
				slog.Info("Shutdown signal received")
			case runErr = <-errCh:
				slog.Error("HTTP server error", "error", runErr)
			}

			// Drain in dependency order: stop accepting requests, then
			// the bus feed, then the rooms it fed.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("HTTP server shutdown error", "error", err)
			}
			consumer.Stop()
			hub.Stop()
			retention.Stop()

			slog.Info("Shutdown complete")
			return runErr
		},
	}
}
