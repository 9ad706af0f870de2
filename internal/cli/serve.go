package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/enrichlens/backend/config"
	httpDelivery "github.com/enrichlens/backend/internal/delivery/http"
	"github.com/enrichlens/backend/internal/infrastructure/apollo"
)

func serveCmd(debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the enrichment HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd.ErrOrStderr(), *debug)
			if err != nil {
				return err
			}
			cfg := rt.cfg

			rt.logger.Info("starting enrichlens",
				"version", version,
				"environment", cfg.Server.Environment,
				"port", cfg.Server.Port,
				"apollo_base_url", cfg.Apollo.BaseURL)

			switch {
			case cfg.Apollo.APIKey == "":
				rt.logger.Info("no default Apollo API key; requests must supply their own")
			case !config.ValidateAPIKey(cfg.Apollo.APIKey):
				rt.logger.Warn("default Apollo API key looks malformed", "key", apollo.MaskKey(cfg.Apollo.APIKey))
			default:
				rt.logger.Info("default Apollo API key configured", "key", apollo.MaskKey(cfg.Apollo.APIKey))
			}

			handler := httpDelivery.NewHandler(rt.service, cfg.Apollo.APIKey)
			router := httpDelivery.SetupRouter(cfg, handler, rt.logger)

			server := &http.Server{
				Addr:              ":" + cfg.Server.Port,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, rt.logger, server, cfg.Server.ShutdownTimeout)
		},
	}
}

// runServer serves until ctx is done, then shuts down within shutdownTimeout
func runServer(ctx context.Context, logger *slog.Logger, server *http.Server, shutdownTimeout time.Duration) error {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server listen failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
