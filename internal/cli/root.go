package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/enrichlens/backend/config"
	"github.com/enrichlens/backend/internal/infrastructure/apollo"
	"github.com/enrichlens/backend/internal/infrastructure/logging"
	"github.com/enrichlens/backend/internal/usecase"
)

const version = "1.0.0"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "enrichlens",
		Short:        "EnrichLens: company and contact enrichment via Apollo",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(serveCmd(&debug))
	cmd.AddCommand(companyCmd(&debug))
	cmd.AddCommand(contactCmd(&debug))
	return cmd
}

// runtime is what every subcommand needs once config is loaded
type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *usecase.EnrichmentService
}

func setup(logOut io.Writer, debug bool) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(logOut, logging.Options{
		Level: cfg.Logging.Level,
		Debug: debug,
	})

	client := apollo.NewClient(cfg.Apollo.BaseURL, cfg.Apollo.Timeout)
	client.SetLogger(logger)

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		service: usecase.NewEnrichmentService(client, logger),
	}, nil
}
