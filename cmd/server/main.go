package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/halcyonworks/siteapi/internal/config"
	"github.com/halcyonworks/siteapi/internal/logging"
	"github.com/halcyonworks/siteapi/internal/server"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "siteapi",
	Short: "Halcyon Works site API",
	Long:  `API service behind the Halcyon Works marketing site: contact form intake, abuse filtering and email dispatch.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := logging.InitLogger(&logging.Config{
			Level:      cfg.LogLevel,
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger := logging.GetGlobalLogger()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("Starting server on port %s (env=%s)", cfg.Port, cfg.Environment)
		if cfg.ResendAPIKey == "" {
			logger.Warn("RESEND_API_KEY is not set; contact emails will not be delivered")
		}

		srv := server.New(cfg)
		if err := srv.Run(ctx); err != nil && err != http.ErrServerClosed {
			return err
		}

		logger.Info("Server stopped")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
