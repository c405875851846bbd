// Package main provides the pollsd binary: a small poll server built on
// strada, used as the framework's reference application.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stradaweb/strada/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pollsd",
	Short: "pollsd: a demo poll server built on strada",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the poll server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		engine, err := buildEngine(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return engine.RunWithContext(ctx, cfg.Server.Addr)
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table in registration order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		engine, err := buildEngine(cfg, logger)
		if err != nil {
			return err
		}

		for _, route := range engine.Routes() {
			name := route.Name()
			if name == "" {
				name = "-"
			}
			fmt.Printf("%-7s %-30s %s\n", route.Method(), route.Pattern(), name)
		}
		return nil
	},
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.NewLoader(logger).Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Debug() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return cfg, logger, nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to strada.yaml")
	rootCmd.AddCommand(serveCmd, routesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
