// Package main provides the CLI entry point for tocd, the toc
// server daemon.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/postalsys/toc/internal/config"
	"github.com/postalsys/toc/internal/logging"
	"github.com/postalsys/toc/internal/meta"
	"github.com/postalsys/toc/internal/metrics"
	"github.com/postalsys/toc/internal/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "tocd",
		Short:   "toc server daemon",
		Long:    "tocd accepts already-encrypted uploads and serves them back under short-lived wordpass identifiers. It never has access to plaintext or passphrases.",
		Version: Version,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			log := logging.NewLogger(cfg.General.LogLevel, cfg.General.LogFormat)

			if err := os.MkdirAll(cfg.General.DataDir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}

			store := meta.New(cfg.General.DataDir)
			m := metrics.Default()
			srv := server.New(cfg, store, m, log)

			if err := srv.Start(); err != nil {
				return fmt.Errorf("start server: %w", err)
			}
			log.Info("tocd started", logging.KeyAddress, cfg.General.Listen)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Stop(ctx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			log.Info("tocd stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "./tocd.yaml", "Path to configuration file")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDefaultConfig()
		},
	}
	return cmd
}

func loadConfig(path string) (*config.ServerConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config.DefaultServerConfig(), nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}
	return config.LoadServerConfig(path)
}
