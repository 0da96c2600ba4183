// Package main provides the CLI entry point for toc, the file
// transfer client. It encrypts locally before upload and decrypts
// locally after download: the server never sees plaintext or the
// passphrase.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/postalsys/toc/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "toc",
		Short:   "Send and receive files through a toc server",
		Version: Version,
	}

	rootCmd.AddCommand(sendCmd())
	rootCmd.AddCommand(recvCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadClientConfig(path string) (*config.ClientConfig, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config.DefaultClientConfig(), nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}
	return config.LoadClientConfig(path)
}
