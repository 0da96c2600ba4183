package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/postalsys/toc/internal/codec"
	"github.com/postalsys/toc/internal/prompt"
	"github.com/postalsys/toc/internal/ratelimit"
	"github.com/postalsys/toc/internal/sizefmt"
	"github.com/postalsys/toc/internal/tarstream"
	"github.com/postalsys/toc/internal/wordpass"
)

func recvCmd() *cobra.Command {
	var configPath string
	var outDir string
	var passphraseFlag string
	var asZip bool

	cmd := &cobra.Command{
		Use:   "recv [identifier]",
		Short: "Download and decrypt an upload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typed := ""
			if len(args) == 1 {
				typed = args[0]
			} else {
				var err error
				typed, err = prompt.Identifier("Identifier")
				if err != nil {
					return fmt.Errorf("read identifier: %w", err)
				}
			}

			// Typos happen on the typing side, not the server side:
			// correct them here rather than sending a malformed
			// identifier that the server's strict Parse would 404 on.
			id, err := wordpass.ParseFuzzy(typed)
			if err != nil {
				return fmt.Errorf("invalid identifier %q: %w", typed, err)
			}
			identifier := id.String()

			cfg, err := loadClientConfig(configPath)
			if err != nil {
				return err
			}

			passphrase := passphraseFlag
			if passphrase == "" {
				passphrase, err = prompt.Passphrase("Passphrase")
				if err != nil {
					return fmt.Errorf("read passphrase: %w", err)
				}
			}

			req, err := http.NewRequest(http.MethodGet, cfg.Host+"/d/"+identifier, nil)
			if err != nil {
				return fmt.Errorf("build request: %w", err)
			}
			if cfg.Token != "" {
				req.Header.Set("Authorization", "Bearer "+cfg.Token)
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("download: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				return fmt.Errorf("no such upload, or it has expired")
			}
			if resp.StatusCode == http.StatusServiceUnavailable {
				return fmt.Errorf("upload still in progress on the server, try again shortly")
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("download failed: %s", resp.Status)
			}

			if info, err := os.Stat(outDir); err == nil && info.IsDir() {
				if entries, _ := os.ReadDir(outDir); len(entries) > 0 {
					ok, err := prompt.Confirm(fmt.Sprintf("%s is not empty, extract into it anyway?", outDir))
					if err != nil {
						return fmt.Errorf("confirm overwrite: %w", err)
					}
					if !ok {
						return fmt.Errorf("aborted")
					}
				}
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			var body io.Reader = resp.Body
			if cfg.RateLimitBytesPerSecond > 0 {
				body = ratelimit.NewReader(cmd.Context(), body, cfg.RateLimitBytesPerSecond)
			}
			if resp.ContentLength > 0 {
				prompt.Info("Downloading %s", sizefmt.Format(resp.ContentLength))
			}

			dec := codec.NewReader(body, []byte(passphrase))

			if asZip {
				if err := extractAsZip(dec, outDir, identifier); err != nil {
					return fmt.Errorf("decrypt/zip: %w", err)
				}
			} else if err := tarstream.Extract(dec, outDir); err != nil {
				return fmt.Errorf("decrypt/extract: %w", err)
			}

			prompt.Success("Extracted into %s", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "./toc.yaml", "Path to configuration file")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to extract the download into")
	cmd.Flags().StringVar(&passphraseFlag, "passphrase", "", "Passphrase to decrypt with (prompted if omitted)")
	cmd.Flags().BoolVar(&asZip, "zip", false, "Write a single <identifier>.zip instead of extracting in place")

	return cmd
}

// extractAsZip decrypts dec's decrypted tar stream and transcodes it
// to a zip file under outDir, for receivers who'd rather hand a
// double-clickable archive to a zip tool than have toc extract
// in place. The server never sees plaintext, so this transcoding can
// only happen here, after decryption.
func extractAsZip(dec io.Reader, outDir, identifier string) error {
	zipPath := filepath.Join(outDir, identifier+".zip")
	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", zipPath, err)
	}
	defer f.Close()
	return tarstream.ToZip(dec, f)
}
