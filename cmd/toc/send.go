package main

import (
	"archive/tar"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/postalsys/toc/internal/codec"
	"github.com/postalsys/toc/internal/prompt"
	"github.com/postalsys/toc/internal/ratelimit"
	"github.com/postalsys/toc/internal/sizefmt"
	"github.com/postalsys/toc/internal/tarstream"
	"github.com/postalsys/toc/internal/wordpass"
)

func sendCmd() *cobra.Command {
	var configPath string
	var ttlSeconds int64
	var passphraseFlag string

	cmd := &cobra.Command{
		Use:   "send <path>",
		Short: "Encrypt and upload a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			cfg, err := loadClientConfig(configPath)
			if err != nil {
				return err
			}

			var passphraseBytes []byte
			if passphraseFlag != "" {
				passphraseBytes = []byte(passphraseFlag)
			} else {
				id, err := wordpass.Generate()
				if err != nil {
					return fmt.Errorf("generate passphrase: %w", err)
				}
				passphraseBytes = id.Bytes()
				prompt.Info("Generated passphrase: %s", id.String())
			}

			var reader io.Reader
			pr, pw := io.Pipe()
			enc, err := codec.NewWriter(pw, passphraseBytes)
			if err != nil {
				pw.Close()
				return fmt.Errorf("create encoder: %w", err)
			}
			reader = pr

			go func() {
				var archiveErr error
				if info.IsDir() {
					archiveErr = tarstream.Archive(path, enc, tarstream.Options{NormalizeNames: true})
				} else {
					archiveErr = archiveSingleFile(path, enc)
				}
				if archiveErr == nil {
					archiveErr = enc.Finish()
				}
				pw.CloseWithError(archiveErr)
			}()

			if cfg.RateLimitBytesPerSecond > 0 {
				reader = ratelimit.NewReader(cmd.Context(), reader, cfg.RateLimitBytesPerSecond)
				payloadSize := info.Size()
				if info.IsDir() {
					if n, err := tarstream.Size(path); err == nil {
						payloadSize = n
					}
				}
				eta := sizefmt.EstimateDuration(payloadSize, cfg.RateLimitBytesPerSecond)
				prompt.Info("Uploading at up to %s (estimated %s)", sizefmt.FormatRate(cfg.RateLimitBytesPerSecond), eta)
			}

			req, err := http.NewRequest(http.MethodPost, cfg.Host+"/api/upload", reader)
			if err != nil {
				return fmt.Errorf("build request: %w", err)
			}
			req.Header.Set("Authorization", "Bearer "+cfg.Token)
			req.Header.Set("Content-Type", "application/octet-stream")
			req.Header.Set("X-Toc-Filename", info.Name())
			if ttlSeconds > 0 {
				q := req.URL.Query()
				q.Set("ttl_s", fmt.Sprintf("%d", ttlSeconds))
				req.URL.RawQuery = q.Encode()
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusCreated {
				body, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("upload failed: %s: %s", resp.Status, string(body))
			}

			var result struct {
				ID       string `json:"id"`
				DeleteAt int64  `json:"delete_at_unix"`
			}
			if err := decodeJSON(resp.Body, &result); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}

			prompt.Success("Uploaded %s as %s", sizefmt.Format(info.Size()), result.ID)
			prompt.Info("Receiver needs both the identifier and the passphrase to decrypt.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "./toc.yaml", "Path to configuration file")
	cmd.Flags().Int64Var(&ttlSeconds, "ttl", 0, "Seconds before the upload expires (0 = server default)")
	cmd.Flags().StringVar(&passphraseFlag, "passphrase", "", "Passphrase to encrypt with (random if omitted)")

	return cmd
}

// archiveSingleFile wraps path in a one-entry tar stream, so the
// receiving end can always extract with tarstream.Extract regardless
// of whether the sender sent a file or a directory.
func archiveSingleFile(path string, w io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tw := tar.NewWriter(w)
	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = info.Name()
	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if _, err := io.Copy(tw, f); err != nil {
		return err
	}
	return tw.Close()
}
