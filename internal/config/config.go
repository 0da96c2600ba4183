// Package config provides configuration parsing and validation for
// the toc server and client.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig is the complete configuration for tocd.
type ServerConfig struct {
	General GeneralConfig `yaml:"general"`
	Users   []UserConfig  `yaml:"users"`
	Limits  LimitsConfig  `yaml:"limits"`
	TLS     TLSConfig     `yaml:"tls"`
}

// GeneralConfig holds the server's listening and storage settings.
type GeneralConfig struct {
	// Hostname is the server's public host name. It is parsed and
	// kept in the configuration; upload responses carry only the
	// identifier and expiry, not an absolute URL built from it.
	Hostname string `yaml:"hostname"`

	// Listen is the address tocd binds to, e.g. ":8080".
	Listen string `yaml:"listen"`

	// DataDir is where uploaded blobs and their sidecar metadata
	// live.
	DataDir string `yaml:"data_dir"`

	// TarSalt seeds the tarhash derivation that maps a public
	// identifier to its on-disk storage key. It is not a secret but
	// must stay stable across restarts.
	TarSalt string `yaml:"tar_salt"`

	// GCIntervalSeconds is how often the background sweep checks for
	// expired uploads.
	GCIntervalSeconds int `yaml:"gc_interval_s"`

	// DefaultTTLSeconds is how long an upload lives when the client
	// doesn't request a specific expiry.
	DefaultTTLSeconds int64 `yaml:"default_ttl_s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
}

// UserConfig is a single bearer-token identity accepted by the
// server for authenticated uploads.
type UserConfig struct {
	Username string `yaml:"username"`
	Token    string `yaml:"token"`
}

// LimitsConfig bounds per-transfer resource usage.
type LimitsConfig struct {
	// MaxUploadBytes rejects an upload once it would exceed this
	// size. Zero means unlimited.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// RateLimitBytesPerSecond throttles request-body uploads and
	// downloads; websocket uploads are not throttled. Zero means
	// unlimited.
	RateLimitBytesPerSecond int64 `yaml:"rate_limit_bytes_per_second"`

	// MaxConcurrentTransfers must be at least 1 (Validate checks
	// it). The server does not use it to limit the number of
	// in-flight uploads and downloads.
	MaxConcurrentTransfers int `yaml:"max_concurrent_transfers"`
}

// TLSConfig configures serving HTTPS directly, without a
// reverse proxy in front.
type TLSConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// Enabled reports whether enough TLS configuration is present to
// serve HTTPS directly.
func (t TLSConfig) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// ClientConfig is the complete configuration for the toc CLI.
type ClientConfig struct {
	// Host is the base URL of the toc server, e.g. "https://toc.example.com".
	Host string `yaml:"host"`

	// Token is the bearer token sent on authenticated requests.
	Token string `yaml:"token"`

	// RateLimitBytesPerSecond throttles both send and recv transfers.
	// Zero means unlimited.
	RateLimitBytesPerSecond int64 `yaml:"rate_limit_bytes_per_second"`

	// HistoryFile is a path parsed from the configuration file. The
	// toc CLI does not read or write it; no upload history is kept.
	HistoryFile string `yaml:"history_file"`
}

// DefaultServerConfig returns a ServerConfig with conservative
// defaults. Fields left unset by the YAML a caller parses keep these
// values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		General: GeneralConfig{
			Listen:            ":8080",
			DataDir:           "./data",
			TarSalt:           "toc-default-salt-change-me",
			GCIntervalSeconds: 60,
			DefaultTTLSeconds: int64((24 * time.Hour).Seconds()),
			LogLevel:          "info",
			LogFormat:         "text",
		},
		Limits: LimitsConfig{
			MaxConcurrentTransfers: 64,
		},
	}
}

// DefaultClientConfig returns a ClientConfig with conservative
// defaults.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Host: "http://localhost:8080",
	}
}

// LoadServerConfig reads and parses a server configuration file.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseServerConfig(data)
}

// ParseServerConfig parses server configuration YAML, expanding
// ${VAR} and ${VAR:-default} references against the process
// environment before unmarshaling.
func ParseServerConfig(data []byte) (*ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadClientConfig reads and parses a client configuration file.
func LoadClientConfig(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseClientConfig(data)
}

// ParseClientConfig parses client configuration YAML.
func ParseClientConfig(data []byte) (*ClientConfig, error) {
	cfg := DefaultClientConfig()
	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("config: host is required")
	}
	return cfg, nil
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars replaces ${VAR}, ${VAR:-default} and $VAR references
// with values from the process environment.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		var name string
		if strings.HasPrefix(match, "${") {
			name = match[2 : len(match)-1]
		} else {
			name = match[1:]
		}
		if idx := strings.Index(name, ":-"); idx != -1 {
			varName, defaultVal := name[:idx], name[idx+2:]
			if val, ok := os.LookupEnv(varName); ok {
				return val
			}
			return defaultVal
		}
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

// Validate checks a ServerConfig for errors, collecting every
// problem found rather than stopping at the first.
func (c *ServerConfig) Validate() error {
	var errs []string

	if c.General.DataDir == "" {
		errs = append(errs, "general.data_dir is required")
	}
	if c.General.Listen == "" {
		errs = append(errs, "general.listen is required")
	}
	if !isValidLogLevel(c.General.LogLevel) {
		errs = append(errs, fmt.Sprintf("invalid log_level: %s (must be debug, info, warn, or error)", c.General.LogLevel))
	}
	if !isValidLogFormat(c.General.LogFormat) {
		errs = append(errs, fmt.Sprintf("invalid log_format: %s (must be text or json)", c.General.LogFormat))
	}
	if c.General.GCIntervalSeconds < 1 {
		errs = append(errs, "general.gc_interval_s must be positive")
	}
	for i, u := range c.Users {
		if u.Username == "" {
			errs = append(errs, fmt.Sprintf("users[%d].username is required", i))
		}
		if u.Token == "" {
			errs = append(errs, fmt.Sprintf("users[%d].token is required", i))
		}
	}
	if c.Limits.MaxConcurrentTransfers < 1 {
		errs = append(errs, "limits.max_concurrent_transfers must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func isValidLogFormat(format string) bool {
	switch format {
	case "text", "json":
		return true
	}
	return false
}
