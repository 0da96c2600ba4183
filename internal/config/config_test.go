package config

import (
	"os"
	"testing"
)

func TestDefaultServerConfigIsValid(t *testing.T) {
	cfg := DefaultServerConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestParseServerConfigValid(t *testing.T) {
	data := []byte(`
general:
  hostname: toc.example.com
  listen: ":9090"
  data_dir: /var/lib/toc
  tar_salt: some-salt
  gc_interval_s: 30
  log_level: debug
  log_format: json
users:
  - username: alice
    token: s3cr3t
limits:
  max_upload_bytes: 1073741824
  max_concurrent_transfers: 10
`)
	cfg, err := ParseServerConfig(data)
	if err != nil {
		t.Fatalf("ParseServerConfig() error = %v", err)
	}
	if cfg.General.Hostname != "toc.example.com" {
		t.Errorf("Hostname = %q", cfg.General.Hostname)
	}
	if cfg.General.Listen != ":9090" {
		t.Errorf("Listen = %q", cfg.General.Listen)
	}
	if len(cfg.Users) != 1 || cfg.Users[0].Username != "alice" {
		t.Errorf("Users = %+v", cfg.Users)
	}
	if cfg.Limits.MaxConcurrentTransfers != 10 {
		t.Errorf("MaxConcurrentTransfers = %d", cfg.Limits.MaxConcurrentTransfers)
	}
}

func TestParseServerConfigInvalidYAML(t *testing.T) {
	_, err := ParseServerConfig([]byte("not: valid: yaml: at: all:"))
	if err == nil {
		t.Fatalf("expected an error for invalid YAML")
	}
}

func TestParseServerConfigValidationErrors(t *testing.T) {
	data := []byte(`
general:
  data_dir: ""
  listen: ""
  log_level: verbose
  log_format: xml
  gc_interval_s: 0
`)
	_, err := ParseServerConfig(data)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
}

func TestParseServerConfigEnvVarSubstitution(t *testing.T) {
	if err := os.Setenv("TOC_TEST_TOKEN", "from-env"); err != nil {
		t.Fatalf("Setenv() error = %v", err)
	}
	defer os.Unsetenv("TOC_TEST_TOKEN")

	data := []byte(`
general:
  data_dir: /tmp/toc
  listen: ":8080"
users:
  - username: alice
    token: ${TOC_TEST_TOKEN}
`)
	cfg, err := ParseServerConfig(data)
	if err != nil {
		t.Fatalf("ParseServerConfig() error = %v", err)
	}
	if cfg.Users[0].Token != "from-env" {
		t.Errorf("Token = %q, want %q", cfg.Users[0].Token, "from-env")
	}
}

func TestParseServerConfigEnvVarDefault(t *testing.T) {
	os.Unsetenv("TOC_TEST_UNSET_VAR")
	data := []byte(`
general:
  data_dir: /tmp/toc
  listen: ":8080"
  hostname: ${TOC_TEST_UNSET_VAR:-fallback.example.com}
`)
	cfg, err := ParseServerConfig(data)
	if err != nil {
		t.Fatalf("ParseServerConfig() error = %v", err)
	}
	if cfg.General.Hostname != "fallback.example.com" {
		t.Errorf("Hostname = %q, want fallback", cfg.General.Hostname)
	}
}

func TestLoadServerConfigFileNotFound(t *testing.T) {
	_, err := LoadServerConfig("/nonexistent/path/to/config.yaml")
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadServerConfigValidFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/config.yaml"
	content := "general:\n  data_dir: " + dir + "\n  listen: \":8080\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	cfg, err := LoadServerConfig(path)
	if err != nil {
		t.Fatalf("LoadServerConfig() error = %v", err)
	}
	if cfg.General.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.General.DataDir, dir)
	}
}

func TestTLSConfigEnabled(t *testing.T) {
	var tls TLSConfig
	if tls.Enabled() {
		t.Errorf("Enabled() = true for zero value")
	}
	tls = TLSConfig{CertFile: "cert.pem", KeyFile: "key.pem"}
	if !tls.Enabled() {
		t.Errorf("Enabled() = false with both cert and key set")
	}
}

func TestParseClientConfigValid(t *testing.T) {
	data := []byte(`
host: https://toc.example.com
token: abc123
rate_limit_bytes_per_second: 1048576
history_file: /home/me/.config/toc/history
`)
	cfg, err := ParseClientConfig(data)
	if err != nil {
		t.Fatalf("ParseClientConfig() error = %v", err)
	}
	if cfg.Host != "https://toc.example.com" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Token != "abc123" {
		t.Errorf("Token = %q", cfg.Token)
	}
}

func TestParseClientConfigRequiresHost(t *testing.T) {
	_, err := ParseClientConfig([]byte(`token: abc123`))
	if err == nil {
		t.Fatalf("expected an error when host is missing")
	}
}
