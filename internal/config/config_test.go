package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewConfig tests that NewConfig returns expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("default local API URL", func(t *testing.T) {
		t.Parallel()
		if got := cfg.LocalAPIURL(); got != "http://localhost/w/api.php" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("default format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != "text" {
			t.Errorf("got %q", cfg.Format)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, ErrInvalidTimeout},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, ErrInvalidTimeout},
		{"negative body size", func(c *Config) { c.MaxBodySize = -1 }, ErrInvalidMaxBodySize},
		{"zero body size is valid", func(c *Config) { c.MaxBodySize = 0 }, nil},
		{"unknown format", func(c *Config) { c.Format = "pdf" }, ErrInvalidFormat},
		{"markdown format", func(c *Config) { c.Format = "markdown" }, nil},
		{"relative server", func(c *Config) { c.Server = "wiki.example.org" }, ErrInvalidServer},
		{"ftp server", func(c *Config) { c.Server = "ftp://wiki.example.org" }, ErrInvalidServer},
		{"https server", func(c *Config) { c.Server = "https://wiki.example.org" }, nil},
		{"socks proxy", func(c *Config) { c.Proxy = "socks5://127.0.0.1:1080" }, nil},
		{"http proxy", func(c *Config) { c.Proxy = "http://proxy.example:3128" }, nil},
		{"proxy without host", func(c *Config) { c.Proxy = "socks5://" }, ErrInvalidProxy},
		{"proxy with bad scheme", func(c *Config) { c.Proxy = "ftp://proxy.example" }, ErrInvalidProxy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestResolveURLs tests the blank URL defaulting rule.
func TestResolveURLs(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Server = "https://wiki.example.org/"
	local := "https://wiki.example.org/w/api.php"

	tests := []struct {
		name         string
		url1, url2   string
		want1, want2 string
		wantOK       bool
	}{
		{"both set", "https://a/api.php", "https://b/api.php", "https://a/api.php", "https://b/api.php", true},
		{"values are trimmed", "  https://a/api.php ", "\thttps://b/api.php\n", "https://a/api.php", "https://b/api.php", true},
		{"first blank", "", "https://b/api.php", local, "https://b/api.php", true},
		{"second blank", "https://a/api.php", "   ", "https://a/api.php", local, true},
		{"both blank", "", " ", "", "", false},
		{"same url twice", "https://a/api.php", "https://a/api.php", "https://a/api.php", "https://a/api.php", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got1, got2, ok := cfg.ResolveURLs(tt.url1, tt.url2)
			if got1 != tt.want1 || got2 != tt.want2 || ok != tt.wantOK {
				t.Errorf("ResolveURLs(%q, %q) = %q, %q, %v; want %q, %q, %v",
					tt.url1, tt.url2, got1, got2, ok, tt.want1, tt.want2, tt.wantOK)
			}
		})
	}

	t.Run("empty script path", func(t *testing.T) {
		t.Parallel()

		c := NewConfig()
		c.ScriptPath = ""
		if got := c.LocalAPIURL(); got != "http://localhost/api.php" {
			t.Errorf("got %q", got)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.versioncompare")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads and applies valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".versioncompare")
		content := `server: https://wiki.example.org
scriptPath: ""
timeout: 10s
userAgent: test-agent
proxy: socks5://127.0.0.1:9050
listen: 0.0.0.0:9000
lenientJson: true
language: ja
format: markdown
defaults:
  hideMatch: true
  ignoreVersion: true
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		cfg.Apply(cf)

		if cfg.LocalAPIURL() != "https://wiki.example.org/api.php" {
			t.Errorf("unexpected local API URL %q", cfg.LocalAPIURL())
		}
		if cfg.Timeout != 10*time.Second {
			t.Errorf("expected 10s timeout, got %v", cfg.Timeout)
		}
		if cfg.UserAgent != "test-agent" || cfg.Proxy != "socks5://127.0.0.1:9050" || cfg.ListenAddr != "0.0.0.0:9000" {
			t.Errorf("unexpected values %+v", cfg)
		}
		if !cfg.LenientJSON || cfg.Language != "ja" || cfg.Format != "markdown" {
			t.Errorf("unexpected values %+v", cfg)
		}
		if !cfg.Options.HideMatch || !cfg.Options.IgnoreVersion || cfg.Options.HideDiff {
			t.Errorf("unexpected options %+v", cfg.Options)
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".versioncompare")
		if err := os.WriteFile(configPath, []byte("userAgent: x\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg := NewConfig()
		cfg.Apply(cf)

		if cfg.ScriptPath != DefaultScriptPath || cfg.Timeout != DefaultTimeout || cfg.Server != DefaultServer {
			t.Errorf("expected defaults to be kept, got %+v", cfg)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".versioncompare")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("defaults: {}"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	if _, err := Load("/nonexistent/path/.versioncompare"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvServer:     " https://env.example.org ",
		EnvScriptPath: "",
		EnvProxy:      "   ",
		EnvLanguage:   "ja",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := NewConfig()
	cfg.Proxy = "http://file-proxy:3128"
	cfg.ApplyEnv(lookup)

	if cfg.Server != "https://env.example.org" {
		t.Errorf("expected trimmed server, got %q", cfg.Server)
	}
	if cfg.ScriptPath != "" {
		t.Errorf("expected empty script path from env, got %q", cfg.ScriptPath)
	}
	if cfg.Proxy != "http://file-proxy:3128" {
		t.Errorf("expected blank env proxy to be ignored, got %q", cfg.Proxy)
	}
	if cfg.Language != "ja" {
		t.Errorf("expected ja, got %q", cfg.Language)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("loads variables without overriding set ones", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		content := "VERSIONCOMPARE_TEST_NEW=from-file\nVERSIONCOMPARE_TEST_SET=from-file\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Setenv("VERSIONCOMPARE_TEST_SET", "from-env")
		t.Setenv("VERSIONCOMPARE_TEST_NEW", "")
		os.Unsetenv("VERSIONCOMPARE_TEST_NEW")

		if err := LoadDotEnv(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := os.Getenv("VERSIONCOMPARE_TEST_NEW"); got != "from-file" {
			t.Errorf("expected from-file, got %q", got)
		}
		if got := os.Getenv("VERSIONCOMPARE_TEST_SET"); got != "from-env" {
			t.Errorf("expected from-env, got %q", got)
		}
	})
}

// TestXDGConfigDir tests the XDG directory function.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected path to end with %q, got %q", AppName, dir)
	}
}
