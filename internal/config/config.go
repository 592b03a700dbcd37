package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/versioncompare/internal/model"
	"github.com/nao1215/versioncompare/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "versioncompare"

	// DefaultTimeout bounds each siteinfo request, including reading the body.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies versioncompare in HTTP requests.
	// Wikimedia and many other wiki farms reject requests without one.
	DefaultUserAgent = "versioncompare/1.0 (+https://github.com/nao1215/versioncompare)"

	// DefaultMaxBodySize limits the siteinfo response body that is read.
	// Wikis with several hundred extensions answer with well under 1MB.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultListenAddr is the address the serve command listens on.
	DefaultListenAddr = "127.0.0.1:8080"

	// DefaultServer and DefaultScriptPath locate the local wiki whose API is
	// used when one of the two URLs is left blank.
	DefaultServer     = "http://localhost"
	DefaultScriptPath = "/w"

	// DefaultFormat is the CLI output format.
	DefaultFormat = string(report.FormatText)
)

// Config holds all configuration options for versioncompare.
// It is populated from defaults, the config file, the environment and
// CLI flags, and passed through the application explicitly.
type Config struct {
	// Server is the scheme and host of the local wiki, e.g. "https://wiki.example.org".
	Server string

	// ScriptPath is the path under Server where api.php lives, e.g. "/w".
	// It may be empty.
	ScriptPath string

	// Timeout is the per-request timeout for siteinfo requests.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with siteinfo requests.
	UserAgent string

	// MaxBodySize is the maximum siteinfo response size in bytes.
	// Set to 0 to use the default (5MB).
	MaxBodySize int64

	// Proxy is an optional outbound proxy URL (http, https, socks5 or socks5h).
	Proxy string

	// ListenAddr is the address of the page endpoint in "host:port" format.
	ListenAddr string

	// LenientJSON enables a repair attempt on malformed siteinfo responses.
	LenientJSON bool

	// Options are the default comparison flags. Request parameters and
	// CLI flags override them.
	Options model.CompareOptions

	// Format is the CLI output format; see report.Formats.
	Format string

	// OutputFile is the CLI output path. Empty means stdout.
	OutputFile string

	// Language is the preferred message language ("en", "ja"). Empty means
	// English on the CLI and Accept-Language on the server.
	Language string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is an explicit configuration file path.
	// If empty, the file is searched for; see FindConfigFile.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:      DefaultServer,
		ScriptPath:  DefaultScriptPath,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		ListenAddr:  DefaultListenAddr,
		Format:      DefaultFormat,
	}
}

// XDGConfigDir returns the XDG config directory for versioncompare.
// On Linux: ~/.config/versioncompare
// On macOS: ~/Library/Application Support/versioncompare
// On Windows: %APPDATA%\versioncompare
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LocalAPIURL returns the API endpoint of the local wiki.
func (c *Config) LocalAPIURL() string {
	return strings.TrimRight(c.Server, "/") + c.ScriptPath + "/api.php"
}

// ResolveURLs trims both URLs and, when exactly one of them is blank,
// replaces the blank one with LocalAPIURL. It reports false when both are
// blank, in which case there is nothing to compare.
func (c *Config) ResolveURLs(url1, url2 string) (string, string, bool) {
	url1 = strings.TrimSpace(url1)
	url2 = strings.TrimSpace(url2)

	switch {
	case url1 == "" && url1 != url2:
		url1 = c.LocalAPIURL()
	case url2 == "" && url1 != url2:
		url2 = c.LocalAPIURL()
	}

	return url1, url2, url1 != "" && url2 != ""
}

// Validate checks if the configuration is valid.
// It returns the first problem found, wrapping one of the sentinels in
// errors.go.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidServer, c.Server)
	}

	if c.Proxy != "" {
		p, err := url.Parse(c.Proxy)
		if err != nil || p.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidProxy, c.Proxy)
		}
		switch p.Scheme {
		case "http", "https", "socks5", "socks5h":
		default:
			return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidProxy, p.Scheme)
		}
	}

	return nil
}
