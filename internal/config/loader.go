package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/versioncompare/internal/model"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".versioncompare"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .versioncompare configuration file.
// Zero values mean "not set" and leave the current configuration alone.
type File struct {
	Server      string        `yaml:"server,omitempty"`
	ScriptPath  *string       `yaml:"scriptPath,omitempty"`
	Timeout     time.Duration `yaml:"timeout,omitempty"`
	UserAgent   string        `yaml:"userAgent,omitempty"`
	Proxy       string        `yaml:"proxy,omitempty"`
	Listen      string        `yaml:"listen,omitempty"`
	LenientJSON *bool         `yaml:"lenientJson,omitempty"`
	Language    string        `yaml:"language,omitempty"`
	Format      string        `yaml:"format,omitempty"`

	// Defaults are the comparison flags used when a request or command
	// line does not set them.
	Defaults model.CompareOptions `yaml:"defaults,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies every value set in cf onto c.
func (c *Config) Apply(cf *File) {
	if cf == nil {
		return
	}
	if cf.Server != "" {
		c.Server = cf.Server
	}
	if cf.ScriptPath != nil {
		c.ScriptPath = *cf.ScriptPath
	}
	if cf.Timeout != 0 {
		c.Timeout = cf.Timeout
	}
	if cf.UserAgent != "" {
		c.UserAgent = cf.UserAgent
	}
	if cf.Proxy != "" {
		c.Proxy = cf.Proxy
	}
	if cf.Listen != "" {
		c.ListenAddr = cf.Listen
	}
	if cf.LenientJSON != nil {
		c.LenientJSON = *cf.LenientJSON
	}
	if cf.Language != "" {
		c.Language = cf.Language
	}
	if cf.Format != "" {
		c.Format = cf.Format
	}
	c.Options = cf.Defaults
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .versioncompare in the current directory
// 3. Look for .versioncompare in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load builds the configuration from defaults, the configuration file and
// the environment. An explicit configPath that does not exist is an
// error; a missing file found by search is not.
func Load(configPath string) (*Config, error) {
	c := NewConfig()
	c.ConfigFilePath = configPath

	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}

	path := FindConfigFile(configPath)
	if path == "" && configPath != "" {
		return nil, ErrConfigNotFound
	}
	if path != "" {
		cf, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		c.Apply(cf)
	}

	c.ApplyEnv(os.LookupEnv)
	return c, nil
}
