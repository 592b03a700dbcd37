package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvServer     = "VERSIONCOMPARE_SERVER"
	EnvScriptPath = "VERSIONCOMPARE_SCRIPT_PATH"
	EnvProxy      = "VERSIONCOMPARE_PROXY"
	EnvLanguage   = "VERSIONCOMPARE_LANG"
)

// DefaultEnvFile is the dotenv file loaded from the working directory.
const DefaultEnvFile = ".env"

// LoadDotEnv loads variables from path (DefaultEnvFile when empty) into the
// process environment. Variables that are already set are kept. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overrides c with the environment variables that are set and
// non-blank. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvServer); ok {
		c.Server = v
	}
	if v, ok := lookup(EnvScriptPath); ok {
		// An empty script path is meaningful: api.php at the server root.
		c.ScriptPath = strings.TrimSpace(v)
	}
	if v, ok := get(EnvProxy); ok {
		c.Proxy = v
	}
	if v, ok := get(EnvLanguage); ok {
		c.Language = v
	}
}
