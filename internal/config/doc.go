// Package config provides configuration structures and utilities for
// versioncompare.
//
// Configuration is layered: built-in defaults, then the YAML file
// (.versioncompare), then environment variables (optionally from a .env
// file), then command line flags. Each layer only overrides the values it
// sets.
package config
