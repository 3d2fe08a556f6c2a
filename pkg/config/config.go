// Package config loads ambient configuration: socket directory, worker
// count, module registry entries, and log level. It is out of scope as a
// scan-engine *feature* per spec.md §1, but is carried regardless as
// ambient plumbing, loaded TOML-first with YAML fallback via the
// teacher's pkg/encoding (which already offers both).
package config

import (
	"fmt"
	"os"

	"github.com/arvoscan/arvo/pkg/encoding"
	"github.com/arvoscan/arvo/pkg/filesystem"
	"github.com/arvoscan/arvo/pkg/scanengine/workerpool"
)

// ModuleEntry names one registry entry: a builtin module identifier (one
// of "extension", "denylist", "whitelist", "eicar") plus the MIME types
// (or "*") it applies to and its builtin-specific parameters. Values'
// meaning depends on Builtin: dot-prefixed extensions for "extension",
// hex-encoded SHA-256 hashes for "denylist", doublestar glob patterns for
// "whitelist", and unused for "eicar".
type ModuleEntry struct {
	Name    string   `toml:"name" yaml:"name"`
	Builtin string   `toml:"builtin" yaml:"builtin"`
	MIMEs   []string `toml:"mimes" yaml:"mimes"`
	Values  []string `toml:"values" yaml:"values"`
}

// Config is the top-level configuration value.
type Config struct {
	SocketDir          string        `toml:"socket_dir" yaml:"socket_dir"`
	WorkerCount        int           `toml:"worker_count" yaml:"worker_count"`
	ModuleRegistryPath string        `toml:"module_registry_path" yaml:"module_registry_path"`
	LogLevel           int           `toml:"log_level" yaml:"log_level"`
	Modules            []ModuleEntry `toml:"module" yaml:"module"`
}

// Default returns a Config populated with the documented defaults: worker
// count matching workerpool.DefaultSize and the Arvo daemon subdirectory
// as the socket directory.
func Default() *Config {
	socketDir, _ := filesystem.Arvo(false, filesystem.ArvoDaemonDirectoryName)
	return &Config{
		SocketDir:   socketDir,
		WorkerCount: workerpool.DefaultSize,
	}
}

// Load reads configuration from path, preferring TOML and falling back to
// YAML for deployments that already carry a YAML config (grounded on the
// teacher's pkg/encoding offering both formats). If path does not exist,
// Load returns the documented defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	err := encoding.LoadAndUnmarshalTOML(path, cfg)
	if err == nil {
		return cfg, nil
	}
	if os.IsNotExist(err) {
		return Default(), nil
	}

	// Fall back to YAML for legacy configuration files.
	if yamlErr := encoding.LoadAndUnmarshalYAML(path, cfg); yamlErr == nil {
		return cfg, nil
	}

	return nil, fmt.Errorf("unable to load configuration as TOML or YAML: %w", err)
}
