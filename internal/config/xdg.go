// Package config loads mindscan settings from a TOML file and resolves them
// against built-in defaults.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGStateHome returns the XDG state home, where log files go.
func XDGStateHome() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "mindscan", "config.toml")
}

// DefaultLogPath returns the log file used when logging is enabled without an
// explicit path.
func DefaultLogPath() string {
	return filepath.Join(XDGStateHome(), "mindscan", "mindscan.log")
}

// ResolveLogPath picks the log file: the flag value, then MINDSCAN_LOG, then
// the config file. MINDSCAN_LOG=1 selects DefaultLogPath. An empty result
// disables logging. The parent directory is created.
func ResolveLogPath(flag, configured string) (string, error) {
	p := flag
	if p == "" {
		p = os.Getenv("MINDSCAN_LOG")
		if p == "1" {
			p = DefaultLogPath()
		}
	}
	if p == "" {
		p = configured
	}
	if p == "" {
		return "", nil
	}
	return p, ensureDir(p)
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
