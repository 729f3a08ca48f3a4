// Package config handles configuration for the txf tool.
//
// Settings come from three layers, lowest precedence first: built-in
// defaults, a key = value config file in the data directory, and
// command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds runtime configuration.
type Config struct {
	DataDir string `conf:"datadir"`

	// Token validation policy
	Validate ValidateConfig

	// Proof-of-work ledger used to resolve coin origin proofs
	Origin OriginConfig

	// Logging
	Log LogConfig
}

// ValidateConfig holds validation policy defaults.
type ValidateConfig struct {
	// Accept a last transfer without inclusion proof (offline transfers).
	AllowUncommitted bool `conf:"validate.allow_uncommitted"`
}

// OriginConfig holds the ledger RPC connection settings.
type OriginConfig struct {
	RPC      string        `conf:"origin.rpc"` // empty disables on-chain lookups
	User     string        `conf:"origin.rpc_user"`
	Password string        `conf:"origin.rpc_password"`
	Timeout  time.Duration `conf:"origin.timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.txf
//	macOS:   ~/Library/Application Support/TXF
//	Windows: %APPDATA%\TXF
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".txf"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "TXF")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "TXF")
		}
		return filepath.Join(home, "AppData", "Roaming", "TXF")
	default:
		return filepath.Join(home, ".txf")
	}
}

// VaultDir returns the token vault database directory.
func (c *Config) VaultDir() string {
	return filepath.Join(c.DataDir, "vault")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "txf.conf")
}
