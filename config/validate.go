package config

import (
	"fmt"
	"net/url"
)

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true,
	"error": true, "disabled": true, "off": true,
}

// Validate checks runtime config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if !logLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error, off", cfg.Log.Level)
	}
	if cfg.Origin.Timeout <= 0 {
		return fmt.Errorf("origin.timeout must be positive")
	}
	if cfg.Origin.RPC != "" {
		u, err := url.Parse(cfg.Origin.RPC)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("origin.rpc must be an http(s) URL")
		}
	}
	if cfg.Origin.Password != "" && cfg.Origin.User == "" {
		return fmt.Errorf("origin.rpc_password set without origin.rpc_user")
	}
	return nil
}
