package config

import "time"

// DefaultOriginTimeout bounds a single ledger RPC call.
const DefaultOriginTimeout = 10 * time.Second

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Validate: ValidateConfig{
			AllowUncommitted: false,
		},
		Origin: OriginConfig{
			Timeout: DefaultOriginTimeout,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
