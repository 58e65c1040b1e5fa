package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables that override file configuration.
const (
	EnvDB           = "WORDSNAKE_DB"
	EnvAudioEnabled = "WORDSNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "WORDSNAKE_MASTER_VOLUME" // 0-100
	EnvLogLevel     = "WORDSNAKE_LOG_LEVEL"
)

// ApplyEnv overrides cfg from the process environment. Callers load any
// .env file beforehand.
func ApplyEnv(cfg *WordSnakeConfig) error {
	return applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *WordSnakeConfig, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDB); ok && v != "" {
		cfg.Storage.DBPath = v
	}

	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvAudioEnabled, err)
		}
		cfg.Audio.Enabled = enabled
	}

	// Volume is given as a percentage
	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		pct, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvMasterVolume, err)
		}
		cfg.Audio.MasterVolume = min(max(float64(pct)/100.0, 0), 1)
	}

	return nil
}

// LogLevel returns the level requested through the environment, or fallback.
func LogLevel(fallback string) string {
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		return v
	}
	return fallback
}
