package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "wordsnake.yaml"

// Load loads the Word Snake configuration.
// Search order: customPath -> ~/.wordsnake/configs/wordsnake.yaml ->
// ./configs/wordsnake.yaml -> embedded default -> DefaultWordSnakeConfig.
// Files only need the keys they change; the rest keeps its default.
func Load(customPath string) (WordSnakeConfig, error) {
	cfg := DefaultWordSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := DefaultWordSnakeConfig()
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			continue
		}
		if err := fromFile.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
		return fromFile, nil
	}

	// Use embedded default YAML
	fromEmbed := DefaultWordSnakeConfig()
	if err := yaml.Unmarshal(defaultWordSnakeYAML, &fromEmbed); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return fromEmbed, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsnake", "configs", name)
}

// Validate rejects configurations the engine cannot run with.
func (c WordSnakeConfig) Validate() error {
	var errs []error
	positive := func(name string, ok bool) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("grid.size", c.Grid.Size > 0)
	positive("grid.free_cell_attempts", c.Grid.FreeCellAttempts > 0)
	positive("timing.base_speed", c.Timing.BaseSpeed > 0)
	positive("timing.min_speed", c.Timing.MinSpeed > 0)
	positive("timing.spawn_interval", c.Timing.SpawnInterval > 0)
	positive("timing.celebration", c.Timing.Celebration > 0)
	positive("spawn.max_tiles", c.Spawn.MaxTiles > 0)
	positive("input.cell_width", c.Input.CellWidth > 0)
	positive("input.cell_height", c.Input.CellHeight > 0)

	if c.Timing.MinSpeed > c.Timing.BaseSpeed {
		errs = append(errs, errors.New("timing.min_speed must not exceed timing.base_speed"))
	}
	if c.Timing.SpeedStep < 0 || c.Timing.Countdown < 0 || c.Timing.HintAfter < 0 || c.Spawn.InitialTiles < 0 {
		errs = append(errs, errors.New("timing and spawn counts must not be negative"))
	}

	probability("spawn.eraser_chance", c.Spawn.EraserChance)
	probability("spawn.distractor_chance", c.Spawn.DistractorChance)
	probability("audio.master_volume", c.Audio.MasterVolume)
	if c.Spawn.EraserChance+c.Spawn.DistractorChance > 1 {
		errs = append(errs, errors.New("spawn.eraser_chance + spawn.distractor_chance must not exceed 1"))
	}

	return errors.Join(errs...)
}
