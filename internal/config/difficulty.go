package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/wordsnake/internal/games/wordsnake/engine"
)

// DifficultyPreset names a spawn and validation policy.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// Presets lists the difficulties in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyHard}
}

// ParseDifficulty accepts "easy" or "hard" in any case. An empty string
// means easy.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (valid: easy, hard)", s)
}

// Description returns the one-line explanation shown in the menu.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyHard:
		return "Decoy letters and erasers; every letter counts, misses cost points"
	default:
		return "Only the next letter spawns; wrong letters bounce off"
	}
}

// Engine builds the engine configuration for a difficulty.
func (c WordSnakeConfig) Engine(preset DifficultyPreset) engine.Config {
	mode := engine.Easy
	if preset == DifficultyHard {
		mode = engine.Hard
	}

	return engine.Config{
		GridSize:         c.Grid.Size,
		FreeCellAttempts: c.Grid.FreeCellAttempts,
		Difficulty:       mode,
		BaseSpeed:        c.Timing.BaseSpeed,
		SpeedStep:        c.Timing.SpeedStep,
		MinSpeed:         c.Timing.MinSpeed,
		SpawnInterval:    c.Timing.SpawnInterval,
		Countdown:        c.Timing.Countdown,
		Celebration:      c.Timing.Celebration,
		HintAfter:        c.Timing.HintAfter,
		Spawn: engine.SpawnPolicy{
			MaxTiles:         c.Spawn.MaxTiles,
			EraserChance:     c.Spawn.EraserChance,
			DistractorChance: c.Spawn.DistractorChance,
		},
		InitialTiles: c.Spawn.InitialTiles,
		Scoring: engine.Scoring{
			LetterPoints:    c.Scoring.LetterPoints,
			MissPenalty:     c.Scoring.MissPenalty,
			TimeBonusBase:   c.Scoring.TimeBonusBase,
			CompletionBonus: c.Scoring.CompletionBonus,
		},
		Swipe: engine.SwipeThresholds{
			MaxDuration: c.Input.SwipeMaxDuration,
			MinDistance: c.Input.SwipeMinDistance,
		},
	}
}
