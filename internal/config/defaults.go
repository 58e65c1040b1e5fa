package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordsnake.yaml
var defaultWordSnakeYAML []byte

// DefaultDBPath is where scores live unless overridden.
const DefaultDBPath = "~/.wordsnake/wordsnake.db"

// DefaultWordSnakeConfig returns the hard-coded configuration used when no
// YAML can be read.
func DefaultWordSnakeConfig() WordSnakeConfig {
	return WordSnakeConfig{
		Grid: GridConfig{
			Size:             15,
			FreeCellAttempts: 100,
		},
		Timing: TimingConfig{
			BaseSpeed:     200 * time.Millisecond,
			SpeedStep:     15 * time.Millisecond,
			MinSpeed:      80 * time.Millisecond,
			SpawnInterval: 2500 * time.Millisecond,
			Countdown:     3,
			Celebration:   3 * time.Second,
			HintAfter:     30,
		},
		Spawn: SpawnConfig{
			MaxTiles:         12,
			InitialTiles:     1,
			EraserChance:     0.10,
			DistractorChance: 0.20,
		},
		Scoring: ScoringConfig{
			LetterPoints:    10,
			MissPenalty:     5,
			TimeBonusBase:   100,
			CompletionBonus: 50,
		},
		Input: InputConfig{
			SwipeMaxDuration: 300 * time.Millisecond,
			SwipeMinDistance: 30,
			CellWidth:        10,
			CellHeight:       20,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.6,
			SampleRate:   44100,
		},
		Storage: StorageConfig{
			DBPath: DefaultDBPath,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWordSnakeYAML
}
