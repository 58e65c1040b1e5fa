// Package config provides YAML-based configuration loading, difficulty
// presets and environment overrides for Word Snake.
package config

import "time"

// WordSnakeConfig contains every tunable of the game.
type WordSnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Size             int `yaml:"size"`               // Cells per side
	FreeCellAttempts int `yaml:"free_cell_attempts"` // Random draws before a spawn is skipped
}

// TimingConfig defines the clock of a round.
type TimingConfig struct {
	BaseSpeed     time.Duration `yaml:"base_speed"`     // Movement period of the first word
	SpeedStep     time.Duration `yaml:"speed_step"`     // Subtracted per completed word
	MinSpeed      time.Duration `yaml:"min_speed"`      // Fastest movement period
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Period of the letter spawner
	Countdown     int           `yaml:"countdown"`      // Seconds before the snake moves
	Celebration   time.Duration `yaml:"celebration"`    // Word-complete window
	HintAfter     int           `yaml:"hint_after"`     // Seconds on a word before its hint shows
}

// SpawnConfig defines the letter spawner.
type SpawnConfig struct {
	MaxTiles         int     `yaml:"max_tiles"`
	InitialTiles     int     `yaml:"initial_tiles"`     // Placed as soon as a word starts
	EraserChance     float64 `yaml:"eraser_chance"`     // Hard mode only
	DistractorChance float64 `yaml:"distractor_chance"` // Hard mode only
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	LetterPoints    int `yaml:"letter_points"`
	MissPenalty     int `yaml:"miss_penalty"`
	TimeBonusBase   int `yaml:"time_bonus_base"`
	CompletionBonus int `yaml:"completion_bonus"`
}

// InputConfig defines swipe detection. Terminal mouse events arrive in
// cells, so CellWidth and CellHeight convert them to pixels.
type InputConfig struct {
	SwipeMaxDuration time.Duration `yaml:"swipe_max_duration"`
	SwipeMinDistance float64       `yaml:"swipe_min_distance"` // Pixels
	CellWidth        int           `yaml:"cell_width"`         // Pixels per terminal column
	CellHeight       int           `yaml:"cell_height"`        // Pixels per terminal row
}

// AudioConfig defines the sound cues.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
	SampleRate   int     `yaml:"sample_rate"`
}

// StorageConfig defines where results are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}
