package core

import "time"

// RuntimeConfig is what the platform tells a game when it starts a round.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Frames per second the platform drives Step at
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns an 80x24 screen at 60 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDuration returns the wall time one Step represents.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the summary the platform needs after each frame.
type GameState struct {
	Score    int
	GameOver bool // The round has ended, won or lost
	Won      bool // Every word was completed
	Paused   bool
}

// RoundResult describes a finished lesson. The platform persists it.
type RoundResult struct {
	Pack           string
	Difficulty     string
	Score          int
	WordsCompleted int
	TotalWords     int
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState

	// Completed is set on the single frame in which the lesson was finished.
	Completed *RoundResult
}
