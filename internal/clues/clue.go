// Package clues loads and validates the clue packs a lesson is played from.
// A pack is an ordered list of clues; each clue asks the player to spell
// one target word.
package clues

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/wordsnake/internal/games/wordsnake/engine"
)

var (
	ErrNoClues       = errors.New("clues: pack has no clues")
	ErrEmptyTarget   = errors.New("clues: empty target word")
	ErrEmptyPrompt   = errors.New("clues: empty prompt")
	ErrInvalidTarget = errors.New("clues: target may only contain letters and spaces")
	ErrInvalidID     = errors.New("clues: pack id must be lower-case letters, digits, '-' or '_'")
	ErrPackNotFound  = errors.New("clues: pack not found")
)

// Clue is one word to spell.
type Clue struct {
	Prompt string `yaml:"prompt"`
	Target string `yaml:"target"`
	Hint   string `yaml:"hint,omitempty"`
	Fact   string `yaml:"fact,omitempty"`
	Image  string `yaml:"image,omitempty"`
}

// Pack is a named, ordered list of clues.
type Pack struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Clues       []Clue `yaml:"clues"`

	Source string `yaml:"-"` // File the pack came from, or "builtin"
}

// NormalizeTarget upper-cases t and collapses whitespace to single spaces.
func NormalizeTarget(t string) string {
	return strings.ToUpper(engine.NormalizeTarget(t))
}

// Normalize returns a copy of p with normalised targets and trimmed text.
func (p Pack) Normalize() Pack {
	out := p
	out.ID = strings.TrimSpace(p.ID)
	out.Name = strings.TrimSpace(p.Name)
	if out.Name == "" {
		out.Name = out.ID
	}
	out.Clues = make([]Clue, len(p.Clues))
	for i, c := range p.Clues {
		c.Prompt = strings.TrimSpace(c.Prompt)
		c.Target = NormalizeTarget(c.Target)
		c.Hint = strings.TrimSpace(c.Hint)
		c.Fact = strings.TrimSpace(c.Fact)
		out.Clues[i] = c
	}
	return out
}

// Validate checks a normalised pack.
func (p Pack) Validate() error {
	if !validID(p.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
	}
	if len(p.Clues) == 0 {
		return fmt.Errorf("pack %s: %w", p.ID, ErrNoClues)
	}
	for i, c := range p.Clues {
		if c.Target == "" {
			return fmt.Errorf("pack %s clue %d: %w", p.ID, i+1, ErrEmptyTarget)
		}
		if c.Prompt == "" {
			return fmt.Errorf("pack %s clue %d: %w", p.ID, i+1, ErrEmptyPrompt)
		}
		for _, r := range c.Target {
			if r != ' ' && !unicode.IsLetter(r) {
				return fmt.Errorf("pack %s clue %d (%s): %w", p.ID, i+1, c.Target, ErrInvalidTarget)
			}
		}
	}
	return nil
}

func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// EngineClues converts the pack for the engine.
func (p Pack) EngineClues() []engine.Clue {
	out := make([]engine.Clue, len(p.Clues))
	for i, c := range p.Clues {
		out[i] = engine.Clue{
			Prompt: c.Prompt,
			Target: c.Target,
			Hint:   c.Hint,
			Fact:   c.Fact,
			Image:  c.Image,
		}
	}
	return out
}
