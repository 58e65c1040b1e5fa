// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
)

// Game is the interface every playable mode implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "wordsnake_hard").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh round. The RuntimeConfig provides screen
	// dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary (score, game over, paused).
	State() core.GameState

	// Close releases the round. Further Steps are no-ops.
	Close()
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting the round.
type Resizer interface {
	Resize(w, h int)
}

// Setup is everything a factory needs to build a game.
type Setup struct {
	Pack   clues.Pack
	Config config.WordSnakeConfig
	Cues   audio.Player // nil means silent
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func(Setup) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: game registered without an id")
	}
	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Info returns the metadata of a registered game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, setup Setup) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if setup.Cues == nil {
		setup.Cues = audio.Nop{}
	}

	return f(setup), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
