package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordsnake/internal/core"
)

// pointerTracker turns left-button press/release pairs into gestures.
// Terminals report mouse positions in cells, so the displacement is scaled
// to pixels with the configured cell size before the game sees it.
type pointerTracker struct {
	cellW, cellH float64
	now          func() time.Time

	down    bool
	startX  int
	startY  int
	startAt time.Time
}

func newPointerTracker(cellW, cellH int) pointerTracker {
	return pointerTracker{
		cellW: float64(max(1, cellW)),
		cellH: float64(max(1, cellH)),
		now:   time.Now,
	}
}

// handle consumes a mouse message and returns a gesture when a drag or
// click has just finished.
func (p *pointerTracker) handle(msg tea.MouseMsg) (core.Gesture, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.Gesture{}, false
		}
		p.down = true
		p.startX, p.startY = msg.X, msg.Y
		p.startAt = p.now()

	case tea.MouseActionRelease:
		if !p.down {
			return core.Gesture{}, false
		}
		p.down = false
		return core.Gesture{
			DX:       float64(msg.X-p.startX) * p.cellW,
			DY:       float64(msg.Y-p.startY) * p.cellH,
			Duration: p.now().Sub(p.startAt),
		}, true
	}
	return core.Gesture{}, false
}
