package wordsnake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake/engine"
)

const (
	hudHeight  = 2 // Status line and separator
	infoHeight = 3 // Clue, word and hint lines under the board
	cellWidth  = 2 // Screen columns per grid cell
	factWidth  = 44
)

// board returns the framed board area, centered horizontally under the HUD.
func (g *Game) board() core.Rect {
	n := g.cfg.Grid.Size
	if g.eng != nil {
		n = g.eng.Config().GridSize
	}
	w := n*cellWidth + 2
	h := n + 2
	return core.Rect{X: max(0, (g.screenW-w)/2), Y: hudHeight, W: w, H: h}
}

func (g *Game) tooSmall() bool {
	b := g.board()
	return g.screenW < b.W || g.screenH < hudHeight+b.H+infoHeight
}

// cellAt converts a grid cell to screen coordinates inside the board frame.
func cellAt(b core.Rect, c engine.Cell) (int, int) {
	return b.X + 1 + c.X*cellWidth, b.Y + 1 + c.Y
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	v := g.eng.View()

	g.renderHUD(dst, v)

	if g.tooSmall() {
		renderOverlay(dst, core.ColorYellow, "Window too small", "Resize to continue")
		return
	}
	if nc, ok := v.State.(engine.NoContent); ok {
		renderOverlay(dst, core.ColorRed, "Nothing to play", nc.Err.Error(), "Press Esc to pick another pack")
		return
	}

	b := g.board()
	dst.DrawBox(b, core.ColorGray)
	renderTiles(dst, b, v.Tiles)
	renderSnake(dst, b, v.Snake)
	renderClue(dst, b.Bottom(), v)
	g.renderStateOverlay(dst, v)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, v engine.View) {
	word := min(v.ClueIndex+1, v.ClueCount)
	hud := fmt.Sprintf(" %s | %s | Score: %d | Word %d/%d | Speed %dms",
		g.Title(), g.pack.Name, v.Score, word, v.ClueCount, v.Speed.Milliseconds())
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func renderTiles(dst *core.Screen, b core.Rect, tiles []engine.Tile) {
	for _, t := range tiles {
		x, y := cellAt(b, t.Cell)
		if t.Role == engine.RoleEraser {
			dst.SetColored(x, y, engine.EraserGlyph, core.ColorBrightRed)
			continue
		}
		dst.SetColored(x, y, t.Glyph, core.ColorBrightYellow)
	}
}

func renderSnake(dst *core.Screen, b core.Rect, snake []engine.Cell) {
	for i := len(snake) - 1; i >= 0; i-- {
		x, y := cellAt(b, snake[i])
		if i == 0 {
			dst.SetColored(x, y, 'O', core.ColorBrightGreen) // Head
		} else {
			dst.SetColored(x, y, 'o', core.ColorGreen)
		}
	}
}

// renderClue draws the prompt, the word being spelled and the hint below
// the board.
func renderClue(dst *core.Screen, y int, v engine.View) {
	if v.ClueCount == 0 {
		return
	}
	prompt := v.Prompt
	if v.Image != "" {
		prompt = v.Image + "  " + prompt
	}
	dst.DrawTextCenteredColored(y, truncate(prompt, dst.Width()), core.ColorCyan)
	dst.DrawTextCenteredColored(y+1, spaced(v.Display), core.ColorBrightYellow)
	if v.HintVisible && v.Hint != "" {
		dst.DrawTextCenteredColored(y+2, truncate("Hint: "+v.Hint, dst.Width()), core.ColorMagenta)
	}
}

func (g *Game) renderStateOverlay(dst *core.Screen, v engine.View) {
	switch st := v.State.(type) {
	case engine.Idle:
		renderOverlay(dst, core.ColorCyan, g.Title(), "Press Space or tap to start")
	case engine.Countdown:
		renderOverlay(dst, core.ColorYellow, "Get ready!", fmt.Sprintf("%d", st.Remaining))
	case engine.Paused:
		renderOverlay(dst, core.ColorYellow, "Paused", "Press P to continue")
	case engine.WordComplete:
		lines := []string{
			fmt.Sprintf("You spelled %s!", st.Word),
			fmt.Sprintf("+%d bonus", st.Bonus),
		}
		lines = append(lines, wrap(st.Fact, min(factWidth, dst.Width()-6))...)
		renderOverlay(dst, core.ColorBrightGreen, lines...)
	case engine.GameOver:
		renderOverlay(dst, core.ColorRed, "Game Over", collisionText(st.Cause), "Press R to restart")
	case engine.AllWordsComplete:
		renderOverlay(dst, core.ColorBrightGreen,
			"Lesson complete!",
			fmt.Sprintf("Score: %d  Words: %d/%d", st.Result.Score, st.Result.WordsCompleted, st.Result.TotalWords),
			"Press R to play again")
	}
}

func collisionText(c engine.Collision) string {
	switch c {
	case engine.CollisionWall:
		return "You hit the wall"
	case engine.CollisionSelf:
		return "You bit your own tail"
	default:
		return "Ouch"
	}
}

// renderOverlay draws a centered box with the given lines. The first line
// uses the accent color.
func renderOverlay(dst *core.Screen, accent core.Color, lines ...string) {
	maxW := max(0, dst.Width()-4)
	width := 0
	for i, l := range lines {
		lines[i] = truncate(l, maxW)
		width = max(width, utf8.RuneCountInString(lines[i]))
	}

	box := core.CenterIn(dst.Width(), dst.Height(), width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, accent)

	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = accent
		}
		dst.DrawTextCenteredColored(box.Y+1+i, l, c)
	}
}

// spaced puts a space between letters so blanks stay readable.
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
