// Package core holds the terminal-independent building blocks shared by the
// game adapter and the TUI: the colored cell buffer games draw into, the
// per-frame input, and the runtime contract between them. It imports no
// Bubble Tea so game code stays testable without a terminal.
package core

// Rect is an axis-aligned area on the screen, in cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// CenterIn returns a w×h rectangle centered inside an area of outerW×outerH.
// When the area is too small the rectangle is pinned to the top-left.
func CenterIn(outerW, outerH, w, h int) Rect {
	return Rect{X: max(0, (outerW-w)/2), Y: max(0, (outerH-h)/2), W: w, H: h}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
