package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(32, 20)

	if s.Width() != 32 || s.Height() != 20 {
		t.Fatalf("Size = %dx%d, expected 32x20", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'C', ColorBrightGreen)
	if c := s.GetCell(5, 5); c.Rune != 'C' || c.Color != ColorBrightGreen {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	s.Set(5, 5, 'A')
	if c := s.GetCell(5, 5); c.Color != ColorDefault {
		t.Errorf("Set should reset the color, got %v", c.Color)
	}

	// Out of bounds writes are ignored
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(0, 100, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds reads should return a blank cell")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 2)
	// The eraser glyph is three bytes but one cell
	s.DrawText(0, 0, "⌫AB")

	if got := s.Row(0); !strings.HasPrefix(got, "⌫AB ") {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at the right edge")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCenteredColored(2, "SEA", ColorYellow)

	x := (20 - 3) / 2
	if s.Get(x, 2) != 'S' || s.Get(x+2, 2) != 'A' {
		t.Errorf("Centered text misplaced: %q", s.Row(2))
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Error("Centered text lost its color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '·', ColorGray)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '·' || c.Color != ColorGray {
				t.Errorf("FillRect: unexpected %+v at (%d, %d)", c, x, y)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not touch cells outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	corners := map[[2]int]rune{
		{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("Corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("Horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("Vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorCyan {
		t.Error("Box should use the given color")
	}

	// Degenerate boxes draw nothing
	s2 := NewScreen(5, 5)
	s2.DrawBox(NewRect(0, 0, 1, 3), ColorCyan)
	if s2.Get(0, 0) != ' ' {
		t.Error("A one-column box should not be drawn")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Out of bounds row should be spaces, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("Resize should clear the buffer")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("Negative width should clamp to 0, got %d", s.Width())
	}
}

func TestColorString(t *testing.T) {
	if ColorBrightGreen.String() != "bright-green" {
		t.Errorf("Unexpected name %q", ColorBrightGreen.String())
	}
	if Color(200).String() != "unknown" {
		t.Error("Out of range colors should be unknown")
	}
}
