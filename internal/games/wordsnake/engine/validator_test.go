package engine

import "testing"

func tile(glyph rune, role TileRole) Tile {
	return Tile{Cell: Cell{X: 1, Y: 1}, Glyph: glyph, Role: role}
}

func TestOrderInvariantEasy(t *testing.T) {
	sc := DefaultScoring()

	// T before C is out of order
	v := Validate(tile('T', RoleCorrect), "CAT", "", Easy, sc)
	if v.Outcome != OutcomeRejected {
		t.Fatalf("Expected rejection, got %v", v.Outcome)
	}
	if v.Collected != "" || v.Grow || v.RemoveTile || v.ScoreDelta != 0 {
		t.Errorf("Rejected verdict changed state: %+v", v)
	}

	v = Validate(tile('C', RoleCorrect), "CAT", "", Easy, sc)
	if v.Outcome != OutcomeAccepted || v.Collected != "C" || v.ScoreDelta != 10 || !v.Grow {
		t.Errorf("Expected C accepted, got %+v", v)
	}
}

func TestStaleCorrectTileEasy(t *testing.T) {
	// An A tile spawned when A was next, eaten after A was already collected
	v := Validate(tile('A', RoleCorrect), "CAT", "CA", Easy, DefaultScoring())
	if v.Outcome != OutcomeRejected {
		t.Errorf("Expected stale tile rejected, got %v", v.Outcome)
	}
	if v.Collected != "CA" {
		t.Errorf("Expected collected unchanged, got %q", v.Collected)
	}
}

func TestDistractorEasyRejected(t *testing.T) {
	v := Validate(tile('C', RoleDistractor), "CAT", "", Easy, DefaultScoring())
	if v.Outcome != OutcomeRejected || v.RemoveTile {
		t.Errorf("Expected distractor to stay on the grid, got %+v", v)
	}
}

func TestHardModeAcceptsAsTyped(t *testing.T) {
	sc := DefaultScoring()

	v := Validate(tile('C', RoleCorrect), "CAT", "", Hard, sc)
	if v.Collected != "C" || v.ScoreDelta != 10 {
		t.Fatalf("Expected C accepted, got %+v", v)
	}

	v = Validate(tile('Q', RoleDistractor), "CAT", "C", Hard, sc)
	if v.Outcome != OutcomePenalized {
		t.Errorf("Expected penalty, got %v", v.Outcome)
	}
	if v.Collected != "CQ" {
		t.Errorf("Expected CQ, got %q", v.Collected)
	}
	if v.ScoreDelta != -5 || !v.Grow || !v.RemoveTile {
		t.Errorf("Unexpected penalty verdict: %+v", v)
	}
	if v.Complete {
		t.Error("CQ must not complete CAT")
	}
}

func TestDistractorCanCompleteInHardMode(t *testing.T) {
	// A distractor that happens to be the right letter is still a miss,
	// but the word is judged on its letters alone.
	v := Validate(tile('T', RoleDistractor), "CAT", "CA", Hard, DefaultScoring())
	if v.ScoreDelta != -5 {
		t.Errorf("Expected -5, got %d", v.ScoreDelta)
	}
	if !v.Complete {
		t.Error("Expected CAT to be complete")
	}
}

func TestEraser(t *testing.T) {
	v := Validate(tile(EraserGlyph, RoleEraser), "CAT", "CA", Hard, DefaultScoring())
	if v.Outcome != OutcomeErased {
		t.Fatalf("Expected erase, got %v", v.Outcome)
	}
	if v.Collected != "C" {
		t.Errorf("Expected C, got %q", v.Collected)
	}
	if v.Grow {
		t.Error("Eraser must not grow the snake")
	}
	if !v.RemoveTile {
		t.Error("Eraser must be consumed")
	}
}

func TestAutoSpaceSeaTurtle(t *testing.T) {
	sc := DefaultScoring()
	collected := ""
	for _, r := range "SEA" {
		v := Validate(tile(r, RoleCorrect), "SEA TURTLE", collected, Easy, sc)
		if v.Outcome != OutcomeAccepted {
			t.Fatalf("Expected %c accepted, got %v", r, v.Outcome)
		}
		collected = v.Collected
	}
	if collected != "SEA " {
		t.Fatalf("Expected separator after SEA, got %q", collected)
	}

	next, ok := NextLetter("SEA TURTLE", collected)
	if !ok || next != 'T' {
		t.Fatalf("Expected next letter T, got %q (ok=%v)", next, ok)
	}

	v := Validate(tile('T', RoleCorrect), "SEA TURTLE", collected, Easy, sc)
	if v.Collected != "SEA T" {
		t.Errorf("Expected SEA T, got %q", v.Collected)
	}
}

func TestCompletionIgnoresSpaces(t *testing.T) {
	tests := []struct {
		target, collected string
		want              bool
	}{
		{"CAT", "CAT", true},
		{"CAT", "CA", false},
		{"SEA TURTLE", "SEA TURTLE", true},
		{"SEA TURTLE", "SEATURTLE", true},
		{"CAT", "cat", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := IsComplete(tt.target, tt.collected); got != tt.want {
			t.Errorf("IsComplete(%q, %q) = %v, want %v", tt.target, tt.collected, got, tt.want)
		}
	}
}

func TestTrimLastLetter(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"C", ""},
		{"CA", "C"},
		{"SEA ", "SE"},
		{"SEA T", "SEA "},
	}
	for _, tt := range tests {
		if got := TrimLastLetter(tt.in); got != tt.want {
			t.Errorf("TrimLastLetter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayWord(t *testing.T) {
	tests := []struct {
		target, collected, want string
	}{
		{"CAT", "", "___"},
		{"CAT", "CA", "CA_"},
		{"SEA TURTLE", "SEA T", "SEA T_____"},
		{"CAT", "CATX", "CATX"},
	}
	for _, tt := range tests {
		if got := DisplayWord(tt.target, tt.collected, '_'); got != tt.want {
			t.Errorf("DisplayWord(%q, %q) = %q, want %q", tt.target, tt.collected, got, tt.want)
		}
	}
}

func TestNormalizeTarget(t *testing.T) {
	if got := NormalizeTarget("  SEA   TURTLE "); got != "SEA TURTLE" {
		t.Errorf("Expected SEA TURTLE, got %q", got)
	}
}

func TestWordBonus(t *testing.T) {
	sc := DefaultScoring()
	tests := []struct {
		elapsed, want int
	}{
		{0, 150},
		{4, 146},
		{100, 50},
		{130, 50},
	}
	for _, tt := range tests {
		if got := sc.WordBonus(tt.elapsed); got != tt.want {
			t.Errorf("WordBonus(%d) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}
