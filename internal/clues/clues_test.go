package clues

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePack(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuiltinPacksValid(t *testing.T) {
	packs, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin: %v", err)
	}
	if len(packs) < 3 {
		t.Fatalf("expected at least 3 built-in packs, got %d", len(packs))
	}
	for i, p := range packs {
		if p.Source != BuiltinSource {
			t.Errorf("pack %s: source %q", p.ID, p.Source)
		}
		if i > 0 && packs[i-1].ID >= p.ID {
			t.Errorf("packs not sorted: %s before %s", packs[i-1].ID, p.ID)
		}
		for _, c := range p.Clues {
			if c.Target != NormalizeTarget(c.Target) {
				t.Errorf("pack %s: target %q not normalised", p.ID, c.Target)
			}
		}
	}
}

func TestParseNormalises(t *testing.T) {
	p, err := Parse([]byte(`
id: ocean
clues:
  - prompt: "  A slow swimmer  "
    target: "  sea    turtle "
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Name != "ocean" {
		t.Errorf("name should default to id, got %q", p.Name)
	}
	if got := p.Clues[0].Target; got != "SEA TURTLE" {
		t.Errorf("target = %q, expected SEA TURTLE", got)
	}
	if got := p.Clues[0].Prompt; got != "A slow swimmer" {
		t.Errorf("prompt = %q", got)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no clues", "id: empty\nclues: []\n", ErrNoClues},
		{"empty target", "id: x\nclues:\n  - prompt: p\n    target: '   '\n", ErrEmptyTarget},
		{"empty prompt", "id: x\nclues:\n  - target: cat\n", ErrEmptyPrompt},
		{"digits in target", "id: x\nclues:\n  - prompt: p\n    target: r2d2\n", ErrInvalidTarget},
		{"bad id", "id: My Pack\nclues:\n  - prompt: p\n    target: cat\n", ErrInvalidID},
		{"missing id", "clues:\n  - prompt: p\n    target: cat\n", ErrInvalidID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestLoadDirSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "good.yaml", "id: good\nclues:\n  - prompt: p\n    target: dog\n")
	writePack(t, dir, "bad.yml", "id: bad\nclues: []\n")
	writePack(t, dir, "notes.txt", "not a pack")
	writePack(t, dir, "broken.yaml", "id: [\n")

	packs, skipped := LoadDir(dir)
	if len(packs) != 1 || packs[0].ID != "good" {
		t.Fatalf("expected only the good pack, got %+v", packs)
	}
	if packs[0].Source != filepath.Join(dir, "good.yaml") {
		t.Errorf("source = %q", packs[0].Source)
	}
	if len(skipped) != 2 {
		t.Errorf("expected 2 skipped files, got %v", skipped)
	}

	packs, skipped = LoadDir(filepath.Join(dir, "missing"))
	if packs != nil || skipped != nil {
		t.Error("missing directory should yield nothing")
	}
}

func TestLoadAllOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "animals.yaml", "id: animals\nname: My Animals\nclues:\n  - prompt: p\n    target: owl\n")
	writePack(t, dir, "space.yaml", "id: space\nclues:\n  - prompt: p\n    target: moon\n")

	packs, skipped := LoadAll(dir)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped: %v", skipped)
	}

	var animals Pack
	found := map[string]bool{}
	for _, p := range packs {
		found[p.ID] = true
		if p.ID == "animals" {
			animals = p
		}
	}
	if !found["space"] || !found["fruits"] {
		t.Errorf("expected user and built-in packs, got %v", ListIDs(dir))
	}
	if animals.Name != "My Animals" || animals.Clues[0].Target != "OWL" {
		t.Errorf("user pack should replace the built-in one, got %+v", animals)
	}
}

func TestLoadByID(t *testing.T) {
	p, err := LoadByID("", "fruits")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if p.ID != "fruits" {
		t.Errorf("got pack %q", p.ID)
	}

	if _, err := LoadByID("", "nope"); !errors.Is(err, ErrPackNotFound) {
		t.Errorf("expected ErrPackNotFound, got %v", err)
	}
}

func TestEngineClues(t *testing.T) {
	p := Pack{ID: "x", Clues: []Clue{{Prompt: "p", Target: "CAT", Hint: "h", Fact: "f", Image: "i"}}}
	ec := p.EngineClues()
	if len(ec) != 1 || ec[0].Target != "CAT" || ec[0].Hint != "h" || ec[0].Fact != "f" || ec[0].Image != "i" {
		t.Errorf("unexpected conversion: %+v", ec)
	}
}
