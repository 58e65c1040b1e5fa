package clues

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed packs/*.yaml
var builtinFS embed.FS

// BuiltinSource marks packs compiled into the binary.
const BuiltinSource = "builtin"

// Parse decodes, normalises and validates one pack.
func Parse(data []byte) (Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pack{}, fmt.Errorf("clues: parse: %w", err)
	}
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Pack{}, err
	}
	return p, nil
}

// LoadFile reads a pack from disk.
func LoadFile(path string) (Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("clues: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Pack{}, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// Builtin returns the packs compiled into the binary, sorted by ID.
func Builtin() ([]Pack, error) {
	entries, err := fs.ReadDir(builtinFS, "packs")
	if err != nil {
		return nil, fmt.Errorf("clues: builtin: %w", err)
	}

	packs := make([]Pack, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("packs/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("clues: builtin %s: %w", e.Name(), err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("clues: builtin %s: %w", e.Name(), err)
		}
		p.Source = BuiltinSource
		packs = append(packs, p)
	}
	sortPacks(packs)
	return packs, nil
}

// LoadDir reads every *.yaml and *.yml pack in dir. Files that fail to
// parse or validate are skipped and reported in skipped. A missing
// directory yields no packs and no errors.
func LoadDir(dir string) (packs []Pack, skipped []error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("clues: read dir %s: %w", dir, err)}
	}

	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		packs = append(packs, p)
	}
	sortPacks(packs)
	return packs, skipped
}

// LoadAll returns the built-in packs merged with the packs in dir, sorted
// by ID. A pack in dir replaces a built-in pack with the same ID.
func LoadAll(dir string) ([]Pack, []error) {
	var skipped []error
	byID := make(map[string]Pack)

	builtin, err := Builtin()
	if err != nil {
		skipped = append(skipped, err)
	}
	for _, p := range builtin {
		byID[p.ID] = p
	}

	user, userSkipped := LoadDir(dir)
	skipped = append(skipped, userSkipped...)
	for _, p := range user {
		byID[p.ID] = p
	}

	packs := make([]Pack, 0, len(byID))
	for _, p := range byID {
		packs = append(packs, p)
	}
	sortPacks(packs)
	return packs, skipped
}

// LoadByID finds one pack among LoadAll(dir).
func LoadByID(dir, id string) (Pack, error) {
	packs, _ := LoadAll(dir)
	for _, p := range packs {
		if p.ID == id {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("%w: %q (available: %s)", ErrPackNotFound, id, strings.Join(ids(packs), ", "))
}

// ListIDs returns the IDs of LoadAll(dir).
func ListIDs(dir string) []string {
	packs, _ := LoadAll(dir)
	return ids(packs)
}

// UserDir returns ~/.wordsnake/packs, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsnake", "packs")
}

func ids(packs []Pack) []string {
	out := make([]string, len(packs))
	for i, p := range packs {
		out[i] = p.ID
	}
	return out
}

func sortPacks(packs []Pack) {
	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})
}
