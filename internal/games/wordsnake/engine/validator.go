package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Outcome describes what a tile contact did to the word.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeAccepted          // Letter appended, points awarded
	OutcomeRejected          // Wrong letter in easy mode; tile stays
	OutcomePenalized         // Distractor eaten in hard mode
	OutcomeErased            // Eraser removed the last letter
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomePenalized:
		return "penalized"
	case OutcomeErased:
		return "erased"
	default:
		return "none"
	}
}

// Scoring holds the point values used by the validator and the progression.
type Scoring struct {
	LetterPoints    int
	MissPenalty     int
	TimeBonusBase   int
	CompletionBonus int
}

// DefaultScoring returns +10 per letter, -5 per hard-mode miss and a
// completion bonus of max(0, 100-seconds)+50.
func DefaultScoring() Scoring {
	return Scoring{
		LetterPoints:    10,
		MissPenalty:     5,
		TimeBonusBase:   100,
		CompletionBonus: 50,
	}
}

// WordBonus returns the bonus for finishing a word after elapsed seconds.
func (s Scoring) WordBonus(elapsedSeconds int) int {
	return max(0, s.TimeBonusBase-elapsedSeconds) + s.CompletionBonus
}

// Verdict is the result of validating one tile contact. It is a pure value;
// the engine applies it.
type Verdict struct {
	Outcome    Outcome
	Collected  string
	ScoreDelta int
	Grow       bool
	RemoveTile bool
	Complete   bool
}

// Validate decides what happens when the head enters a tile. target is the
// clue's word and collected the letters gathered so far.
func Validate(tile Tile, target, collected string, mode Difficulty, sc Scoring) Verdict {
	switch tile.Role {
	case RoleEraser:
		c := TrimLastLetter(collected)
		return Verdict{
			Outcome:    OutcomeErased,
			Collected:  c,
			RemoveTile: true,
			Complete:   IsComplete(target, c),
		}

	case RoleCorrect:
		if mode == Hard {
			return appendLetter(tile.Glyph, target, collected, OutcomeAccepted, sc.LetterPoints)
		}
		// Re-derive rather than trust the tag; the tile may be stale.
		next, ok := NextLetter(target, collected)
		if ok && tile.Glyph == next {
			return appendLetter(tile.Glyph, target, collected, OutcomeAccepted, sc.LetterPoints)
		}

	case RoleDistractor:
		if mode == Hard {
			return appendLetter(tile.Glyph, target, collected, OutcomePenalized, -sc.MissPenalty)
		}
	}

	return Verdict{Outcome: OutcomeRejected, Collected: collected}
}

func appendLetter(glyph rune, target, collected string, outcome Outcome, delta int) Verdict {
	c := AutoSpace(target, collected+string(glyph))
	return Verdict{
		Outcome:    outcome,
		Collected:  c,
		ScoreDelta: delta,
		Grow:       true,
		RemoveTile: true,
		Complete:   IsComplete(target, c),
	}
}

// Strip removes all whitespace from s.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// NextLetter returns the letter at the stripped target's index equal to the
// number of non-space letters collected. ok is false once collected is as
// long as the target.
func NextLetter(target, collected string) (rune, bool) {
	t := []rune(Strip(target))
	n := utf8.RuneCountInString(Strip(collected))
	if n >= len(t) {
		return 0, false
	}
	return t[n], true
}

// IsComplete reports whether the stripped collected letters spell the
// stripped target.
func IsComplete(target, collected string) bool {
	return Strip(target) != "" && Strip(collected) == Strip(target)
}

// TrimLastLetter removes the last collected character. An inserted separator
// takes the letter before it with it.
func TrimLastLetter(collected string) string {
	r := []rune(collected)
	if len(r) == 0 {
		return collected
	}
	last := r[len(r)-1]
	r = r[:len(r)-1]
	if last == ' ' && len(r) > 0 {
		r = r[:len(r)-1]
	}
	return string(r)
}

// AutoSpace appends a separator when the non-space letter count has reached
// the position of a space in the target.
func AutoSpace(target, collected string) string {
	if strings.HasSuffix(collected, " ") {
		return collected
	}
	n := utf8.RuneCountInString(Strip(collected))
	for _, p := range separatorPositions(target) {
		if p == n {
			return collected + " "
		}
	}
	return collected
}

// separatorPositions returns, for every space in target, the number of
// letters before it.
func separatorPositions(target string) []int {
	var out []int
	letters := 0
	for _, r := range target {
		if unicode.IsSpace(r) {
			out = append(out, letters)
			continue
		}
		letters++
	}
	return out
}

// DisplayWord renders the word for the HUD: collected letters in place,
// blank for the ones still missing, target spaces kept. Letters collected
// past the end of the target (hard mode) are shown after it.
func DisplayWord(target, collected string, blank rune) string {
	have := []rune(Strip(collected))
	var b strings.Builder
	k := 0
	for _, r := range target {
		if unicode.IsSpace(r) {
			b.WriteRune(' ')
			continue
		}
		if k < len(have) {
			b.WriteRune(have[k])
		} else {
			b.WriteRune(blank)
		}
		k++
	}
	for ; k < len(have); k++ {
		b.WriteRune(have[k])
	}
	return b.String()
}

// NormalizeTarget collapses runs of whitespace to single spaces and trims
// the ends. Case is left alone; comparison is case-sensitive.
func NormalizeTarget(target string) string {
	return strings.Join(strings.Fields(target), " ")
}
