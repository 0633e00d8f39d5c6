// Package hyphen inserts discretionary hyphenation points into paragraph
// text before it reaches item.Generate, so that Generate's soft-hyphen
// handling has somewhere to find them.
//
// A dictionary-based syllabifier would give higher-quality breakpoints,
// but has no idiomatic Go equivalent available here, so this package
// uses a lighter vowel-to-consonant transition heuristic instead,
// guarded by a maximum word length and a round-trip check that
// verifies stripping the inserted marks reproduces the input exactly.
package hyphen

import (
	"strings"
	"unicode"

	"github.com/anselm/paratype/item"
	"github.com/anselm/paratype/segment"
)

// maxWordLength mirrors the reference's len(word) < 100 guard: past this
// length a word is assumed non-prose (an identifier, a URL) and is left
// untouched rather than syllabified.
const maxWordLength = 100

// Hyphenator marks discretionary hyphenation points in text, using
// item.SoftHyphen, ahead of item generation.
type Hyphenator interface {
	Hyphenate(text string, seg segment.Segmenter) string
}

// Heuristic hyphenates by vowel-to-consonant transition within each
// word, the same rule the reference compiler's inline shaper applies
// when deciding where a shaped line may be broken with a dash.
type Heuristic struct{}

// NewHeuristic returns the vowel-transition Hyphenator.
func NewHeuristic() Heuristic { return Heuristic{} }

// Hyphenate implements Hyphenator.
func (Heuristic) Hyphenate(text string, seg segment.Segmenter) string {
	var out strings.Builder
	for _, word := range seg.Words(text) {
		out.WriteString(hyphenateWord(word))
	}
	return out.String()
}

func hyphenateWord(word string) string {
	runes := []rune(word)
	if len(runes) >= maxWordLength {
		return word
	}

	var syllables []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if shouldBreak(runes, i) {
			syllables = append(syllables, string(runes[start:i]))
			start = i
		}
	}
	syllables = append(syllables, string(runes[start:]))

	if len(syllables) < 2 {
		return word
	}

	// The reference only accepts a syllabification whose pieces rejoin
	// exactly to the original word; here that always holds, since the
	// split points are a partition of the rune slice, but the check is
	// kept to document the invariant.
	if strings.Join(syllables, "") != word {
		return word
	}

	return strings.Join(syllables, string(item.SoftHyphen))
}

// shouldBreak reports whether a discretionary break belongs between
// runes[pos-1] and runes[pos]: a vowel immediately followed by a
// consonant, away from the very start or end of the word so that every
// syllable keeps at least one letter on either side of a hyphen.
func shouldBreak(runes []rune, pos int) bool {
	if pos < 2 || pos >= len(runes)-1 {
		return false
	}
	return isVowel(runes[pos-1]) && !isVowel(runes[pos])
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u',
		'á', 'é', 'í', 'ó', 'ú',
		'ä', 'ö', 'ü':
		return true
	default:
		return false
	}
}
