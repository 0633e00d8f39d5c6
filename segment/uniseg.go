package segment

import "github.com/rivo/uniseg"

// UnicodeSegmenter is the wired Segmenter implementation, backed by
// github.com/rivo/uniseg's UAX #14/#29 step iterators. It holds no state
// and is safe for concurrent use.
type UnicodeSegmenter struct{}

// NewUnicodeSegmenter returns the wired Segmenter implementation.
func NewUnicodeSegmenter() *UnicodeSegmenter {
	return &UnicodeSegmenter{}
}

// LineBreakUnits implements Segmenter.
func (UnicodeSegmenter) LineBreakUnits(text string) []string {
	var units []string
	state := -1
	remaining := text
	for len(remaining) > 0 {
		segment, rest, _, newState := uniseg.FirstLineSegmentInString(remaining, state)
		units = append(units, segment)
		remaining = rest
		state = newState
	}
	return units
}

// GraphemeClusters implements Segmenter.
func (UnicodeSegmenter) GraphemeClusters(text string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// Words implements Segmenter.
func (UnicodeSegmenter) Words(text string) []string {
	var words []string
	remaining := text
	for len(remaining) > 0 {
		word, rest, _ := uniseg.FirstWordInString(remaining)
		words = append(words, word)
		remaining = rest
	}
	return words
}
