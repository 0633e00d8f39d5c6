// Package segment provides the Unicode segmentation contract the item
// generator and hyphenator consume: line-break units (UAX #14), grapheme
// clusters (UAX #29), and words (UAX #29), plus one concrete
// implementation backed by github.com/rivo/uniseg.
package segment

// Segmenter is the Unicode segmentation contract consumed by the item
// generator (LineBreakUnits) and the hyphenator (Words). A grapheme
// cluster iterator is exposed too, for any caller needing to move the
// shaped-width measurer by user-perceived character rather than by byte.
type Segmenter interface {
	// LineBreakUnits splits text into consecutive substrings at every
	// UAX #14 line-break opportunity, each unit retaining whatever
	// trailing whitespace, newline, or soft-hyphen mark ends it.
	LineBreakUnits(text string) []string

	// GraphemeClusters splits text into user-perceived characters.
	GraphemeClusters(text string) []string

	// Words splits text into UAX #29 word segments, including the
	// intervening non-word segments (runs of whitespace/punctuation)
	// as their own entries so that concatenating the result always
	// reconstructs the input exactly.
	Words(text string) []string
}
