package item

import (
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/anselm/paratype/segment"
	"github.com/anselm/paratype/shape"
)

// SoftHyphen is U+00AD, the invisible marker at a discretionary
// hyphenation point. The hyphenator inserts it; the item generator reads
// it back out as a Penalty candidate.
const SoftHyphen = '­'

// softHyphenPenalty is the penalty value assigned to a soft-hyphen break.
const softHyphenPenalty = 50

// isBidiParagraphSeparator reports whether r carries the Unicode
// bidirectional class ParagraphSeparator (e.g. U+2029, U+000D, U+0085).
// UAX #14 already forces a line-break unit boundary after such runes, but
// it does not tell us the unit ended on a *paragraph* separator rather
// than an ordinary mandatory line break, so a bidi classification lookup
// is the part '\n' alone can't cover.
func isBidiParagraphSeparator(r rune) bool {
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.B
}

// lastRune returns the final rune of s, or 0 for an empty string.
func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	r := []rune(s)
	return r[len(r)-1]
}

// Generate converts paragraph text into its item stream: a sequence of
// Box, Glue and Penalty items whose widths are measured under font and
// whose break opportunities come from seg's UAX #14 line-break units.
//
// text is expected to already have been run through a Hyphenator, so
// that SoftHyphen marks soft-hyphenation points and '\n' marks forced
// paragraph breaks; Generate treats both purely as semantic markers
// stripped from the box text they trail.
//
// Generate collects the whole item slice eagerly rather than yielding
// lazily: both breakers need random access for running-sum lookups, so
// there is no benefit to streaming, and the O(items) allocation is
// cheap next to the width measurement work already being done.
func Generate(text string, font shape.Font, seg segment.Segmenter) ([]ParagraphItem, error) {
	spaceWidth, err := textWidth(" ", font)
	if err != nil {
		return nil, err
	}
	hyphenWidth, err := textWidth("-", font)
	if err != nil {
		return nil, err
	}

	var items []ParagraphItem
	stems := newStemAccumulator(font)

	for _, unit := range seg.LineBreakUnits(text) {
		trailing := lastRune(unit)
		paragraphBreak := trailing == '\n' || isBidiParagraphSeparator(trailing)

		// Strip any trailing run of space, soft hyphen and newline in
		// one pass, matching Python's rstrip(" ­\n") cutset. A unit
		// ending on some other bidi paragraph separator (U+2029 and
		// friends) isn't in that cutset, so peel it off separately.
		stem := strings.TrimRight(unit, " \n"+string(SoftHyphen))
		if paragraphBreak && trailing != '\n' && strings.HasSuffix(stem, string(trailing)) {
			stem = stem[:len(stem)-len(string(trailing))]
		}

		if len(stem) > 0 {
			width, err := stems.push(stem)
			if err != nil {
				return nil, err
			}
			box, err := NewBox(width, stem)
			if err != nil {
				return nil, err
			}
			items = append(items, box)
		} else {
			stems.reset()
		}

		switch {
		case strings.HasSuffix(unit, string(SoftHyphen)):
			penalty, err := NewPenalty(hyphenWidth, softHyphenPenalty, true)
			if err != nil {
				return nil, err
			}
			penalty.Text = "-"
			items = append(items, penalty)

		case paragraphBreak:
			glue, err := NewGlue(0, MaxStretch, 0, "")
			if err != nil {
				return nil, err
			}
			forced, err := NewPenalty(0, -MaxPenalty, true)
			if err != nil {
				return nil, err
			}
			items = append(items, glue, forced)

		case strings.HasSuffix(unit, " "):
			glue, err := NewGlue(spaceWidth, 0.5*spaceWidth, 0.3*spaceWidth, " ")
			if err != nil {
				return nil, err
			}
			items = append(items, glue)
		}
	}

	// Terminal glue + forced break: guarantees every paragraph, even an
	// empty one, ends on a feasible forced breakpoint.
	glue, err := NewGlue(0, MaxStretch, 0, "")
	if err != nil {
		return nil, err
	}
	forced, err := NewPenalty(0, -MaxPenalty, true)
	if err != nil {
		return nil, err
	}
	items = append(items, glue, forced)

	return items, nil
}
