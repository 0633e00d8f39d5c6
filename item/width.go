package item

import (
	"strings"

	"github.com/anselm/paratype/layout"
	"github.com/anselm/paratype/shape"
)

// textWidth shapes text under font and sums the resulting glyph advances.
// Used directly for the fixed " " and "-" reference widths; the item
// generator's running stem accumulator below uses incremental
// measurement instead, since shaping is context-sensitive.
func textWidth(text string, font shape.Font) (layout.Abs, error) {
	glyphs, err := font.Shape(text)
	if err != nil {
		return 0, err
	}
	var width layout.Abs
	for _, g := range glyphs {
		width += layout.Abs(g.XAdvance)
	}
	return width, nil
}

// stemAccumulator measures the incremental width of a growing sequence of
// text stems without ever summing independently-shaped pieces: each call
// re-shapes the full joined prefix and reports only the delta over the
// previously measured prefix, so that shaping context that spans a stem
// boundary (kerning, ligatures) is accounted for correctly.
type stemAccumulator struct {
	font    shape.Font
	stems   []string
	running layout.Abs
}

func newStemAccumulator(font shape.Font) *stemAccumulator {
	return &stemAccumulator{font: font}
}

// push appends stem to the accumulator and returns the width it added.
func (a *stemAccumulator) push(stem string) (layout.Abs, error) {
	a.stems = append(a.stems, stem)
	total, err := textWidth(strings.Join(a.stems, ""), a.font)
	if err != nil {
		return 0, err
	}
	delta := total - a.running
	a.running = total
	return delta, nil
}

// reset clears the accumulator; called when a break is imminent and the
// following stem should not be measured against prior context.
func (a *stemAccumulator) reset() {
	a.stems = a.stems[:0]
	a.running = 0
}
