// Package paratype ties the paragraph item model, the two line breakers,
// the Unicode segmenter and the hyphenator together behind one entry
// point: BreakParagraph takes raw text and a font and returns a broken
// paragraph.
package paratype

import (
	"fmt"

	"github.com/anselm/paratype/hyphen"
	"github.com/anselm/paratype/item"
	"github.com/anselm/paratype/layout"
	"github.com/anselm/paratype/linebreak"
	"github.com/anselm/paratype/segment"
	"github.com/anselm/paratype/shape"
)

// Algorithm selects which line breaker BreakParagraph runs.
type Algorithm int

const (
	// Greedy performs single-pass first-fit breaking.
	Greedy Algorithm = iota
	// Optimal performs full Knuth-Plass dynamic-programming breaking.
	Optimal
)

func (a Algorithm) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Optimal:
		return "optimal"
	default:
		return "unknown"
	}
}

// BreakParagraph runs the whole pipeline over text: optional
// hyphenation, item generation, then line breaking by the chosen
// algorithm. hyph may be nil, in which case text is not hyphenated
// before item generation.
//
// Returns the generated item stream alongside the indices, into that
// stream, at which the chosen breaker placed line breaks.
func BreakParagraph(
	text string,
	font shape.Font,
	seg segment.Segmenter,
	hyph hyphen.Hyphenator,
	width layout.Abs,
	algo Algorithm,
	params linebreak.Params,
) ([]item.ParagraphItem, []int, error) {
	if hyph != nil {
		text = hyph.Hyphenate(text, seg)
	}

	items, err := item.Generate(text, font, seg)
	if err != nil {
		return nil, nil, fmt.Errorf("paratype: generating items: %w", err)
	}

	var breaks []int
	switch algo {
	case Greedy:
		breaks = linebreak.Greedy(items, width)
	case Optimal:
		breaks = linebreak.Optimal(items, width, params)
	default:
		return nil, nil, fmt.Errorf("paratype: unknown algorithm %v", algo)
	}

	return items, breaks, nil
}

// Lines splits items at the given break indices (as returned by
// BreakParagraph) into per-line item slices, each running up to and
// including its break item.
func Lines(items []item.ParagraphItem, breaks []int) [][]item.ParagraphItem {
	lines := make([][]item.ParagraphItem, 0, len(breaks))
	start := 0
	for _, end := range breaks {
		lines = append(lines, items[start:end+1])
		start = end + 1
	}
	return lines
}
