package linebreak

import (
	"github.com/anselm/paratype/item"
	"github.com/anselm/paratype/layout"
)

// Greedy performs single-pass first-fit line breaking: it walks the
// feasible break candidates in order and breaks as late as possible,
// only once a line would overflow width. It never looks ahead and never
// reconsiders a choice, so it runs in O(items) time but can produce a
// visibly worse paragraph than Optimal, particularly a "rivers of
// whitespace" last line before a forced break.
//
// Uses item.RunningSums for O(1) natural-width lookups; RunningSums
// never accumulates a Penalty's width, since a Penalty only
// contributes to a line's natural width when the break is actually
// taken there.
func Greedy(items []item.ParagraphItem, width layout.Abs) []int {
	type candidate struct {
		itemIndex int
		it        item.ParagraphItem
	}

	var candidates []candidate
	prevWasBox := false
	for idx, pi := range items {
		switch {
		case pi.Kind == item.PenaltyKind && pi.Penalty < item.MaxPenalty:
			candidates = append(candidates, candidate{idx, pi})
		case pi.Kind == item.GlueKind && prevWasBox:
			candidates = append(candidates, candidate{idx, pi})
		}
		prevWasBox = pi.Kind == item.BoxKind
	}

	sums := item.RunningSums(items)

	var breaks []int
	currentStart := 0

	for i, c := range candidates {
		if c.it.Penalty <= -item.MaxPenalty {
			breaks = append(breaks, c.itemIndex)
			currentStart = c.itemIndex + 1
			continue
		}

		if i >= len(candidates)-1 {
			continue
		}

		next := candidates[i+1]
		natural := sums[next.itemIndex].Width - sums[currentStart].Width
		if next.it.Kind == item.PenaltyKind {
			natural += next.it.Width
		}

		if natural > width {
			breaks = append(breaks, c.itemIndex)
			currentStart = c.itemIndex + 1
		}
	}

	return breaks
}
