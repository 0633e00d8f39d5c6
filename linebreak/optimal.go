package linebreak

import (
	"math"
	"sort"

	"github.com/anselm/paratype/item"
	"github.com/anselm/paratype/layout"
)

// sortedKeys returns the keys of nodes in ascending NodeKey order,
// mirroring the deterministic iteration order a SortedDict gives the
// reference implementation (Go maps iterate in random order, which
// would otherwise make tie-broken demerit comparisons nondeterministic
// between runs).
func sortedKeys(nodes map[NodeKey]NodeData) []NodeKey {
	keys := make([]NodeKey, 0, len(nodes))
	for k := range nodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.LineIndex != b.LineIndex {
			return a.LineIndex < b.LineIndex
		}
		if a.ItemIndex != b.ItemIndex {
			return a.ItemIndex < b.ItemIndex
		}
		return a.FitnessClass < b.FitnessClass
	})
	return keys
}

// lineDemerit computes the additional cost of ending a line at
// breakPoint, given the break point (if any) that ended the previous
// line and the fitness classes of the current and previous lines.
//
// A forced break pays only the base term; a non-negative net penalty
// is added inside the squared term; a negative one (a preferred break)
// is subtracted back out as a bonus, which is why it is squared and
// subtracted rather than added.
func lineDemerit(
	params Params,
	prevBreak *BreakPoint,
	bp BreakPoint,
	adjustmentRatio float64,
	fitnessClass, prevFitnessClass FitnessClass,
) float64 {
	penalty := bp.Item.Penalty
	isForced := penalty <= -item.MaxPenalty

	if prevBreak != nil {
		if bp.Item.Flagged && prevBreak.Item.Flagged {
			penalty += params.ExtraFlagPenalty
		}
	}

	diff := int(fitnessClass) - int(prevFitnessClass)
	if diff < 0 {
		diff = -diff
	}
	penalty += params.MismatchedFitnessPenalty * float64(diff)
	penalty += params.LinePenalty

	base := 1.0 + 100.0*math.Pow(math.Abs(adjustmentRatio), 3.0)

	switch {
	case isForced:
		return base * base
	case penalty >= 0.0:
		total := base + penalty
		return total * total
	default:
		return base*base - penalty*penalty
	}
}

// Optimal performs Knuth-Plass dynamic-programming line breaking: it
// tracks every feasible active break simultaneously, scored by
// accumulated demerits, and returns the break sequence with the lowest
// total demerits over the whole paragraph.
//
// Every reachable active node is kept until it is proven infeasible or
// beaten by a cheaper path to the same (line, item, fitness) state,
// rather than pruning to a bounded window -- this is the un-pruned
// textbook search, not an approximation of it.
//
// Panics if the active set is empty once every candidate has been
// consumed. The break-of-last-resort rule keeps at least one node active
// at every candidate, so reaching that panic is a true programming error.
func Optimal(items []item.ParagraphItem, width layout.Abs, params Params) []int {
	active := map[NodeKey]NodeData{
		startKey: {},
	}

	potentialBreaks(items, func(bp BreakPoint) {
		type feasible struct {
			key  NodeKey
			data NodeData
		}
		var feasibleBreaks []feasible
		toDeactivate := map[NodeKey]bool{}

		keys := sortedKeys(active)
		total := len(keys)

		for _, nodeKey := range keys {
			nodeData := active[nodeKey]

			prevSum := item.RunningSum{}
			var prevBreak *BreakPoint
			if nodeData.BreakPoint != nil {
				prevSum = nodeData.BreakPoint.RunningSum
				prevBreak = nodeData.BreakPoint
			}

			ratio := adjustmentRatio(prevSum, bp, width)
			fitness := FitnessClassFor(ratio)

			if ratio < -1.0 || bp.Item.Penalty <= -item.MaxPenalty {
				toDeactivate[nodeKey] = true

				// If deactivating every remaining node would leave nothing
				// active, force this break to be feasible anyway: a "break
				// of last resort" that guarantees the search always finds
				// some solution.
				if len(toDeactivate) == total {
					ratio = -1.0
				}
			}

			demerit := lineDemerit(params, prevBreak, bp, ratio, fitness, nodeKey.FitnessClass)
			totalDemerits := demerit + nodeData.TotalDemerits

			breakKey := NodeKey{
				LineIndex:    nodeKey.LineIndex + 1,
				ItemIndex:    bp.ItemIndex,
				FitnessClass: fitness,
			}
			bpCopy := bp
			nodeDataCopy := nodeData
			breakData := NodeData{
				BreakPoint:    &bpCopy,
				TotalDemerits: totalDemerits,
				PreviousKey:   nodeKey,
				Previous:      &nodeDataCopy,
			}

			if ratio >= -1.0 && ratio < params.UpperAdjustmentRatio {
				feasibleBreaks = append(feasibleBreaks, feasible{breakKey, breakData})
			}
		}

		for nk := range toDeactivate {
			delete(active, nk)
		}

		for _, fb := range feasibleBreaks {
			existing, ok := active[fb.key]
			if !ok || existing.TotalDemerits > fb.data.TotalDemerits {
				active[fb.key] = fb.data
			}
		}
	})

	if len(active) == 0 {
		panic("linebreak: no feasible break sequence found")
	}

	var best *NodeData
	for _, nk := range sortedKeys(active) {
		nd := active[nk]
		if best == nil || nd.TotalDemerits < best.TotalDemerits {
			ndCopy := nd
			best = &ndCopy
		}
	}

	var result []int
	for node := best; node != nil; node = node.Previous {
		if node.BreakPoint != nil {
			result = append(result, node.BreakPoint.ItemIndex)
		}
	}

	// Reverse into paragraph order.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return result
}
