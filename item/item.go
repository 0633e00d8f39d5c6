// Package item implements the paragraph item model: the immutable stream
// of box, glue and penalty records that the line breakers operate over.
//
// This is a Go rendering of typst-layout's paragraph preparation stage,
// narrowed down to the item-and-breakpoint model described by Knuth and
// Plass rather than the full shaped-line model the original package
// carries (see DESIGN.md for what was trimmed and why).
package item

import (
	"fmt"
	"math"

	"github.com/anselm/paratype/layout"
)

// Kind tags which variant of ParagraphItem a given value represents.
type Kind int

const (
	// BoxKind is fixed-width typeset material.
	BoxKind Kind = iota
	// GlueKind is elastic inter-word spacing.
	GlueKind
	// PenaltyKind is a permitted or forced break candidate.
	PenaltyKind
)

func (k Kind) String() string {
	switch k {
	case BoxKind:
		return "Box"
	case GlueKind:
		return "Glue"
	case PenaltyKind:
		return "Penalty"
	default:
		return "Unknown"
	}
}

// MaxPenalty is the finite sentinel standing in for +/-infinity. Penalties
// at or beyond this magnitude are treated as infinite: >= MaxPenalty
// forbids a break, <= -MaxPenalty forces one.
const MaxPenalty = 1e6

// MaxStretch is the finite sentinel standing in for infinite stretch,
// used by the terminal and forced-newline glue so that a line ending in
// one of them can always absorb the slack needed to fill out the line.
const MaxStretch = 1e5

// ParagraphItem is one atom of a prepared paragraph: a Box, a Glue, or a
// Penalty. Which fields are meaningful is determined by Kind; this
// mirrors the single tagged record the reference implementation uses
// (one dataclass with an item_type discriminator) rather than splitting
// into three Go types connected by an interface, so that the dynamic
// program below can pattern-match on Kind exactly as the original does.
type ParagraphItem struct {
	Kind Kind

	// Width is the item's natural width. For Box and Glue it always
	// contributes to line width; for Penalty it contributes only when
	// the break is taken at this item (e.g. a discretionary hyphen).
	Width layout.Abs

	// Stretchability and Shrinkability apply to Glue only.
	Stretchability layout.Abs
	Shrinkability  layout.Abs

	// Penalty and Flagged apply to Penalty only.
	Penalty float64
	Flagged bool

	// Text is the substring this item realizes, where applicable. It is
	// advisory for Glue (a downstream painter may render it as a visible
	// space or elide it). For a soft-hyphen Penalty it holds "-", the
	// hyphen shown when the break is taken there; other Penalties leave
	// it empty.
	Text string
}

// NewBox constructs a Box item, validating that width is non-negative.
func NewBox(width layout.Abs, text string) (ParagraphItem, error) {
	if width < 0 {
		return ParagraphItem{}, fmt.Errorf("item: box width %v is negative", width)
	}
	return ParagraphItem{Kind: BoxKind, Width: width, Text: text}, nil
}

// NewGlue constructs a Glue item, validating that width, stretchability
// and shrinkability are all non-negative.
func NewGlue(width, stretch, shrink layout.Abs, text string) (ParagraphItem, error) {
	if width < 0 {
		return ParagraphItem{}, fmt.Errorf("item: glue width %v is negative", width)
	}
	if stretch < 0 {
		return ParagraphItem{}, fmt.Errorf("item: glue stretchability %v is negative", stretch)
	}
	if shrink < 0 {
		return ParagraphItem{}, fmt.Errorf("item: glue shrinkability %v is negative", shrink)
	}
	return ParagraphItem{
		Kind:           GlueKind,
		Width:          width,
		Stretchability: stretch,
		Shrinkability:  shrink,
		Text:           text,
	}, nil
}

// NewPenalty constructs a Penalty item, validating that width is
// non-negative. Penalty itself is intentionally unconstrained: it ranges
// over [-MaxPenalty, +MaxPenalty] and beyond, with anything at or past
// the sentinel treated as the corresponding infinity.
func NewPenalty(width layout.Abs, penalty float64, flagged bool) (ParagraphItem, error) {
	if width < 0 {
		return ParagraphItem{}, fmt.Errorf("item: penalty width %v is negative", width)
	}
	return ParagraphItem{Kind: PenaltyKind, Width: width, Penalty: penalty, Flagged: flagged}, nil
}

// IsForced reports whether this item is a forced break: a Penalty at or
// beyond -MaxPenalty, which both breakers must always split at.
func (pi ParagraphItem) IsForced() bool {
	return pi.Kind == PenaltyKind && pi.Penalty <= -MaxPenalty
}

// IsForbidden reports whether this item is a Penalty at or beyond
// +MaxPenalty, i.e. a break is never permitted here.
func (pi ParagraphItem) IsForbidden() bool {
	return pi.Kind == PenaltyKind && pi.Penalty >= MaxPenalty
}

// RunningSum is the cumulative (width, stretch, shrink) up to some index
// into a paragraph's item sequence. Penalties never contribute: their
// width only counts when a break is actually taken at them.
type RunningSum struct {
	Width          layout.Abs
	Stretch        layout.Abs
	Shrink         layout.Abs
}

// Advance returns the RunningSum obtained by folding one more item in.
func (s RunningSum) Advance(pi ParagraphItem) RunningSum {
	next := s
	if pi.Kind != PenaltyKind {
		next.Width += pi.Width
	}
	if pi.Kind == GlueKind {
		next.Stretch += pi.Stretchability
		next.Shrink += pi.Shrinkability
	}
	return next
}

// RunningSums computes the RunningSum at every index of items, including
// index 0 (the empty prefix) and index len(items) (the full sum), so that
// RunningSums(items)[i] is the sum over items[:i]. This gives any caller
// an O(1) natural-width lookup for an arbitrary line span.
func RunningSums(items []ParagraphItem) []RunningSum {
	sums := make([]RunningSum, len(items)+1)
	for i, pi := range items {
		sums[i+1] = sums[i].Advance(pi)
	}
	return sums
}

// IsInfinite reports whether a penalty magnitude should be treated as an
// unreachable infinity for comparison purposes, matching how math.Inf
// values compare against the finite MaxPenalty sentinel.
func IsInfinite(penalty float64) bool {
	return math.Abs(penalty) >= MaxPenalty
}
