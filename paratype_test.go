package paratype

import (
	"testing"

	"github.com/anselm/paratype/layout"
	"github.com/anselm/paratype/linebreak"
	"github.com/anselm/paratype/segment"
	"github.com/anselm/paratype/shape"
)

type fixedWidthFont struct{ advance float64 }

func (f fixedWidthFont) Shape(text string) ([]shape.Glyph, error) {
	runes := []rune(text)
	glyphs := make([]shape.Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = shape.Glyph{Cluster: string(r), ClusterCodePointIndex: i, XAdvance: f.advance}
	}
	return glyphs, nil
}
func (f fixedWidthFont) EmSize() (float64, float64) { return 12, 12 }
func (f fixedWidthFont) Ascender() float64          { return 9 }
func (f fixedWidthFont) Descender() float64         { return -3 }

func TestBreakParagraphGreedy(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	items, breaks, err := BreakParagraph(
		"one two three four five six seven", font, seg, nil, layout.Abs(80), Greedy, linebreak.DefaultParams(),
	)
	if err != nil {
		t.Fatalf("BreakParagraph: %v", err)
	}
	if len(breaks) < 2 {
		t.Fatalf("expected multiple lines at narrow width, got %d breaks", len(breaks))
	}

	lines := Lines(items, breaks)
	if len(lines) != len(breaks) {
		t.Fatalf("Lines() should return one slice per break, got %d for %d breaks", len(lines), len(breaks))
	}

	var total int
	for _, line := range lines {
		total += len(line)
	}
	if total != len(items) {
		t.Errorf("Lines() should partition every item exactly once: got %d, want %d", total, len(items))
	}
}

func TestBreakParagraphOptimal(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	items, breaks, err := BreakParagraph(
		"one two three four five six seven", font, seg, nil, layout.Abs(80), Optimal, linebreak.DefaultParams(),
	)
	if err != nil {
		t.Fatalf("BreakParagraph: %v", err)
	}
	if len(breaks) == 0 {
		t.Fatal("expected at least one break")
	}
	if !items[breaks[len(breaks)-1]].IsForced() {
		t.Error("final break must be the forced terminal penalty")
	}
}

func TestBreakParagraphUnknownAlgorithm(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	_, _, err := BreakParagraph("hello", font, seg, nil, layout.Abs(100), Algorithm(99), linebreak.DefaultParams())
	if err == nil {
		t.Error("unknown algorithm should return an error")
	}
}

func TestAlgorithmString(t *testing.T) {
	if Greedy.String() != "greedy" {
		t.Errorf("Greedy.String() = %q", Greedy.String())
	}
	if Optimal.String() != "optimal" {
		t.Errorf("Optimal.String() = %q", Optimal.String())
	}
	if Algorithm(99).String() != "unknown" {
		t.Errorf("Algorithm(99).String() = %q", Algorithm(99).String())
	}
}
