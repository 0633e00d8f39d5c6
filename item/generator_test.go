package item

import (
	"strings"
	"testing"

	"github.com/anselm/paratype/segment"
	"github.com/anselm/paratype/shape"
)

// fixedWidthFont is a test double assigning every rune a constant advance,
// so generator tests can assert exact widths without a real font file.
type fixedWidthFont struct {
	advance float64
}

func (f fixedWidthFont) Shape(text string) ([]shape.Glyph, error) {
	runes := []rune(text)
	glyphs := make([]shape.Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = shape.Glyph{
			Cluster:               string(r),
			ClusterCodePointIndex: i,
			XAdvance:              f.advance,
		}
	}
	return glyphs, nil
}

func (f fixedWidthFont) EmSize() (float64, float64) { return 12, 12 }
func (f fixedWidthFont) Ascender() float64          { return 9 }
func (f fixedWidthFont) Descender() float64         { return -3 }

func TestGenerateSimpleText(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	items, err := Generate("hello world", font, seg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var boxes, glues, penalties int
	for _, it := range items {
		switch it.Kind {
		case BoxKind:
			boxes++
		case GlueKind:
			glues++
		case PenaltyKind:
			penalties++
		}
	}

	if boxes != 2 {
		t.Errorf("expected 2 boxes for two words, got %d", boxes)
	}
	if glues < 2 {
		t.Errorf("expected at least 2 glue items (interword + terminal), got %d", glues)
	}

	last := items[len(items)-1]
	if !last.IsForced() {
		t.Error("item stream should always end with a forced break")
	}
}

func TestGenerateEmptyText(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	items, err := Generate("", font, seg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("empty text should still yield terminal glue+penalty, got %d items", len(items))
	}
	if !items[len(items)-1].IsForced() {
		t.Error("terminal item should be a forced penalty")
	}
}

func TestGenerateForcedNewline(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	items, err := Generate("hi\nthere", font, seg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var forced int
	for _, it := range items {
		if it.IsForced() {
			forced++
		}
	}
	if forced != 2 {
		t.Errorf("expected 2 forced breaks (newline + terminal), got %d", forced)
	}
}

func TestGenerateUnicodeParagraphSeparator(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	// U+2029 carries the bidi class B, so it should force a break just
	// as the literal newline case does, without ending up stuck in a
	// box's text.
	separator := string(rune(0x2029))
	text := "hi" + separator + "there"

	items, err := Generate(text, font, seg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var forced int
	for _, it := range items {
		if it.IsForced() {
			forced++
		}
		if it.Kind == BoxKind && strings.Contains(it.Text, separator) {
			t.Errorf("box text %q should not retain the paragraph separator", it.Text)
		}
	}
	if forced != 2 {
		t.Errorf("expected 2 forced breaks (paragraph separator + terminal), got %d", forced)
	}
}

func TestGenerateSoftHyphen(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	text := "hyphen" + string(SoftHyphen) + "ation"
	items, err := Generate(text, font, seg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var flaggedPenalties int
	for _, it := range items {
		if it.Kind == PenaltyKind && it.Flagged && !it.IsForced() {
			flaggedPenalties++
		}
	}
	if flaggedPenalties == 0 {
		t.Error("expected a flagged, non-forced penalty at the soft hyphen")
	}
}

func TestGenerateBoxWidthIsIncremental(t *testing.T) {
	font := fixedWidthFont{advance: 10}
	seg := segment.NewUnicodeSegmenter()

	items, err := Generate("hi", font, seg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) == 0 || items[0].Kind != BoxKind {
		t.Fatalf("expected first item to be a box, got %+v", items)
	}
	if items[0].Width != 20 {
		t.Errorf("box width = %v, want 20 (2 runes * 10 advance)", items[0].Width)
	}
}
