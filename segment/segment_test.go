package segment

import (
	"strings"
	"testing"
)

func TestLineBreakUnitsRoundTrip(t *testing.T) {
	seg := NewUnicodeSegmenter()
	text := "hello world, how are you?"

	units := seg.LineBreakUnits(text)
	if strings.Join(units, "") != text {
		t.Errorf("joined line-break units should equal original text: got %q", strings.Join(units, ""))
	}
	if len(units) == 0 {
		t.Fatal("expected at least one line-break unit")
	}
}

func TestGraphemeClustersRoundTrip(t *testing.T) {
	seg := NewUnicodeSegmenter()
	text := "café"

	clusters := seg.GraphemeClusters(text)
	if strings.Join(clusters, "") != text {
		t.Errorf("joined grapheme clusters should equal original text: got %q", strings.Join(clusters, ""))
	}
}

func TestWordsRoundTrip(t *testing.T) {
	seg := NewUnicodeSegmenter()
	text := "the quick brown fox"

	words := seg.Words(text)
	if strings.Join(words, "") != text {
		t.Errorf("joined words should equal original text: got %q", strings.Join(words, ""))
	}

	var nonSpace int
	for _, w := range words {
		if strings.TrimSpace(w) != "" {
			nonSpace++
		}
	}
	if nonSpace != 4 {
		t.Errorf("expected 4 non-space words, got %d", nonSpace)
	}
}

func TestEmptyInput(t *testing.T) {
	seg := NewUnicodeSegmenter()
	if units := seg.LineBreakUnits(""); len(units) != 0 {
		t.Errorf("empty text should yield no line-break units, got %v", units)
	}
	if clusters := seg.GraphemeClusters(""); len(clusters) != 0 {
		t.Errorf("empty text should yield no grapheme clusters, got %v", clusters)
	}
	if words := seg.Words(""); len(words) != 0 {
		t.Errorf("empty text should yield no words, got %v", words)
	}
}
