package shape

import "testing"

func TestFixedConversionRoundTrips(t *testing.T) {
	values := []float64{0, 1, 12.5, 100.25, -3.75}
	for _, v := range values {
		got := fixedToFloat(toFixed(v))
		if got != v {
			t.Errorf("toFixed/fixedToFloat round trip for %v: got %v", v, got)
		}
	}
}

func TestShapeWithNoFaceErrors(t *testing.T) {
	f := NewFaceFont(nil, 12, 0)
	if _, err := f.Shape("hello"); err == nil {
		t.Error("Shape with no face should return an error")
	}
}

func TestShapeEmptyTextReturnsNothing(t *testing.T) {
	f := NewFaceFont(nil, 12, 0)
	glyphs, err := f.Shape("")
	if err != nil {
		t.Fatalf("Shape(\"\"): %v", err)
	}
	if glyphs != nil {
		t.Errorf("Shape(\"\") should return nil glyphs, got %v", glyphs)
	}
}

func TestEmSize(t *testing.T) {
	f := NewFaceFont(nil, 14, 0)
	w, h := f.EmSize()
	if w != 14 || h != 14 {
		t.Errorf("EmSize() = (%v, %v), want (14, 14)", w, h)
	}
}
