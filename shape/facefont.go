package shape

import (
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/anselm/paratype/layout"
)

// FaceFont is the wired Font implementation: one go-text/typesetting
// font.Face, shaped through a single HarfbuzzShaper instance at a fixed
// size and direction. It never falls back across multiple faces and
// never splits runs by script or bidi paragraph -- line-breaking
// measures one font's width for one run of already-segmented text,
// nothing more.
//
// A *FaceFont is safe for concurrent use: Shape serializes HarfBuzz
// calls behind a mutex, since the HarfBuzz shaper itself is not
// guaranteed reentrant.
type FaceFont struct {
	face *gotext.Face
	size layout.Abs
	dir  layout.Dir

	shaper shaping.HarfbuzzShaper
	mu     sync.Mutex

	metricsOnce sync.Once
	ascender    float64
	descender   float64
}

// NewFaceFont wraps a loaded font face for shaping at the given point
// size and text direction.
func NewFaceFont(face *gotext.Face, size layout.Abs, dir layout.Dir) *FaceFont {
	return &FaceFont{face: face, size: size, dir: dir}
}

// Shape implements Font.
func (f *FaceFont) Shape(text string) ([]Glyph, error) {
	if text == "" {
		return nil, nil
	}
	if f.face == nil {
		return nil, fmt.Errorf("shape: no font face loaded")
	}

	runes := []rune(text)

	direction := di.DirectionLTR
	if f.dir == layout.DirRTL {
		direction = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Face:      f.face,
		Size:      toFixed(float64(f.size)),
		Direction: direction,
	}

	f.mu.Lock()
	output := f.shaper.Shape(input)
	f.mu.Unlock()

	f.metricsOnce.Do(func() {
		f.ascender = fixedToFloat(output.LineBounds.Ascent)
		f.descender = fixedToFloat(output.LineBounds.Descent)
	})

	glyphs := make([]Glyph, 0, len(output.Glyphs))

	for i, g := range output.Glyphs {
		cluster := g.ClusterIndex
		end := len(runes)
		if i+1 < len(output.Glyphs) {
			end = output.Glyphs[i+1].ClusterIndex
		}
		if end <= cluster {
			end = cluster + 1
		}
		if end > len(runes) {
			end = len(runes)
		}

		glyphs = append(glyphs, Glyph{
			Index:                 uint32(g.GlyphID),
			Cluster:               string(runes[cluster:end]),
			ClusterCodePointIndex: cluster,
			XAdvance:              fixedToFloat(g.XAdvance),
			YAdvance:              fixedToFloat(g.YAdvance),
			XOffset:               fixedToFloat(g.XOffset),
			YOffset:               fixedToFloat(g.YOffset),
		})
	}

	return glyphs, nil
}

// EmSize implements Font.
func (f *FaceFont) EmSize() (float64, float64) {
	return float64(f.size), float64(f.size)
}

// Ascender implements Font. Derived from the first shaping call's line
// bounds rather than a static units-per-em table lookup, since the
// HarfBuzz shaper already computes it for the configured size.
func (f *FaceFont) Ascender() float64 {
	return f.ascender
}

// Descender implements Font.
func (f *FaceFont) Descender() float64 {
	return f.descender
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

