// Package font loads font files (TTF/OTF/TTC) and exposes the face and
// metadata the shape package needs to shape and measure text. It
// supplies a single font to the CLI's --font flag; it does not
// discover system fonts, manage a multi-font collection, or match
// between style/weight/stretch variants, since paragraph line-breaking
// only ever shapes against the one face it's given.
//
// Font subsetting, needed only by a downstream exporter this module does
// not ship, was dropped here (see DESIGN.md); RawData is kept only
// because loader.go already reads
// it off disk at no extra cost, not because anything in this module
// writes it back out.
package font

import (
	"github.com/go-text/typesetting/font"
)

// Font represents a loaded font with metadata.
type Font struct {
	// face is the underlying font face for text shaping.
	face *font.Face

	// Info contains font metadata (family, style, weight, etc.).
	Info FontInfo

	// Path is the filesystem path where the font was loaded from.
	// Empty when LoadFromBytes was given no path.
	Path string

	// Index is the face index within a font collection (TTC).
	// Zero for single-face fonts (TTF/OTF).
	Index int

	// RawData stores the original font file bytes, read once at load
	// time. All faces loaded from one TTC share the same buffer.
	RawData []byte
}

// Family returns the font family name.
func (f *Font) Family() string {
	return f.Info.Family
}

// Style returns the font style as an integer (0=normal, 1=italic, 2=oblique).
func (f *Font) Style() Style {
	return f.Info.Style
}

// Weight returns the font weight (100-900).
func (f *Font) Weight() int {
	return int(f.Info.Weight)
}

// Face returns the underlying font face for text shaping.
func (f *Font) Face() *font.Face {
	return f.face
}

// FontInfo contains metadata about a font.
type FontInfo struct {
	// Family is the font family name (e.g., "Arial", "Times New Roman").
	Family string

	// PostScriptName is the PostScript name (e.g., "Arial-BoldItalic").
	PostScriptName string

	// FullName is the font's full name. The loader sets it to the family
	// name; the style is not appended.
	FullName string

	// Style is the font style (normal, italic, oblique).
	Style Style

	// Weight is the font weight (100-900).
	Weight Weight

	// Stretch is the font stretch/width.
	Stretch Stretch
}

// Style represents font style.
type Style uint8

const (
	StyleNormal  Style = iota // Upright
	StyleItalic               // Italic
	StyleOblique              // Oblique (slanted)
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "unknown"
	}
}

// Weight represents font weight on a scale of 100-900.
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

func (w Weight) String() string {
	switch {
	case w <= 100:
		return "thin"
	case w <= 200:
		return "extra-light"
	case w <= 300:
		return "light"
	case w <= 400:
		return "normal"
	case w <= 500:
		return "medium"
	case w <= 600:
		return "semi-bold"
	case w <= 700:
		return "bold"
	case w <= 800:
		return "extra-bold"
	default:
		return "black"
	}
}

// Stretch represents font width/stretch.
type Stretch float32

const (
	StretchUltraCondensed Stretch = 0.5
	StretchExtraCondensed Stretch = 0.625
	StretchCondensed      Stretch = 0.75
	StretchSemiCondensed  Stretch = 0.875
	StretchNormal         Stretch = 1.0
	StretchSemiExpanded   Stretch = 1.125
	StretchExpanded       Stretch = 1.25
	StretchExtraExpanded  Stretch = 1.5
	StretchUltraExpanded  Stretch = 2.0
)

func (s Stretch) String() string {
	switch {
	case s <= 0.5:
		return "ultra-condensed"
	case s <= 0.625:
		return "extra-condensed"
	case s <= 0.75:
		return "condensed"
	case s <= 0.875:
		return "semi-condensed"
	case s <= 1.0:
		return "normal"
	case s <= 1.125:
		return "semi-expanded"
	case s <= 1.25:
		return "expanded"
	case s <= 1.5:
		return "extra-expanded"
	default:
		return "ultra-expanded"
	}
}

