package font

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/font"
)

// ttcTag is the four-byte signature at the start of a TrueType
// Collection file, distinguishing it from a single TTF/OTF.
const ttcTag = "ttcf"

// LoadFromFile reads a font file from disk and parses it. A TTC
// produces one *Font per face in the collection, sharing one RawData
// buffer; a TTF/OTF produces a single-element slice.
func LoadFromFile(path string) ([]*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font file: %w", err)
	}
	return LoadFromBytes(data, path)
}

// LoadFromBytes parses already-read font data. path is attached to
// each resulting Font for diagnostics; it may be empty.
func LoadFromBytes(data []byte, path string) ([]*Font, error) {
	if len(data) < len(ttcTag) {
		return nil, fmt.Errorf("font data too short (%d bytes)", len(data))
	}

	rawData := make([]byte, len(data))
	copy(rawData, data)

	if string(data[:len(ttcTag)]) == ttcTag {
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parse font collection: %w", err)
		}

		fonts := make([]*Font, len(faces))
		for i, face := range faces {
			fonts[i] = &Font{
				face:    face,
				Info:    describe(face),
				Path:    path,
				Index:   i,
				RawData: rawData,
			}
		}
		return fonts, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return []*Font{{
		face:    face,
		Info:    describe(face),
		Path:    path,
		RawData: rawData,
	}}, nil
}

// describe derives FontInfo from a parsed face's name table and
// OS/2-style aspect fields, defaulting to the normal variant wherever
// the face doesn't carry that metadata.
func describe(face *font.Face) FontInfo {
	info := FontInfo{
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Stretch: StretchNormal,
	}
	if face.Font == nil {
		return info
	}

	desc := face.Font.Describe()
	info.Family = desc.Family
	info.FullName = desc.Family

	switch desc.Aspect.Style {
	case font.StyleItalic:
		info.Style = StyleItalic
	case font.StyleNormal:
		info.Style = StyleNormal
	default:
		info.Style = StyleOblique
	}

	if info.Weight = Weight(desc.Aspect.Weight); info.Weight == 0 {
		info.Weight = WeightNormal
	}
	if info.Stretch = Stretch(desc.Aspect.Stretch); info.Stretch == 0 {
		info.Stretch = StretchNormal
	}

	return info
}

// IsFontFile reports whether path's extension names a format this
// loader understands.
func IsFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	default:
		return false
	}
}
