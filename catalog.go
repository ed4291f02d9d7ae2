package glyph

import (
	"encoding/json"
	"fmt"
)

// GlyphRecord is the interchange form of a single glyph.
type GlyphRecord struct {
	Unicode string `json:"unicode"`
	SVG     string `json:"svg"`
}

// FontRecord is the interchange form of a named glyph collection.
type FontRecord struct {
	Name   string        `json:"name"`
	Glyphs []GlyphRecord `json:"glyphs"`
}

// NewFontRecord snapshots a named glyph list into its interchange form,
// serializing each glyph's current segment sequence.
func NewFontRecord(name string, glyphs []*Glyph) FontRecord {
	records := make([]GlyphRecord, len(glyphs))
	for i, g := range glyphs {
		records[i] = GlyphRecord{Unicode: g.Unicode, SVG: g.SVGCode()}
	}
	return FontRecord{Name: name, Glyphs: records}
}

// MarshalFonts encodes font records as a {"fonts": [...]} document.
func MarshalFonts(records []FontRecord) ([]byte, error) {
	doc := struct {
		Fonts []FontRecord `json:"fonts"`
	}{Fonts: records}
	return json.Marshal(doc)
}

// AnnotatedGlyph pairs a decoded glyph with its circle annotations. The
// annotation data is opaque to this package: it is carried through
// untouched so the caller can scale it with the factor returned by
// ScaleAndMoveToBox.
type AnnotatedGlyph struct {
	Glyph   *Glyph
	Circles json.RawMessage
}

// UnmarshalAnnotatedFont decodes an annotated font document of the form
// {"glyphs": [{"unicode": ..., "mat": {"svg": ..., "circles": ...}}]}.
// Decoded glyphs carry no advance width and get the same explicit FlipY
// as font-parsed ones.
func UnmarshalAnnotatedFont(data []byte) ([]AnnotatedGlyph, error) {
	var doc struct {
		Glyphs []struct {
			Unicode string `json:"unicode"`
			Mat     struct {
				SVG     string          `json:"svg"`
				Circles json.RawMessage `json:"circles"`
			} `json:"mat"`
		} `json:"glyphs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding annotated font: %s", err)
	}

	glyphs := make([]AnnotatedGlyph, 0, len(doc.Glyphs))
	for _, rec := range doc.Glyphs {
		g, err := Parse(rec.Unicode, rec.Mat.SVG, nil)
		if err != nil {
			return nil, err
		}
		g.FlipY()
		glyphs = append(glyphs, AnnotatedGlyph{Glyph: g, Circles: rec.Mat.Circles})
	}
	return glyphs, nil
}
