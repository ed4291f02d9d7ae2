package glyph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalFonts(t *testing.T) {
	a := mustParse(t, "a", "M0 0L10 0Z", advance(10))
	b := mustParse(t, "b", "M0 0Q5 10 10 0Z", advance(10))

	data, err := MarshalFonts([]FontRecord{NewFontRecord("Sans", []*Glyph{a, b})})
	require.NoError(t, err)

	var doc struct {
		Fonts []FontRecord `json:"fonts"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Fonts, 1)
	require.Equal(t, "Sans", doc.Fonts[0].Name)
	require.Len(t, doc.Fonts[0].Glyphs, 2)
	require.Equal(t, "a", doc.Fonts[0].Glyphs[0].Unicode)
	require.Equal(t, a.SVGCode(), doc.Fonts[0].Glyphs[0].SVG)
}

func TestUnmarshalAnnotatedFont(t *testing.T) {
	data := []byte(`{"glyphs": [
		{"unicode": "a", "mat": {"svg": "M0 0L10 0L10 10Z", "circles": [[1,2],[3,4]]}},
		{"unicode": "b", "mat": {"svg": "M0 0L5 5Z", "circles": null}}
	]}`)

	glyphs, err := UnmarshalAnnotatedFont(data)
	require.NoError(t, err)
	require.Len(t, glyphs, 2)

	a := glyphs[0]
	require.Equal(t, "a", a.Glyph.Unicode)
	require.Nil(t, a.Glyph.HorizAdvX)
	require.Len(t, a.Glyph.Segments, 4)
	// The decoder applies the same explicit flip as the font reader.
	require.Equal(t, Pt(10, -10), a.Glyph.Segments[2].(*LineTo).P)

	// Annotations pass through byte for byte; they are never interpreted.
	require.JSONEq(t, "[[1,2],[3,4]]", string(a.Circles))
}

func TestUnmarshalAnnotatedFontBadPath(t *testing.T) {
	data := []byte(`{"glyphs": [{"unicode": "a", "mat": {"svg": "M0 0L10", "circles": []}}]}`)
	_, err := UnmarshalAnnotatedFont(data)
	require.Error(t, err)
}
