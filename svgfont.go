package glyph

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// FontFace carries the font-wide metrics of an SVG font's font-face
// element.
type FontFace struct {
	UnitsPerEm float64
	Ascent     float64
	Descent    float64
	BBox       *Rect
}

// Font is a parsed SVG font: its id, the default horizontal advance width
// and every glyph element that carried both a unicode identifier and path
// data. Glyph coordinates are in flipped-Y space: the reader applies
// FlipY to each glyph as it is parsed.
type Font struct {
	ID        string
	HorizAdvX *float64
	Face      FontFace
	Glyphs    []*Glyph
}

// ParseFont parses the first font element of an SVG font document.
func ParseFont(str string) (*Font, error) {
	return ParseFontFromReader(strings.NewReader(str))
}

// ParseFontFromReader parses the first font element of an SVG font
// document read from r.
func ParseFontFromReader(r io.Reader) (*Font, error) {
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("ParseFont: no font element found")
		}
		if err != nil {
			return nil, fmt.Errorf("ParseFont: %s", err)
		}
		if tok, ok := token.(xml.StartElement); ok && tok.Name.Local == "font" {
			var f Font
			if err := decoder.DecodeElement(&f, &tok); err != nil {
				return nil, fmt.Errorf("ParseFont: error decoding font element: %s", err)
			}
			return &f, nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (f *Font) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			f.ID = attr.Value
		case "horiz-adv-x":
			v, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return fmt.Errorf("error parsing font horiz-adv-x: %s", err)
			}
			f.HorizAdvX = &v
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "font-face":
				if err := f.Face.readAttrs(tok); err != nil {
					return err
				}
			case "glyph":
				g, err := f.readGlyph(tok)
				if err != nil {
					return err
				}
				if g != nil {
					f.Glyphs = append(f.Glyphs, g)
				}
			}
			if err := decoder.Skip(); err != nil {
				return err
			}

		case xml.EndElement:
			return nil
		}
	}
}

// readGlyph builds a Glyph from a glyph element. Elements missing either
// the unicode or the d attribute are skipped. The glyph's advance width
// defaults to the font-wide one. Glyphs are authored y-up; the flipped-Y
// convention of the rest of the pipeline is established here, at the call
// site, by FlipY.
func (f *Font) readGlyph(start xml.StartElement) (*Glyph, error) {
	var unicode, d string
	var adv *float64
	if f.HorizAdvX != nil {
		v := *f.HorizAdvX
		adv = &v
	}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "unicode":
			unicode = attr.Value
		case "d":
			d = attr.Value
		case "horiz-adv-x":
			v, err := strconv.ParseFloat(attr.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing glyph horiz-adv-x: %s", err)
			}
			adv = &v
		}
	}
	if unicode == "" || d == "" {
		return nil, nil
	}

	g, err := Parse(unicode, d, adv)
	if err != nil {
		return nil, err
	}
	g.FlipY()
	return g, nil
}

func (face *FontFace) readAttrs(start xml.StartElement) error {
	for _, attr := range start.Attr {
		var err error
		switch attr.Name.Local {
		case "units-per-em":
			face.UnitsPerEm, err = strconv.ParseFloat(attr.Value, 64)
		case "ascent":
			face.Ascent, err = strconv.ParseFloat(attr.Value, 64)
		case "descent":
			face.Descent, err = strconv.ParseFloat(attr.Value, 64)
		case "bbox":
			var r Rect
			r, err = parseBBox(attr.Value)
			if err == nil {
				face.BBox = &r
			}
		}
		if err != nil {
			return fmt.Errorf("error parsing font-face %s: %s", attr.Name.Local, err)
		}
	}
	return nil
}

// parseBBox lexes a whitespace or comma separated list of four numbers
// into a rectangle.
func parseBBox(s string) (Rect, error) {
	l, _ := gl.Lex("bbox", s)
	min, err := parseTuple(l)
	if err != nil {
		return Rect{}, err
	}
	max, err := parseTuple(l)
	if err != nil {
		return Rect{}, err
	}
	return Rect{Min: Pt(min[0], min[1]), Max: Pt(max[0], max[1])}, nil
}
