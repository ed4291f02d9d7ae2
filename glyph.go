package glyph

import (
	"errors"
	"fmt"
	"math"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

var (
	// ErrEmptyGlyph is returned by geometry queries on a glyph without
	// segments or coordinates.
	ErrEmptyGlyph = errors.New("glyph has no segments")
	// ErrMalformedPath is returned when a predecessor search runs off the
	// end of the segment sequence, e.g. for a MoveTo that is never
	// followed by a ClosePath.
	ErrMalformedPath = errors.New("malformed path")
	// ErrNoAdvanceWidth is returned when an operation needs a horizontal
	// advance width the glyph does not carry.
	ErrNoAdvanceWidth = errors.New("glyph has no advance width")
)

// sharpTurnThreshold is the minimum cross-product z component for a turn
// to be reported as a sharp corner. Only turns in the positive rotational
// sense are reported; see SharpCorners.
const sharpTurnThreshold = 0.1

// Glyph is the vector outline of a single font glyph: its unicode
// identifier, the raw path text it was built from, its optional horizontal
// advance width and the typed segment sequence.
type Glyph struct {
	Unicode   string
	D         string
	HorizAdvX *float64
	Segments  []Segment
}

// Parse tokenizes and links path text into a Glyph. Coordinates are kept
// in the text's own coordinate space; callers establishing the flipped-Y
// convention of font space do so explicitly with FlipY.
func Parse(unicode, d string, horizAdvX *float64) (*Glyph, error) {
	raw, err := tokenizePath(d)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %s", unicode, err)
	}
	segments, err := buildSegments(raw)
	if err != nil {
		return nil, fmt.Errorf("glyph %q: %s", unicode, err)
	}
	link(segments)
	return &Glyph{
		Unicode:   unicode,
		D:         d,
		HorizAdvX: horizAdvX,
		Segments:  segments,
	}, nil
}

func (g *Glyph) String() string {
	return "[" + g.Unicode + "] " + g.SVGCode()
}

// SVGCode serializes the segment sequence back to path text, one
// space-separated command per segment.
func (g *Glyph) SVGCode() string {
	parts := make([]string, len(g.Segments))
	for i, s := range g.Segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// ApplyTransform maps every coordinate of every segment through t and
// re-runs the linker so that segment contexts stay consistent with the
// mutated coordinates.
func (g *Glyph) ApplyTransform(t *mt.Transform) {
	for _, s := range g.Segments {
		s.apply(t)
	}
	link(g.Segments)
}

// Scale scales all segment coordinates by (sx, sy) in place.
func (g *Glyph) Scale(sx, sy float64) {
	t := mt.NewTransform()
	t.Scale(sx, sy)
	g.ApplyTransform(t)
}

// Translate moves all segment coordinates by (dx, dy) in place.
func (g *Glyph) Translate(dx, dy float64) {
	t := mt.NewTransform()
	t[0][2] = dx // row, column
	t[1][2] = dy
	g.ApplyTransform(t)
}

// FlipY mirrors the glyph across the x axis. SVG font glyphs are authored
// y-up while the rest of the pipeline works y-down, so readers call this
// once right after parsing.
func (g *Glyph) FlipY() {
	g.Scale(1, -1)
}

// BoundingBox scans the stored coordinate pairs of every segment (knot
// and control points only, curve bulge beyond them is not accounted for)
// for the y extent, and spans [0, horizAdvX] on x: horizontal layout uses
// the advance metric, not the ink extent.
func (g *Glyph) BoundingBox() (Rect, error) {
	if g.HorizAdvX == nil {
		return Rect{}, ErrNoAdvanceWidth
	}
	y0, y1 := math.Inf(1), math.Inf(-1)
	seen := false
	for _, s := range g.Segments {
		for _, p := range segmentPoints(s) {
			y0 = math.Min(y0, p.Y)
			y1 = math.Max(y1, p.Y)
			seen = true
		}
	}
	if !seen {
		return Rect{}, ErrEmptyGlyph
	}
	return Rect{Min: Pt(0, y0), Max: Pt(*g.HorizAdvX, y1)}, nil
}

// segmentPoints returns the coordinate pairs a segment stores, control
// points included.
func segmentPoints(s Segment) []Point {
	switch s := s.(type) {
	case *MoveTo:
		return []Point{s.P}
	case *LineTo:
		return []Point{s.P}
	case *QuadTo:
		return []Point{s.Control, s.P}
	default:
		return nil
	}
}

// ClosestSegment returns the segment of minimum distance to p: straight
// segment distance for lines and closes, sampled curve distance for
// quadratics. Linear in the segment count.
func (g *Glyph) ClosestSegment(p Point) (Segment, error) {
	if len(g.Segments) == 0 {
		return nil, ErrEmptyGlyph
	}
	closest := g.Segments[0]
	closestDist := closest.distanceTo(p)
	for _, s := range g.Segments[1:] {
		if d := s.distanceTo(p); d < closestDist {
			closestDist = d
			closest = s
		}
	}
	return closest, nil
}

// PrecedingSegment returns the logical predecessor of the segment at
// index i for turning-angle purposes. For a MoveTo the predecessor is the
// ClosePath terminating its own subpath, found by scanning forward; a
// MoveTo never followed by one is a malformed path. A sequence-order
// predecessor that is itself a MoveTo is skipped over recursively.
func (g *Glyph) PrecedingSegment(i int) (Segment, error) {
	pi, err := g.precedingIndex(i)
	if err != nil {
		return nil, err
	}
	return g.Segments[pi], nil
}

func (g *Glyph) precedingIndex(i int) (int, error) {
	if _, ok := g.Segments[i].(*MoveTo); ok {
		for j := i; j < len(g.Segments); j++ {
			if _, ok := g.Segments[j].(*ClosePath); ok {
				return j, nil
			}
		}
		return 0, fmt.Errorf("%w: MoveTo at segment %d has no closing Z", ErrMalformedPath, i)
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: path does not begin with a MoveTo", ErrMalformedPath)
	}
	if _, ok := g.Segments[i-1].(*MoveTo); ok {
		return g.precedingIndex(i - 1)
	}
	return i - 1, nil
}

// zeroLengthClose reports whether z closes a subpath whose origin
// coincides with the current point, contributing no direction of its own.
func zeroLengthClose(z *ClosePath) bool {
	ctx := z.Context()
	if ctx.Start == nil || ctx.Origin == nil {
		return true
	}
	return ctx.Origin.Sub(*ctx.Start).Hypot() == 0
}

// incomingTangent is the unit direction of s evaluated at its start. The
// zero vector stands in for a degenerate (zero-length) direction.
func incomingTangent(s Segment) Point {
	ctx := s.Context()
	if ctx.Start == nil {
		return Point{}
	}
	switch s := s.(type) {
	case *LineTo:
		t, _ := s.P.Sub(*ctx.Start).Normalize()
		return t
	case *ClosePath:
		if ctx.Origin == nil {
			return Point{}
		}
		t, _ := ctx.Origin.Sub(*ctx.Start).Normalize()
		return t
	case *QuadTo:
		b := NewBezier(*ctx.Start, s.Control, s.P)
		t, err := b.Tangent(0)
		if err != nil {
			return Point{}
		}
		return t
	}
	return Point{}
}

// outgoingTangent is the unit direction of s at its end, reversed so that
// it points back along the segment.
func outgoingTangent(s Segment) Point {
	ctx := s.Context()
	if ctx.Start == nil {
		return Point{}
	}
	switch s := s.(type) {
	case *LineTo:
		t, _ := ctx.Start.Sub(s.P).Normalize()
		return t
	case *ClosePath:
		if ctx.Origin == nil {
			return Point{}
		}
		t, _ := ctx.Start.Sub(*ctx.Origin).Normalize()
		return t
	case *QuadTo:
		b := NewBezier(*ctx.Start, s.Control, s.P)
		t, err := b.Tangent(1)
		if err != nil {
			return Point{}
		}
		return t.Mul(-1)
	}
	return Point{}
}

// SharpCorners returns the knot points where the outline turns sharply.
// For every non-MoveTo segment the incoming tangent at its start is
// crossed with the reversed outgoing tangent of its predecessor;
// zero-length closes are bridged to the next usable predecessor. Only
// turns whose cross-product z component exceeds the threshold are
// reported; turns in the opposite rotational sense never are.
func (g *Glyph) SharpCorners() ([]Point, error) {
	if len(g.Segments) == 0 {
		return nil, ErrEmptyGlyph
	}
	var corners []Point
	for i, s := range g.Segments {
		if _, ok := s.(*MoveTo); ok {
			continue
		}
		if z, ok := s.(*ClosePath); ok && zeroLengthClose(z) {
			continue
		}

		pi, err := g.precedingIndex(i)
		if err != nil {
			return nil, err
		}
		prev := g.Segments[pi]
		if z, ok := prev.(*ClosePath); ok && zeroLengthClose(z) {
			pi, err = g.precedingIndex(pi)
			if err != nil {
				return nil, err
			}
			prev = g.Segments[pi]
		}

		turn := incomingTangent(s).Cross(outgoingTangent(prev))
		if turn > sharpTurnThreshold {
			if start := s.Context().Start; start != nil {
				corners = append(corners, *start)
			}
		}
	}
	return corners, nil
}

// ScaleAndMoveToBox uniformly scales the glyph so that the advance width
// of reference fills the target box's width, then translates it to
// (x0, -y0). Aspect ratio is preserved; the target height is not
// independently matched. The factor is returned so annotations paired
// with the glyph can be scaled identically.
func (g *Glyph) ScaleAndMoveToBox(x0, y0, x1, y1 float64, reference *Glyph) (float64, error) {
	if reference == nil {
		reference = g
	}
	if reference.HorizAdvX == nil || *reference.HorizAdvX == 0 {
		return 0, ErrNoAdvanceWidth
	}
	factor := (x1 - x0) / *reference.HorizAdvX
	g.Scale(factor, factor)
	g.Translate(x0, -y0)
	return factor, nil
}

// Linearize renders the glyph as point notation: a ">unicode" header
// followed by one command per line, with every quadratic replaced by
// straight segments sampled at parameter steps of accuracy. Smaller
// accuracy means denser sampling.
func (g *Glyph) Linearize(accuracy float64) (string, error) {
	if accuracy <= 0 || accuracy > 1 {
		return "", fmt.Errorf("accuracy %g out of range (0, 1]", accuracy)
	}
	var sb strings.Builder
	sb.WriteByte('>')
	sb.WriteString(g.Unicode)
	sb.WriteByte('\n')
	for _, s := range g.Segments {
		switch s := s.(type) {
		case *MoveTo:
			sb.WriteString(s.String())
			sb.WriteByte('\n')
		case *LineTo:
			sb.WriteString(s.String())
			sb.WriteByte('\n')
		case *QuadTo:
			start := s.Context().Start
			if start == nil {
				sb.WriteString(encodeSegment('L', s.P.X, s.P.Y))
				sb.WriteByte('\n')
				continue
			}
			b := NewBezier(*start, s.Control, s.P)
			steps := int(math.Ceil(1 / accuracy))
			for i := 1; i < steps; i++ {
				p := b.At(float64(i) * accuracy)
				sb.WriteString(encodeSegment('L', p.X, p.Y))
				sb.WriteByte('\n')
			}
			sb.WriteString(encodeSegment('L', s.P.X, s.P.Y))
			sb.WriteByte('\n')
		case *ClosePath:
			sb.WriteString("Z\n")
		}
	}
	return sb.String(), nil
}
