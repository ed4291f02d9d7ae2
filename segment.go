package glyph

import (
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Context is the positional context of a segment within its glyph,
// stamped by the linker pass. Start is the on-curve point preceding the
// segment; it is absent for the first segment of the sequence and
// immediately after a ClosePath. Control is present only when the
// immediately preceding segment was a QuadTo. Origin is the point of the
// most recent MoveTo.
type Context struct {
	Start   *Point
	Control *Point
	Origin  *Point
}

// Segment is one typed drawing instruction in a glyph outline: MoveTo,
// LineTo, QuadTo or ClosePath. Each kind carries exactly its own
// coordinates, so a malformed state such as a line with four coordinates
// is unrepresentable.
type Segment interface {
	// Command returns the path command letter of the segment.
	Command() byte
	// End returns the segment's explicit endpoint. ok is false for
	// ClosePath, whose implicit destination is the subpath origin.
	End() (end Point, ok bool)
	// Context returns the positional context resolved by the linker.
	Context() Context
	// String returns the segment in textual path form, e.g. "L10 20".
	String() string

	setContext(ctx Context)
	apply(t *mt.Transform)
	distanceTo(p Point) float64
}

// MoveTo starts a new subpath at P.
type MoveTo struct {
	P   Point
	ctx Context
}

// LineTo is a straight segment ending at P.
type LineTo struct {
	P   Point
	ctx Context
}

// QuadTo is a quadratic Bezier segment steered by Control, ending at P.
type QuadTo struct {
	Control Point
	P       Point
	ctx     Context
}

// ClosePath closes the current subpath back to its origin. It carries no
// coordinates.
type ClosePath struct {
	ctx Context
}

func (s *MoveTo) Command() byte    { return 'M' }
func (s *LineTo) Command() byte    { return 'L' }
func (s *QuadTo) Command() byte    { return 'Q' }
func (s *ClosePath) Command() byte { return 'Z' }

func (s *MoveTo) End() (Point, bool)    { return s.P, true }
func (s *LineTo) End() (Point, bool)    { return s.P, true }
func (s *QuadTo) End() (Point, bool)    { return s.P, true }
func (s *ClosePath) End() (Point, bool) { return Point{}, false }

func (s *MoveTo) Context() Context    { return s.ctx }
func (s *LineTo) Context() Context    { return s.ctx }
func (s *QuadTo) Context() Context    { return s.ctx }
func (s *ClosePath) Context() Context { return s.ctx }

func (s *MoveTo) setContext(ctx Context)    { s.ctx = ctx }
func (s *LineTo) setContext(ctx Context)    { s.ctx = ctx }
func (s *QuadTo) setContext(ctx Context)    { s.ctx = ctx }
func (s *ClosePath) setContext(ctx Context) { s.ctx = ctx }

func (s *MoveTo) apply(t *mt.Transform) { s.P = applyTransform(t, s.P) }
func (s *LineTo) apply(t *mt.Transform) { s.P = applyTransform(t, s.P) }
func (s *QuadTo) apply(t *mt.Transform) {
	s.Control = applyTransform(t, s.Control)
	s.P = applyTransform(t, s.P)
}
func (s *ClosePath) apply(t *mt.Transform) {}

func applyTransform(t *mt.Transform, p Point) Point {
	x, y := t.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

func (s *MoveTo) String() string { return encodeSegment('M', s.P.X, s.P.Y) }
func (s *LineTo) String() string { return encodeSegment('L', s.P.X, s.P.Y) }
func (s *QuadTo) String() string {
	return encodeSegment('Q', s.Control.X, s.Control.Y, s.P.X, s.P.Y)
}
func (s *ClosePath) String() string { return "Z" }

func encodeSegment(cmd byte, coords ...float64) string {
	var sb strings.Builder
	sb.WriteByte(cmd)
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(c, 'f', -1, 64))
	}
	return sb.String()
}

// distanceTo for a MoveTo is the distance to its destination point; a move
// draws no ink.
func (s *MoveTo) distanceTo(p Point) float64 {
	return p.Distance(s.P)
}

func (s *LineTo) distanceTo(p Point) float64 {
	if s.ctx.Start == nil {
		return p.Distance(s.P)
	}
	return distanceToSegment(p, *s.ctx.Start, s.P)
}

func (s *QuadTo) distanceTo(p Point) float64 {
	if s.ctx.Start == nil {
		return p.Distance(s.P)
	}
	b := NewBezier(*s.ctx.Start, s.Control, s.P)
	return p.Distance(b.ClosestPoint(p))
}

func (s *ClosePath) distanceTo(p Point) float64 {
	if s.ctx.Start == nil || s.ctx.Origin == nil {
		return math.Inf(1)
	}
	return distanceToSegment(p, *s.ctx.Start, *s.ctx.Origin)
}
