package glyph

import (
	"errors"
	"math"
)

// ErrDegenerateTangent is returned when a tangent or normal is requested at
// a parameter where the curve's derivative is the zero vector.
var ErrDegenerateTangent = errors.New("degenerate tangent: zero-length derivative")

// closestPointStep is the fixed sampling step used by Bezier.ClosestPoint.
// The result is a bounded-resolution approximation whose accuracy is tied
// to this step.
const closestPointStep = 0.01

// Bezier is a Bezier curve of degree len(ControlPoints)-1. It is built on
// demand from a segment and its preceding point and is not persisted.
type Bezier struct {
	ControlPoints []Point
}

// NewBezier returns a Bezier curve over the given control points.
func NewBezier(points ...Point) Bezier {
	return Bezier{ControlPoints: points}
}

// Degree returns the degree of the curve.
func (b Bezier) Degree() int {
	return len(b.ControlPoints) - 1
}

// binomial returns the binomial coefficient C(n, k).
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// bernstein returns the value of the i-th Bernstein polynomial of degree n
// at t.
func bernstein(n, i int, t float64) float64 {
	return binomial(n, i) * math.Pow(1-t, float64(n-i)) * math.Pow(t, float64(i))
}

// At returns the point on the curve at parameter t in [0,1]. Control points
// are summed in index order so that results are reproducible.
func (b Bezier) At(t float64) Point {
	n := b.Degree()
	var x, y float64
	for i := 0; i <= n; i++ {
		w := bernstein(n, i, t)
		x += w * b.ControlPoints[i].X
		y += w * b.ControlPoints[i].Y
	}
	return Point{X: x, Y: y}
}

// Derivative returns the value of the degree-(n-1) derivative curve at t.
func (b Bezier) Derivative(t float64) Point {
	n := b.Degree()
	var x, y float64
	for i := 0; i < n; i++ {
		w := float64(n) * bernstein(n-1, i, t)
		x += w * (b.ControlPoints[i+1].X - b.ControlPoints[i].X)
		y += w * (b.ControlPoints[i+1].Y - b.ControlPoints[i].Y)
	}
	return Point{X: x, Y: y}
}

// Tangent returns the unit tangent of the curve at t. It returns
// ErrDegenerateTangent if the derivative is the zero vector.
func (b Bezier) Tangent(t float64) (Point, error) {
	d, ok := b.Derivative(t).Normalize()
	if !ok {
		return Point{}, ErrDegenerateTangent
	}
	return d, nil
}

// Normal returns the unit tangent at t rotated 90 degrees. With
// flipped=false the rotation yields (-dy, dx), with flipped=true (dy, -dx).
func (b Bezier) Normal(t float64, flipped bool) (Point, error) {
	d, err := b.Tangent(t)
	if err != nil {
		return Point{}, err
	}
	if flipped {
		return Point{X: d.Y, Y: -d.X}, nil
	}
	return Point{X: -d.Y, Y: d.X}, nil
}

// QuadraticCriticalPoints returns the points where a degree-2 curve's
// derivative crosses zero on either axis, solving t = (P0-P1)/(P0-2P1+P2)
// componentwise. A root is accepted only for t in [0,1]. An axis whose
// denominator is zero (collinear, evenly spaced control points on that
// axis) is skipped. Returns nil for curves of any other degree.
func (b Bezier) QuadraticCriticalPoints() []Point {
	if b.Degree() != 2 {
		return nil
	}
	p0, p1, p2 := b.ControlPoints[0], b.ControlPoints[1], b.ControlPoints[2]

	var crit []Point
	if den := p0.X - 2*p1.X + p2.X; den != 0 {
		if t := (p0.X - p1.X) / den; t >= 0 && t <= 1 {
			crit = append(crit, b.At(t))
		}
	}
	if den := p0.Y - 2*p1.Y + p2.Y; den != 0 {
		if t := (p0.Y - p1.Y) / den; t >= 0 && t <= 1 {
			crit = append(crit, b.At(t))
		}
	}
	return crit
}

// QuadraticBoundingBox returns the axis-aligned box spanning the two
// endpoints and any accepted critical points. This is a tight bound only
// for degree-2 curves.
func (b Bezier) QuadraticBoundingBox() Rect {
	first := b.ControlPoints[0]
	last := b.ControlPoints[len(b.ControlPoints)-1]
	r := Rect{
		Min: Point{X: math.Min(first.X, last.X), Y: math.Min(first.Y, last.Y)},
		Max: Point{X: math.Max(first.X, last.X), Y: math.Max(first.Y, last.Y)},
	}
	for _, p := range b.QuadraticCriticalPoints() {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// ContainsPoint reports whether p lies inside the curve's quadratic
// bounding box.
func (b Bezier) ContainsPoint(p Point) bool {
	return b.QuadraticBoundingBox().Contains(p)
}

// ClosestPoint returns the sampled curve point of minimum euclidean
// distance to p. The curve is sampled uniformly at closestPointStep over
// [0,1], endpoints included; this is not an exact projection.
func (b Bezier) ClosestPoint(p Point) Point {
	n := int(math.Round(1 / closestPointStep))
	best := b.At(0)
	bestDist := best.Distance(p)
	for i := 1; i <= n; i++ {
		t := float64(i) * closestPointStep
		pt := b.At(t)
		if d := pt.Distance(p); d < bestDist {
			bestDist = d
			best = pt
		}
	}
	return best
}
