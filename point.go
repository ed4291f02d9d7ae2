package glyph

import (
	"fmt"
	"math"
)

// Point is an X,Y coordinate. It doubles as a 2D vector for tangent and
// normal computations.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns p+o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p−o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Hypot returns the magnitude of p interpreted as a vector.
func (p Point) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return p.Sub(o).Hypot()
}

// Cross returns the z component of the cross product of p and o embedded
// in 3D with zero z components.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}

// Normalize returns a vector of magnitude 1 with the same direction as p.
// The second return value is false if p is the zero vector, in which case
// the result is unusable.
func (p Point) Normalize() (Point, bool) {
	h := p.Hypot()
	if h == 0 {
		return Point{}, false
	}
	return p.Mul(1 / h), true
}

// Rect is an axis-aligned rectangle spanned by its minimum and maximum
// corners.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// distanceToSegment returns the distance from p to the straight segment
// between a and b.
func distanceToSegment(p, a, b Point) float64 {
	d := b.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(d.Mul(t)))
}
