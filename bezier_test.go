package glyph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestBezierEndpoints(t *testing.T) {
	curves := []Bezier{
		NewBezier(Pt(0, 0), Pt(10, 5)),
		NewBezier(Pt(0, 0), Pt(5, 10), Pt(10, 0)),
		NewBezier(Pt(0, 0), Pt(3, 7), Pt(7, 7), Pt(10, 0)),
		NewBezier(Pt(-5, 2), Pt(0, 9), Pt(4, -3), Pt(8, 8), Pt(12, 1)),
	}
	for _, b := range curves {
		first := b.ControlPoints[0]
		last := b.ControlPoints[len(b.ControlPoints)-1]

		require.InDelta(t, first.X, b.At(0).X, epsilon)
		require.InDelta(t, first.Y, b.At(0).Y, epsilon)
		require.InDelta(t, last.X, b.At(1).X, epsilon)
		require.InDelta(t, last.Y, b.At(1).Y, epsilon)
	}
}

func TestBezierLinearDerivativeIsConstant(t *testing.T) {
	b := NewBezier(Pt(1, 2), Pt(7, -4))
	want := Pt(6, -6)
	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1} {
		d := b.Derivative(tv)
		require.InDelta(t, want.X, d.X, epsilon)
		require.InDelta(t, want.Y, d.Y, epsilon)
	}
}

func TestBezierTangentAndNormal(t *testing.T) {
	b := NewBezier(Pt(0, 0), Pt(10, 0))

	tan, err := b.Tangent(0.5)
	require.NoError(t, err)
	require.InDelta(t, 1, tan.X, epsilon)
	require.InDelta(t, 0, tan.Y, epsilon)

	n, err := b.Normal(0.5, false)
	require.NoError(t, err)
	require.InDelta(t, 0, n.X, epsilon)
	require.InDelta(t, 1, n.Y, epsilon)

	flipped, err := b.Normal(0.5, true)
	require.NoError(t, err)
	require.InDelta(t, 0, flipped.X, epsilon)
	require.InDelta(t, -1, flipped.Y, epsilon)
}

func TestBezierDegenerateTangent(t *testing.T) {
	// All control points coincide, the derivative vanishes everywhere.
	b := NewBezier(Pt(3, 3), Pt(3, 3), Pt(3, 3))
	_, err := b.Tangent(0.5)
	require.Equal(t, ErrDegenerateTangent, err)
	_, err = b.Normal(0.5, false)
	require.Equal(t, ErrDegenerateTangent, err)
}

func TestQuadraticCriticalPoints(t *testing.T) {
	// Symmetric arch: only the y axis has a critical point, at the apex.
	b := NewBezier(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	crit := b.QuadraticCriticalPoints()
	require.Len(t, crit, 1)
	require.InDelta(t, 5, crit[0].X, epsilon)
	require.InDelta(t, 5, crit[0].Y, epsilon)
}

func TestQuadraticCriticalPointsDegenerate(t *testing.T) {
	// Control point exactly midway between, and collinear with, the
	// endpoints: both denominators are zero and no axis yields a root.
	b := NewBezier(Pt(0, 0), Pt(5, 5), Pt(10, 10))
	require.Empty(t, b.QuadraticCriticalPoints())
}

func TestQuadraticCriticalPointsWrongDegree(t *testing.T) {
	b := NewBezier(Pt(0, 0), Pt(3, 7), Pt(7, 7), Pt(10, 0))
	require.Nil(t, b.QuadraticCriticalPoints())
}

func TestQuadraticBoundingBox(t *testing.T) {
	b := NewBezier(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	r := b.QuadraticBoundingBox()
	require.InDelta(t, 0, r.Min.X, epsilon)
	require.InDelta(t, 0, r.Min.Y, epsilon)
	require.InDelta(t, 10, r.Max.X, epsilon)
	require.InDelta(t, 5, r.Max.Y, epsilon)

	assert.True(t, b.ContainsPoint(Pt(5, 2)))
	assert.False(t, b.ContainsPoint(Pt(5, 6)))
	assert.False(t, b.ContainsPoint(Pt(-1, 2)))
}

func TestClosestPointIsExhaustive(t *testing.T) {
	b := NewBezier(Pt(0, 0), Pt(5, 10), Pt(10, 0))
	target := Pt(5, 20)

	got := b.ClosestPoint(target)
	gotDist := got.Distance(target)
	for i := 0; i <= 100; i++ {
		sample := b.At(float64(i) * 0.01)
		require.LessOrEqual(t, gotDist, sample.Distance(target)+epsilon)
	}
}

func TestPointNormalize(t *testing.T) {
	n, ok := Pt(3, 4).Normalize()
	require.True(t, ok)
	require.InDelta(t, 0.6, n.X, epsilon)
	require.InDelta(t, 0.8, n.Y, epsilon)
	require.InDelta(t, 1, n.Hypot(), epsilon)

	_, ok = Pt(0, 0).Normalize()
	require.False(t, ok)
}

func TestPointCross(t *testing.T) {
	require.InDelta(t, 1, Pt(1, 0).Cross(Pt(0, 1)), epsilon)
	require.InDelta(t, -1, Pt(0, 1).Cross(Pt(1, 0)), epsilon)
	require.InDelta(t, 0, Pt(2, 2).Cross(Pt(1, 1)), epsilon)
}

func TestDistanceToSegment(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	require.InDelta(t, 3, distanceToSegment(Pt(5, 3), a, b), epsilon)
	// Beyond an endpoint the distance is to the endpoint itself.
	require.InDelta(t, math.Sqrt(2), distanceToSegment(Pt(11, 1), a, b), epsilon)
	// Degenerate segment.
	require.InDelta(t, 5, distanceToSegment(Pt(3, 4), a, a), epsilon)
}
