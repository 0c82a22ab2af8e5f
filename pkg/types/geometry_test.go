package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Basics(t *testing.T) {
	r := RectFromPoints(Point{X: 100, Y: 60}, Point{X: 20, Y: 20})
	assert.Equal(t, Rect{X0: 20, Y0: 20, X1: 100, Y1: 60}, r)
	assert.Equal(t, 80.0, r.Width())
	assert.Equal(t, 40.0, r.Height())
	assert.Equal(t, 3200.0, r.Area())
	assert.Equal(t, Point{X: 20, Y: 20}, r.Origin())
	assert.Equal(t, Size{Width: 80, Height: 40}, r.Size())
	assert.False(t, r.IsEmpty())

	assert.True(t, r.Contains(Point{X: 20, Y: 20}))
	assert.False(t, r.Contains(Point{X: 100, Y: 30}), "far edge is exclusive")

	moved := r.WithOrigin(Point{X: 0, Y: 0})
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 80, Y1: 40}, moved)
	assert.Equal(t, Rect{X0: 20, Y0: 20, X1: 30, Y1: 25}, r.WithSize(Size{Width: 10, Height: 5}))
}

func TestRect_Abs(t *testing.T) {
	inv := Rect{X0: 10, Y0: 10, X1: 0, Y1: 0}
	assert.Equal(t, -10.0, inv.Width())
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}, inv.Abs())
	assert.Equal(t, 0.0, inv.MinX())
	assert.Equal(t, 10.0, inv.MaxY())
}

func TestRect_UnionIntersect(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 5, Y0: 5, X1: 20, Y1: 15}
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 20, Y1: 15}, a.Union(b))
	assert.Equal(t, Rect{X0: 5, Y0: 5, X1: 10, Y1: 10}, a.Intersect(b))

	far := Rect{X0: 30, Y0: 30, X1: 40, Y1: 40}
	assert.True(t, a.Intersect(far).IsEmpty())
	assert.Equal(t, Rect{X0: 0, Y0: 0, X1: 10, Y1: 12}, a.UnionPt(Point{X: 3, Y: 12}))
}

func TestAffine_Apply(t *testing.T) {
	p := Point{X: 2, Y: 3}
	assert.Equal(t, p, IdentityAffine.Apply(p))
	assert.Equal(t, Point{X: 2, Y: -3}, FlipYAffine.Apply(p))
	assert.Equal(t, Point{X: -2, Y: 3}, FlipXAffine.Apply(p))
	assert.Equal(t, Point{X: 4, Y: 6}, ScaleAffine(2).Apply(p))
	assert.Equal(t, Point{X: 4, Y: 9}, ScaleNonUniformAffine(2, 3).Apply(p))
	assert.Equal(t, Point{X: 3, Y: 1}, TranslateAffine(Vec2{X: 1, Y: -2}).Apply(p))

	rot := RotateAffine(math.Pi / 2).Apply(Point{X: 1, Y: 0})
	assert.InDelta(t, 0, rot.X, 1e-12)
	assert.InDelta(t, 1, rot.Y, 1e-12)
}

func TestAffine_MulOrder(t *testing.T) {
	scale := ScaleAffine(2)
	move := TranslateAffine(Vec2{X: 10, Y: 0})
	p := Point{X: 1, Y: 1}

	// move after scale
	assert.Equal(t, Point{X: 12, Y: 2}, move.Mul(scale).Apply(p))
	// scale after move
	assert.Equal(t, Point{X: 22, Y: 2}, scale.Mul(move).Apply(p))
}

func TestAffine_Inverse(t *testing.T) {
	a := TranslateAffine(Vec2{X: 3, Y: 4}).Mul(RotateAffine(0.5)).Mul(ScaleNonUniformAffine(2, 5))
	id := a.Mul(a.Inverse())
	for i, want := range IdentityAffine {
		assert.InDelta(t, want, id[i], 1e-9, "coefficient %d", i)
	}
	assert.InDelta(t, 10.0, a.Determinant(), 1e-9)

	singular := ScaleAffine(0)
	require.False(t, singular.Inverse().IsFinite())
	assert.True(t, Affine{math.NaN()}.IsNaN())
	assert.True(t, IdentityAffine.IsFinite())
}

func TestAffine_MapUnitSquareAndBBox(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 30, Y1: 60}
	m := MapUnitSquareAffine(r)
	assert.Equal(t, r, m.TransformRectBBox(Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}))

	bbox := RotateAffine(math.Pi).TransformRectBBox(Rect{X0: 0, Y0: 0, X1: 2, Y1: 1})
	assert.InDelta(t, -2, bbox.X0, 1e-12)
	assert.InDelta(t, -1, bbox.Y0, 1e-12)
	assert.InDelta(t, 0, bbox.X1, 1e-12)
	assert.InDelta(t, 0, bbox.Y1, 1e-12)
}

func TestConversions(t *testing.T) {
	assert.Equal(t, Vec2{X: 1, Y: 2}, Point{X: 1, Y: 2}.ToVec2())
	assert.Equal(t, Point{X: 1, Y: 2}, Vec2{X: 1, Y: 2}.ToPoint())
	assert.Equal(t, Size{Width: 1, Height: 2}, Vec2{X: 1, Y: 2}.ToSize())
	assert.Equal(t, Vec2{X: 1, Y: 2}, Size{Width: 1, Height: 2}.ToVec2())
}

func TestColor(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	assert.Equal(t, Color(0x12345678), c)
	r, g, b, a := c.Channels()
	assert.Equal(t, []uint8{0x12, 0x34, 0x56, 0x78}, []uint8{r, g, b, a})
	assert.Equal(t, "#12345678", c.String())
}
