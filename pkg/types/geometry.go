package types

import "math"

// Point is a position in the 2D plane.
type Point struct {
	X, Y float64
}

// Vec2 is a 2D displacement.
type Vec2 struct {
	X, Y float64
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// ToVec2 returns the displacement from the origin to p.
func (p Point) ToVec2() Vec2 { return Vec2{X: p.X, Y: p.Y} }

// Add offsets p by v.
func (p Point) Add(v Vec2) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// ToPoint returns the point v away from the origin.
func (v Vec2) ToPoint() Point { return Point{X: v.X, Y: v.Y} }

// ToSize reinterprets v as a size.
func (v Vec2) ToSize() Size { return Size{Width: v.X, Height: v.Y} }

// ToVec2 reinterprets s as a displacement.
func (s Size) ToVec2() Vec2 { return Vec2{X: s.Width, Y: s.Height} }

// Rect is an axis-aligned rectangle given by two corners. Most operations
// assume X0 <= X1 and Y0 <= Y1; Abs restores that.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromPoints returns the rectangle spanned by two corners, normalized.
func RectFromPoints(p0, p1 Point) Rect {
	return Rect{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y}.Abs()
}

// RectFromOriginSize returns the rectangle at origin with the given size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return RectFromPoints(origin, origin.Add(size.ToVec2()))
}

// WithOrigin moves r so its origin is at origin, keeping its size.
func (r Rect) WithOrigin(origin Point) Rect { return RectFromOriginSize(origin, r.Size()) }

// WithSize resizes r, keeping its origin.
func (r Rect) WithSize(size Size) Rect { return RectFromOriginSize(r.Origin(), size) }

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) MinX() float64   { return math.Min(r.X0, r.X1) }
func (r Rect) MaxX() float64   { return math.Max(r.X0, r.X1) }
func (r Rect) MinY() float64   { return math.Min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64   { return math.Max(r.Y0, r.Y1) }

// Origin is the (X0, Y0) corner.
func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }

// Size returns the width and height of r.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Abs returns r with its corners swapped as needed so width and height are
// non-negative.
func (r Rect) Abs() Rect {
	return Rect{X0: r.MinX(), Y0: r.MinY(), X1: r.MaxX(), Y1: r.MaxY()}
}

// Area is width times height. It is negative for inverted rectangles.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool { return r.Area() == 0 }

// Contains reports whether p lies in r. The X1 and Y1 edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union is the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// UnionPt grows r to include p.
func (r Rect) UnionPt(p Point) Rect {
	return r.Union(Rect{X0: p.X, Y0: p.Y, X1: p.X, Y1: p.Y})
}

// Intersect returns the overlap of r and other. Disjoint rectangles yield
// an empty rectangle positioned at the larger of the two origins.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X0, other.X0)
	y0 := math.Max(r.Y0, other.Y0)
	x1 := math.Min(r.X1, other.X1)
	y1 := math.Min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: math.Max(x0, x1), Y1: math.Max(y0, y1)}
}

// Affine is a 2D affine transform stored as the six coefficients
// [a b c d e f] of the matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine [6]float64

var (
	// IdentityAffine leaves every point where it is.
	IdentityAffine = Affine{1, 0, 0, 1, 0, 0}
	// FlipYAffine mirrors across the x axis.
	FlipYAffine = Affine{1, 0, 0, -1, 0, 0}
	// FlipXAffine mirrors across the y axis.
	FlipXAffine = Affine{-1, 0, 0, 1, 0, 0}
)

// ScaleAffine scales uniformly by s.
func ScaleAffine(s float64) Affine { return Affine{s, 0, 0, s, 0, 0} }

// ScaleNonUniformAffine scales by sx horizontally and sy vertically.
func ScaleNonUniformAffine(sx, sy float64) Affine { return Affine{sx, 0, 0, sy, 0, 0} }

// RotateAffine rotates by th radians. Positive angles turn +x towards +y.
func RotateAffine(th float64) Affine {
	s, c := math.Sincos(th)
	return Affine{c, s, -s, c, 0, 0}
}

// TranslateAffine moves by v.
func TranslateAffine(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// MapUnitSquareAffine maps the unit square onto r.
func MapUnitSquareAffine(r Rect) Affine {
	return Affine{r.Width(), 0, 0, r.Height(), r.X0, r.Y0}
}

// Mul composes a after b: applying the result equals applying b, then a.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		a[0]*b[0] + a[2]*b[1],
		a[1]*b[0] + a[3]*b[1],
		a[0]*b[2] + a[2]*b[3],
		a[1]*b[2] + a[3]*b[3],
		a[0]*b[4] + a[2]*b[5] + a[4],
		a[1]*b[4] + a[3]*b[5] + a[5],
	}
}

// Apply maps p through a.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

// Determinant of the linear part.
func (a Affine) Determinant() float64 { return a[0]*a[3] - a[1]*a[2] }

// Inverse returns the inverse transform. A singular transform yields
// non-finite coefficients; check IsFinite.
func (a Affine) Inverse() Affine {
	inv := 1 / a.Determinant()
	return Affine{
		inv * a[3],
		-inv * a[1],
		-inv * a[2],
		inv * a[0],
		inv * (a[2]*a[5] - a[3]*a[4]),
		inv * (a[1]*a[4] - a[0]*a[5]),
	}
}

// TransformRectBBox maps the corners of r and returns their bounding box.
func (a Affine) TransformRectBBox(r Rect) Rect {
	p00 := a.Apply(Point{X: r.X0, Y: r.Y0})
	p01 := a.Apply(Point{X: r.X0, Y: r.Y1})
	p10 := a.Apply(Point{X: r.X1, Y: r.Y0})
	p11 := a.Apply(Point{X: r.X1, Y: r.Y1})
	return RectFromPoints(p00, p01).UnionPt(p10).UnionPt(p11)
}

// IsFinite reports whether every coefficient is finite.
func (a Affine) IsFinite() bool {
	for _, v := range a {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// IsNaN reports whether any coefficient is NaN.
func (a Affine) IsNaN() bool {
	for _, v := range a {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
