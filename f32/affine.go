// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "fmt"

// Affine2D represents an affine 2D transformation. The zero value of Affine2D
// represents the identity transform.
type Affine2D struct {
	// in order to make the zero value of Affine2D represent the identity
	// transform we store it with the identity matrix subtracted, that is
	// if the actual transformation matrix is:
	// [sx, hx, ox]
	// [hy, sy, oy]
	// [ 0,  0,  1]
	// we store a = sx-1 and e = sy-1
	a, b, c float32
	d, e, f float32
}

// Offset the transformation.
func (a Affine2D) Offset(offset Point) Affine2D {
	return Affine2D{
		a.a, a.b, a.c + offset.X,
		a.d, a.e, a.f + offset.Y,
	}
}

// Scale the transformation around the given origin.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	if origin == (Point{}) {
		return a.scale(factor)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.scale(factor)
	return a.Offset(origin)
}

// Mul returns A*B.
func (A Affine2D) Mul(B Affine2D) (r Affine2D) {
	r.a = (A.a+1)*(B.a+1) + A.b*B.d - 1
	r.b = (A.a+1)*B.b + A.b*(B.e+1)
	r.c = (A.a+1)*B.c + A.b*B.f + A.c
	r.d = A.d*(B.a+1) + (A.e+1)*B.d
	r.e = A.d*B.b + (A.e+1)*(B.e+1) - 1
	r.f = A.d*B.c + (A.e+1)*B.f + A.f
	return r
}

// Transform p by returning a*p.
func (a Affine2D) Transform(p Point) Point {
	return Point{
		X: p.X*(a.a+1) + p.Y*a.b + a.c,
		Y: p.X*a.d + p.Y*(a.e+1) + a.f,
	}
}

// TransformRect returns the axis aligned bounds of r transformed by a.
func (a Affine2D) TransformRect(r Rectangle) Rectangle {
	if a.a == 0 && a.b == 0 && a.d == 0 && a.e == 0 {
		return r.Add(Point{X: a.c, Y: a.f})
	}
	p0 := a.Transform(r.Min)
	p1 := a.Transform(Point{X: r.Max.X, Y: r.Min.Y})
	p2 := a.Transform(r.Max)
	p3 := a.Transform(Point{X: r.Min.X, Y: r.Max.Y})
	return Rectangle{
		Min: Point{
			X: min(p0.X, p1.X, p2.X, p3.X),
			Y: min(p0.Y, p1.Y, p2.Y, p3.Y),
		},
		Max: Point{
			X: max(p0.X, p1.X, p2.X, p3.X),
			Y: max(p0.Y, p1.Y, p2.Y, p3.Y),
		},
	}
}

// Translation returns the offset component of the transformation.
func (a Affine2D) Translation() Point {
	return Point{X: a.c, Y: a.f}
}

func (a Affine2D) scale(factor Point) Affine2D {
	return Affine2D{
		(a.a+1)*factor.X - 1, a.b * factor.X, a.c * factor.X,
		a.d * factor.Y, (a.e+1)*factor.Y - 1, a.f * factor.Y,
	}
}

func (a Affine2D) String() string {
	return fmt.Sprintf("[[%f %f %f] [%f %f %f]]", a.a+1, a.b, a.c, a.d, a.e+1, a.f)
}
