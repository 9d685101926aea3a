// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func eq(p1, p2 Point) bool {
	tol := 1e-5
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return math.Abs(math.Sqrt(float64(dx*dx+dy*dy))) < tol
}

func TestTransformOffset(t *testing.T) {
	p := Point{X: 1, Y: 2}
	o := Point{X: 2, Y: -3}

	r := Affine2D{}.Offset(o).Transform(p)
	if !eq(r, Pt(3, -1)) {
		t.Errorf("offset transformation mismatch: have %v, want {3 -1}", r)
	}
}

func TestTransformScale(t *testing.T) {
	p := Point{X: 1, Y: 2}
	s := Point{X: -1, Y: 2}

	r := Affine2D{}.Scale(Point{}, s).Transform(p)
	if !eq(r, Pt(-1, 4)) {
		t.Errorf("scale transformation mismatch: have %v, want {-1 4}", r)
	}
}

func TestTransformScaleAround(t *testing.T) {
	p := Pt(-1, -1)
	target := Pt(-6, -13)
	pt := Affine2D{}.Scale(Pt(4, 5), Pt(2, 3)).Transform(p)
	if !eq(pt, target) {
		t.Log(pt, "!=", target)
		t.Error("Scale not as expected")
	}
}

func TestMulOrder(t *testing.T) {
	A := Affine2D{}.Offset(Pt(100, 100))
	B := Affine2D{}.Scale(Point{}, Pt(2, 2))

	T1 := Affine2D{}.Offset(Pt(100, 100)).Scale(Point{}, Pt(2, 2))
	T2 := B.Mul(A)

	if T1 != T2 {
		t.Log(T1)
		t.Log(T2)
		t.Error("multiplication / transform order not as expected")
	}
}

func TestTranslation(t *testing.T) {
	a := Affine2D{}.Scale(Point{}, Pt(2, 2)).Offset(Pt(10, -4))
	if have, want := a.Translation(), Pt(10, -4); have != want {
		t.Errorf("translation mismatch: have %v, want %v", have, want)
	}
}

func TestString(t *testing.T) {
	a := Affine2D{}.Scale(Point{}, Pt(2, 3)).Offset(Pt(4, 5))
	if have, want := a.String(), "[[2.000000 0.000000 4.000000] [0.000000 3.000000 5.000000]]"; have != want {
		t.Errorf("string mismatch: have %s, want %s", have, want)
	}
}

func TestTransformRect(t *testing.T) {
	r := Rect(0, 0, 10, 20)
	have := Affine2D{}.Offset(Pt(5, -5)).TransformRect(r)
	if want := Rect(5, -5, 15, 15); have != want {
		t.Errorf("offset rect mismatch: have %v, want %v", have, want)
	}
	have = Affine2D{}.Scale(Point{}, Pt(-1, 2)).TransformRect(r)
	if want := Rect(-10, 0, 0, 40); have != want {
		t.Errorf("scaled rect mismatch: have %v, want %v", have, want)
	}
}
