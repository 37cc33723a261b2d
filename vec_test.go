package canopy

import (
	"errors"
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{-1, 2}

	assertVec(t, "Add", a.Add(b), Vec2{2, 6})
	assertVec(t, "Sub", a.Sub(b), Vec2{4, 2})
	assertVec(t, "Scale", a.Scale(2), Vec2{6, 8})
	assertVec(t, "Add/Sub round trip", a.Add(b).Sub(b), a)
	assertNear(t, "Dot", a.Dot(b), 5)
	assertNear(t, "Cross", a.Cross(b), 10)
	assertNear(t, "Magnitude", a.Magnitude(), 5)
	assertNear(t, "Distance", a.Distance(Vec2{}), 5)
}

func TestVec2InPlace(t *testing.T) {
	v := Vec2{1, 1}
	v.AddInPlace(Vec2{2, 3})
	assertVec(t, "AddInPlace", v, Vec2{3, 4})
	v.SubInPlace(Vec2{3, 4})
	if !v.IsZero() {
		t.Errorf("SubInPlace = %v, want zero", v)
	}
}

func TestVec2ValueCopyIsClone(t *testing.T) {
	a := Vec2{1, 2}
	b := a
	b.AddInPlace(Vec2{5, 5})
	if a != (Vec2{1, 2}) {
		t.Errorf("original mutated through copy: %v", a)
	}
}

func TestVec2Div(t *testing.T) {
	got, err := Vec2{6, -3}.Div(3)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	assertVec(t, "Div", got, Vec2{2, -1})

	_, err = Vec2{1, 1}.Div(0)
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Div(0) err = %v, want ErrDivideByZero", err)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []Vec2{{3, 4}, {-10, 0}, {0.001, 0.002}, {1e6, -1e6}}
	for _, v := range tests {
		n := v.Normalize()
		if math.Abs(n.Magnitude()-1) > 1e-6 {
			t.Errorf("|%v.Normalize()| = %v, want 1", v, n.Magnitude())
		}
		if n.Dot(v) <= 0 {
			t.Errorf("%v.Normalize() = %v points away from v", v, n)
		}
	}

	if z := (Vec2{}).Normalize(); !z.IsZero() {
		t.Errorf("zero.Normalize() = %v, want zero", z)
	}
}

func TestVec2AngleTo(t *testing.T) {
	assertNear(t, "right angle", Vec2{1, 0}.AngleTo(Vec2{0, 5}), math.Pi/2)
	assertNear(t, "opposite", Vec2{1, 0}.AngleTo(Vec2{-2, 0}), math.Pi)
	if !math.IsNaN(Vec2{}.AngleTo(Vec2{1, 0})) {
		t.Error("AngleTo with zero vector should be NaN")
	}
}

func TestVec2Rotate(t *testing.T) {
	got := Vec2{1, 0}.Rotate(math.Pi / 2)
	if !got.ApproxEqual(Vec2{0, 1}) {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", got)
	}
}

func TestVec2ProjectReflect(t *testing.T) {
	assertVec(t, "Project", Vec2{3, 4}.Project(Vec2{10, 0}), Vec2{3, 0})
	if p := (Vec2{3, 4}).Project(Vec2{}); !p.IsZero() {
		t.Errorf("Project onto zero = %v, want zero", p)
	}
	assertVec(t, "Reflect", Vec2{1, -1}.Reflect(Vec2{0, 1}), Vec2{1, 1})
}

func TestVec2Lerp(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{10, 20}
	tests := []struct {
		t    float64
		want Vec2
	}{
		{0, a},
		{1, b},
		{0.5, Vec2{5, 10}},
		{2, Vec2{20, 40}},
		{-1, Vec2{-10, -20}},
	}
	for _, tt := range tests {
		assertVec(t, "Lerp", a.Lerp(b, tt.t), tt.want)
	}
}

func TestVec2Limit(t *testing.T) {
	assertVec(t, "over", Vec2{30, 40}.Limit(5), Vec2{3, 4})
	assertVec(t, "under", Vec2{1, 1}.Limit(5), Vec2{1, 1})
}

func TestVec2Equals(t *testing.T) {
	a := Vec2{1, 1}
	if !a.Equals(Vec2{1.05, 0.95}, 0.1) {
		t.Error("within tolerance should be equal")
	}
	if a.Equals(Vec2{1.1, 1}, 0.1) {
		t.Error("difference equal to tolerance should not be equal")
	}
	if !a.ApproxEqual(Vec2{1 + 1e-9, 1}) {
		t.Error("ApproxEqual should absorb float noise")
	}
}

func TestVec2FromAngle(t *testing.T) {
	got := Vec2FromAngle(math.Pi, 2)
	if !got.ApproxEqual(Vec2{-2, 0}) {
		t.Errorf("Vec2FromAngle(pi, 2) = %v, want (-2, 0)", got)
	}
	for i := 0; i < 10; i++ {
		r := RandomVec2(3)
		assertNear(t, "|RandomVec2|", r.Magnitude(), 3)
	}
}

func TestVec2String(t *testing.T) {
	if got := (Vec2{1.5, -2}).String(); got != "Vec2(1.5, -2)" {
		t.Errorf("String() = %q", got)
	}
}
