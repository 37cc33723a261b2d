package canopy

import (
	"math"
	"testing"
)

func TestCollideTableComplete(t *testing.T) {
	for a := ShapeKind(0); a < numShapeKinds; a++ {
		for b := ShapeKind(0); b < numShapeKinds; b++ {
			if collideTable[a][b] == nil {
				t.Errorf("no collision function for %v vs %v", a, b)
			}
		}
	}
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name      string
		a         Shape
		aPos      Vec2
		b         Shape
		bPos      Vec2
		colliding bool
		mtv       Vec2
	}{
		{
			name: "circles overlapping",
			a:    CircleShape(5), aPos: Vec2{0, 0},
			b: CircleShape(5), bPos: Vec2{8, 0},
			colliding: true, mtv: Vec2{-2, 0},
		},
		{
			name: "circles overlapping reversed",
			a:    CircleShape(5), aPos: Vec2{8, 0},
			b: CircleShape(5), bPos: Vec2{0, 0},
			colliding: true, mtv: Vec2{2, 0},
		},
		{
			name: "circles apart",
			a:    CircleShape(5), aPos: Vec2{0, 0},
			b: CircleShape(5), bPos: Vec2{20, 0},
		},
		{
			name: "circles touching",
			a:    CircleShape(5), aPos: Vec2{0, 0},
			b: CircleShape(5), bPos: Vec2{10, 0},
		},
		{
			name: "circles coincident",
			a:    CircleShape(5), aPos: Vec2{3, 3},
			b: CircleShape(5), bPos: Vec2{3, 3},
			colliding: true, mtv: Vec2{10, 0},
		},
		{
			name: "circle vs square",
			a:    CircleShape(10), aPos: Vec2{0, 0},
			b: SquareShape(Vec2{10, 10}), bPos: Vec2{12, 0},
			colliding: true, mtv: Vec2{-3, 0},
		},
		{
			name: "circle vs square apart",
			a:    CircleShape(10), aPos: Vec2{0, 0},
			b: SquareShape(Vec2{10, 10}), bPos: Vec2{30, 0},
		},
		{
			name: "circle center inside square",
			a:    CircleShape(4), aPos: Vec2{1, 1},
			b: SquareShape(Vec2{10, 10}), bPos: Vec2{0, 0},
			colliding: true, mtv: Vec2{4, 0},
		},
		{
			name: "square vs circle",
			a:    SquareShape(Vec2{10, 10}), aPos: Vec2{12, 0},
			b: CircleShape(10), bPos: Vec2{0, 0},
			colliding: true, mtv: Vec2{3, 0},
		},
		{
			name: "squares resolve on x",
			a:    SquareShape(Vec2{20, 20}), aPos: Vec2{0, 0},
			b: SquareShape(Vec2{20, 20}), bPos: Vec2{15, 0},
			colliding: true, mtv: Vec2{-5, 0},
		},
		{
			name: "squares resolve on y",
			a:    SquareShape(Vec2{20, 20}), aPos: Vec2{0, 18},
			b: SquareShape(Vec2{20, 20}), bPos: Vec2{1, 0},
			colliding: true, mtv: Vec2{0, 2},
		},
		{
			name: "squares tie breaks toward x",
			a:    SquareShape(Vec2{20, 20}), aPos: Vec2{15, 15},
			b: SquareShape(Vec2{20, 20}), bPos: Vec2{0, 0},
			colliding: true, mtv: Vec2{5, 0},
		},
		{
			name: "squares edge contact",
			a:    SquareShape(Vec2{20, 20}), aPos: Vec2{0, 0},
			b: SquareShape(Vec2{20, 20}), bPos: Vec2{20, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collide(tt.a, tt.aPos, tt.b, tt.bPos)
			if got.Colliding != tt.colliding {
				t.Fatalf("Colliding = %v, want %v", got.Colliding, tt.colliding)
			}
			if !got.MTV.Equals(tt.mtv, 1e-9) {
				t.Errorf("MTV = %v, want %v", got.MTV, tt.mtv)
			}
		})
	}
}

func TestCollideMTVSeparates(t *testing.T) {
	circle := CircleShape(6)
	box := SquareShape(Vec2{12, 8})
	tests := []struct {
		a, b Shape
		off  Vec2
	}{
		{circle, circle, Vec2{3, 1}},
		{circle, circle, Vec2{-5, -3}},
		{box, box, Vec2{3, 1}},
		{box, box, Vec2{-2, 4}},
		{box, box, Vec2{-10, -0.5}},
		// Circle centers outside the box; a center inside is only pushed by
		// the radius and may stay overlapping.
		{circle, box, Vec2{9, 2}},
		{circle, box, Vec2{-7, -6}},
		{box, circle, Vec2{0, 8}},
	}

	for _, tt := range tests {
		c := Collide(tt.a, tt.off, tt.b, Vec2{})
		if !c.Colliding {
			t.Errorf("%v at %v vs %v: expected a collision", tt.a.Kind, tt.off, tt.b.Kind)
			continue
		}
		// Nudge past the boundary: contact counts as separated.
		resolved := tt.off.Add(c.MTV.Scale(1 + 1e-9))
		if again := Collide(tt.a, resolved, tt.b, Vec2{}); again.Colliding {
			t.Errorf("%v at %v vs %v: still colliding after MTV %v", tt.a.Kind, tt.off, tt.b.Kind, c.MTV)
		}
	}
}

func TestShapeDefaults(t *testing.T) {
	if r := CircleShape(0).Radius; r != DefaultRadius {
		t.Errorf("CircleShape(0).Radius = %v, want %v", r, DefaultRadius)
	}
	s := SquareShape(Vec2{0, 4})
	if s.Size != (Vec2{DefaultSquareSide, 4}) {
		t.Errorf("SquareShape size = %v", s.Size)
	}
}

func TestShapeContainsPoint(t *testing.T) {
	circle := CircleShape(5)
	if !circle.ContainsPoint(Vec2{10, 10}, Vec2{13, 10}) {
		t.Error("point inside circle not contained")
	}
	if circle.ContainsPoint(Vec2{10, 10}, Vec2{15, 10}) {
		t.Error("circle boundary should not be contained")
	}

	square := SquareShape(Vec2{10, 20})
	if !square.ContainsPoint(Vec2{0, 0}, Vec2{5, -10}) {
		t.Error("square corner should be contained")
	}
	if square.ContainsPoint(Vec2{0, 0}, Vec2{5.1, 0}) {
		t.Error("point past half-width should not be contained")
	}
}

func TestShapeExtent(t *testing.T) {
	r := SquareShape(Vec2{10, 20}).Extent(Vec2{5, 5})
	if r != (Rect{0, -5, 10, 20}) {
		t.Errorf("square Extent = %v", r)
	}
	r = CircleShape(3).Extent(Vec2{1, 1})
	if r != (Rect{-2, -2, 6, 6}) {
		t.Errorf("circle Extent = %v", r)
	}
}

func TestCheckCollisionRequiresBoundingBoxes(t *testing.T) {
	a := NewCircle("a", ShapeConfig{Radius: 5})
	b := NewCircle("b", ShapeConfig{Radius: 5, Position: Vec2{1, 0}})
	if a.CheckCollision(b).Colliding {
		t.Error("shape nodes without bounding boxes should never collide")
	}

	abb := NewBoundingBox("abb", a.Shape)
	bbb := NewBoundingBox("bbb", b.Shape)
	bbb.SetPosition(Vec2{1, 0})
	c := abb.CheckCollision(bbb)
	if !c.Colliding {
		t.Fatal("bounding boxes should collide")
	}
	if math.Abs(c.MTV.X+9) > epsilon || c.MTV.Y != 0 {
		t.Errorf("MTV = %v, want (-9, 0)", c.MTV)
	}

	if abb.CheckCollision(nil).Colliding {
		t.Error("nil other should not collide")
	}
}

func TestIsPointInside(t *testing.T) {
	bb := NewBoundingBox("bb", SquareShape(Vec2{10, 10}))
	bb.SetPosition(Vec2{100, 100})
	if !bb.IsPointInside(Vec2{104, 96}) {
		t.Error("point should be inside")
	}
	if bb.IsPointInside(Vec2{0, 0}) {
		t.Error("origin should be outside")
	}

	shape := NewSquare("sq", ShapeConfig{Position: Vec2{100, 100}})
	if shape.IsPointInside(Vec2{100, 100}) {
		t.Error("only bounding boxes answer point queries")
	}
}
