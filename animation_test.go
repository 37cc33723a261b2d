package canopy

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.SetPosition(Vec2{10, 20})

	g := TweenPosition(node, Vec2{100, 200}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	p := node.Position()
	if math.Abs(p.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", p.X)
	}
	if math.Abs(p.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", p.Y)
	}
}

func TestTweenPositionCarriesChildren(t *testing.T) {
	node := NewCircle("c", ShapeConfig{WithBoundingBox: true})
	g := TweenPosition(node, Vec2{50, 0}, 1.0, ease.Linear)
	g.Update(1.0)

	bb := node.BoundingBox().Position()
	if math.Abs(bb.X-50) > 0.5 {
		t.Errorf("bounding box X = %f, want ~50", bb.X)
	}
}

func TestTweenRadius(t *testing.T) {
	node := NewCircle("c", ShapeConfig{Radius: 4})
	g := TweenRadius(node, 12, 0.5, ease.Linear)

	g.Update(0.25)
	if math.Abs(node.Shape.Radius-8) > 0.05 {
		t.Errorf("Radius = %f, want ~8 at halfway", node.Shape.Radius)
	}
	g.Update(0.25)
	if !g.Done || math.Abs(node.Shape.Radius-12) > 0.01 {
		t.Errorf("Radius = %f done=%v, want 12", node.Shape.Radius, g.Done)
	}
}

func TestTweenFillAllComponents(t *testing.T) {
	node := NewSquare("sq", ShapeConfig{Style: ShapeStyle{Fill: Color{R: 1, G: 0, B: 0, A: 1}}})
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	g := TweenFill(node, target, 1.0, ease.Linear)

	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := node.Style.Fill
	if math.Abs(got.R-target.R) > 0.01 || math.Abs(got.G-target.G) > 0.01 ||
		math.Abs(got.B-target.B) > 0.01 || math.Abs(got.A-target.A) > 0.01 {
		t.Errorf("Fill = %v, want %v", got, target)
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewContainer("done")
	g := TweenPosition(node, Vec2{50, 50}, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	node.SetPosition(Vec2{10, 20})

	g := TweenPosition(node, Vec2{100, 200}, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.Position() != (Vec2{10, 20}) {
		t.Errorf("position changed to %v on disposed node", node.Position())
	}
}

func TestTweenDrivenByOnUpdate(t *testing.T) {
	s := NewScene()
	node := NewContainer("n")
	g := TweenPosition(node, Vec2{10, 0}, 0.5, ease.Linear)
	node.OnUpdate = func(dt float64) { g.Update(float32(dt)) }
	s.Add(node)

	s.Update(0.25)
	s.Update(0.25)
	if !g.Done || math.Abs(node.Position().X-10) > 0.01 {
		t.Errorf("tween via OnUpdate: done=%v pos=%v", g.Done, node.Position())
	}
}
