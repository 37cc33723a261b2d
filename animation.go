package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 values of a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenRadius,
// TweenFill) and call Update(dt) each frame, typically from the node's
// OnUpdate hook. Values are applied through the node's setters, so a tweened
// position carries the node's children along. If the target node is disposed,
// the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	apply  func(vals [4]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(vals)
}

// TweenPosition creates a TweenGroup that moves node to the given world
// position over the specified duration using the easing function.
func TweenPosition(node *Node, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Position()
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	g.apply = func(v [4]float64) { node.SetPosition(Vec2{v[0], v[1]}) }
	return g
}

// TweenRadius creates a TweenGroup that animates a circle's drawn radius.
func TweenRadius(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Shape.Radius), float32(to), duration, fn)
	g.apply = func(v [4]float64) { node.SetRadius(v[0]) }
	return g
}

// TweenFill creates a TweenGroup that animates all four components of
// node.Style.Fill to the target color over the specified duration.
func TweenFill(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Style.Fill
	g := &TweenGroup{count: 4, target: node}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	g.apply = func(v [4]float64) { node.Style.Fill = Color{v[0], v[1], v[2], v[3]} }
	return g
}
