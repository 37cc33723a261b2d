package canopy

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScreenPoint is a position in surface (pixel or cell) coordinates. It is a
// distinct type from world-space Vec2 so that pointer input has to pass
// through Camera.ScreenToWorld before it can reach a collision query.
type ScreenPoint struct {
	X, Y float64
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera controls the view into the scene: position, zoom, and viewport.
//
// The world point (X, Y) is drawn at the viewport center. The default scene
// camera has an empty viewport at the origin, so (X, Y) maps to the top-left
// corner and a world point p appears at (p - (X, Y)) * Zoom.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// CullEnabled skips shapes whose extent doesn't intersect the camera's
	// visible bounds. It has no effect while the viewport is empty.
	CullEnabled bool

	followTarget  *Node
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:        1.0,
		Viewport:    viewport,
		CullEnabled: true,
		dirty:       true,
	}
}

// Follow makes the camera track a target node with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, offsetX, offsetY, lerp float64) {
	c.followTarget = node
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// SetPosition moves the camera immediately.
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.dirty = true
}

// SetZoom changes the zoom factor. Non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.Zoom = z
	c.dirty = true
}

// SetViewport changes the screen rectangle the camera renders into.
func (c *Camera) SetViewport(vp Rect) {
	c.Viewport = vp
	c.dirty = true
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances follow, scroll, and bounds clamping. Called from Scene.Update.
func (c *Camera) update(dt float64) {
	prevX, prevY, prevZoom := c.X, c.Y, c.Zoom

	if c.followTarget != nil && !c.followTarget.IsDisposed() {
		p := c.followTarget.Position()
		targetX := p.X + c.followOffsetX
		targetY := p.Y + c.followOffsetY
		c.X += (targetX - c.X) * c.followLerp
		c.Y += (targetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	center := [6]float64{1, 0, 0, 1, cx, cy}
	scale := [6]float64{c.Zoom, 0, 0, c.Zoom, 0, 0}
	pan := [6]float64{1, 0, 0, 1, -c.X, -c.Y}

	c.viewMatrix = multiplyAffine(center, multiplyAffine(scale, pan))
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts a world-space position to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) ScreenPoint {
	c.computeViewMatrix()
	x, y := transformPoint(c.viewMatrix, p.X, p.Y)
	return ScreenPoint{x, y}
}

// ScreenToWorld converts screen coordinates to a world-space position.
func (c *Camera) ScreenToWorld(p ScreenPoint) Vec2 {
	c.computeViewMatrix()
	x, y := transformPoint(c.invViewMatrix, p.X, p.Y)
	return Vec2{x, y}
}

// VisibleBounds returns the world-space rectangle visible through the viewport.
func (c *Camera) VisibleBounds() Rect {
	tl := c.ScreenToWorld(ScreenPoint{c.Viewport.X, c.Viewport.Y})
	br := c.ScreenToWorld(ScreenPoint{c.Viewport.X + c.Viewport.Width, c.Viewport.Y + c.Viewport.Height})
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// --- Culling ---

// shouldCull returns true if n is a shape lying entirely outside the
// camera's visible bounds. Containers and bodies are never culled here;
// a body's shape is tested when the body draws it.
func (c *Camera) shouldCull(n *Node) bool {
	if c == nil || !c.CullEnabled || c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return false
	}
	switch n.Type {
	case NodeTypeCircle, NodeTypeSquare:
		return !n.Shape.Extent(n.pos).Intersects(c.VisibleBounds())
	default:
		return false
	}
}

// worldToScreen maps p through cam, or returns it unchanged without a camera.
func worldToScreen(cam *Camera, p Vec2) ScreenPoint {
	if cam == nil {
		return ScreenPoint{p.X, p.Y}
	}
	return cam.WorldToScreen(p)
}

// screenToWorld maps p through cam, or returns it unchanged without a camera.
func screenToWorld(cam *Camera, p ScreenPoint) Vec2 {
	if cam == nil {
		return Vec2{p.X, p.Y}
	}
	return cam.ScreenToWorld(p)
}

func cameraZoom(cam *Camera) float64 {
	if cam == nil {
		return 1
	}
	return cam.Zoom
}
