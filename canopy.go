package canopy

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a Surface backend.
type Color struct {
	R, G, B, A float64
}

// Common colors used as shape and scene defaults.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorOrange      = Color{1, 0.647, 0, 1}
	ColorTransparent = Color{}
)

// RGBA8 converts the color to 8-bit premultiplied components.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return uint8(clamp01(c.R*c.A) * 255),
		uint8(clamp01(c.G*c.A) * 255),
		uint8(clamp01(c.B*c.A) * 255),
		uint8(clamp01(c.A) * 255)
}

// toRGBA converts a Color to a color.Color (premultiplied).
func (c Color) toRGBA() colorRGBA {
	r, g, b, a := c.RGBA8()
	return colorRGBA{R: r, G: g, B: b, A: a}
}

// colorRGBA implements the color.Color interface for image.Fill and vector draws.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// NodeType distinguishes update, draw and collision behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer     NodeType = iota // group node with no visual output
	NodeTypeCircle                        // drawable circle shape
	NodeTypeSquare                        // drawable axis-aligned square shape
	NodeTypeBoundingBox                   // collision shape glued to its parent
	NodeTypeKinematicBody                 // moving body wrapping a shape
	NodeTypeStaticBody                    // immovable body wrapping a shape
)

var nodeTypeNames = [...]string{
	NodeTypeContainer:     "container",
	NodeTypeCircle:        "circle",
	NodeTypeSquare:        "square",
	NodeTypeBoundingBox:   "bounding-box",
	NodeTypeKinematicBody: "kinematic-body",
	NodeTypeStaticBody:    "static-body",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

// IsBody reports whether nodes of this type carry a Body payload.
func (t NodeType) IsBody() bool {
	return t == NodeTypeKinematicBody || t == NodeTypeStaticBody
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
