package canopy

// ShapeKind tags the variant held by a Shape.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota // Radius is meaningful
	ShapeSquare                  // Size is meaningful

	numShapeKinds
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Default geometry used when a constructor is given a zero size.
const (
	DefaultRadius     = 10.0
	DefaultSquareSide = 10.0
)

// Shape is a closed tagged variant over the supported geometries. Shapes are
// centered on the position of the node that carries them.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	// Size is the full width and height of a square.
	Size Vec2
}

// CircleShape returns a circle of radius r (DefaultRadius if r <= 0).
func CircleShape(r float64) Shape {
	if r <= 0 {
		r = DefaultRadius
	}
	return Shape{Kind: ShapeCircle, Radius: r}
}

// SquareShape returns an axis-aligned box of the given full size
// (DefaultSquareSide on an axis that is <= 0).
func SquareShape(size Vec2) Shape {
	if size.X <= 0 {
		size.X = DefaultSquareSide
	}
	if size.Y <= 0 {
		size.Y = DefaultSquareSide
	}
	return Shape{Kind: ShapeSquare, Size: size}
}

// HalfExtents returns half the size of a square shape.
func (s Shape) HalfExtents() Vec2 {
	return s.Size.Scale(0.5)
}

// Extent returns the world-space rectangle covered by the shape centered at center.
func (s Shape) Extent(center Vec2) Rect {
	switch s.Kind {
	case ShapeCircle:
		return Rect{center.X - s.Radius, center.Y - s.Radius, 2 * s.Radius, 2 * s.Radius}
	default:
		h := s.HalfExtents()
		return Rect{center.X - h.X, center.Y - h.Y, s.Size.X, s.Size.Y}
	}
}

// ContainsPoint reports whether the world-space point p lies inside the shape
// centered at center. Circles exclude their boundary; squares include it.
func (s Shape) ContainsPoint(center, p Vec2) bool {
	switch s.Kind {
	case ShapeCircle:
		return center.Distance(p) < s.Radius
	case ShapeSquare:
		h := s.HalfExtents()
		d := p.Sub(center)
		return d.X >= -h.X && d.X <= h.X && d.Y >= -h.Y && d.Y <= h.Y
	default:
		return false
	}
}

// NewBoundingBox creates a collision node for the given shape. It is usually
// created through AttachBoundingBox so that it follows its owner.
func NewBoundingBox(name string, shape Shape) *Node {
	n := &Node{Name: name, Type: NodeTypeBoundingBox, Shape: shape}
	nodeDefaults(n)
	n.Visible = false
	return n
}

// CheckCollision tests this bounding box against other. Both nodes must be
// bounding boxes; anything else never collides. The MTV is expressed for n.
func (n *Node) CheckCollision(other *Node) Collision {
	if n == nil || other == nil || n.Type != NodeTypeBoundingBox || other.Type != NodeTypeBoundingBox {
		return Collision{}
	}
	return Collide(n.Shape, n.pos, other.Shape, other.pos)
}

// IsPointInside reports whether the world-space point p lies inside this
// bounding box. Convert pointer input with Camera.ScreenToWorld first.
func (n *Node) IsPointInside(p Vec2) bool {
	if n == nil || n.Type != NodeTypeBoundingBox {
		return false
	}
	return n.Shape.ContainsPoint(n.pos, p)
}
