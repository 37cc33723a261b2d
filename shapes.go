package canopy

// Selection outline drawn around selected shapes.
const (
	selectionPadding   = 5.0
	selectionLineWidth = 3.0
)

// ShapeConfig configures NewCircle and NewSquare. Zero fields take defaults.
type ShapeConfig struct {
	Position Vec2
	// Radius is used by NewCircle.
	Radius float64
	// Size is the full width and height used by NewSquare.
	Size Vec2
	// WithBoundingBox attaches a bounding box of the same geometry.
	WithBoundingBox bool
	Style           ShapeStyle
}

// NewCircle creates a drawable circle node.
func NewCircle(name string, cfg ShapeConfig) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle, Shape: CircleShape(cfg.Radius)}
	nodeDefaults(n)
	n.pos = cfg.Position
	n.Style = withDefaultFill(cfg.Style, ColorBlue)
	if cfg.WithBoundingBox {
		n.AttachBoundingBox(n.Shape)
	}
	return n
}

// NewSquare creates a drawable axis-aligned square node centered on its position.
func NewSquare(name string, cfg ShapeConfig) *Node {
	n := &Node{Name: name, Type: NodeTypeSquare, Shape: SquareShape(cfg.Size)}
	nodeDefaults(n)
	n.pos = cfg.Position
	n.Style = withDefaultFill(cfg.Style, ColorOrange)
	if cfg.WithBoundingBox {
		n.AttachBoundingBox(n.Shape)
	}
	return n
}

func withDefaultFill(style ShapeStyle, fill Color) ShapeStyle {
	if style.Fill == (Color{}) {
		style.Fill = fill
	}
	if style.LineWidth <= 0 {
		style.LineWidth = 1
	}
	return style
}

// SetRadius changes the drawn radius of a circle. The bounding box, if any,
// is left unchanged.
func (n *Node) SetRadius(r float64) {
	n.Shape = CircleShape(r)
}

// SetSize changes the drawn size of a square. The bounding box, if any, is
// left unchanged.
func (n *Node) SetSize(size Vec2) {
	n.Shape = SquareShape(size)
}

// Draw renders the node onto s through the scene camera (identity when the
// node is not in a scene). selected adds a highlight outline.
func (n *Node) Draw(s Surface, selected bool) {
	if !n.Visible {
		return
	}
	cam := n.viewCamera()
	switch n.Type {
	case NodeTypeContainer:
		for _, child := range n.children {
			child.Draw(s, false)
		}
	case NodeTypeCircle, NodeTypeSquare:
		if cam.shouldCull(n) {
			return
		}
		drawShape(s, cam, n.Shape, n.pos, n.Style, selected)
		if n.debugEnabled() && n.boundingBox != nil {
			drawOutline(s, cam, n.boundingBox.Shape, n.boundingBox.pos, debugBoundsColor)
		}
	case NodeTypeKinematicBody, NodeTypeStaticBody:
		if shape := n.Body.Shape(); shape != nil {
			shape.Draw(s, selected)
		}
	}
}

func (n *Node) viewCamera() *Camera {
	if n.scene == nil {
		return nil
	}
	return n.scene.camera
}

func drawShape(s Surface, cam *Camera, shape Shape, pos Vec2, style ShapeStyle, selected bool) {
	center := worldToScreen(cam, pos)
	zoom := cameraZoom(cam)

	switch shape.Kind {
	case ShapeCircle:
		r := shape.Radius * zoom
		if selected {
			s.StrokeCircle(center, r+selectionPadding, selectionLineWidth, ColorWhite)
		}
		s.FillCircle(center, r, style.Fill)
		if style.Stroke != (Color{}) {
			s.StrokeCircle(center, r, style.LineWidth, style.Stroke)
		}
	case ShapeSquare:
		size := shape.Size.Scale(zoom)
		rect := Rect{center.X - size.X/2, center.Y - size.Y/2, size.X, size.Y}
		if selected {
			s.StrokeRect(Rect{
				rect.X - selectionPadding, rect.Y - selectionPadding,
				rect.Width + 2*selectionPadding, rect.Height + 2*selectionPadding,
			}, selectionLineWidth, ColorWhite)
		}
		s.FillRect(rect, style.Fill)
		if style.Stroke != (Color{}) {
			s.StrokeRect(rect, style.LineWidth, style.Stroke)
		}
	}
}

func drawOutline(s Surface, cam *Camera, shape Shape, pos Vec2, c Color) {
	center := worldToScreen(cam, pos)
	zoom := cameraZoom(cam)
	switch shape.Kind {
	case ShapeCircle:
		s.StrokeCircle(center, shape.Radius*zoom, 1, c)
	case ShapeSquare:
		size := shape.Size.Scale(zoom)
		s.StrokeRect(Rect{center.X - size.X/2, center.Y - size.Y/2, size.X, size.Y}, 1, c)
	}
}
