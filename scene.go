package canopy

import (
	"time"

	"go.uber.org/zap"
)

// Scene is the top-level object that owns the node tree, the node registry,
// the camera and the input source.
//
// The root's children are the scene members updated and drawn each frame, in
// list order. Every node in the tree, plus every shape wrapped by a body in
// the tree, is registered by ID; bodies resolve their shape handle through
// this registry.
type Scene struct {
	root   *Node
	nodes  map[NodeID]*Node
	camera *Camera
	input  Input
	logger *zap.Logger
	debug  bool

	// ClearColor fills the surface before members are drawn.
	ClearColor Color

	// Members captured at the start of Update. Nodes added during Update are
	// first updated next frame; nodes removed during Update are skipped from
	// the moment they leave the scene.
	frameMembers []*Node
	updating     bool
}

// SceneOption customizes NewScene.
type SceneOption func(*Scene)

// WithCamera replaces the default camera.
func WithCamera(cam *Camera) SceneOption {
	return func(s *Scene) { s.camera = cam }
}

// WithInput sets the scene's input source.
func WithInput(in Input) SceneOption {
	return func(s *Scene) { s.input = in }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) SceneOption {
	return func(s *Scene) { s.logger = l }
}

// WithClearColor sets the background color.
func WithClearColor(c Color) SceneOption {
	return func(s *Scene) { s.ClearColor = c }
}

// NewScene creates a new scene with a pre-created root container, an identity
// camera, an empty InputState and a no-op logger.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		nodes:      make(map[NodeID]*Node),
		camera:     NewCamera(Rect{}),
		input:      NewInputState(),
		logger:     zap.NewNop(),
		ClearColor: ColorBlack,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.root = NewContainer("root")
	s.adopt(s.root)
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Input returns the scene's input source.
func (s *Scene) Input() Input {
	return s.input
}

// SetInput replaces the scene's input source.
func (s *Scene) SetInput(in Input) {
	s.input = in
}

// Logger returns the scene logger.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// Add appends n to the scene's members.
func (s *Scene) Add(n *Node) {
	s.root.AddChild(n)
}

// Remove detaches n from the scene members. No-op if n is not a member.
func (s *Scene) Remove(n *Node) {
	s.root.RemoveChild(n)
}

// Members returns the top-level nodes. The returned slice MUST NOT be mutated.
func (s *Scene) Members() []*Node {
	return s.root.children
}

// Lookup resolves a node ID registered with this scene.
func (s *Scene) Lookup(id NodeID) *Node {
	return s.nodes[id]
}

// Len returns the number of registered nodes, including the root.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// members is the list collision resolution runs against: the frame snapshot
// during Update, the live member list otherwise.
func (s *Scene) members() []*Node {
	if s.updating {
		return s.frameMembers
	}
	return s.root.children
}

// adopt registers n's subtree with the scene. Body nodes also register their
// wrapped shape when it has no parent of its own.
func (s *Scene) adopt(n *Node) {
	n.walk(func(m *Node) {
		m.scene = s
		s.nodes[m.ID] = m
		if m.Body != nil && m.Body.ward != nil {
			if ward := m.Body.ward; ward.Parent == nil && ward.scene == nil && !ward.disposed {
				s.adopt(ward)
			}
		}
	})
}

// release unregisters n's subtree. Wrapped shapes that are not part of the
// tree leave with their body.
func (s *Scene) release(n *Node) {
	n.walk(func(m *Node) {
		if m.scene != s {
			return
		}
		if m.Body != nil {
			if shape := s.nodes[m.Body.shapeID]; shape != nil && shape.Parent == nil {
				s.release(shape)
			}
		}
		delete(s.nodes, m.ID)
		m.scene = nil
	})
}

// Update polls input, advances the camera and updates every member in list
// order.
func (s *Scene) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if p, ok := s.input.(Poller); ok {
		p.Poll()
	}
	s.camera.update(dt)

	s.frameMembers = append(s.frameMembers[:0], s.root.children...)
	s.updating = true
	defer func() {
		s.updating = false
		clear(s.frameMembers)
		s.frameMembers = s.frameMembers[:0]
	}()

	for _, n := range s.frameMembers {
		if n.scene != s {
			continue
		}
		n.Update(dt)
	}

	if s.debug {
		s.debugLogUpdate(time.Since(t0), len(s.frameMembers))
	}
}

// Draw fills the surface with ClearColor and draws every member in list
// order, so later members paint over earlier ones.
func (s *Scene) Draw(surface Surface) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	surface.Fill(s.ClearColor)
	for _, n := range s.root.children {
		n.Draw(surface, false)
	}

	if s.debug {
		s.debugLogDraw(time.Since(t0), len(s.root.children))
	}
}

// NodeAt returns the topmost member whose collider contains the screen point,
// or nil. Members are tested in reverse draw order.
func (s *Scene) NodeAt(p ScreenPoint) *Node {
	world := screenToWorld(s.camera, p)
	members := s.root.children
	for i := len(members) - 1; i >= 0; i-- {
		n := members[i]
		if bb := colliderOf(n); bb != nil && bb.IsPointInside(world) {
			return n
		}
	}
	return nil
}

// PointerWorld returns the input pointer position in world space.
func (s *Scene) PointerWorld() Vec2 {
	return screenToWorld(s.camera, s.input.PointerPosition())
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, bounding
// boxes are outlined, and per-frame timing is logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// DebugMode reports whether debug mode is enabled.
func (s *Scene) DebugMode() bool {
	return s.debug
}
