package canopy

import (
	"github.com/google/uuid"
)

// NodeID is the opaque identity of a Node. IDs are random (v4) UUIDs so they
// stay unique across scenes and can be used as registry handles.
type NodeID = uuid.UUID

// ShapeStyle controls how a drawable shape is filled and outlined.
// A zero Stroke color disables the outline.
type ShapeStyle struct {
	Fill      Color
	Stroke    Color
	LineWidth float64
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path; Type selects the
// update, draw and collision behavior.
//
// Positions are world-space. A node's children are kept glued to it by
// translating them whenever the node moves, so a child's position is never
// relative to its parent.
type Node struct {
	// Identity
	ID   NodeID
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node
	scene    *Scene

	pos Vec2

	// Shape is the drawn geometry for NodeTypeCircle and NodeTypeSquare nodes
	// and the collision geometry for NodeTypeBoundingBox nodes.
	Shape Shape
	Style ShapeStyle

	// boundingBox is also present in children; the direct reference keeps
	// collision queries from searching the child list.
	boundingBox *Node

	// Body is the physics payload for NodeTypeKinematicBody and
	// NodeTypeStaticBody nodes.
	Body *Body

	Visible  bool
	UserData any

	// OnUpdate is called once per Scene.Update after the node's own update.
	OnUpdate func(dt float64)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = uuid.New()
	n.Visible = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// Scene returns the scene this node belongs to, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

// --- Position ---

// Position returns the node's world-space position.
func (n *Node) Position() Vec2 {
	return n.pos
}

// SetPosition moves the node to p. Every descendant is translated by the same
// delta, depth-first, before the node's own position is committed.
func (n *Node) SetPosition(p Vec2) {
	n.moveChildren(p.Sub(n.pos))
	n.pos = p
}

// SetX moves the node along the x axis only.
func (n *Node) SetX(x float64) {
	n.SetPosition(Vec2{x, n.pos.Y})
}

// SetY moves the node along the y axis only.
func (n *Node) SetY(y float64) {
	n.SetPosition(Vec2{n.pos.X, y})
}

// Translate moves the node, and with it its subtree, by delta.
func (n *Node) Translate(delta Vec2) {
	n.SetPosition(n.pos.Add(delta))
}

// moveChildren reads the live child list so children added after
// construction are covered.
func (n *Node) moveChildren(delta Vec2) {
	for _, child := range n.children {
		child.Translate(delta)
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// A child without a scene inherits this node's scene, together with its
// whole subtree.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("canopy: cannot add nil child")
	}
	if n.debugEnabled() {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("canopy: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if child.scene == nil && n.scene != nil {
		n.scene.adopt(child)
	}
	if n.debugEnabled() {
		n.scene.debugCheckTreeDepth(child)
		n.scene.debugCheckChildCount(n)
	}
}

// RemoveChild detaches the first occurrence of child from this node.
// Removing a node that is not a child is a no-op.
func (n *Node) RemoveChild(child *Node) {
	if !n.removeChildByPtr(child) {
		return
	}
	child.Parent = nil
	if n.boundingBox == child {
		n.boundingBox = nil
	}
	if child.scene != nil {
		child.scene.release(child)
	}
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Bounding box ---

// BoundingBox returns the attached bounding box node, or nil.
func (n *Node) BoundingBox() *Node {
	return n.boundingBox
}

// AttachBoundingBox creates a bounding box centered on this node, adds it as a
// child so it follows the node, and keeps a direct reference for collision
// queries. Any previously attached bounding box is removed.
func (n *Node) AttachBoundingBox(shape Shape) *Node {
	if n.boundingBox != nil {
		n.RemoveChild(n.boundingBox)
	}
	bb := NewBoundingBox(n.Name+".bounds", shape)
	bb.pos = n.pos
	n.AddChild(bb)
	n.boundingBox = bb
	return bb
}

// DetachBoundingBox removes the attached bounding box, if any.
func (n *Node) DetachBoundingBox() {
	if n.boundingBox != nil {
		n.RemoveChild(n.boundingBox)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent and scene, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	if n.Parent != nil {
		n.RemoveFromParent()
	} else if n.scene != nil {
		n.scene.release(n)
	}
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.boundingBox = nil
	n.Parent = nil
	n.scene = nil
	n.Body = nil
	n.UserData = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Per-frame behavior ---

// Update advances the node by dt seconds. Bodies integrate and resolve
// collisions, shapes keep their bounding box on their own position, and
// OnUpdate runs last.
func (n *Node) Update(dt float64) {
	switch n.Type {
	case NodeTypeKinematicBody:
		if n.Body != nil {
			n.Body.updateKinematic(n, dt)
		}
	case NodeTypeStaticBody:
		if n.Body != nil {
			n.Body.updateStatic(dt)
		}
	case NodeTypeCircle, NodeTypeSquare:
		if n.boundingBox != nil {
			n.boundingBox.SetPosition(n.pos)
		}
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return true
		}
	}
	return false
}

// walk calls fn for n and every descendant, depth-first.
func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}

func (n *Node) debugEnabled() bool {
	return n.scene != nil && n.scene.debug
}
