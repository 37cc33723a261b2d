package canopy

import "math"

// BodyKind tags the physics variant held by a Body.
type BodyKind uint8

const (
	BodyKinematic BodyKind = iota // integrates velocity and resolves its own collisions
	BodyStatic                    // never moves; only an obstacle for kinematic bodies
)

// Defaults applied by BodyConfig when a field is zero.
const (
	DefaultSpeed         = 1500.0
	DefaultFriction      = 0.92
	DefaultMaxSpeed      = 800.0
	DefaultResolvePasses = 1

	// velocityDeadzone snaps slower velocity components to zero.
	velocityDeadzone = 0.1
)

// BodyConfig configures NewKinematicBody. Zero fields take the defaults above,
// so a friction of exactly 0 cannot be requested through the config; set
// Body.Friction directly for an instant stop.
type BodyConfig struct {
	Speed    float64
	Friction float64
	MaxSpeed float64
	// ResolvePasses is how many times the collision pass runs per update.
	// The default of 1 is a single order-dependent pass: a correction against
	// one body can reintroduce overlap with a body resolved earlier.
	ResolvePasses int
}

func (c BodyConfig) withDefaults() BodyConfig {
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	if c.Friction == 0 {
		c.Friction = DefaultFriction
	}
	if c.MaxSpeed == 0 {
		c.MaxSpeed = DefaultMaxSpeed
	}
	if c.ResolvePasses <= 0 {
		c.ResolvePasses = DefaultResolvePasses
	}
	return c
}

// Body is the physics payload of a body node. It wraps one shape node by
// handle: while the body is in a scene the handle is resolved through the
// scene registry, so a shape that has been removed or disposed resolves to nil
// instead of a stale node.
type Body struct {
	Kind BodyKind

	Velocity Vec2
	Speed    float64
	// Friction multiplies velocity every update, in [0, 1]. 1 keeps velocity,
	// 0 stops the body at once.
	Friction      float64
	MaxSpeed      float64
	ResolvePasses int

	// Colliding is true when the last update applied at least one correction.
	Colliding bool

	shapeID NodeID
	ward    *Node // the wrapped shape, used until the body joins a scene
	owner   *Node
}

// NewKinematicBody creates a kinematic body node wrapping shape. The body
// starts at the shape's position. The shape is not re-parented: the body owns
// its drawing and its position from the next update on.
func NewKinematicBody(name string, shape *Node, cfg BodyConfig) *Node {
	cfg = cfg.withDefaults()
	return newBodyNode(name, NodeTypeKinematicBody, shape, &Body{
		Kind:          BodyKinematic,
		Speed:         cfg.Speed,
		Friction:      cfg.Friction,
		MaxSpeed:      cfg.MaxSpeed,
		ResolvePasses: cfg.ResolvePasses,
	})
}

// NewStaticBody creates a static body node wrapping shape.
func NewStaticBody(name string, shape *Node) *Node {
	return newBodyNode(name, NodeTypeStaticBody, shape, &Body{Kind: BodyStatic})
}

func newBodyNode(name string, typ NodeType, shape *Node, b *Body) *Node {
	if shape == nil {
		panic("canopy: body requires a shape")
	}
	n := &Node{Name: name, Type: typ, Body: b}
	nodeDefaults(n)
	n.pos = shape.pos
	b.shapeID = shape.ID
	b.ward = shape
	b.owner = n
	return n
}

// Shape resolves the wrapped shape node. It returns nil once the shape has
// been removed from the body's scene or disposed.
func (b *Body) Shape() *Node {
	if b == nil {
		return nil
	}
	if b.owner != nil && b.owner.scene != nil {
		return b.owner.scene.Lookup(b.shapeID)
	}
	if b.ward == nil || b.ward.disposed {
		return nil
	}
	return b.ward
}

// ApplyForce accumulates an impulse of magnitude Speed*dt in the direction of
// force. There is no mass term. A zero force is a no-op.
func (b *Body) ApplyForce(force Vec2, dt float64) {
	if b.Kind != BodyKinematic {
		return
	}
	mag := force.Magnitude()
	if mag == 0 {
		return
	}
	b.Velocity.AddInPlace(force.Scale(b.Speed * dt / mag))
}

// integrate applies friction, the speed clamp and the deadzone, in that order.
func (b *Body) integrate() {
	b.Velocity = b.Velocity.Scale(b.Friction)

	if speed := b.Velocity.Magnitude(); speed > b.MaxSpeed {
		b.Velocity = b.Velocity.Scale(b.MaxSpeed / speed)
	}

	if math.Abs(b.Velocity.X) < velocityDeadzone {
		b.Velocity.X = 0
	}
	if math.Abs(b.Velocity.Y) < velocityDeadzone {
		b.Velocity.Y = 0
	}
}

func (b *Body) updateKinematic(n *Node, dt float64) {
	b.integrate()
	n.Translate(b.Velocity.Scale(dt))

	shape := b.Shape()
	if shape == nil {
		b.Colliding = false
		return
	}
	b.mirror(n, shape)
	shape.Update(dt)
	b.resolveCollisions(n, shape)
}

func (b *Body) updateStatic(dt float64) {
	if shape := b.Shape(); shape != nil {
		shape.Update(dt)
	}
}

// mirror copies the body position onto the shape and its bounding box.
func (b *Body) mirror(n, shape *Node) {
	shape.SetPosition(n.pos)
	if bb := shape.boundingBox; bb != nil {
		bb.SetPosition(n.pos)
	}
}

// resolveCollisions pushes the body out of every other scene member whose
// collider it overlaps. Corrections accumulate in member order.
func (b *Body) resolveCollisions(n, shape *Node) {
	b.Colliding = false
	own := shape.boundingBox
	if own == nil || n.scene == nil {
		return
	}
	s := n.scene

	for pass := 0; pass < b.ResolvePasses; pass++ {
		corrected := false
		for _, other := range s.members() {
			if other == n || other == shape || other.scene != s {
				continue
			}
			obb := colliderOf(other)
			if obb == nil || obb == own {
				continue
			}
			c := own.CheckCollision(obb)
			if !c.Colliding {
				continue
			}
			corrected = true
			n.Translate(c.MTV)
			b.mirror(n, shape)
		}
		if !corrected {
			break
		}
		b.Colliding = true
	}
}

// colliderOf returns the bounding box that represents n in collision queries:
// a body's shape bounding box, or the node's own.
func colliderOf(n *Node) *Node {
	if n.Type.IsBody() {
		shape := n.Body.Shape()
		if shape == nil {
			return nil
		}
		return shape.boundingBox
	}
	return n.boundingBox
}
