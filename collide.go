package canopy

import "math"

// Collision is the result of testing one shape against another.
type Collision struct {
	Colliding bool
	// MTV is the minimum translation vector: adding it to the first shape's
	// position separates it from the second. Zero when not colliding.
	MTV Vec2
}

type collideFunc func(a Shape, aPos Vec2, b Shape, bPos Vec2) Collision

// collideTable enumerates every shape pair once. Adding a ShapeKind grows the
// table dimensions and TestCollideTableComplete catches unfilled cells.
var collideTable = [numShapeKinds][numShapeKinds]collideFunc{
	ShapeCircle: {
		ShapeCircle: collideCircleCircle,
		ShapeSquare: collideCircleSquare,
	},
	ShapeSquare: {
		ShapeCircle: collideSquareCircle,
		ShapeSquare: collideSquareSquare,
	},
}

// Collide tests shape a centered at aPos against shape b centered at bPos.
// Both positions must be in world space. b is treated as immovable.
func Collide(a Shape, aPos Vec2, b Shape, bPos Vec2) Collision {
	if a.Kind >= numShapeKinds || b.Kind >= numShapeKinds {
		return Collision{}
	}
	return collideTable[a.Kind][b.Kind](a, aPos, b, bPos)
}

// pushOut rescales d, whose length is dist, to length overlap. A zero d
// (coincident points) pushes along +x.
func pushOut(d Vec2, dist, overlap float64) Vec2 {
	if dist == 0 {
		return Vec2{overlap, 0}
	}
	return Vec2{d.X / dist * overlap, d.Y / dist * overlap}
}

func collideCircleCircle(a Shape, aPos Vec2, b Shape, bPos Vec2) Collision {
	d := aPos.Sub(bPos)
	dist := d.Magnitude()
	sum := a.Radius + b.Radius
	if dist >= sum {
		return Collision{}
	}
	return Collision{Colliding: true, MTV: pushOut(d, dist, sum-dist)}
}

func collideCircleSquare(a Shape, aPos Vec2, b Shape, bPos Vec2) Collision {
	h := b.HalfExtents()
	closest := Vec2{
		X: math.Max(bPos.X-h.X, math.Min(aPos.X, bPos.X+h.X)),
		Y: math.Max(bPos.Y-h.Y, math.Min(aPos.Y, bPos.Y+h.Y)),
	}
	d := aPos.Sub(closest)
	dist := d.Magnitude()
	if dist >= a.Radius {
		return Collision{}
	}
	return Collision{Colliding: true, MTV: pushOut(d, dist, a.Radius-dist)}
}

func collideSquareCircle(a Shape, aPos Vec2, b Shape, bPos Vec2) Collision {
	c := collideCircleSquare(b, bPos, a, aPos)
	if !c.Colliding {
		return Collision{}
	}
	return Collision{Colliding: true, MTV: c.MTV.Scale(-1)}
}

func collideSquareSquare(a Shape, aPos Vec2, b Shape, bPos Vec2) Collision {
	dx := math.Abs(aPos.X - bPos.X)
	dy := math.Abs(aPos.Y - bPos.Y)
	halfW := (a.Size.X + b.Size.X) / 2
	halfH := (a.Size.Y + b.Size.Y) / 2
	if dx >= halfW || dy >= halfH {
		return Collision{}
	}

	overlapX := halfW - dx
	overlapY := halfH - dy
	// Ties resolve along x.
	if overlapX <= overlapY {
		if aPos.X < bPos.X {
			overlapX = -overlapX
		}
		return Collision{Colliding: true, MTV: Vec2{overlapX, 0}}
	}
	if aPos.Y < bPos.Y {
		overlapY = -overlapY
	}
	return Collision{Colliding: true, MTV: Vec2{0, overlapY}}
}
