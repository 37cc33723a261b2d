// Package canopy is a small retained-mode 2D scene engine for [Ebitengine]
// and the terminal.
//
// Canopy provides the scene graph, circle and square shapes, bounding boxes
// with minimum-translation collision, kinematic and static bodies, a camera,
// input handling and a throttled frame loop.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := canopy.NewScene()
//	// ... add nodes ...
//	canopy.Run(scene, canopy.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// To draw to a terminal instead, use termview.Run from the termview
// subpackage. For full control, drive a [Loop] yourself with any [Surface]
// and [FrameSource].
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root]; the
// root's children are the scene members, updated and drawn in list order.
//
// Positions are world-space. Moving a node translates its whole subtree by
// the same delta, so children stay glued to their parent:
//
//	group := canopy.NewContainer("group")
//	group.AddChild(canopy.NewCircle("c", canopy.ShapeConfig{Radius: 8}))
//	scene.Add(group)
//	group.SetPosition(canopy.Vec2{X: 100, Y: 50}) // the circle moves too
//
// # Collision
//
// Shapes created with WithBoundingBox carry a bounding box child. Two such
// nodes are tested with [Node.CheckCollision], which returns the minimum
// translation vector that pushes the first node out of the second.
//
// # Bodies
//
// A kinematic body wraps a shape, integrates its velocity with friction and
// a speed cap, and resolves its own collisions against every other shape in
// the scene. Static bodies never move:
//
//	player := canopy.NewKinematicBody("player",
//		canopy.NewCircle("ball", canopy.ShapeConfig{Radius: 10, WithBoundingBox: true}),
//		canopy.BodyConfig{})
//	scene.Add(player)
//
//	// in the frame callback
//	player.Body.ApplyForce(canopy.Vec2{X: 1}, dt)
//
// Scenes can also be built from a YAML file with [LoadConfig] and
// [NewSceneFromConfig]. Tweens (via [gween]) animate positions, radii and
// fill colors.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package canopy
