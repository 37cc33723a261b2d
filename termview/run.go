package termview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/canopy"
)

// Config configures Run.
type Config struct {
	// TargetFPS is passed to the frame loop. Zero means canopy.DefaultTargetFPS.
	TargetFPS float64
	// CellWidth and CellHeight set the cell footprint in screen units. Zero
	// means the defaults.
	CellWidth, CellHeight float64
	// EnableMouse turns on terminal mouse reporting.
	EnableMouse bool
	// Screen overrides the terminal screen, e.g. with a simulation screen in
	// tests. Run initializes and finalizes it.
	Screen tcell.Screen
}

// Run takes over the terminal and drives scene until ctx is cancelled or the
// user presses Escape or Ctrl-C. The scene's input is replaced with one fed by
// terminal events. fn may be nil.
func Run(ctx context.Context, scene *canopy.Scene, fn canopy.FrameFunc, cfg Config) error {
	screen := cfg.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("%w: %v", canopy.ErrNoSurface, err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", canopy.ErrNoSurface, err)
	}
	defer screen.Fini()
	if cfg.EnableMouse {
		screen.EnableMouse()
	}
	screen.HideCursor()

	v, loop := Attach(screen, scene, fn, cfg)
	v.fitCamera(scene)
	v.input.OnResize = func() { v.fitCamera(scene) }

	interval := time.Second / canopy.DefaultTargetFPS
	if cfg.TargetFPS > 0 {
		interval = time.Duration(float64(time.Second) / cfg.TargetFPS)
	}
	// The loop throttles on its own; ticking twice as fast keeps the
	// throttle from skipping whole intervals.
	src := canopy.NewTickerSource(interval / 2)
	defer src.Close()

	err := loop.Run(ctx, src, v.surface)
	if errors.Is(err, canopy.ErrStopped) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// View bundles the terminal surface and input bound to a scene.
type View struct {
	surface *Surface
	input   *Input
}

// Attach binds a terminal screen to scene without running it: it replaces the
// scene input, wires Escape and Ctrl-C to stop the returned loop, and returns
// both so callers can drive frames with Loop.Step. screen must be initialized.
func Attach(screen tcell.Screen, scene *canopy.Scene, fn canopy.FrameFunc, cfg Config) (*View, *canopy.Loop) {
	surface := NewSurface(screen)
	if cfg.CellWidth > 0 {
		surface.CellWidth = cfg.CellWidth
	}
	if cfg.CellHeight > 0 {
		surface.CellHeight = cfg.CellHeight
	}
	in := NewInput(surface)
	scene.SetInput(in)

	loop := canopy.NewLoop(scene, fn, canopy.LoopConfig{TargetFPS: cfg.TargetFPS})
	in.OnQuit = loop.Stop
	return &View{surface: surface, input: in}, loop
}

// Surface returns the view's drawing surface.
func (v *View) Surface() *Surface { return v.surface }

// Input returns the view's input source.
func (v *View) Input() *Input { return v.input }

// fitCamera sizes the camera viewport to the terminal when the scene uses a
// viewport at all.
func (v *View) fitCamera(scene *canopy.Scene) {
	cam := scene.Camera()
	if cam.Viewport.Width == 0 && cam.Viewport.Height == 0 {
		return
	}
	cam.SetViewport(v.surface.Bounds())
}
