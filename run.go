package canopy

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ErrNoSurface is returned when a drawing surface cannot be set up.
var ErrNoSurface = errors.New("canopy: no drawing surface")

// RunConfig configures Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// TargetFPS sets Ebitengine's tick rate. Zero means DefaultTargetFPS.
	TargetFPS float64
	// ShowFPS draws the measured FPS and TPS in the top-left corner.
	ShowFPS bool
	// OnFrame runs once per frame after the scene update.
	OnFrame FrameFunc
}

// Run opens a window and drives scene with Ebitengine until the window is
// closed or the loop is stopped. If the scene input is not already an
// EbitenInput, it is replaced with one.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: invalid window size %dx%d", ErrNoSurface, cfg.Width, cfg.Height)
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = DefaultTargetFPS
	}
	if _, ok := scene.input.(*EbitenInput); !ok {
		scene.SetInput(NewEbitenInput())
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(int(cfg.TargetFPS))

	// Ebitengine already paces Update at the target rate, so the loop runs
	// every tick it is given.
	g := NewGame(scene, cfg)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Game adapts a Scene and its Loop to ebiten.Game. Logic runs in Update;
// drawing happens in Draw, which Ebitengine calls separately.
type Game struct {
	scene *Scene
	loop  *Loop
	cfg   RunConfig
	start time.Time
}

// NewGame creates an ebiten.Game for scene. Use it with ebiten.RunGame when
// you need control over window setup; Run covers the common case.
func NewGame(scene *Scene, cfg RunConfig) *Game {
	return &Game{
		scene: scene,
		loop:  NewLoop(scene, cfg.OnFrame, LoopConfig{TargetFPS: -1}),
		cfg:   cfg,
		start: time.Now(),
	}
}

// Loop returns the frame driver, e.g. to Stop it.
func (g *Game) Loop() *Loop {
	return g.loop
}

func (g *Game) Update() error {
	if g.loop.Stopped() {
		return ebiten.Termination
	}
	g.loop.Step(time.Since(g.start), nil)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(NewEbitenSurface(screen))
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Width > 0 && g.cfg.Height > 0 {
		return g.cfg.Width, g.cfg.Height
	}
	return outsideWidth, outsideHeight
}
