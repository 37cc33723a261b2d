package canopy

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by errors returned from Config.Validate.
var ErrInvalidConfig = errors.New("canopy: invalid config")

// Config is the YAML description of a scene's runtime settings. Zero fields
// take the library defaults.
//
//	loop:
//	  target_fps: 60
//	scene:
//	  clear_color: [0, 0, 0, 1]
//	  debug: false
//	body:
//	  speed: 1500
//	  friction: 0.92
//	  max_speed: 800
//	  resolve_passes: 1
//	window:
//	  title: canopy
//	  width: 800
//	  height: 600
//	  show_fps: true
type Config struct {
	Loop   LoopSection   `yaml:"loop"`
	Scene  SceneSection  `yaml:"scene"`
	Body   BodySection   `yaml:"body"`
	Window WindowSection `yaml:"window"`
}

type LoopSection struct {
	TargetFPS float64 `yaml:"target_fps"`
}

type SceneSection struct {
	// ClearColor is [r, g, b] or [r, g, b, a] with components in [0, 1].
	ClearColor []float64 `yaml:"clear_color,omitempty"`
	Debug      bool      `yaml:"debug"`
}

type BodySection struct {
	Speed         float64 `yaml:"speed"`
	Friction      float64 `yaml:"friction"`
	MaxSpeed      float64 `yaml:"max_speed"`
	ResolvePasses int     `yaml:"resolve_passes"`
}

type WindowSection struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Loop:  LoopSection{TargetFPS: DefaultTargetFPS},
		Scene: SceneSection{ClearColor: []float64{0, 0, 0, 1}},
		Body: BodySection{
			Speed:         DefaultSpeed,
			Friction:      DefaultFriction,
			MaxSpeed:      DefaultMaxSpeed,
			ResolvePasses: DefaultResolvePasses,
		},
		Window: WindowSection{Title: "canopy", Width: 800, Height: 600},
	}
}

// LoadConfig decodes YAML from r on top of DefaultConfig and validates the
// result. An empty document yields the defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	if c.Loop.TargetFPS < 0 {
		return fmt.Errorf("%w: loop.target_fps must not be negative, got %g", ErrInvalidConfig, c.Loop.TargetFPS)
	}
	if f := c.Body.Friction; f < 0 || f > 1 {
		return fmt.Errorf("%w: body.friction must be in [0, 1], got %g", ErrInvalidConfig, f)
	}
	if c.Body.Speed < 0 || c.Body.MaxSpeed < 0 {
		return fmt.Errorf("%w: body.speed and body.max_speed must not be negative", ErrInvalidConfig)
	}
	if c.Body.ResolvePasses < 0 {
		return fmt.Errorf("%w: body.resolve_passes must not be negative, got %d", ErrInvalidConfig, c.Body.ResolvePasses)
	}
	if n := len(c.Scene.ClearColor); n != 0 && n != 3 && n != 4 {
		return fmt.Errorf("%w: scene.clear_color needs 3 or 4 components, got %d", ErrInvalidConfig, n)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("%w: window size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ClearColor returns the configured background color, black when unset.
func (c *Config) ClearColor() Color {
	cc := c.Scene.ClearColor
	switch len(cc) {
	case 3:
		return Color{cc[0], cc[1], cc[2], 1}
	case 4:
		return Color{cc[0], cc[1], cc[2], cc[3]}
	}
	return ColorBlack
}

// BodyConfig returns the kinematic body settings.
func (c *Config) BodyConfig() BodyConfig {
	return BodyConfig{
		Speed:         c.Body.Speed,
		Friction:      c.Body.Friction,
		MaxSpeed:      c.Body.MaxSpeed,
		ResolvePasses: c.Body.ResolvePasses,
	}
}

// LoopConfig returns the frame driver settings.
func (c *Config) LoopConfig() LoopConfig {
	return LoopConfig{TargetFPS: c.Loop.TargetFPS}
}

// RunConfig returns the window settings for Run. fn becomes the frame
// callback.
func (c *Config) RunConfig(fn FrameFunc) RunConfig {
	return RunConfig{
		Title:     c.Window.Title,
		Width:     c.Window.Width,
		Height:    c.Window.Height,
		TargetFPS: c.Loop.TargetFPS,
		ShowFPS:   c.Window.ShowFPS,
		OnFrame:   fn,
	}
}

// SceneOptions returns the options NewScene needs to apply this config.
func (c *Config) SceneOptions() []SceneOption {
	return []SceneOption{WithClearColor(c.ClearColor())}
}

// NewSceneFromConfig creates a scene with the config applied. Extra options
// run after the config's own.
func NewSceneFromConfig(c *Config, opts ...SceneOption) *Scene {
	s := NewScene(append(c.SceneOptions(), opts...)...)
	s.SetDebugMode(c.Scene.Debug)
	return s
}
