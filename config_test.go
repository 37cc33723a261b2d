package canopy

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadConfigEmptyIsDefault(t *testing.T) {
	c, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	d := DefaultConfig()
	if c.Loop != d.Loop || c.Body != d.Body || c.Window != d.Window {
		t.Errorf("empty config = %+v, want defaults %+v", c, d)
	}
	if c.ClearColor() != ColorBlack {
		t.Errorf("ClearColor = %v", c.ClearColor())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	const doc = `
loop:
  target_fps: 30
scene:
  clear_color: [0.2, 0.4, 0.6]
  debug: true
body:
  friction: 0.5
  resolve_passes: 3
window:
  title: bodies
  width: 320
  height: 240
  show_fps: true
`
	c, err := LoadConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if c.Loop.TargetFPS != 30 {
		t.Errorf("TargetFPS = %v", c.Loop.TargetFPS)
	}
	if c.ClearColor() != (Color{0.2, 0.4, 0.6, 1}) {
		t.Errorf("ClearColor = %v", c.ClearColor())
	}

	bc := c.BodyConfig()
	if bc.Friction != 0.5 || bc.ResolvePasses != 3 {
		t.Errorf("BodyConfig = %+v", bc)
	}
	if bc.Speed != DefaultSpeed || bc.MaxSpeed != DefaultMaxSpeed {
		t.Errorf("unset body fields should keep defaults: %+v", bc)
	}

	rc := c.RunConfig(nil)
	if rc.Title != "bodies" || rc.Width != 320 || rc.Height != 240 || !rc.ShowFPS || rc.TargetFPS != 30 {
		t.Errorf("RunConfig = %+v", rc)
	}
	if lc := c.LoopConfig(); lc.TargetFPS != 30 {
		t.Errorf("LoopConfig = %+v", lc)
	}

	s := NewSceneFromConfig(c)
	if !s.DebugMode() || s.ClearColor != c.ClearColor() {
		t.Error("scene should pick up debug mode and clear color")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"friction above one", "body:\n  friction: 1.5\n", ErrInvalidConfig},
		{"negative fps", "loop:\n  target_fps: -5\n", ErrInvalidConfig},
		{"short color", "scene:\n  clear_color: [1, 1]\n", ErrInvalidConfig},
		{"negative passes", "body:\n  resolve_passes: -1\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadConfigParseError(t *testing.T) {
	tests := []string{
		"loop: [not, a, map]\n",
		"unknown_section:\n  x: 1\n",
	}
	for _, doc := range tests {
		_, err := LoadConfig(strings.NewReader(doc))
		if err == nil || !strings.HasPrefix(err.Error(), "parse config:") {
			t.Errorf("LoadConfig(%q) err = %v, want parse error", doc, err)
		}
	}
}
