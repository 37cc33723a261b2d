package canopy

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned by LoadScript for scripts that parse but
// cannot be played.
var ErrInvalidScript = errors.New("canopy: invalid input script")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Key    Key     `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script sequences injected input across frames, for driving a scene from a
// file in demos and automated checks. Play it through a ScriptedInput.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML (or JSON) input script. Supported actions are
// click, drag, key and wait.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "drag", "wait":
		case "key":
			if st.Key == "" {
				return nil, fmt.Errorf("%w: step %d: key action without a key", ErrInvalidScript, i)
			}
		default:
			return nil, fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScript, i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been played and its input consumed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame, queueing input on in.
func (r *Script) step(in *InputState) {
	if r.done {
		return
	}
	// Let queued input drain before the next action.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		in.InjectClick(ScreenPoint{X: st.X, Y: st.Y})
	case "drag":
		in.InjectDrag(ScreenPoint{X: st.FromX, Y: st.FromY}, ScreenPoint{X: st.ToX, Y: st.ToY}, st.Frames)
	case "key":
		in.InjectKeyTap(st.Key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}

// ScriptedInput is an InputState fed by a Script. Install it with
// WithInput or Scene.SetInput; each poll plays the script one frame forward
// and applies one queued event.
type ScriptedInput struct {
	*InputState
	script *Script
}

// NewScriptedInput returns an input that plays script.
func NewScriptedInput(script *Script) *ScriptedInput {
	return &ScriptedInput{InputState: NewInputState(), script: script}
}

// Script returns the script being played.
func (s *ScriptedInput) Script() *Script {
	return s.script
}

// Poll steps the script, then consumes one injected event.
func (s *ScriptedInput) Poll() {
	s.script.step(s.InputState)
	s.ConsumeInjected()
}
