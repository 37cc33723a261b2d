package termview

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/canopy"
)

// namedKeys maps tcell keys to the names used by the Ebitengine backend, so
// frame callbacks work unchanged on either.
var namedKeys = map[tcell.Key]canopy.Key{
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyEscape:     "Escape",
}

// KeyName translates a key event to a canopy key name. Letters are upper
// case and the space bar is "Space". It reports false for keys with no name.
func KeyName(ev *tcell.EventKey) (canopy.Key, bool) {
	if ev.Key() == tcell.KeyRune {
		switch r := ev.Rune(); r {
		case ' ':
			return "Space", true
		default:
			return canopy.Key(strings.ToUpper(string(r))), true
		}
	}
	k, ok := namedKeys[ev.Key()]
	return k, ok
}

var termButtons = [...]struct {
	mask   tcell.ButtonMask
	button canopy.MouseButton
}{
	{tcell.ButtonPrimary, canopy.MouseButtonLeft},
	{tcell.ButtonSecondary, canopy.MouseButtonRight},
	{tcell.ButtonMiddle, canopy.MouseButtonMiddle},
}

// Input feeds terminal events into a canopy.InputState.
//
// Terminals report key presses but not releases, so a key counts as held for
// the frame its event arrives in and is released at PostUpdate. A held key
// that auto-repeats is pressed again on each repeat.
type Input struct {
	*canopy.InputState
	surface *Surface
	events  chan tcell.Event
	held    []canopy.Key

	// OnQuit is called when Escape or Ctrl-C is pressed.
	OnQuit func()
	// OnResize is called after the terminal is resized.
	OnResize func()
}

// NewInput creates an input source for the given surface. Events are read by
// a goroutine until the screen is finalized.
func NewInput(surface *Surface) *Input {
	in := &Input{
		InputState: canopy.NewInputState(),
		surface:    surface,
		events:     make(chan tcell.Event, 100),
	}
	go func() {
		for {
			ev := surface.screen.PollEvent()
			if ev == nil {
				close(in.events)
				return
			}
			in.events <- ev
		}
	}()
	return in
}

// Poll applies every event that has arrived since the last frame. Injected
// events take priority, as with the Ebitengine backend.
func (in *Input) Poll() {
	if in.ConsumeInjected() {
		return
	}
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return
			}
			in.Handle(ev)
		default:
			return
		}
	}
}

// Handle applies a single terminal event.
func (in *Input) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			if in.OnQuit != nil {
				in.OnQuit()
			}
		}
		if k, ok := KeyName(ev); ok {
			in.KeyDown(k)
			in.held = append(in.held, k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.MoveTo(in.surface.CellCenter(x, y))
		buttons := ev.Buttons()
		for _, b := range termButtons {
			if buttons&b.mask != 0 {
				in.ButtonDown(b.button)
			} else {
				in.ButtonUp(b.button)
			}
		}
	case *tcell.EventResize:
		in.surface.screen.Sync()
		if in.OnResize != nil {
			in.OnResize()
		}
	}
}

// PostUpdate clears the just-pressed flags and releases this frame's keys.
func (in *Input) PostUpdate() {
	in.InputState.PostUpdate()
	for _, k := range in.held {
		in.KeyUp(k)
	}
	in.held = in.held[:0]
}
