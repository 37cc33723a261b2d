package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key names a keyboard key, e.g. "Enter", "Space", "ArrowUp" or "A".
// Backends translate their native key codes to these names.
type Key string

// Input is the read side of an input source. The scene core only reads the
// pointer position for hit testing; games read keys and buttons in their
// frame callback.
type Input interface {
	IsPressed(k Key) bool
	JustPressed(k Key) bool
	IsButtonPressed(b MouseButton) bool
	ButtonJustPressed(b MouseButton) bool
	PointerPosition() ScreenPoint
	// PostUpdate clears the just-pressed state at the end of a frame.
	PostUpdate()
}

// Poller is implemented by inputs that sample their source once per frame.
// Scene.Update polls its input before updating nodes.
type Poller interface {
	Poll()
}

// InputState is an event-fed Input. Backends call KeyDown/KeyUp,
// ButtonDown/ButtonUp and MoveTo as events arrive; just-pressed flags last
// until PostUpdate.
type InputState struct {
	keys        map[Key]bool
	keysJust    map[Key]bool
	buttons     map[MouseButton]bool
	buttonsJust map[MouseButton]bool
	pointer     ScreenPoint

	injectQueue []syntheticEvent
}

// NewInputState returns an empty input state.
func NewInputState() *InputState {
	return &InputState{
		keys:        make(map[Key]bool),
		keysJust:    make(map[Key]bool),
		buttons:     make(map[MouseButton]bool),
		buttonsJust: make(map[MouseButton]bool),
	}
}

// KeyDown records a key press. Auto-repeat presses of a held key do not set
// the just-pressed flag again.
func (s *InputState) KeyDown(k Key) {
	if !s.keys[k] {
		s.keys[k] = true
		s.keysJust[k] = true
	}
}

// KeyUp records a key release.
func (s *InputState) KeyUp(k Key) {
	s.keys[k] = false
	delete(s.keysJust, k)
}

// ButtonDown records a pointer button press.
func (s *InputState) ButtonDown(b MouseButton) {
	if !s.buttons[b] {
		s.buttons[b] = true
		s.buttonsJust[b] = true
	}
}

// ButtonUp records a pointer button release.
func (s *InputState) ButtonUp(b MouseButton) {
	s.buttons[b] = false
	delete(s.buttonsJust, b)
}

// MoveTo records the pointer position.
func (s *InputState) MoveTo(p ScreenPoint) {
	s.pointer = p
}

func (s *InputState) IsPressed(k Key) bool   { return s.keys[k] }
func (s *InputState) JustPressed(k Key) bool { return s.keysJust[k] }

func (s *InputState) IsButtonPressed(b MouseButton) bool   { return s.buttons[b] }
func (s *InputState) ButtonJustPressed(b MouseButton) bool { return s.buttonsJust[b] }

func (s *InputState) PointerPosition() ScreenPoint { return s.pointer }

// PostUpdate clears the just-pressed flags.
func (s *InputState) PostUpdate() {
	clear(s.keysJust)
	clear(s.buttonsJust)
}

// --- Ebitengine ---

var ebitenButtons = [...]struct {
	native ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// EbitenInput polls Ebitengine's keyboard and mouse state once per frame.
// Injected events take priority: a frame that consumes one skips real input.
type EbitenInput struct {
	*InputState
	keyBuf []ebiten.Key
}

// NewEbitenInput returns an input source backed by Ebitengine.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{InputState: NewInputState()}
}

// Poll samples Ebitengine's input. Call it from ebiten.Game.Update.
func (e *EbitenInput) Poll() {
	if e.ConsumeInjected() {
		return
	}

	e.keyBuf = inpututil.AppendJustPressedKeys(e.keyBuf[:0])
	for _, k := range e.keyBuf {
		e.KeyDown(Key(k.String()))
	}
	e.keyBuf = inpututil.AppendJustReleasedKeys(e.keyBuf[:0])
	for _, k := range e.keyBuf {
		e.KeyUp(Key(k.String()))
	}

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.native) {
			e.ButtonDown(b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.native) {
			e.ButtonUp(b.button)
		}
	}

	mx, my := ebiten.CursorPosition()
	e.MoveTo(ScreenPoint{float64(mx), float64(my)})
}
