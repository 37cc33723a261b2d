package canopy

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticKey
)

// syntheticEvent is a single injected input event. Pointer coordinates are
// screen coordinates, the same space real pointer input arrives in.
type syntheticEvent struct {
	kind    syntheticKind
	point   ScreenPoint
	button  MouseButton
	key     Key
	pressed bool
}

// InjectPress queues a left-button press at the given screen position.
// Queued events are consumed one per Poll.
func (s *InputState) InjectPress(p ScreenPoint) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, point: p, button: MouseButtonLeft, pressed: true,
	})
}

// InjectMove queues a pointer move with the left button held.
func (s *InputState) InjectMove(p ScreenPoint) {
	s.InjectPress(p)
}

// InjectRelease queues a left-button release at the given screen position.
func (s *InputState) InjectRelease(p ScreenPoint) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPointer, point: p, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release. Consumes two polls.
func (s *InputState) InjectClick(p ScreenPoint) {
	s.InjectPress(p)
	s.InjectRelease(p)
}

// InjectDrag queues a press at from, linearly interpolated moves and a
// release at to, spread over frames polls (minimum 2).
func (s *InputState) InjectDrag(from, to ScreenPoint, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(ScreenPoint{
			X: from.X + (to.X-from.X)*t,
			Y: from.Y + (to.Y-from.Y)*t,
		})
	}
	s.InjectRelease(to)
}

// InjectKeyTap queues a press of k followed by its release.
func (s *InputState) InjectKeyTap(k Key) {
	s.injectQueue = append(s.injectQueue,
		syntheticEvent{kind: syntheticKey, key: k, pressed: true},
		syntheticEvent{kind: syntheticKey, key: k},
	)
}

// Pending returns the number of queued synthetic events.
func (s *InputState) Pending() int {
	return len(s.injectQueue)
}

// Poll applies one queued synthetic event, if any.
func (s *InputState) Poll() {
	s.ConsumeInjected()
}

// ConsumeInjected applies one queued synthetic event. It reports whether an
// event was consumed, in which case real input should be skipped for the frame.
func (s *InputState) ConsumeInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		s.MoveTo(evt.point)
		if evt.pressed {
			s.ButtonDown(evt.button)
		} else {
			s.ButtonUp(evt.button)
		}
	case syntheticKey:
		if evt.pressed {
			s.KeyDown(evt.key)
		} else {
			s.KeyUp(evt.key)
		}
	}
	return true
}
