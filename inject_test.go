package canopy

import "testing"

func TestInjectClick(t *testing.T) {
	in := NewInputState()
	in.InjectClick(ScreenPoint{50, 50})
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", in.Pending())
	}

	// Frame 1: press
	in.Poll()
	if in.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", in.Pending())
	}
	if !in.ButtonJustPressed(MouseButtonLeft) {
		t.Error("press frame should report the button as just pressed")
	}
	if in.PointerPosition() != (ScreenPoint{50, 50}) {
		t.Errorf("pointer = %v, want (50, 50)", in.PointerPosition())
	}
	in.PostUpdate()

	// Frame 2: release
	in.Poll()
	if in.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", in.Pending())
	}
	if in.IsButtonPressed(MouseButtonLeft) {
		t.Error("button should be released on frame 2")
	}
}

func TestInjectDrag(t *testing.T) {
	in := NewInputState()
	in.InjectDrag(ScreenPoint{0, 0}, ScreenPoint{100, 50}, 5)
	if in.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", in.Pending())
	}

	var path []ScreenPoint
	for in.Pending() > 0 {
		in.Poll()
		path = append(path, in.PointerPosition())
		in.PostUpdate()
	}

	want := []ScreenPoint{{0, 0}, {25, 12.5}, {50, 25}, {75, 37.5}, {100, 50}}
	for i, w := range want {
		if !approxEqual(path[i].X, w.X, epsilon) || !approxEqual(path[i].Y, w.Y, epsilon) {
			t.Errorf("frame %d pointer = %v, want %v", i, path[i], w)
		}
	}
	if in.IsButtonPressed(MouseButtonLeft) {
		t.Error("drag should end released")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	in := NewInputState()
	in.InjectDrag(ScreenPoint{0, 0}, ScreenPoint{10, 10}, 0)
	if in.Pending() != 2 {
		t.Errorf("expected press and release only, got %d", in.Pending())
	}
}

func TestInjectKeyTap(t *testing.T) {
	in := NewInputState()
	in.InjectKeyTap("W")

	in.Poll()
	if !in.JustPressed("W") || !in.IsPressed("W") {
		t.Error("first poll should press the key")
	}
	in.PostUpdate()

	in.Poll()
	if in.IsPressed("W") {
		t.Error("second poll should release the key")
	}
}

func TestConsumeInjectedEmpty(t *testing.T) {
	in := NewInputState()
	if in.ConsumeInjected() {
		t.Error("empty queue should consume nothing")
	}
}
