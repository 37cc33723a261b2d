// Package termview runs a canopy scene in a terminal. Shapes are rasterized
// into character cells with tcell; each cell covers CellWidth x CellHeight
// screen units, so a scene written for a pixel window keeps its proportions.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/canopy"
)

// Default cell footprint in screen units. Terminal cells are about twice as
// tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Surface rasterizes canopy drawing calls onto a tcell.Screen. A cell is
// painted when its center falls inside the primitive.
type Surface struct {
	screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
}

// NewSurface wraps screen with the default cell size.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// Screen returns the wrapped screen.
func (s *Surface) Screen() tcell.Screen {
	return s.screen
}

func (s *Surface) Bounds() canopy.Rect {
	w, h := s.screen.Size()
	return canopy.Rect{Width: float64(w) * s.CellWidth, Height: float64(h) * s.CellHeight}
}

func (s *Surface) Fill(c canopy.Color) {
	w, h := s.screen.Size()
	st := cellStyle(c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (s *Surface) FillCircle(center canopy.ScreenPoint, radius float64, c canopy.Color) {
	if c.A <= 0 {
		return
	}
	r2 := radius * radius
	s.paint(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius, c, func(px, py float64) bool {
		dx, dy := px-center.X, py-center.Y
		return dx*dx+dy*dy <= r2
	})
}

func (s *Surface) StrokeCircle(center canopy.ScreenPoint, radius, width float64, c canopy.Color) {
	if c.A <= 0 {
		return
	}
	// A ring thinner than a cell would leave gaps.
	half := math.Max(width, s.CellWidth) / 2
	outer := radius + half
	s.paint(center.X-outer, center.Y-outer, center.X+outer, center.Y+outer, c, func(px, py float64) bool {
		d := math.Hypot(px-center.X, py-center.Y)
		return math.Abs(d-radius) <= half
	})
}

func (s *Surface) FillRect(r canopy.Rect, c canopy.Color) {
	if c.A <= 0 {
		return
	}
	s.paint(r.X, r.Y, r.X+r.Width, r.Y+r.Height, c, func(px, py float64) bool {
		return r.Contains(px, py)
	})
}

func (s *Surface) StrokeRect(r canopy.Rect, width float64, c canopy.Color) {
	if c.A <= 0 {
		return
	}
	hx := math.Max(width, s.CellWidth) / 2
	hy := math.Max(width, s.CellHeight) / 2
	outer := canopy.Rect{X: r.X - hx, Y: r.Y - hy, Width: r.Width + 2*hx, Height: r.Height + 2*hy}
	inner := canopy.Rect{X: r.X + hx, Y: r.Y + hy, Width: r.Width - 2*hx, Height: r.Height - 2*hy}
	s.paint(outer.X, outer.Y, outer.X+outer.Width, outer.Y+outer.Height, c, func(px, py float64) bool {
		if !outer.Contains(px, py) {
			return false
		}
		return inner.Width <= 0 || inner.Height <= 0 || !inner.Contains(px, py)
	})
}

// Present flushes the frame to the terminal.
func (s *Surface) Present() {
	s.screen.Show()
}

// paint sets the background of every on-screen cell in the screen-space box
// (x0, y0)-(x1, y1) whose center satisfies inside.
func (s *Surface) paint(x0, y0, x1, y1 float64, c canopy.Color, inside func(px, py float64) bool) {
	w, h := s.screen.Size()
	cx0 := max(int(math.Floor(x0/s.CellWidth)), 0)
	cy0 := max(int(math.Floor(y0/s.CellHeight)), 0)
	cx1 := min(int(math.Ceil(x1/s.CellWidth)), w-1)
	cy1 := min(int(math.Ceil(y1/s.CellHeight)), h-1)

	st := cellStyle(c)
	for cy := cy0; cy <= cy1; cy++ {
		py := (float64(cy) + 0.5) * s.CellHeight
		for cx := cx0; cx <= cx1; cx++ {
			px := (float64(cx) + 0.5) * s.CellWidth
			if inside(px, py) {
				s.screen.SetContent(cx, cy, ' ', nil, st)
			}
		}
	}
}

// CellCenter returns the screen-space center of the cell at column x, row y.
func (s *Surface) CellCenter(x, y int) canopy.ScreenPoint {
	return canopy.ScreenPoint{
		X: (float64(x) + 0.5) * s.CellWidth,
		Y: (float64(y) + 0.5) * s.CellHeight,
	}
}

// TermColor converts a canopy color to a 24-bit terminal color. Alpha is
// premultiplied against black.
func TermColor(c canopy.Color) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func cellStyle(c canopy.Color) tcell.Style {
	return tcell.StyleDefault.Background(TermColor(c))
}
