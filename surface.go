package canopy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a drawing target offering the few primitives shapes need.
// Coordinates are screen coordinates; shapes convert through the scene camera
// before calling it.
type Surface interface {
	Bounds() Rect
	Fill(c Color)
	FillCircle(center ScreenPoint, radius float64, c Color)
	StrokeCircle(center ScreenPoint, radius, width float64, c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
}

// Presenter is implemented by surfaces that must be flushed after a frame has
// been drawn, such as a terminal screen.
type Presenter interface {
	Present()
}

// EbitenSurface draws onto an *ebiten.Image with the vector package.
type EbitenSurface struct {
	img       *ebiten.Image
	AntiAlias bool
}

// NewEbitenSurface wraps img. Anti-aliasing is enabled.
func NewEbitenSurface(img *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{img: img, AntiAlias: true}
}

// Image returns the wrapped image.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

func (s *EbitenSurface) Bounds() Rect {
	b := s.img.Bounds()
	return Rect{float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())}
}

func (s *EbitenSurface) Fill(c Color) {
	s.img.Fill(c.toRGBA())
}

func (s *EbitenSurface) FillCircle(center ScreenPoint, radius float64, c Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c.toRGBA(), s.AntiAlias)
}

func (s *EbitenSurface) StrokeCircle(center ScreenPoint, radius, width float64, c Color) {
	vector.StrokeCircle(s.img, float32(center.X), float32(center.Y), float32(radius), float32(width), c.toRGBA(), s.AntiAlias)
}

func (s *EbitenSurface) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), s.AntiAlias)
}

func (s *EbitenSurface) StrokeRect(r Rect, width float64, c Color) {
	vector.StrokeRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c.toRGBA(), s.AntiAlias)
}
