package desktop

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// imageSurface draws world pixels 1:1 onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

// ClearRect makes the pixels covered by b transparent.
func (s imageSurface) ClearRect(b core.Box) {
	r := image.Rect(int(b.X), int(b.Y), int(b.Right()), int(b.Bottom()))
	if sub, ok := s.img.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

// FillRect paints b.
func (s imageSurface) FillRect(b core.Box, c core.Color) {
	vector.DrawFilledRect(s.img, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c.RGBA(), false)
}

// StrokeRect outlines b with the stroke centered on its edges.
func (s imageSurface) StrokeRect(b core.Box, c core.Color, lineWidth float64) {
	vector.StrokeRect(s.img, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), float32(lineWidth), c.RGBA(), false)
}
