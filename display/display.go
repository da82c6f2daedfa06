package display

import (
	"fmt"
	"image"
)

const (
	Width  = 64
	Height = 32
	Cells  = Width * Height
)

// Frame is a row-major snapshot of the CHIP-8 display; cell i sits at
// column i%Width, row i/Width.
type Frame = [Cells]bool

type Color uint8

const (
	Background Color = iota
	Foreground
)

func (c Color) String() string {
	if c == Foreground {
		return "Foreground"
	}
	return "Background"
}

func ColorOf(on bool) Color {
	if on {
		return Foreground
	}
	return Background
}

type Geometry struct {
	Scale   int
	OffsetX int
	OffsetY int
}

var DefaultGeometry = Geometry{Scale: 6, OffsetX: 8, OffsetY: 24}

func (g Geometry) Cell(i int) image.Rectangle {
	x := g.OffsetX + (i%Width)*g.Scale
	y := g.OffsetY + (i/Width)*g.Scale
	return image.Rect(x, y, x+g.Scale, y+g.Scale)
}

func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(g.OffsetX, g.OffsetY, g.OffsetX+Width*g.Scale, g.OffsetY+Height*g.Scale)
}

// Surface is the host's pixel target. Presentation and buffering are the
// host's business.
type Surface interface {
	FillRect(r image.Rectangle, c Color) error
}

type Renderer struct {
	geometry Geometry
	surface  Surface
}

func NewRenderer(g Geometry, s Surface) *Renderer {
	return &Renderer{geometry: g, surface: s}
}

// Render redraws every cell of frame, unchanged cells included.
func (r *Renderer) Render(frame *Frame) error {
	for i, on := range frame {
		if err := r.surface.FillRect(r.geometry.Cell(i), ColorOf(on)); err != nil {
			return fmt.Errorf("display: fill cell %d: %w", i, err)
		}
	}
	return nil
}
