package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"chip8-host/display"
	"chip8-host/keypad"
)

var (
	BLACK = color.RGBA{A: 0xFF}
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// The LCD is 1-bit: lit CHIP-8 pixels are black on white.
func rgba(c display.Color) color.RGBA {
	if c == display.Foreground {
		return BLACK
	}
	return WHITE
}

// ebitenSurface keeps its own canvas so cells drawn on earlier frames stay
// visible when the engine has nothing new.
type ebitenSurface struct {
	canvas *ebiten.Image
}

func newEbitenSurface(width, height int) *ebitenSurface {
	canvas := ebiten.NewImage(width, height)
	canvas.Fill(rgba(display.Background))
	return &ebitenSurface{canvas: canvas}
}

func (s *ebitenSurface) FillRect(r image.Rectangle, c display.Color) error {
	if s.canvas == nil {
		return errors.New("canvas unavailable")
	}
	if !r.In(s.canvas.Bounds()) {
		return fmt.Errorf("rect %v outside canvas %v", r, s.canvas.Bounds())
	}
	vector.DrawFilledRect(s.canvas,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		rgba(c), false)
	return nil
}

func drawFPS(screen *ebiten.Image, face font.Face) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, fmt.Sprintf("%.0f", ebiten.ActualFPS()), face, 0, ascent, BLACK)
}

var handheldKeys = map[ebiten.Key]keypad.Button{
	ebiten.KeyArrowLeft:  keypad.ButtonLeft,
	ebiten.KeyArrowRight: keypad.ButtonRight,
	ebiten.KeyArrowUp:    keypad.ButtonUp,
	ebiten.KeyArrowDown:  keypad.ButtonDown,
	ebiten.KeyZ:          keypad.ButtonB,
	ebiten.KeyX:          keypad.ButtonA,
}

type keyboardInput struct{}

func (keyboardInput) Buttons() (keypad.Button, keypad.Button, error) {
	pressed, released := sampleButtons(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased)
	return pressed, released, nil
}

func sampleButtons(justPressed, justReleased func(ebiten.Key) bool) (pressed, released keypad.Button) {
	for key, button := range handheldKeys {
		if justPressed(key) {
			pressed |= button
		}
		if justReleased(key) {
			released |= button
		}
	}
	return pressed, released
}

type systemClock struct {
	now func() time.Time
}

func (c systemClock) Millis() (uint64, error) {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	ms := now().UnixMilli()
	if ms < 0 {
		return 0, fmt.Errorf("wall clock before epoch: %d ms", ms)
	}
	return uint64(ms), nil
}
