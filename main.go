package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"chip8-host/chip8"
	"chip8-host/rom"
	"chip8-host/session"
)

// Handheld LCD resolution.
const (
	screenWidth  = 400
	screenHeight = 240
)

type Game struct {
	session *session.Session
	surface *ebitenSurface
	fpsFace font.Face
}

func (g *Game) Update() error {
	return g.session.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.canvas, nil)
	if g.fpsFace != nil {
		drawFPS(screen, g.fpsFace)
	}
}

func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func newFPSFace() (font.Face, error) {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    10,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func newGame(cfg config) (*Game, error) {
	surface := newEbitenSurface(screenWidth, screenHeight)
	s, err := session.New(func() session.Engine { return chip8.NewMachine() }, session.Options{
		Program:             rom.Program,
		InstructionsPerStep: cfg.instructionsPerStep,
		Clock:               systemClock{},
		Input:               keyboardInput{},
		Surface:             surface,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{session: s, surface: surface}
	if cfg.showFPS {
		if g.fpsFace, err = newFPSFace(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func main() {
	cfg, err := parseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if cfg.trace {
		for _, line := range chip8.Disassemble(rom.Program, chip8.ProgramStart) {
			log.Println(line)
		}
	}

	game, err := newGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth*cfg.zoom, screenHeight*cfg.zoom)
	ebiten.SetWindowTitle("CHIP-8")
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("stopped after %d frames: %v", game.session.Frames(), err)
	}
}
