package session

import (
	"errors"
	"fmt"
	"log"

	"chip8-host/display"
	"chip8-host/keypad"
)

var (
	// ErrInit marks a failure while constructing a session.
	ErrInit = errors.New("session init")
	// ErrFrame marks a failure inside one frame update.
	ErrFrame = errors.New("session frame")
)

// Engine is the CHIP-8 machine driven by a session.
type Engine interface {
	// LoadProgram copies a program image into the machine. A non-positive
	// instructionsPerStep selects the engine's default.
	LoadProgram(program []byte, instructionsPerStep int)
	SeedRandom(seed uint64)
	Step()
	Keypad() *keypad.State
	// Render returns a snapshot when the display should be redrawn, nil
	// otherwise.
	Render() *display.Frame
	WantsSound() bool
}

// Clock reports wall-clock milliseconds since the Unix epoch.
type Clock interface {
	Millis() (uint64, error)
}

// Input reports the buttons that went down and up since the last call.
type Input interface {
	Buttons() (pressed, released keypad.Button, err error)
}

type Speaker interface {
	Beep()
}

type silentSpeaker struct{}

func (silentSpeaker) Beep() {}

type Options struct {
	Program             []byte
	InstructionsPerStep int

	Clock   Clock
	Input   Input
	Surface display.Surface
	Speaker Speaker

	Mapping  keypad.Mapping
	Geometry display.Geometry
}

type Session struct {
	engine     Engine
	input      Input
	speaker    Speaker
	translator keypad.Translator
	renderer   *display.Renderer
	frames     uint64
}

// New builds the engine, loads the program and seeds the engine's random
// source from opts.Clock. A zero Mapping or Geometry selects the handheld
// defaults.
func New(newEngine func() Engine, opts Options) (*Session, error) {
	switch {
	case opts.Surface == nil:
		return nil, fmt.Errorf("%w: no drawing surface", ErrInit)
	case opts.Input == nil:
		return nil, fmt.Errorf("%w: no button input", ErrInit)
	case opts.Clock == nil:
		return nil, fmt.Errorf("%w: no wall clock", ErrInit)
	}

	seed, err := opts.Clock.Millis()
	if err != nil {
		return nil, fmt.Errorf("%w: reading wall clock: %w", ErrInit, err)
	}

	mapping := opts.Mapping
	if len(mapping.Bindings()) == 0 {
		mapping = keypad.DefaultMapping
	}
	geometry := opts.Geometry
	if geometry == (display.Geometry{}) {
		geometry = display.DefaultGeometry
	}
	speaker := opts.Speaker
	if speaker == nil {
		speaker = silentSpeaker{}
	}

	engine := newEngine()
	engine.LoadProgram(opts.Program, opts.InstructionsPerStep)
	engine.SeedRandom(seed)
	log.Printf("session: loaded %d byte program, %d instructions/step, seed %d",
		len(opts.Program), opts.InstructionsPerStep, seed)

	return &Session{
		engine:     engine,
		input:      opts.Input,
		speaker:    speaker,
		translator: keypad.NewTranslator(mapping),
		renderer:   display.NewRenderer(geometry, opts.Surface),
	}, nil
}

// Update runs one frame: step, sample input, translate, render, sound check.
func (s *Session) Update() error {
	s.engine.Step()

	pressed, released, err := s.input.Buttons()
	if err != nil {
		return fmt.Errorf("%w %d: reading buttons: %w", ErrFrame, s.frames, err)
	}
	s.translator.Apply(s.engine.Keypad(), pressed, released)

	if frame := s.engine.Render(); frame != nil {
		if err := s.renderer.Render(frame); err != nil {
			return fmt.Errorf("%w %d: %w", ErrFrame, s.frames, err)
		}
	}

	if s.engine.WantsSound() {
		s.speaker.Beep()
	}

	s.frames++
	return nil
}

// Frames reports how many updates have completed.
func (s *Session) Frames() uint64 {
	return s.frames
}
