package chip8

import (
	"math/rand"
)

// DefaultInstructionsPerStep is used when LoadProgram is given no throttle.
const DefaultInstructionsPerStep = 10

// Machine wires the CPU, memory and display together and is stepped once per
// host frame.
type Machine struct {
	cpu                 *CPU
	bus                 *Bus
	display             *Display
	instructionsPerStep int
}

func NewMachine() *Machine {
	bus := &Bus{}
	display := &Display{}
	m := &Machine{
		cpu: &CPU{
			bus:     bus,
			display: display,
			rng:     rand.New(rand.NewSource(0)),
		},
		bus:                 bus,
		display:             display,
		instructionsPerStep: DefaultInstructionsPerStep,
	}
	m.cpu.reset()
	return m
}

// LoadProgram resets the machine and copies program to ProgramStart. Images
// longer than MaxProgramLen are truncated. The screen is marked dirty so the
// next Render clears whatever the host showed before.
func (m *Machine) LoadProgram(program []byte, instructionsPerStep int) {
	if instructionsPerStep <= 0 {
		instructionsPerStep = DefaultInstructionsPerStep
	}
	m.instructionsPerStep = instructionsPerStep
	m.bus.load(program)
	m.cpu.reset()
	m.display.clear()
}

func (m *Machine) SeedRandom(seed uint64) {
	m.cpu.rng = rand.New(rand.NewSource(int64(seed)))
}

// Step runs one frame's worth of instructions and ticks the 60 Hz timers once.
func (m *Machine) Step() {
	for i := 0; i < m.instructionsPerStep; i++ {
		m.cpu.clock()
	}
	m.cpu.tickTimers()
}

func (m *Machine) Keypad() *[16]bool {
	return &m.cpu.keys
}

func (m *Machine) Render() *[Width * Height]bool {
	return m.display.snapshot()
}

func (m *Machine) WantsSound() bool {
	return m.cpu.sound > 0
}
