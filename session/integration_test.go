package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chip8-host/chip8"
	"chip8-host/keypad"
	"chip8-host/rom"
)

func TestSessionDrivesMachine(t *testing.T) {
	surface := &countingSurface{}
	in := &scriptedInput{edges: []edge{
		{keypad.ButtonNone, keypad.ButtonNone},
		{keypad.ButtonA, keypad.ButtonNone},
	}}
	speaker := &countingSpeaker{}
	var machine *chip8.Machine
	s, err := New(func() Engine { machine = chip8.NewMachine(); return machine }, Options{
		Program:             rom.Program,
		InstructionsPerStep: chip8.DefaultInstructionsPerStep,
		Clock:               fixedClock{ms: 123456},
		Input:               in,
		Surface:             surface,
		Speaker:             speaker,
	})
	require.NoError(t, err)

	require.NoError(t, s.Update())
	assert.Equal(t, 2048, surface.fills)
	assert.Zero(t, speaker.beeps)

	require.NoError(t, s.Update())
	assert.True(t, machine.Keypad()[5])

	require.NoError(t, s.Update())
	assert.Equal(t, 1, speaker.beeps)
	assert.Equal(t, uint64(3), s.Frames())
}
