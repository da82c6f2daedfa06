package rom

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chip8-host/chip8"
)

func TestProgramIsEmbedded(t *testing.T) {
	require.Len(t, Program, 66)
	assert.Equal(t, []byte{0x00, 0xE0}, Program[:2])
}

func TestProgramDisassembles(t *testing.T) {
	listing := chip8.Disassemble(Program, chip8.ProgramStart)
	require.NotEmpty(t, listing)
	assert.Equal(t, "CLS", listing[0].Instruction)
	assert.Equal(t, "LD I, $23A", listing[7].Instruction)
	assert.Equal(t, "JP $212", listing[20].Instruction)
}

func TestProgramRunsAndBeepsOnFire(t *testing.T) {
	m := chip8.NewMachine()
	m.LoadProgram(Program, chip8.DefaultInstructionsPerStep)
	m.SeedRandom(1)

	m.Step()
	require.NotNil(t, m.Render())
	assert.False(t, m.WantsSound())

	m.Keypad()[5] = true
	m.Step()
	m.Step()
	assert.True(t, m.WantsSound())
}

func TestLoad(t *testing.T) {
	data, err := Load(bytes.NewReader([]byte{0x12, 0x00}))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x00}, data)
}

func TestLoadRejectsEmptyAndOversized(t *testing.T) {
	_, err := Load(bytes.NewReader(nil))
	assert.Error(t, err)

	_, err = Load(bytes.NewReader(make([]byte, MaxSize+1)))
	assert.Error(t, err)

	_, err = Load(bytes.NewReader(make([]byte, MaxSize)))
	assert.NoError(t, err)
}

func TestLoadPropagatesReadError(t *testing.T) {
	_, err := Load(iotest.ErrReader(errors.New("card removed")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card removed")
}
