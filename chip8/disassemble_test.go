package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	program := []byte{0x00, 0xE0, 0x6A, 0x2F, 0xD1, 0x25, 0x8A, 0xBE, 0xF3, 0x55, 0xFF, 0xFF, 0x12}
	var lines []string
	for _, d := range Disassemble(program, ProgramStart) {
		lines = append(lines, d.String())
	}
	assert.Equal(t, []string{
		"$200: 00E0  CLS",
		"$202: 6A2F  LD VA, $2F",
		"$204: D125  DRW V1, V2, 5",
		"$206: 8ABE  SHL VA",
		"$208: F355  LD [I], V3",
		"$20A: FFFF  DW $FFFF",
		"$20C: 1200  JP $200",
	}, lines)
}
