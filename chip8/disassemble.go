package chip8

import (
	"fmt"
	"strings"
)

type DisassembledInstruction struct {
	Addr        uint16
	Opcode      uint16
	Instruction string
}

func (d DisassembledInstruction) String() string {
	return fmt.Sprintf("$%03X: %04X  %s", d.Addr, d.Opcode, d.Instruction)
}

func format(ins Instruction, opcode uint16) string {
	return strings.NewReplacer(
		"{x}", fmt.Sprintf("%X", (opcode>>8)&0x0F),
		"{y}", fmt.Sprintf("%X", (opcode>>4)&0x0F),
		"{nnn}", fmt.Sprintf("$%03X", opcode&0x0FFF),
		"{nn}", fmt.Sprintf("$%02X", opcode&0x00FF),
		"{n}", fmt.Sprintf("%d", opcode&0x000F),
	).Replace(ins.Format)
}

// Disassemble decodes program two bytes at a time as if loaded at origin.
// Words that are not instructions, sprite data usually, come out as DW.
func Disassemble(program []byte, origin uint16) []DisassembledInstruction {
	out := make([]DisassembledInstruction, 0, (len(program)+1)/2)
	for p := 0; p < len(program); p += 2 {
		opcode := uint16(program[p]) << 8
		if p+1 < len(program) {
			opcode |= uint16(program[p+1])
		}
		text := fmt.Sprintf("DW $%04X", opcode)
		if ins, ok := decode(opcode); ok {
			text = format(ins, opcode)
		}
		out = append(out, DisassembledInstruction{
			Addr:        origin + uint16(p),
			Opcode:      opcode,
			Instruction: text,
		})
	}
	return out
}
