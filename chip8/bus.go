package chip8

const (
	MemorySize    = 4096
	ProgramStart  = 0x200
	MaxProgramLen = MemorySize - ProgramStart
	fontStart     = 0x000
	fontGlyphLen  = 5
)

var fontSet = [16 * fontGlyphLen]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Bus owns the 4 KiB address space. Addresses wrap at 12 bits.
type Bus struct {
	ram [MemorySize]uint8
}

func (b *Bus) read(addr uint16) uint8 {
	return b.ram[addr&0x0FFF]
}

func (b *Bus) write(addr uint16, data uint8) {
	b.ram[addr&0x0FFF] = data
}

// load clears memory, installs the font and copies as much of program as
// fits after ProgramStart.
func (b *Bus) load(program []uint8) {
	b.ram = [MemorySize]uint8{}
	copy(b.ram[fontStart:], fontSet[:])
	copy(b.ram[ProgramStart:], program)
}

func glyphAddr(digit uint8) uint16 {
	return fontStart + uint16(digit&0x0F)*fontGlyphLen
}
