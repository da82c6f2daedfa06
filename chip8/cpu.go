package chip8

import (
	"math/rand"
)

type Instruction struct {
	Name    string
	Mask    uint16
	Pattern uint16
	// Format renders the operands; {x} {y} {n} {nn} {nnn} are substituted.
	Format  string
	operate func(*CPU)
}

type CPU struct {
	v      [16]uint8
	i      uint16
	pc     uint16
	stack  [16]uint16
	sp     uint8
	delay  uint8
	sound  uint8
	opcode uint16

	keys    [16]bool
	rng     *rand.Rand
	bus     *Bus
	display *Display
}

// Order matters: the first matching entry wins, so SYS sits after CLS and RET.
var lookup = []Instruction{
	{"CLS", 0xFFFF, 0x00E0, "CLS", CLS},
	{"RET", 0xFFFF, 0x00EE, "RET", RET},
	{"SYS", 0xF000, 0x0000, "SYS {nnn}", NOP},
	{"JP", 0xF000, 0x1000, "JP {nnn}", JP},
	{"CALL", 0xF000, 0x2000, "CALL {nnn}", CALL},
	{"SE", 0xF000, 0x3000, "SE V{x}, {nn}", SEI},
	{"SNE", 0xF000, 0x4000, "SNE V{x}, {nn}", SNEI},
	{"SE", 0xF00F, 0x5000, "SE V{x}, V{y}", SER},
	{"LD", 0xF000, 0x6000, "LD V{x}, {nn}", LDI},
	{"ADD", 0xF000, 0x7000, "ADD V{x}, {nn}", ADDI},
	{"LD", 0xF00F, 0x8000, "LD V{x}, V{y}", LDR},
	{"OR", 0xF00F, 0x8001, "OR V{x}, V{y}", OR},
	{"AND", 0xF00F, 0x8002, "AND V{x}, V{y}", AND},
	{"XOR", 0xF00F, 0x8003, "XOR V{x}, V{y}", XOR},
	{"ADD", 0xF00F, 0x8004, "ADD V{x}, V{y}", ADDR},
	{"SUB", 0xF00F, 0x8005, "SUB V{x}, V{y}", SUB},
	{"SHR", 0xF00F, 0x8006, "SHR V{x}", SHR},
	{"SUBN", 0xF00F, 0x8007, "SUBN V{x}, V{y}", SUBN},
	{"SHL", 0xF00F, 0x800E, "SHL V{x}", SHL},
	{"SNE", 0xF00F, 0x9000, "SNE V{x}, V{y}", SNER},
	{"LD", 0xF000, 0xA000, "LD I, {nnn}", LDIA},
	{"JP", 0xF000, 0xB000, "JP V0, {nnn}", JPV0},
	{"RND", 0xF000, 0xC000, "RND V{x}, {nn}", RND},
	{"DRW", 0xF000, 0xD000, "DRW V{x}, V{y}, {n}", DRW},
	{"SKP", 0xF0FF, 0xE09E, "SKP V{x}", SKP},
	{"SKNP", 0xF0FF, 0xE0A1, "SKNP V{x}", SKNP},
	{"LD", 0xF0FF, 0xF007, "LD V{x}, DT", LDVDT},
	{"LD", 0xF0FF, 0xF00A, "LD V{x}, K", LDK},
	{"LD", 0xF0FF, 0xF015, "LD DT, V{x}", LDDT},
	{"LD", 0xF0FF, 0xF018, "LD ST, V{x}", LDST},
	{"ADD", 0xF0FF, 0xF01E, "ADD I, V{x}", ADDIV},
	{"LD", 0xF0FF, 0xF029, "LD F, V{x}", LDF},
	{"LD", 0xF0FF, 0xF033, "LD B, V{x}", LDB},
	{"LD", 0xF0FF, 0xF055, "LD [I], V{x}", STM},
	{"LD", 0xF0FF, 0xF065, "LD V{x}, [I]", LDM},
}

func decode(opcode uint16) (Instruction, bool) {
	for _, ins := range lookup {
		if opcode&ins.Mask == ins.Pattern {
			return ins, true
		}
	}
	return Instruction{}, false
}

func (c *CPU) x() uint8 { return uint8(c.opcode>>8) & 0x0F }
func (c *CPU) y() uint8 { return uint8(c.opcode>>4) & 0x0F }
func (c *CPU) n() uint8 { return uint8(c.opcode) & 0x0F }
func (c *CPU) nn() uint8 { return uint8(c.opcode) }
func (c *CPU) nnn() uint16 { return c.opcode & 0x0FFF }

func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += 2
	}
}

func (c *CPU) setFlag(v bool) {
	if v {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
}

func NOP(c *CPU) {}

func CLS(c *CPU) {
	c.display.clear()
}

func RET(c *CPU) {
	c.sp = (c.sp - 1) & 0x0F
	c.pc = c.stack[c.sp]
}

func JP(c *CPU) {
	c.pc = c.nnn()
}

func CALL(c *CPU) {
	c.stack[c.sp] = c.pc
	c.sp = (c.sp + 1) & 0x0F
	c.pc = c.nnn()
}

func SEI(c *CPU) {
	c.skipIf(c.v[c.x()] == c.nn())
}

func SNEI(c *CPU) {
	c.skipIf(c.v[c.x()] != c.nn())
}

func SER(c *CPU) {
	c.skipIf(c.v[c.x()] == c.v[c.y()])
}

func SNER(c *CPU) {
	c.skipIf(c.v[c.x()] != c.v[c.y()])
}

func LDI(c *CPU) {
	c.v[c.x()] = c.nn()
}

func ADDI(c *CPU) {
	c.v[c.x()] += c.nn()
}

func LDR(c *CPU) {
	c.v[c.x()] = c.v[c.y()]
}

func OR(c *CPU) {
	c.v[c.x()] |= c.v[c.y()]
}

func AND(c *CPU) {
	c.v[c.x()] &= c.v[c.y()]
}

func XOR(c *CPU) {
	c.v[c.x()] ^= c.v[c.y()]
}

// The arithmetic ops write VF last so VF as a destination ends up holding the
// flag.
func ADDR(c *CPU) {
	sum := uint16(c.v[c.x()]) + uint16(c.v[c.y()])
	c.v[c.x()] = uint8(sum)
	c.setFlag(sum > 0xFF)
}

func SUB(c *CPU) {
	vx, vy := c.v[c.x()], c.v[c.y()]
	c.v[c.x()] = vx - vy
	c.setFlag(vx >= vy)
}

func SUBN(c *CPU) {
	vx, vy := c.v[c.x()], c.v[c.y()]
	c.v[c.x()] = vy - vx
	c.setFlag(vy >= vx)
}

func SHR(c *CPU) {
	vx := c.v[c.x()]
	c.v[c.x()] = vx >> 1
	c.setFlag(vx&0x01 != 0)
}

func SHL(c *CPU) {
	vx := c.v[c.x()]
	c.v[c.x()] = vx << 1
	c.setFlag(vx&0x80 != 0)
}

func LDIA(c *CPU) {
	c.i = c.nnn()
}

func JPV0(c *CPU) {
	c.pc = (c.nnn() + uint16(c.v[0])) & 0x0FFF
}

func RND(c *CPU) {
	c.v[c.x()] = uint8(c.rng.Intn(256)) & c.nn()
}

func DRW(c *CPU) {
	rows := make([]uint8, c.n())
	for r := range rows {
		rows[r] = c.bus.read(c.i + uint16(r))
	}
	c.setFlag(c.display.drawSprite(c.v[c.x()], c.v[c.y()], rows))
}

func SKP(c *CPU) {
	c.skipIf(c.keys[c.v[c.x()]&0x0F])
}

func SKNP(c *CPU) {
	c.skipIf(!c.keys[c.v[c.x()]&0x0F])
}

func LDVDT(c *CPU) {
	c.v[c.x()] = c.delay
}

// LDK holds the program on this instruction until some key is down.
func LDK(c *CPU) {
	for k, down := range c.keys {
		if down {
			c.v[c.x()] = uint8(k)
			return
		}
	}
	c.pc -= 2
}

func LDDT(c *CPU) {
	c.delay = c.v[c.x()]
}

func LDST(c *CPU) {
	c.sound = c.v[c.x()]
}

func ADDIV(c *CPU) {
	c.i = (c.i + uint16(c.v[c.x()])) & 0x0FFF
}

func LDF(c *CPU) {
	c.i = glyphAddr(c.v[c.x()])
}

func LDB(c *CPU) {
	vx := c.v[c.x()]
	c.bus.write(c.i, vx/100)
	c.bus.write(c.i+1, (vx/10)%10)
	c.bus.write(c.i+2, vx%10)
}

func STM(c *CPU) {
	for r := uint16(0); r <= uint16(c.x()); r++ {
		c.bus.write(c.i+r, c.v[r])
	}
}

func LDM(c *CPU) {
	for r := uint16(0); r <= uint16(c.x()); r++ {
		c.v[r] = c.bus.read(c.i + r)
	}
}

func (c *CPU) reset() {
	c.v = [16]uint8{}
	c.stack = [16]uint16{}
	c.i = 0
	c.sp = 0
	c.delay = 0
	c.sound = 0
	c.opcode = 0
	c.keys = [16]bool{}
	c.pc = ProgramStart
}

// clock fetches and executes one instruction. Unknown opcodes are skipped.
func (c *CPU) clock() {
	c.opcode = uint16(c.bus.read(c.pc))<<8 | uint16(c.bus.read(c.pc+1))
	c.pc = (c.pc + 2) & 0x0FFF
	if ins, ok := decode(c.opcode); ok {
		ins.operate(c)
	}
}

func (c *CPU) tickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}
