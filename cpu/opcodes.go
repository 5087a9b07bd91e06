package cpu

import (
	"fmt"
	"math/bits"
)

// Addressing modes. https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	modeImplicit = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageXButY // SAX $97 quirk: written as zp,X but indexed by Y
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

// Instruction identifiers. https://www.nesdev.org/obelisk-6502-guide/instructions.html
const (
	ADC = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
	// Unofficial opcodes used by compatibility-test ROMs.
	LAX
	SAX
	DCM // aka DCP
	ISB // aka ISC
)

type opcode struct {
	inst   uint8
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
}

func (o opcode) String() string {
	return fmt.Sprintf("%s(%d)", o.name, o.mode)
}

var opcodes = buildOpcodeTable()

func buildOpcodeTable() map[uint8]opcode {
	m := map[uint8]opcode{
		0x69: {ADC, "ADC", modeImmediate, 2, 2},
		0x65: {ADC, "ADC", modeZeroPage, 2, 3},
		0x75: {ADC, "ADC", modeZeroPageX, 2, 4},
		0x6D: {ADC, "ADC", modeAbsolute, 3, 4},
		0x7D: {ADC, "ADC", modeAbsoluteX, 3, 4},
		0x79: {ADC, "ADC", modeAbsoluteY, 3, 4},
		0x61: {ADC, "ADC", modeIndirectX, 2, 6},
		0x71: {ADC, "ADC", modeIndirectY, 2, 5},
		0x29: {AND, "AND", modeImmediate, 2, 2},
		0x25: {AND, "AND", modeZeroPage, 2, 3},
		0x35: {AND, "AND", modeZeroPageX, 2, 4},
		0x2D: {AND, "AND", modeAbsolute, 3, 4},
		0x3D: {AND, "AND", modeAbsoluteX, 3, 4},
		0x39: {AND, "AND", modeAbsoluteY, 3, 4},
		0x21: {AND, "AND", modeIndirectX, 2, 6},
		0x31: {AND, "AND", modeIndirectY, 2, 5},
		0x0A: {ASL, "ASL", modeAccumulator, 1, 2},
		0x06: {ASL, "ASL", modeZeroPage, 2, 5},
		0x16: {ASL, "ASL", modeZeroPageX, 2, 6},
		0x0E: {ASL, "ASL", modeAbsolute, 3, 6},
		0x1E: {ASL, "ASL", modeAbsoluteX, 3, 7},
		0x90: {BCC, "BCC", modeRelative, 2, 2},
		0xB0: {BCS, "BCS", modeRelative, 2, 2},
		0xF0: {BEQ, "BEQ", modeRelative, 2, 2},
		0x24: {BIT, "BIT", modeZeroPage, 2, 3},
		0x2C: {BIT, "BIT", modeAbsolute, 3, 4},
		0x30: {BMI, "BMI", modeRelative, 2, 2},
		0xD0: {BNE, "BNE", modeRelative, 2, 2},
		0x10: {BPL, "BPL", modeRelative, 2, 2},
		0x00: {BRK, "BRK", modeImplicit, 2, 7},
		0x50: {BVC, "BVC", modeRelative, 2, 2},
		0x70: {BVS, "BVS", modeRelative, 2, 2},
		0x18: {CLC, "CLC", modeImplicit, 1, 2},
		0xD8: {CLD, "CLD", modeImplicit, 1, 2},
		0x58: {CLI, "CLI", modeImplicit, 1, 2},
		0xB8: {CLV, "CLV", modeImplicit, 1, 2},
		0xC9: {CMP, "CMP", modeImmediate, 2, 2},
		0xC5: {CMP, "CMP", modeZeroPage, 2, 3},
		0xD5: {CMP, "CMP", modeZeroPageX, 2, 4},
		0xCD: {CMP, "CMP", modeAbsolute, 3, 4},
		0xDD: {CMP, "CMP", modeAbsoluteX, 3, 4},
		0xD9: {CMP, "CMP", modeAbsoluteY, 3, 4},
		0xC1: {CMP, "CMP", modeIndirectX, 2, 6},
		0xD1: {CMP, "CMP", modeIndirectY, 2, 5},
		0xE0: {CPX, "CPX", modeImmediate, 2, 2},
		0xE4: {CPX, "CPX", modeZeroPage, 2, 3},
		0xEC: {CPX, "CPX", modeAbsolute, 3, 4},
		0xC0: {CPY, "CPY", modeImmediate, 2, 2},
		0xC4: {CPY, "CPY", modeZeroPage, 2, 3},
		0xCC: {CPY, "CPY", modeAbsolute, 3, 4},
		0xC6: {DEC, "DEC", modeZeroPage, 2, 5},
		0xD6: {DEC, "DEC", modeZeroPageX, 2, 6},
		0xCE: {DEC, "DEC", modeAbsolute, 3, 6},
		0xDE: {DEC, "DEC", modeAbsoluteX, 3, 7},
		0xCA: {DEX, "DEX", modeImplicit, 1, 2},
		0x88: {DEY, "DEY", modeImplicit, 1, 2},
		0x49: {EOR, "EOR", modeImmediate, 2, 2},
		0x45: {EOR, "EOR", modeZeroPage, 2, 3},
		0x55: {EOR, "EOR", modeZeroPageX, 2, 4},
		0x4D: {EOR, "EOR", modeAbsolute, 3, 4},
		0x5D: {EOR, "EOR", modeAbsoluteX, 3, 4},
		0x59: {EOR, "EOR", modeAbsoluteY, 3, 4},
		0x41: {EOR, "EOR", modeIndirectX, 2, 6},
		0x51: {EOR, "EOR", modeIndirectY, 2, 5},
		0xE6: {INC, "INC", modeZeroPage, 2, 5},
		0xF6: {INC, "INC", modeZeroPageX, 2, 6},
		0xEE: {INC, "INC", modeAbsolute, 3, 6},
		0xFE: {INC, "INC", modeAbsoluteX, 3, 7},
		0xE8: {INX, "INX", modeImplicit, 1, 2},
		0xC8: {INY, "INY", modeImplicit, 1, 2},
		0x4C: {JMP, "JMP", modeAbsolute, 3, 3},
		0x6C: {JMP, "JMP", modeIndirect, 3, 5},
		0x20: {JSR, "JSR", modeAbsolute, 3, 6},
		0xA9: {LDA, "LDA", modeImmediate, 2, 2},
		0xA5: {LDA, "LDA", modeZeroPage, 2, 3},
		0xB5: {LDA, "LDA", modeZeroPageX, 2, 4},
		0xAD: {LDA, "LDA", modeAbsolute, 3, 4},
		0xBD: {LDA, "LDA", modeAbsoluteX, 3, 4},
		0xB9: {LDA, "LDA", modeAbsoluteY, 3, 4},
		0xA1: {LDA, "LDA", modeIndirectX, 2, 6},
		0xB1: {LDA, "LDA", modeIndirectY, 2, 5},
		0xA2: {LDX, "LDX", modeImmediate, 2, 2},
		0xA6: {LDX, "LDX", modeZeroPage, 2, 3},
		0xB6: {LDX, "LDX", modeZeroPageY, 2, 4},
		0xAE: {LDX, "LDX", modeAbsolute, 3, 4},
		0xBE: {LDX, "LDX", modeAbsoluteY, 3, 4},
		0xA0: {LDY, "LDY", modeImmediate, 2, 2},
		0xA4: {LDY, "LDY", modeZeroPage, 2, 3},
		0xB4: {LDY, "LDY", modeZeroPageX, 2, 4},
		0xAC: {LDY, "LDY", modeAbsolute, 3, 4},
		0xBC: {LDY, "LDY", modeAbsoluteX, 3, 4},
		0x4A: {LSR, "LSR", modeAccumulator, 1, 2},
		0x46: {LSR, "LSR", modeZeroPage, 2, 5},
		0x56: {LSR, "LSR", modeZeroPageX, 2, 6},
		0x4E: {LSR, "LSR", modeAbsolute, 3, 6},
		0x5E: {LSR, "LSR", modeAbsoluteX, 3, 7},
		0x04: {NOP, "NOP", modeZeroPage, 2, 3},
		0x44: {NOP, "NOP", modeZeroPage, 2, 3},
		0x64: {NOP, "NOP", modeZeroPage, 2, 3},
		0x0C: {NOP, "NOP", modeAbsolute, 3, 4},
		0x14: {NOP, "NOP", modeZeroPageX, 2, 4},
		0x34: {NOP, "NOP", modeZeroPageX, 2, 4},
		0x54: {NOP, "NOP", modeZeroPageX, 2, 4},
		0x74: {NOP, "NOP", modeZeroPageX, 2, 4},
		0xD4: {NOP, "NOP", modeZeroPageX, 2, 4},
		0xF4: {NOP, "NOP", modeZeroPageX, 2, 4},
		0xEA: {NOP, "NOP", modeImplicit, 1, 2},
		0x1A: {NOP, "NOP", modeImplicit, 1, 2},
		0x3A: {NOP, "NOP", modeImplicit, 1, 2},
		0x5A: {NOP, "NOP", modeImplicit, 1, 2},
		0xDA: {NOP, "NOP", modeImplicit, 1, 2},
		0x80: {NOP, "NOP", modeImmediate, 2, 2},
		0x1C: {NOP, "NOP", modeAbsoluteX, 3, 4},
		0x3C: {NOP, "NOP", modeAbsoluteX, 3, 4},
		0x5C: {NOP, "NOP", modeAbsoluteX, 3, 4},
		0x7C: {NOP, "NOP", modeAbsoluteX, 3, 4},
		0xDC: {NOP, "NOP", modeAbsoluteX, 3, 4},
		0xFC: {NOP, "NOP", modeAbsoluteX, 3, 4},
		0x09: {ORA, "ORA", modeImmediate, 2, 2},
		0x05: {ORA, "ORA", modeZeroPage, 2, 3},
		0x15: {ORA, "ORA", modeZeroPageX, 2, 4},
		0x0D: {ORA, "ORA", modeAbsolute, 3, 4},
		0x1D: {ORA, "ORA", modeAbsoluteX, 3, 4},
		0x19: {ORA, "ORA", modeAbsoluteY, 3, 4},
		0x01: {ORA, "ORA", modeIndirectX, 2, 6},
		0x11: {ORA, "ORA", modeIndirectY, 2, 5},
		0x48: {PHA, "PHA", modeImplicit, 1, 3},
		0x08: {PHP, "PHP", modeImplicit, 1, 3},
		0x68: {PLA, "PLA", modeImplicit, 1, 4},
		0x28: {PLP, "PLP", modeImplicit, 1, 4},
		0x2A: {ROL, "ROL", modeAccumulator, 1, 2},
		0x26: {ROL, "ROL", modeZeroPage, 2, 5},
		0x36: {ROL, "ROL", modeZeroPageX, 2, 6},
		0x2E: {ROL, "ROL", modeAbsolute, 3, 6},
		0x3E: {ROL, "ROL", modeAbsoluteX, 3, 7},
		0x6A: {ROR, "ROR", modeAccumulator, 1, 2},
		0x66: {ROR, "ROR", modeZeroPage, 2, 5},
		0x76: {ROR, "ROR", modeZeroPageX, 2, 6},
		0x6E: {ROR, "ROR", modeAbsolute, 3, 6},
		0x7E: {ROR, "ROR", modeAbsoluteX, 3, 7},
		0x40: {RTI, "RTI", modeImplicit, 1, 6},
		0x60: {RTS, "RTS", modeImplicit, 1, 6},
		0xE9: {SBC, "SBC", modeImmediate, 2, 2},
		0xEB: {SBC, "SBC", modeImmediate, 2, 2},
		0xE5: {SBC, "SBC", modeZeroPage, 2, 3},
		0xF5: {SBC, "SBC", modeZeroPageX, 2, 4},
		0xED: {SBC, "SBC", modeAbsolute, 3, 4},
		0xFD: {SBC, "SBC", modeAbsoluteX, 3, 4},
		0xF9: {SBC, "SBC", modeAbsoluteY, 3, 4},
		0xE1: {SBC, "SBC", modeIndirectX, 2, 6},
		0xF1: {SBC, "SBC", modeIndirectY, 2, 5},
		0x38: {SEC, "SEC", modeImplicit, 1, 2},
		0xF8: {SED, "SED", modeImplicit, 1, 2},
		0x78: {SEI, "SEI", modeImplicit, 1, 2},
		0x85: {STA, "STA", modeZeroPage, 2, 3},
		0x95: {STA, "STA", modeZeroPageX, 2, 4},
		0x8D: {STA, "STA", modeAbsolute, 3, 4},
		0x9D: {STA, "STA", modeAbsoluteX, 3, 5},
		0x99: {STA, "STA", modeAbsoluteY, 3, 5},
		0x81: {STA, "STA", modeIndirectX, 2, 6},
		0x91: {STA, "STA", modeIndirectY, 2, 6},
		0x86: {STX, "STX", modeZeroPage, 2, 3},
		0x96: {STX, "STX", modeZeroPageY, 2, 4},
		0x8E: {STX, "STX", modeAbsolute, 3, 4},
		0x84: {STY, "STY", modeZeroPage, 2, 3},
		0x94: {STY, "STY", modeZeroPageX, 2, 4},
		0x8C: {STY, "STY", modeAbsolute, 3, 4},
		0xAA: {TAX, "TAX", modeImplicit, 1, 2},
		0xA8: {TAY, "TAY", modeImplicit, 1, 2},
		0xBA: {TSX, "TSX", modeImplicit, 1, 2},
		0x8A: {TXA, "TXA", modeImplicit, 1, 2},
		0x9A: {TXS, "TXS", modeImplicit, 1, 2},
		0x98: {TYA, "TYA", modeImplicit, 1, 2},
		0xA3: {LAX, "LAX", modeIndirectX, 2, 6},
		0xB3: {LAX, "LAX", modeIndirectY, 2, 5},
		0xA7: {LAX, "LAX", modeZeroPage, 2, 3},
		0xB7: {LAX, "LAX", modeZeroPageY, 2, 4},
		0xAF: {LAX, "LAX", modeAbsolute, 3, 4},
		0xBF: {LAX, "LAX", modeAbsoluteY, 3, 4},
		0x83: {SAX, "SAX", modeIndirectX, 2, 6},
		0x87: {SAX, "SAX", modeZeroPage, 2, 3},
		0x97: {SAX, "SAX", modeZeroPageXButY, 2, 4},
		0x8F: {SAX, "SAX", modeAbsolute, 3, 4},
		0xC7: {DCM, "DCM", modeZeroPage, 2, 5},
		0xD7: {DCM, "DCM", modeZeroPageX, 2, 6},
		0xCF: {DCM, "DCM", modeAbsolute, 3, 6},
		0xDF: {DCM, "DCM", modeAbsoluteX, 3, 7},
		0xDB: {DCM, "DCM", modeAbsoluteY, 3, 7},
		0xC3: {DCM, "DCM", modeIndirectX, 2, 8},
		0xD3: {DCM, "DCM", modeIndirectY, 2, 8},
		0xE7: {ISB, "ISB", modeZeroPage, 2, 5},
		0xF7: {ISB, "ISB", modeZeroPageX, 2, 6},
		0xEF: {ISB, "ISB", modeAbsolute, 3, 6},
		0xFF: {ISB, "ISB", modeAbsoluteX, 3, 7},
		0xFB: {ISB, "ISB", modeAbsoluteY, 3, 7},
		0xE3: {ISB, "ISB", modeIndirectX, 2, 8},
		0xF3: {ISB, "ISB", modeIndirectY, 2, 8},
	}
	return m
}

// operandAddr resolves the address an instruction's operand lives at.
// crossed is 1 when an indexed mode crossed a page boundary; callers
// for read instructions add it to cycles, callers for stores and
// read-modify-write instructions ignore it (those already cost the
// worst case in the opcode table).
func (c *CPU) operandAddr(mode uint8) (addr uint16, crossed uint8) {
	switch mode {
	case modeImmediate:
		addr = c.PC
	case modeZeroPage:
		addr = uint16(c.read(c.PC))
	case modeZeroPageX:
		addr = uint16(c.read(c.PC) + c.X)
	case modeZeroPageY:
		addr = uint16(c.read(c.PC) + c.Y)
	case modeZeroPageXButY:
		addr = uint16(c.read(c.PC) + c.Y)
	case modeAbsolute:
		addr = c.read16(c.PC)
	case modeAbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		crossed = pageCrossed(base, addr)
	case modeAbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		crossed = pageCrossed(base, addr)
	case modeIndirect:
		addr = c.read16Wrapped(c.read16(c.PC))
	case modeIndirectX:
		zp := c.read(c.PC) + c.X
		addr = c.read16Wrapped(uint16(zp))
	case modeIndirectY:
		zp := c.read(c.PC)
		base := c.read16Wrapped(uint16(zp))
		addr = base + uint16(c.Y)
		crossed = pageCrossed(base, addr)
	case modeRelative:
		addr = (c.PC + 1) + uint16(int8(c.read(c.PC)))
	default:
		panic("operandAddr: mode has no operand address")
	}
	return addr, crossed
}

// readOperand resolves and reads a memory or immediate operand,
// charging the page-cross penalty where applicable. It does not
// handle the accumulator or implied modes.
func (c *CPU) readOperand(mode uint8) uint8 {
	addr, crossed := c.operandAddr(mode)
	c.cycles += crossed
	return c.read(addr)
}

func (c *CPU) branch(mask uint8, want bool) {
	if (c.Status&mask != 0) == want {
		addr, _ := c.operandAddr(modeRelative)
		// c.PC currently holds the address of the operand byte, so
		// c.PC+1 is the address of the instruction following this
		// branch, the base the extra cycle is charged against.
		c.cycles += pageCrossed(addr, c.PC+1)
		c.cycles++
		c.PC = addr
	}
}

func (c *CPU) addWithCarry(b uint8) {
	sum := uint16(c.A) + uint16(b) + uint16(c.Status&FlagCarry)
	res := uint8(sum)

	c.clearFlags(FlagCarry | FlagOverflow)
	if sum&0x100 != 0 {
		c.setFlags(FlagCarry)
	}
	if (c.A^res)&(b^res)&0x80 != 0 {
		c.setFlags(FlagOverflow)
	}
	c.A = res
	c.setZN(c.A)
}

func (c *CPU) compare(a, b uint8) {
	c.setZN(a - b)
	if a >= b {
		c.setFlags(FlagCarry)
	} else {
		c.clearFlags(FlagCarry)
	}
}

// rmw applies f to the value at the operand address (or the
// accumulator), reproducing the dummy write real 6502 hardware
// performs on memory operands: the unmodified value is written back
// before the modified one.
func (c *CPU) rmw(mode uint8, f func(uint8) uint8) {
	if mode == modeAccumulator {
		c.A = f(c.A)
		return
	}
	addr, _ := c.operandAddr(mode)
	old := c.read(addr)
	c.write(addr, old)
	c.write(addr, f(old))
}

func (c *CPU) ADC(mode uint8) { c.addWithCarry(c.readOperand(mode)) }
func (c *CPU) SBC(mode uint8) { c.addWithCarry(^c.readOperand(mode)) }

func (c *CPU) AND(mode uint8) { c.A &= c.readOperand(mode); c.setZN(c.A) }
func (c *CPU) ORA(mode uint8) { c.A |= c.readOperand(mode); c.setZN(c.A) }
func (c *CPU) EOR(mode uint8) { c.A ^= c.readOperand(mode); c.setZN(c.A) }

func (c *CPU) ASL(mode uint8) {
	var carry bool
	c.rmw(mode, func(v uint8) uint8 {
		carry = v&0x80 != 0
		nv := v << 1
		c.setZN(nv)
		return nv
	})
	if carry {
		c.setFlags(FlagCarry)
	} else {
		c.clearFlags(FlagCarry)
	}
}

func (c *CPU) LSR(mode uint8) {
	var carry bool
	c.rmw(mode, func(v uint8) uint8 {
		carry = v&1 != 0
		nv := v >> 1
		c.setZN(nv)
		return nv
	})
	if carry {
		c.setFlags(FlagCarry)
	} else {
		c.clearFlags(FlagCarry)
	}
}

func (c *CPU) ROL(mode uint8) {
	var carry bool
	c.rmw(mode, func(v uint8) uint8 {
		carry = v&0x80 != 0
		nv := bits.RotateLeft8(v, 1)&^1 | (c.Status & FlagCarry)
		c.setZN(nv)
		return nv
	})
	if carry {
		c.setFlags(FlagCarry)
	} else {
		c.clearFlags(FlagCarry)
	}
}

func (c *CPU) ROR(mode uint8) {
	var carry bool
	c.rmw(mode, func(v uint8) uint8 {
		carry = v&1 != 0
		nv := (v >> 1) | ((c.Status & FlagCarry) << 7)
		c.setZN(nv)
		return nv
	})
	if carry {
		c.setFlags(FlagCarry)
	} else {
		c.clearFlags(FlagCarry)
	}
}

func (c *CPU) BCC(mode uint8) { c.branch(FlagCarry, false) }
func (c *CPU) BCS(mode uint8) { c.branch(FlagCarry, true) }
func (c *CPU) BEQ(mode uint8) { c.branch(FlagZero, true) }
func (c *CPU) BNE(mode uint8) { c.branch(FlagZero, false) }
func (c *CPU) BMI(mode uint8) { c.branch(FlagNegative, true) }
func (c *CPU) BPL(mode uint8) { c.branch(FlagNegative, false) }
func (c *CPU) BVC(mode uint8) { c.branch(FlagOverflow, false) }
func (c *CPU) BVS(mode uint8) { c.branch(FlagOverflow, true) }

func (c *CPU) BIT(mode uint8) {
	v := c.readOperand(mode)
	c.clearFlags(FlagZero | FlagOverflow | FlagNegative)
	if v&c.A == 0 {
		c.setFlags(FlagZero)
	}
	c.setFlags(v & (FlagNegative | FlagOverflow))
}

func (c *CPU) BRK(mode uint8) {
	c.PC++ // BRK is logically 2 bytes; the 2nd is a padding byte
	c.pushAddress(c.PC)
	c.pushByte(c.Status | FlagBreak)
	c.setFlags(FlagInterrupt)
	c.PC = c.read16(vectorBRK)
}

func (c *CPU) CLC(mode uint8) { c.clearFlags(FlagCarry) }
func (c *CPU) CLD(mode uint8) { c.clearFlags(FlagDecimal) }
func (c *CPU) CLI(mode uint8) { c.clearFlags(FlagInterrupt) }
func (c *CPU) CLV(mode uint8) { c.clearFlags(FlagOverflow) }
func (c *CPU) SEC(mode uint8) { c.setFlags(FlagCarry) }
func (c *CPU) SED(mode uint8) { c.setFlags(FlagDecimal) }
func (c *CPU) SEI(mode uint8) { c.setFlags(FlagInterrupt) }

func (c *CPU) CMP(mode uint8) { c.compare(c.A, c.readOperand(mode)) }
func (c *CPU) CPX(mode uint8) { c.compare(c.X, c.readOperand(mode)) }
func (c *CPU) CPY(mode uint8) { c.compare(c.Y, c.readOperand(mode)) }

func (c *CPU) DEC(mode uint8) { c.rmw(mode, func(v uint8) uint8 { nv := v - 1; c.setZN(nv); return nv }) }
func (c *CPU) INC(mode uint8) { c.rmw(mode, func(v uint8) uint8 { nv := v + 1; c.setZN(nv); return nv }) }

func (c *CPU) DEX(mode uint8) { c.X--; c.setZN(c.X) }
func (c *CPU) DEY(mode uint8) { c.Y--; c.setZN(c.Y) }
func (c *CPU) INX(mode uint8) { c.X++; c.setZN(c.X) }
func (c *CPU) INY(mode uint8) { c.Y++; c.setZN(c.Y) }

func (c *CPU) JMP(mode uint8) {
	addr, _ := c.operandAddr(mode)
	c.PC = addr
}

func (c *CPU) JSR(mode uint8) {
	c.pushAddress(c.PC + 1)
	addr, _ := c.operandAddr(mode)
	c.PC = addr
}

func (c *CPU) RTS(mode uint8) { c.PC = c.popAddress() + 1 }
func (c *CPU) RTI(mode uint8) {
	c.Status = (c.popByte() &^ FlagBreak) | flagUnused
	c.PC = c.popAddress()
}

func (c *CPU) LDA(mode uint8) { c.A = c.readOperand(mode); c.setZN(c.A) }
func (c *CPU) LDX(mode uint8) { c.X = c.readOperand(mode); c.setZN(c.X) }
func (c *CPU) LDY(mode uint8) { c.Y = c.readOperand(mode); c.setZN(c.Y) }

func (c *CPU) STA(mode uint8) { addr, _ := c.operandAddr(mode); c.write(addr, c.A) }
func (c *CPU) STX(mode uint8) { addr, _ := c.operandAddr(mode); c.write(addr, c.X) }
func (c *CPU) STY(mode uint8) { addr, _ := c.operandAddr(mode); c.write(addr, c.Y) }

func (c *CPU) TAX(mode uint8) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) TAY(mode uint8) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) TSX(mode uint8) { c.X = c.SP; c.setZN(c.X) }
func (c *CPU) TXA(mode uint8) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) TXS(mode uint8) { c.SP = c.X }
func (c *CPU) TYA(mode uint8) { c.A = c.Y; c.setZN(c.A) }

func (c *CPU) PHA(mode uint8) { c.pushByte(c.A) }
func (c *CPU) PHP(mode uint8) { c.pushByte(c.Status | FlagBreak) }
func (c *CPU) PLA(mode uint8) { c.A = c.popByte(); c.setZN(c.A) }
func (c *CPU) PLP(mode uint8) { c.Status = (c.popByte() &^ FlagBreak) | flagUnused }

func (c *CPU) NOP(mode uint8) {
	if mode != modeImplicit {
		c.readOperand(mode) // undocumented NOPs still perform their read
	}
}

// LAX loads both A and X from memory in one undocumented opcode.
func (c *CPU) LAX(mode uint8) {
	v := c.readOperand(mode)
	c.A, c.X = v, v
	c.setZN(v)
}

// SAX stores A&X to memory without touching flags.
func (c *CPU) SAX(mode uint8) {
	addr, _ := c.operandAddr(mode)
	c.write(addr, c.A&c.X)
}

// DCM (DCP) decrements memory then compares the result against A.
func (c *CPU) DCM(mode uint8) {
	c.rmw(mode, func(v uint8) uint8 { return v - 1 })
	addr, _ := c.operandAddr(mode)
	c.compare(c.A, c.read(addr))
}

// ISB (ISC) increments memory then subtracts the result from A with
// carry/overflow, as if INC followed by SBC.
func (c *CPU) ISB(mode uint8) {
	c.rmw(mode, func(v uint8) uint8 { return v + 1 })
	addr, _ := c.operandAddr(mode)
	c.addWithCarry(^c.read(addr))
}
