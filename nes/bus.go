// Package nes wires the CPU, PPU, APU, controllers and cartridge
// mapper into a single steppable emulator.
package nes

import (
	"github.com/nesbox/gonesulator/apu"
	"github.com/nesbox/gonesulator/joypad"
	"github.com/nesbox/gonesulator/mapper"
	"github.com/nesbox/gonesulator/ppu"
)

// Bus decodes the CPU's 16-bit address space across 2KB of internal
// RAM, the PPU and APU register windows, the two controller ports,
// and the cartridge mapper.
type Bus struct {
	ram [0x0800]uint8

	ppu      *ppu.PPU
	apu      *apu.APU
	mapper   mapper.Mapper
	joypad1  *joypad.Joypad
	joypad2  *joypad.Joypad

	cycles uint64 // total CPU cycles elapsed, for OAM DMA parity

	dmaStall int // pending stall cycles to hand back to the CPU
}

func newBus(m mapper.Mapper, p *ppu.PPU, a *apu.APU, j1, j2 *joypad.Joypad) *Bus {
	return &Bus{mapper: m, ppu: p, apu: a, joypad1: j1, joypad2: j2}
}

func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr%0x0800]
	case addr < 0x4000:
		return b.ppu.ReadRegister(addr)
	case addr == 0x4015:
		return b.apu.ReadRegister(addr)
	case addr == 0x4016:
		return b.joypad1.Read()
	case addr == 0x4017:
		return b.joypad2.Read()
	case addr < 0x4018:
		return 0
	case addr < 0x4020:
		return 0 // unused test-mode registers
	default:
		return b.mapper.CPURead(addr)
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr%0x0800] = val
	case addr < 0x4000:
		b.ppu.WriteRegister(addr, val)
	case addr == 0x4014:
		b.oamDMA(val)
	case addr == 0x4016:
		b.joypad1.Write(val)
		b.joypad2.Write(val)
	case addr == 0x4017:
		b.apu.WriteRegister(addr, val)
	case addr < 0x4018:
		b.apu.WriteRegister(addr, val)
	case addr < 0x4020:
		// unused test-mode registers
	default:
		b.mapper.CPUWrite(addr, val)
	}
}

// oamDMA copies page*$100..page*$100+$FF into OAM. It costs 513
// cycles, or 514 if it starts on an odd CPU cycle.
// https://www.nesdev.org/wiki/DMA
func (b *Bus) oamDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(b.Read(base + uint16(i)))
	}
	b.dmaStall = 513
	if b.cycles%2 != 0 {
		b.dmaStall++
	}
}

// takeDMAStall returns and clears any cycles an OAM DMA charged the
// CPU since the last call.
func (b *Bus) takeDMAStall() int {
	n := b.dmaStall
	b.dmaStall = 0
	return n
}
