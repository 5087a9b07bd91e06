package ppu

import "github.com/nesbox/gonesulator/mapper"

// Bus is the PPU's 14-bit address space: pattern tables at
// $0000-$1FFF (routed to the mapper's CHR banks), two 1KB nametables
// mirrored across $2000-$3EFF, and 32 bytes of palette RAM mirrored
// across $3F00-$3FFF.
type Bus struct {
	m    mapper.Mapper
	vram [0x0800]uint8
	pal  [0x0020]uint8
}

func NewBus(m mapper.Mapper) *Bus {
	return &Bus{m: m}
}

func (b *Bus) Read(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return b.m.PPURead(addr)
	case addr < 0x3F00:
		return b.vram[b.nametableIndex(addr)]
	default:
		return b.pal[paletteIndex(addr)]
	}
}

func (b *Bus) Write(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		b.m.PPUWrite(addr, val)
	case addr < 0x3F00:
		b.vram[b.nametableIndex(addr)] = val
	default:
		b.pal[paletteIndex(addr)] = val
	}
}

// nametableIndex maps a $2000-$3EFF address down into the 2KB of
// physical nametable RAM according to the cartridge's mirroring mode.
func (b *Bus) nametableIndex(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x0400
	offset := a % 0x0400

	switch b.m.Mirroring() {
	case mapper.MirrorVertical:
		return (table%2)*0x0400 + offset
	case mapper.MirrorHorizontal:
		return (table/2)*0x0400 + offset
	case mapper.MirrorSingleLow:
		return offset
	case mapper.MirrorSingleHigh:
		return 0x0400 + offset
	default: // four-screen: only 2KB of physical RAM backs it here
		return (table%2)*0x0400 + offset
	}
}

// paletteIndex folds the sprite-palette background-color mirrors
// ($3F10/$3F14/$3F18/$3F1C) onto their background counterparts.
func paletteIndex(addr uint16) uint16 {
	i := (addr - 0x3F00) % 0x20
	if i >= 0x10 && i%4 == 0 {
		i -= 0x10
	}
	return i
}
