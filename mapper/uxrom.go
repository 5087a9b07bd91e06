package mapper

import "github.com/nesbox/gonesulator/cartridge"

func init() {
	Register(2, newUxROM)
}

// uxrom implements mapper 2 (UxROM): a switchable 16KB PRG bank at
// $8000-$BFFF, with the last bank fixed at $C000-$FFFF. CHR is always
// 8KB of RAM.
type uxrom struct {
	prg       []uint8
	chr       []uint8
	prgRAM    [prgRAMSize]uint8
	bank      uint8
	lastBank  uint8
	mirroring Mirroring
}

func newUxROM(c *cartridge.Cartridge) Mapper {
	chr := c.CHR
	if len(chr) == 0 {
		chr = make([]uint8, 0x2000)
	}
	nbanks := uint8(len(c.PRG) / 0x4000)
	return &uxrom{
		prg:       c.PRG,
		chr:       chr,
		lastBank:  nbanks - 1,
		mirroring: headerMirroring(c),
	}
}

func (m *uxrom) ID() uint16         { return 2 }
func (m *uxrom) Name() string       { return "UxROM" }
func (m *uxrom) Mirroring() Mirroring { return m.mirroring }

func (m *uxrom) CPURead(addr uint16) uint8 {
	if len(m.prg) == 0 {
		return 0
	}
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000 && addr < 0xC000:
		off := (uint32(m.bank)*0x4000 + uint32(addr-0x8000)) % uint32(len(m.prg))
		return m.prg[off]
	case addr >= 0xC000:
		off := (uint32(m.lastBank)*0x4000 + uint32(addr-0xC000)) % uint32(len(m.prg))
		return m.prg[off]
	}
	return 0
}

func (m *uxrom) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		m.prgRAM[addr-0x6000] = val
	case addr >= 0x8000:
		m.bank = val & 0x0F
	}
}

func (m *uxrom) PPURead(addr uint16) uint8 {
	if len(m.chr) == 0 {
		return 0
	}
	return m.chr[uint32(addr)%uint32(len(m.chr))]
}

func (m *uxrom) PPUWrite(addr uint16, val uint8) {
	if len(m.chr) == 0 {
		return
	}
	m.chr[uint32(addr)%uint32(len(m.chr))] = val
}
