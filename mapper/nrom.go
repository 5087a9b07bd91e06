package mapper

import "github.com/nesbox/gonesulator/cartridge"

func init() {
	Register(0, newNROM)
}

// nrom implements mapper 0 (NROM): fixed PRG, fixed CHR, no bank
// switching. 16KB PRG cartridges are mirrored across $8000-$FFFF.
type nrom struct {
	prg       []uint8
	chr       []uint8
	chrIsRAM  bool
	prgRAM    [prgRAMSize]uint8
	mirroring Mirroring
}

func newNROM(c *cartridge.Cartridge) Mapper {
	return &nrom{
		prg:       c.PRG,
		chr:       c.CHR,
		chrIsRAM:  c.ChrIsRAM,
		mirroring: headerMirroring(c),
	}
}

func (m *nrom) ID() uint16     { return 0 }
func (m *nrom) Name() string   { return "NROM" }
func (m *nrom) Mirroring() Mirroring { return m.mirroring }

func (m *nrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.prgRAM[addr-0x6000]
	case addr >= 0x8000:
		if len(m.prg) == 0 {
			return 0
		}
		return m.prg[int(addr-0x8000)%len(m.prg)]
	}
	return 0
}

func (m *nrom) CPUWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = val
	}
	// Writes to $8000-$FFFF have no effect: NROM has no registers.
}

func (m *nrom) PPURead(addr uint16) uint8 {
	if len(m.chr) == 0 {
		return 0
	}
	return m.chr[uint32(addr)%uint32(len(m.chr))]
}

func (m *nrom) PPUWrite(addr uint16, val uint8) {
	if m.chrIsRAM && len(m.chr) > 0 {
		m.chr[uint32(addr)%uint32(len(m.chr))] = val
	}
}
