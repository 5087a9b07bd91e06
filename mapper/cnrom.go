package mapper

import "github.com/nesbox/gonesulator/cartridge"

func init() {
	Register(3, newCNROM)
}

// cnrom implements mapper 3 (CNROM): fixed PRG (mirrored if 16KB, as
// NROM), switchable 8KB CHR bank.
type cnrom struct {
	prg       []uint8
	chr       []uint8
	chrIsRAM  bool
	prgRAM    [prgRAMSize]uint8
	chrBank   uint8
	mirroring Mirroring
}

func newCNROM(c *cartridge.Cartridge) Mapper {
	return &cnrom{
		prg:       c.PRG,
		chr:       c.CHR,
		chrIsRAM:  c.ChrIsRAM,
		mirroring: headerMirroring(c),
	}
}

func (m *cnrom) ID() uint16         { return 3 }
func (m *cnrom) Name() string       { return "CNROM" }
func (m *cnrom) Mirroring() Mirroring { return m.mirroring }

func (m *cnrom) CPURead(addr uint16) uint8 {
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

func (m *cnrom) CPUWrite(addr uint16, val uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		m.prgRAM[addr-0x6000] = val
	case addr >= 0x8000:
		m.chrBank = val & 0x03
	}
}

func (m *cnrom) chrOffset(addr uint16) uint32 {
	if len(m.chr) == 0 {
		return 0
	}
	return (uint32(m.chrBank)*0x2000 + uint32(addr)) % uint32(len(m.chr))
}

func (m *cnrom) PPURead(addr uint16) uint8 {
	if len(m.chr) == 0 {
		return 0
	}
	return m.chr[m.chrOffset(addr)]
}

func (m *cnrom) PPUWrite(addr uint16, val uint8) {
	if m.chrIsRAM && len(m.chr) > 0 {
		m.chr[m.chrOffset(addr)] = val
	}
}
