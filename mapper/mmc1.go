package mapper

import "github.com/nesbox/gonesulator/cartridge"

func init() {
	Register(1, newMMC1)
}

// mmc1 implements mapper 1 (MMC1): a serial 5-bit shift register
// clocked by writes to $8000-$FFFF. The fifth write commits the
// accumulated value into one of four internal registers selected by
// bits 13-14 of the write address, then the shift register resets.
// Any write with bit 7 set resets the shift register immediately and
// forces PRG mode to "fix last bank".
type mmc1 struct {
	prg    []uint8
	chr    []uint8
	chrIsRAM bool
	prgRAM [prgRAMSize]uint8

	shift      uint8
	shiftCount uint8

	ctrlMirroring uint8 // 0=one-low,1=one-high,2=vertical,3=horizontal
	prgMode       uint8 // 0/1=32KB, 2=fix first, 3=fix last
	chrMode       uint8 // 0=8KB, 1=4KB

	chrBank0, chrBank1 uint8
	prgBank            uint8
	prgRAMEnabled      bool

	prgBanks uint8
}

func newMMC1(c *cartridge.Cartridge) Mapper {
	chr := c.CHR
	if len(chr) == 0 {
		chr = make([]uint8, 0x2000)
	}
	return &mmc1{
		prg:           c.PRG,
		chr:           chr,
		chrIsRAM:      c.ChrIsRAM,
		shift:         0x10,
		prgMode:       3,
		prgRAMEnabled: true,
		prgBanks:      uint8(len(c.PRG) / 0x4000),
	}
}

func (m *mmc1) ID() uint16   { return 1 }
func (m *mmc1) Name() string { return "MMC1" }

func (m *mmc1) Mirroring() Mirroring {
	switch m.ctrlMirroring {
	case 0:
		return MirrorSingleLow
	case 1:
		return MirrorSingleHigh
	case 2:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

func (m *mmc1) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		if m.prgRAMEnabled {
			return m.prgRAM[addr-0x6000]
		}
		return 0
	case addr >= 0x8000 && len(m.prg) == 0:
		return 0
	case addr >= 0x8000 && addr < 0xC000:
		bank := m.prgBank
		switch m.prgMode {
		case 0, 1:
			bank &^= 1
		case 2:
			bank = 0
		}
		return m.prg[(uint32(bank)*0x4000+uint32(addr-0x8000))%uint32(len(m.prg))]
	case addr >= 0xC000:
		bank := m.prgBank
		switch m.prgMode {
		case 0, 1:
			bank |= 1
		case 3:
			bank = m.prgBanks - 1
		}
		return m.prg[(uint32(bank)*0x4000+uint32(addr-0xC000))%uint32(len(m.prg))]
	}
	return 0
}

func (m *mmc1) CPUWrite(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		if m.prgRAMEnabled {
			m.prgRAM[addr-0x6000] = val
		}
		return
	}
	if addr < 0x8000 {
		return
	}

	if val&0x80 != 0 {
		m.shift = 0x10
		m.shiftCount = 0
		m.prgMode = 3
		return
	}

	m.shift = (m.shift >> 1) | ((val & 1) << 4)
	m.shiftCount++
	if m.shiftCount != 5 {
		return
	}

	v := m.shift
	switch {
	case addr < 0xA000:
		m.ctrlMirroring = v & 0x03
		m.prgMode = (v >> 2) & 0x03
		m.chrMode = (v >> 4) & 0x01
	case addr < 0xC000:
		m.chrBank0 = v & 0x1F
	case addr < 0xE000:
		m.chrBank1 = v & 0x1F
	default:
		m.prgBank = v & 0x0F
		m.prgRAMEnabled = v&0x10 == 0
	}

	m.shift = 0x10
	m.shiftCount = 0
}

func (m *mmc1) chrOffset(addr uint16) uint32 {
	if m.chrMode == 0 {
		bank := m.chrBank0 &^ 1
		if addr >= 0x1000 {
			bank |= 1
		}
		return uint32(bank)*0x1000 + uint32(addr&0x0FFF)
	}
	if addr < 0x1000 {
		return uint32(m.chrBank0)*0x1000 + uint32(addr)
	}
	return uint32(m.chrBank1)*0x1000 + uint32(addr-0x1000)
}

func (m *mmc1) PPURead(addr uint16) uint8 {
	off := m.chrOffset(addr)
	if int(off) >= len(m.chr) {
		return 0
	}
	return m.chr[off]
}

func (m *mmc1) PPUWrite(addr uint16, val uint8) {
	if !m.chrIsRAM {
		return
	}
	off := m.chrOffset(addr)
	if int(off) < len(m.chr) {
		m.chr[off] = val
	}
}
