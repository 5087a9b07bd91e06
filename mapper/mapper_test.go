package mapper

import (
	"errors"
	"testing"

	"github.com/nesbox/gonesulator/cartridge"
)

func makeCartridge(t *testing.T, mapperID uint8, prgBanks, chrBanks int) *cartridge.Cartridge {
	t.Helper()
	h := []byte{'N', 'E', 'S', 0x1A, byte(prgBanks), byte(chrBanks), mapperID << 4, mapperID & 0xF0, 0, 0, 0, 0, 0, 0, 0, 0}
	rom := append(h, make([]byte, prgBanks*16384+chrBanks*8192)...)
	c, err := cartridge.Load(rom)
	if err != nil {
		t.Fatalf("cartridge.Load: %v", err)
	}
	return c
}

func TestGetUnsupportedMapper(t *testing.T) {
	c := makeCartridge(t, 99, 1, 1)
	if _, err := Get(c); !errors.Is(err, cartridge.ErrUnsupportedMapper) {
		t.Errorf("got err %v, wanted ErrUnsupportedMapper", err)
	}
}

func TestNROMMirroring(t *testing.T) {
	c := makeCartridge(t, 0, 1, 1)
	c.PRG[0] = 0x42
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got, want := m.CPURead(0x8000), uint8(0x42); got != want {
		t.Errorf("CPURead(0x8000) = %#x, want %#x", got, want)
	}
	if got, want := m.CPURead(0xC000), uint8(0x42); got != want {
		t.Errorf("16KB PRG should mirror: CPURead(0xC000) = %#x, want %#x", got, want)
	}
}

func TestNROMPrgRAM(t *testing.T) {
	c := makeCartridge(t, 0, 2, 1)
	m, _ := Get(c)
	m.CPUWrite(0x6123, 0x55)
	if got, want := m.CPURead(0x6123), uint8(0x55); got != want {
		t.Errorf("PRG-RAM round trip = %#x, want %#x", got, want)
	}
}

func TestUxROMBankSwitch(t *testing.T) {
	c := makeCartridge(t, 2, 4, 0)
	c.PRG[0] = 0xAA                   // bank 0, offset 0 at $8000
	c.PRG[2*16384] = 0xBB             // bank 2, offset 0
	c.PRG[3*16384] = 0xCC             // last bank, fixed at $C000

	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got, want := m.CPURead(0xC000), uint8(0xCC); got != want {
		t.Errorf("fixed last bank: CPURead(0xC000) = %#x, want %#x", got, want)
	}
	if got, want := m.CPURead(0x8000), uint8(0xAA); got != want {
		t.Errorf("initial bank 0: CPURead(0x8000) = %#x, want %#x", got, want)
	}

	m.CPUWrite(0x8000, 2)
	if got, want := m.CPURead(0x8000), uint8(0xBB); got != want {
		t.Errorf("after bank select 2: CPURead(0x8000) = %#x, want %#x", got, want)
	}
}

func TestCNROMChrBankSwitch(t *testing.T) {
	c := makeCartridge(t, 3, 1, 4)
	c.CHR[0] = 0x11
	c.CHR[1*8192] = 0x22
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got, want := m.PPURead(0), uint8(0x11); got != want {
		t.Errorf("bank 0: PPURead(0) = %#x, want %#x", got, want)
	}
	m.CPUWrite(0x8000, 1)
	if got, want := m.PPURead(0), uint8(0x22); got != want {
		t.Errorf("after bank select 1: PPURead(0) = %#x, want %#x", got, want)
	}
}

func TestCNROMOutOfRangeBankDoesNotPanic(t *testing.T) {
	c := makeCartridge(t, 3, 1, 1) // only 1 CHR bank, chrBank can select 0-3
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	m.CPUWrite(0x8000, 3) // select bank 3, which does not exist
	if got := m.PPURead(0); got != 0 {
		t.Errorf("PPURead with out-of-range bank = %#x, want 0", got)
	}
	m.PPUWrite(0, 0x42) // must not panic either
}

// mmc1Write feeds a full byte through the 5-write serial shift
// register, one bit per write, LSB first.
func mmc1Write(m Mapper, addr uint16, val uint8) {
	for i := 0; i < 5; i++ {
		m.CPUWrite(addr, (val>>i)&1)
	}
}

func TestMMC1ControlAndMirroring(t *testing.T) {
	c := makeCartridge(t, 1, 2, 0)
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	mmc1Write(m, 0x8000, 0x03) // mirroring=3 (horizontal), prgMode=0, chrMode=0
	if got, want := m.Mirroring(), MirrorHorizontal; got != want {
		t.Errorf("Mirroring() = %v, want %v", got, want)
	}

	mmc1Write(m, 0x8000, 0x02) // mirroring=2 (vertical)
	if got, want := m.Mirroring(), MirrorVertical; got != want {
		t.Errorf("Mirroring() = %v, want %v", got, want)
	}
}

func TestMMC1ResetOnBit7(t *testing.T) {
	c := makeCartridge(t, 1, 2, 0)
	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	mi := m.(*mmc1)
	mi.CPUWrite(0x8000, 1)
	mi.CPUWrite(0x8000, 1)
	if mi.shiftCount != 2 {
		t.Fatalf("shiftCount = %d, want 2", mi.shiftCount)
	}

	mi.CPUWrite(0x8000, 0x80)
	if mi.shiftCount != 0 || mi.shift != 0x10 {
		t.Errorf("reset write should clear shift register, got count=%d shift=%#x", mi.shiftCount, mi.shift)
	}
	if mi.prgMode != 3 {
		t.Errorf("reset write should force prgMode=3, got %d", mi.prgMode)
	}
}

func TestMMC1PrgBankSwitch(t *testing.T) {
	c := makeCartridge(t, 1, 4, 0)
	c.PRG[0] = 0xAA
	c.PRG[2*16384] = 0xBB // bank 2, selected below
	c.PRG[3*16384] = 0xFF // last bank for fix-last-bank default mode

	m, err := Get(c)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got, want := m.CPURead(0xC000), uint8(0xFF); got != want {
		t.Errorf("default fix-last-bank: CPURead(0xC000) = %#x, want %#x", got, want)
	}
	if got, want := m.CPURead(0x8000), uint8(0xAA); got != want {
		t.Errorf("bank 0 at $8000: CPURead(0x8000) = %#x, want %#x", got, want)
	}

	mmc1Write(m, 0xE000, 0x02) // PRG bank register = 2
	if got, want := m.CPURead(0x8000), uint8(0xBB); got != want {
		t.Errorf("after bank select 2: CPURead(0x8000) = %#x, want %#x", got, want)
	}
	if got, want := m.CPURead(0xC000), uint8(0xFF); got != want {
		t.Errorf("last bank stays fixed: CPURead(0xC000) = %#x, want %#x", got, want)
	}
}
