package ppu

import (
	"testing"

	"github.com/nesbox/gonesulator/cartridge"
	"github.com/nesbox/gonesulator/mapper"
)

func newTestPPU(t *testing.T) *PPU {
	t.Helper()
	h := []byte{'N', 'E', 'S', 0x1A, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	rom := append(h, make([]byte, 2*16384+1*8192)...)
	c, err := cartridge.Load(rom)
	if err != nil {
		t.Fatalf("cartridge.Load: %v", err)
	}
	m, err := mapper.Get(c)
	if err != nil {
		t.Fatalf("mapper.Get: %v", err)
	}
	return New(NewBus(m))
}

func TestWriteCTRLSetsNametableBits(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(RegCTRL, 0x03)
	if p.t.nametableX() != 1 || p.t.nametableY() != 1 {
		t.Errorf("t nametable bits = %d,%d, want 1,1", p.t.nametableX(), p.t.nametableY())
	}
}

func TestWriteScrollTwoWrites(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(RegSCROLL, 0b01111000) // coarse X = 0b01111, fine X = 0
	if p.w != true {
		t.Fatalf("write latch should flip to true after first write")
	}
	if p.t.coarseX() != 0b01111 || p.x != 0 {
		t.Errorf("coarseX=%05b x=%d, want 01111, 0", p.t.coarseX(), p.x)
	}

	p.WriteRegister(RegSCROLL, 0b01000011) // coarse Y = 0b01000, fine Y = 3
	if p.w != false {
		t.Fatalf("write latch should flip back to false after second write")
	}
	if p.t.coarseY() != 0b01000 || p.t.fineY() != 3 {
		t.Errorf("coarseY=%05b fineY=%03b, want 01000, 011", p.t.coarseY(), p.t.fineY())
	}
}

func TestWriteAddrLatchesVOnSecondWrite(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(RegADDR, 0x21)
	p.WriteRegister(RegADDR, 0x08)
	if p.v.data != 0x2108 {
		t.Errorf("v = %#04x, want 0x2108", p.v.data)
	}
}

func TestReadStatusClearsVBlankAndLatch(t *testing.T) {
	p := newTestPPU(t)
	p.status |= statusVBlank
	p.w = true

	got := p.ReadRegister(RegSTATUS)
	if got&statusVBlank == 0 {
		t.Errorf("first read should still report vblank set")
	}
	if p.status&statusVBlank != 0 {
		t.Errorf("vblank flag should clear after the read")
	}
	if p.w {
		t.Errorf("write latch should reset on status read")
	}
}

func TestOAMDataReadWrite(t *testing.T) {
	p := newTestPPU(t)
	p.WriteRegister(RegOAMADDR, 0x10)
	p.WriteRegister(RegOAMDATA, 0x42)
	if p.oamAddr != 0x11 {
		t.Errorf("OAMADDR should auto-increment, got %#x", p.oamAddr)
	}
	p.WriteRegister(RegOAMADDR, 0x10)
	if got := p.ReadRegister(RegOAMDATA); got != 0x42 {
		t.Errorf("OAMDATA read = %#x, want 0x42", got)
	}
}

func TestVBlankFlagAndNMIAtScanline241(t *testing.T) {
	p := newTestPPU(t)
	p.ctrl = ctrlNMIEnable
	p.scanline = scanlinePostRender
	p.dot = 340

	p.Step() // rolls over to scanline 241, dot 0
	p.Step() // dot 1: vblank set, NMI latched

	if p.status&statusVBlank == 0 {
		t.Fatalf("vblank flag not set at scanline 241 dot 1")
	}
	if !p.NMIAsserted() {
		t.Errorf("NMI should have been latched when ctrlNMIEnable is set")
	}
	if p.NMIAsserted() {
		t.Errorf("NMIAsserted should consume the edge, not stay latched")
	}
}

func TestPreRenderClearsStatusFlags(t *testing.T) {
	p := newTestPPU(t)
	p.status = statusVBlank | statusSprite0Hit | statusSpriteOverflow
	p.mask = maskShowBG
	p.scanline = scanlinePreRender
	p.dot = 0

	p.Step()

	if p.status != 0 {
		t.Errorf("status = %#02x, want 0 cleared at pre-render dot 1", p.status)
	}
}

func TestWriteOAMByteAdvancesAddr(t *testing.T) {
	p := newTestPPU(t)
	p.WriteOAMByte(0x01)
	p.WriteOAMByte(0x02)
	if p.oam[0] != 0x01 || p.oam[1] != 0x02 {
		t.Errorf("oam[0:2] = %#x, %#x, want 0x01, 0x02", p.oam[0], p.oam[1])
	}
	if p.oamAddr != 2 {
		t.Errorf("oamAddr = %d, want 2", p.oamAddr)
	}
}
