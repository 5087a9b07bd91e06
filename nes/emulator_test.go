package nes

import "testing"

// buildROM synthesizes a minimal NROM cartridge whose reset vector
// points at the start of PRG ROM, preloaded with program bytes.
func buildROM(t *testing.T, program []uint8) []byte {
	t.Helper()
	h := []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, 16384)
	copy(prg, program)
	prg[0x3FFC] = 0x00 // reset vector -> $8000
	prg[0x3FFD] = 0x80
	rom := append(h, prg...)
	rom = append(rom, make([]byte, 8192)...)
	return rom
}

func TestNewRejectsBadHeader(t *testing.T) {
	if _, err := New([]byte("not a rom")); err == nil {
		t.Fatalf("expected error for malformed ROM")
	}
}

func TestStepExecutesInstructionAndAdvancesPPU(t *testing.T) {
	e, err := New(buildROM(t, []uint8{0xEA})) // NOP
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.cpu.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want 0x8000", e.cpu.PC)
	}
	e.Step()
	if e.cpu.PC != 0x8001 {
		t.Errorf("PC after NOP = %#04x, want 0x8001", e.cpu.PC)
	}
}

func TestOAMDMAStallsCPU(t *testing.T) {
	// LDA #$00; STA $4014 triggers a DMA from page $00.
	e, err := New(buildROM(t, []uint8{0xA9, 0x00, 0x8D, 0x14, 0x40, 0xEA}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Step() // LDA
	e.Step() // STA $4014, schedules the DMA stall
	pcAfterDMATrigger := e.cpu.PC
	e.Step() // should be consumed entirely by the stall, no new instruction
	if e.cpu.PC != pcAfterDMATrigger {
		t.Errorf("PC advanced during stalled cycles: %#04x -> %#04x", pcAfterDMATrigger, e.cpu.PC)
	}
}

func TestSetButtonPressedRoutesToCorrectPad(t *testing.T) {
	e, err := New(buildROM(t, []uint8{0xEA}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.SetButtonPressed(Pad1, ButtonA, true)
	e.joypad1.Write(1)
	e.joypad1.Write(0)
	if got := e.joypad1.Read(); got != 1 {
		t.Errorf("pad1 button A = %d, want 1", got)
	}
	if got := e.joypad2.Read(); got != 0 {
		t.Errorf("pad2 should be unaffected, got %d", got)
	}
}

func TestBufferSizeMatchesResolution(t *testing.T) {
	e, err := New(buildROM(t, []uint8{0xEA}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := len(e.Buffer()), Width*Height*3; got != want {
		t.Errorf("len(Buffer()) = %d, want %d", got, want)
	}
}
