package nes

import (
	"fmt"

	"github.com/nesbox/gonesulator/apu"
	"github.com/nesbox/gonesulator/cartridge"
	"github.com/nesbox/gonesulator/cpu"
	"github.com/nesbox/gonesulator/joypad"
	"github.com/nesbox/gonesulator/mapper"
	"github.com/nesbox/gonesulator/ppu"
)

// Display resolution, matching the PPU's native output.
const (
	Width  = ppu.Width
	Height = ppu.Height
)

// Pad selects which controller port SetButtonPressed targets.
type Pad int

const (
	Pad1 Pad = iota
	Pad2
)

// Button re-exports joypad's bit positions so callers never need to
// import that package directly.
const (
	ButtonA      = joypad.A
	ButtonB      = joypad.B
	ButtonSelect = joypad.Select
	ButtonStart  = joypad.Start
	ButtonUp     = joypad.Up
	ButtonDown   = joypad.Down
	ButtonLeft   = joypad.Left
	ButtonRight  = joypad.Right
)

// Emulator is the façade over one loaded cartridge: construct it with
// New, then drive it with repeated Step calls and read frames back via
// Buffer.
type Emulator struct {
	cart *cartridge.Cartridge
	bus  *Bus

	cpu      *cpu.CPU
	ppu      *ppu.PPU
	apu      *apu.APU
	joypad1  *joypad.Joypad
	joypad2  *joypad.Joypad
}

// New loads romBytes and wires up a ready-to-run emulator.
func New(romBytes []byte) (*Emulator, error) {
	cart, err := cartridge.Load(romBytes)
	if err != nil {
		return nil, fmt.Errorf("nes: %w", err)
	}

	m, err := mapper.Get(cart)
	if err != nil {
		return nil, fmt.Errorf("nes: %w", err)
	}

	p := ppu.New(ppu.NewBus(m))
	a := apu.New()
	j1, j2 := &joypad.Joypad{}, &joypad.Joypad{}
	bus := newBus(m, p, a, j1, j2)
	c := cpu.New(bus)

	return &Emulator{
		cart:    cart,
		bus:     bus,
		cpu:     c,
		ppu:     p,
		apu:     a,
		joypad1: j1,
		joypad2: j2,
	}, nil
}

// Reset pulses the CPU's RESET line, matching a console power cycle
// short of re-parsing the cartridge.
func (e *Emulator) Reset() {
	e.cpu.Reset()
}

// Step runs exactly one CPU instruction (or services a pending
// interrupt), then ticks the PPU three dots per CPU cycle consumed.
// The APU is not stepped; only its IRQ line is sampled afterward. It
// does not throttle to real time; the host is responsible for pacing
// calls to Step.
func (e *Emulator) Step() {
	cycles := e.cpu.Step()
	if stall := e.bus.takeDMAStall(); stall > 0 {
		e.cpu.AddStallCycles(stall)
	}
	e.bus.cycles += uint64(cycles)

	for i := 0; i < cycles*3; i++ {
		e.ppu.Step()
		if e.ppu.NMIAsserted() {
			e.cpu.RequestNMI(true)
			e.cpu.RequestNMI(false)
		}
	}

	e.cpu.SetIRQ(e.apu.IRQAsserted())
}

// Buffer returns the PPU's RGB frame buffer, Width*Height*3 bytes,
// row-major. It is written in place as the PPU renders, so mid-frame
// it mixes the current and the previous frame.
func (e *Emulator) Buffer() []byte {
	return e.ppu.Buffer()
}

// SetButtonPressed updates one button's live state on the given
// controller port.
func (e *Emulator) SetButtonPressed(pad Pad, button int, pressed bool) {
	switch pad {
	case Pad1:
		e.joypad1.SetButtonPressed(button, pressed)
	case Pad2:
		e.joypad2.SetButtonPressed(button, pressed)
	}
}

// Cartridge exposes the loaded cartridge's metadata (mapper ID,
// mirroring, battery-backed save RAM) for diagnostics.
func (e *Emulator) Cartridge() *cartridge.Cartridge {
	return e.cart
}

// Samples returns n frames of PCM audio from the APU. The expanded
// APU stub always produces silence.
func (e *Emulator) Samples(n int) []byte {
	return e.apu.Samples(n)
}

// Cycles returns the total CPU cycle count since construction, used
// by host shells to pace one NTSC frame (~29,780 CPU cycles) per call.
func (e *Emulator) Cycles() uint64 {
	return e.bus.cycles
}

// CyclesPerFrame is the approximate CPU cycle count of one NTSC frame
// (1.789773 MHz / 60.0988 Hz).
const CyclesPerFrame = 29780

