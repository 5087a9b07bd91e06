// Package mapper implements and registers the cartridge mapper chips
// referenced numerically by iNES/NES2.0 ROM headers.
package mapper

import (
	"fmt"

	"github.com/nesbox/gonesulator/cartridge"
)

// Mirroring identifies which nametable mirroring mode the PPU bus
// should use when resolving a VRAM address.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingleLow
	MirrorSingleHigh
	MirrorFourScreen
)

// Mapper decodes CPU and PPU addresses into cartridge bank offsets. A
// mapper owns its cartridge's PRG/CHR/PRG-RAM bytes.
type Mapper interface {
	ID() uint16
	Name() string
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, val uint8)
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, val uint8)
	Mirroring() Mirroring
}

// Constructor builds a Mapper bound to a parsed cartridge.
type Constructor func(c *cartridge.Cartridge) Mapper

var registry = map[uint16]Constructor{}

// Register associates a mapper id with a constructor. Called from
// each mapper file's init().
func Register(id uint16, ctor Constructor) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper id %d already registered", id))
	}
	registry[id] = ctor
}

// Get builds the Mapper named by the cartridge's header mapper id, or
// returns cartridge.ErrUnsupportedMapper if none is registered.
func Get(c *cartridge.Cartridge) (Mapper, error) {
	id := c.MapperID()
	ctor, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", cartridge.ErrUnsupportedMapper, id)
	}
	return ctor(c), nil
}

func headerMirroring(c *cartridge.Cartridge) Mirroring {
	switch c.Mirroring() {
	case cartridge.MirrorVertical:
		return MirrorVertical
	case cartridge.MirrorFourScreen:
		return MirrorFourScreen
	default:
		return MirrorHorizontal
	}
}

const prgRAMSize = 0x2000 // 8KB at $6000-$7FFF, present on every supported mapper
