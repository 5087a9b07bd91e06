// Package cartridge implements support for the iNES/NES2.0 ROM image
// format. https://www.nesdev.org/wiki/INES
package cartridge

import (
	"errors"
	"fmt"
)

const (
	trainerSize  = 512
	prgBlockSize = 16384
	chrBlockSize = 8192
)

var (
	// ErrBadHeader is returned when the image is too short to contain
	// a header, or the header's magic bytes don't match "NES\x1A".
	ErrBadHeader = errors.New("bad rom header")
	// ErrTruncatedROM is returned when the header declares more PRG or
	// CHR data than the image actually contains.
	ErrTruncatedROM = errors.New("truncated rom")
	// ErrUnsupportedMapper is returned when the header's mapper id
	// names a mapper this emulator doesn't implement.
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)

// Cartridge holds the decoded contents of a ROM image: PRG/CHR banks,
// mirroring mode and mapper id. It owns no behavior of its own -
// mapper.Get binds it to a concrete mapper.Mapper.
type Cartridge struct {
	h       *header
	Trainer []byte
	PRG     []byte
	CHR     []byte
	ChrIsRAM bool
}

// Load parses romBytes as an iNES/NES2.0 image and returns a
// Cartridge, or an error from ErrBadHeader/ErrTruncatedROM.
func Load(romBytes []byte) (*Cartridge, error) {
	if len(romBytes) < headerSize {
		return nil, fmt.Errorf("header truncated (%d bytes): %w", len(romBytes), ErrBadHeader)
	}

	h := parseHeader(romBytes[:headerSize])
	if !h.isValidMagic() {
		return nil, fmt.Errorf("bad magic %q: %w", h.constant, ErrBadHeader)
	}

	off := headerSize
	c := &Cartridge{h: h}

	if h.hasTrainer() {
		if len(romBytes) < off+trainerSize {
			return nil, fmt.Errorf("trainer truncated: %w", ErrTruncatedROM)
		}
		c.Trainer = romBytes[off : off+trainerSize]
		off += trainerSize
	}

	prgLen := int(h.prgSize) * prgBlockSize
	if len(romBytes) < off+prgLen {
		return nil, fmt.Errorf("prg data truncated (want %d, have %d): %w", prgLen, len(romBytes)-off, ErrTruncatedROM)
	}
	c.PRG = romBytes[off : off+prgLen]
	off += prgLen

	if h.chrSize == 0 {
		c.CHR = make([]byte, chrBlockSize)
		c.ChrIsRAM = true
	} else {
		chrLen := int(h.chrSize) * chrBlockSize
		if len(romBytes) < off+chrLen {
			return nil, fmt.Errorf("chr data truncated (want %d, have %d): %w", chrLen, len(romBytes)-off, ErrTruncatedROM)
		}
		c.CHR = romBytes[off : off+chrLen]
	}

	return c, nil
}

// MapperID returns the numeric mapper id encoded in the header.
func (c *Cartridge) MapperID() uint16 {
	return c.h.mapperID()
}

// Mirroring returns the nametable mirroring mode declared by the
// header. Mappers that control mirroring dynamically (MMC1) ignore
// this value and take mirroring from their own control register.
func (c *Cartridge) Mirroring() int {
	return c.h.mirroring()
}

// HasBatteryRAM reports whether the cartridge declares battery-backed
// PRG RAM. No save-state persistence is implemented; this is surfaced
// for host shells that want to show a "battery" indicator.
func (c *Cartridge) HasBatteryRAM() bool {
	return c.h.hasBatteryRAM()
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("%s mapper=%d mirroring=%d prg=%dKB chr=%dKB(ram=%v)",
		c.h, c.MapperID(), c.Mirroring(), len(c.PRG)/1024, len(c.CHR)/1024, c.ChrIsRAM)
}
