package main

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LoadImage reads the flat binary image at path into memory. The
// first big endian word is the origin; the remaining words are
// stored from there, stopping at the top of memory. Registers are
// not touched, so images overlay in the order they are loaded.
func (m *LC3) LoadImage(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(buf) < 2 {
		return fmt.Errorf("%s: image shorter than its origin word", path)
	}
	origin := binary.BigEndian.Uint16(buf)
	buf = buf[2:]

	max := 1<<16 - int(origin) // words of memory above the origin
	for i := 0; i < max && 2*i+1 < len(buf); i++ {
		m.bus.write16(origin+uint16(i), binary.BigEndian.Uint16(buf[2*i:]))
	}
	return nil
}
