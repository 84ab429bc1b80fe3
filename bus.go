package main

// Memory mapped keyboard registers.
const (
	KBSR = 0xfe00 // keyboard status; bit 15 set while a key is waiting
	KBDR = 0xfe02 // keyboard data; low byte holds the last key read
)

// BUS connects 64 KW of core memory and the memory mapped keyboard
// registers to the CPU.
type BUS struct {
	// 64 KW of core memory.
	core [1 << 16]uint16

	cons Console
}

// read16 reads addr from the bus. Reading KBSR polls the console: if
// a key is waiting it is consumed into KBDR and the ready bit raised,
// otherwise KBSR is cleared. Every other address is a plain load.
func (b *BUS) read16(addr uint16) uint16 {
	if addr == KBSR {
		if b.cons.Poll() {
			b.core[KBSR] = 1 << 15
			b.core[KBDR] = uint16(b.cons.ReadByte())
		} else {
			b.core[KBSR] = 0
		}
	}
	return b.core[addr]
}

// write16 writes v to addr on the bus.
func (b *BUS) write16(addr, v uint16) {
	b.core[addr] = v
}
