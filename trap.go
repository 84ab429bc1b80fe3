package main

import "fmt"

// illegal is the abort value raised for RTI and the reserved opcode.
type illegal struct {
	pc, instr uint16
}

func (i illegal) String() string {
	return fmt.Sprintf("illegal instruction %04x at %04x", i.instr, i.pc)
}

// Trap vectors.
const (
	trapGETC  = 0x20 // read one key, no echo
	trapOUT   = 0x21 // write one character
	trapPUTS  = 0x22 // write a word string
	trapIN    = 0x23 // prompt for and read one key, echoed
	trapPUTSP = 0x24 // write a packed byte string
	trapHALT  = 0x25 // stop the machine
)

// TRAP 1111 0000 trapvect8
func (m *LC3) TRAP(instr uint16) {
	m.R[7] = m.PC

	switch instr & 0xff {
	case trapGETC:
		m.R[0] = uint16(m.bus.cons.ReadByte())
		m.setNZP(0)

	case trapOUT:
		m.bus.cons.WriteByte(byte(m.R[0]))
		m.bus.cons.Flush()

	case trapPUTS:
		for a := m.R[0]; ; a++ {
			w := m.bus.read16(a)
			if w == 0 {
				break
			}
			m.bus.cons.WriteByte(byte(w))
		}
		m.bus.cons.Flush()

	case trapIN:
		m.puts("Enter a character: ")
		b := m.bus.cons.ReadByte()
		m.bus.cons.WriteByte(b)
		m.bus.cons.Flush()
		m.R[0] = uint16(b)
		m.setNZP(0)

	case trapPUTSP:
		// two characters per word, low byte first; a zero word ends
		// the string, a zero high byte alone does not
		for a := m.R[0]; ; a++ {
			w := m.bus.read16(a)
			if w == 0 {
				break
			}
			m.bus.cons.WriteByte(byte(w))
			if w>>8 != 0 {
				m.bus.cons.WriteByte(byte(w >> 8))
			}
		}
		m.bus.cons.Flush()

	case trapHALT:
		m.puts("HALT\n")
		m.running = false

	default:
		// unknown vectors return to the fetch loop
	}
}

func (m *LC3) puts(s string) {
	for i := 0; i < len(s); i++ {
		m.bus.cons.WriteByte(s[i])
	}
	m.bus.cons.Flush()
}
