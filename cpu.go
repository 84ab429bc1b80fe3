package main

import "fmt"

// LC3 is the machine: eight general registers, PC, condition codes,
// and the bus holding core memory and the console.
type LC3 struct {
	bus BUS

	R    [8]uint16 // R0-R7
	PC   uint16
	cond uint16

	pc      uint16 // address of the instruction being executed
	running bool
}

// pcStart is where user programs load by convention.
const pcStart = 0x3000

// Condition codes. Exactly one is set after any instruction that
// writes a general register.
const (
	FLAGP uint16 = 1 << iota
	FLAGZ
	FLAGN
)

// The 4 bit opcode space.
const (
	opBR = iota
	opADD
	opLD
	opST
	opJSR
	opAND
	opLDR
	opSTR
	opRTI
	opNOT
	opLDI
	opSTI
	opJMP
	opRES
	opLEA
	opTRAP
)

// Reset zero fills memory and registers and readies the machine to
// run from pcStart.
func (m *LC3) Reset() {
	m.bus.core = [1 << 16]uint16{}
	m.R = [8]uint16{}
	m.PC = pcStart
	m.cond = FLAGZ
	m.running = true
}

// Load writes words into memory starting at addr. Used by tests and
// benchmarks to seed a program without an image file.
func (m *LC3) Load(addr uint16, words ...uint16) {
	for i, w := range words {
		m.bus.write16(addr+uint16(i), w)
	}
}

// Run executes instructions until a HALT trap clears the run flag.
func (m *LC3) Run() error {
	for m.running {
		m.step()
	}
	return nil
}

func (m *LC3) step() {
	m.pc = m.PC
	instr := m.fetch16()

	switch instr >> 12 {
	case opBR:
		m.BR(instr)
	case opADD:
		m.ADD(instr)
	case opLD:
		m.LD(instr)
	case opST:
		m.ST(instr)
	case opJSR:
		m.JSR(instr)
	case opAND:
		m.AND(instr)
	case opLDR:
		m.LDR(instr)
	case opSTR:
		m.STR(instr)
	case opRTI, opRES:
		// no supervisor mode, both are fatal
		fmt.Printf("illegal instruction %04x\n", instr)
		m.printstate()
		panic(illegal{m.pc, instr})
	case opNOT:
		m.NOT(instr)
	case opLDI:
		m.LDI(instr)
	case opSTI:
		m.STI(instr)
	case opJMP:
		m.JMP(instr)
	case opLEA:
		m.LEA(instr)
	case opTRAP:
		m.TRAP(instr)
	}
}

// fetch16 reads the word at PC and advances PC past it. All PC
// relative offsets below are taken from the incremented PC.
func (m *LC3) fetch16() uint16 {
	val := m.bus.read16(m.PC)
	m.PC++
	return val
}

// BR 0000 nzp PCoffset9
func (m *LC3) BR(instr uint16) {
	if (instr>>9)&7&m.cond != 0 {
		m.PC += sext(instr&0x1ff, 9)
	}
}

// ADD 0001 DR SR1 0 00 SR2 / 0001 DR SR1 1 imm5
func (m *LC3) ADD(instr uint16) {
	dr := (instr >> 9) & 7
	sr1 := (instr >> 6) & 7
	if instr&(1<<5) != 0 {
		m.R[dr] = m.R[sr1] + sext(instr&0x1f, 5)
	} else {
		m.R[dr] = m.R[sr1] + m.R[instr&7]
	}
	m.setNZP(dr)
}

// LD 0010 DR PCoffset9
func (m *LC3) LD(instr uint16) {
	dr := (instr >> 9) & 7
	m.R[dr] = m.bus.read16(m.PC + sext(instr&0x1ff, 9))
	m.setNZP(dr)
}

// ST 0011 SR PCoffset9
func (m *LC3) ST(instr uint16) {
	m.bus.write16(m.PC+sext(instr&0x1ff, 9), m.R[(instr>>9)&7])
}

// JSR 0100 1 PCoffset11 / JSRR 0100 0 00 BaseR 000000
func (m *LC3) JSR(instr uint16) {
	m.R[7] = m.PC
	if instr&(1<<11) != 0 {
		m.PC += sext(instr&0x7ff, 11)
	} else {
		m.PC = m.R[(instr>>6)&7]
	}
}

// AND 0101 DR SR1 0 00 SR2 / 0101 DR SR1 1 imm5
func (m *LC3) AND(instr uint16) {
	dr := (instr >> 9) & 7
	sr1 := (instr >> 6) & 7
	if instr&(1<<5) != 0 {
		m.R[dr] = m.R[sr1] & sext(instr&0x1f, 5)
	} else {
		m.R[dr] = m.R[sr1] & m.R[instr&7]
	}
	m.setNZP(dr)
}

// LDR 0110 DR BaseR offset6
func (m *LC3) LDR(instr uint16) {
	dr := (instr >> 9) & 7
	m.R[dr] = m.bus.read16(m.R[(instr>>6)&7] + sext(instr&0x3f, 6))
	m.setNZP(dr)
}

// STR 0111 SR BaseR offset6
func (m *LC3) STR(instr uint16) {
	m.bus.write16(m.R[(instr>>6)&7]+sext(instr&0x3f, 6), m.R[(instr>>9)&7])
}

// NOT 1001 DR SR 111111
func (m *LC3) NOT(instr uint16) {
	dr := (instr >> 9) & 7
	m.R[dr] = ^m.R[(instr>>6)&7]
	m.setNZP(dr)
}

// LDI 1010 DR PCoffset9
func (m *LC3) LDI(instr uint16) {
	dr := (instr >> 9) & 7
	m.R[dr] = m.bus.read16(m.bus.read16(m.PC + sext(instr&0x1ff, 9)))
	m.setNZP(dr)
}

// STI 1011 SR PCoffset9
func (m *LC3) STI(instr uint16) {
	m.bus.write16(m.bus.read16(m.PC+sext(instr&0x1ff, 9)), m.R[(instr>>9)&7])
}

// JMP 1100 000 BaseR 000000. JMP R7 is RET.
func (m *LC3) JMP(instr uint16) {
	m.PC = m.R[(instr>>6)&7]
}

// LEA 1110 DR PCoffset9
func (m *LC3) LEA(instr uint16) {
	dr := (instr >> 9) & 7
	m.R[dr] = m.PC + sext(instr&0x1ff, 9)
	m.setNZP(dr)
}

// setNZP sets the condition codes from the value just written to r.
func (m *LC3) setNZP(r uint16) {
	switch {
	case m.R[r] == 0:
		m.cond = FLAGZ
	case m.R[r]&0x8000 != 0:
		m.cond = FLAGN
	default:
		m.cond = FLAGP
	}
}

// sext copies bit w-1 of v into bits w..15.
func sext(v uint16, w uint) uint16 {
	if v>>(w-1)&1 != 0 {
		v |= 0xffff << w
	}
	return v
}

func (m *LC3) printstate() {
	f := func(flag uint16, s string) string {
		if m.cond&flag != 0 {
			return s
		}
		return " "
	}

	fmt.Printf("R0 %04x R1 %04x R2 %04x R3 %04x R4 %04x R5 %04x R6 %04x R7 %04x\n",
		m.R[0], m.R[1], m.R[2], m.R[3], m.R[4], m.R[5], m.R[6], m.R[7])
	fmt.Printf("[%s%s%s]  instr %04x: %04x\n",
		f(FLAGN, "N"), f(FLAGZ, "Z"), f(FLAGP, "P"), m.pc, m.bus.core[m.pc])
}
