package main

import (
	"testing"

	"github.com/matryer/is"
)

func TestBusReadWrite(t *testing.T) {
	is := is.New(t)
	var bus BUS

	bus.write16(0x3000, 0xbeef)
	bus.write16(0x0000, 0x0001)
	bus.write16(0xffff, 0x8000)

	is.Equal(bus.read16(0x3000), uint16(0xbeef))
	is.Equal(bus.read16(0x0000), uint16(0x0001))
	is.Equal(bus.read16(0xffff), uint16(0x8000))
}

func TestBusKBSRLatchesKey(t *testing.T) {
	is := is.New(t)
	bus := BUS{cons: &memConsole{in: []byte{'k'}}}

	is.Equal(bus.read16(KBSR), uint16(1<<15)) // key waiting
	is.Equal(bus.read16(KBDR), uint16('k'))   // latched on the KBSR read

	// the key was consumed, the next poll clears the status register
	is.Equal(bus.read16(KBSR), uint16(0))
	// KBDR reads are plain loads, the last key stays latched
	is.Equal(bus.read16(KBDR), uint16('k'))
}

func TestBusKBSRIdle(t *testing.T) {
	is := is.New(t)
	bus := BUS{cons: &memConsole{}}

	bus.write16(KBSR, 1<<15) // stale status
	is.Equal(bus.read16(KBSR), uint16(0))
	is.Equal(bus.read16(KBDR), uint16(0))
}
