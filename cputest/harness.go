// Package cputest runs the classic 8080 CP/M conformance ROMs
// (TST8080.COM, CPUTEST.COM, 8080PRE.COM, ...) against the i8080 core.
// These ROMs assume a CP/M host: they CALL 5 for BDOS console output and
// CALL 0 to warm-boot back to CP/M when finished. Harness patches both
// entry points with small OUT stubs and answers them itself, the way
// the teacher's own TestMachine patched memory directly — grounded on
// is386-Go8080/i8080Test/testmachine.go.
package cputest

import (
	"fmt"
	"io"

	"github.com/go8080/invaders/i8080"
)

const (
	bdosEntry = 0x0005
	warmBoot  = 0x0000

	// TPAOrigin is the address conformance ROMs are built to load at.
	TPAOrigin = 0x0100

	exitPort    = 0
	consolePort = 1
)

// Harness is an i8080.IODevice that traps the two BDOS calls the
// conformance ROMs use and nothing else; every other port reads zero and
// ignores writes.
type Harness struct {
	cpu *i8080.CPU
	out io.Writer

	Stopped bool
}

// New patches cpu's low memory with the BDOS/warm-boot trap stubs and
// attaches the harness as its I/O device, and sets pc to 0x100 (the CP/M
// TPA origin). The caller must load the conformance ROM at 0x100 before
// calling Run.
func New(cpu *i8080.CPU, out io.Writer) *Harness {
	h := &Harness{cpu: cpu, out: out}
	cpu.AttachIO(h)
	cpu.LoadROM([]uint8{0xD3, exitPort}, warmBoot)           // OUT 0
	cpu.LoadROM([]uint8{0xD3, consolePort, 0xC9}, bdosEntry) // OUT 1; RET
	cpu.SetPC(TPAOrigin)
	return h
}

func (h *Harness) In(uint8) uint8 { return 0 }

// Out implements the BDOS console functions the conformance ROMs use:
// function 9 (C=9) prints the '$'-terminated string at DE, function 2
// (C=2) prints the single character in E. Port 0 is the warm-boot trap
// and just stops the run.
func (h *Harness) Out(port uint8, _ uint8) {
	switch port {
	case exitPort:
		h.Stopped = true
	case consolePort:
		reg := h.cpu.Registers()
		mem := h.cpu.Memory()
		switch reg.C {
		case 9:
			addr := h.cpu.DE()
			for mem[addr] != '$' {
				fmt.Fprintf(h.out, "%c", mem[addr])
				addr++
			}
		case 2:
			fmt.Fprintf(h.out, "%c", reg.E)
		}
	}
}

// Run steps the CPU until the ROM warm-boots or Step returns an error,
// returning the instruction count executed.
func (h *Harness) Run() (instructions int, err error) {
	for !h.Stopped {
		if _, err := h.cpu.Step(); err != nil {
			return instructions, err
		}
		instructions++
	}
	return instructions, nil
}
