// Package i8080 implements the core of an Intel 8080 interpreter: the
// register file, flat 64 KiB memory, the opcode decoder/dispatcher, and
// the Space Invaders arcade I/O shim the ROM programs against. Everything
// outside the CPU's own address space and port space — ROM loading from
// disk, the host window, keyboard scanning, the real-time driver loop —
// is the caller's job; see the i8080host package for one such driver.
package i8080

// IODevice answers IN and OUT for the eight-bit 8080 port space. The CPU
// holds one; swapping it is how the same dispatcher serves the Space
// Invaders cabinet (ArcadeIO) or a CP/M conformance-test harness.
type IODevice interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// nullIO answers every IN with zero and ignores every OUT. It is the
// default device so a CPU constructed without one never dereferences a
// nil interface.
type nullIO struct{}

func (nullIO) In(uint8) uint8     { return 0 }
func (nullIO) Out(uint8, uint8) {}

// CPU is the 8080 register file, flags, program counter, stack pointer,
// 64 KiB memory and interrupt latch. It is a single-owner value: the
// dispatcher mutates it exclusively between Step calls. Port-facing state
// such as input latches lives in the attached I/O device, not here.
type CPU struct {
	reg   Registers
	flags Flags

	pc uint16
	sp uint16

	mem [65536]uint8

	interruptsEnabled bool
	halted            bool

	cycles uint64

	io IODevice
}

// initialStackPointer is the documented 8080 reset value this machine's
// ROM expects; everything else starts zeroed.
const initialStackPointer = 0xF000

// New returns a CPU with sp=0xF000, interrupts disabled, and a no-op I/O
// device. Call AttachIO to wire up the arcade shim or a test harness
// before running.
func New() *CPU {
	return &CPU{sp: initialStackPointer, io: nullIO{}}
}

// AttachIO installs the device that answers IN/OUT for this CPU.
func (c *CPU) AttachIO(io IODevice) {
	c.io = io
}

// LoadROM copies data into memory starting at offset, zeroing nothing
// else (the caller is expected to load into a freshly constructed CPU,
// whose memory is already zero). Space Invaders loads its whole ROM at
// offset 0.
func (c *CPU) LoadROM(data []uint8, offset uint16) {
	for i, b := range data {
		c.mem[int(offset)+i] = b
	}
}

// Memory exposes the full 64 KiB address space for read-only inspection —
// video RAM presentation, debuggers, and conformance-test harnesses all
// read through this rather than the unexported array directly.
func (c *CPU) Memory() *[65536]uint8 {
	return &c.mem
}

func (c *CPU) read(addr uint16) uint8 {
	return c.mem[addr]
}

func (c *CPU) write(addr uint16, val uint8) {
	c.mem[addr] = val
}

func (c *CPU) nextByte() uint8 {
	return c.mem[c.pc+1]
}

func (c *CPU) nextWord() uint16 {
	return pack(c.mem[c.pc+2], c.mem[c.pc+1])
}

// push decrements sp by 2 and writes val low-byte-first, per the 8080
// stack convention; wraps around at 16 bits.
func (c *CPU) push(val uint16) {
	hi, lo := unpack(val)
	c.sp -= 2
	c.write(c.sp, lo)
	c.write(c.sp+1, hi)
}

// pop reads a 16-bit value low-byte-first and advances sp by 2.
func (c *CPU) pop() uint16 {
	lo := c.read(c.sp)
	hi := c.read(c.sp + 1)
	c.sp += 2
	return pack(hi, lo)
}

// PC, SP, Cycles, Registers and GetFlags are the read-only accessors a
// host driver or debugger needs; the dispatcher itself never calls them.
func (c *CPU) PC() uint16           { return c.pc }
func (c *CPU) SP() uint16           { return c.sp }
func (c *CPU) Cycles() uint64       { return c.cycles }
func (c *CPU) Halted() bool         { return c.halted }
func (c *CPU) Registers() Registers { return c.reg }
func (c *CPU) GetFlags() Flags      { return c.flags }

// SetPC overrides the program counter. Space Invaders never needs this
// (it always starts at 0); it exists for cputest's CP/M harness, whose
// conformance ROMs load at the standard CP/M TPA origin 0x100.
func (c *CPU) SetPC(pc uint16) { c.pc = pc }

// AF, BC, DE, HL pack the accumulator+flags and register pairs into
// 16-bit values for display, matching the debug dumps conformance tools
// and the arcade driver's status line print.
func (c *CPU) AF() uint16 { return pack(c.reg.A, c.flags.byte()) }
func (c *CPU) BC() uint16 { return c.ReadPair(PairBC) }
func (c *CPU) DE() uint16 { return c.ReadPair(PairDE) }
func (c *CPU) HL() uint16 { return c.ReadPair(PairHL) }

// Step fetches, decodes and executes exactly one instruction, returning
// the number of cycles it took. It is atomic with respect to any
// observer: nothing outside Step can interleave with it. If the CPU is
// halted, Step is a no-op that still reports the 8080's NOP timing, so a
// driver that paces itself by cycle count keeps ticking at the right
// rate while waiting for an interrupt.
func (c *CPU) Step() (int, error) {
	if c.halted {
		return cycleTable[0x00], nil
	}

	opcode := c.read(c.pc)
	handler := opcodeTable[opcode]
	if handler == nil {
		return 0, &UnimplementedOpcode{Opcode: opcode, PC: c.pc}
	}

	delta, extra, err := handler(c)
	if err != nil {
		return 0, err
	}
	c.pc += delta

	cycles := cycleTable[opcode] + extra
	c.cycles += uint64(cycles)
	return cycles, nil
}

// RaiseInterrupt implements §4.7: if interrupts are enabled, push pc,
// jump to 8*n, disable interrupts and clear halted. A disabled interrupt
// is dropped silently — there is no queuing.
func (c *CPU) RaiseInterrupt(n uint8) {
	if !c.interruptsEnabled {
		return
	}
	c.push(c.pc)
	c.pc = 8 * uint16(n)
	c.interruptsEnabled = false
	c.halted = false
}

// InterruptsEnabled reports whether EI has run more recently than DI —
// host drivers use it to decide whether raising an interrupt would have
// any effect before bothering to call RaiseInterrupt.
func (c *CPU) InterruptsEnabled() bool { return c.interruptsEnabled }
