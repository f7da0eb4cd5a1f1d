package i8080

// opcodeHandler executes one decoded instruction. It returns the number
// of bytes to advance pc by (0 if the handler set pc itself, e.g. any
// jump/call/return/RST/interrupt-adjacent form) and any cycles to add on
// top of the opcode's base entry in cycleTable — used only by the taken
// branch of conditional CALL/RET, per spec.md §4.1.
type opcodeHandler func(c *CPU) (pcDelta uint16, extraCycles int, err error)

// opcodeTable and cycleTable are indexed directly by opcode byte. Regular
// opcode groups (register-coded MOV/MVI/ALU/INR/DCR, register-pair-coded
// LXI/INX/DCX/DAD, condition-coded Jcond/Ccond/Rcond, RST) are filled in
// by loops in registerGeneratedOpcodes; irregular single-opcode forms and
// PUSH/POP (whose SP slot means PSW) are listed explicitly in
// registerIrregularOpcodes. Both styles are sanctioned by the 8080's own
// regular-but-not-uniform encoding — see spec.md §9.
var (
	opcodeTable [256]opcodeHandler
	cycleTable  [256]int
)

// getReg and setReg map the 3-bit register field used throughout the opcode space:
// 000=B 001=C 010=D 011=E 100=H 101=L 110=M(memory via HL) 111=A.
func (c *CPU) getReg(code uint8) uint8 {
	switch code & 0x7 {
	case 0:
		return c.reg.B
	case 1:
		return c.reg.C
	case 2:
		return c.reg.D
	case 3:
		return c.reg.E
	case 4:
		return c.reg.H
	case 5:
		return c.reg.L
	case 6:
		return c.read(c.ReadPair(PairHL))
	default:
		return c.reg.A
	}
}

func (c *CPU) setReg(code uint8, val uint8) {
	switch code & 0x7 {
	case 0:
		c.reg.B = val
	case 1:
		c.reg.C = val
	case 2:
		c.reg.D = val
	case 3:
		c.reg.E = val
	case 4:
		c.reg.H = val
	case 5:
		c.reg.L = val
	case 6:
		c.write(c.ReadPair(PairHL), val)
	default:
		c.reg.A = val
	}
}

// evaluateCondition implements the 3-bit condition-code field of
// spec.md §4.4: NZ=0 Z=1 NC=2 C=3 PO=4 PE=5 P=6 M=7.
func (c *CPU) evaluateCondition(cond uint8) bool {
	switch cond & 0x7 {
	case 0:
		return !c.flags.Zero
	case 1:
		return c.flags.Zero
	case 2:
		return !c.flags.Carry
	case 3:
		return c.flags.Carry
	case 4:
		return !c.flags.Parity
	case 5:
		return c.flags.Parity
	case 6:
		return !c.flags.Sign
	default:
		return c.flags.Sign
	}
}

func init() {
	cycleTable = referenceCycleTable

	registerIrregularOpcodes()
	registerGeneratedOpcodes()
}

// referenceCycleTable is the standard 8080 T-state count per opcode
// (base value: the not-taken count for every conditional form). Taken
// conditional CALL/RET add extra cycles at execution time — see
// opcodeHandler's extraCycles.
var referenceCycleTable = [256]int{
	0x04, 0x0A, 0x07, 0x05, 0x05, 0x05, 0x07, 0x04, 0x04, 0x0A, 0x07, 0x05, 0x05, 0x05, 0x07, 0x04,
	0x04, 0x0A, 0x07, 0x05, 0x05, 0x05, 0x07, 0x04, 0x04, 0x0A, 0x07, 0x05, 0x05, 0x05, 0x07, 0x04,
	0x04, 0x0A, 0x10, 0x05, 0x05, 0x05, 0x07, 0x04, 0x04, 0x0A, 0x10, 0x05, 0x05, 0x05, 0x07, 0x04,
	0x04, 0x0A, 0x0D, 0x05, 0x0A, 0x0A, 0x0A, 0x04, 0x04, 0x0A, 0x0D, 0x05, 0x05, 0x05, 0x07, 0x04,
	0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05,
	0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05,
	0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05,
	0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x05, 0x05, 0x05, 0x05, 0x05, 0x05, 0x07, 0x05,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04,
	0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x07, 0x04,
	0x05, 0x0A, 0x0A, 0x0A, 0x0B, 0x0B, 0x07, 0x0B, 0x05, 0x0A, 0x0A, 0x0A, 0x0B, 0x11, 0x07, 0x0B,
	0x05, 0x0A, 0x0A, 0x0A, 0x0B, 0x0B, 0x07, 0x0B, 0x05, 0x0A, 0x0A, 0x0A, 0x0B, 0x11, 0x07, 0x0B,
	0x05, 0x0A, 0x0A, 0x12, 0x0B, 0x0B, 0x07, 0x0B, 0x05, 0x05, 0x0A, 0x04, 0x0B, 0x11, 0x07, 0x0B,
	0x05, 0x0A, 0x0A, 0x04, 0x0B, 0x0B, 0x07, 0x0B, 0x05, 0x05, 0x0A, 0x04, 0x0B, 0x11, 0x07, 0x0B,
}

const takenCallRetBonus = 6
