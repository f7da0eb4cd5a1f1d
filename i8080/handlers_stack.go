package i8080

// Stack, I/O and machine-control forms per spec.md §4.5/§4.6.

func hPush(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		if rp == PairSP {
			return 0, 0, &InvalidOperand{Opcode: 0xF5, Reason: "PUSH SP: the SP encoding is reserved for PSW"}
		}
		c.push(c.ReadPair(rp))
		return 1, 0, nil
	}
}

func hPop(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		if rp == PairSP {
			return 0, 0, &InvalidOperand{Opcode: 0xF1, Reason: "POP SP: the SP encoding is reserved for PSW"}
		}
		c.WritePair(rp, c.pop())
		return 1, 0, nil
	}
}

func hPushPSW(c *CPU) (uint16, int, error) {
	c.push(pack(c.reg.A, c.flags.byte()))
	return 1, 0, nil
}

func hPopPSW(c *CPU) (uint16, int, error) {
	val := c.pop()
	hi, lo := unpack(val)
	c.reg.A = hi
	c.flags.setFromByte(lo)
	return 1, 0, nil
}

func hXthl(c *CPU) (uint16, int, error) {
	lo := c.read(c.sp)
	hi := c.read(c.sp + 1)
	c.write(c.sp, c.reg.L)
	c.write(c.sp+1, c.reg.H)
	c.reg.L, c.reg.H = lo, hi
	return 1, 0, nil
}

func hSphl(c *CPU) (uint16, int, error) {
	c.sp = c.ReadPair(PairHL)
	return 1, 0, nil
}

func hEi(c *CPU) (uint16, int, error) {
	c.interruptsEnabled = true
	return 1, 0, nil
}

func hDi(c *CPU) (uint16, int, error) {
	c.interruptsEnabled = false
	return 1, 0, nil
}

func hHlt(c *CPU) (uint16, int, error) {
	c.halted = true
	return 1, 0, nil
}

func hIn(c *CPU) (uint16, int, error) {
	c.reg.A = c.io.In(c.nextByte())
	return 2, 0, nil
}

func hOut(c *CPU) (uint16, int, error) {
	c.io.Out(c.nextByte(), c.reg.A)
	return 2, 0, nil
}
