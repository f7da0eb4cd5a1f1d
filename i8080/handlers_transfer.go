package i8080

// Data-transfer forms per spec.md §4.2: plain byte/word copies. None of
// them touch any flag.

func hNop(c *CPU) (uint16, int, error) {
	return 1, 0, nil
}

func hMov(dst, src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.setReg(dst, c.getReg(src))
		return 1, 0, nil
	}
}

func hMvi(dst uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.setReg(dst, c.nextByte())
		return 2, 0, nil
	}
}

func hLxi(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.WritePair(rp, c.nextWord())
		return 3, 0, nil
	}
}

func hStax(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.write(c.ReadPair(rp), c.reg.A)
		return 1, 0, nil
	}
}

func hLdax(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.reg.A = c.read(c.ReadPair(rp))
		return 1, 0, nil
	}
}

func hSta(c *CPU) (uint16, int, error) {
	c.write(c.nextWord(), c.reg.A)
	return 3, 0, nil
}

func hLda(c *CPU) (uint16, int, error) {
	c.reg.A = c.read(c.nextWord())
	return 3, 0, nil
}

func hShld(c *CPU) (uint16, int, error) {
	addr := c.nextWord()
	c.write(addr, c.reg.L)
	c.write(addr+1, c.reg.H)
	return 3, 0, nil
}

func hLhld(c *CPU) (uint16, int, error) {
	addr := c.nextWord()
	c.reg.L = c.read(addr)
	c.reg.H = c.read(addr + 1)
	return 3, 0, nil
}

func hXchg(c *CPU) (uint16, int, error) {
	c.reg.H, c.reg.D = c.reg.D, c.reg.H
	c.reg.L, c.reg.E = c.reg.E, c.reg.L
	return 1, 0, nil
}
