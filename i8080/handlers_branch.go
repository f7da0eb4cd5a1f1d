package i8080

// Branch forms per spec.md §4.4. Every handler that jumps, calls, returns
// or vectors sets pc itself and reports a 0 delta so Step doesn't also
// advance past the target.

func hJmp(c *CPU) (uint16, int, error) {
	c.pc = c.nextWord()
	return 0, 0, nil
}

func hJcond(cond uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		if c.evaluateCondition(cond) {
			c.pc = c.nextWord()
			return 0, 0, nil
		}
		return 3, 0, nil
	}
}

func (c *CPU) doCall() {
	c.push(c.pc + 3)
	c.pc = c.nextWord()
}

func hCall(c *CPU) (uint16, int, error) {
	c.doCall()
	return 0, 0, nil
}

func hCcond(cond uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		if c.evaluateCondition(cond) {
			c.doCall()
			return 0, takenCallRetBonus, nil
		}
		return 3, 0, nil
	}
}

func hRet(c *CPU) (uint16, int, error) {
	c.pc = c.pop()
	return 0, 0, nil
}

func hRcond(cond uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		if c.evaluateCondition(cond) {
			c.pc = c.pop()
			return 0, takenCallRetBonus, nil
		}
		return 1, 0, nil
	}
}

func hRst(n uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.push(c.pc + 1)
		c.pc = 8 * uint16(n)
		return 0, 0, nil
	}
}

func hPchl(c *CPU) (uint16, int, error) {
	c.pc = c.ReadPair(PairHL)
	return 0, 0, nil
}
