package i8080

import "math/bits"

// setZSP sets Zero/Sign/Parity from a computed 8-bit result — the flags
// every ALU op agrees on regardless of what it does with Carry/AuxCarry.
func (c *CPU) setZSP(v uint8) {
	c.flags.Zero = v == 0
	c.flags.Sign = v&0x80 != 0
	c.flags.Parity = bits.OnesCount8(v)%2 == 0
}

// applyAdd is the shared core of ADD/ADC/ADI/ACI and of DAA's correction
// step: A ← A + val + carryIn, with Carry/AuxCarry taken from the actual
// 9-bit/5-bit sums rather than inferred after the fact.
func (c *CPU) applyAdd(val uint8, carryIn uint8) {
	a := c.reg.A
	sum := uint16(a) + uint16(val) + uint16(carryIn)
	c.flags.Carry = sum > 0xFF
	c.flags.AuxCarry = (a&0x0F)+(val&0x0F)+carryIn > 0x0F
	c.reg.A = uint8(sum)
	c.setZSP(c.reg.A)
}

// applySub is ADD's mirror for SUB/SBB/SUI/SBI/CMP/CPI, modelled as
// A + ^val + (1 - borrowIn) per spec.md §9 so Carry comes out as "borrow
// occurred" and AuxCarry matches the documented table directly.
func (c *CPU) applySub(val uint8, borrowIn uint8) uint8 {
	a := c.reg.A
	carryIn := uint8(1)
	if borrowIn != 0 {
		carryIn = 0
	}
	notVal := ^val
	sum := uint16(a) + uint16(notVal) + uint16(carryIn)
	result := uint8(sum)
	c.flags.Carry = sum <= 0xFF
	c.flags.AuxCarry = (a&0x0F)+(notVal&0x0F)+carryIn > 0x0F
	c.setZSP(result)
	return result
}

func hAdd(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.applyAdd(c.getReg(src), 0)
		return 1, 0, nil
	}
}

func hAdc(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		var cy uint8
		if c.flags.Carry {
			cy = 1
		}
		c.applyAdd(c.getReg(src), cy)
		return 1, 0, nil
	}
}

func hAdi(c *CPU) (uint16, int, error) {
	c.applyAdd(c.nextByte(), 0)
	return 2, 0, nil
}

func hAci(c *CPU) (uint16, int, error) {
	var cy uint8
	if c.flags.Carry {
		cy = 1
	}
	c.applyAdd(c.nextByte(), cy)
	return 2, 0, nil
}

func hSub(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.reg.A = c.applySub(c.getReg(src), 0)
		return 1, 0, nil
	}
}

func hSbb(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		var by uint8
		if c.flags.Carry {
			by = 1
		}
		c.reg.A = c.applySub(c.getReg(src), by)
		return 1, 0, nil
	}
}

func hSui(c *CPU) (uint16, int, error) {
	c.reg.A = c.applySub(c.nextByte(), 0)
	return 2, 0, nil
}

func hSbi(c *CPU) (uint16, int, error) {
	var by uint8
	if c.flags.Carry {
		by = 1
	}
	c.reg.A = c.applySub(c.nextByte(), by)
	return 2, 0, nil
}

func hCmp(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.applySub(c.getReg(src), 0)
		return 1, 0, nil
	}
}

func hCpi(c *CPU) (uint16, int, error) {
	c.applySub(c.nextByte(), 0)
	return 2, 0, nil
}

func hAna(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.reg.A &= c.getReg(src)
		c.setZSP(c.reg.A)
		c.flags.Carry = false
		c.flags.AuxCarry = false
		return 1, 0, nil
	}
}

func hAni(c *CPU) (uint16, int, error) {
	c.reg.A &= c.nextByte()
	c.setZSP(c.reg.A)
	c.flags.Carry = false
	c.flags.AuxCarry = false
	return 2, 0, nil
}

func hXra(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.reg.A ^= c.getReg(src)
		c.setZSP(c.reg.A)
		c.flags.Carry = false
		c.flags.AuxCarry = false
		return 1, 0, nil
	}
}

func hXri(c *CPU) (uint16, int, error) {
	c.reg.A ^= c.nextByte()
	c.setZSP(c.reg.A)
	c.flags.Carry = false
	c.flags.AuxCarry = false
	return 2, 0, nil
}

func hOra(src uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.reg.A |= c.getReg(src)
		c.setZSP(c.reg.A)
		c.flags.Carry = false
		c.flags.AuxCarry = false
		return 1, 0, nil
	}
}

func hOri(c *CPU) (uint16, int, error) {
	c.reg.A |= c.nextByte()
	c.setZSP(c.reg.A)
	c.flags.Carry = false
	c.flags.AuxCarry = false
	return 2, 0, nil
}

func hInr(dst uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		v := c.getReg(dst) + 1
		c.setZSP(v)
		c.flags.AuxCarry = v&0x0F == 0
		c.setReg(dst, v)
		return 1, 0, nil
	}
}

func hDcr(dst uint8) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		v := c.getReg(dst) - 1
		c.setZSP(v)
		c.flags.AuxCarry = v&0x0F != 0x0F
		c.setReg(dst, v)
		return 1, 0, nil
	}
}

func hInx(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.WritePair(rp, c.ReadPair(rp)+1)
		return 1, 0, nil
	}
}

func hDcx(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		c.WritePair(rp, c.ReadPair(rp)-1)
		return 1, 0, nil
	}
}

func hDad(rp RegPair) opcodeHandler {
	return func(c *CPU) (uint16, int, error) {
		hl := uint32(c.ReadPair(PairHL))
		val := uint32(c.ReadPair(rp))
		sum := hl + val
		c.WritePair(PairHL, uint16(sum))
		c.flags.Carry = sum > 0xFFFF
		return 1, 0, nil
	}
}

// hDaa adjusts A for BCD per spec.md §4.3: correct the low nibble if it
// exceeds 9 or AuxCarry is set, then correct the high nibble if it
// exceeds 9 or Carry is set. Both corrections are decided from the
// pre-correction nibbles and applied in one add; a high nibble of 9 also
// gets the 0x60 correction when the low-nibble correction carries into it.
func hDaa(c *CPU) (uint16, int, error) {
	a := c.reg.A
	lo, hi := a&0x0F, a>>4
	cy := c.flags.Carry

	var correction uint8
	if lo > 9 || c.flags.AuxCarry {
		correction |= 0x06
	}
	if hi > 9 || cy || (hi >= 9 && lo > 9) {
		correction |= 0x60
		cy = true
	}

	c.applyAdd(correction, 0)
	c.flags.Carry = cy || c.flags.Carry
	return 1, 0, nil
}

func hRlc(c *CPU) (uint16, int, error) {
	carry := c.reg.A >> 7
	c.reg.A = c.reg.A<<1 | carry
	c.flags.Carry = carry != 0
	return 1, 0, nil
}

func hRrc(c *CPU) (uint16, int, error) {
	carry := c.reg.A & 1
	c.reg.A = c.reg.A>>1 | carry<<7
	c.flags.Carry = carry != 0
	return 1, 0, nil
}

func hRal(c *CPU) (uint16, int, error) {
	var cyIn uint8
	if c.flags.Carry {
		cyIn = 1
	}
	c.flags.Carry = c.reg.A&0x80 != 0
	c.reg.A = c.reg.A<<1 | cyIn
	return 1, 0, nil
}

func hRar(c *CPU) (uint16, int, error) {
	var cyIn uint8
	if c.flags.Carry {
		cyIn = 1
	}
	c.flags.Carry = c.reg.A&1 != 0
	c.reg.A = c.reg.A>>1 | cyIn<<7
	return 1, 0, nil
}

func hCma(c *CPU) (uint16, int, error) {
	c.reg.A = ^c.reg.A
	return 1, 0, nil
}

func hStc(c *CPU) (uint16, int, error) {
	c.flags.Carry = true
	return 1, 0, nil
}

func hCmc(c *CPU) (uint16, int, error) {
	c.flags.Carry = !c.flags.Carry
	return 1, 0, nil
}
