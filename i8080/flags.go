package i8080

// Flags holds the five condition flags the 8080 exposes to programs. All
// start false; PUSH PSW / POP PSW is the only place the full set is
// packed into a single byte.
type Flags struct {
	Zero     bool
	Sign     bool
	Parity   bool
	Carry    bool
	AuxCarry bool
}

// byte packs the flags into the PSW layout used by PUSH PSW / POP PSW:
// bit 7=S, 6=Z, 5=0, 4=AC, 3=0, 2=P, 1=1, 0=CY.
func (f Flags) byte() uint8 {
	var b uint8
	if f.Sign {
		b |= 1 << 7
	}
	if f.Zero {
		b |= 1 << 6
	}
	if f.AuxCarry {
		b |= 1 << 4
	}
	if f.Parity {
		b |= 1 << 2
	}
	b |= 1 << 1
	if f.Carry {
		b |= 1 << 0
	}
	return b
}

// setFromByte restores S/Z/AC/P/CY from a packed PSW byte, discarding the
// fixed bits 1, 3 and 5 rather than writing them back into state.
func (f *Flags) setFromByte(b uint8) {
	f.Sign = b&(1<<7) != 0
	f.Zero = b&(1<<6) != 0
	f.AuxCarry = b&(1<<4) != 0
	f.Parity = b&(1<<2) != 0
	f.Carry = b&(1<<0) != 0
}
