package i8080

import "testing"

// scenario 6: shift hardware.
func TestShiftHardware(t *testing.T) {
	a := NewArcadeIO()

	a.Out(4, 0xAA)
	a.Out(4, 0xFF)
	a.Out(2, 0x04)
	got := a.In(3)

	if a.ShiftRegister() != 0xFFAA {
		t.Errorf("shift register = %#04x, want 0xFFAA", a.ShiftRegister())
	}
	if a.ShiftOffset() != 4 {
		t.Errorf("shift offset = %d, want 4", a.ShiftOffset())
	}
	if got != 0xFA {
		t.Errorf("IN 3 = %#02x, want 0xFA", got)
	}
}

func TestShiftHardwareThroughCPU(t *testing.T) {
	c := New()
	io := NewArcadeIO()
	c.AttachIO(io)
	c.LoadROM([]uint8{
		0x3E, 0xAA, // MVI A,AA
		0xD3, 0x04, // OUT 4
		0x3E, 0xFF, // MVI A,FF
		0xD3, 0x04, // OUT 4
		0x3E, 0x04, // MVI A,04
		0xD3, 0x02, // OUT 2
		0xDB, 0x03, // IN 3
	}, 0)
	for i := 0; i < 7; i++ {
		step(t, c)
	}
	if c.reg.A != 0xFA {
		t.Errorf("A = %#02x, want 0xFA", c.reg.A)
	}
}

func TestArcadeInputLatches(t *testing.T) {
	a := NewArcadeIO()
	a.SetInputBit(1, 0x10, true)
	if a.In(1) != 0x10 {
		t.Errorf("input port 1 = %#02x, want 0x10", a.In(1))
	}
	a.SetInputBit(1, 0x10, false)
	if a.In(1) != 0x00 {
		t.Errorf("input port 1 = %#02x, want 0x00 after release", a.In(1))
	}
}

func TestArcadeOutOfRangePortsAreBenign(t *testing.T) {
	a := NewArcadeIO()
	a.Out(99, 0x01) // no-op, must not panic
	if got := a.In(99); got != 0 {
		t.Errorf("In(99) = %#02x, want 0", got)
	}
	a.SetInputBit(99, 0x01, true) // also a no-op
}
