package cpu_test

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/a-n-t-h-o-n-y/mos6502/cpu"
)

func TestADCCarryAndOverflow(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x0000] = 0x69 // ADC #$05
	mem.mem[0x0001] = 0x05

	c := cpu.New()
	c.A = 0x7F
	cpu.SetFlag(&c.P, cpu.P_CARRY, false)

	table := cpu.NewTable()
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}

	if c.A != 0x84 {
		t.Errorf("A = %#02x, want 0x84", c.A)
	}
	if cpu.GetFlag(c.P, cpu.P_CARRY) {
		t.Error("C set, want clear")
	}
	if !cpu.GetFlag(c.P, cpu.P_OVERFLOW) {
		t.Error("V clear, want set")
	}
	if !cpu.GetFlag(c.P, cpu.P_NEGATIVE) {
		t.Error("N clear, want set")
	}
	if cpu.GetFlag(c.P, cpu.P_ZERO) {
		t.Error("Z set, want clear")
	}
}

func TestSBCWithBorrow(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x0000] = 0xE9 // SBC #$05
	mem.mem[0x0001] = 0x05

	c := cpu.New()
	c.A = 0x0F
	cpu.SetFlag(&c.P, cpu.P_CARRY, false)

	table := cpu.NewTable()
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}

	if c.A != 0x09 {
		t.Errorf("A = %#02x, want 0x09", c.A)
	}
	if !cpu.GetFlag(c.P, cpu.P_CARRY) {
		t.Error("C clear, want set")
	}
	if cpu.GetFlag(c.P, cpu.P_OVERFLOW) {
		t.Error("V set, want clear")
	}
	if cpu.GetFlag(c.P, cpu.P_NEGATIVE) {
		t.Error("N set, want clear")
	}
	if cpu.GetFlag(c.P, cpu.P_ZERO) {
		t.Error("Z set, want clear")
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x1234] = 0x20 // JSR $FADE
	mem.mem[0x1235] = 0xDE
	mem.mem[0x1236] = 0xFA
	mem.mem[0xFADE] = 0x60 // RTS

	c := cpu.New()
	c.PC = 0x1234
	c.S = 0xFF

	table := cpu.NewTable()
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("JSR Step: %v\n%s", err, spew.Sdump(c))
	}

	if c.PC != 0xFADE {
		t.Errorf("PC after JSR = %#04x, want 0xFADE", c.PC)
	}
	if c.S != 0xFD {
		t.Errorf("SP after JSR = %#02x, want 0xFD", c.S)
	}
	if mem.mem[0x01FE] != 0x36 || mem.mem[0x01FF] != 0x12 {
		t.Errorf("stack bytes = %#02x/%#02x, want 0x36/0x12", mem.mem[0x01FE], mem.mem[0x01FF])
	}

	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("RTS Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.PC != 0x1237 {
		t.Errorf("PC after RTS = %#04x, want 0x1237", c.PC)
	}
	if c.S != 0xFF {
		t.Errorf("SP after RTS = %#02x, want 0xFF", c.S)
	}
}

func TestBRKRTIRoundTrip(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x1002] = 0x00 // BRK
	mem.mem[0xFFFE] = 0x34
	mem.mem[0xFFFF] = 0x12
	mem.mem[0x1234] = 0x40 // RTI

	c := cpu.New()
	c.PC = 0x1002
	c.S = 0xFF
	c.P = cpu.P_NEGATIVE
	origSR := c.P

	table := cpu.NewTable()
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("BRK Step: %v\n%s", err, spew.Sdump(c))
	}

	if c.PC != 0x1234 {
		t.Errorf("PC after BRK = %#04x, want 0x1234", c.PC)
	}
	if c.S != 0xFC {
		t.Errorf("SP after BRK = %#02x, want 0xFC", c.S)
	}
	if mem.mem[0x01FF] != 0x10 || mem.mem[0x01FE] != 0x03 {
		t.Errorf("pushed PC = %#02x/%#02x, want 0x10/0x03", mem.mem[0x01FF], mem.mem[0x01FE])
	}
	if mem.mem[0x01FD] != origSR|0x30 {
		t.Errorf("pushed SR = %#02x, want %#02x", mem.mem[0x01FD], origSR|0x30)
	}
	if !cpu.GetFlag(c.P, cpu.P_INTERRUPT) {
		t.Error("I clear after BRK, want set")
	}

	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("RTI Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.S != 0xFF {
		t.Errorf("SP after RTI = %#02x, want 0xFF", c.S)
	}
	if c.PC != 0x1003 {
		t.Errorf("PC after RTI = %#04x, want 0x1003", c.PC)
	}
}

func TestINDPageWrapBug(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x0000] = 0x6C // JMP ($05FF)
	mem.mem[0x0001] = 0xFF
	mem.mem[0x0002] = 0x05
	mem.mem[0x05FF] = 0x34
	mem.mem[0x0500] = 0x12 // wrong neighbor would be 0x0600

	c := cpu.New()
	table := cpu.NewTable()
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("Step: %v\n%s", err, spew.Sdump(c))
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234 (page-wrap bug not replicated)", c.PC)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x0000] = 0x08 // PHP
	mem.mem[0x0001] = 0x28 // PLP

	c := cpu.New()
	c.P = cpu.P_CARRY | cpu.P_ZERO | cpu.P_OVERFLOW | cpu.P_NEGATIVE
	want := c.P

	table := cpu.NewTable()
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("PHP Step: %v", err)
	}
	pushed := mem.mem[0x01FF]
	if pushed&cpu.P_B == 0 || pushed&cpu.P_UNUSED == 0 {
		t.Errorf("pushed SR = %#02x, want B and U set", pushed)
	}

	c.P = 0 // scramble to prove PLP actually restores it
	if _, err := cpu.Step(&table, c, mem); err != nil {
		t.Fatalf("PLP Step: %v", err)
	}
	if c.P&cpu.P_B != 0 {
		t.Error("B set after PLP, want clear")
	}
	if c.P&cpu.P_UNUSED == 0 {
		t.Error("U clear after PLP, want set")
	}
	for _, f := range []uint8{cpu.P_CARRY, cpu.P_ZERO, cpu.P_OVERFLOW, cpu.P_NEGATIVE} {
		if (c.P&f != 0) != (want&f != 0) {
			t.Errorf("flag %#02x not preserved across PHP/PLP", f)
		}
	}
}

// sweptOperands is a deliberately non-exhaustive (256*256*2 would be
// needlessly slow for little added confidence) but corner-heavy set
// of bytes: both ends of the range, the 0x3F/0x40 and 0x7F/0x80/0x81
// sign and overflow boundaries, and a few arbitrary mid-range values,
// crossed against themselves and both
// carry-in states below.
var sweptOperands = []byte{0x00, 0x01, 0x02, 0x3F, 0x40, 0x7F, 0x80, 0x81, 0xA5, 0x5A, 0xC0, 0xFE, 0xFF}

// TestADCFlagsDeriveFromNineBitSum sweeps (a, v, carry) triples and
// checks spec.md §8's invariant directly: Z, N, V, C must derive
// strictly from the 9-bit sum a+v+c, computed here independently of
// cpu's own implementation.
func TestADCFlagsDeriveFromNineBitSum(t *testing.T) {
	table := cpu.NewTable()
	for _, a := range sweptOperands {
		for _, v := range sweptOperands {
			for _, carryIn := range []int{0, 1} {
				name := fmt.Sprintf("a=%#02x/v=%#02x/c=%d", a, v, carryIn)
				t.Run(name, func(t *testing.T) {
					sum := int(a) + int(v) + carryIn
					result := byte(sum & 0xFF)
					wantC := sum >= 0x100
					wantZ := result == 0
					wantN := result&0x80 != 0
					wantV := (^(a^v))&(a^result)&0x80 != 0

					mem := newFlatMemory(0)
					mem.mem[0x0000] = 0x69 // ADC #imm
					mem.mem[0x0001] = v

					c := cpu.New()
					c.A = a
					cpu.SetFlag(&c.P, cpu.P_CARRY, carryIn == 1)

					if _, err := cpu.Step(&table, c, mem); err != nil {
						t.Fatalf("Step: %v", err)
					}
					if c.A != result {
						t.Errorf("A = %#02x, want %#02x", c.A, result)
					}
					if cpu.GetFlag(c.P, cpu.P_CARRY) != wantC {
						t.Errorf("C = %v, want %v", cpu.GetFlag(c.P, cpu.P_CARRY), wantC)
					}
					if cpu.GetFlag(c.P, cpu.P_ZERO) != wantZ {
						t.Errorf("Z = %v, want %v", cpu.GetFlag(c.P, cpu.P_ZERO), wantZ)
					}
					if cpu.GetFlag(c.P, cpu.P_NEGATIVE) != wantN {
						t.Errorf("N = %v, want %v", cpu.GetFlag(c.P, cpu.P_NEGATIVE), wantN)
					}
					if cpu.GetFlag(c.P, cpu.P_OVERFLOW) != wantV {
						t.Errorf("V = %v, want %v", cpu.GetFlag(c.P, cpu.P_OVERFLOW), wantV)
					}
				})
			}
		}
	}
}

// TestSBCFlagsDeriveFromNineBitSum sweeps the same triples through SBC,
// which spec.md §4.2 defines as ADC with the operand bitwise-
// complemented — so the same 9-bit-sum formula applies with v replaced
// by ^v.
func TestSBCFlagsDeriveFromNineBitSum(t *testing.T) {
	table := cpu.NewTable()
	for _, a := range sweptOperands {
		for _, v := range sweptOperands {
			for _, carryIn := range []int{0, 1} {
				name := fmt.Sprintf("a=%#02x/v=%#02x/c=%d", a, v, carryIn)
				t.Run(name, func(t *testing.T) {
					notV := ^v
					sum := int(a) + int(notV) + carryIn
					result := byte(sum & 0xFF)
					wantC := sum >= 0x100
					wantZ := result == 0
					wantN := result&0x80 != 0
					wantV := (^(a^notV))&(a^result)&0x80 != 0

					mem := newFlatMemory(0)
					mem.mem[0x0000] = 0xE9 // SBC #imm
					mem.mem[0x0001] = v

					c := cpu.New()
					c.A = a
					cpu.SetFlag(&c.P, cpu.P_CARRY, carryIn == 1)

					if _, err := cpu.Step(&table, c, mem); err != nil {
						t.Fatalf("Step: %v", err)
					}
					if c.A != result {
						t.Errorf("A = %#02x, want %#02x", c.A, result)
					}
					if cpu.GetFlag(c.P, cpu.P_CARRY) != wantC {
						t.Errorf("C = %v, want %v", cpu.GetFlag(c.P, cpu.P_CARRY), wantC)
					}
					if cpu.GetFlag(c.P, cpu.P_ZERO) != wantZ {
						t.Errorf("Z = %v, want %v", cpu.GetFlag(c.P, cpu.P_ZERO), wantZ)
					}
					if cpu.GetFlag(c.P, cpu.P_NEGATIVE) != wantN {
						t.Errorf("N = %v, want %v", cpu.GetFlag(c.P, cpu.P_NEGATIVE), wantN)
					}
					if cpu.GetFlag(c.P, cpu.P_OVERFLOW) != wantV {
						t.Errorf("V = %v, want %v", cpu.GetFlag(c.P, cpu.P_OVERFLOW), wantV)
					}
				})
			}
		}
	}
}
