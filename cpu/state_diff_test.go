package cpu_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/a-n-t-h-o-n-y/mos6502/cpu"
)

// TestNOPTouchesOnlyPC uses deep.Equal to diff the whole CPU struct
// before and after a NOP, rather than hand-checking each of its six
// fields — the kind of broad before/after state comparison go-test/deep
// is built for.
func TestNOPTouchesOnlyPC(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x0000] = 0xEA // NOP

	before := cpu.CPU{A: 0x11, X: 0x22, Y: 0x33, S: 0x44, P: 0x55, PC: 0x0000}
	after := before
	table := cpu.NewTable()
	if _, err := cpu.Step(&table, &after, mem); err != nil {
		t.Fatalf("Step: %v", err)
	}

	after.PC = before.PC // the only field NOP is allowed to change
	if diff := deep.Equal(before, after); diff != nil {
		t.Errorf("NOP changed more than PC: %v", diff)
	}
}

// TestTAXSetsOnlyXAndFlags diffs the CPU struct to confirm TAX leaves
// A, Y, and S alone while copying A into X and updating N/Z; PC only
// advances past the one-byte opcode.
func TestTAXSetsOnlyXAndFlags(t *testing.T) {
	mem := newFlatMemory(0)
	mem.mem[0x0000] = 0xAA // TAX

	c := cpu.CPU{A: 0x80, X: 0x00, Y: 0x33, S: 0x44, P: 0x00, PC: 0x0000}
	want := c
	want.X = 0x80
	want.PC = 0x0001
	want.P = cpu.P_NEGATIVE

	table := cpu.NewTable()
	if _, err := cpu.Step(&table, &c, mem); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if diff := deep.Equal(want, c); diff != nil {
		t.Errorf("TAX result mismatch: %v", diff)
	}
}
