package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

// branch sets PC to op.addr and returns the extra cycles a taken
// branch costs: +1 for staying on the same page, +2 if it lands on a
// different one.
func (c *CPU) branch(op operand) int {
	old := c.PC
	c.PC = op.addr
	if (old & 0xFF00) != (op.addr & 0xFF00) {
		return 2
	}
	return 1
}

func iBCC(c *CPU, mem memory.Memory, op operand) int {
	if !GetFlag(c.P, P_CARRY) {
		return c.branch(op)
	}
	return 0
}

func iBCS(c *CPU, mem memory.Memory, op operand) int {
	if GetFlag(c.P, P_CARRY) {
		return c.branch(op)
	}
	return 0
}

func iBEQ(c *CPU, mem memory.Memory, op operand) int {
	if GetFlag(c.P, P_ZERO) {
		return c.branch(op)
	}
	return 0
}

func iBNE(c *CPU, mem memory.Memory, op operand) int {
	if !GetFlag(c.P, P_ZERO) {
		return c.branch(op)
	}
	return 0
}

func iBMI(c *CPU, mem memory.Memory, op operand) int {
	if GetFlag(c.P, P_NEGATIVE) {
		return c.branch(op)
	}
	return 0
}

func iBPL(c *CPU, mem memory.Memory, op operand) int {
	if !GetFlag(c.P, P_NEGATIVE) {
		return c.branch(op)
	}
	return 0
}

func iBVC(c *CPU, mem memory.Memory, op operand) int {
	if !GetFlag(c.P, P_OVERFLOW) {
		return c.branch(op)
	}
	return 0
}

func iBVS(c *CPU, mem memory.Memory, op operand) int {
	if GetFlag(c.P, P_OVERFLOW) {
		return c.branch(op)
	}
	return 0
}
