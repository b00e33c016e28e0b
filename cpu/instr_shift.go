package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

// Shift/rotate instructions operate identically on the accumulator or
// a memory location; the mnemonic is the same, only the operand
// source/destination differs, so each has an Acc and a memory variant
// sharing the bit manipulation.

func aslResult(c *CPU, v Byte) Byte {
	c.carryCheck(int(v) << 1)
	r := v << 1
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func iASLAcc(c *CPU, mem memory.Memory, op operand) int { c.A = aslResult(c, c.A); return 0 }
func iASL(c *CPU, mem memory.Memory, op operand) int {
	mem.Write(op.addr, aslResult(c, op.value(mem)))
	return 0
}

func lsrResult(c *CPU, v Byte) Byte {
	SetFlag(&c.P, P_CARRY, v&0x01 != 0)
	r := v >> 1
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func iLSRAcc(c *CPU, mem memory.Memory, op operand) int { c.A = lsrResult(c, c.A); return 0 }
func iLSR(c *CPU, mem memory.Memory, op operand) int {
	mem.Write(op.addr, lsrResult(c, op.value(mem)))
	return 0
}

func rolResult(c *CPU, v Byte) Byte {
	oldCarry := Byte(0)
	if GetFlag(c.P, P_CARRY) {
		oldCarry = 1
	}
	c.carryCheck(int(v) << 1)
	r := (v << 1) | oldCarry
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func iROLAcc(c *CPU, mem memory.Memory, op operand) int { c.A = rolResult(c, c.A); return 0 }
func iROL(c *CPU, mem memory.Memory, op operand) int {
	mem.Write(op.addr, rolResult(c, op.value(mem)))
	return 0
}

func rorResult(c *CPU, v Byte) Byte {
	oldCarry := Byte(0)
	if GetFlag(c.P, P_CARRY) {
		oldCarry = 0x80
	}
	SetFlag(&c.P, P_CARRY, v&0x01 != 0)
	r := (v >> 1) | oldCarry
	c.zeroCheck(r)
	c.negativeCheck(r)
	return r
}

func iRORAcc(c *CPU, mem memory.Memory, op operand) int { c.A = rorResult(c, c.A); return 0 }
func iROR(c *CPU, mem memory.Memory, op operand) int {
	mem.Write(op.addr, rorResult(c, op.value(mem)))
	return 0
}

// Flag instructions: directly set/clear the named flag.

func iCLC(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_CARRY, false); return 0 }
func iSEC(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_CARRY, true); return 0 }
func iCLI(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_INTERRUPT, false); return 0 }
func iSEI(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_INTERRUPT, true); return 0 }
func iCLD(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_DECIMAL, false); return 0 }
func iSED(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_DECIMAL, true); return 0 }
func iCLV(c *CPU, mem memory.Memory, op operand) int { SetFlag(&c.P, P_OVERFLOW, false); return 0 }
