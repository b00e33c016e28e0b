package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

// iADC implements binary and decimal-mode addition. In decimal mode,
// Z follows the plain binary sum and N/V follow the intermediate sum
// taken after the low-nibble decimal correction but before the
// high-nibble one, rather than the final corrected BCD result,
// matching documented NMOS 6502 behavior (spec §4.2, §9
// open question resolved in favor of this, the original hardware's
// actual behavior).
func iADC(c *CPU, mem memory.Memory, op operand) int {
	v := op.value(mem)
	carry := Byte(0)
	if GetFlag(c.P, P_CARRY) {
		carry = 1
	}

	if GetFlag(c.P, P_DECIMAL) {
		aL := int(c.A&0x0F) + int(v&0x0F) + int(carry)
		if aL >= 0x0A {
			aL = ((aL + 0x06) & 0x0F) + 0x10
		}
		sum := int(c.A&0xF0) + int(v&0xF0) + aL
		seq := sum
		if sum >= 0xA0 {
			sum += 0x60
		}
		res := Byte(sum & 0xFF)
		bin := c.A + v + carry

		c.overflowCheck(c.A, v, Byte(seq&0xFF))
		c.carryCheck(sum)
		c.negativeCheck(Byte(seq & 0xFF))
		c.zeroCheck(bin)
		c.A = res
		return 0
	}

	sum := int(c.A) + int(v) + int(carry)
	result := Byte(sum & 0xFF)
	c.overflowCheck(c.A, v, result)
	c.carryCheck(sum)
	c.loadRegister(&c.A, result)
	return 0
}

// iSBC implements binary and decimal-mode subtraction. In binary mode
// SBC is exactly ADC with the operand bitwise-complemented; in decimal
// mode the nibble-level borrow fixups differ from ADC's carry fixups,
// so it gets its own implementation (matching documented NMOS
// behavior, same as iADC's decimal path).
func iSBC(c *CPU, mem memory.Memory, op operand) int {
	v := op.value(mem)
	if !GetFlag(c.P, P_DECIMAL) {
		return iADC(c, mem, operand{val: ^v, imm: true})
	}

	carry := Byte(0)
	if GetFlag(c.P, P_CARRY) {
		carry = 1
	}

	aL := int(c.A&0x0F) - int(v&0x0F) + int(carry) - 1
	if aL < 0 {
		aL = ((aL - 0x06) & 0x0F) - 0x10
	}
	sum := int(c.A&0xF0) - int(v&0xF0) + aL
	if sum < 0 {
		sum -= 0x60
	}
	res := Byte(sum & 0xFF)

	notOp := ^v
	b := c.A + notOp + carry
	c.overflowCheck(c.A, notOp, b)
	c.negativeCheck(b)
	c.carryCheck(int(c.A) + int(notOp) + int(carry))
	c.zeroCheck(b)
	c.A = res
	return 0
}

// Increment/decrement: +-1 modulo 256, N/Z set.

func iINC(c *CPU, mem memory.Memory, op operand) int {
	v := op.value(mem) + 1
	mem.Write(op.addr, v)
	c.zeroCheck(v)
	c.negativeCheck(v)
	return 0
}

func iDEC(c *CPU, mem memory.Memory, op operand) int {
	v := op.value(mem) - 1
	mem.Write(op.addr, v)
	c.zeroCheck(v)
	c.negativeCheck(v)
	return 0
}

func iINX(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.X, c.X+1); return 0 }
func iINY(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.Y, c.Y+1); return 0 }
func iDEX(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.X, c.X-1); return 0 }
func iDEY(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.Y, c.Y-1); return 0 }

// Logical: AC <- AC (op) operand, N/Z set.

func iAND(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.A, c.A&op.value(mem)); return 0 }
func iEOR(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.A, c.A^op.value(mem)); return 0 }
func iORA(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.A, c.A|op.value(mem)); return 0 }

// Compare: reg - operand, Z/N/C set; result itself is discarded.

func (c *CPU) compare(reg, operandVal Byte) {
	diff := reg - operandVal
	c.zeroCheck(diff)
	c.negativeCheck(diff)
	SetFlag(&c.P, P_CARRY, reg >= operandVal)
}

func iCMP(c *CPU, mem memory.Memory, op operand) int { c.compare(c.A, op.value(mem)); return 0 }
func iCPX(c *CPU, mem memory.Memory, op operand) int { c.compare(c.X, op.value(mem)); return 0 }
func iCPY(c *CPU, mem memory.Memory, op operand) int { c.compare(c.Y, op.value(mem)); return 0 }

// BIT tests AC against a memory value without modifying AC.
func iBIT(c *CPU, mem memory.Memory, op operand) int {
	v := op.value(mem)
	SetFlag(&c.P, P_ZERO, v&c.A == 0)
	SetFlag(&c.P, P_OVERFLOW, v&P_OVERFLOW != 0)
	SetFlag(&c.P, P_NEGATIVE, v&P_NEGATIVE != 0)
	return 0
}

func iNOP(c *CPU, mem memory.Memory, op operand) int { return 0 }
