// Package cpu implements the MOS 6502 instruction set: registers,
// flags, the thirteen addressing modes, the fifty-six official
// instructions, a 256-entry opcode dispatch table, and the generic
// step/interrupt/reset driver. Illegal opcodes are not implemented;
// dispatching one is a fatal IllegalInstruction error.
package cpu

import (
	"fmt"

	"github.com/a-n-t-h-o-n-y/mos6502/memory"
)

// Byte and Address mirror the memory package's aliases so callers of
// cpu don't need to import memory just to name a register width.
type Byte = uint8
type Address = uint16

// Status flag bit positions. Do not reorder: PHP/PLP and any program
// that pushes/pulls SR observes these exact positions.
const (
	P_CARRY     = Byte(0x01)
	P_ZERO      = Byte(0x02)
	P_INTERRUPT = Byte(0x04)
	P_DECIMAL   = Byte(0x08)
	P_B         = Byte(0x10) // only meaningful in the byte pushed to the stack
	P_UNUSED    = Byte(0x20) // conventionally always 1
	P_OVERFLOW  = Byte(0x40)
	P_NEGATIVE  = Byte(0x80)
)

// Interrupt and reset vectors.
const (
	NMIVector   = Address(0xFFFA)
	ResetVector = Address(0xFFFC)
	IRQVector   = Address(0xFFFE)
)

const stackPage = Address(0x0100)

// CPU is the architectural state of a 6502: the register file, flag
// register, stack pointer, and program counter. A zero-value CPU is
// not a valid reset state; use New or Reset to establish one.
type CPU struct {
	A  Byte
	X  Byte
	Y  Byte
	S  Byte
	P  Byte
	PC Address
}

// New returns a CPU with the documented post-reset register values,
// except PC, which is left at zero; call Reset against a populated
// Memory to fetch the real reset vector.
func New() *CPU {
	return &CPU{
		S: 0xFF,
		P: P_INTERRUPT | P_UNUSED,
	}
}

// IllegalInstruction is returned by Step when the fetched opcode byte
// has no entry in the table (either a genuinely undefined encoding or
// one of the 105 unofficial opcodes, which this package does not
// implement). It is fatal: the engine does not attempt recovery.
type IllegalInstruction struct {
	Opcode Byte
	PC     Address
}

func (e IllegalInstruction) Error() string {
	return fmt.Sprintf("cpu: illegal opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// GetFlag reports whether flag is set in p.
func GetFlag(p Byte, flag Byte) bool {
	return p&flag != 0
}

// SetFlag sets or clears flag in *p.
func SetFlag(p *Byte, flag Byte, v bool) {
	if v {
		*p |= flag
	} else {
		*p &^= flag
	}
}

func (c *CPU) zeroCheck(reg Byte) {
	SetFlag(&c.P, P_ZERO, reg == 0)
}

func (c *CPU) negativeCheck(reg Byte) {
	SetFlag(&c.P, P_NEGATIVE, reg&P_NEGATIVE != 0)
}

// carryCheck sets C if an 8-bit ALU result (passed widened) produced a
// carry out, i.e. a value >= 0x100. Decimal-mode fixups can widen
// further, so the input is int, not uint8.
func (c *CPU) carryCheck(res int) {
	SetFlag(&c.P, P_CARRY, res >= 0x100)
}

// overflowCheck sets V when the ALU inputs shared a sign that differs
// from the result's sign (the classic two's-complement overflow
// check: http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html).
func (c *CPU) overflowCheck(reg, arg, res Byte) {
	SetFlag(&c.P, P_OVERFLOW, (reg^res)&(arg^res)&0x80 != 0)
}

// loadRegister stores val into *reg and sets N/Z from it; used by
// every load/transfer-style instruction.
func (c *CPU) loadRegister(reg *Byte, val Byte) {
	*reg = val
	c.zeroCheck(*reg)
	c.negativeCheck(*reg)
}

func (c *CPU) pushStack(mem memory.Memory, val Byte) {
	mem.Write(stackPage+Address(c.S), val)
	c.S--
}

func (c *CPU) popStack(mem memory.Memory) Byte {
	c.S++
	return mem.Read(stackPage + Address(c.S))
}

// push16 pushes hi then lo, matching the hardware's documented push
// order for JSR and interrupt sequences.
func (c *CPU) push16(mem memory.Memory, val Address) {
	c.pushStack(mem, Byte(val>>8))
	c.pushStack(mem, Byte(val&0xFF))
}

// pull16 pulls lo then hi.
func (c *CPU) pull16(mem memory.Memory) Address {
	lo := c.popStack(mem)
	hi := c.popStack(mem)
	return Address(hi)<<8 | Address(lo)
}
