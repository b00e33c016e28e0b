package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

func read16(mem memory.Memory, addr Address) Address {
	lo := mem.Read(addr)
	hi := mem.Read(addr + 1)
	return Address(hi)<<8 | Address(lo)
}

func iJMP(c *CPU, mem memory.Memory, op operand) int {
	c.PC = op.addr
	return 0
}

// iJSR pushes the address of the last byte of the JSR instruction
// (PC-1, since Step's fetch plus addrABS's two operand reads have
// already advanced PC past the whole instruction) and jumps. RTS
// undoes the off-by-one by adding 1 back after popping.
func iJSR(c *CPU, mem memory.Memory, op operand) int {
	c.push16(mem, c.PC-1)
	c.PC = op.addr
	return 0
}

func iRTS(c *CPU, mem memory.Memory, op operand) int {
	c.PC = c.pull16(mem) + 1
	return 0
}

// iBRK pushes PC then SR (with B and U forced to 1 in the pushed byte
// only), sets I, and jumps through the IRQ/BRK vector. Step's own
// opcode-fetch increment has already advanced PC to the byte after
// the BRK opcode (the signature byte slot) by the time this runs, and
// that is the PC pushed: there is no separate PC bump here, so RTI
// resumes at BRK's address + 1.
func iBRK(c *CPU, mem memory.Memory, op operand) int {
	c.push16(mem, c.PC)
	c.pushStack(mem, c.P|P_UNUSED|P_B)
	SetFlag(&c.P, P_INTERRUPT, true)
	c.PC = read16(mem, IRQVector)
	return 0
}

// iRTI pulls SR (clearing B and U in SR itself, unlike RTS there is
// no post-increment adjustment to PC) then pulls PC and resumes there.
func iRTI(c *CPU, mem memory.Memory, op operand) int {
	c.P = c.popStack(mem)
	c.P &^= P_B | P_UNUSED
	c.PC = c.pull16(mem)
	return 0
}

// IRQ services a maskable interrupt if I is clear; returns cycles
// consumed (0 if masked, 7 otherwise).
func IRQ(c *CPU, mem memory.Memory) int {
	if GetFlag(c.P, P_INTERRUPT) {
		return 0
	}
	c.push16(mem, c.PC)
	c.pushStack(mem, c.P|P_UNUSED)
	SetFlag(&c.P, P_INTERRUPT, true)
	c.PC = read16(mem, IRQVector)
	return 7
}

// NMI services a non-maskable interrupt unconditionally; returns 8.
func NMI(c *CPU, mem memory.Memory) int {
	c.push16(mem, c.PC)
	c.pushStack(mem, c.P|P_UNUSED)
	SetFlag(&c.P, P_INTERRUPT, true)
	c.PC = read16(mem, NMIVector)
	return 8
}

// Reset restores the documented post-reset CPU state and fetches PC
// from the reset vector; returns 8.
func Reset(c *CPU, mem memory.Memory) int {
	c.A, c.X, c.Y = 0, 0, 0
	c.S = 0xFF
	c.P = P_INTERRUPT | P_UNUSED
	c.PC = read16(mem, ResetVector)
	return 8
}
