package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

// Load instructions: register <- operand, N/Z set.

func iLDA(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.A, op.value(mem)); return 0 }
func iLDX(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.X, op.value(mem)); return 0 }
func iLDY(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.Y, op.value(mem)); return 0 }

// Store instructions: write register to the effective address, no
// flag effects.

func iSTA(c *CPU, mem memory.Memory, op operand) int { mem.Write(op.addr, c.A); return 0 }
func iSTX(c *CPU, mem memory.Memory, op operand) int { mem.Write(op.addr, c.X); return 0 }
func iSTY(c *CPU, mem memory.Memory, op operand) int { mem.Write(op.addr, c.Y); return 0 }

// Transfer instructions: copy, N/Z set on the destination except TXS.

func iTAX(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.X, c.A); return 0 }
func iTAY(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.Y, c.A); return 0 }
func iTSX(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.X, c.S); return 0 }
func iTXA(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.A, c.X); return 0 }
func iTYA(c *CPU, mem memory.Memory, op operand) int { c.loadRegister(&c.A, c.Y); return 0 }
func iTXS(c *CPU, mem memory.Memory, op operand) int { c.S = c.X; return 0 }

// Stack instructions.

func iPHA(c *CPU, mem memory.Memory, op operand) int { c.pushStack(mem, c.A); return 0 }

func iPHP(c *CPU, mem memory.Memory, op operand) int {
	push := c.P | P_UNUSED | P_B
	c.pushStack(mem, push)
	return 0
}

func iPLA(c *CPU, mem memory.Memory, op operand) int {
	c.loadRegister(&c.A, c.popStack(mem))
	return 0
}

func iPLP(c *CPU, mem memory.Memory, op operand) int {
	c.P = c.popStack(mem)
	c.P |= P_UNUSED
	c.P &^= P_B
	return 0
}
