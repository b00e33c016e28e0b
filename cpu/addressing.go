package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

// operand is what an addressing mode resolves to: either an immediate
// value (Imm true) or an effective address, plus whether resolving it
// crossed a page boundary (only ABX/ABY/IZY can report true).
type operand struct {
	addr        Address
	val         Byte
	imm         bool
	pageCrossed bool
}

// value returns the operand's byte: val directly for immediate/
// accumulator modes, or a fresh read from the effective address
// otherwise. Every instruction that reads an operand (as opposed to
// store instructions, which only need addr) goes through this.
func (op operand) value(mem memory.Memory) Byte {
	if op.imm {
		return op.val
	}
	return mem.Read(op.addr)
}

// addressingFunc computes an operand and advances cpu.PC past the
// bytes it consumes. Implied and accumulator modes consume none.
type addressingFunc func(c *CPU, mem memory.Memory) operand

func fetch(c *CPU, mem memory.Memory) Byte {
	b := mem.Read(c.PC)
	c.PC++
	return b
}

func addrIMP(c *CPU, mem memory.Memory) operand {
	return operand{}
}

func addrACC(c *CPU, mem memory.Memory) operand {
	return operand{val: c.A, imm: true}
}

func addrIMM(c *CPU, mem memory.Memory) operand {
	return operand{val: fetch(c, mem), imm: true}
}

func addrABS(c *CPU, mem memory.Memory) operand {
	lo := fetch(c, mem)
	hi := fetch(c, mem)
	return operand{addr: Address(hi)<<8 | Address(lo)}
}

func abxLike(c *CPU, mem memory.Memory, index Byte) operand {
	lo := fetch(c, mem)
	hi := fetch(c, mem)
	base := Address(hi)<<8 | Address(lo)
	sum := base + Address(index)
	return operand{addr: sum, pageCrossed: (base & 0xFF00) != (sum & 0xFF00)}
}

func addrABX(c *CPU, mem memory.Memory) operand {
	return abxLike(c, mem, c.X)
}

func addrABY(c *CPU, mem memory.Memory) operand {
	return abxLike(c, mem, c.Y)
}

func addrZP0(c *CPU, mem memory.Memory) operand {
	return operand{addr: Address(fetch(c, mem))}
}

func addrZPX(c *CPU, mem memory.Memory) operand {
	return operand{addr: Address(fetch(c, mem) + c.X)}
}

func addrZPY(c *CPU, mem memory.Memory) operand {
	return operand{addr: Address(fetch(c, mem) + c.Y)}
}

// addrIND implements JMP's indirect mode, including the NMOS
// page-wrap bug: if the pointer's low byte is 0xFF, the high byte is
// read from the start of the same page rather than the next page.
func addrIND(c *CPU, mem memory.Memory) operand {
	lo := fetch(c, mem)
	hi := fetch(c, mem)
	ptr := Address(hi)<<8 | Address(lo)
	hiAddr := ptr + 1
	if lo == 0xFF {
		hiAddr = Address(hi) << 8
	}
	eaLo := mem.Read(ptr)
	eaHi := mem.Read(hiAddr)
	return operand{addr: Address(eaHi)<<8 | Address(eaLo)}
}

// addrIZX reads an effective address from a zero-page pointer formed
// by operand+X, wrapping within page zero at both the pointer lookup
// and its +1 neighbor.
func addrIZX(c *CPU, mem memory.Memory) operand {
	base := fetch(c, mem) + c.X
	lo := mem.Read(Address(base))
	hi := mem.Read(Address(base + 1))
	return operand{addr: Address(hi)<<8 | Address(lo)}
}

// addrIZY reads a zero-page pointer, then adds Y to the 16-bit result,
// reporting a page crossing if that addition carries into the high byte.
func addrIZY(c *CPU, mem memory.Memory) operand {
	zp := fetch(c, mem)
	lo := mem.Read(Address(zp))
	hi := mem.Read(Address(zp + 1))
	base := Address(hi)<<8 | Address(lo)
	sum := base + Address(c.Y)
	return operand{addr: sum, pageCrossed: (base & 0xFF00) != (sum & 0xFF00)}
}

func addrREL(c *CPU, mem memory.Memory) operand {
	off := int8(fetch(c, mem))
	target := Address(int32(c.PC) + int32(off))
	return operand{addr: target}
}
