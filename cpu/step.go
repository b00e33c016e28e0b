package cpu

import (
	"time"

	"github.com/a-n-t-h-o-n-y/mos6502/memory"
)

// Memory is a local alias of memory.Memory so callers that only
// import cpu can still name the constraint Step requires.
type Memory = memory.Memory

// Step fetches the byte at cpu.PC, advances PC past it, and dispatches
// through table. It is generic over the concrete memory type so the
// addressing/instruction calls into mem.Read/mem.Write on this hot
// path can be inlined and devirtualized by the compiler when M is a
// concrete type, even though Table itself is built once against the
// plain Memory interface and shared across CPU instances.
func Step[M Memory](table *Table, c *CPU, mem M) (int, error) {
	opcodePC := c.PC
	opcode := mem.Read(c.PC)
	c.PC++

	e := table[opcode]
	if !e.legal {
		return 0, IllegalInstruction{Opcode: opcode, PC: opcodePC}
	}

	op := e.addressing(c, mem)
	extra := e.instr(c, mem, op)

	cycles := e.cycles + extra
	if e.pageCheck && op.pageCrossed {
		cycles++
	}
	return cycles, nil
}

// RunAt repeatedly invokes work at a fixed rate of hz calls per
// second, sleeping between calls against an absolute deadline rather
// than accumulating a per-tick delay, so scheduling jitter never
// compounds into clock drift. It returns when work reports done.
func RunAt(hz int, work func() (done bool)) {
	period := time.Second / time.Duration(hz)
	deadline := time.Now().Add(period)
	for {
		if work() {
			return
		}
		if remaining := time.Until(deadline); remaining > 0 {
			time.Sleep(remaining)
		}
		deadline = deadline.Add(period)
	}
}
