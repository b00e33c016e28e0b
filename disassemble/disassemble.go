// Package disassemble renders 6502 machine code as mnemonic text for
// the 56 official opcodes. Illegal opcode bytes disassemble as "???"
// rather than a mnemonic, matching the engine's treatment of them as
// fatal rather than a supported (if undocumented) operation.
package disassemble

import (
	"fmt"

	"github.com/a-n-t-h-o-n-y/mos6502/memory"
)

type mode int

const (
	modeImplied mode = iota
	modeAccumulator
	modeImmediate
	modeZP
	modeZPX
	modeZPY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeRelative
)

type info struct {
	mnemonic string
	mode     mode
}

var opcodes = buildOpcodeInfo()

func buildOpcodeInfo() map[uint8]info {
	m := map[uint8]info{}
	add := func(b uint8, mnemonic string, md mode) { m[b] = info{mnemonic, md} }

	add(0x69, "ADC", modeImmediate)
	add(0x65, "ADC", modeZP)
	add(0x75, "ADC", modeZPX)
	add(0x6D, "ADC", modeAbsolute)
	add(0x7D, "ADC", modeAbsoluteX)
	add(0x79, "ADC", modeAbsoluteY)
	add(0x61, "ADC", modeIndirectX)
	add(0x71, "ADC", modeIndirectY)

	add(0xE9, "SBC", modeImmediate)
	add(0xE5, "SBC", modeZP)
	add(0xF5, "SBC", modeZPX)
	add(0xED, "SBC", modeAbsolute)
	add(0xFD, "SBC", modeAbsoluteX)
	add(0xF9, "SBC", modeAbsoluteY)
	add(0xE1, "SBC", modeIndirectX)
	add(0xF1, "SBC", modeIndirectY)

	add(0x29, "AND", modeImmediate)
	add(0x25, "AND", modeZP)
	add(0x35, "AND", modeZPX)
	add(0x2D, "AND", modeAbsolute)
	add(0x3D, "AND", modeAbsoluteX)
	add(0x39, "AND", modeAbsoluteY)
	add(0x21, "AND", modeIndirectX)
	add(0x31, "AND", modeIndirectY)

	add(0x49, "EOR", modeImmediate)
	add(0x45, "EOR", modeZP)
	add(0x55, "EOR", modeZPX)
	add(0x4D, "EOR", modeAbsolute)
	add(0x5D, "EOR", modeAbsoluteX)
	add(0x59, "EOR", modeAbsoluteY)
	add(0x41, "EOR", modeIndirectX)
	add(0x51, "EOR", modeIndirectY)

	add(0x09, "ORA", modeImmediate)
	add(0x05, "ORA", modeZP)
	add(0x15, "ORA", modeZPX)
	add(0x0D, "ORA", modeAbsolute)
	add(0x1D, "ORA", modeAbsoluteX)
	add(0x19, "ORA", modeAbsoluteY)
	add(0x01, "ORA", modeIndirectX)
	add(0x11, "ORA", modeIndirectY)

	add(0xC9, "CMP", modeImmediate)
	add(0xC5, "CMP", modeZP)
	add(0xD5, "CMP", modeZPX)
	add(0xCD, "CMP", modeAbsolute)
	add(0xDD, "CMP", modeAbsoluteX)
	add(0xD9, "CMP", modeAbsoluteY)
	add(0xC1, "CMP", modeIndirectX)
	add(0xD1, "CMP", modeIndirectY)

	add(0xE0, "CPX", modeImmediate)
	add(0xE4, "CPX", modeZP)
	add(0xEC, "CPX", modeAbsolute)

	add(0xC0, "CPY", modeImmediate)
	add(0xC4, "CPY", modeZP)
	add(0xCC, "CPY", modeAbsolute)

	add(0xA9, "LDA", modeImmediate)
	add(0xA5, "LDA", modeZP)
	add(0xB5, "LDA", modeZPX)
	add(0xAD, "LDA", modeAbsolute)
	add(0xBD, "LDA", modeAbsoluteX)
	add(0xB9, "LDA", modeAbsoluteY)
	add(0xA1, "LDA", modeIndirectX)
	add(0xB1, "LDA", modeIndirectY)

	add(0xA2, "LDX", modeImmediate)
	add(0xA6, "LDX", modeZP)
	add(0xB6, "LDX", modeZPY)
	add(0xAE, "LDX", modeAbsolute)
	add(0xBE, "LDX", modeAbsoluteY)

	add(0xA0, "LDY", modeImmediate)
	add(0xA4, "LDY", modeZP)
	add(0xB4, "LDY", modeZPX)
	add(0xAC, "LDY", modeAbsolute)
	add(0xBC, "LDY", modeAbsoluteX)

	add(0x85, "STA", modeZP)
	add(0x95, "STA", modeZPX)
	add(0x8D, "STA", modeAbsolute)
	add(0x9D, "STA", modeAbsoluteX)
	add(0x99, "STA", modeAbsoluteY)
	add(0x81, "STA", modeIndirectX)
	add(0x91, "STA", modeIndirectY)

	add(0x86, "STX", modeZP)
	add(0x96, "STX", modeZPY)
	add(0x8E, "STX", modeAbsolute)

	add(0x84, "STY", modeZP)
	add(0x94, "STY", modeZPX)
	add(0x8C, "STY", modeAbsolute)

	add(0xAA, "TAX", modeImplied)
	add(0xA8, "TAY", modeImplied)
	add(0xBA, "TSX", modeImplied)
	add(0x8A, "TXA", modeImplied)
	add(0x98, "TYA", modeImplied)
	add(0x9A, "TXS", modeImplied)

	add(0x48, "PHA", modeImplied)
	add(0x08, "PHP", modeImplied)
	add(0x68, "PLA", modeImplied)
	add(0x28, "PLP", modeImplied)

	add(0xE6, "INC", modeZP)
	add(0xF6, "INC", modeZPX)
	add(0xEE, "INC", modeAbsolute)
	add(0xFE, "INC", modeAbsoluteX)

	add(0xC6, "DEC", modeZP)
	add(0xD6, "DEC", modeZPX)
	add(0xCE, "DEC", modeAbsolute)
	add(0xDE, "DEC", modeAbsoluteX)

	add(0xE8, "INX", modeImplied)
	add(0xC8, "INY", modeImplied)
	add(0xCA, "DEX", modeImplied)
	add(0x88, "DEY", modeImplied)

	add(0x0A, "ASL", modeAccumulator)
	add(0x06, "ASL", modeZP)
	add(0x16, "ASL", modeZPX)
	add(0x0E, "ASL", modeAbsolute)
	add(0x1E, "ASL", modeAbsoluteX)

	add(0x4A, "LSR", modeAccumulator)
	add(0x46, "LSR", modeZP)
	add(0x56, "LSR", modeZPX)
	add(0x4E, "LSR", modeAbsolute)
	add(0x5E, "LSR", modeAbsoluteX)

	add(0x2A, "ROL", modeAccumulator)
	add(0x26, "ROL", modeZP)
	add(0x36, "ROL", modeZPX)
	add(0x2E, "ROL", modeAbsolute)
	add(0x3E, "ROL", modeAbsoluteX)

	add(0x6A, "ROR", modeAccumulator)
	add(0x66, "ROR", modeZP)
	add(0x76, "ROR", modeZPX)
	add(0x6E, "ROR", modeAbsolute)
	add(0x7E, "ROR", modeAbsoluteX)

	add(0x18, "CLC", modeImplied)
	add(0x38, "SEC", modeImplied)
	add(0x58, "CLI", modeImplied)
	add(0x78, "SEI", modeImplied)
	add(0xD8, "CLD", modeImplied)
	add(0xF8, "SED", modeImplied)
	add(0xB8, "CLV", modeImplied)

	add(0x90, "BCC", modeRelative)
	add(0xB0, "BCS", modeRelative)
	add(0xF0, "BEQ", modeRelative)
	add(0xD0, "BNE", modeRelative)
	add(0x30, "BMI", modeRelative)
	add(0x10, "BPL", modeRelative)
	add(0x50, "BVC", modeRelative)
	add(0x70, "BVS", modeRelative)

	add(0x4C, "JMP", modeAbsolute)
	add(0x6C, "JMP", modeIndirect)
	add(0x20, "JSR", modeAbsolute)
	add(0x60, "RTS", modeImplied)
	add(0x00, "BRK", modeImplied)
	add(0x40, "RTI", modeImplied)

	add(0x24, "BIT", modeZP)
	add(0x2C, "BIT", modeAbsolute)

	add(0xEA, "NOP", modeImplied)

	return m
}

// Step disassembles the instruction at pc and returns its text along
// with the number of bytes it occupies (1, 2, or 3), so callers can
// advance pc by that amount to disassemble the next instruction.
func Step(pc uint16, mem memory.Memory) (string, int) {
	opcode := mem.Read(pc)
	in, ok := opcodes[opcode]
	if !ok {
		return fmt.Sprintf("%04X  %02X        ???", pc, opcode), 1
	}

	switch in.mode {
	case modeImplied:
		return fmt.Sprintf("%04X  %02X        %s", pc, opcode, in.mnemonic), 1
	case modeAccumulator:
		return fmt.Sprintf("%04X  %02X        %s A", pc, opcode, in.mnemonic), 1
	case modeImmediate:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s #$%02X", pc, opcode, v, in.mnemonic, v), 2
	case modeZP:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s $%02X", pc, opcode, v, in.mnemonic, v), 2
	case modeZPX:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s $%02X,X", pc, opcode, v, in.mnemonic, v), 2
	case modeZPY:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s $%02X,Y", pc, opcode, v, in.mnemonic, v), 2
	case modeIndirectX:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s ($%02X,X)", pc, opcode, v, in.mnemonic, v), 2
	case modeIndirectY:
		v := mem.Read(pc + 1)
		return fmt.Sprintf("%04X  %02X %02X     %s ($%02X),Y", pc, opcode, v, in.mnemonic, v), 2
	case modeRelative:
		v := mem.Read(pc + 1)
		target := pc + 2 + uint16(int8(v))
		return fmt.Sprintf("%04X  %02X %02X     %s $%04X", pc, opcode, v, in.mnemonic, target), 2
	case modeAbsolute:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		addr := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("%04X  %02X %02X %02X  %s $%04X", pc, opcode, lo, hi, in.mnemonic, addr), 3
	case modeAbsoluteX:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		addr := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("%04X  %02X %02X %02X  %s $%04X,X", pc, opcode, lo, hi, in.mnemonic, addr), 3
	case modeAbsoluteY:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		addr := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("%04X  %02X %02X %02X  %s $%04X,Y", pc, opcode, lo, hi, in.mnemonic, addr), 3
	case modeIndirect:
		lo, hi := mem.Read(pc+1), mem.Read(pc+2)
		addr := uint16(hi)<<8 | uint16(lo)
		return fmt.Sprintf("%04X  %02X %02X %02X  %s ($%04X)", pc, opcode, lo, hi, in.mnemonic, addr), 3
	}
	return fmt.Sprintf("%04X  %02X        ???", pc, opcode), 1
}
