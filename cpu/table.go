package cpu

import "github.com/a-n-t-h-o-n-y/mos6502/memory"

// instrFunc executes an instruction against an already-resolved
// operand and returns any extra cycles beyond the opcode's base count
// (branch taken/not-taken, page-crossing penalties are applied by the
// caller from entry flags, not by the instruction itself).
type instrFunc func(c *CPU, mem memory.Memory, op operand) int

// entry binds one legal opcode byte to its addressing mode,
// instruction body, and documented base cycle count. pageCheck marks
// the read-indexed modes (LDA/LDX/LDY/ADC/SBC/AND/EOR/ORA/CMP on
// ABX/ABY/IZY) that pay +1 cycle when the addressing mode crosses a
// page; writes never do (STA pays the worst case unconditionally).
type entry struct {
	addressing addressingFunc
	instr      instrFunc
	cycles     int
	pageCheck  bool
	legal      bool
}

// Table is a 256-entry opcode dispatch table: one entry per possible
// opcode byte. Illegal entries are zero-valued (legal == false) and
// Step reports IllegalInstruction for them.
type Table [256]entry

func op(addressing addressingFunc, instr instrFunc, cycles int, pageCheck bool) entry {
	return entry{addressing: addressing, instr: instr, cycles: cycles, pageCheck: pageCheck, legal: true}
}

// NewTable builds the 256-entry opcode dispatch table for the 56
// official 6502 instructions across their 151 legal addressing-mode
// encodings. It is pure data and is meant to be built once and shared
// across CPU instances, per spec's design note on opcode-table
// polymorphism: callers that want this parametrised over a concrete
// Memory implementation can wrap Table in their own generic helper,
// since the entries here already only depend on the memory.Memory
// interface, not a specific implementation.
func NewTable() Table {
	var t Table

	t[0x69] = op(addrIMM, iADC, 2, false)
	t[0x65] = op(addrZP0, iADC, 3, false)
	t[0x75] = op(addrZPX, iADC, 4, false)
	t[0x6D] = op(addrABS, iADC, 4, false)
	t[0x7D] = op(addrABX, iADC, 4, true)
	t[0x79] = op(addrABY, iADC, 4, true)
	t[0x61] = op(addrIZX, iADC, 6, false)
	t[0x71] = op(addrIZY, iADC, 5, true)

	t[0xE9] = op(addrIMM, iSBC, 2, false)
	t[0xE5] = op(addrZP0, iSBC, 3, false)
	t[0xF5] = op(addrZPX, iSBC, 4, false)
	t[0xED] = op(addrABS, iSBC, 4, false)
	t[0xFD] = op(addrABX, iSBC, 4, true)
	t[0xF9] = op(addrABY, iSBC, 4, true)
	t[0xE1] = op(addrIZX, iSBC, 6, false)
	t[0xF1] = op(addrIZY, iSBC, 5, true)

	t[0x29] = op(addrIMM, iAND, 2, false)
	t[0x25] = op(addrZP0, iAND, 3, false)
	t[0x35] = op(addrZPX, iAND, 4, false)
	t[0x2D] = op(addrABS, iAND, 4, false)
	t[0x3D] = op(addrABX, iAND, 4, true)
	t[0x39] = op(addrABY, iAND, 4, true)
	t[0x21] = op(addrIZX, iAND, 6, false)
	t[0x31] = op(addrIZY, iAND, 5, true)

	t[0x49] = op(addrIMM, iEOR, 2, false)
	t[0x45] = op(addrZP0, iEOR, 3, false)
	t[0x55] = op(addrZPX, iEOR, 4, false)
	t[0x4D] = op(addrABS, iEOR, 4, false)
	t[0x5D] = op(addrABX, iEOR, 4, true)
	t[0x59] = op(addrABY, iEOR, 4, true)
	t[0x41] = op(addrIZX, iEOR, 6, false)
	t[0x51] = op(addrIZY, iEOR, 5, true)

	t[0x09] = op(addrIMM, iORA, 2, false)
	t[0x05] = op(addrZP0, iORA, 3, false)
	t[0x15] = op(addrZPX, iORA, 4, false)
	t[0x0D] = op(addrABS, iORA, 4, false)
	t[0x1D] = op(addrABX, iORA, 4, true)
	t[0x19] = op(addrABY, iORA, 4, true)
	t[0x01] = op(addrIZX, iORA, 6, false)
	t[0x11] = op(addrIZY, iORA, 5, true)

	t[0xC9] = op(addrIMM, iCMP, 2, false)
	t[0xC5] = op(addrZP0, iCMP, 3, false)
	t[0xD5] = op(addrZPX, iCMP, 4, false)
	t[0xCD] = op(addrABS, iCMP, 4, false)
	t[0xDD] = op(addrABX, iCMP, 4, true)
	t[0xD9] = op(addrABY, iCMP, 4, true)
	t[0xC1] = op(addrIZX, iCMP, 6, false)
	t[0xD1] = op(addrIZY, iCMP, 5, true)

	t[0xE0] = op(addrIMM, iCPX, 2, false)
	t[0xE4] = op(addrZP0, iCPX, 3, false)
	t[0xEC] = op(addrABS, iCPX, 4, false)

	t[0xC0] = op(addrIMM, iCPY, 2, false)
	t[0xC4] = op(addrZP0, iCPY, 3, false)
	t[0xCC] = op(addrABS, iCPY, 4, false)

	t[0xA9] = op(addrIMM, iLDA, 2, false)
	t[0xA5] = op(addrZP0, iLDA, 3, false)
	t[0xB5] = op(addrZPX, iLDA, 4, false)
	t[0xAD] = op(addrABS, iLDA, 4, false)
	t[0xBD] = op(addrABX, iLDA, 4, true)
	t[0xB9] = op(addrABY, iLDA, 4, true)
	t[0xA1] = op(addrIZX, iLDA, 6, false)
	t[0xB1] = op(addrIZY, iLDA, 5, true)

	t[0xA2] = op(addrIMM, iLDX, 2, false)
	t[0xA6] = op(addrZP0, iLDX, 3, false)
	t[0xB6] = op(addrZPY, iLDX, 4, false)
	t[0xAE] = op(addrABS, iLDX, 4, false)
	t[0xBE] = op(addrABY, iLDX, 4, true)

	t[0xA0] = op(addrIMM, iLDY, 2, false)
	t[0xA4] = op(addrZP0, iLDY, 3, false)
	t[0xB4] = op(addrZPX, iLDY, 4, false)
	t[0xAC] = op(addrABS, iLDY, 4, false)
	t[0xBC] = op(addrABX, iLDY, 4, true)

	t[0x85] = op(addrZP0, iSTA, 3, false)
	t[0x95] = op(addrZPX, iSTA, 4, false)
	t[0x8D] = op(addrABS, iSTA, 4, false)
	t[0x9D] = op(addrABX, iSTA, 5, false)
	t[0x99] = op(addrABY, iSTA, 5, false)
	t[0x81] = op(addrIZX, iSTA, 6, false)
	t[0x91] = op(addrIZY, iSTA, 6, false)

	t[0x86] = op(addrZP0, iSTX, 3, false)
	t[0x96] = op(addrZPY, iSTX, 4, false)
	t[0x8E] = op(addrABS, iSTX, 4, false)

	t[0x84] = op(addrZP0, iSTY, 3, false)
	t[0x94] = op(addrZPX, iSTY, 4, false)
	t[0x8C] = op(addrABS, iSTY, 4, false)

	t[0xAA] = op(addrIMP, iTAX, 2, false)
	t[0xA8] = op(addrIMP, iTAY, 2, false)
	t[0xBA] = op(addrIMP, iTSX, 2, false)
	t[0x8A] = op(addrIMP, iTXA, 2, false)
	t[0x98] = op(addrIMP, iTYA, 2, false)
	t[0x9A] = op(addrIMP, iTXS, 2, false)

	t[0x48] = op(addrIMP, iPHA, 3, false)
	t[0x08] = op(addrIMP, iPHP, 3, false)
	t[0x68] = op(addrIMP, iPLA, 4, false)
	t[0x28] = op(addrIMP, iPLP, 4, false)

	t[0xE6] = op(addrZP0, iINC, 5, false)
	t[0xF6] = op(addrZPX, iINC, 6, false)
	t[0xEE] = op(addrABS, iINC, 6, false)
	t[0xFE] = op(addrABX, iINC, 7, false)

	t[0xC6] = op(addrZP0, iDEC, 5, false)
	t[0xD6] = op(addrZPX, iDEC, 6, false)
	t[0xCE] = op(addrABS, iDEC, 6, false)
	t[0xDE] = op(addrABX, iDEC, 7, false)

	t[0xE8] = op(addrIMP, iINX, 2, false)
	t[0xC8] = op(addrIMP, iINY, 2, false)
	t[0xCA] = op(addrIMP, iDEX, 2, false)
	t[0x88] = op(addrIMP, iDEY, 2, false)

	t[0x0A] = op(addrACC, iASLAcc, 2, false)
	t[0x06] = op(addrZP0, iASL, 5, false)
	t[0x16] = op(addrZPX, iASL, 6, false)
	t[0x0E] = op(addrABS, iASL, 6, false)
	t[0x1E] = op(addrABX, iASL, 7, false)

	t[0x4A] = op(addrACC, iLSRAcc, 2, false)
	t[0x46] = op(addrZP0, iLSR, 5, false)
	t[0x56] = op(addrZPX, iLSR, 6, false)
	t[0x4E] = op(addrABS, iLSR, 6, false)
	t[0x5E] = op(addrABX, iLSR, 7, false)

	t[0x2A] = op(addrACC, iROLAcc, 2, false)
	t[0x26] = op(addrZP0, iROL, 5, false)
	t[0x36] = op(addrZPX, iROL, 6, false)
	t[0x2E] = op(addrABS, iROL, 6, false)
	t[0x3E] = op(addrABX, iROL, 7, false)

	t[0x6A] = op(addrACC, iRORAcc, 2, false)
	t[0x66] = op(addrZP0, iROR, 5, false)
	t[0x76] = op(addrZPX, iROR, 6, false)
	t[0x6E] = op(addrABS, iROR, 6, false)
	t[0x7E] = op(addrABX, iROR, 7, false)

	t[0x18] = op(addrIMP, iCLC, 2, false)
	t[0x38] = op(addrIMP, iSEC, 2, false)
	t[0x58] = op(addrIMP, iCLI, 2, false)
	t[0x78] = op(addrIMP, iSEI, 2, false)
	t[0xD8] = op(addrIMP, iCLD, 2, false)
	t[0xF8] = op(addrIMP, iSED, 2, false)
	t[0xB8] = op(addrIMP, iCLV, 2, false)

	t[0x90] = op(addrREL, iBCC, 2, false)
	t[0xB0] = op(addrREL, iBCS, 2, false)
	t[0xF0] = op(addrREL, iBEQ, 2, false)
	t[0xD0] = op(addrREL, iBNE, 2, false)
	t[0x30] = op(addrREL, iBMI, 2, false)
	t[0x10] = op(addrREL, iBPL, 2, false)
	t[0x50] = op(addrREL, iBVC, 2, false)
	t[0x70] = op(addrREL, iBVS, 2, false)

	t[0x4C] = op(addrABS, iJMP, 3, false)
	t[0x6C] = op(addrIND, iJMP, 5, false)
	t[0x20] = op(addrABS, iJSR, 6, false)
	t[0x60] = op(addrIMP, iRTS, 6, false)
	t[0x00] = op(addrIMP, iBRK, 7, false)
	t[0x40] = op(addrIMP, iRTI, 6, false)

	t[0x24] = op(addrZP0, iBIT, 3, false)
	t[0x2C] = op(addrABS, iBIT, 4, false)

	t[0xEA] = op(addrIMP, iNOP, 2, false)

	return t
}
