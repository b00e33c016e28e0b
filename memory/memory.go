// Package memory provides the byte-addressable storage the cpu package
// operates against, along with a flat RAM implementation suitable for
// tests and simple hosts.
package memory

// Address is a 16-bit location in the CPU's address space.
type Address = uint16

// Byte is an 8-bit value.
type Byte = uint8

// Memory is the interface the cpu package requires of any backing
// store. Aliasing, mirroring, and I/O side effects on Read/Write are
// the implementation's concern, not this interface's.
type Memory interface {
	Read(addr Address) Byte
	Write(addr Address, val Byte)
}

// FlatRAM is a simple 64 KiB flat implementation of Memory, useful for
// tests and for hosts that don't need bank switching or memory-mapped
// I/O.
type FlatRAM struct {
	mem [65536]Byte
}

// NewFlatRAM returns a zeroed 64 KiB RAM.
func NewFlatRAM() *FlatRAM {
	return &FlatRAM{}
}

// NewFilledRAM returns a 64 KiB RAM with every byte set to fill. Tests
// use this to catch addressing bugs that a zero-filled image would
// hide (a stray zero read looks identical to an unwritten cell).
func NewFilledRAM(fill Byte) *FlatRAM {
	r := &FlatRAM{}
	for i := range r.mem {
		r.mem[i] = fill
	}
	return r
}

// Read returns the byte at addr.
func (r *FlatRAM) Read(addr Address) Byte {
	return r.mem[addr]
}

// Write stores val at addr.
func (r *FlatRAM) Write(addr Address, val Byte) {
	r.mem[addr] = val
}

// LoadAt copies data into the RAM starting at offset, without any of
// the bounds checking romload.Load performs (callers past that point
// are assumed to already have a validated, sized image).
func (r *FlatRAM) LoadAt(offset Address, data []Byte) {
	copy(r.mem[offset:], data)
}
