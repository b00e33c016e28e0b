// Command disassemble prints a textual disassembly of a raw 6502
// binary image, one instruction per line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/a-n-t-h-o-n-y/mos6502/disassemble"
	"github.com/a-n-t-h-o-n-y/mos6502/memory"
	"github.com/a-n-t-h-o-n-y/mos6502/romload"
)

func main() {
	offset := flag.Int("offset", 0, "load offset within the 64KiB address space")
	start := flag.Int("start", -1, "starting address to disassemble from (defaults to offset)")
	count := flag.Int("count", 32, "number of instructions to disassemble")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: disassemble [flags] <rom-file>")
		os.Exit(1)
	}

	data, err := romload.Load(flag.Arg(0), uint16(*offset))
	if err != nil {
		log.Fatalf("loading rom: %v", err)
	}

	ram := memory.NewFlatRAM()
	ram.LoadAt(uint16(*offset), data)

	pc := uint16(*offset)
	if *start >= 0 {
		pc = uint16(*start)
	}
	for i := 0; i < *count; i++ {
		line, n := disassemble.Step(pc, ram)
		fmt.Println(line)
		pc += uint16(n)
	}
}
