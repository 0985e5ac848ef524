/*
 * LC3 - Whole program test cases.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package cpu

import (
	"testing"

	"github.com/rcornwell/LC3/emu/memory"
)

// Run a small program placed at the boot address.
func runImage(t *testing.T, cpu *CPU, mem *memory.Memory, words ...uint16) {
	t.Helper()
	mem.Load(PCStart, words)
	if err := cpu.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if cpu.Running() {
		t.Fatalf("program did not halt")
	}
}

// A single HALT.
func TestRunHalt(t *testing.T) {
	cpu, mem, out := setup("")
	runImage(t, cpu, mem,
		0xf025, // HALT
	)
	if out.String() != "HALT\n" {
		t.Errorf("output got: %q wanted: %q", out.String(), "HALT\n")
	}
}

// Print a string through PUTS.
func TestRunHello(t *testing.T) {
	cpu, mem, out := setup("")
	runImage(t, cpu, mem,
		0xe002,      // LEA R0,#2
		0xf022,      // PUTS
		0xf025,      // HALT
		uint16('H'), // String data
		uint16('i'),
		0x0000, // Terminator
	)
	if out.String() != "HiHALT\n" {
		t.Errorf("output got: %q wanted: %q", out.String(), "HiHALT\n")
	}
}

// Add two immediates.
func TestRunAddImmediates(t *testing.T) {
	cpu, mem, out := setup("")
	runImage(t, cpu, mem,
		0x1025, // ADD R0,R0,#5
		0x103f, // ADD R0,R0,#-1
		0xf025, // HALT
	)
	if cpu.Reg(0) != 4 {
		t.Errorf("register 0 got: %04x wanted: %04x", cpu.Reg(0), 4)
	}
	if cpu.Cond() != FlagPos {
		t.Errorf("COND got: %x wanted: %x", cpu.Cond(), FlagPos)
	}
	if out.String() != "HALT\n" {
		t.Errorf("output got: %q wanted: %q", out.String(), "HALT\n")
	}
}

// Load through a pointer cell.
func TestRunIndirectLoad(t *testing.T) {
	cpu, mem, _ := setup("")
	mem.Write(0x3010, 0x00aa)
	runImage(t, cpu, mem,
		0xa001, // LDI R0,+1
		0xf025, // HALT
		0x3010, // Pointer
	)
	if cpu.Reg(0) != 0x00aa {
		t.Errorf("register 0 got: %04x wanted: %04x", cpu.Reg(0), 0x00aa)
	}
	if cpu.Cond() != FlagPos {
		t.Errorf("COND got: %x wanted: %x", cpu.Cond(), FlagPos)
	}
}

// Call a subroutine and come back on R7.
func TestRunSubroutine(t *testing.T) {
	cpu, mem, _ := setup("")
	runImage(t, cpu, mem,
		0x4801, // JSR +1
		0xf025, // HALT
		0x1261, // ADD R1,R1,#1
		0xc1c0, // JMP R7 (RET)
	)
	if cpu.Reg(1) != 1 {
		t.Errorf("register 1 got: %04x wanted: %04x", cpu.Reg(1), 1)
	}
}

// Poll the keyboard status register until a key shows up, then read
// the data register.
func TestRunKeyboardPoll(t *testing.T) {
	cpu, mem, _ := setup("A")
	runImage(t, cpu, mem,
		0xa003, // LDI R0,KBSR pointer
		0x07fe, // BRzp -2, spin until the ready bit reads negative
		0xa202, // LDI R1,KBDR pointer
		0xf025, // HALT
		0xfe00, // KBSR
		0xfe02, // KBDR
	)
	if cpu.Reg(1) != uint16('A') {
		t.Errorf("register 1 got: %04x wanted: %04x", cpu.Reg(1), uint16('A'))
	}
}
