/*
 * LC3 - Standard instructions.
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
	"fmt"

	"github.com/rcornwell/LC3/util/bits"
)

// Conditional branch. Branch when the instruction's n/z/p mask
// overlaps the condition register. A zero mask never branches.
func (cpu *CPU) opBR(inst uint16) error {
	if (inst>>9)&0x7&cpu.cond != 0 {
		cpu.pc += bits.SignExtend(inst&0x1ff, 9)
	}
	return nil
}

// Add register or sign extended five bit immediate.
func (cpu *CPU) opADD(inst uint16) error {
	dr := (inst >> 9) & 0x7
	sr1 := (inst >> 6) & 0x7
	if inst&0x20 != 0 {
		cpu.regs[dr] = cpu.regs[sr1] + bits.SignExtend(inst&0x1f, 5)
	} else {
		cpu.regs[dr] = cpu.regs[sr1] + cpu.regs[inst&0x7]
	}
	cpu.updateFlags(dr)
	return nil
}

// Load PC relative.
func (cpu *CPU) opLD(inst uint16) error {
	dr := (inst >> 9) & 0x7
	cpu.regs[dr] = cpu.mem.Read(cpu.pc + bits.SignExtend(inst&0x1ff, 9))
	cpu.updateFlags(dr)
	return nil
}

// Store PC relative.
func (cpu *CPU) opST(inst uint16) error {
	sr := (inst >> 9) & 0x7
	cpu.mem.Write(cpu.pc+bits.SignExtend(inst&0x1ff, 9), cpu.regs[sr])
	return nil
}

// Jump to subroutine, PC relative or through a base register. The
// return address is the already incremented PC, stashed in R7.
func (cpu *CPU) opJSR(inst uint16) error {
	cpu.regs[7] = cpu.pc
	if inst&0x0800 != 0 {
		cpu.pc += bits.SignExtend(inst&0x7ff, 11)
	} else {
		cpu.pc = cpu.regs[(inst>>6)&0x7]
	}
	return nil
}

// And register or sign extended five bit immediate.
func (cpu *CPU) opAND(inst uint16) error {
	dr := (inst >> 9) & 0x7
	sr1 := (inst >> 6) & 0x7
	if inst&0x20 != 0 {
		cpu.regs[dr] = cpu.regs[sr1] & bits.SignExtend(inst&0x1f, 5)
	} else {
		cpu.regs[dr] = cpu.regs[sr1] & cpu.regs[inst&0x7]
	}
	cpu.updateFlags(dr)
	return nil
}

// Load base register plus six bit offset.
func (cpu *CPU) opLDR(inst uint16) error {
	dr := (inst >> 9) & 0x7
	base := (inst >> 6) & 0x7
	cpu.regs[dr] = cpu.mem.Read(cpu.regs[base] + bits.SignExtend(inst&0x3f, 6))
	cpu.updateFlags(dr)
	return nil
}

// Store base register plus six bit offset.
func (cpu *CPU) opSTR(inst uint16) error {
	sr := (inst >> 9) & 0x7
	base := (inst >> 6) & 0x7
	cpu.mem.Write(cpu.regs[base]+bits.SignExtend(inst&0x3f, 6), cpu.regs[sr])
	return nil
}

// Return from interrupt needs supervisor state this machine does
// not model.
func (cpu *CPU) opRTI(_ uint16) error {
	return fmt.Errorf("%w: RTI at %04x", ErrIllegalInstruction, cpu.pc-1)
}

// Complement.
func (cpu *CPU) opNOT(inst uint16) error {
	dr := (inst >> 9) & 0x7
	cpu.regs[dr] = ^cpu.regs[(inst>>6)&0x7]
	cpu.updateFlags(dr)
	return nil
}

// Load indirect, one level of chasing through a PC relative cell.
func (cpu *CPU) opLDI(inst uint16) error {
	dr := (inst >> 9) & 0x7
	cpu.regs[dr] = cpu.mem.Read(cpu.mem.Read(cpu.pc + bits.SignExtend(inst&0x1ff, 9)))
	cpu.updateFlags(dr)
	return nil
}

// Store indirect.
func (cpu *CPU) opSTI(inst uint16) error {
	sr := (inst >> 9) & 0x7
	cpu.mem.Write(cpu.mem.Read(cpu.pc+bits.SignExtend(inst&0x1ff, 9)), cpu.regs[sr])
	return nil
}

// Jump through a base register. RET is JMP R7.
func (cpu *CPU) opJMP(inst uint16) error {
	cpu.pc = cpu.regs[(inst>>6)&0x7]
	return nil
}

// Reserved encoding.
func (cpu *CPU) opRES(_ uint16) error {
	return fmt.Errorf("%w: reserved opcode at %04x", ErrIllegalInstruction, cpu.pc-1)
}

// Load effective address. The flags follow the address itself, not
// a value read from memory.
func (cpu *CPU) opLEA(inst uint16) error {
	dr := (inst >> 9) & 0x7
	cpu.regs[dr] = cpu.pc + bits.SignExtend(inst&0x1ff, 9)
	cpu.updateFlags(dr)
	return nil
}
