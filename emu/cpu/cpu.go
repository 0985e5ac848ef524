/*
 * LC3 - CPU instruction execution.
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
	"errors"

	"github.com/rcornwell/LC3/emu/console"
	"github.com/rcornwell/LC3/emu/memory"
)

/*
   The LC-3 is a 16 bit word addressed machine with eight general
   registers, a program counter and a three flag condition register.
   Every instruction is one word, the top four bits select the
   opcode. Instruction formats:

    Register:             ADD/AND   DR, SR1, SR2   NOT  DR, SR
      +----+----+---+----+---+-----+
      | op | DR |SR1| 0  |00 | SR2 |
      +----+----+---+----+---+-----+

    Immediate:            ADD/AND   DR, SR1, imm5
      +----+----+---+----+---------+
      | op | DR |SR1| 1  |  imm5   |
      +----+----+---+----+---------+

    PC relative:          BR/LD/LDI/LEA/ST/STI
      +----+-----+----------------+
      | op | reg |    PCoffset9   |
      +----+-----+----------------+

    Base plus offset:     LDR/STR/JMP/JSRR
      +----+-----+-------+--------+
      | op | reg | BaseR | off6   |
      +----+-----+-------+--------+

   PC relative offsets are signed and added to the incremented
   program counter. All arithmetic wraps at 16 bits.
*/

// ErrIllegalInstruction reports execution of an opcode the machine
// does not support. The run loop stops on it.
var ErrIllegalInstruction = errors.New("illegal instruction")

// CPU bundles the whole machine: registers, condition flags, the
// run flag, and the attached memory and console. Handlers are
// methods reached through a table indexed by opcode.
type CPU struct {
	regs    [8]uint16
	pc      uint16
	cond    uint16
	running bool

	mem   *memory.Memory
	con   *console.Console
	table [16]func(uint16) error
}

// New boots a machine: registers clear, condition register on the
// zero flag, execution starting at PCStart.
func New(mem *memory.Memory, con *console.Console) *CPU {
	cpu := &CPU{
		mem:     mem,
		con:     con,
		pc:      PCStart,
		cond:    FlagZero,
		running: true,
	}
	cpu.createTable()
	return cpu
}

// All sixteen encodings are present, RTI and the reserved slot as
// explicit fatal entries.
func (cpu *CPU) createTable() {
	cpu.table = [16]func(uint16) error{
		//   0         1         2         3
		cpu.opBR, cpu.opADD, cpu.opLD, cpu.opST,
		//   4         5         6         7
		cpu.opJSR, cpu.opAND, cpu.opLDR, cpu.opSTR,
		//   8         9         A         B
		cpu.opRTI, cpu.opNOT, cpu.opLDI, cpu.opSTI,
		//   C         D         E         F
		cpu.opJMP, cpu.opRES, cpu.opLEA, cpu.opTRAP,
	}
}

// Step fetches and executes one instruction. The program counter
// points past the instruction before the handler runs, so relative
// offsets are against the next instruction.
func (cpu *CPU) Step() error {
	inst := cpu.mem.Read(cpu.pc)
	cpu.pc++
	return cpu.table[inst>>12](inst)
}

// Run executes until HALT or a fatal opcode.
func (cpu *CPU) Run() error {
	for cpu.running {
		if err := cpu.Step(); err != nil {
			cpu.running = false
			return err
		}
	}
	return nil
}

// Set the condition register from the signed view of register r.
func (cpu *CPU) updateFlags(r uint16) {
	switch {
	case cpu.regs[r] == 0:
		cpu.cond = FlagZero
	case cpu.regs[r]>>15 != 0:
		cpu.cond = FlagNeg
	default:
		cpu.cond = FlagPos
	}
}

// Reg returns general register r.
func (cpu *CPU) Reg(r int) uint16 {
	return cpu.regs[r&7]
}

// SetReg writes general register r without touching the flags.
func (cpu *CPU) SetReg(r int, value uint16) {
	cpu.regs[r&7] = value
}

// PC returns the program counter.
func (cpu *CPU) PC() uint16 {
	return cpu.pc
}

// SetPC redirects execution.
func (cpu *CPU) SetPC(pc uint16) {
	cpu.pc = pc
}

// Cond returns the condition register.
func (cpu *CPU) Cond() uint16 {
	return cpu.cond
}

// Running reports whether the machine is still running. It is false
// after HALT or a fatal opcode.
func (cpu *CPU) Running() bool {
	return cpu.running
}
