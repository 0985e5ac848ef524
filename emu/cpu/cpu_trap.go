/*
 * LC3 - Trap service routines.
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

// Host service call. R7 gets the return address first, the low 8
// bits pick the service. Vectors outside the defined set do
// nothing.
func (cpu *CPU) opTRAP(inst uint16) error {
	cpu.regs[7] = cpu.pc
	switch inst & 0xff {
	case TrapGETC:
		return cpu.trapGetc()
	case TrapOUT:
		return cpu.trapOut()
	case TrapPUTS:
		return cpu.trapPuts()
	case TrapIN:
		return cpu.trapIn()
	case TrapPUTSP:
		return cpu.trapPutsp()
	case TrapHALT:
		return cpu.trapHalt()
	}
	return nil
}

// Read one byte into R0. No echo, flags untouched.
func (cpu *CPU) trapGetc() error {
	cpu.regs[0] = uint16(cpu.con.ReadByte())
	return nil
}

// Write the low byte of R0.
func (cpu *CPU) trapOut() error {
	cpu.con.WriteByte(byte(cpu.regs[0]))
	return cpu.con.Flush()
}

// Write the string starting at R0, one character per word, until a
// zero word.
func (cpu *CPU) trapPuts() error {
	for addr := cpu.regs[0]; ; addr++ {
		word := cpu.mem.Read(addr)
		if word == 0 {
			break
		}
		cpu.con.WriteByte(byte(word))
	}
	return cpu.con.Flush()
}

// Prompt, read one byte, echo it, leave it in R0.
func (cpu *CPU) trapIn() error {
	cpu.con.WriteString("Enter a character: ")
	if err := cpu.con.Flush(); err != nil {
		return err
	}
	key := cpu.con.ReadByte()
	cpu.con.WriteByte(key)
	cpu.regs[0] = uint16(key)
	return cpu.con.Flush()
}

// Write the packed string starting at R0, low byte then high byte
// of each word, until a zero word. A word with only its low byte
// set prints that byte alone, the zero high byte is not output.
func (cpu *CPU) trapPutsp() error {
	for addr := cpu.regs[0]; ; addr++ {
		word := cpu.mem.Read(addr)
		if word == 0 {
			break
		}
		cpu.con.WriteByte(byte(word))
		if hi := byte(word >> 8); hi != 0 {
			cpu.con.WriteByte(hi)
		}
	}
	return cpu.con.Flush()
}

// Announce the halt and stop the run loop.
func (cpu *CPU) trapHalt() error {
	cpu.con.WriteString("HALT\n")
	cpu.running = false
	return cpu.con.Flush()
}
