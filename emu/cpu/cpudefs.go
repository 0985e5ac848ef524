/*
 * LC3 - CPU definitions.
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

// Opcodes, selected by the top four bits of an instruction.
const (
	OpBR   = iota // Conditional branch
	OpADD         // Add register or immediate
	OpLD          // Load PC relative
	OpST          // Store PC relative
	OpJSR         // Jump to subroutine
	OpAND         // And register or immediate
	OpLDR         // Load base plus offset
	OpSTR         // Store base plus offset
	OpRTI         // Return from interrupt, not supported
	OpNOT         // Complement
	OpLDI         // Load indirect
	OpSTI         // Store indirect
	OpJMP         // Jump register, RET when base is R7
	OpRES         // Reserved
	OpLEA         // Load effective address
	OpTRAP        // Host service call
)

// Condition flags. Exactly one is set after any instruction that
// writes a general register, from the signed view of the result.
const (
	FlagPos  uint16 = 1 << 0
	FlagZero uint16 = 1 << 1
	FlagNeg  uint16 = 1 << 2
)

// Trap service vectors, low 8 bits of a TRAP instruction.
const (
	TrapGETC  uint16 = 0x20 // Read one byte, no echo
	TrapOUT   uint16 = 0x21 // Write low byte of R0
	TrapPUTS  uint16 = 0x22 // Write word string, one byte per word
	TrapIN    uint16 = 0x23 // Prompt, read one byte, echo
	TrapPUTSP uint16 = 0x24 // Write packed byte string
	TrapHALT  uint16 = 0x25 // Stop the machine
)

// PCStart is where execution begins after boot.
const PCStart uint16 = 0x3000
