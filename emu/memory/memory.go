/*
 * LC3 - Low level memory.
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

package memory

// Memory mapped keyboard registers.
const (
	KBSR uint16 = 0xfe00 // Keyboard status, bit 15 set when a key is pending
	KBDR uint16 = 0xfe02 // Keyboard data, last key read

	kbReady uint16 = 0x8000
)

// Keyboard is the input side of the console device. Poll must not
// block; it reports one pending byte if any.
type Keyboard interface {
	Poll() (byte, bool)
}

// Memory holds the 65536 word address space. Reads of the keyboard
// status register poll the attached keyboard and refresh KBSR/KBDR
// before the value is returned, so a program that sees the ready bit
// can read KBDR on the next cycle and get a valid byte. All other
// cells are plain storage, writes to the device cells included.
type Memory struct {
	cells [65536]uint16
	kbd   Keyboard
}

// New returns zeroed memory with no keyboard attached.
func New() *Memory {
	return &Memory{}
}

// SetKeyboard attaches the device polled on KBSR reads.
func (m *Memory) SetKeyboard(kbd Keyboard) {
	m.kbd = kbd
}

// Read returns the word at addr, running the keyboard handshake when
// addr is the keyboard status register.
func (m *Memory) Read(addr uint16) uint16 {
	if addr == KBSR {
		if key, ok := m.poll(); ok {
			m.cells[KBSR] = kbReady
			m.cells[KBDR] = uint16(key)
		} else {
			m.cells[KBSR] = 0
		}
	}
	return m.cells[addr]
}

// Write stores value at addr unconditionally.
func (m *Memory) Write(addr uint16, value uint16) {
	m.cells[addr] = value
}

// Load stores words contiguously starting at origin. Words past the
// top of memory are dropped.
func (m *Memory) Load(origin uint16, words []uint16) {
	for i, w := range words {
		addr := int(origin) + i
		if addr > 0xffff {
			break
		}
		m.cells[addr] = w
	}
}

func (m *Memory) poll() (byte, bool) {
	if m.kbd == nil {
		return 0, false
	}
	return m.kbd.Poll()
}
