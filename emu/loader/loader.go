/*
 * LC3 - Program image loader.
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

package loader

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/rcornwell/LC3/emu/memory"
)

// Load reads one program image into memory. The image is a sequence
// of big endian words, the first being the address to load the rest
// at. Truncated images are not an error, loading stops at end of
// file. A trailing odd byte is dropped.
func Load(path string, mem *memory.Memory) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return Read(file, mem)
}

// Read loads an image from an open stream.
func Read(r io.Reader, mem *memory.Memory) error {
	br := bufio.NewReader(r)

	origin, err := readWord(br)
	if err != nil {
		// Empty image, nothing to place.
		return nil
	}

	words := make([]uint16, 0, 256)
	for len(words) < 0x10000-int(origin) {
		word, err := readWord(br)
		if err != nil {
			break
		}
		words = append(words, word)
	}
	mem.Load(origin, words)
	return nil
}

func readWord(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}
