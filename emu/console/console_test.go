/*
 * LC3 - Console device test cases.
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

package console

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// Wait out the pump routine. Input bytes cross a goroutine before
// Poll can see them.
func pollWait(con *Console) (byte, bool) {
	for range 1000 {
		if key, ok := con.Poll(); ok {
			return key, ok
		}
		time.Sleep(time.Millisecond)
	}
	return 0, false
}

// Test non blocking poll sees queued input and drains it in order.
func TestPoll(t *testing.T) {
	var out bytes.Buffer
	con := NewPipe(strings.NewReader("ab"), &out)

	key, ok := pollWait(con)
	if !ok || key != 'a' {
		t.Errorf("Poll got: %02x wanted: %02x", key, 'a')
	}
	key, ok = pollWait(con)
	if !ok || key != 'b' {
		t.Errorf("Poll got: %02x wanted: %02x", key, 'b')
	}

	// Exhausted input polls not ready.
	time.Sleep(10 * time.Millisecond)
	if _, ok = con.Poll(); ok {
		t.Errorf("Poll ready on exhausted input")
	}
}

// Test blocking read and the end of input convention.
func TestReadByte(t *testing.T) {
	var out bytes.Buffer
	con := NewPipe(strings.NewReader("x"), &out)

	if key := con.ReadByte(); key != 'x' {
		t.Errorf("ReadByte got: %02x wanted: %02x", key, 'x')
	}
	// End of input reads as zero.
	if key := con.ReadByte(); key != 0 {
		t.Errorf("ReadByte at EOF got: %02x wanted: %02x", key, 0)
	}
}

// Test output is held until flushed.
func TestOutput(t *testing.T) {
	var out bytes.Buffer
	con := NewPipe(strings.NewReader(""), &out)

	con.WriteString("Hi")
	con.WriteByte('!')
	if err := con.Flush(); err != nil {
		t.Errorf("Flush error: %v", err)
	}
	if out.String() != "Hi!" {
		t.Errorf("output got: %q wanted: %q", out.String(), "Hi!")
	}
}

// Raw and Restore are no-ops on a pipe console.
func TestRawOnPipe(t *testing.T) {
	var out bytes.Buffer
	con := NewPipe(strings.NewReader(""), &out)
	if err := con.Raw(); err != nil {
		t.Errorf("Raw on pipe error: %v", err)
	}
	con.Restore()
	con.Restore()
}
