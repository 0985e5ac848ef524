/*
 * LC3 - Console device.
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
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Console attaches the machine to the host terminal. A reader
// routine pumps input bytes into a channel so that the keyboard
// status register can be polled without blocking while the GETC and
// IN services block on the same stream. Output is buffered and
// flushed by the trap services.
type Console struct {
	in       io.Reader
	out      *bufio.Writer
	keys     chan byte
	fd       int
	oldState *term.State
	mu       sync.Mutex
}

// New returns a console on the process standard streams.
func New() *Console {
	con := &Console{
		in:   os.Stdin,
		out:  bufio.NewWriter(os.Stdout),
		keys: make(chan byte, 256),
		fd:   int(os.Stdin.Fd()),
	}
	go con.pump()
	return con
}

// NewPipe returns a console on arbitrary streams. Used by tests and
// when the simulator runs with redirected input.
func NewPipe(in io.Reader, out io.Writer) *Console {
	con := &Console{
		in:   in,
		out:  bufio.NewWriter(out),
		keys: make(chan byte, 256),
		fd:   -1,
	}
	go con.pump()
	return con
}

// Raw puts the host terminal into raw, no echo mode so keystrokes
// arrive one byte at a time. Does nothing when input is not a
// terminal, which lets images run with piped input.
func (con *Console) Raw() error {
	if con.fd < 0 || !term.IsTerminal(con.fd) {
		return nil
	}
	state, err := term.MakeRaw(con.fd)
	if err != nil {
		return err
	}
	con.mu.Lock()
	con.oldState = state
	con.mu.Unlock()
	return nil
}

// Restore puts the terminal back the way Raw found it. Safe to call
// more than once and from the signal handler.
func (con *Console) Restore() {
	con.mu.Lock()
	defer con.mu.Unlock()
	if con.oldState != nil {
		_ = term.Restore(con.fd, con.oldState)
		con.oldState = nil
	}
}

// Poll reports one pending input byte without blocking. Satisfies
// the keyboard device interface of the memory package.
func (con *Console) Poll() (byte, bool) {
	select {
	case key, ok := <-con.keys:
		if !ok {
			return 0, false
		}
		return key, true
	default:
		return 0, false
	}
}

// ReadByte blocks until one input byte is available. End of input
// reads as zero.
func (con *Console) ReadByte() byte {
	key, ok := <-con.keys
	if !ok {
		return 0
	}
	return key
}

// WriteByte queues one output byte.
func (con *Console) WriteByte(b byte) {
	_ = con.out.WriteByte(b)
}

// WriteString queues a string of output bytes.
func (con *Console) WriteString(s string) {
	_, _ = con.out.WriteString(s)
}

// Flush pushes queued output to the host.
func (con *Console) Flush() error {
	return con.out.Flush()
}

// pump copies input into the key channel one byte at a time. The
// channel is closed on end of input or read error.
func (con *Console) pump() {
	buf := make([]byte, 1)
	for {
		n, err := con.in.Read(buf)
		if n > 0 {
			con.keys <- buf[0]
		}
		if err != nil {
			close(con.keys)
			return
		}
	}
}
