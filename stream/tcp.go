/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package stream

import (
	"bufio"
	"net"
	"sync"

	liberr "github.com/nabbar/iggytcp/errors"
)

const bufferSize = 16 * 1024

// tcpStream is the plain-TCP Stream variant: a buffered reader and a
// buffered writer over the same net.Conn, with a mutex guarding Shutdown
// against a concurrent Read/Write racing the underlying fd close.
type tcpStream struct {
	mu   sync.Mutex
	conn net.Conn
	r    *bufio.Reader
	w    *bufio.Writer
	addr net.Addr
}

// NewTCP wraps an already-dialed plain TCP connection as a Stream.
func NewTCP(conn net.Conn) Stream {
	return &tcpStream{
		conn: conn,
		r:    bufio.NewReaderSize(conn, bufferSize),
		w:    bufio.NewWriterSize(conn, bufferSize),
		addr: conn.LocalAddr(),
	}
}

func (t *tcpStream) Read(buf []byte) (int, error) {
	n, err := t.r.Read(buf)
	if err != nil {
		return n, liberr.ErrTcpError.WithParent(err)
	}
	return n, nil
}

func (t *tcpStream) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		return n, liberr.ErrTcpError.WithParent(err)
	}
	return n, nil
}

func (t *tcpStream) Flush() error {
	if err := t.w.Flush(); err != nil {
		return liberr.ErrTcpError.WithParent(err)
	}
	return nil
}

func (t *tcpStream) Shutdown() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		return nil
	}

	err := t.conn.Close()
	t.conn = nil

	if err != nil {
		return liberr.ErrTcpError.WithParent(err)
	}
	return nil
}

func (t *tcpStream) LocalAddr() net.Addr {
	return t.addr
}
