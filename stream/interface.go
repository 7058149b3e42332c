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

// Package stream wraps a dialed TCP or TLS socket behind a small polymorphic
// endpoint: buffered read, buffered write, explicit flush and shutdown. The
// transport core never sees net.Conn directly so the reconnect loop can swap
// a plain socket for a TLS one without touching request/response handling.
package stream

import "net"

// Stream is a connected read/write endpoint with explicit flush control.
// Write buffers; Flush is mandatory between sending a request and reading
// its response.
type Stream interface {
	// Read fills buf and returns the number of bytes read, with io.Reader
	// semantics: it may return fewer than len(buf) bytes without an error,
	// and callers that need a full buffer keep reading (as io.ReadFull does).
	Read(buf []byte) (int, error)

	// Write buffers p for a later Flush.
	Write(p []byte) (int, error)

	// Flush pushes any buffered writes to the socket.
	Flush() error

	// Shutdown closes the underlying socket. Safe to call more than once.
	Shutdown() error

	// LocalAddr returns the local socket address, for log annotation.
	LocalAddr() net.Addr
}
