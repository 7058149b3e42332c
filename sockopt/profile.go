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

// Package sockopt applies a socket profile to a dialed TCP connection:
// portable options through the standard library, platform-specific
// extensions through build-tagged files behind the same Apply entry point.
package sockopt

import (
	"net"

	"github.com/nabbar/iggytcp/sockopt/mode"
)

// Profile describes the socket tuning to apply to a connection.
type Profile struct {
	Mode mode.Mode

	// NoDelay disables Nagle's algorithm (TCP_NODELAY) when true.
	NoDelay bool

	// Keepalive enables SO_KEEPALIVE with the given idle/interval/count,
	// where supported by the platform.
	Keepalive    bool
	KeepIdle     int // seconds
	KeepInterval int // seconds
	KeepCount    int

	// ReuseAddr sets SO_REUSEADDR.
	ReuseAddr bool

	// ReusePort sets SO_REUSEPORT, letting multiple sockets bind the same
	// local port, where the platform supports it.
	ReusePort bool

	// QuickACK sets TCP_QUICKACK, disabling delayed ACKs (Linux only).
	QuickACK bool

	// FastOpen sets TCP_FASTOPEN, enabling zero-RTT reconnection (Linux only).
	FastOpen bool

	// Coalesce turns on the CORK-equivalent packet-coalescing option
	// (TCP_CORK on Linux, TCP_NOPUSH on Darwin), applied only when NoDelay
	// is also false: the two are mutually exclusive tuning strategies.
	Coalesce bool

	// SendBuffer/RecvBuffer override mode.Mode's default buffer sizes when
	// non-zero.
	SendBuffer int
	RecvBuffer int
}

// Default returns the Balanced profile with keepalive and NODELAY enabled,
// the usual choice for a broker client absent operator overrides.
func Default() Profile {
	return Profile{
		Mode:         mode.Balanced,
		NoDelay:      true,
		Keepalive:    true,
		KeepIdle:     60,
		KeepInterval: 10,
		KeepCount:    6,
		ReuseAddr:    true,
		QuickACK:     true,
		FastOpen:     true,
	}
}

func (p Profile) sendBuffer() int {
	if p.SendBuffer > 0 {
		return p.SendBuffer
	}
	return p.Mode.Buffers()
}

func (p Profile) recvBuffer() int {
	if p.RecvBuffer > 0 {
		return p.RecvBuffer
	}
	return p.Mode.Buffers()
}

// Apply applies the portable options through the standard library, then
// dispatches to the platform-specific hook for the rest. Portable-option
// errors are fatal; platform-specific errors are logged by the caller and
// otherwise ignored, per the tuner's non-fatal contract.
func Apply(conn *net.TCPConn, p Profile) error {
	if err := conn.SetNoDelay(p.NoDelay); err != nil {
		return err
	}

	if err := conn.SetKeepAlive(p.Keepalive); err != nil {
		return err
	}

	if p.Keepalive && p.KeepIdle > 0 {
		if err := conn.SetKeepAlivePeriod(secondsToDuration(p.KeepIdle)); err != nil {
			return err
		}
	}

	if err := conn.SetReadBuffer(p.recvBuffer()); err != nil {
		return err
	}

	if err := conn.SetWriteBuffer(p.sendBuffer()); err != nil {
		return err
	}

	return applyPlatform(conn, p)
}
