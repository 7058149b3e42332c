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

//go:build linux

package sockopt

import (
	"net"

	"golang.org/x/sys/unix"

	"github.com/nabbar/iggytcp/sockopt/mode"
)

// platformErrors collects non-fatal platform option failures for the
// caller to log, per the tuner's "missing-option errors are non-fatal"
// contract.
type platformErrors []error

func (p platformErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	s := p[0].Error()
	for _, e := range p[1:] {
		s += "; " + e.Error()
	}
	return s
}

// applyPlatform applies the Linux-specific socket extensions: quick-ACK,
// TCP_FASTOPEN, TCP_CORK (only when NODELAY is off and coalescing is on),
// keepalive timing, and for LowestLatency mode the thin-stream linear
// timeouts and a 4 KiB not-sent low watermark. Every failure here is
// collected and returned as a non-fatal aggregate, never aborting the
// options already applied.
func applyPlatform(conn *net.TCPConn, p Profile) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return platformErrors{err}
	}

	var errs platformErrors

	ctrl := func(fn func(fd uintptr) error) {
		if cerr := raw.Control(func(fd uintptr) {
			if e := fn(fd); e != nil {
				errs = append(errs, e)
			}
		}); cerr != nil {
			errs = append(errs, cerr)
		}
	}

	if p.ReuseAddr {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		})
	}

	if p.ReusePort {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
		})
	}

	if p.QuickACK {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_QUICKACK, 1)
		})
	}

	if p.FastOpen {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_FASTOPEN, 1)
		})
	}

	if !p.NoDelay && p.Coalesce {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_CORK, 1)
		})
	}

	if p.Keepalive {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_KEEPIDLE, p.KeepIdle)
		})
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_KEEPINTVL, p.KeepInterval)
		})
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_KEEPCNT, p.KeepCount)
		})
	}

	if p.Mode == mode.LowestLatency {
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_THIN_LINEAR_TIMEOUTS, 1)
		})
		ctrl(func(fd uintptr) error {
			return unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NOTSENT_LOWAT, 4096)
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
