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
	"context"
	"crypto/tls"
	"net"

	"github.com/nabbar/iggytcp/certificates"
)

// DialTLS dials addr in plain TCP then performs the TLS handshake over it
// using a *tls.Config built from cfg, returning a Stream ready for framed
// request/response traffic.
func DialTLS(ctx context.Context, addr string, cfg certificates.Config) (Stream, error) {
	tlsCfg, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	var d net.Dialer
	raw, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	return WrapTLS(ctx, raw, tlsCfg)
}

// WrapTLS performs the TLS handshake over an already-dialed connection,
// so the caller can run the socket tuner against the raw connection first.
// tlsCfg must be non-nil.
func WrapTLS(ctx context.Context, raw net.Conn, tlsCfg *tls.Config) (Stream, error) {
	conn := tls.Client(raw, tlsCfg)
	if err := conn.HandshakeContext(ctx); err != nil {
		_ = raw.Close()
		return nil, err
	}

	return NewTCP(conn), nil
}
