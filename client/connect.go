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

package client

import (
	"context"
	"net"
	"time"

	"github.com/nabbar/iggytcp/config/authmode"
	"github.com/nabbar/iggytcp/diagnostic"
	"github.com/nabbar/iggytcp/diagnostic/kind"
	liberr "github.com/nabbar/iggytcp/errors"
	"github.com/nabbar/iggytcp/sockopt"
	"github.com/nabbar/iggytcp/state"
	"github.com/nabbar/iggytcp/stream"
)

// Connect dials the configured endpoint, applying the reestablish window
// and retry loop of spec.md §4.7, then runs auto-login. Calling Connect
// while already connecting or connected is a no-op; calling it after
// Shutdown fails with ErrClientShutdown.
func (c *Client) Connect(ctx context.Context) error {
	switch c.State() {
	case state.Shutdown:
		return liberr.ErrClientShutdown
	case state.Connected, state.Authenticating, state.Authenticated, state.Connecting:
		return nil
	}

	if !c.st.Transition(state.Connecting) {
		// another goroutine raced us into Connecting/Connected already
		return nil
	}

	c.awaitReestablishWindow(ctx)

	if err := c.dialWithRetry(ctx); err != nil {
		return err
	}

	now := time.Now()
	c.connectedAt.Store(now.UnixMicro())
	c.setState(state.Connected, &diagnostic.Event{Kind: kind.Connected, At: now})

	if err := c.autoLogin(); err != nil {
		return err
	}

	c.startHeartbeat()
	return nil
}

// awaitReestablishWindow sleeps out any remaining time in the
// reestablish_after window since the last successful connect.
func (c *Client) awaitReestablishWindow(ctx context.Context) {
	prev := c.connectedAt.Load()
	if prev == 0 {
		return
	}

	window := c.cfg.Reconnection.ReestablishAfter.Time()
	if window <= 0 {
		return
	}

	elapsed := time.Since(time.UnixMicro(prev))
	if elapsed >= window {
		return
	}

	remaining := window - elapsed
	c.log.Debug("sleeping out reestablish window: ", remaining)

	t := time.NewTimer(remaining)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// dialWithRetry loops tcp_connect attempts per spec.md §4.7's retry policy,
// applying the socket profile and optional TLS wrap-in on success.
func (c *Client) dialWithRetry(ctx context.Context) error {
	var retryCount uint64

	for {
		c.lastReconnect.Store(time.Now().UnixMicro())

		conn, tcpConn, err := stream.DialTCP(ctx, c.cfg.Address)
		if err == nil {
			if tuneErr := sockopt.Apply(tcpConn, c.cfg.Socket); tuneErr != nil {
				// portable options go through net.TCPConn setters, whose
				// errors are *net.OpError; anything else is platform-specific
				if _, portable := tuneErr.(*net.OpError); portable {
					c.log.Warning("socket tuner: portable option failed: ", tuneErr)
					_ = conn.Shutdown()
					err = tuneErr
				} else {
					c.log.Warning("socket tuner: platform option failed: ", tuneErr)
				}
			}
		}

		if err == nil && c.cfg.TLS.Enable {
			tlsCfg, buildErr := c.cfg.TLS.Build()
			if buildErr != nil {
				_ = conn.Shutdown()
				c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected})
				return buildErr
			}
			tlsConn, handshakeErr := stream.WrapTLS(ctx, tcpConn, tlsCfg)
			if handshakeErr != nil {
				err = liberr.ErrCannotEstablishConnection.WithParent(handshakeErr)
			} else {
				conn = tlsConn
			}
		}

		if err == nil {
			c.connMu.Lock()
			c.conn = conn
			c.connMu.Unlock()
			c.addr.Store(conn.LocalAddr())
			return nil
		}

		c.log.Error("connect attempt failed: ", err)

		if !c.cfg.Reconnection.Enabled {
			c.log.Warning("automatic reconnection is disabled")
			c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected})
			return liberr.ErrCannotEstablishConnection
		}

		unlimited := c.cfg.Reconnection.MaxRetries == nil
		if unlimited || retryCount < *c.cfg.Reconnection.MaxRetries {
			retryCount++

			select {
			case <-time.After(c.cfg.Reconnection.Interval.Time()):
			case <-ctx.Done():
				c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected})
				return liberr.ErrCannotEstablishConnection.WithParent(ctx.Err())
			}
			continue
		}

		c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected})
		return liberr.ErrCannotEstablishConnection
	}
}

// autoLogin dispatches the configured auth policy once the socket is up.
// A login failure drives the client back to Disconnected and returns the
// login error, per spec.md §4.7.
func (c *Client) autoLogin() error {
	var fn LoginFunc

	switch c.cfg.AuthMode {
	case authmode.UsernamePassword:
		fn = c.loginUserPass
	case authmode.PersonalAccessToken:
		fn = c.loginToken
	default:
		return nil
	}

	if fn == nil {
		c.log.Debug("auto-login policy set but no login callback configured")
		return nil
	}

	if !c.setState(state.Authenticating, nil) {
		return nil
	}

	if err := fn(c); err != nil {
		c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected, Err: err})
		return err
	}

	c.setState(state.Authenticated, &diagnostic.Event{Kind: kind.SignedIn})
	return nil
}
