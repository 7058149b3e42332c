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

// Package client implements the Transport Core and Reconnect Policy: the
// asynchronous, reconnecting client for the length-prefixed binary
// request/response protocol. It integrates the client state machine, the
// frame codec, the connection stream, the buffer pool, the socket tuner and
// the diagnostic bus behind a small public surface.
//
// Command encoding is deliberately out of scope: callers drive the wire
// protocol through SendRawWithResponse/SendWithResponseRetrying with a
// (code, payload) pair they already built, and supply their own login
// command builders via WithLoginUsernamePassword/WithLoginPersonalAccessToken
// for the auto-login step.
package client

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nabbar/iggytcp/config"
	"github.com/nabbar/iggytcp/diagnostic"
	"github.com/nabbar/iggytcp/logging"
	"github.com/nabbar/iggytcp/pool"
	"github.com/nabbar/iggytcp/state"
	"github.com/nabbar/iggytcp/stream"
)

// LoginFunc performs one auto-login exchange over the already-connected c,
// using c.SendRawWithResponse to carry the login command. Returning an error
// aborts the connect attempt and drives the client back to Disconnected.
type LoginFunc func(c *Client) error

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger attaches a logger; nil-safe if omitted.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithLoginUsernamePassword installs the login callback run when
// Config.AuthMode is authmode.UsernamePassword.
func WithLoginUsernamePassword(fn LoginFunc) Option {
	return func(c *Client) { c.loginUserPass = fn }
}

// WithLoginPersonalAccessToken installs the login callback run when
// Config.AuthMode is authmode.PersonalAccessToken.
func WithLoginPersonalAccessToken(fn LoginFunc) Option {
	return func(c *Client) { c.loginToken = fn }
}

// WithPool overrides the buffer pool instance, mainly for tests that want
// to observe pool statistics in isolation. Defaults to a fresh, prewarmed
// pool per Client.
func WithPool(p *pool.Pool) Option {
	return func(c *Client) { c.pl = p }
}

// Client is the public transport handle: safe to share across goroutines,
// serializing request/response exchanges behind a single writer lock per
// spec.md §5.
type Client struct {
	cfg config.Config
	log *logging.Logger
	bus *diagnostic.Bus
	st  *state.Cell
	pl  *pool.Pool

	connMu sync.RWMutex
	conn   stream.Stream

	addr          atomic.Value // net.Addr
	connectedAt   atomic.Int64 // unix micro, 0 = never
	lastReconnect atomic.Int64 // unix micro, 0 = never

	loginUserPass LoginFunc
	loginToken    LoginFunc

	heartbeatStop chan struct{}
	heartbeatDone chan struct{}
}

// New constructs a Client from an immutable Config. The client starts in
// Disconnected and does not dial until Connect is called.
func New(cfg config.Config, opts ...Option) *Client {
	c := &Client{
		cfg: cfg,
		log: logging.Discard(),
		st:  state.NewCell(state.Disconnected),
	}

	for _, o := range opts {
		o(c)
	}

	c.bus = diagnostic.New(func(sub *diagnostic.Subscription, evt diagnostic.Event) {
		c.log.Warning("diagnostic event dropped, subscriber channel full: ", evt.Kind)
	})

	if c.pl == nil {
		c.pl = pool.New()
		c.pl.Prewarm()
	}

	return c
}

// Config returns the immutable configuration this client was built with.
func (c *Client) Config() config.Config {
	return c.cfg
}

// State returns the current lifecycle state, a lock-free read.
func (c *Client) State() state.State {
	return c.st.Load()
}

// setState attempts the transition and, if valid, publishes the
// corresponding diagnostic event. Returns whether the transition happened.
func (c *Client) setState(to state.State, evt *diagnostic.Event) bool {
	if !c.st.Transition(to) {
		return false
	}
	if evt != nil {
		c.PublishEvent(*evt)
	}
	return true
}

// HeartbeatInterval returns the configured Ping period. Zero or negative
// disables the background heartbeat.
func (c *Client) HeartbeatInterval() time.Duration {
	return c.cfg.HeartbeatInterval.Time()
}

// PublishEvent broadcasts evt to every current diagnostic subscriber.
func (c *Client) PublishEvent(evt diagnostic.Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}
	c.bus.Publish(evt)
}

// SubscribeEvents returns a new independent diagnostic subscription.
func (c *Client) SubscribeEvents() *diagnostic.Subscription {
	return c.bus.Subscribe()
}

// LocalAddr returns the local socket address of the current connection, or
// nil if the client has never connected.
func (c *Client) LocalAddr() net.Addr {
	a, _ := c.addr.Load().(net.Addr)
	return a
}

// ConnectedAt returns the time of the last successful connect, or the zero
// Time if the client has never connected.
func (c *Client) ConnectedAt() time.Time {
	us := c.connectedAt.Load()
	if us == 0 {
		return time.Time{}
	}
	return time.UnixMicro(us)
}

// LastReconnectAttempt returns the time of the last tcp_connect attempt
// (successful or not), or the zero Time if none has happened yet.
func (c *Client) LastReconnectAttempt() time.Time {
	us := c.lastReconnect.Load()
	if us == 0 {
		return time.Time{}
	}
	return time.UnixMicro(us)
}
