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
	"io"
	"time"

	"github.com/nabbar/iggytcp/codec"
	"github.com/nabbar/iggytcp/diagnostic"
	"github.com/nabbar/iggytcp/diagnostic/kind"
	liberr "github.com/nabbar/iggytcp/errors"
	"github.com/nabbar/iggytcp/errors/status"
	"github.com/nabbar/iggytcp/state"
)

// flushSmallThreshold is the payload size below which writes always flush
// immediately, per spec.md §4.6's flush policy.
const flushSmallThreshold = 1024

// flushTargetBudget and flushMaxDelay bound the adaptive-flush sleep.
const (
	flushTargetBudget = 1 * time.Millisecond
	flushMaxDelay      = 5 * time.Millisecond
)

// SendRawWithResponse sends one (code, payload) request and returns the
// response payload, per the single-outstanding-request protocol of
// spec.md §4.6. It fails fast with ClientShutdown/NotConnected without
// touching the connection.
func (c *Client) SendRawWithResponse(ctx context.Context, code uint32, payload []byte) ([]byte, error) {
	switch c.State() {
	case state.Shutdown:
		return nil, liberr.ErrClientShutdown
	case state.Disconnected, state.Connecting:
		return nil, liberr.ErrNotConnected
	}

	c.connMu.Lock()
	defer c.connMu.Unlock()

	conn := c.conn
	if conn == nil {
		return nil, liberr.ErrNotConnected
	}

	reqBuf := c.pl.Acquire(codec.RequestHeaderLen + len(payload))
	frame := codec.EncodeRequestInto(reqBuf, code, payload)

	start := time.Now()
	writeErr := func() error {
		defer c.pl.Release(frame)
		if _, err := conn.Write(frame); err != nil {
			return err
		}
		return c.flush(ctx, conn, len(payload), start)
	}()
	if writeErr != nil {
		c.onTransportError(writeErr)
		return nil, writeErr
	}

	hdr, err := codec.DecodeResponseHeader(conn)
	if err != nil {
		c.onTransportError(err)
		return nil, err
	}

	body, err := c.readResponsePayload(conn, hdr.Length)
	if err != nil {
		c.onTransportError(err)
		return nil, err
	}

	if hdr.Status != status.StatusOK {
		if status.IsAlreadyExists(hdr.Status) {
			c.log.Debug("command returned already-exists status: ", hdr.Status)
		} else {
			c.log.Error("command returned error status: ", hdr.Status)
		}
		return body, status.ToError(hdr.Status)
	}

	return body, nil
}

// readResponsePayload reads a response body of the declared length through a
// buffer borrowed from c.pl instead of allocating fresh for the read itself,
// then copies the result into a right-sized slice the caller can keep after
// the pooled buffer is returned.
func (c *Client) readResponsePayload(r io.Reader, length uint32) ([]byte, error) {
	if length <= 1 {
		return nil, nil
	}

	rdBuf := c.pl.Acquire(int(length))
	defer c.pl.Release(rdBuf)

	read, err := codec.ReadPayloadInto(r, rdBuf, length)
	if err != nil {
		return nil, err
	}

	body := make([]byte, len(read))
	copy(body, read)
	return body, nil
}

// flush implements spec.md §4.6's adaptive flush policy: small payloads
// flush immediately; larger ones get a short chance to coalesce with a
// following write before the mandatory flush ahead of the response read.
func (c *Client) flush(ctx context.Context, conn interface{ Flush() error }, payloadLen int, start time.Time) error {
	if payloadLen > flushSmallThreshold && !c.cfg.DisableAdaptiveFlush {
		elapsed := time.Since(start)
		if elapsed < flushTargetBudget {
			delay := flushTargetBudget - elapsed
			if delay > flushMaxDelay {
				delay = flushMaxDelay
			}
			t := time.NewTimer(delay)
			select {
			case <-t.C:
			case <-ctx.Done():
				t.Stop()
			}
		}
	}
	return conn.Flush()
}

// onTransportError drives the client to Disconnected on any I/O failure
// mid-exchange, per spec.md §5's cancellation/error-path rule: the
// goroutine holding the writer lock always transitions state before
// releasing it.
func (c *Client) onTransportError(err error) {
	if c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected, Err: err}) {
		c.log.Warning("transport error, marking client disconnected: ", err)
	}
}

// SendWithResponseRetrying wraps SendRawWithResponse: when the raw call
// fails with one of the retry-class errors and reconnection is enabled, it
// disconnects, reconnects (re-running auto-login), and retries exactly
// once. All other errors propagate as-is.
func (c *Client) SendWithResponseRetrying(ctx context.Context, code uint32, payload []byte) ([]byte, error) {
	body, err := c.SendRawWithResponse(ctx, code, payload)
	if err == nil {
		return body, nil
	}

	if !c.cfg.Reconnection.Enabled || !liberr.IsRetryable(err) {
		return nil, err
	}

	c.Disconnect()

	if connErr := c.Connect(ctx); connErr != nil {
		return nil, connErr
	}

	return c.SendRawWithResponse(ctx, code, payload)
}
