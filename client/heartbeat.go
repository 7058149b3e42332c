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
	"time"
)

// heartbeatCode is the zero-payload command code the background Ping loop
// sends on Config.HeartbeatInterval. The value 0 is a placeholder, not a
// code taken from the broker's command table. Command encoding is
// otherwise out of this package's scope, but the heartbeat rides the same
// SendRawWithResponse lane as every other command, so it needs a code of
// its own.
const heartbeatCode uint32 = 0

// Ping sends a single zero-payload heartbeat request and discards the
// response body, surfacing only a transport/status error if any.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.SendRawWithResponse(ctx, heartbeatCode, nil)
	return err
}

// startHeartbeat launches the background Ping loop when
// Config.HeartbeatInterval is positive. Called once per successful Connect;
// stopped by Disconnect/Shutdown.
func (c *Client) startHeartbeat() {
	interval := c.HeartbeatInterval()
	if interval <= 0 {
		return
	}

	c.heartbeatStop = make(chan struct{})
	c.heartbeatDone = make(chan struct{})

	stop := c.heartbeatStop
	done := c.heartbeatDone

	go func() {
		defer close(done)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-stop:
				return
			case <-t.C:
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				if err := c.Ping(ctx); err != nil {
					c.log.Debug("heartbeat failed: ", err)
				}
				cancel()
			}
		}
	}()
}

// stopHeartbeat signals the background Ping loop to exit and waits for it.
// Safe to call when no loop is running.
func (c *Client) stopHeartbeat() {
	if c.heartbeatStop == nil {
		return
	}

	close(c.heartbeatStop)
	<-c.heartbeatDone

	c.heartbeatStop = nil
	c.heartbeatDone = nil
}
