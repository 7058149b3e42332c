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
	"github.com/nabbar/iggytcp/diagnostic"
	"github.com/nabbar/iggytcp/diagnostic/kind"
	"github.com/nabbar/iggytcp/state"
)

// Disconnect closes the current connection, if any, and returns the client
// to Disconnected. A no-op when already Disconnected or Shutdown.
func (c *Client) Disconnect() {
	if s := c.State(); s == state.Disconnected || s == state.Shutdown {
		return
	}

	c.stopHeartbeat()

	c.connMu.Lock()
	conn := c.conn
	c.conn = nil
	c.connMu.Unlock()

	if conn != nil {
		if err := conn.Shutdown(); err != nil {
			c.log.Warning("error while closing connection: ", err)
		}
	}

	c.setState(state.Disconnected, &diagnostic.Event{Kind: kind.Disconnected})
}

// Shutdown takes the connection under the writer lock, closes it, and
// transitions the client to its terminal Shutdown state. Subsequent
// operations fail immediately with ClientShutdown. Safe to call more than
// once; only the first call publishes the Shutdown event.
func (c *Client) Shutdown() {
	c.stopHeartbeat()

	c.connMu.Lock()
	conn := c.conn
	c.conn = nil
	c.connMu.Unlock()

	if conn != nil {
		if err := conn.Shutdown(); err != nil {
			c.log.Warning("error while closing connection during shutdown: ", err)
		}
	}

	c.setState(state.Shutdown, &diagnostic.Event{Kind: kind.Shutdown})
}
