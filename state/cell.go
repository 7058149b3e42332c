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

package state

import "sync/atomic"

// Cell is a lock-free holder for a State, safe for concurrent use by the
// reconnect loop, the request path and diagnostic readers.
type Cell struct {
	v atomic.Int32
}

// NewCell returns a Cell initialized to the given State.
func NewCell(initial State) *Cell {
	c := &Cell{}
	c.v.Store(initial.Int32())
	return c
}

// Load returns the current State.
func (c *Cell) Load() State {
	return State(c.v.Load())
}

// Store unconditionally sets the State, bypassing transition validation.
// Reserved for initialization; the request/reconnect paths should use
// Transition instead.
func (c *Cell) Store(s State) {
	c.v.Store(s.Int32())
}

// Transition attempts to move the cell from its current value to "to",
// retrying the compare-and-swap if another goroutine races it. It returns
// false without changing the cell if the edge is not valid from whatever
// the current state turns out to be.
func (c *Cell) Transition(to State) bool {
	for {
		from := c.Load()
		if !CanTransition(from, to) {
			return false
		}
		if c.v.CompareAndSwap(from.Int32(), to.Int32()) {
			return true
		}
	}
}
