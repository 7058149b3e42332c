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

// Package state defines the client connection lifecycle (spec.md §4.5).
//
// State is read and written from multiple goroutines without a lock: the
// public API goroutine checks it before issuing a request, the reconnect
// loop advances it as the socket comes up and down, and diagnostic
// subscribers read it for logging. A plain sync/atomic.Int32 underneath
// gives every reader a consistent snapshot without contending on a mutex.
package state

import "strings"

// State is one node of the client lifecycle graph.
type State int32

const (
	// Shutdown is terminal: no transition leaves this state.
	Shutdown State = iota
	// Disconnected is the initial state and the state reconnection settles
	// into once retries are exhausted or disabled.
	Disconnected
	// Connecting is held while the TCP/TLS dial is in flight.
	Connecting
	// Connected means the socket is up but no login has completed.
	Connected
	// Authenticating is held while an auto-login exchange is in flight.
	Authenticating
	// Authenticated means the socket is up and the session is logged in.
	Authenticated
)

// transitions enumerates the valid State graph edges (spec.md §4.5). A
// transition not present here is rejected by CanTransition.
var transitions = map[State][]State{
	Disconnected:    {Connecting, Shutdown},
	Connecting:      {Connected, Disconnected, Shutdown},
	Connected:       {Authenticating, Disconnected, Shutdown},
	Authenticating:  {Authenticated, Disconnected, Shutdown},
	Authenticated:   {Disconnected, Shutdown},
	Shutdown:        {},
}

// List returns every known state, in lifecycle order.
func List() []State {
	return []State{
		Shutdown,
		Disconnected,
		Connecting,
		Connected,
		Authenticating,
		Authenticated,
	}
}

// CanTransition reports whether moving from "from" to "to" is a valid edge
// of the lifecycle graph.
func CanTransition(from, to State) bool {
	if from == to {
		return false
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Parse returns the State matching s, case-insensitively, or Disconnected
// if s does not match any known state.
func Parse(s string) State {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range List() {
		if strings.EqualFold(st.String(), s) {
			return st
		}
	}
	return Disconnected
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(p []byte) State {
	return Parse(string(p))
}
