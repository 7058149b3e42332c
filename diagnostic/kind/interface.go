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

// Package kind enumerates the diagnostic event discriminants the client
// publishes over its event bus.
package kind

import "strings"

// Kind discriminates one diagnostic event type.
type Kind uint8

const (
	// Connected is published once the transport socket is up.
	Connected Kind = iota
	// Disconnected is published when the socket drops, by either side.
	Disconnected
	// Shutdown is published once, when the client enters its terminal state.
	Shutdown
	// SignedIn is published once an auto-login exchange succeeds.
	SignedIn
	// SignedOut marks a session that ended; the client itself never
	// publishes it.
	SignedOut
)

// List returns every known Kind.
func List() []Kind {
	return []Kind{Connected, Disconnected, Shutdown, SignedIn, SignedOut}
}

// Parse returns the Kind matching s, case-insensitively, or Disconnected if
// s does not match any known kind.
func Parse(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range List() {
		if strings.EqualFold(k.String(), s) {
			return k
		}
	}
	return Disconnected
}
