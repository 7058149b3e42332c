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

import "strings"

func (s State) String() string {
	switch s {
	case Shutdown:
		return "shutdown"
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return ""
	}
}

func (s State) Code() string {
	return strings.Replace(s.String(), " ", "_", -1)
}

// IsTerminal reports whether s is Shutdown, from which no further
// transition is possible.
func (s State) IsTerminal() bool {
	return s == Shutdown
}

// IsUsable reports whether a caller may issue a request-response exchange
// while in this state without the core rejecting it outright. Authenticated
// is always usable; Connected is usable only for commands that do not
// require a session (e.g. an explicit login), which the caller decides.
func (s State) IsUsable() bool {
	return s == Connected || s == Authenticating || s == Authenticated
}

func (s State) Int32() int32 {
	return int32(s)
}
