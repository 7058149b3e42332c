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

// Package mode lists the socket profiles the tuner applies to a connection.
package mode

import "strings"

// Mode selects the buffer sizing and platform-specific option set a socket
// profile applies.
type Mode uint8

const (
	// Balanced uses the nominal buffer size (4 MiB) and no latency extras.
	Balanced Mode = iota
	// LowestLatency favors small buffers (8 KiB) plus thin-stream timeouts
	// and a low not-sent watermark where the platform supports them.
	LowestLatency
	// HighestThroughput favors large buffers (8 MiB); coalescing is left to
	// the profile's Coalesce and NoDelay settings.
	HighestThroughput
)

// List returns every known Mode.
func List() []Mode {
	return []Mode{Balanced, LowestLatency, HighestThroughput}
}

// Parse returns the Mode matching s, case-insensitively, defaulting to
// Balanced if s does not match any known mode.
func Parse(s string) Mode {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range List() {
		if strings.EqualFold(m.String(), s) {
			return m
		}
	}
	return Balanced
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(p []byte) Mode {
	return Parse(string(p))
}
