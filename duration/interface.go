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

// Package duration is a time.Duration sized for this client's own timing
// knobs: the heartbeat interval, the reconnect retry interval, and the
// reestablish window (config.Reconnection/config.Config). Every one of
// those lives in the sub-minute-to-minute range, so unlike a
// general-purpose duration type this one carries no day notation and no
// arbitrary-precision range: it is time.Duration plus the ability to
// (un)marshal itself from its own String form across every encoding
// Config supports, instead of a bare integer of nanoseconds.
package duration

import "time"

// Duration is a time.Duration with string-based encodings.
type Duration time.Duration

// Time returns the underlying time.Duration.
func (d Duration) Time() time.Duration {
	return time.Duration(d)
}

// String defers to time.Duration's own formatting ("1s", "500ms", "1m30s").
func (d Duration) String() string {
	return d.Time().String()
}

// Seconds returns a Duration of i seconds, the unit every timing field in
// config.Config is expressed in by default.
func Seconds(i int64) Duration {
	return Duration(time.Duration(i) * time.Second)
}

// ParseDuration wraps an existing time.Duration as a Duration.
func ParseDuration(d time.Duration) Duration {
	return Duration(d)
}
