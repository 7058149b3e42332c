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

// Package tlsversion pins the negotiated TLS range for certificates.Config's
// MinVersion/MaxVersion. Only the versions crypto/tls itself still accepts
// (1.0 through 1.3) are represented; there is no "high security" shortlist
// and no plain-integer/byte accessors beyond the one crypto/tls actually
// wants, since nothing else in this client consumes a TLS version as a raw
// number.
package tlsversion

import "crypto/tls"

// Version is a TLS protocol version, zero meaning "unpinned".
type Version int

const (
	VersionUnknown Version = iota
	VersionTLS10   Version = Version(tls.VersionTLS10)
	VersionTLS11   Version = Version(tls.VersionTLS11)
	VersionTLS12   Version = Version(tls.VersionTLS12)
	VersionTLS13   Version = Version(tls.VersionTLS13)
)

// List returns every recognized version, newest first.
func List() []Version {
	return []Version{VersionTLS13, VersionTLS12, VersionTLS11, VersionTLS10}
}

// Parse recognizes free-form spellings such as "1.2", "TLS1.2", "tls_1_2"
// or "ssl1.0", case-insensitively. An unrecognized string returns VersionUnknown.
func Parse(s string) Version {
	n := normalize(s)

	for _, v := range List() {
		if normalize(v.String()) == n {
			return v
		}
	}

	switch n {
	case "1", "10":
		return VersionTLS10
	case "11":
		return VersionTLS11
	case "12":
		return VersionTLS12
	case "13":
		return VersionTLS13
	default:
		return VersionUnknown
	}
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(p []byte) Version {
	return Parse(string(p))
}

// ParseInt reinterprets d as the raw crypto/tls version number it matches,
// or VersionUnknown if it matches none of them.
func ParseInt(d int) Version {
	switch Version(d) {
	case VersionTLS10, VersionTLS11, VersionTLS12, VersionTLS13:
		return Version(d)
	default:
		return VersionUnknown
	}
}

func normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '"', '\'', '.', '-', '_', ' ':
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		out = append(out, r)
	}

	s = string(out)
	s = trimPrefix(s, "tls")
	s = trimPrefix(s, "ssl")
	return s
}

func trimPrefix(s, prefix string) string {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}
