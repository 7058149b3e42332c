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

// Package authmode enumerates the auto-login policies the reconnect loop
// can drive after a socket is reestablished.
package authmode

import "strings"

// Policy selects how (or whether) the client logs in automatically after
// connecting.
type Policy uint8

const (
	// Disabled performs no automatic login; the caller must authenticate
	// manually over the client's SendRawWithResponse.
	Disabled Policy = iota
	// UsernamePassword logs in with a stored username/password pair.
	UsernamePassword
	// PersonalAccessToken logs in with a stored token.
	PersonalAccessToken
)

// List returns every known Policy.
func List() []Policy {
	return []Policy{Disabled, UsernamePassword, PersonalAccessToken}
}

// Parse returns the Policy matching s, case-insensitively, or Disabled if s
// does not match any known policy.
func Parse(s string) Policy {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "username_password", "user", "pat_login", "user_pass":
		return UsernamePassword
	case "token", "pat", "personal_access_token":
		return PersonalAccessToken
	default:
		return Disabled
	}
}

func (p Policy) String() string {
	switch p {
	case UsernamePassword:
		return "username_password"
	case PersonalAccessToken:
		return "personal_access_token"
	default:
		return "disabled"
	}
}
