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

// Package status maps the wire protocol's u32 response status (spec.md §4.1)
// back to the client's error taxonomy. Command encoders are out of the core's
// scope (spec.md §1), but the core still needs to know which statuses mean
// "already exists" (log at debug, not an error condition structurally) versus
// which mean the session is no longer valid or unauthenticated.
package status

import (
	"fmt"

	liberr "github.com/nabbar/iggytcp/errors"
)

// Well-known wire statuses the core must recognize directly, lifted from the
// original Rust SDK's status table (original_source/sdk/src/binary/*). Every
// other non-zero status still maps to a generic CodeCommandStatus error.
const (
	StatusOK uint32 = 0

	StatusUnauthenticated    uint32 = 22
	StatusSessionExpired     uint32 = 23
	StatusStaleClient        uint32 = 24
	StatusInvalidCredentials uint32 = 25

	StatusStreamAlreadyExists    uint32 = 4010
	StatusTopicAlreadyExists     uint32 = 4011
	StatusPartitionAlreadyExists uint32 = 4012
	StatusUserAlreadyExists      uint32 = 4013
	StatusConsumerGroupAlready   uint32 = 4014
)

// alreadyExists is the set of discriminants spec.md §4.1 requires be logged
// at debug rather than error level.
var alreadyExists = map[uint32]bool{
	StatusStreamAlreadyExists:    true,
	StatusTopicAlreadyExists:     true,
	StatusPartitionAlreadyExists: true,
	StatusUserAlreadyExists:      true,
	StatusConsumerGroupAlready:   true,
}

// IsAlreadyExists reports whether status is one of the "already exists" family.
func IsAlreadyExists(status uint32) bool {
	return alreadyExists[status]
}

// ToError maps a non-zero wire status to a liberr.Error. Callers must not
// call this for status == StatusOK.
func ToError(status uint32) liberr.Error {
	switch status {
	case StatusUnauthenticated, StatusInvalidCredentials:
		return liberr.ErrUnauthenticated
	case StatusStaleClient, StatusSessionExpired:
		return liberr.ErrStaleClient
	default:
		return liberr.New(liberr.CodeCommandStatus, fmt.Sprintf("command failed with status %d", status))
	}
}
