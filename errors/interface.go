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

// Package errors defines the client's error taxonomy: a small, comparable
// CodeError discriminant per spec.md §7, wrapped in an Error that still
// behaves like a normal Go error under errors.Is/errors.As, and that can
// carry a parent (the lower-level cause, e.g. the raw net.OpError).
package errors

// CodeError is a stable, comparable discriminant for one error kind.
type CodeError uint16

// Error is the interface satisfied by every error this module returns from
// the client's public surface. It behaves like a normal error, but also
// exposes the discriminant so callers can switch on it without string
// matching.
type Error interface {
	error

	// Code returns the discriminant for this error.
	Code() CodeError

	// Is reports whether err carries the same discriminant (or, for plain
	// errors, the same message). Supports errors.Is.
	Is(err error) bool

	// Unwrap returns the parent cause, or nil if there is none.
	Unwrap() error

	// WithParent returns a copy of this error with the given cause attached.
	WithParent(parent error) Error
}

// New creates an Error for the given code and message, with no parent cause.
func New(code CodeError, message string) Error {
	return &ers{c: code, m: message}
}

// Wrap creates an Error for the given code and message, wrapping parent as
// the underlying cause.
func Wrap(code CodeError, message string, parent error) Error {
	return &ers{c: code, m: message, p: parent}
}
