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

package errors

import "strings"

type ers struct {
	c CodeError
	m string
	p error
}

func (e *ers) Error() string {
	if e == nil {
		return ""
	}

	if e.p != nil {
		return e.m + ": " + e.p.Error()
	}

	return e.m
}

func (e *ers) Code() CodeError {
	if e == nil {
		return CodeUnknown
	}
	return e.c
}

func (e *ers) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.p
}

func (e *ers) WithParent(parent error) Error {
	return &ers{c: e.c, m: e.m, p: parent}
}

func (e *ers) Is(err error) bool {
	if e == nil || err == nil {
		return false
	}

	if o, ok := err.(*ers); ok {
		return e.c != CodeUnknown && e.c == o.c
	}

	return strings.EqualFold(e.Error(), err.Error())
}
