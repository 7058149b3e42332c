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

// Package codec implements the wire framing for the broker protocol: a
// little-endian request header, an 8-byte response header, and the
// size-tiered chunked body reader the transport core reads responses with.
package codec

// RequestHeaderLen is the size, in bytes, of the length+code prefix that
// precedes every request payload.
const RequestHeaderLen = 8

// ResponseHeaderLen is the size, in bytes, of the status+length prefix that
// precedes every response payload.
const ResponseHeaderLen = 8

// Size tier boundaries and chunk sizes driving ReadPayload's strategy.
const (
	tierSmallMax  = 4 * 1024
	tierMediumMax = 64 * 1024
	tierLargeMax  = 1024 * 1024

	chunkMedium = 16 * 1024
	chunkLarge  = 64 * 1024
	chunkHuge   = 256 * 1024
)
