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

package codec

import "encoding/binary"

// EncodeRequest builds a full request frame: a u32 total length (the command
// code plus the payload, not counting the length field itself), a u32
// command code, then the payload, all little-endian.
func EncodeRequest(code uint32, payload []byte) []byte {
	return EncodeRequestInto(nil, code, payload)
}

// EncodeRequestInto builds the request frame the same way EncodeRequest
// does, appending into buf instead of allocating. buf is reset to length 0
// first, so its prior contents are discarded; its capacity is reused as far
// as it goes and grown past that as needed. Passing a buffer acquired from
// pool.Pool sized RequestHeaderLen+len(payload) avoids an allocation on the
// hot send path.
func EncodeRequestInto(buf []byte, code uint32, payload []byte) []byte {
	total := 4 + len(payload)

	buf = buf[:0]

	var hdr [RequestHeaderLen]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(total))
	binary.LittleEndian.PutUint32(hdr[4:8], code)

	buf = append(buf, hdr[:]...)
	buf = append(buf, payload...)

	return buf
}
