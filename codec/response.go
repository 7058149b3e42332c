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

import (
	"encoding/binary"
	"io"

	liberr "github.com/nabbar/iggytcp/errors"
)

// ResponseHeader is the decoded 8-byte status+length prefix of a response
// frame.
type ResponseHeader struct {
	Status uint32
	Length uint32
}

// DecodeResponseHeader reads and decodes an 8-byte response header from r.
// Fewer than 8 bytes available is reported as ErrEmptyResponse.
func DecodeResponseHeader(r io.Reader) (ResponseHeader, error) {
	var hdr [ResponseHeaderLen]byte

	n, err := io.ReadFull(r, hdr[:])
	if err != nil || n < ResponseHeaderLen {
		return ResponseHeader{}, liberr.ErrEmptyResponse.WithParent(err)
	}

	return ResponseHeader{
		Status: binary.LittleEndian.Uint32(hdr[0:4]),
		Length: binary.LittleEndian.Uint32(hdr[4:8]),
	}, nil
}

// ReadPayload reads the body of a response frame whose header declared the
// given length, using the size-tiered chunked strategy. length <= 1 means an
// empty payload and r is not touched. A short read or EOF mid-body is not an
// error: the bytes received so far are returned, truncated.
func ReadPayload(r io.Reader, length uint32) ([]byte, error) {
	return ReadPayloadInto(r, nil, length)
}

// ReadPayloadInto reads the body the same way ReadPayload does, filling buf
// instead of allocating fresh when buf already has enough capacity. Passing
// a buffer acquired from pool.Pool sized to length's tier avoids an
// allocation on the hot receive path.
func ReadPayloadInto(r io.Reader, buf []byte, length uint32) ([]byte, error) {
	if length <= 1 {
		return nil, nil
	}

	if cap(buf) >= int(length) {
		buf = buf[:length]
	} else {
		buf = make([]byte, length)
	}

	switch {
	case length <= tierSmallMax:
		n, _ := io.ReadFull(r, buf)
		return buf[:n], nil
	case length <= tierMediumMax:
		return readChunked(r, buf, chunkMedium)
	case length <= tierLargeMax:
		return readChunked(r, buf, chunkLarge)
	default:
		return readChunked(r, buf, chunkHuge)
	}
}

// readChunked fills buf from r in successive chunkSize slices, stopping
// early on a short read or EOF and returning whatever was read so far.
func readChunked(r io.Reader, buf []byte, chunkSize int) ([]byte, error) {
	var read int

	for read < len(buf) {
		end := read + chunkSize
		if end > len(buf) {
			end = len(buf)
		}
		want := end - read

		n, err := io.ReadFull(r, buf[read:end])
		read += n

		if n < want || err != nil {
			break
		}
	}

	return buf[:read], nil
}
