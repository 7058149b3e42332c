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

package pool_test

import (
	"testing"

	. "github.com/nabbar/iggytcp/pool"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPool(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Pool Suite")
}

var _ = Describe("pool", func() {
	It("Acquire picks the smallest fitting tier and Release reuses it", func() {
		p := New()

		buf := p.Acquire(100)
		Expect(cap(buf)).To(Equal(4 * 1024))
		Expect(len(buf)).To(Equal(0))

		stat := p.Stat()
		Expect(stat[0].Misses).To(Equal(uint64(1)))

		p.Release(buf)

		buf2 := p.Acquire(100)
		Expect(cap(buf2)).To(Equal(4 * 1024))

		stat = p.Stat()
		Expect(stat[0].Hits).To(Equal(uint64(1)))
	})

	It("Release drops a buffer whose capacity matches no tier", func() {
		p := New()
		odd := make([]byte, 0, 12345)
		p.Release(odd) // must not panic, must not be returned by Acquire
		buf := p.Acquire(12000)
		Expect(cap(buf)).To(Equal(64 * 1024))
	})

	It("Acquire above the largest tier allocates outside the pool", func() {
		p := New()
		buf := p.Acquire(1024 * 1024)
		Expect(cap(buf)).To(BeNumerically(">=", 1024*1024))
	})

	It("Prewarm fills every tier up to its depth", func() {
		p := New()
		p.Prewarm()

		buf := p.Acquire(100)
		stat := p.Stat()
		Expect(stat[0].Hits).To(Equal(uint64(1)))
		p.Release(buf)
	})
})
