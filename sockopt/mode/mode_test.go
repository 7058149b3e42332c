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

package mode_test

import (
	"encoding/json"
	"testing"

	. "github.com/nabbar/iggytcp/sockopt/mode"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMode(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mode Suite")
}

var _ = Describe("mode", func() {
	It("Parse recognizes known modes and defaults to Balanced", func() {
		Expect(Parse("lowest_latency")).To(Equal(LowestLatency))
		Expect(Parse("HIGHEST_THROUGHPUT")).To(Equal(HighestThroughput))
		Expect(Parse("nonsense")).To(Equal(Balanced))
	})

	It("Buffers returns the documented default size per mode", func() {
		Expect(LowestLatency.Buffers()).To(Equal(8 * 1024))
		Expect(HighestThroughput.Buffers()).To(Equal(8 * 1024 * 1024))
		Expect(Balanced.Buffers()).To(Equal(4 * 1024 * 1024))
	})

	It("JSON roundtrip preserves the mode", func() {
		b, err := json.Marshal(HighestThroughput)
		Expect(err).ToNot(HaveOccurred())
		var m Mode
		Expect(json.Unmarshal(b, &m)).To(Succeed())
		Expect(m).To(Equal(HighestThroughput))
	})
})
