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

package duration_test

import (
	"encoding/json"
	"time"

	libdur "github.com/nabbar/iggytcp/duration"
	"gopkg.in/yaml.v3"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("duration.Duration", func() {
	Context("construction", func() {
		It("builds from Seconds", func() {
			Expect(libdur.Seconds(5).Time()).To(Equal(5 * time.Second))
		})

		It("wraps an existing time.Duration", func() {
			Expect(libdur.ParseDuration(250 * time.Millisecond).Time()).To(Equal(250 * time.Millisecond))
		})
	})

	Context("Parse", func() {
		It("parses a plain time.ParseDuration string", func() {
			d, err := libdur.Parse("1m30s")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Time()).To(Equal(90 * time.Second))
		})

		It("parses a byte slice the same way", func() {
			d, err := libdur.ParseByte([]byte("500ms"))
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Time()).To(Equal(500 * time.Millisecond))
		})

		It("rejects an invalid string", func() {
			_, err := libdur.Parse("not-a-duration")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("String", func() {
		It("matches time.Duration's own formatting", func() {
			Expect(libdur.Seconds(90).String()).To(Equal((90 * time.Second).String()))
		})
	})

	Context("encoding", func() {
		type holder struct {
			Value libdur.Duration `json:"value" yaml:"value"`
		}

		It("round-trips through JSON", func() {
			h := holder{Value: libdur.Seconds(5)}
			b, err := json.Marshal(&h)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(b)).To(Equal(`{"value":"5s"}`))

			var out holder
			Expect(json.Unmarshal(b, &out)).To(Succeed())
			Expect(out.Value).To(Equal(h.Value))
		})

		It("round-trips through YAML", func() {
			h := holder{Value: libdur.Seconds(10)}
			b, err := yaml.Marshal(&h)
			Expect(err).NotTo(HaveOccurred())

			var out holder
			Expect(yaml.Unmarshal(b, &out)).To(Succeed())
			Expect(out.Value).To(Equal(h.Value))
		})

		It("round-trips through MarshalText/UnmarshalText", func() {
			d := libdur.Seconds(15)
			b, err := d.MarshalText()
			Expect(err).NotTo(HaveOccurred())

			var out libdur.Duration
			Expect(out.UnmarshalText(b)).To(Succeed())
			Expect(out).To(Equal(d))
		})

		It("round-trips through MarshalCBOR/UnmarshalCBOR", func() {
			d := libdur.Seconds(20)
			b, err := d.MarshalCBOR()
			Expect(err).NotTo(HaveOccurred())

			var out libdur.Duration
			Expect(out.UnmarshalCBOR(b)).To(Succeed())
			Expect(out).To(Equal(d))
		})
	})
})
