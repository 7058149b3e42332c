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

package tlsversion_test

import (
	"crypto/tls"
	"encoding/json"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	. "github.com/nabbar/iggytcp/certificates/tlsversion"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type holder struct {
	Vrs Version `json:"version" yaml:"version" toml:"version" cbor:"1"`
}

var _ = Describe("tlsversion.Version", func() {
	Context("Parse", func() {
		It("recognizes dotted notation", func() {
			Expect(Parse("1.2")).To(Equal(VersionTLS12))
		})

		It("recognizes TLS-prefixed notation", func() {
			Expect(Parse("TLS1.2")).To(Equal(VersionTLS12))
			Expect(Parse("tls_1_3")).To(Equal(VersionTLS13))
		})

		It("recognizes ssl-prefixed notation", func() {
			Expect(Parse("ssl1.0")).To(Equal(VersionTLS10))
		})

		It("returns VersionUnknown for anything else", func() {
			Expect(Parse("unknown")).To(Equal(VersionUnknown))
		})
	})

	Context("ParseBytes", func() {
		It("matches Parse", func() {
			Expect(ParseBytes([]byte("1.1"))).To(Equal(VersionTLS11))
		})
	})

	Context("ParseInt", func() {
		It("round-trips a crypto/tls numeric version", func() {
			Expect(ParseInt(tls.VersionTLS13)).To(Equal(VersionTLS13))
		})

		It("rejects a number that isn't a known version", func() {
			Expect(ParseInt(0xFFFF)).To(Equal(VersionUnknown))
		})
	})

	Context("String", func() {
		It("renders the human form", func() {
			Expect(VersionTLS12.String()).To(Equal("TLS 1.2"))
		})

		It("renders empty for VersionUnknown", func() {
			Expect(VersionUnknown.String()).To(Equal(""))
		})
	})

	Context("TLS", func() {
		It("returns the crypto/tls numeric constant", func() {
			Expect(VersionTLS13.TLS()).To(Equal(uint16(tls.VersionTLS13)))
		})

		It("returns 0 for VersionUnknown, crypto/tls's own unset sentinel", func() {
			Expect(VersionUnknown.TLS()).To(Equal(uint16(0)))
		})
	})

	Context("List", func() {
		It("is newest first and covers every known version", func() {
			Expect(List()).To(Equal([]Version{VersionTLS13, VersionTLS12, VersionTLS11, VersionTLS10}))
		})
	})

	Context("encoding", func() {
		It("round-trips through JSON", func() {
			h := holder{Vrs: VersionTLS12}
			b, err := json.Marshal(&h)
			Expect(err).NotTo(HaveOccurred())

			var out holder
			Expect(json.Unmarshal(b, &out)).To(Succeed())
			Expect(out.Vrs).To(Equal(h.Vrs))
		})

		It("round-trips through YAML", func() {
			h := holder{Vrs: VersionTLS11}
			b, err := yaml.Marshal(&h)
			Expect(err).NotTo(HaveOccurred())

			var out holder
			Expect(yaml.Unmarshal(b, &out)).To(Succeed())
			Expect(out.Vrs).To(Equal(h.Vrs))
		})

		It("round-trips through TOML", func() {
			h := holder{Vrs: VersionTLS13}
			b, err := toml.Marshal(h)
			Expect(err).NotTo(HaveOccurred())

			var out holder
			Expect(toml.Unmarshal(b, &out)).To(Succeed())
			Expect(out.Vrs).To(Equal(h.Vrs))
		})

		It("round-trips through MarshalText/UnmarshalText", func() {
			v := VersionTLS10
			b, err := v.MarshalText()
			Expect(err).NotTo(HaveOccurred())

			var out Version
			Expect(out.UnmarshalText(b)).To(Succeed())
			Expect(out).To(Equal(v))
		})

		It("round-trips through MarshalCBOR/UnmarshalCBOR", func() {
			v := VersionTLS12
			b, err := v.MarshalCBOR()
			Expect(err).NotTo(HaveOccurred())

			var out Version
			Expect(out.UnmarshalCBOR(b)).To(Succeed())
			Expect(out).To(Equal(v))
		})
	})
})
