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

package authmode_test

import (
	"encoding/json"
	"testing"

	. "github.com/nabbar/iggytcp/config/authmode"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAuthMode(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "AuthMode Suite")
}

var _ = Describe("authmode", func() {
	It("Parse recognizes every known policy and defaults to Disabled", func() {
		Expect(Parse("username_password")).To(Equal(UsernamePassword))
		Expect(Parse("PAT")).To(Equal(PersonalAccessToken))
		Expect(Parse("nonsense")).To(Equal(Disabled))
	})

	It("String round-trips through Parse", func() {
		for _, p := range List() {
			Expect(Parse(p.String())).To(Equal(p))
		}
	})

	It("JSON marshals as its string form and unmarshals back", func() {
		b, err := json.Marshal(PersonalAccessToken)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(Equal(`"personal_access_token"`))

		var p Policy
		Expect(json.Unmarshal(b, &p)).To(Succeed())
		Expect(p).To(Equal(PersonalAccessToken))
	})
})
