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

package level_test

import (
	"testing"

	. "github.com/nabbar/iggytcp/logging/level"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

func TestLevel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Level Suite")
}

var _ = Describe("level", func() {
	It("Parse recognizes known levels and defaults to info", func() {
		Expect(Parse("DEBUG")).To(Equal(DebugLevel))
		Expect(Parse("warning")).To(Equal(WarningLevel))
		Expect(Parse("bogus")).To(Equal(InfoLevel))
	})

	It("Logrus maps each level to its logrus equivalent", func() {
		Expect(ErrorLevel.Logrus()).To(Equal(logrus.ErrorLevel))
		Expect(WarningLevel.Logrus()).To(Equal(logrus.WarnLevel))
	})
})
