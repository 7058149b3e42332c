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

package logging_test

import (
	"bytes"
	"testing"

	"github.com/nabbar/iggytcp/logging"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

func TestLogging(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logging Suite")
}

var _ = Describe("logging", func() {
	It("a nil-backed Logger never panics on any level call", func() {
		var g *logging.Logger
		Expect(func() {
			g.Debug("x")
			g.Info("x")
			g.Warning("x")
			g.Error("x")
		}).ToNot(Panic())
	})

	It("Discard swallows an Error call without panicking", func() {
		g := logging.Discard()
		Expect(func() { g.Error("should be swallowed") }).ToNot(Panic())
	})

	It("New writes through the wrapped logrus logger", func() {
		var buf bytes.Buffer
		l := logrus.New()
		l.SetOutput(&buf)
		l.SetLevel(logrus.DebugLevel)

		g := logging.New(l, logrus.Fields{"component": "test"})
		g.Error("boom")

		Expect(buf.String()).To(ContainSubstring("boom"))
		Expect(buf.String()).To(ContainSubstring("component"))
	})

	It("WithField derives a logger carrying an extra field", func() {
		var buf bytes.Buffer
		l := logrus.New()
		l.SetOutput(&buf)

		g := logging.New(l, nil).WithField("addr", "127.0.0.1:8090")
		g.Warning("tuning applied")

		Expect(buf.String()).To(ContainSubstring("127.0.0.1:8090"))
	})
})
