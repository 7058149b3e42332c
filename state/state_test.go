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

package state_test

import (
	"encoding/json"
	"sync"

	. "github.com/nabbar/iggytcp/state"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("state", func() {
	It("Parse should recognize known states and default to Disconnected", func() {
		Expect(Parse("connected")).To(Equal(Connected))
		Expect(Parse("AUTHENTICATED")).To(Equal(Authenticated))
		Expect(Parse("bogus")).To(Equal(Disconnected))
	})

	It("String/Code and IsTerminal/IsUsable behave per state", func() {
		Expect(Shutdown.String()).To(Equal("shutdown"))
		Expect(Shutdown.IsTerminal()).To(BeTrue())
		Expect(Disconnected.IsTerminal()).To(BeFalse())
		Expect(Authenticated.IsUsable()).To(BeTrue())
		Expect(Disconnected.IsUsable()).To(BeFalse())
	})

	It("CanTransition only allows edges in the lifecycle graph", func() {
		Expect(CanTransition(Disconnected, Connecting)).To(BeTrue())
		Expect(CanTransition(Disconnected, Authenticated)).To(BeFalse())
		Expect(CanTransition(Shutdown, Disconnected)).To(BeFalse())
		Expect(CanTransition(Connected, Connected)).To(BeFalse())
	})

	It("JSON roundtrip preserves the state", func() {
		b, e := json.Marshal(Authenticating)
		Expect(e).ToNot(HaveOccurred())
		var s State
		Expect(json.Unmarshal(b, &s)).To(Succeed())
		Expect(s).To(Equal(Authenticating))
	})

	It("Cell.Transition rejects invalid edges and is safe under concurrent use", func() {
		c := NewCell(Disconnected)
		Expect(c.Transition(Authenticated)).To(BeFalse())
		Expect(c.Load()).To(Equal(Disconnected))

		Expect(c.Transition(Connecting)).To(BeTrue())
		Expect(c.Load()).To(Equal(Connecting))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Transition(Connected)
			}()
		}
		wg.Wait()
		Expect(c.Load()).To(Equal(Connected))
	})
})
