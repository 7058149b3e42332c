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

package client_test

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nabbar/iggytcp/client"
	"github.com/nabbar/iggytcp/config"
	"github.com/nabbar/iggytcp/diagnostic/kind"
	liberr "github.com/nabbar/iggytcp/errors"
	"github.com/nabbar/iggytcp/errors/status"
	"github.com/nabbar/iggytcp/pool"
	"github.com/nabbar/iggytcp/state"
)

// readRequest reads one full request frame off conn and returns its code
// and payload, mirroring codec.EncodeRequest's layout.
func readRequest(conn net.Conn) (uint32, []byte, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(conn, hdr[:]); err != nil {
		return 0, nil, err
	}
	total := binary.LittleEndian.Uint32(hdr[0:4])
	code := binary.LittleEndian.Uint32(hdr[4:8])

	payload := make([]byte, total-4)
	if len(payload) > 0 {
		if _, err := io.ReadFull(conn, payload); err != nil {
			return 0, nil, err
		}
	}
	return code, payload, nil
}

// writeResponse writes one response frame: status, length, body.
func writeResponse(conn net.Conn, statusCode uint32, body []byte) error {
	hdr := make([]byte, 8+len(body))
	binary.LittleEndian.PutUint32(hdr[0:4], statusCode)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(body)))
	copy(hdr[8:], body)
	_, err := conn.Write(hdr)
	return err
}

var _ = Describe("client.Client", func() {
	var ln net.Listener

	BeforeEach(func() {
		var err error
		ln, err = net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if ln != nil {
			_ = ln.Close()
		}
	})

	// S1: happy path - connect, send_raw, get a response back.
	It("sends a request and receives its response", func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			code, payload, err := readRequest(conn)
			if err != nil {
				return
			}
			Expect(code).To(Equal(uint32(7)))
			Expect(payload).To(Equal([]byte("ping")))

			_ = writeResponse(conn, status.StatusOK, []byte("pong"))
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = false
		cfg.HeartbeatInterval = 0
		c := client.New(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		Expect(c.Connect(ctx)).To(Succeed())
		defer c.Shutdown()

		body, err := c.SendRawWithResponse(ctx, 7, []byte("ping"))
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(Equal([]byte("pong")))

		Eventually(done, time.Second).Should(BeClosed())
	})

	// S2: a response declaring length 1 carries no usable body.
	It("treats a response length of one as an empty payload", func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			if _, _, err := readRequest(conn); err != nil {
				return
			}
			_ = writeResponse(conn, status.StatusOK, []byte{0x00})
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = false
		cfg.HeartbeatInterval = 0
		c := client.New(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		Expect(c.Connect(ctx)).To(Succeed())
		defer c.Shutdown()

		body, err := c.SendRawWithResponse(ctx, 1, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(BeEmpty())

		Eventually(done, time.Second).Should(BeClosed())
	})

	// S3: a non-zero "already exists" status surfaces as an error while the
	// client stays Authenticated-equivalent (here, Connected).
	It("returns an error for a non-zero response status", func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			if _, _, err := readRequest(conn); err != nil {
				return
			}
			_ = writeResponse(conn, status.StatusTopicAlreadyExists, nil)
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = false
		cfg.HeartbeatInterval = 0
		c := client.New(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		Expect(c.Connect(ctx)).To(Succeed())

		_, err := c.SendRawWithResponse(ctx, 3, nil)
		Expect(err).To(HaveOccurred())

		Expect(c.State()).To(Equal(state.Connected))

		c.Shutdown()
		Eventually(done, time.Second).Should(BeClosed())
	})

	// S4: the first exchange drops mid-read; with reconnection enabled the
	// retrying send transparently reconnects and succeeds on retry.
	It("reconnects and retries a request after the connection drops", func() {
		second := make(chan struct{})
		go func() {
			conn1, err := ln.Accept()
			if err != nil {
				return
			}
			_, _, _ = readRequest(conn1)
			_ = conn1.Close() // drop before responding

			conn2, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn2.Close()
			defer close(second)

			if _, _, err := readRequest(conn2); err != nil {
				return
			}
			_ = writeResponse(conn2, status.StatusOK, []byte("pong"))
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = true
		cfg.Reconnection.Interval = 0
		cfg.Reconnection.ReestablishAfter = 0
		cfg.HeartbeatInterval = 0
		c := client.New(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		sub := c.SubscribeEvents()
		defer sub.Unsubscribe()

		Expect(c.Connect(ctx)).To(Succeed())
		defer c.Shutdown()

		body, err := c.SendWithResponseRetrying(ctx, 7, []byte("ping"))
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(Equal([]byte("pong")))

		Eventually(second, 2*time.Second).Should(BeClosed())

		var kinds []kind.Kind
		collecting := true
		for collecting {
			select {
			case evt := <-sub.Events():
				kinds = append(kinds, evt.Kind)
			default:
				collecting = false
			}
		}
		Expect(kinds).To(ContainElement(kind.Connected))
		Expect(kinds).To(ContainElement(kind.Disconnected))
	})

	// S5: reconnecting within the reestablish window sleeps out the
	// remainder before dialing again.
	It("sleeps out the reestablish window before reconnecting", func() {
		go func() {
			for {
				conn, err := ln.Accept()
				if err != nil {
					return
				}
				_ = conn.Close()
			}
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = true
		cfg.Reconnection.ReestablishAfter = 300 * time.Millisecond
		cfg.HeartbeatInterval = 0
		c := client.New(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		Expect(c.Connect(ctx)).To(Succeed())
		c.Disconnect()

		start := time.Now()
		Expect(c.Connect(ctx)).To(Succeed())
		elapsed := time.Since(start)

		Expect(elapsed).To(BeNumerically(">=", 250*time.Millisecond))

		c.Shutdown()
	})

	// S6: after Shutdown, every operation fails fast with ClientShutdown and
	// no further connection is attempted.
	It("rejects operations after shutdown", func() {
		go func() {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
			_, _, _ = readRequest(conn)
			_ = writeResponse(conn, status.StatusOK, nil)
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = false
		cfg.HeartbeatInterval = 0
		c := client.New(cfg)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		Expect(c.Connect(ctx)).To(Succeed())
		c.Shutdown()

		Expect(c.State()).To(Equal(state.Shutdown))

		_, err := c.SendRawWithResponse(ctx, 1, nil)
		Expect(err).To(HaveOccurred())
		asErr, ok := err.(liberr.Error)
		Expect(ok).To(BeTrue())
		Expect(asErr.Code()).To(Equal(liberr.CodeClientShutdown))

		Expect(c.Connect(ctx)).To(MatchError(liberr.ErrClientShutdown))
	})

	// The request frame and the response body are both built from buffers
	// borrowed from the client's pool rather than allocated fresh, so the
	// small tier's hit/miss counters move on every exchange.
	It("routes the request frame and the response body through the buffer pool", func() {
		done := make(chan struct{})
		go func() {
			defer close(done)
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()

			_, _, err = readRequest(conn)
			if err != nil {
				return
			}
			_ = writeResponse(conn, status.StatusOK, []byte("pong"))
		}()

		cfg := config.Default(ln.Addr().String())
		cfg.Reconnection.Enabled = false
		cfg.HeartbeatInterval = 0

		p := pool.New()
		c := client.New(cfg, client.WithPool(p))

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		Expect(c.Connect(ctx)).To(Succeed())
		defer c.Shutdown()

		before := p.Stat()[0]

		body, err := c.SendRawWithResponse(ctx, 7, []byte("ping"))
		Expect(err).NotTo(HaveOccurred())
		Expect(body).To(Equal([]byte("pong")))

		after := p.Stat()[0]
		Expect(after.Hits + after.Misses).To(BeNumerically(">", before.Hits+before.Misses))

		Eventually(done, time.Second).Should(BeClosed())
	})
})
