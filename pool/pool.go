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

// Package pool implements a tiered, lock-free buffer pool for request
// frames and response payloads: three capacity tiers backed by buffered channels, which are
// safe for concurrent multi-producer/multi-consumer use without an
// external lock.
package pool

import "sync/atomic"

// Tier sizes and pool depths, fixed per the protocol's typical response
// shapes rather than made configurable.
const (
	tierSmall  = 4 * 1024
	tierMedium = 64 * 1024
	tierLarge  = 256 * 1024

	depthSmall  = 1024
	depthMedium = 128
	depthLarge  = 32
)

type tier struct {
	capacity int
	ch       chan []byte
	hits     atomic.Uint64
	misses   atomic.Uint64
}

func newTier(capacity, depth int) *tier {
	return &tier{
		capacity: capacity,
		ch:       make(chan []byte, depth),
	}
}

func (t *tier) acquire() []byte {
	select {
	case buf := <-t.ch:
		t.hits.Add(1)
		return buf[:0]
	default:
		t.misses.Add(1)
		return make([]byte, 0, t.capacity)
	}
}

func (t *tier) release(buf []byte) {
	select {
	case t.ch <- buf:
	default:
		// pool full, drop silently
	}
}

// Pool is a buffer pool keyed by three capacity tiers. The zero value is
// not usable; construct with New.
type Pool struct {
	tiers [3]*tier
}

// New constructs a Pool with the standard 4 KiB/64 KiB/256 KiB tiers.
func New() *Pool {
	return &Pool{
		tiers: [3]*tier{
			newTier(tierSmall, depthSmall),
			newTier(tierMedium, depthMedium),
			newTier(tierLarge, depthLarge),
		},
	}
}

// Acquire returns a buffer whose capacity is at least size, from the
// smallest tier that fits it, cleared to length 0. A request larger than
// the largest tier allocates a fresh buffer outside the pool and is never
// returned by Release.
func (p *Pool) Acquire(size int) []byte {
	for _, t := range p.tiers {
		if size <= t.capacity {
			return t.acquire()
		}
	}
	return make([]byte, 0, size)
}

// Release returns buf to the tier whose capacity exactly matches its
// capacity. Buffers of any other capacity (including oversized ones
// Acquire allocated outside the pool) are dropped.
func (p *Pool) Release(buf []byte) {
	c := cap(buf)
	for _, t := range p.tiers {
		if c == t.capacity {
			t.release(buf)
			return
		}
	}
}

// Prewarm fills every tier to its full depth, trading startup latency for
// steady-state hit rate.
func (p *Pool) Prewarm() {
	for _, t := range p.tiers {
		for i := 0; i < cap(t.ch); i++ {
			select {
			case t.ch <- make([]byte, 0, t.capacity):
			default:
				break
			}
		}
	}
}

// Stats is a point-in-time snapshot of one tier's hit/miss counters.
type Stats struct {
	Capacity int
	Hits     uint64
	Misses   uint64
}

// Stat returns a snapshot of every tier's counters, smallest first.
func (p *Pool) Stat() []Stats {
	out := make([]Stats, 0, len(p.tiers))
	for _, t := range p.tiers {
		out = append(out, Stats{
			Capacity: t.capacity,
			Hits:     t.hits.Load(),
			Misses:   t.misses.Load(),
		})
	}
	return out
}
