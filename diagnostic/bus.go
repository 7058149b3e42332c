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

// Package diagnostic implements the client's best-effort broadcast event
// bus: bounded fan-out to independent subscriber handles, each of which
// only observes events published after it subscribed.
package diagnostic

import (
	"sync"
	"time"

	"github.com/nabbar/iggytcp/diagnostic/kind"
)

// Capacity is the bound on every subscriber's channel, per the protocol's
// best-effort broadcast contract.
const Capacity = 1000

// Event is one diagnostic occurrence published on the bus.
type Event struct {
	Kind kind.Kind
	At   time.Time
	Err  error
}

// Subscription is an independent consumer handle returned by Subscribe.
// The caller reads Events() and calls Unsubscribe when done.
type Subscription struct {
	ch   chan Event
	bus  *Bus
	once sync.Once
}

// Events returns the channel this subscription receives events on.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Unsubscribe removes the subscription from the bus and closes its
// channel. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s)
		close(s.ch)
	})
}

// WarnFunc is called when a publish had to drop an event because a
// subscriber's channel was full, so the caller can log it.
type WarnFunc func(sub *Subscription, evt Event)

// Bus is a bounded, best-effort broadcast fan-out. The zero value is not
// usable; construct with New.
type Bus struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
	warn WarnFunc
}

// New constructs an empty Bus. warn may be nil.
func New(warn WarnFunc) *Bus {
	return &Bus{
		subs: make(map[*Subscription]struct{}),
		warn: warn,
	}
}

// Subscribe returns a new independent consumer handle. It only observes
// events published after this call returns.
func (b *Bus) Subscribe() *Subscription {
	s := &Subscription{
		ch:  make(chan Event, Capacity),
		bus: b,
	}

	b.mu.Lock()
	b.subs[s] = struct{}{}
	b.mu.Unlock()

	return s
}

func (b *Bus) remove(s *Subscription) {
	b.mu.Lock()
	delete(b.subs, s)
	b.mu.Unlock()
}

// Publish broadcasts evt to every current subscriber. A subscriber whose
// channel is full does not block the publisher or other subscribers; the
// event is dropped for that subscriber and warn (if set) is invoked.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subs {
		select {
		case s.ch <- evt:
		default:
			if b.warn != nil {
				b.warn(s, evt)
			}
		}
	}
}

// SubscriberCount reports how many subscriptions are currently active.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
