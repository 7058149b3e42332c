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

package pool

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics mirrors a Pool's per-tier hit/miss counters into an embedding
// application's Prometheus registry. It is optional: a Pool works fully
// without one attached.
type Metrics struct {
	hits   *prometheus.GaugeVec
	misses *prometheus.GaugeVec
}

// NewMetrics builds the gauge vectors, labeled by tier capacity, without
// registering them.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		hits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_hits_total",
			Help:      "Buffer pool acquisitions served from a pre-allocated tier.",
		}, []string{"tier"}),
		misses: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_misses_total",
			Help:      "Buffer pool acquisitions that required a fresh allocation.",
		}, []string{"tier"}),
	}
}

// Register adds both gauge vectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if err := reg.Register(m.hits); err != nil {
		return err
	}
	return reg.Register(m.misses)
}

// Collect snapshots p's per-tier counters into the gauge vectors. Call
// periodically; these are gauges, not counters, so each call overwrites
// the prior value rather than accumulating.
func (m *Metrics) Collect(p *Pool) {
	for _, s := range p.Stat() {
		label := strconv.Itoa(s.Capacity)
		m.hits.WithLabelValues(label).Set(float64(s.Hits))
		m.misses.WithLabelValues(label).Set(float64(s.Misses))
	}
}
