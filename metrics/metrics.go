// This file is part of Orbital.
//
// Orbital is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orbital is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orbital.  If not, see <https://www.gnu.org/licenses/>.


// Package metrics records frame timings and validation results as
// Prometheus metrics. Every Metrics instance has its own registry so more
// than one simulation can be measured in a single process.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// List of phase labels.
const (
	PhasePhysics  = "physics"
	PhaseGraphics = "graphics"
	PhaseFrame    = "frame"
)

// List of mismatch kinds.
const (
	MismatchSatellite = "satellite"
	MismatchPixel     = "pixel"
)

// Metrics is a collection of simulation metrics.
type Metrics struct {
	reg *prometheus.Registry

	phases     *prometheus.HistogramVec
	frames     *prometheus.CounterVec
	mismatches *prometheus.CounterVec
}

// NewMetrics is the preferred method of initialisation for the Metrics type.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		phases: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "orbital_phase_seconds",
				Help:    "Time taken by each phase of a frame in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend", "phase"},
		),
		frames: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orbital_frames_total",
				Help: "Number of frames completed",
			},
			[]string{"backend"},
		),
		mismatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orbital_mismatches_total",
				Help: "Number of disagreements with the reference engine",
			},
			[]string{"backend", "kind"},
		),
	}
}

// Phase records the duration of a phase.
func (m *Metrics) Phase(backend string, phase string, d time.Duration) {
	m.phases.WithLabelValues(backend, phase).Observe(d.Seconds())
}

// Frame records the completion of a frame.
func (m *Metrics) Frame(backend string) {
	m.frames.WithLabelValues(backend).Inc()
}

// Mismatch records n disagreements of the specified kind.
func (m *Metrics) Mismatch(backend string, kind string, n int) {
	if n <= 0 {
		return
	}
	m.mismatches.WithLabelValues(backend, kind).Add(float64(n))
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler returns an http.Handler that serves the metrics in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
