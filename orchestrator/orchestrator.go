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


// Package orchestrator drives the simulation one frame at a time. For each
// frame the parallel backend moves and renders the satellites. The first
// frames are also run by the reference engine and the two sets of results
// are compared by the validator.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/logger"
	"github.com/jetsetilly/orbital/metrics"
	"github.com/jetsetilly/orbital/reference"
	"github.com/jetsetilly/orbital/store"
	"github.com/jetsetilly/orbital/validator"
)

// Timing is the result of a single frame.
type Timing struct {
	Frame int

	// time since the end of the previous frame
	Total time.Duration

	Physics  time.Duration
	Graphics time.Duration

	// whether the frame was checked against the reference engine. the
	// mismatch fields are only meaningful if it was
	Validated           bool
	SatelliteMismatches int
	PixelMismatch       *validator.Mismatch
}

func (t Timing) String() string {
	return fmt.Sprintf("Total frametime: %dms, satelite moving: %dms, space coloring: %dms.",
		t.Total.Milliseconds(), t.Physics.Milliseconds(), t.Graphics.Milliseconds())
}

// Orchestrator runs frames of the simulation.
type Orchestrator struct {
	st  *store.Store
	be  backend.Backend
	val *validator.Validator

	// timing lines are written to output
	output io.Writer

	// optional
	metrics *metrics.Metrics

	frame      int
	lastFinish time.Time
}

// NewOrchestrator is the preferred method of initialisation for the
// Orchestrator type. The backend is set up with the store and is destroyed
// by End().
func NewOrchestrator(st *store.Store, be backend.Backend, val *validator.Validator, output io.Writer) (*Orchestrator, error) {
	if output == nil {
		output = io.Discard
	}

	err := be.Setup(st)
	if err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "orchestrator", "%s backend: %s", be.Name(), st.Spec)

	return &Orchestrator{
		st:         st,
		be:         be,
		val:        val,
		output:     output,
		lastFinish: time.Now(),
	}, nil
}

// SetMetrics adds frame timings and validation results to the metrics.
func (o *Orchestrator) SetMetrics(m *metrics.Metrics) {
	o.metrics = m
}

// FrameNum returns the number of the next frame to be run.
func (o *Orchestrator) FrameNum() int {
	return o.frame
}

// Store returns the store used by the simulation.
func (o *Orchestrator) Store() *store.Store {
	return o.st
}

// Frame runs a single frame of the simulation. Errors are from the backend.
// Disagreements with the reference engine are not errors.
func (o *Orchestrator) Frame() (Timing, error) {
	t := Timing{
		Frame:     o.frame,
		Validated: o.st.Spec.Validated(o.frame),
	}

	if t.Validated {
		o.st.BackupSatellites()
		reference.Physics(o.st.Backup, o.st.Spec)
	}

	start := time.Now()
	err := o.be.Physics(o.frame)
	if err != nil {
		return t, err
	}
	t.Physics = time.Since(start)

	if t.Validated {
		t.SatelliteMismatches = len(o.val.Satellites(o.st.Satellites, o.st.Backup))
	}

	start = time.Now()
	err = o.be.Graphics(o.frame)
	if err != nil {
		return t, err
	}
	t.Graphics = time.Since(start)

	if t.Validated {
		reference.Graphics(o.st.Backup, o.st.Correct, o.st.Spec)
		t.PixelMismatch, err = o.val.Pixels(o.st)
		if err != nil {
			logger.Log(logger.Allow, "orchestrator", err)
		}
	}

	finish := time.Now()
	t.Total = finish.Sub(o.lastFinish)
	o.lastFinish = finish

	fmt.Fprintln(o.output, t.String())
	logger.Logf(logger.Allow, "orchestrator", "frame %d: %s", t.Frame, t)

	if o.metrics != nil {
		name := o.be.Name()
		o.metrics.Phase(name, metrics.PhasePhysics, t.Physics)
		o.metrics.Phase(name, metrics.PhaseGraphics, t.Graphics)
		o.metrics.Phase(name, metrics.PhaseFrame, t.Total)
		o.metrics.Frame(name)
		o.metrics.Mismatch(name, metrics.MismatchSatellite, t.SatelliteMismatches)
		if t.PixelMismatch != nil {
			o.metrics.Mismatch(name, metrics.MismatchPixel, 1)
		}
	}

	o.frame++

	return t, nil
}

// Run frames until the number of frames have been run or until the context
// is done. A frames value of zero or less runs until the context is done.
// The context is only checked between frames.
//
// The onFrame function is called after every frame and may be nil. An error
// from onFrame stops the run and is returned.
//
// A done context is not an error.
func (o *Orchestrator) Run(ctx context.Context, frames int, onFrame func(Timing) error) error {
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "orchestrator", "stopped after %d frames", n)
			return nil
		default:
		}

		t, err := o.Frame()
		if err != nil {
			return fmt.Errorf("orchestrator: frame %d: %w", t.Frame, err)
		}

		if onFrame != nil {
			if err := onFrame(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// End the simulation and release the resources of the backend.
func (o *Orchestrator) End() error {
	return o.be.Destroy()
}
