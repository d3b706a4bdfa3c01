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


package orchestrator_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/backend/dispatch"
	"github.com/jetsetilly/orbital/backend/workerpool"
	"github.com/jetsetilly/orbital/device"
	"github.com/jetsetilly/orbital/metrics"
	"github.com/jetsetilly/orbital/orchestrator"
	"github.com/jetsetilly/orbital/random"
	"github.com/jetsetilly/orbital/reference"
	"github.com/jetsetilly/orbital/specification"
	"github.com/jetsetilly/orbital/store"
	"github.com/jetsetilly/orbital/test"
	"github.com/jetsetilly/orbital/validator"
)

func init() {
	color.NoColor = true
}

// the full population of satellites in a small window
func smallSpec() specification.Spec {
	spec := specification.Default()
	spec.Width = 256
	spec.Height = 192
	spec.Substeps = 500
	return spec
}

func newOrchestrator(t *testing.T, be backend.Backend, output *test.CompareWriter) *orchestrator.Orchestrator {
	t.Helper()
	st, err := store.NewStore(smallSpec())
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(64))

	val := validator.NewValidator(output, st.Spec.Tolerance)
	o, err := orchestrator.NewOrchestrator(st, be, val, output)
	test.DemandSuccess(t, err)
	return o
}

func backends() []backend.Backend {
	return []backend.Backend{
		workerpool.NewPool(4),
		dispatch.NewDispatch(device.SoftwareDriver, dispatch.DefaultTile),
	}
}

func TestSingleFrame(t *testing.T) {
	for _, be := range backends() {
		w := &test.CompareWriter{}
		o := newOrchestrator(t, be, w)
		test.ExpectEquality(t, o.Store().Spec.Satellites, 64)

		tm, err := o.Frame()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, tm.Frame, 0)
		test.ExpectSuccess(t, tm.Validated)
		test.ExpectEquality(t, tm.SatelliteMismatches, 0, be.Name())
		test.ExpectSuccess(t, tm.PixelMismatch == nil, be.Name())

		test.ExpectSuccess(t, w.Contains("Error check passed!\n"), be.Name())
		test.ExpectSuccess(t, w.Contains("Total frametime: "), be.Name())
		test.ExpectFailure(t, w.Contains("Incorrect satelite"), be.Name())
		test.ExpectFailure(t, w.Contains("Buggy pixel"), be.Name())

		test.ExpectEquality(t, o.FrameNum(), 1)
		test.ExpectSuccess(t, o.End())
	}
}

func TestRun(t *testing.T) {
	for _, be := range backends() {
		w := &test.CompareWriter{}
		o := newOrchestrator(t, be, w)

		var timings []orchestrator.Timing
		err := o.Run(context.Background(), 3, func(tm orchestrator.Timing) error {
			timings = append(timings, tm)
			return nil
		})
		test.DemandSuccess(t, err)
		test.DemandEquality(t, len(timings), 3)

		// only the first two frames are validated
		test.ExpectSuccess(t, timings[0].Validated)
		test.ExpectSuccess(t, timings[1].Validated)
		test.ExpectFailure(t, timings[2].Validated)

		for i, tm := range timings {
			test.ExpectEquality(t, tm.Frame, i)
			test.ExpectEquality(t, tm.SatelliteMismatches, 0, be.Name(), i)
			test.ExpectSuccess(t, tm.PixelMismatch == nil, be.Name(), i)
		}

		test.ExpectEquality(t, strings.Count(w.String(), "Error check passed!"), 2)
		test.ExpectEquality(t, strings.Count(w.String(), "Total frametime: "), 3)
		test.ExpectSuccess(t, o.End())
	}
}

func TestRunCancelled(t *testing.T) {
	w := &test.CompareWriter{}
	o := newOrchestrator(t, workerpool.NewPool(2), w)
	defer o.End()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := o.Run(ctx, 0, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o.FrameNum(), 0)
}

func TestRunStoppedByCallback(t *testing.T) {
	w := &test.CompareWriter{}
	o := newOrchestrator(t, workerpool.NewPool(2), w)
	defer o.End()

	stop := errors.New("stop")
	err := o.Run(context.Background(), 10, func(tm orchestrator.Timing) error {
		return stop
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, o.FrameNum(), 1)
}

func TestTimingString(t *testing.T) {
	tm := orchestrator.Timing{Total: 1500000000, Physics: 1000000000, Graphics: 400000000}
	test.ExpectEquality(t, tm.String(), "Total frametime: 1500ms, satelite moving: 1000ms, space coloring: 400ms.")
}

func TestMetrics(t *testing.T) {
	w := &test.CompareWriter{}
	o := newOrchestrator(t, workerpool.NewPool(2), w)
	defer o.End()

	m := metrics.NewMetrics()
	o.SetMetrics(m)
	_, err := o.Frame()
	test.DemandSuccess(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	test.ExpectSuccess(t, strings.Contains(rec.Body.String(), `orbital_frames_total{backend="workerpool"} 1`))
}

// displaced moves the first satellite after every physics phase.
type displaced struct {
	backend.Backend
	st *store.Store
}

func (d *displaced) Setup(st *store.Store) error {
	d.st = st
	return d.Backend.Setup(st)
}

func (d *displaced) Physics(frame int) error {
	err := d.Backend.Physics(frame)
	d.st.Satellites[0].Position.X += 100
	return err
}

func TestReferenceImageAfterPhysicsMismatch(t *testing.T) {
	w := &test.CompareWriter{}
	o := newOrchestrator(t, &displaced{Backend: workerpool.NewPool(2)}, w)
	defer o.End()

	tm, err := o.Frame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tm.SatelliteMismatches, 1)
	test.ExpectSuccess(t, w.Contains("Incorrect satelite data of satelite: 0\n"))

	// the reference image is of the reference satellites and not of the
	// displaced satellites
	st := o.Store()
	test.ExpectFailure(t, st.Satellites[0].Identical(st.Backup[0]))
	for i := range st.Correct.Pixels {
		x, y := st.Correct.Coords(i)
		c, _ := reference.Shade(x, y, st.Backup, st.Spec)
		test.DemandEquality(t, st.Correct.Pixels[i], c, x, y)
	}
}
