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


package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/jetsetilly/orbital/orchestrator"
)

// Simulation is the part of the orchestrator.Orchestrator used by Check().
type Simulation interface {
	Frame() (orchestrator.Timing, error)
}

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Summary of a performance check.
type Summary struct {
	Frames   int
	Duration time.Duration
	FPS      float64

	physics  phase
	graphics phase
	total    phase
}

// Write the summary as a table.
func (s Summary) Write(output io.Writer) error {
	table := tablewriter.NewWriter(output)

	rows := [][]string{
		{"phase", "mean", "min", "max"},
		row("physics", s.physics),
		row("graphics", s.graphics),
		row("frame", s.total),
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	_, err := fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds)\n", s.FPS, s.Frames, s.Duration.Seconds())
	return err
}

func row(name string, p phase) []string {
	ms := func(d time.Duration) string {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return []string{name, ms(p.mean()), ms(p.min), ms(p.max)}
}

// Check the performance of the simulation. Frames are run until the duration
// has elapsed or the context is done. Profiling is applied as specified.
//
// Frames that are validated against the reference engine take much longer
// than other frames. The first lead frames are run before measurement begins
// and are not included in the summary.
func Check(ctx context.Context, output io.Writer, profile Profile, sim Simulation, lead int, duration time.Duration) (Summary, error) {
	var s Summary

	for range lead {
		if _, err := sim.Frame(); err != nil {
			return s, fmt.Errorf("performance: %w", err)
		}
	}

	ctx, cancel := context.WithTimeoutCause(ctx, duration, timedOut)
	defer cancel()

	start := time.Now()

	runner := func() error {
		for {
			select {
			case <-ctx.Done():
				return context.Cause(ctx)
			default:
			}

			t, err := sim.Frame()
			if err != nil {
				return err
			}

			s.Frames++
			s.physics.add(t.Physics)
			s.graphics.add(t.Graphics)
			s.total.add(t.Total)
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) && !errors.Is(err, context.Canceled) {
		return s, fmt.Errorf("performance: %w", err)
	}

	s.Duration = time.Since(start)
	s.FPS = CalcFPS(s.Frames, s.Duration)

	if output != nil {
		if err := s.Write(output); err != nil {
			return s, err
		}
	}

	return s, nil
}
