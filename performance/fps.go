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

import "time"

// CalcFPS takes the number of frames and duration and returns the
// frames-per-second.
func CalcFPS(numFrames int, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	return float64(numFrames) / duration.Seconds()
}

// phase accumulates the durations of one phase of a frame.
type phase struct {
	count int
	total time.Duration
	min   time.Duration
	max   time.Duration
}

func (p *phase) add(d time.Duration) {
	if p.count == 0 || d < p.min {
		p.min = d
	}
	if d > p.max {
		p.max = d
	}
	p.total += d
	p.count++
}

func (p phase) mean() time.Duration {
	if p.count == 0 {
		return 0
	}
	return p.total / time.Duration(p.count)
}
