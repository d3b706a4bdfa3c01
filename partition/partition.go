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


// Package partition divides index ranges between workers. Partitions are
// contiguous, never overlap and together cover the whole range. There is no
// way to construct a partitioning with a gap or an overlap so the engines
// never need to check for one.
package partition

import "fmt"

// Range is the half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split the range [0, n) into p ranges. The sizes of the ranges differ by at
// most one. If p is greater than n then some ranges will be empty. A p of less
// than one is treated as one.
func Split(n int, p int) []Range {
	if p < 1 {
		p = 1
	}
	if n < 0 {
		n = 0
	}

	r := make([]Range, p)
	for i := range r {
		r[i] = Range{
			Start: i * n / p,
			End:   (i + 1) * n / p,
		}
	}
	return r
}
