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


package reference

import (
	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/specification"
)

// Physics moves the satellites through one frame.
func Physics(sats []space.Satellite, spec specification.Spec) {
	g := spec.Field()

	state := make([]space.HighPrecisionState, len(sats))
	for i := range sats {
		state[i] = sats[i].State()
	}

	for range spec.Substeps {
		for i := range state {
			state[i].Step(g)
		}
	}

	for i := range sats {
		sats[i].Apply(state[i])
	}
}
