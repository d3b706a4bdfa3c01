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


package store

import (
	"github.com/jetsetilly/orbital/random"
	"github.com/jetsetilly/orbital/space"
)

// the distance range, per axis, of a new satellite from the centre. values
// are for a 1024 pixel window and are scaled for other window sizes
const (
	nearMargin    = 50
	farMargin     = 320
	referenceSize = 1024
)

// Initialise the satellite population. Every satellite is given a reddish
// identifier colour, a position in one of the four quadrants around the
// centre and a velocity tangential to the centre. Neighbouring satellites
// orbit in opposite directions.
//
// The same random sequence always produces the same population.
func (st *Store) Initialise(rnd *random.Random) {
	spec := st.Spec
	center := spec.Center()
	n := len(st.Satellites)

	scaleX := float32(spec.Width) / referenceSize
	scaleY := float32(spec.Height) / referenceSize

	for i := range st.Satellites {
		id := space.Color{
			Red:   rnd.Number(0, 0.15) + 0.1,
			Green: rnd.Number(0, 0.14),
			Blue:  rnd.Number(0, 0.16),
		}

		pos := space.Vector{
			X: center.X - rnd.Number(nearMargin*scaleX, farMargin*scaleX),
			Y: center.Y - rnd.Number(nearMargin*scaleY, farMargin*scaleY),
		}

		// mirror into the other quadrants
		if i/2%2 != 0 {
			pos.X = float32(spec.Width) - pos.X
		}
		if i >= n/2 {
			pos.Y = float32(spec.Height) - pos.Y
		}

		toCenter := pos.Sub(center)
		k := (0.06 + rnd.Number(-0.01, 0.01)) / toCenter.Length()
		vel := space.Vector{X: k * -toCenter.Y, Y: k * toCenter.X}

		if i%2 == 0 {
			vel = vel.Scale(-1)
		}

		st.Satellites[i] = space.Satellite{
			Identifier: id,
			Position:   pos,
			Velocity:   vel,
		}
	}
}
