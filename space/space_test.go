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


package space_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/test"
)

func TestLayout(t *testing.T) {
	// seven float32 values with no padding
	test.ExpectEquality(t, space.SatelliteSize, 28)
	test.ExpectEquality(t, int(unsafe.Sizeof(space.Color{})), 12)

	var s space.Satellite
	test.ExpectEquality(t, unsafe.Offsetof(s.Position), uintptr(12))
	test.ExpectEquality(t, unsafe.Offsetof(s.Velocity), uintptr(20))
}

func TestVector(t *testing.T) {
	v := space.Vector{X: 3, Y: 4}
	test.ExpectEquality(t, v.Length(), float32(5))
	test.ExpectEquality(t, v.LengthSquared(), float32(25))
	test.ExpectEquality(t, v.Add(space.Vector{X: 1, Y: 1}), space.Vector{X: 4, Y: 5})
	test.ExpectEquality(t, v.Sub(space.Vector{X: 1, Y: 1}), space.Vector{X: 2, Y: 3})
	test.ExpectEquality(t, v.Scale(2), space.Vector{X: 6, Y: 8})
	test.ExpectEquality(t, v.Double().Single(), v)

	d := space.DVector{X: 6, Y: 8}
	test.ExpectEquality(t, d.Length(), 10.0)
	test.ExpectEquality(t, d.Dot(space.DVector{X: 1, Y: 0}), 6.0)
}

func TestColor(t *testing.T) {
	c := space.Color{Red: 0.1, Green: 0.2, Blue: 0.3}
	test.ExpectSuccess(t, c.Within(space.Color{Red: 0.15, Green: 0.2, Blue: 0.25}, 0.08))
	test.ExpectFailure(t, c.Within(space.Color{Red: 0.1, Green: 0.3, Blue: 0.3}, 0.08))
	test.ExpectEquality(t, space.White.ABGR(), [4]byte{0xff, 0xff, 0xff, 0xff})

	// colours are unclamped until they are converted to bytes
	b := c.Scale(10)
	test.ExpectEquality(t, b.ABGR(), [4]byte{0xff, 0xff, 0xff, 0xff})
	test.ExpectEquality(t, space.Color{Red: -1}.ABGR(), [4]byte{0, 0, 0, 0xff})
}

func TestIdentical(t *testing.T) {
	a := space.Satellite{Position: space.Vector{X: 1, Y: 2}}
	b := a
	test.ExpectSuccess(t, a.Identical(b))

	b.Velocity.Y = math.Nextafter32(b.Velocity.Y, 1)
	test.ExpectFailure(t, a.Identical(b))

	// negative zero compares equal as a number but not as a bit pattern
	c := a
	c.Velocity.X = float32(math.Copysign(0, -1))
	test.ExpectFailure(t, a.Identical(c))
}

func TestStep(t *testing.T) {
	g := space.Gravity{
		Center:    space.DVector{X: 0, Y: 0},
		Strength:  1,
		DeltaTime: 1,
		Substeps:  1,
	}

	st := space.HighPrecisionState{
		Position: space.DVector{X: 2, Y: 0},
		Velocity: space.DVector{X: 0, Y: 1},
	}
	st.Step(g)

	// acceleration is 1/4 towards the centre
	test.ExpectEquality(t, st.Velocity, space.DVector{X: -0.25, Y: 1})

	// position is updated with the new velocity
	test.ExpectEquality(t, st.Position, space.DVector{X: 1.75, Y: 1})
}

func TestApply(t *testing.T) {
	s := space.Satellite{
		Identifier: space.Color{Red: 0.2},
		Position:   space.Vector{X: 10, Y: 20},
		Velocity:   space.Vector{X: 0.5, Y: -0.5},
	}
	st := s.State()
	st.Position.X = 11
	s.Apply(st)
	test.ExpectEquality(t, s.Position, space.Vector{X: 11, Y: 20})
	test.ExpectEquality(t, s.Identifier, space.Color{Red: 0.2})
}
