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


package space

import (
	"fmt"
	"math"
	"unsafe"
)

// Satellite is a point mass with an identifier colour orbiting the fixed
// gravity centre.
type Satellite struct {
	Identifier Color
	Position   Vector
	Velocity   Vector
}

// SatelliteSize is the size in bytes of a Satellite. Seven float32 values.
const SatelliteSize = int(unsafe.Sizeof(Satellite{}))

func (s Satellite) String() string {
	return fmt.Sprintf("id=%s pos=%s vel=%s", s.Identifier, s.Position, s.Velocity)
}

// Fields returns the seven float32 fields of the satellite in memory order.
func (s Satellite) Fields() [7]float32 {
	return [7]float32{
		s.Identifier.Red, s.Identifier.Green, s.Identifier.Blue,
		s.Position.X, s.Position.Y,
		s.Velocity.X, s.Velocity.Y,
	}
}

// Identical returns true if every field of s has the same bit pattern as the
// same field of t.
func (s Satellite) Identical(t Satellite) bool {
	a := s.Fields()
	b := t.Fields()
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

// HighPrecisionState is the double precision scratch used while integrating
// one satellite.
type HighPrecisionState struct {
	Position DVector
	Velocity DVector
}

// State returns the high precision state of the satellite.
func (s Satellite) State() HighPrecisionState {
	return HighPrecisionState{
		Position: s.Position.Double(),
		Velocity: s.Velocity.Double(),
	}
}

// Apply rounds the high precision state to single precision and stores it in
// the satellite. The identifier is unchanged.
func (s *Satellite) Apply(st HighPrecisionState) {
	s.Position = st.Position.Single()
	s.Velocity = st.Velocity.Single()
}

// Gravity describes the field a satellite moves in for one frame.
type Gravity struct {
	Center   DVector
	Strength float64

	// the frame delta time. each substep covers DeltaTime/Substeps
	DeltaTime float64
	Substeps  float64
}

// Step advances the state by one substep of explicit Euler integration.
//
// The velocity is updated before the position, and the position update uses
// the new velocity.
func (st *HighPrecisionState) Step(g Gravity) {
	toCenter := st.Position.Sub(g.Center)
	dist2 := toCenter.LengthSquared()
	dist := math.Sqrt(dist2)

	dir := DVector{X: toCenter.X / dist, Y: toCenter.Y / dist}
	acc := g.Strength / dist2

	st.Velocity.X -= float64(float64(float64(acc*dir.X)*g.DeltaTime) / g.Substeps)
	st.Velocity.Y -= float64(float64(float64(acc*dir.Y)*g.DeltaTime) / g.Substeps)

	st.Position.X += float64(float64(st.Velocity.X*g.DeltaTime) / g.Substeps)
	st.Position.Y += float64(float64(st.Velocity.Y*g.DeltaTime) / g.Substeps)
}
