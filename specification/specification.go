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


// Package specification contains the numerical constants of a simulation.
// The Default() specification is the one Orbital runs with. Tests use smaller
// specifications so that a frame can be checked quickly.
package specification

import (
	"fmt"

	"github.com/jetsetilly/orbital/space"
)

// Spec defines the dimensions and constants of a simulation.
type Spec struct {
	// dimensions of the window in pixels
	Width  int
	Height int

	// number of satellites in the population. the population never changes
	// size once it has been initialised
	Satellites int

	// pixels closer than Radius to a satellite are drawn white
	Radius float32

	Gravity   float32
	DeltaTime float32

	// number of integration steps per frame
	Substeps int

	// the weighted colour of a pixel is scaled by Brightness
	Brightness float32

	// the largest difference allowed between a parallel and a reference
	// pixel channel
	Tolerance float32

	// the number of frames, counting from zero, that are checked against the
	// reference engine
	ValidatedFrames int
}

// Default returns the specification used by the orbital command.
func Default() Spec {
	return Spec{
		Width:           1024,
		Height:          1024,
		Satellites:      64,
		Radius:          3.16,
		Gravity:         1.0,
		DeltaTime:       32,
		Substeps:        100000,
		Brightness:      3.0,
		Tolerance:       0.08,
		ValidatedFrames: 2,
	}
}

// Validate checks that the specification can be simulated.
func (spec Spec) Validate() error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("specification: window must have positive dimensions (%dx%d)", spec.Width, spec.Height)
	}
	if spec.Satellites <= 0 {
		return fmt.Errorf("specification: at least one satellite is required")
	}
	if spec.Substeps <= 0 {
		return fmt.Errorf("specification: at least one substep is required")
	}
	if spec.Radius < 0 {
		return fmt.Errorf("specification: radius cannot be negative")
	}
	if spec.Tolerance < 0 {
		return fmt.Errorf("specification: tolerance cannot be negative")
	}
	if spec.ValidatedFrames < 0 {
		return fmt.Errorf("specification: number of validated frames cannot be negative")
	}
	return nil
}

// Size is the number of pixels in the window.
func (spec Spec) Size() int {
	return spec.Width * spec.Height
}

// Center is the position of the gravity centre. The centre is always on a
// whole pixel.
func (spec Spec) Center() space.Vector {
	return space.Vector{
		X: float32(spec.Width / 2),
		Y: float32(spec.Height / 2),
	}
}

// Field returns the gravity field that satellites move in.
func (spec Spec) Field() space.Gravity {
	return space.Gravity{
		Center:    spec.Center().Double(),
		Strength:  float64(spec.Gravity),
		DeltaTime: float64(spec.DeltaTime),
		Substeps:  float64(spec.Substeps),
	}
}

// Validated returns true if the frame is checked against the reference
// engine.
func (spec Spec) Validated(frame int) bool {
	return frame < spec.ValidatedFrames
}

func (spec Spec) String() string {
	return fmt.Sprintf("%dx%d, %d satellites, %d substeps", spec.Width, spec.Height, spec.Satellites, spec.Substeps)
}
