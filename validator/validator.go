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


// Package validator compares the output of a parallel engine with the output
// of the reference engine. Disagreements are reported to the operator and to
// the central logger. They never stop the simulation.
package validator

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jetsetilly/orbital/logger"
	"github.com/jetsetilly/orbital/reference"
	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/store"
)

// Pauser is implemented by types that can pause the program until the
// operator is ready to continue. The easyterm.Terminal type satisfies the
// interface.
type Pauser interface {
	WaitForKey() error
}

// Validator compares parallel and reference results.
type Validator struct {
	output    io.Writer
	tolerance float32
	pause     Pauser

	fail *color.Color
	pass *color.Color
}

// NewValidator is the preferred method of initialisation for the Validator
// type. Pixel channels that differ by more than tolerance are mismatches.
func NewValidator(output io.Writer, tolerance float32) *Validator {
	if output == nil {
		output = io.Discard
	}
	return &Validator{
		output:    output,
		tolerance: tolerance,
		fail:      color.New(color.FgHiRed, color.Bold),
		pass:      color.New(color.FgHiGreen),
	}
}

// SetPause sets the Pauser used after a pixel mismatch. A nil Pauser means
// the validator never pauses.
func (v *Validator) SetPause(p Pauser) {
	v.pause = p
}

// Satellites compares every parallel satellite with its reference copy. The
// comparison is of the exact bit pattern of all fields. The index of every
// satellite that differs is reported and returned.
func (v *Validator) Satellites(parallel []space.Satellite, correct []space.Satellite) []int {
	var mismatches []int

	n := min(len(parallel), len(correct))
	for i := range n {
		if parallel[i].Identical(correct[i]) {
			continue // for loop
		}
		mismatches = append(mismatches, i)

		v.fail.Fprintf(v.output, "Incorrect satelite data of satelite: %d\n", i)
		logger.Logf(logger.Allow, "validator", "satellite %d: %s should be %s", i, parallel[i], correct[i])
	}

	if len(parallel) != len(correct) {
		logger.Logf(logger.Allow, "validator", "satellite count mismatch: %d and %d", len(parallel), len(correct))
		for i := n; i < max(len(parallel), len(correct)); i++ {
			mismatches = append(mismatches, i)
		}
	}

	return mismatches
}

// Mismatch describes a pixel that differs from its reference value.
type Mismatch struct {
	X, Y     int
	Parallel space.Color
	Correct  space.Color

	// the satellite nearest to the pixel. -1 if there are no satellites
	Nearest int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("(x=%d, y=%d) %s should be %s", m.X, m.Y, m.Parallel, m.Correct)
}

// Pixels compares the parallel pixel buffer of the store with the reference
// pixel buffer. The scan stops at the first pixel that differs and that pixel
// is returned. A nil Mismatch means that every pixel is within tolerance.
//
// If a Pauser has been set then the function waits for the operator after a
// mismatch. Any error is from the Pauser.
func (v *Validator) Pixels(st *store.Store) (*Mismatch, error) {
	par := st.Pixels
	cor := st.Correct

	for i := range par.Pixels {
		if par.Pixels[i].Within(cor.Pixels[i], v.tolerance) {
			continue // for loop
		}

		m := &Mismatch{Parallel: par.Pixels[i], Correct: cor.Pixels[i]}
		m.X, m.Y = par.Coords(i)
		_, m.Nearest = reference.Shade(m.X, m.Y, st.Backup, st.Spec)

		logger.Logf(logger.Allow, "validator", "pixel %s: nearest satellite %d", m, m.Nearest)

		if v.pause == nil {
			v.fail.Fprintf(v.output, "Buggy pixel at (x=%d, y=%d).\n", m.X, m.Y)
			return m, nil
		}

		v.fail.Fprintf(v.output, "Buggy pixel at (x=%d, y=%d). Press enter to continue.\n", m.X, m.Y)
		if err := v.pause.WaitForKey(); err != nil {
			return m, fmt.Errorf("validator: %w", err)
		}
		return m, nil
	}

	v.pass.Fprintln(v.output, "Error check passed!")
	return nil, nil
}
