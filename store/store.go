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


// Package store owns the buffers of a simulation. The satellites are the live
// population that the parallel engines move and render. The backup
// satellites and the correct pixels are written by the reference engine and
// read by the validator.
//
// Buffers are allocated once by NewStore() and never change size.
package store

import (
	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/specification"
)

// Store contains all buffers for a simulation.
type Store struct {
	Spec specification.Spec

	Satellites []space.Satellite
	Backup     []space.Satellite

	// pixels drawn by the parallel engine and by the reference engine
	Pixels  PixelBuffer
	Correct PixelBuffer
}

// NewStore is the preferred method of initialisation for the Store type. The
// satellites are zeroed and should be initialised with Initialise().
func NewStore(spec specification.Spec) (*Store, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		Spec:       spec,
		Satellites: make([]space.Satellite, spec.Satellites),
		Backup:     make([]space.Satellite, spec.Satellites),
		Pixels:     NewPixelBuffer(spec.Width, spec.Height),
		Correct:    NewPixelBuffer(spec.Width, spec.Height),
	}, nil
}

// BackupSatellites copies the live satellites to the backup satellites.
func (st *Store) BackupSatellites() {
	copy(st.Backup, st.Satellites)
}
