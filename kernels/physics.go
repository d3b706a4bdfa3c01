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


package kernels

import (
	"github.com/jetsetilly/orbital/space"
)

// IntegrateSatellite moves the satellite through one frame of substeps. The
// integration is done in double precision and the result is rounded back to
// single precision once at the end of the frame.
func IntegrateSatellite(s *space.Satellite, g space.Gravity, substeps int) {
	st := s.State()
	for range substeps {
		st.Step(g)
	}
	s.Apply(st)
}
