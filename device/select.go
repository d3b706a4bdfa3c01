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


package device

import (
	"github.com/jetsetilly/orbital/curated"
	"github.com/jetsetilly/orbital/logger"
)

// Select returns the first device of the preferred class on the first
// platform that has one. If no platform has a device of the preferred class
// then the first device of any other class is returned.
//
// Failure to find a device is a curated.PlatformError.
func Select(drv Driver, preferred Class) (Device, error) {
	platforms, err := drv.Platforms()
	if err != nil {
		return nil, curated.Errorf(curated.PlatformError, err)
	}
	if len(platforms) == 0 {
		return nil, curated.Errorf(curated.PlatformError, "no platforms available")
	}

	classes := []Class{preferred}
	for _, c := range []Class{CPU, Accelerator} {
		if c != preferred {
			classes = append(classes, c)
		}
	}

	for _, c := range classes {
		for _, p := range platforms {
			devs, err := p.Devices(c)
			if err != nil {
				logger.Logf(logger.Allow, "device", "%s: %v", p.Name(), err)
				continue // for loop
			}
			if len(devs) > 0 {
				if c != preferred {
					logger.Logf(logger.Allow, "device", "no %s device available. using %s device", preferred, c)
				}
				return devs[0], nil
			}
		}
	}

	return nil, curated.Errorf(curated.PlatformError, "no suitable devices found")
}
