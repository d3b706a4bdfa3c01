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

// Shading describes how pixels are coloured.
type Shading struct {
	// pixels with a squared distance to a satellite of less than Radius2 are
	// white
	Radius2 float32

	Brightness float32
}

// ShadePixel returns the colour of the pixel at (x, y).
//
// If the pixel is within the radius of a satellite then the pixel is white.
// Otherwise the colour is the average of the satellite identifiers weighted
// by the inverse fourth power of the distance, multiplied by the brightness.
func ShadePixel(x int, y int, sats []space.Satellite, sh Shading) space.Color {
	pixel := space.Vector{X: float32(x), Y: float32(y)}

	var weights float32
	var sum space.Color

	for i := range sats {
		dist2 := pixel.Sub(sats[i].Position).LengthSquared()
		if dist2 < sh.Radius2 {
			return space.White
		}

		weight := 1.0 / float32(dist2*dist2)
		weights += weight

		id := sats[i].Identifier
		sum.Red += float32(id.Red * weight)
		sum.Green += float32(id.Green * weight)
		sum.Blue += float32(id.Blue * weight)
	}

	return space.Color{
		Red:   float32(sum.Red/weights) * sh.Brightness,
		Green: float32(sum.Green/weights) * sh.Brightness,
		Blue:  float32(sum.Blue/weights) * sh.Brightness,
	}
}
