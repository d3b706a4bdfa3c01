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
	"math"

	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/specification"
	"github.com/jetsetilly/orbital/store"
)

// Graphics colours every pixel in the buffer.
func Graphics(sats []space.Satellite, pb store.PixelBuffer, spec specification.Spec) {
	for i := range pb.Pixels {
		x, y := pb.Coords(i)
		pb.Pixels[i], _ = Shade(x, y, sats, spec)
	}
}

// Shade returns the colour of the pixel at (x, y) and the index of the
// satellite nearest to it. If the pixel is inside a satellite the index is of
// the first satellite, in ascending order, that the pixel is inside. The
// index is -1 if there are no satellites.
func Shade(x int, y int, sats []space.Satellite, spec specification.Spec) (space.Color, int) {
	pixel := space.Vector{X: float32(x), Y: float32(y)}

	var weights float32
	nearest := -1
	shortest := float32(math.Inf(1))

	// first pass finds the total weight and the nearest satellite. a pixel
	// inside a satellite is white and the scan ends
	for j := range sats {
		dist := pixel.Sub(sats[j].Position).Length()
		if dist < spec.Radius {
			return space.White, j
		}

		weights += 1.0 / float32(float32(float32(dist*dist)*dist)*dist)

		if dist < shortest {
			shortest = dist
			nearest = j
		}
	}

	// second pass accumulates the weighted identifier colours
	var col space.Color
	for j := range sats {
		dist2 := pixel.Sub(sats[j].Position).LengthSquared()
		weight := 1.0 / float32(dist2*dist2)

		id := sats[j].Identifier
		col.Red += float32(float32(float32(id.Red*weight)/weights) * spec.Brightness)
		col.Green += float32(float32(float32(id.Green*weight)/weights) * spec.Brightness)
		col.Blue += float32(float32(float32(id.Blue*weight)/weights) * spec.Brightness)
	}

	return col, nearest
}
