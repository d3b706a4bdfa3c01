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
)

// Color is an unclamped RGB colour. Channels are nominally in the range 0.0 to
// 1.0 but values outside that range are permitted.
type Color struct {
	Red   float32
	Green float32
	Blue  float32
}

// White is the colour of a pixel covered by a satellite.
var White = Color{Red: 1.0, Green: 1.0, Blue: 1.0}

func (c Color) String() string {
	return fmt.Sprintf("(r=%.3f, g=%.3f, b=%.3f)", c.Red, c.Green, c.Blue)
}

// Add returns the channel-wise sum of c and d.
func (c Color) Add(d Color) Color {
	return Color{Red: c.Red + d.Red, Green: c.Green + d.Green, Blue: c.Blue + d.Blue}
}

// Scale returns c with every channel multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{Red: c.Red * s, Green: c.Green * s, Blue: c.Blue * s}
}

// Within returns true if no channel of c differs from the same channel of d by
// more than tolerance.
func (c Color) Within(d Color, tolerance float32) bool {
	return abs(c.Red-d.Red) <= tolerance &&
		abs(c.Green-d.Green) <= tolerance &&
		abs(c.Blue-d.Blue) <= tolerance
}

// ABGR returns the colour as four bytes (red, green, blue, alpha in memory
// order) with channels clamped to the 0.0 to 1.0 range.
func (c Color) ABGR() [4]byte {
	return [4]byte{channel(c.Red), channel(c.Green), channel(c.Blue), 0xff}
}

func channel(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return byte(v * 255)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
