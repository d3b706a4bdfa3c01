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


package store

import (
	"github.com/jetsetilly/orbital/space"
)

// PixelBuffer is a dense row-major buffer of colours.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []space.Color
}

// NewPixelBuffer is the preferred method of initialisation for the
// PixelBuffer type.
func NewPixelBuffer(width int, height int) PixelBuffer {
	return PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]space.Color, width*height),
	}
}

// Index returns the index of the pixel at (x, y).
func (pb PixelBuffer) Index(x int, y int) int {
	return y*pb.Width + x
}

// Coords returns the (x, y) coordinates of the pixel at index i.
func (pb PixelBuffer) Coords(i int) (int, int) {
	return i % pb.Width, i / pb.Width
}

// At returns the colour of the pixel at (x, y).
func (pb PixelBuffer) At(x int, y int) space.Color {
	return pb.Pixels[pb.Index(x, y)]
}

// Clear sets every pixel to black.
func (pb PixelBuffer) Clear() {
	clear(pb.Pixels)
}

// ToABGR writes the buffer as 8-bit RGBA bytes into dst, which must be at
// least four bytes per pixel long. Rows are written bottom to top so that
// pixel row zero is at the bottom of the image. pitch is the number of bytes
// per row in dst.
func (pb PixelBuffer) ToABGR(dst []byte, pitch int) {
	for y := 0; y < pb.Height; y++ {
		row := dst[(pb.Height-1-y)*pitch:]
		for x := 0; x < pb.Width; x++ {
			c := pb.Pixels[y*pb.Width+x].ABGR()
			copy(row[x*4:x*4+4], c[:])
		}
	}
}
