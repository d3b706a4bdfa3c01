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


package partition

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile is the size of a two dimensional work-group.
type Tile struct {
	Width  int
	Height int
}

func (t Tile) String() string {
	return fmt.Sprintf("%dx%d", t.Width, t.Height)
}

// Size is the number of work-items in the tile.
func (t Tile) Size() int {
	return t.Width * t.Height
}

// ParseTile parses a tile size of the form "WxH". A single number is a square
// tile.
func ParseTile(s string) (Tile, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		h = w
	}

	var t Tile
	var err error

	t.Width, err = strconv.Atoi(w)
	if err != nil {
		return Tile{}, fmt.Errorf("partition: tile width: %w", err)
	}
	t.Height, err = strconv.Atoi(h)
	if err != nil {
		return Tile{}, fmt.Errorf("partition: tile height: %w", err)
	}
	if t.Width < 1 || t.Height < 1 {
		return Tile{}, fmt.Errorf("partition: tile must be at least 1x1 (%s)", s)
	}

	return t, nil
}

// Pad rounds n up to the next multiple of m.
func Pad(n int, m int) int {
	if m < 1 {
		return n
	}
	return (n + m - 1) / m * m
}

// Grid is a global two dimensional range padded to a whole number of tiles.
// Work-items outside the unpadded Width and Height do nothing.
type Grid struct {
	Width  int
	Height int
	Tile   Tile

	// the padded dimensions
	GlobalWidth  int
	GlobalHeight int
}

// NewGrid is the preferred method of initialisation for the Grid type.
func NewGrid(width int, height int, tile Tile) Grid {
	return Grid{
		Width:        width,
		Height:       height,
		Tile:         tile,
		GlobalWidth:  Pad(width, tile.Width),
		GlobalHeight: Pad(height, tile.Height),
	}
}

// Groups returns the number of tiles in each dimension.
func (g Grid) Groups() (int, int) {
	return g.GlobalWidth / g.Tile.Width, g.GlobalHeight / g.Tile.Height
}

// Inside returns true if the work-item at (x, y) maps to a real element.
func (g Grid) Inside(x int, y int) bool {
	return x < g.Width && y < g.Height
}
