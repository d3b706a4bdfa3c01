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


package partition_test

import (
	"testing"

	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/test"
)

// every index in [0, n) must be covered exactly once
func checkCoverage(t *testing.T, n int, p int) {
	t.Helper()

	r := partition.Split(n, p)
	test.DemandEquality(t, len(r), max(p, 1))

	seen := make([]int, n)
	next := 0
	for _, rng := range r {
		test.ExpectEquality(t, rng.Start, next, n, p)
		if rng.Len() < 0 {
			t.Fatalf("negative range length for n=%d p=%d: %s", n, p, rng)
		}
		for i := rng.Start; i < rng.End; i++ {
			seen[i]++
		}
		next = rng.End
	}
	test.ExpectEquality(t, next, n, n, p)

	for i := range seen {
		if seen[i] != 1 {
			t.Fatalf("index %d covered %d times for n=%d p=%d", i, seen[i], n, p)
		}
	}

	// sizes differ by at most one
	lo, hi := n, 0
	for _, rng := range r {
		lo = min(lo, rng.Len())
		hi = max(hi, rng.Len())
	}
	if hi-lo > 1 {
		t.Errorf("unbalanced partitioning for n=%d p=%d", n, p)
	}
}

func TestSatellitePartitions(t *testing.T) {
	for n := 0; n <= 130; n++ {
		for p := 1; p <= 20; p++ {
			checkCoverage(t, n, p)
		}
	}
}

func TestPixelPartitions(t *testing.T) {
	for _, n := range []int{1024 * 1024, 1023 * 1021, 640 * 480, 17} {
		for _, p := range []int{1, 2, 3, 7, 12, 16, 64} {
			checkCoverage(t, n, p)
		}
	}
}

func TestZeroWorkers(t *testing.T) {
	r := partition.Split(10, 0)
	test.ExpectEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0], partition.Range{Start: 0, End: 10})
}

func TestParseTile(t *testing.T) {
	tl, err := partition.ParseTile("16x8")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tl, partition.Tile{Width: 16, Height: 8})
	test.ExpectEquality(t, tl.Size(), 128)
	test.ExpectEquality(t, tl.String(), "16x8")

	tl, err = partition.ParseTile("4")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tl, partition.Tile{Width: 4, Height: 4})

	_, err = partition.ParseTile("0x4")
	test.ExpectFailure(t, err)
	_, err = partition.ParseTile("ax4")
	test.ExpectFailure(t, err)
}

func TestGridPadding(t *testing.T) {
	for _, w := range []int{1, 15, 16, 17, 100, 1024} {
		for _, h := range []int{1, 7, 8, 9, 1023} {
			for _, tl := range []partition.Tile{{1, 1}, {16, 16}, {8, 4}, {3, 5}} {
				g := partition.NewGrid(w, h, tl)
				test.DemandEquality(t, g.GlobalWidth%tl.Width, 0)
				test.DemandEquality(t, g.GlobalHeight%tl.Height, 0)
				if g.GlobalWidth < w || g.GlobalWidth-w >= tl.Width {
					t.Fatalf("bad padding of width %d with tile %s: %d", w, tl, g.GlobalWidth)
				}
				if g.GlobalHeight < h || g.GlobalHeight-h >= tl.Height {
					t.Fatalf("bad padding of height %d with tile %s: %d", h, tl, g.GlobalHeight)
				}

				// every real pixel is inside exactly one work-item and every
				// padding work-item is outside
				inside := 0
				for y := 0; y < g.GlobalHeight; y++ {
					for x := 0; x < g.GlobalWidth; x++ {
						if g.Inside(x, y) {
							inside++
						}
					}
				}
				test.DemandEquality(t, inside, w*h)

				gx, gy := g.Groups()
				test.ExpectEquality(t, gx*tl.Width, g.GlobalWidth)
				test.ExpectEquality(t, gy*tl.Height, g.GlobalHeight)
			}
		}
	}
}
