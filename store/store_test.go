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


package store_test

import (
	"math"
	"strings"
	"testing"

	"github.com/jetsetilly/orbital/random"
	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/specification"
	"github.com/jetsetilly/orbital/store"
	"github.com/jetsetilly/orbital/test"
)

func TestNewStore(t *testing.T) {
	spec := specification.Default()
	st, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(st.Satellites), 64)
	test.ExpectEquality(t, len(st.Backup), 64)
	test.ExpectEquality(t, len(st.Pixels.Pixels), 1024*1024)
	test.ExpectEquality(t, len(st.Correct.Pixels), 1024*1024)

	spec.Satellites = 0
	_, err = store.NewStore(spec)
	test.ExpectFailure(t, err)
}

func TestPixelIndex(t *testing.T) {
	pb := store.NewPixelBuffer(7, 5)
	for i := range pb.Pixels {
		x, y := pb.Coords(i)
		test.DemandEquality(t, pb.Index(x, y), i)
		if x >= 7 || y >= 5 {
			t.Fatalf("coordinates out of range: (%d, %d)", x, y)
		}
	}
	x, y := pb.Coords(15)
	test.ExpectEquality(t, x, 1)
	test.ExpectEquality(t, y, 2)
}

func TestToABGR(t *testing.T) {
	pb := store.NewPixelBuffer(2, 2)
	pb.Pixels[pb.Index(0, 0)] = space.White

	dst := make([]byte, 2*2*4)
	pb.ToABGR(dst, 2*4)

	// row zero is written last
	test.ExpectEquality(t, dst[8], byte(0xff))
	test.ExpectEquality(t, dst[9], byte(0xff))
	test.ExpectEquality(t, dst[0], byte(0x00))
	test.ExpectEquality(t, dst[3], byte(0xff))

	pb.Clear()
	test.ExpectEquality(t, pb.At(0, 0), space.Color{})
}

func TestInitialiseDeterministic(t *testing.T) {
	spec := specification.Default()
	a, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	b, err := store.NewStore(spec)
	test.DemandSuccess(t, err)

	a.Initialise(random.NewRandom(42))
	b.Initialise(random.NewRandom(42))

	for i := range a.Satellites {
		test.ExpectSuccess(t, a.Satellites[i].Identical(b.Satellites[i]), i)
	}
}

func TestInitialisePopulation(t *testing.T) {
	spec := specification.Default()
	st, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(7))

	center := spec.Center()
	n := len(st.Satellites)

	for i, s := range st.Satellites {
		// reddish identifier
		if s.Identifier.Red < 0.1 || s.Identifier.Red > 0.25 {
			t.Errorf("satellite %d: red channel out of range: %f", i, s.Identifier.Red)
		}

		// quadrant
		left := s.Position.X < center.X
		above := s.Position.Y < center.Y
		test.ExpectEquality(t, left, i/2%2 == 0, i)
		test.ExpectEquality(t, above, i < n/2, i)

		// distance from centre on each axis
		dx := math.Abs(float64(s.Position.X - center.X))
		if dx < 49.9 || dx > 320.1 {
			t.Errorf("satellite %d: x distance out of range: %f", i, dx)
		}

		// velocity is tangential
		toCenter := s.Position.Sub(center)
		test.ExpectApproximate(t, float64(toCenter.Dot(s.Velocity)), 0.0, 0.001, i)

		// speed is in the range 0.05 to 0.07
		speed := float64(s.Velocity.Length())
		if speed < 0.0499 || speed > 0.0701 {
			t.Errorf("satellite %d: speed out of range: %f", i, speed)
		}
	}
}

func TestBackup(t *testing.T) {
	spec := specification.Default()
	st, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(1))

	st.BackupSatellites()
	st.Satellites[0].Position.X += 1
	test.ExpectFailure(t, st.Satellites[0].Identical(st.Backup[0]))
	test.ExpectSuccess(t, st.Satellites[1].Identical(st.Backup[1]))
}

func TestVisualise(t *testing.T) {
	spec := specification.Default()
	spec.Satellites = 2
	st, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(1))

	w := &strings.Builder{}
	st.Visualise(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
}
