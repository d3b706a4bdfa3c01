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


package kernels_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/orbital/kernels"
	"github.com/jetsetilly/orbital/random"
	"github.com/jetsetilly/orbital/reference"
	"github.com/jetsetilly/orbital/space"
	"github.com/jetsetilly/orbital/specification"
	"github.com/jetsetilly/orbital/store"
	"github.com/jetsetilly/orbital/test"
)

func shading(spec specification.Spec) kernels.Shading {
	return kernels.Shading{
		Radius2:    spec.Radius * spec.Radius,
		Brightness: spec.Brightness,
	}
}

func TestSource(t *testing.T) {
	test.ExpectSuccess(t, strings.Contains(kernels.Source, "__kernel void "+kernels.PhysicsKernel+"("))
	test.ExpectSuccess(t, strings.Contains(kernels.Source, "__kernel void "+kernels.GraphicsKernel+"("))
}

func TestIntegrateSatelliteMatchesReference(t *testing.T) {
	spec := specification.Default()
	spec.Substeps = 5000

	st, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(21))
	st.BackupSatellites()

	reference.Physics(st.Backup, spec)

	g := spec.Field()
	for i := range st.Satellites {
		kernels.IntegrateSatellite(&st.Satellites[i], g, spec.Substeps)
		test.ExpectSuccess(t, st.Satellites[i].Identical(st.Backup[i]), i)
	}
}

func TestShadePixelMatchesReference(t *testing.T) {
	spec := specification.Default()
	spec.Width = 200
	spec.Height = 160

	st, err := store.NewStore(spec)
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(8))

	sh := shading(spec)
	for i := range st.Pixels.Pixels {
		x, y := st.Pixels.Coords(i)
		a := kernels.ShadePixel(x, y, st.Satellites, sh)
		b, _ := reference.Shade(x, y, st.Satellites, spec)
		if !a.Within(b, spec.Tolerance) {
			t.Fatalf("pixel (%d, %d) differs: %s %s", x, y, a, b)
		}
	}
}

func TestShadePixelHit(t *testing.T) {
	spec := specification.Default()
	sats := []space.Satellite{
		{Identifier: space.Color{Red: 0.2}, Position: space.Vector{X: 100, Y: 100}},
		{Identifier: space.Color{Red: 0.2}, Position: space.Vector{X: 200, Y: 100}},
	}

	// the second satellite is hit even though the first contributes a weight
	test.ExpectEquality(t, kernels.ShadePixel(201, 101, sats, shading(spec)), space.White)
	test.ExpectEquality(t, kernels.ShadePixel(100, 100, sats, shading(spec)), space.White)

	// exactly on the radius is not a hit
	sats[0].Position = space.Vector{X: 0, Y: 0}
	sh := kernels.Shading{Radius2: 25, Brightness: 3}
	test.ExpectInequality(t, kernels.ShadePixel(3, 4, sats, sh), space.White)
	test.ExpectEquality(t, kernels.ShadePixel(3, 3, sats, sh), space.White)
}

func TestShadePixelBlend(t *testing.T) {
	spec := specification.Default()
	sats := []space.Satellite{
		{Identifier: space.Color{Red: 1.0}, Position: space.Vector{X: 10, Y: 10}},
		{Identifier: space.Color{Blue: 1.0}, Position: space.Vector{X: 30, Y: 10}},
	}

	col := kernels.ShadePixel(15, 10, sats, shading(spec))

	wa := 1.0 / (5.0 * 5.0 * 5.0 * 5.0)
	wb := 1.0 / (15.0 * 15.0 * 15.0 * 15.0)
	test.ExpectApproximate(t, float64(col.Red), 3.0*wa/(wa+wb), 1e-5)
	test.ExpectApproximate(t, float64(col.Green), 0.0, 1e-5)
	test.ExpectApproximate(t, float64(col.Blue), 3.0*wb/(wa+wb), 1e-5)
}
