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


package dispatch_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/backend/dispatch"
	"github.com/jetsetilly/orbital/curated"
	"github.com/jetsetilly/orbital/device"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/random"
	"github.com/jetsetilly/orbital/reference"
	"github.com/jetsetilly/orbital/specification"
	"github.com/jetsetilly/orbital/store"
	"github.com/jetsetilly/orbital/test"
)

// the window dimensions are deliberately not a multiple of the tile size
func smallSpec() specification.Spec {
	spec := specification.Default()
	spec.Width = 150
	spec.Height = 110
	spec.Substeps = 1000
	return spec
}

var _ backend.Backend = (*dispatch.Dispatch)(nil)

func setup(t *testing.T, seed int64, tile partition.Tile) (*store.Store, *dispatch.Dispatch) {
	t.Helper()
	st, err := store.NewStore(smallSpec())
	test.DemandSuccess(t, err)
	st.Initialise(random.NewRandom(seed))

	d := dispatch.NewDispatch(device.SoftwareDriver, tile)
	test.DemandSuccess(t, d.Setup(st))
	return st, d
}

func comparePixels(t *testing.T, st *store.Store, tags ...any) {
	t.Helper()
	for i := range st.Pixels.Pixels {
		if !st.Pixels.Pixels[i].Within(st.Correct.Pixels[i], st.Spec.Tolerance) {
			x, y := st.Pixels.Coords(i)
			t.Fatalf("pixel (%d, %d) differs: %v %v %v", x, y, st.Pixels.Pixels[i], st.Correct.Pixels[i], tags)
		}
	}
}

func TestDevices(t *testing.T) {
	_, d := setup(t, 1, dispatch.DefaultTile)
	defer d.Destroy()

	p, g := d.Devices()
	test.ExpectEquality(t, p, "software cpu")
	test.ExpectEquality(t, g, "software accelerator")
	test.ExpectEquality(t, d.Name(), backend.Dispatch)
}

func TestValidatedFrames(t *testing.T) {
	st, d := setup(t, 31, dispatch.DefaultTile)
	defer d.Destroy()

	for frame := range st.Spec.ValidatedFrames {
		st.BackupSatellites()
		reference.Physics(st.Backup, st.Spec)

		test.DemandSuccess(t, d.Physics(frame))
		for i := range st.Satellites {
			test.ExpectSuccess(t, st.Satellites[i].Identical(st.Backup[i]), frame, i)
		}

		test.DemandSuccess(t, d.Graphics(frame))
		reference.Graphics(st.Backup, st.Correct, st.Spec)
		comparePixels(t, st, frame)
	}
}

func TestUnvalidatedFrame(t *testing.T) {
	st, d := setup(t, 32, partition.Tile{Width: 8, Height: 4})
	defer d.Destroy()

	// physics for a frame that isn't validated can complete after Physics()
	// returns but must be complete once Graphics() has returned
	frame := st.Spec.ValidatedFrames
	st.BackupSatellites()
	reference.Physics(st.Backup, st.Spec)

	test.DemandSuccess(t, d.Physics(frame))
	test.DemandSuccess(t, d.Graphics(frame))

	for i := range st.Satellites {
		test.ExpectSuccess(t, st.Satellites[i].Identical(st.Backup[i]), i)
	}

	reference.Graphics(st.Backup, st.Correct, st.Spec)
	comparePixels(t, st)
}

func TestTileSizes(t *testing.T) {
	for _, tl := range []partition.Tile{{Width: 1, Height: 1}, {Width: 7, Height: 3}, {Width: 32, Height: 32}} {
		st, d := setup(t, 33, tl)
		test.ExpectEquality(t, d.Tile(), tl)
		test.DemandSuccess(t, d.Graphics(0))
		reference.Graphics(st.Satellites, st.Correct, st.Spec)
		comparePixels(t, st, tl)
		test.ExpectSuccess(t, d.Destroy())
	}
}

func TestDefaultTile(t *testing.T) {
	d := dispatch.NewDispatch(device.SoftwareDriver, partition.Tile{})
	test.ExpectEquality(t, d.Tile(), dispatch.DefaultTile)
}

func TestNoDriver(t *testing.T) {
	st, err := store.NewStore(smallSpec())
	test.DemandSuccess(t, err)

	d := dispatch.NewDispatch("no such driver", dispatch.DefaultTile)
	err = d.Setup(st)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, curated.PlatformError))
	test.ExpectEquality(t, curated.ExitCode(err), curated.ExitPlatform)

	var be device.BuildError
	test.ExpectFailure(t, errors.As(err, &be))
}

// singleClass is a driver whose platforms only offer devices of one class.
type singleClass struct {
	device.Driver
	class device.Class
}

func (d singleClass) Name() string {
	return fmt.Sprintf("single %s", d.class)
}

func (d singleClass) Platforms() ([]device.Platform, error) {
	platforms, err := d.Driver.Platforms()
	if err != nil {
		return nil, err
	}
	for i := range platforms {
		platforms[i] = singleClassPlatform{Platform: platforms[i], class: d.class}
	}
	return platforms, nil
}

type singleClassPlatform struct {
	device.Platform
	class device.Class
}

func (p singleClassPlatform) Devices(class device.Class) ([]device.Device, error) {
	if class != p.class {
		return nil, nil
	}
	return p.Platform.Devices(class)
}

func TestSingleDeviceClass(t *testing.T) {
	sw, err := device.Lookup(device.SoftwareDriver)
	test.DemandSuccess(t, err)

	for _, class := range []device.Class{device.CPU, device.Accelerator} {
		drv := singleClass{Driver: sw, class: class}
		device.RegisterDriver(drv)

		st, err := store.NewStore(smallSpec())
		test.DemandSuccess(t, err)
		st.Initialise(random.NewRandom(34))

		d := dispatch.NewDispatch(drv.Name(), dispatch.DefaultTile)
		test.DemandSuccess(t, d.Setup(st), class)

		// both sides of the engine use the only class available
		p, g := d.Devices()
		name := fmt.Sprintf("software %s", class)
		test.ExpectEquality(t, p, name)
		test.ExpectEquality(t, g, name)

		// the last frame is not validated and runs asynchronously
		for frame := range st.Spec.ValidatedFrames + 1 {
			st.BackupSatellites()
			reference.Physics(st.Backup, st.Spec)

			test.DemandSuccess(t, d.Physics(frame), class, frame)
			test.DemandSuccess(t, d.Graphics(frame), class, frame)

			for i := range st.Satellites {
				test.ExpectSuccess(t, st.Satellites[i].Identical(st.Backup[i]), class, frame, i)
			}

			reference.Graphics(st.Backup, st.Correct, st.Spec)
			comparePixels(t, st, class, frame)
		}

		test.ExpectSuccess(t, d.Destroy())
	}
}
