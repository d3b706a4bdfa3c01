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


package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/backend/dispatch"
	"github.com/jetsetilly/orbital/backend/workerpool"
	"github.com/jetsetilly/orbital/curated"
	"github.com/jetsetilly/orbital/device"
	"github.com/jetsetilly/orbital/modalflag"
	"github.com/jetsetilly/orbital/orchestrator"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/test"
)

func TestFailureExitCodes(t *testing.T) {
	md := &modalflag.Modes{}

	err := curated.Errorf(curated.BuildError, device.BuildError{Log: "missing kernel"})
	test.ExpectEquality(t, failure(md, err), curated.ExitBuild)

	err = curated.Errorf(curated.PlatformError, errors.New("no platforms"))
	test.ExpectEquality(t, failure(md, err), curated.ExitPlatform)

	err = curated.Errorf(curated.AllocationError, errors.New("out of memory"))
	test.ExpectEquality(t, failure(md, err), curated.ExitAllocation)

	test.ExpectEquality(t, failure(md, errors.New("backend failed")), exitMode)
	test.ExpectEquality(t, failure(md, argumentError{errors.New("bad argument")}), exitParse)
}

type flagValues struct {
	backend string
	workers int
	tile    string
}

func (v *flagValues) simFlags() *simFlags {
	driver := device.SoftwareDriver
	return &simFlags{
		backend: &v.backend,
		driver:  &driver,
		workers: &v.workers,
		tile:    &v.tile,
	}
}

func TestSelectBackend(t *testing.T) {
	p, err := orchestrator.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	// everything from the preferences
	v := &flagValues{workers: -1}
	be, err := selectBackend(v.simFlags(), p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, be.Name(), backend.WorkerPool)

	// worker count from the command line
	v = &flagValues{backend: backend.WorkerPool, workers: 5}
	be, err = selectBackend(v.simFlags(), p)
	test.DemandSuccess(t, err)
	pool, ok := be.(*workerpool.Pool)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, pool.Workers(), 5)

	// tile from the preferences
	test.DemandSuccess(t, p.Tile.Set("8x8"))
	v = &flagValues{backend: backend.Dispatch, workers: -1}
	be, err = selectBackend(v.simFlags(), p)
	test.DemandSuccess(t, err)
	d, ok := be.(*dispatch.Dispatch)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Tile(), partition.Tile{Width: 8, Height: 8})

	// tile from the command line
	v = &flagValues{backend: backend.Dispatch, workers: -1, tile: "8x4"}
	be, err = selectBackend(v.simFlags(), p)
	test.DemandSuccess(t, err)
	d, ok = be.(*dispatch.Dispatch)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Tile(), partition.Tile{Width: 8, Height: 4})

	v = &flagValues{backend: backend.Dispatch, workers: -1, tile: "eight"}
	_, err = selectBackend(v.simFlags(), p)
	test.ExpectSuccess(t, errors.As(err, &argumentError{}))

	v = &flagValues{backend: "threads", workers: -1}
	_, err = selectBackend(v.simFlags(), p)
	test.ExpectFailure(t, err)
}
