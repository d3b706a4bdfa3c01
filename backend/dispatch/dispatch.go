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


// Package dispatch is a backend that runs the kernels of the kernels package
// on a device from the device package.
//
// Physics runs on a device of the CPU class and graphics on a device of the
// Accelerator class, when they exist. Each has its own context, queue and
// program. The satellites are copied from the physics side to the graphics
// side through the host at the start of every graphics pass.
package dispatch

import (
	"fmt"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/curated"
	"github.com/jetsetilly/orbital/device"
	"github.com/jetsetilly/orbital/kernels"
	"github.com/jetsetilly/orbital/logger"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/store"
)

// DefaultTile is the work-group size used by the graphics kernel when no
// other size is given.
var DefaultTile = partition.Tile{Width: 16, Height: 16}

// side is the set of resources used to run one kernel.
type side struct {
	dev    device.Device
	ctx    device.Context
	queue  device.Queue
	prog   device.Program
	kernel device.Kernel
}

func (s *side) release() {
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.prog != nil {
		s.prog.Release()
		s.prog = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.ctx != nil {
		s.ctx.Release()
		s.ctx = nil
	}
}

// Dispatch implements the backend.Backend interface.
type Dispatch struct {
	driver string
	tile   partition.Tile
	grid   partition.Grid

	st *store.Store

	physics  side
	graphics side

	// satellite buffer on the physics side
	physicsSats device.Buffer

	// satellite and pixel buffers on the graphics side
	graphicsSats device.Buffer
	pixels       device.Buffer

	// completion of the most recent physics pass. nil if there is no
	// outstanding physics work
	physicsDone device.Event
}

// NewDispatch is the preferred method of initialisation for the Dispatch
// type. The driver argument names a driver registered with the device
// package.
func NewDispatch(driver string, tile partition.Tile) *Dispatch {
	if tile.Width < 1 || tile.Height < 1 {
		tile = DefaultTile
	}
	return &Dispatch{
		driver: driver,
		tile:   tile,
	}
}

// Name implements the backend.Backend interface.
func (d *Dispatch) Name() string {
	return backend.Dispatch
}

// Devices returns the names of the devices used for physics and graphics.
// The names are empty until Setup() has succeeded.
func (d *Dispatch) Devices() (string, string) {
	var p, g string
	if d.physics.dev != nil {
		p = d.physics.dev.Name()
	}
	if d.graphics.dev != nil {
		g = d.graphics.dev.Name()
	}
	return p, g
}

// Tile returns the work-group size of the graphics kernel.
func (d *Dispatch) Tile() partition.Tile {
	return d.tile
}

func (d *Dispatch) setupSide(s *side, drv device.Driver, preferred device.Class, name string) error {
	var err error

	s.dev, err = device.Select(drv, preferred)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "dispatch", "%s: %s (%s)", name, s.dev.Name(), s.dev.Class())

	s.ctx, err = s.dev.CreateContext()
	if err != nil {
		return curated.Errorf(curated.PlatformError, err)
	}

	s.queue, err = s.ctx.CreateQueue()
	if err != nil {
		return curated.Errorf(curated.PlatformError, err)
	}

	s.prog, err = s.ctx.CreateProgram(kernels.Source)
	if err != nil {
		return curated.Errorf(curated.BuildError, err)
	}

	err = s.prog.Build(kernels.BuildOptions)
	if err != nil {
		return curated.Errorf(curated.BuildError, err)
	}

	s.kernel, err = s.prog.Kernel(name)
	if err != nil {
		return curated.Errorf(curated.BuildError, err)
	}

	return nil
}

// Setup implements the backend.Backend interface.
//
// Errors are curated errors with one of the curated.PlatformError,
// curated.BuildError or curated.AllocationError patterns. A failed build
// wraps a device.BuildError, which contains the build log.
func (d *Dispatch) Setup(st *store.Store) error {
	if st == nil {
		return fmt.Errorf("dispatch: no store")
	}
	d.st = st

	drv, err := device.Lookup(d.driver)
	if err != nil {
		return curated.Errorf(curated.PlatformError, err)
	}

	err = d.setupSide(&d.physics, drv, device.CPU, kernels.PhysicsKernel)
	if err != nil {
		d.Destroy()
		return err
	}

	err = d.setupSide(&d.graphics, drv, device.Accelerator, kernels.GraphicsKernel)
	if err != nil {
		d.Destroy()
		return err
	}

	err = d.allocate()
	if err != nil {
		d.Destroy()
		return curated.Errorf(curated.AllocationError, err)
	}

	err = d.setArgs()
	if err != nil {
		d.Destroy()
		return curated.Errorf(curated.PlatformError, err)
	}

	d.grid = partition.NewGrid(st.Spec.Width, st.Spec.Height, d.tile)
	gx, gy := d.grid.Groups()
	logger.Logf(logger.Allow, "dispatch", "tile %s: %dx%d work-groups", d.tile, gx, gy)

	return nil
}

func (d *Dispatch) allocate() error {
	var err error

	sats := kernels.SatelliteBytes(d.st.Satellites)
	pixels := kernels.ColorBytes(d.st.Pixels.Pixels)

	d.physicsSats, err = d.physics.ctx.CreateBuffer(len(sats), sats)
	if err != nil {
		return fmt.Errorf("satellites: %w", err)
	}
	if d.physicsSats.Shared() {
		logger.Log(logger.Allow, "dispatch", "physics satellites share host memory")
	}

	d.graphicsSats, err = d.graphics.ctx.CreateBuffer(len(sats), nil)
	if err != nil {
		return fmt.Errorf("satellites: %w", err)
	}

	d.pixels, err = d.graphics.ctx.CreateBuffer(len(pixels), pixels)
	if err != nil {
		return fmt.Errorf("pixels: %w", err)
	}
	if d.pixels.Shared() {
		logger.Log(logger.Allow, "dispatch", "pixels share host memory")
	}

	return nil
}

func (d *Dispatch) setArgs() error {
	spec := d.st.Spec
	center := spec.Center()

	physics := []any{
		d.physicsSats,
		int32(spec.Satellites),
		int32(spec.Substeps),
		spec.Gravity,
		spec.DeltaTime,
		int32(center.X),
		int32(center.Y),
	}
	for i, v := range physics {
		if err := d.physics.kernel.SetArg(i, v); err != nil {
			return err
		}
	}

	graphics := []any{
		d.graphicsSats,
		d.pixels,
		int32(spec.Satellites),
		int32(spec.Width),
		int32(spec.Height),
		spec.Radius * spec.Radius,
		spec.Brightness,
	}
	for i, v := range graphics {
		if err := d.graphics.kernel.SetArg(i, v); err != nil {
			return err
		}
	}

	return nil
}

// Physics implements the backend.Backend interface. For validated frames the
// function blocks until the satellites in the store are up to date.
func (d *Dispatch) Physics(frame int) error {
	if d.st == nil {
		return fmt.Errorf("dispatch: physics: not set up")
	}

	// physics from an earlier frame has not been waited on by a graphics pass
	if d.physicsDone != nil {
		if err := d.physicsDone.Wait(); err != nil {
			return fmt.Errorf("dispatch: physics: %w", err)
		}
		d.physicsDone.Release()
		d.physicsDone = nil
	}

	q := d.physics.queue
	sats := kernels.SatelliteBytes(d.st.Satellites)
	blocking := d.st.Spec.Validated(frame)

	if !d.physicsSats.Shared() {
		ev, err := q.Write(d.physicsSats, false, sats, nil)
		if err != nil {
			return fmt.Errorf("dispatch: physics: %w", err)
		}
		ev.Release()
	}

	ev, err := q.Dispatch(d.physics.kernel, []int{d.st.Spec.Satellites}, nil, nil)
	if err != nil {
		return fmt.Errorf("dispatch: physics: %w", err)
	}

	if !d.physicsSats.Shared() {
		ev.Release()
		ev, err = q.Read(d.physicsSats, blocking, sats, nil)
		if err != nil {
			return fmt.Errorf("dispatch: physics: %w", err)
		}
	}

	if blocking {
		err = q.Finish()
		if err != nil {
			return fmt.Errorf("dispatch: physics: %w", err)
		}
	}

	d.physicsDone = ev

	return nil
}

// Graphics implements the backend.Backend interface. The satellites are
// written to the graphics side once the most recent physics pass has
// completed.
func (d *Dispatch) Graphics(_ int) error {
	if d.st == nil {
		return fmt.Errorf("dispatch: graphics: not set up")
	}

	q := d.graphics.queue

	var wait []device.Event
	if d.physicsDone != nil {
		wait = []device.Event{d.physicsDone}
	}

	ev, err := q.Write(d.graphicsSats, false, kernels.SatelliteBytes(d.st.Satellites), wait)
	if err != nil {
		return fmt.Errorf("dispatch: graphics: %w", err)
	}
	ev.Release()

	ev, err = q.Dispatch(d.graphics.kernel,
		[]int{d.grid.GlobalHeight, d.grid.GlobalWidth},
		[]int{d.tile.Height, d.tile.Width},
		nil)
	if err != nil {
		return fmt.Errorf("dispatch: graphics: %w", err)
	}
	ev.Release()

	if !d.pixels.Shared() {
		ev, err = q.Read(d.pixels, true, kernels.ColorBytes(d.st.Pixels.Pixels), nil)
		if err != nil {
			return fmt.Errorf("dispatch: graphics: %w", err)
		}
		ev.Release()
	}

	err = q.Finish()
	if err != nil {
		return fmt.Errorf("dispatch: graphics: %w", err)
	}

	if d.physicsDone != nil {
		d.physicsDone.Release()
		d.physicsDone = nil
	}

	return nil
}

// Destroy implements the backend.Backend interface.
func (d *Dispatch) Destroy() error {
	var err error

	if d.physicsDone != nil {
		err = d.physicsDone.Wait()
		d.physicsDone.Release()
		d.physicsDone = nil
	}

	if d.physics.queue != nil {
		d.physics.queue.Finish()
	}
	if d.graphics.queue != nil {
		d.graphics.queue.Finish()
	}

	for _, b := range []*device.Buffer{&d.physicsSats, &d.graphicsSats, &d.pixels} {
		if *b != nil {
			(*b).Release()
			*b = nil
		}
	}

	d.physics.release()
	d.graphics.release()

	d.st = nil

	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}
	return nil
}
