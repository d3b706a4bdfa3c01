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


// Package workerpool is a backend that divides work between a fixed number
// of goroutines. Each phase forks one goroutine per partition and joins them
// all before returning.
package workerpool

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/kernels"
	"github.com/jetsetilly/orbital/logger"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/store"
)

// Pool implements the backend.Backend interface.
type Pool struct {
	workers int
	st      *store.Store

	satellites []partition.Range
	pixels     []partition.Range

	shading kernels.Shading
}

// NewPool is the preferred method of initialisation for the Pool type. A
// workers value of zero or less uses one worker for every CPU.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

// Name implements the backend.Backend interface.
func (p *Pool) Name() string {
	return backend.WorkerPool
}

// Workers returns the number of goroutines used in each phase.
func (p *Pool) Workers() int {
	return p.workers
}

// Setup implements the backend.Backend interface.
func (p *Pool) Setup(st *store.Store) error {
	if st == nil {
		return fmt.Errorf("workerpool: no store")
	}
	p.st = st

	p.satellites = partition.Split(st.Spec.Satellites, p.workers)
	p.pixels = partition.Split(st.Spec.Size(), p.workers)

	p.shading = kernels.Shading{
		Radius2:    st.Spec.Radius * st.Spec.Radius,
		Brightness: st.Spec.Brightness,
	}

	logger.Logf(logger.Allow, "workerpool", "%d workers", p.workers)

	return nil
}

// Physics implements the backend.Backend interface.
func (p *Pool) Physics(_ int) error {
	if p.st == nil {
		return fmt.Errorf("workerpool: physics: not set up")
	}

	g := p.st.Spec.Field()
	substeps := p.st.Spec.Substeps
	sats := p.st.Satellites

	var eg errgroup.Group
	for _, r := range p.satellites {
		if r.Len() == 0 {
			continue // for loop
		}
		eg.Go(func() error {
			for i := r.Start; i < r.End; i++ {
				kernels.IntegrateSatellite(&sats[i], g, substeps)
			}
			return nil
		})
	}
	return eg.Wait()
}

// Graphics implements the backend.Backend interface.
func (p *Pool) Graphics(_ int) error {
	if p.st == nil {
		return fmt.Errorf("workerpool: graphics: not set up")
	}

	pb := p.st.Pixels
	sats := p.st.Satellites

	var eg errgroup.Group
	for _, r := range p.pixels {
		if r.Len() == 0 {
			continue // for loop
		}
		eg.Go(func() error {
			for i := r.Start; i < r.End; i++ {
				x, y := pb.Coords(i)
				pb.Pixels[i] = kernels.ShadePixel(x, y, sats, p.shading)
			}
			return nil
		})
	}
	return eg.Wait()
}

// Destroy implements the backend.Backend interface.
func (p *Pool) Destroy() error {
	p.st = nil
	p.satellites = nil
	p.pixels = nil
	return nil
}
