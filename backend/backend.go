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


// Package backend defines the interface shared by the parallel engines. A
// backend moves the live satellites through one frame and renders them into
// the pixel buffer of a store.Store.
//
// Two implementations exist: the workerpool package, which spreads the work
// across goroutines, and the dispatch package, which runs the kernels of the
// kernels package on a device.
package backend

import (
	"github.com/jetsetilly/orbital/store"
)

// Backend is implemented by the parallel engines.
type Backend interface {
	Name() string

	// Setup is called once before the first frame. The store remains owned by
	// the caller but the backend may keep a reference to it until Destroy()
	// is called.
	Setup(st *store.Store) error

	// Physics moves the live satellites through one frame.
	//
	// The satellites in the store are guaranteed to be up to date when
	// Physics() returns only for validated frames. For other frames a backend
	// may return before the work is complete, in which case Graphics() will
	// wait for it.
	Physics(frame int) error

	// Graphics renders the live satellites into the pixel buffer of the
	// store. The pixel buffer is up to date when Graphics() returns.
	Graphics(frame int) error

	// Destroy releases every resource created by Setup(). The backend can not
	// be used afterwards.
	Destroy() error
}

// List of backend names.
const (
	WorkerPool = "workerpool"
	Dispatch   = "dispatch"
)

// List of valid backend names. The first entry is the default.
var List = []string{WorkerPool, Dispatch}
