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


package device

import (
	"fmt"
	"slices"
	"sync"
)

var registry struct {
	crit    sync.Mutex
	drivers map[string]Driver
	kernels map[string]Implementation
}

// RegisterDriver makes a driver available to Lookup(). Drivers register
// themselves in their package's init() function.
func RegisterDriver(drv Driver) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	if registry.drivers == nil {
		registry.drivers = make(map[string]Driver)
	}
	registry.drivers[drv.Name()] = drv
}

// Lookup returns the named driver.
func Lookup(name string) (Driver, error) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	if drv, ok := registry.drivers[name]; ok {
		return drv, nil
	}
	return nil, fmt.Errorf("device: no driver named %q", name)
}

// Drivers returns the names of all registered drivers in alphabetical order.
func Drivers() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	n := make([]string, 0, len(registry.drivers))
	for k := range registry.drivers {
		n = append(n, k)
	}
	slices.Sort(n)
	return n
}

// WorkItem is the body of a software kernel. It is called once for every
// work-item with the global id of the work-item in each dimension. The second
// id of a one dimensional dispatch is always zero.
type WorkItem func(id0 int, id1 int)

// Implementation binds the arguments of a software kernel. It is called once
// per dispatch with the arguments given to SetArg(). Buffer arguments are of
// type HostBuffer.
type Implementation func(args []any) (WorkItem, error)

// HostBuffer is a Buffer whose memory the host can address.
type HostBuffer interface {
	Buffer
	Bytes() []byte
}

// RegisterKernel makes a Go implementation of a kernel available to the
// software driver.
func RegisterKernel(name string, impl Implementation) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	if registry.kernels == nil {
		registry.kernels = make(map[string]Implementation)
	}
	registry.kernels[name] = impl
}

func lookupKernel(name string) (Implementation, bool) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	impl, ok := registry.kernels[name]
	return impl, ok
}
