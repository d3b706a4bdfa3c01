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
)

// Class is the type of a device.
type Class int

// List of valid Class values.
const (
	CPU Class = iota
	Accelerator
)

func (c Class) String() string {
	switch c {
	case CPU:
		return "cpu"
	case Accelerator:
		return "accelerator"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// Driver is an implementation of the device API.
type Driver interface {
	Name() string
	Platforms() ([]Platform, error)
}

// Platform is a collection of devices.
type Platform interface {
	Name() string

	// Devices returns the devices of the requested class. A platform with no
	// devices of the class returns an empty list and no error.
	Devices(class Class) ([]Device, error)
}

// Device can run kernels.
type Device interface {
	Name() string
	Class() Class

	// HostShared is true if buffers created with host memory use that memory
	// directly rather than a copy of it.
	HostShared() bool

	CreateContext() (Context, error)
}

// Context owns the queues, buffers and programs of a device.
type Context interface {
	CreateQueue() (Queue, error)

	// CreateBuffer allocates a buffer of size bytes. If host is not nil then
	// the buffer is initialised from it. If the device is HostShared then host
	// becomes the storage of the buffer.
	CreateBuffer(size int, host []byte) (Buffer, error)

	CreateProgram(source string) (Program, error)
	Release()
}

// Buffer is memory accessible to kernels.
type Buffer interface {
	Size() int

	// Shared is true if the buffer uses host memory directly.
	Shared() bool

	Release()
}

// Program is a collection of kernels compiled from source.
type Program interface {
	// Build the program. A failed build returns a BuildError.
	Build(options string) error
	Kernel(name string) (Kernel, error)
	Release()
}

// Kernel is a function in a built program.
type Kernel interface {
	Name() string

	// SetArg sets the argument at index. Arguments are Buffers, int32 or
	// float32 values.
	SetArg(index int, value any) error

	Release()
}

// Queue is an in-order command queue. Commands start in the order they are
// enqueued, each one after the one before has completed and after every event
// in its wait list.
type Queue interface {
	// Write copies src into the buffer.
	Write(buf Buffer, blocking bool, src []byte, wait []Event) (Event, error)

	// Read copies the buffer into dst.
	Read(buf Buffer, blocking bool, dst []byte, wait []Event) (Event, error)

	// Dispatch runs the kernel once for every work-item in the global range.
	// The local range is the size of a work-group and must divide the global
	// range exactly in every dimension. A nil local range lets the device
	// choose.
	Dispatch(k Kernel, global []int, local []int, wait []Event) (Event, error)

	// Finish blocks until every enqueued command has completed.
	Finish() error

	Release()
}

// Event represents the completion of an enqueued command.
type Event interface {
	// Wait blocks until the command has completed and returns any error from
	// the command.
	Wait() error
	Release()
}

// BuildError is returned when a program fails to build. The log contains the
// output of the compiler.
type BuildError struct {
	Log string
}

func (e BuildError) Error() string {
	return "program build failed"
}
