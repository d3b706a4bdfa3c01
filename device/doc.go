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


// Package device is a small compute device API in the style of OpenCL. A
// Driver enumerates Platforms, a Platform enumerates Devices of a Class, and a
// Device creates a Context. Within a Context, Programs are built from source,
// Kernels are taken from a built Program and dispatched over a one or two
// dimensional range on an in-order Queue. Every enqueued command returns an
// Event that later commands, on any queue, can wait on.
//
// The package contains a software driver, registered as "software", that
// runs kernels on goroutines. It has a CPU class device that shares memory
// with the host and an accelerator class device with its own memory, so that
// buffers must be written before and read after a dispatch. Because the
// software driver cannot compile OpenCL C, each kernel name in a program's
// source must have a Go implementation registered with RegisterKernel().
//
// A driver for real OpenCL platforms is in the device/opencl package and is
// only built with the opencl build tag.
package device
