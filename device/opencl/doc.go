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


// Package opencl is a device.Driver for OpenCL platforms, registered with the
// name "opencl". Importing the package for its side effect makes the driver
// available:
//
//	import _ "github.com/jetsetilly/orbital/device/opencl"
//
// The driver is only built with the opencl build tag. Without the tag the
// package is empty and only the software driver is available.
package opencl
