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


// Package space contains the value types of the simulation: single and double
// precision vectors, colours and satellites.
//
// The Satellite type is laid out as seven consecutive float32 values
// (identifier RGB, position XY, velocity XY) with no padding. A slice of
// satellites can therefore be shared byte-for-byte with a compute device. The
// Color type is three consecutive float32 values for the same reason.
//
// Arithmetic on float32 and float64 values in this package is written with
// explicit conversions around each product. The conversions stop the compiler
// fusing a multiply and an add into a single instruction, which would round
// differently on some architectures. Every engine in Orbital shares these
// methods so that results from different engines are bit-identical when the
// inputs are.
package space
