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


// Package kernels contains the per work-item computations shared by every
// parallel engine. IntegrateSatellite() moves one satellite through a frame
// and ShadePixel() colours one pixel.
//
// The same computations are written in OpenCL C in parallel.cl, which is
// embedded in the package as Source. The kernel names in Source match the
// PhysicsKernel and GraphicsKernel constants.
package kernels

import (
	_ "embed"
)

// Names of the kernel functions in Source.
const (
	PhysicsKernel  = "physicsEngineKernel"
	GraphicsKernel = "graphicsEngineKernel"
)

// BuildOptions are passed to the OpenCL compiler.
const BuildOptions = "-cl-fast-relaxed-math"

// Source is the OpenCL C source of the kernels.
//
//go:embed parallel.cl
var Source string
