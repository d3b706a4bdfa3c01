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


package kernels

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/orbital/device"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/space"
)

func init() {
	device.RegisterKernel(PhysicsKernel, bindPhysics)
	device.RegisterKernel(GraphicsKernel, bindGraphics)
}

// Satellites views a byte slice as satellites. The length of the slice is
// rounded down to a whole number of satellites.
func Satellites(b []byte) []space.Satellite {
	if len(b) < space.SatelliteSize {
		return nil
	}
	return unsafe.Slice((*space.Satellite)(unsafe.Pointer(&b[0])), len(b)/space.SatelliteSize)
}

// SatelliteBytes views satellites as a byte slice.
func SatelliteBytes(s []space.Satellite) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*space.SatelliteSize)
}

// ColorSize is the size in bytes of a space.Color.
const ColorSize = int(unsafe.Sizeof(space.Color{}))

// Colors views a byte slice as colours.
func Colors(b []byte) []space.Color {
	if len(b) < ColorSize {
		return nil
	}
	return unsafe.Slice((*space.Color)(unsafe.Pointer(&b[0])), len(b)/ColorSize)
}

// ColorBytes views colours as a byte slice.
func ColorBytes(c []space.Color) []byte {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&c[0])), len(c)*ColorSize)
}

// args is a helper for binding kernel arguments.
type args struct {
	kernel string
	values []any
	err    error
}

func (a *args) value(i int) any {
	if a.err != nil {
		return nil
	}
	if i >= len(a.values) {
		a.err = fmt.Errorf("kernels: %s: missing argument %d", a.kernel, i)
		return nil
	}
	return a.values[i]
}

func (a *args) buffer(i int) []byte {
	v := a.value(i)
	if a.err != nil {
		return nil
	}
	b, ok := v.(device.HostBuffer)
	if !ok {
		a.err = fmt.Errorf("kernels: %s: argument %d is not a buffer", a.kernel, i)
		return nil
	}
	return b.Bytes()
}

func (a *args) integer(i int) int {
	v := a.value(i)
	if a.err != nil {
		return 0
	}
	n, ok := v.(int32)
	if !ok {
		a.err = fmt.Errorf("kernels: %s: argument %d is not an int32", a.kernel, i)
		return 0
	}
	return int(n)
}

func (a *args) float(i int) float32 {
	v := a.value(i)
	if a.err != nil {
		return 0
	}
	f, ok := v.(float32)
	if !ok {
		a.err = fmt.Errorf("kernels: %s: argument %d is not a float32", a.kernel, i)
		return 0
	}
	return f
}

// physicsEngineKernel(satellites, count, substeps, gravity, deltaTime, centerX, centerY)
func bindPhysics(values []any) (device.WorkItem, error) {
	a := &args{kernel: PhysicsKernel, values: values}
	sats := Satellites(a.buffer(0))
	count := a.integer(1)
	substeps := a.integer(2)
	g := space.Gravity{
		Strength:  float64(a.float(3)),
		DeltaTime: float64(a.float(4)),
		Substeps:  float64(substeps),
	}
	g.Center.X = float64(a.integer(5))
	g.Center.Y = float64(a.integer(6))
	if a.err != nil {
		return nil, a.err
	}
	if count > len(sats) {
		return nil, fmt.Errorf("kernels: %s: buffer too small for %d satellites", PhysicsKernel, count)
	}

	return func(id0 int, _ int) {
		if id0 >= count {
			return
		}
		IntegrateSatellite(&sats[id0], g, substeps)
	}, nil
}

// graphicsEngineKernel(satellites, pixels, count, width, height, radius2, brightness)
func bindGraphics(values []any) (device.WorkItem, error) {
	a := &args{kernel: GraphicsKernel, values: values}
	sats := Satellites(a.buffer(0))
	pixels := Colors(a.buffer(1))
	count := a.integer(2)
	width := a.integer(3)
	height := a.integer(4)
	sh := Shading{
		Radius2:    a.float(5),
		Brightness: a.float(6),
	}
	if a.err != nil {
		return nil, a.err
	}
	if count > len(sats) {
		return nil, fmt.Errorf("kernels: %s: buffer too small for %d satellites", GraphicsKernel, count)
	}
	if width*height > len(pixels) {
		return nil, fmt.Errorf("kernels: %s: buffer too small for %dx%d pixels", GraphicsKernel, width, height)
	}
	sats = sats[:count]

	// the global range is padded to the work-group size
	bounds := partition.Grid{Width: width, Height: height}

	// the first dimension is the row
	return func(y int, x int) {
		if !bounds.Inside(x, y) {
			return
		}
		pixels[y*width+x] = ShadePixel(x, y, sats, sh)
	}, nil
}
