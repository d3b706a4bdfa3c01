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

//go:build opencl

package opencl

import (
	"fmt"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"github.com/jetsetilly/orbital/device"
)

// DriverName is the name the driver is registered with.
const DriverName = "opencl"

func init() {
	device.RegisterDriver(&driver{})
}

type driver struct{}

func (drv *driver) Name() string {
	return DriverName
}

func (drv *driver) Platforms() ([]device.Platform, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		return nil, fmt.Errorf("opencl: querying platforms: %w", err)
	}
	p := make([]device.Platform, 0, len(platforms))
	for _, pl := range platforms {
		p = append(p, &platform{pl: pl})
	}
	return p, nil
}

type platform struct {
	pl *cl.Platform
}

func (p *platform) Name() string {
	return p.pl.Name()
}

func (p *platform) Devices(class device.Class) ([]device.Device, error) {
	typ := cl.DeviceTypeCPU
	if class == device.Accelerator {
		typ = cl.DeviceTypeGPU
	}

	devs, err := p.pl.GetDevices(typ)
	if err != nil {
		if err == cl.ErrDeviceNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("opencl: %w", err)
	}

	d := make([]device.Device, 0, len(devs))
	for _, dv := range devs {
		d = append(d, &clDevice{dev: dv, class: class})
	}
	return d, nil
}

type clDevice struct {
	dev   *cl.Device
	class device.Class
}

func (d *clDevice) Name() string {
	return d.dev.Name()
}

func (d *clDevice) Class() device.Class {
	return d.class
}

// buffers are always copied between host and device memory
func (d *clDevice) HostShared() bool {
	return false
}

func (d *clDevice) CreateContext() (device.Context, error) {
	ctx, err := cl.CreateContext([]*cl.Device{d.dev})
	if err != nil {
		return nil, fmt.Errorf("opencl: creating context: %w", err)
	}
	return &context{dev: d.dev, ctx: ctx}, nil
}

type context struct {
	dev *cl.Device
	ctx *cl.Context
}

func (c *context) CreateQueue() (device.Queue, error) {
	q, err := c.ctx.CreateCommandQueue(c.dev, 0)
	if err != nil {
		return nil, fmt.Errorf("opencl: creating command queue: %w", err)
	}
	return &queue{q: q, ctx: c.ctx}, nil
}

// CreateBuffer copies host memory into the new buffer. The driver's devices
// are never HostShared.
func (c *context) CreateBuffer(size int, host []byte) (device.Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("opencl: buffer size must be positive (%d)", size)
	}

	var mem *cl.MemObject
	var err error
	if host == nil {
		mem, err = c.ctx.CreateEmptyBuffer(cl.MemReadWrite, size)
	} else {
		if len(host) < size {
			return nil, fmt.Errorf("opencl: host memory is smaller than buffer (%d < %d)", len(host), size)
		}
		mem, err = c.ctx.CreateBufferUnsafe(cl.MemReadWrite|cl.MemCopyHostPtr, size, unsafe.Pointer(&host[0]))
	}
	if err != nil {
		return nil, fmt.Errorf("opencl: creating buffer: %w", err)
	}
	return &buffer{mem: mem, size: size}, nil
}

func (c *context) CreateProgram(source string) (device.Program, error) {
	p, err := c.ctx.CreateProgramWithSource([]string{source})
	if err != nil {
		return nil, fmt.Errorf("opencl: creating program: %w", err)
	}
	return &program{dev: c.dev, p: p}, nil
}

func (c *context) Release() {
	c.ctx.Release()
}

type buffer struct {
	mem  *cl.MemObject
	size int
}

func (b *buffer) Size() int {
	return b.size
}

func (b *buffer) Shared() bool {
	return false
}

func (b *buffer) Release() {
	b.mem.Release()
}

type program struct {
	dev *cl.Device
	p   *cl.Program
}

func (p *program) Build(options string) error {
	err := p.p.BuildProgram([]*cl.Device{p.dev}, options)
	if err != nil {
		if berr, ok := err.(cl.BuildError); ok {
			return device.BuildError{Log: string(berr)}
		}
		return fmt.Errorf("opencl: building program: %w", err)
	}
	return nil
}

func (p *program) Kernel(name string) (device.Kernel, error) {
	k, err := p.p.CreateKernel(name)
	if err != nil {
		return nil, fmt.Errorf("opencl: creating kernel %s: %w", name, err)
	}
	return &kernel{name: name, k: k}, nil
}

func (p *program) Release() {
	p.p.Release()
}

type kernel struct {
	name string
	k    *cl.Kernel
}

func (k *kernel) Name() string {
	return k.name
}

func (k *kernel) SetArg(index int, value any) error {
	var err error
	switch v := value.(type) {
	case *buffer:
		err = k.k.SetArgBuffer(index, v.mem)
	case int32:
		err = k.k.SetArgInt32(index, v)
	case float32:
		err = k.k.SetArgFloat32(index, v)
	default:
		return fmt.Errorf("opencl: %s: argument %d: unsupported type %T", k.name, index, value)
	}
	if err != nil {
		return fmt.Errorf("opencl: %s: argument %d: %w", k.name, index, err)
	}
	return nil
}

func (k *kernel) Release() {
	k.k.Release()
}

type event struct {
	ev  *cl.Event
	ctx *cl.Context
}

func (e *event) Wait() error {
	if e == nil || e.ev == nil {
		return nil
	}
	return cl.WaitForEvents([]*cl.Event{e.ev})
}

func (e *event) Release() {
	if e != nil && e.ev != nil {
		e.ev.Release()
	}
}

// waitList converts events to OpenCL events. events from another context or
// another driver are waited on by the host before the command is enqueued.
func (q *queue) waitList(wait []device.Event) ([]*cl.Event, error) {
	var l []*cl.Event
	for _, w := range wait {
		if e, ok := w.(*event); ok && e.ev != nil && e.ctx == q.ctx {
			l = append(l, e.ev)
			continue // for loop
		}
		if err := w.Wait(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

type queue struct {
	q   *cl.CommandQueue
	ctx *cl.Context
}

func (q *queue) Write(buf device.Buffer, blocking bool, src []byte, wait []device.Event) (device.Event, error) {
	b, ok := buf.(*buffer)
	if !ok {
		return nil, fmt.Errorf("opencl: buffer does not belong to the opencl driver")
	}
	wl, err := q.waitList(wait)
	if err != nil {
		return nil, err
	}
	ev, err := q.q.EnqueueWriteBuffer(b.mem, blocking, 0, len(src), unsafe.Pointer(&src[0]), wl)
	if err != nil {
		return nil, fmt.Errorf("opencl: writing buffer: %w", err)
	}
	return &event{ev: ev, ctx: q.ctx}, nil
}

func (q *queue) Read(buf device.Buffer, blocking bool, dst []byte, wait []device.Event) (device.Event, error) {
	b, ok := buf.(*buffer)
	if !ok {
		return nil, fmt.Errorf("opencl: buffer does not belong to the opencl driver")
	}
	wl, err := q.waitList(wait)
	if err != nil {
		return nil, err
	}
	ev, err := q.q.EnqueueReadBuffer(b.mem, blocking, 0, len(dst), unsafe.Pointer(&dst[0]), wl)
	if err != nil {
		return nil, fmt.Errorf("opencl: reading buffer: %w", err)
	}
	return &event{ev: ev, ctx: q.ctx}, nil
}

func (q *queue) Dispatch(k device.Kernel, global []int, local []int, wait []device.Event) (device.Event, error) {
	kn, ok := k.(*kernel)
	if !ok {
		return nil, fmt.Errorf("opencl: kernel does not belong to the opencl driver")
	}
	wl, err := q.waitList(wait)
	if err != nil {
		return nil, err
	}
	ev, err := q.q.EnqueueNDRangeKernel(kn.k, nil, global, local, wl)
	if err != nil {
		return nil, fmt.Errorf("opencl: %s: %w", kn.name, err)
	}
	return &event{ev: ev, ctx: q.ctx}, nil
}

func (q *queue) Finish() error {
	return q.q.Finish()
}

func (q *queue) Release() {
	q.q.Release()
}
