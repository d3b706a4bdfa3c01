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
	"runtime"
)

// SoftwareDriver is the name of the software driver.
const SoftwareDriver = "software"

func init() {
	RegisterDriver(&software{})
}

type software struct{}

func (drv *software) Name() string {
	return SoftwareDriver
}

func (drv *software) Platforms() ([]Platform, error) {
	return []Platform{&softwarePlatform{}}, nil
}

type softwarePlatform struct{}

func (p *softwarePlatform) Name() string {
	return "Orbital Software Platform"
}

func (p *softwarePlatform) Devices(class Class) ([]Device, error) {
	switch class {
	case CPU:
		return []Device{&softwareDevice{name: "software cpu", class: CPU, shared: true}}, nil
	case Accelerator:
		return []Device{&softwareDevice{name: "software accelerator", class: Accelerator, shared: false}}, nil
	}
	return nil, nil
}

type softwareDevice struct {
	name   string
	class  Class
	shared bool
}

func (dev *softwareDevice) Name() string {
	return dev.name
}

func (dev *softwareDevice) Class() Class {
	return dev.class
}

func (dev *softwareDevice) HostShared() bool {
	return dev.shared
}

// compute units used by the device. work-groups are distributed between
// them.
func (dev *softwareDevice) units() int {
	return runtime.GOMAXPROCS(0)
}

func (dev *softwareDevice) CreateContext() (Context, error) {
	return &softwareContext{dev: dev}, nil
}

type softwareContext struct {
	dev *softwareDevice
}

func (ctx *softwareContext) CreateQueue() (Queue, error) {
	return newQueue(ctx.dev), nil
}

func (ctx *softwareContext) CreateBuffer(size int, host []byte) (Buffer, error) {
	return newBuffer(ctx.dev, size, host)
}

func (ctx *softwareContext) CreateProgram(source string) (Program, error) {
	return &program{source: source}, nil
}

func (ctx *softwareContext) Release() {
}
