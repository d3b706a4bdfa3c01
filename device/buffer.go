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
	"unsafe"
)

type buffer struct {
	data     []byte
	shared   bool
	released bool
}

func newBuffer(dev *softwareDevice, size int, host []byte) (*buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("device: buffer size must be positive (%d)", size)
	}
	if host != nil && len(host) < size {
		return nil, fmt.Errorf("device: host memory is smaller than buffer (%d < %d)", len(host), size)
	}

	if host != nil && dev.shared {
		return &buffer{data: host[:size], shared: true}, nil
	}

	// backing store is allocated as 32bit words so that the bytes can be
	// viewed as float32 values
	words := make([]uint32, (size+3)/4)
	b := &buffer{data: unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)}
	if host != nil {
		copy(b.data, host)
	}
	return b, nil
}

func (b *buffer) Size() int {
	return len(b.data)
}

func (b *buffer) Shared() bool {
	return b.shared
}

func (b *buffer) Bytes() []byte {
	return b.data
}

func (b *buffer) Release() {
	b.released = true
}

func asBuffer(buf Buffer) (*buffer, error) {
	b, ok := buf.(*buffer)
	if !ok {
		return nil, fmt.Errorf("device: buffer does not belong to the software driver")
	}
	if b.released {
		return nil, fmt.Errorf("device: buffer has been released")
	}
	return b, nil
}
