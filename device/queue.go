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
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

type event struct {
	done chan struct{}
	err  error
}

func newEvent() *event {
	return &event{done: make(chan struct{})}
}

func (ev *event) complete(err error) {
	ev.err = err
	close(ev.done)
}

func (ev *event) Wait() error {
	<-ev.done
	return ev.err
}

func (ev *event) Release() {
}

type command struct {
	run  func() error
	wait []Event
	ev   *event
}

// queue runs commands in order on a single goroutine. the work of a dispatch
// is spread across the compute units of the device.
type queue struct {
	dev *softwareDevice

	crit     sync.Mutex
	released bool
	commands chan command
	stopped  chan struct{}
}

func newQueue(dev *softwareDevice) *queue {
	q := &queue{
		dev:      dev,
		commands: make(chan command, 64),
		stopped:  make(chan struct{}),
	}
	go q.service()
	return q
}

func (q *queue) service() {
	defer close(q.stopped)
	for cmd := range q.commands {
		var err error
		for _, w := range cmd.wait {
			if werr := w.Wait(); werr != nil {
				err = fmt.Errorf("device: waiting on event: %w", werr)
				break // for loop
			}
		}
		if err == nil {
			err = cmd.run()
		}
		cmd.ev.complete(err)
	}
}

func (q *queue) enqueue(run func() error, wait []Event, blocking bool) (Event, error) {
	q.crit.Lock()
	if q.released {
		q.crit.Unlock()
		return nil, fmt.Errorf("device: queue has been released")
	}
	ev := newEvent()
	q.commands <- command{run: run, wait: wait, ev: ev}
	q.crit.Unlock()

	if blocking {
		if err := ev.Wait(); err != nil {
			return ev, err
		}
	}
	return ev, nil
}

func (q *queue) Write(buf Buffer, blocking bool, src []byte, wait []Event) (Event, error) {
	b, err := asBuffer(buf)
	if err != nil {
		return nil, err
	}
	if len(src) > b.Size() {
		return nil, fmt.Errorf("device: write of %d bytes to a buffer of %d bytes", len(src), b.Size())
	}
	return q.enqueue(func() error {
		copy(b.data, src)
		return nil
	}, wait, blocking)
}

func (q *queue) Read(buf Buffer, blocking bool, dst []byte, wait []Event) (Event, error) {
	b, err := asBuffer(buf)
	if err != nil {
		return nil, err
	}
	if len(dst) > b.Size() {
		return nil, fmt.Errorf("device: read of %d bytes from a buffer of %d bytes", len(dst), b.Size())
	}
	return q.enqueue(func() error {
		copy(dst, b.data)
		return nil
	}, wait, blocking)
}

func (q *queue) Dispatch(k Kernel, global []int, local []int, wait []Event) (Event, error) {
	kn, ok := k.(*kernel)
	if !ok {
		return nil, fmt.Errorf("device: kernel does not belong to the software driver")
	}

	groups, err := workGroups(global, local, q.dev.units())
	if err != nil {
		return nil, fmt.Errorf("device: %s: %w", kn.name, err)
	}

	// arguments are bound when the dispatch is enqueued. changing them
	// afterwards does not affect this dispatch
	item, err := kn.bind()
	if err != nil {
		return nil, err
	}

	return q.enqueue(func() error {
		var eg errgroup.Group
		eg.SetLimit(q.dev.units())
		for _, g := range groups {
			eg.Go(func() error {
				for id0 := g.start[0]; id0 < g.end[0]; id0++ {
					for id1 := g.start[1]; id1 < g.end[1]; id1++ {
						item(id0, id1)
					}
				}
				return nil
			})
		}
		return eg.Wait()
	}, wait, false)
}

func (q *queue) Finish() error {
	_, err := q.enqueue(func() error { return nil }, nil, true)
	return err
}

func (q *queue) Release() {
	q.crit.Lock()
	if q.released {
		q.crit.Unlock()
		return
	}
	q.released = true
	close(q.commands)
	q.crit.Unlock()
	<-q.stopped
}

// group is a rectangle of work-items.
type group struct {
	start [2]int
	end   [2]int
}

// workGroups divides the global range into work-groups. the second dimension
// of a one dimensional range has a size of one.
func workGroups(global []int, local []int, units int) ([]group, error) {
	if len(global) < 1 || len(global) > 2 {
		return nil, errors.New("global range must have one or two dimensions")
	}
	if local != nil && len(local) != len(global) {
		return nil, errors.New("local range must have the same dimensions as the global range")
	}

	g := [2]int{global[0], 1}
	if len(global) == 2 {
		g[1] = global[1]
	}
	if g[0] < 1 || g[1] < 1 {
		return nil, fmt.Errorf("empty global range %v", global)
	}

	var l [2]int
	if local == nil {
		// one group for every compute unit, divided along the first
		// dimension
		l = [2]int{max(1, (g[0]+units-1)/units), g[1]}
		for g[0]%l[0] != 0 {
			l[0]++
		}
	} else {
		l = [2]int{local[0], 1}
		if len(local) == 2 {
			l[1] = local[1]
		}
		if l[0] < 1 || l[1] < 1 {
			return nil, fmt.Errorf("invalid work-group size %v", local)
		}
		if g[0]%l[0] != 0 || g[1]%l[1] != 0 {
			return nil, fmt.Errorf("work-group size %v does not divide global range %v", local, global)
		}
	}

	groups := make([]group, 0, (g[0]/l[0])*(g[1]/l[1]))
	for s0 := 0; s0 < g[0]; s0 += l[0] {
		for s1 := 0; s1 < g[1]; s1 += l[1] {
			groups = append(groups, group{
				start: [2]int{s0, s1},
				end:   [2]int{s0 + l[0], s1 + l[1]},
			})
		}
	}

	return groups, nil
}
