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


// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(30)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		present()
//	}
//
// A Limiter with a rate of zero never waits.
package limiter

import (
	"context"
	"time"
)

// Limiter will trigger at most rate times per second.
type Limiter struct {
	rate   int
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less means the Limiter never waits.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{rate: max(rate, 0)}
	if lim.rate > 0 {
		lim.ticker = time.NewTicker(time.Second / time.Duration(lim.rate))
	}
	return lim
}

// Rate returns the number of triggers per second. Zero means unlimited.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait blocks until the next trigger or until the context is done. The error
// of a done context is returned.
func (lim *Limiter) Wait(ctx context.Context) error {
	if lim.ticker == nil {
		return ctx.Err()
	}
	select {
	case <-lim.ticker.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen.
func (lim *Limiter) HasWaited() bool {
	if lim.ticker == nil {
		return true
	}
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the Limiter. Wait() will block until the context is done once the
// Limiter has been stopped, unless the rate is zero.
func (lim *Limiter) Stop() {
	if lim.ticker != nil {
		lim.ticker.Stop()
	}
}
