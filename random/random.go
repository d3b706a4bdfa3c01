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


package random

import (
	"math/rand"
	"time"
)

// Random is a seeded source of uniformly distributed numbers.
type Random struct {
	seed int64
	rnd  *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means the seed is taken from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed in use. This is never zero.
func (r *Random) Seed() int64 {
	return r.seed
}

// Number returns a number in the range [min, max).
func (r *Random) Number(min float32, max float32) float32 {
	return min + r.rnd.Float32()*(max-min)
}

// Intn returns a number in the range [0, n).
func (r *Random) Intn(n int) int {
	return r.rnd.Intn(n)
}
