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


package space

import (
	"fmt"
	"math"
)

// Vector is a 2D single precision vector.
type Vector struct {
	X float32
	Y float32
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float32 {
	return float32(v.X*w.X) + float32(v.Y*w.Y)
}

// LengthSquared returns the squared length of the vector.
func (v Vector) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the length of the vector. The square root is taken in double
// precision and rounded to single precision.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Double returns the vector in double precision.
func (v Vector) Double() DVector {
	return DVector{X: float64(v.X), Y: float64(v.Y)}
}

// DVector is a 2D double precision vector.
type DVector struct {
	X float64
	Y float64
}

func (v DVector) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}

// Add returns v + w.
func (v DVector) Add(w DVector) DVector {
	return DVector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v DVector) Sub(w DVector) DVector {
	return DVector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by s.
func (v DVector) Scale(s float64) DVector {
	return DVector{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v DVector) Dot(w DVector) float64 {
	return float64(v.X*w.X) + float64(v.Y*w.Y)
}

// LengthSquared returns the squared length of the vector.
func (v DVector) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the length of the vector.
func (v DVector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Single returns the vector rounded to single precision.
func (v DVector) Single() Vector {
	return Vector{X: float32(v.X), Y: float32(v.Y)}
}
