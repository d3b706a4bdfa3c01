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


// Package reference is the sequential engine that parallel engines are
// checked against. It is deliberately simple: one goroutine, ascending
// satellite order and ascending pixel order.
//
// Physics() loops over substeps in the outer loop and satellites in the inner
// loop. The parallel engines loop the other way round. Because satellites
// only interact with the fixed gravity centre the two orders perform exactly
// the same arithmetic for each satellite and the results are bit-identical.
//
// Graphics() takes the square root of each distance and raises it to the
// fourth power for the first pass, and uses the squared distance for the
// second. The parallel engines use the squared distance throughout so the
// results agree only within the validator's tolerance.
package reference
