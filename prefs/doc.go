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


// Package prefs facilitates the storage of preferential values in the Orbital
// system. It is intended to be used for values that the user can change and
// that should be remembered between runs: the default number of workers, the
// preferred backend, the validator tolerance.
//
// Preferences are collected in a Disk instance. Each value is added with a key
// and the key/value pairs are stored in a plain text file, one per line:
//
//	engine.workers :: 8
//	validator.tolerance :: 0.080
//
// Saving a Disk does not clobber entries in the file that the Disk doesn't
// know about. More than one Disk can share a single file.
//
// Values can be overridden for the duration of a run with the command line
// stack. The stack is pushed with a string of key/value pairs separated by
// semi-colons:
//
//	prefs.PushCommandLineStack("engine.workers::4; engine.tile::8x8")
//
// A value on the stack is consumed the next time a Disk containing that key is
// loaded.
package prefs
