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


// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern:
//
//	e := curated.Errorf(curated.BuildError, "missing kernel")
//
//	if curated.Is(e, curated.BuildError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("dispatch: %v", e)
//
//	if curated.Has(f, curated.BuildError) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, curated errors are expected errors and
// uncurated errors are unexpected.
//
// Error() normalises the message chain by removing adjacent duplicate parts.
// For example:
//
//	e := curated.Errorf("dispatch: %v", "dispatch: no platform")
//
// prints as "dispatch: no platform".
//
// The patterns in this package are the setup failures that stop the program.
// ExitCode() maps an error to the process exit code for its category.
package curated
