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


package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not available on windows.
type Terminal struct {
}

// Initialise always fails on windows.
func (pt *Terminal) Initialise(inputFile *os.File, outputFile *os.File) error {
	return fmt.Errorf("easyterm: not available on windows")
}

// Print writes the formatted string to stdout.
func (pt *Terminal) Print(s string, a ...any) {
	fmt.Printf(s, a...)
}

// WaitForKey always fails on windows.
func (pt *Terminal) WaitForKey() error {
	return fmt.Errorf("easyterm: not available on windows")
}
