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


package curated

// Setup failure categories. Backends wrap the cause of a failed setup in one
// of these patterns.
const (
	PlatformError   = "platform: %v"
	BuildError      = "build: %v"
	AllocationError = "allocation: %v"
)

// Exit codes for the setup failure categories.
const (
	ExitUnknown    = 1
	ExitPlatform   = 30
	ExitBuild      = 31
	ExitAllocation = 32
)

// ExitCode returns the process exit code for an error. A nil error returns
// zero and any error that doesn't carry a setup category returns ExitUnknown.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case Has(err, PlatformError):
		return ExitPlatform
	case Has(err, BuildError):
		return ExitBuild
	case Has(err, AllocationError):
		return ExitAllocation
	}
	return ExitUnknown
}
