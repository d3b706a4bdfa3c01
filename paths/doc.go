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


// Package paths contains functions to prepare paths for Orbital resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required.
//
// If a directory named ".orbital" exists in the current working directory
// then that is used as the base path. Otherwise the base path is "orbital" in
// the user's configuration directory (os.UserConfigDir()).
package paths
