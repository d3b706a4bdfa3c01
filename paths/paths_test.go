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


package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/orbital/paths"
	"github.com/jetsetilly/orbital/test"
)

func TestResourcePath(t *testing.T) {
	// the local resource directory takes priority
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".orbital", 0o700))

	pth, err := paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".orbital", "preferences"))

	pth, err = paths.ResourcePath("profiles", "cpu.profile")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".orbital", "profiles", "cpu.profile"))

	// subdirectory has been created
	fi, err := os.Stat(filepath.Join(".orbital", "profiles"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())
}
