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


package orchestrator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/orbital/orchestrator"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/prefs"
	"github.com/jetsetilly/orbital/test"
)

func TestPreferencesFirstUse(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := orchestrator.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Backend.String(), "workerpool")
	test.ExpectEquality(t, p.Workers.Get().(int), 0)
	test.ExpectEquality(t, p.TileSize(), partition.Tile{Width: 16, Height: 16})
	test.ExpectApproximate(t, p.Tolerance.Get().(float64), 0.08, 0.0001)
	test.ExpectEquality(t, p.Pause.Get().(bool), false)

	// file is created on first use
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(data), "engine.backend :: workerpool\n"))
}

func TestPreferencesSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := orchestrator.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Backend.Set("dispatch"))
	test.DemandSuccess(t, p.Tile.Set("8x4"))
	test.DemandSuccess(t, p.Save())

	q, err := orchestrator.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Backend.String(), "dispatch")
	test.ExpectEquality(t, q.TileSize(), partition.Tile{Width: 8, Height: 4})
}

func TestPreferencesValidation(t *testing.T) {
	p, err := orchestrator.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Backend.Set("gpu"))
	test.ExpectEquality(t, p.Backend.String(), "workerpool")

	test.ExpectFailure(t, p.Tile.Set("0x8"))
	test.ExpectEquality(t, p.Tile.String(), "16x16")

	test.ExpectFailure(t, p.Workers.Set(-1))
	test.ExpectFailure(t, p.Tolerance.Set(-0.5))
}

func TestPreferencesCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("engine.workers::8; validator.pause::true")
	p, err := orchestrator.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.Workers.Get().(int), 8)
	test.ExpectEquality(t, p.Pause.Get().(bool), true)

	// command line values are not written to disk unless saved
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "engine.workers :: 0\n"))
}
