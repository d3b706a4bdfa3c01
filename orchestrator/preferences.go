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


package orchestrator

import (
	"fmt"
	"slices"

	"github.com/jetsetilly/orbital/backend"
	"github.com/jetsetilly/orbital/partition"
	"github.com/jetsetilly/orbital/prefs"
	"github.com/jetsetilly/orbital/specification"
)

// Preferences for the simulation. Values are stored on disk and can be
// overridden by the command line stack of the prefs package.
type Preferences struct {
	dsk *prefs.Disk

	// number of workers used by the workerpool backend. zero means one worker
	// for every CPU
	Workers prefs.Int

	// name of the backend. one of the values in backend.List
	Backend prefs.String

	// work-group size used by the dispatch backend
	Tile prefs.String

	// largest difference allowed between a parallel and a reference pixel
	// channel
	Tolerance prefs.Float

	// wait for a key press after a pixel mismatch
	Pause prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the file at path. The file is
// created if it does not exist.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Workers.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("workers cannot be negative")
		}
		return nil
	})
	p.Backend.SetHookPre(func(v prefs.Value) error {
		if !slices.Contains(backend.List, v.(string)) {
			return fmt.Errorf("unknown backend %q", v)
		}
		return nil
	})
	p.Tile.SetHookPre(func(v prefs.Value) error {
		_, err := partition.ParseTile(v.(string))
		return err
	})
	p.Tolerance.SetHookPre(func(v prefs.Value) error {
		if v.(float64) < 0 {
			return fmt.Errorf("tolerance cannot be negative")
		}
		return nil
	})

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("engine.workers", &p.Workers)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("engine.backend", &p.Backend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("engine.tile", &p.Tile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("validator.tolerance", &p.Tolerance)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("validator.pause", &p.Pause)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	spec := specification.Default()
	p.Workers.Set(0)
	p.Backend.Set(backend.List[0])
	p.Tile.Set("16x16")
	p.Tolerance.Set(float64(spec.Tolerance))
	p.Pause.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// TileSize returns the Tile preference as a partition.Tile.
func (p *Preferences) TileSize() partition.Tile {
	t, err := partition.ParseTile(p.Tile.String())
	if err != nil {
		return partition.Tile{Width: 16, Height: 16}
	}
	return t
}
