// This file is part of Nocturne.
//
// Nocturne is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nocturne is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nocturne.  If not, see <https://www.gnu.org/licenses/>.

// Package scenes maintains the scene table for the currently mounted
// archive volume. Each volume carries a data file describing the scenes
// whose assets live on that volume; the table is reloaded whenever a new
// volume is attached.
package scenes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nocturne/archive"
	"nocturne/curated"
	"nocturne/game"
	"nocturne/gui"
	"nocturne/logger"
)

// Sentinel error patterns for the scenes package.
const (
	UnknownScene = "scenes: cannot load scene %d from %s"
)

// Resources is the capability the scene manager requires of the archive
// resolver.
type Resources interface {
	Has(name string) bool
	Open(name string) (io.ReadSeeker, int, error)
}

// Manager owns the scene table for the mounted volume.
type Manager struct {
	res Resources

	vol     archive.Volume
	table   map[game.SceneIndex]*Scene
	opening map[int]game.SceneIndex
}

// NewManager is the preferred method of initialisation for the Manager type.
func NewManager(res Resources) *Manager {
	return &Manager{
		res:     res,
		table:   make(map[game.SceneIndex]*Scene),
		opening: make(map[int]game.SceneIndex),
	}
}

// LoadDataFile replaces the scene table with the one described by the named
// volume's data file. Implements the archive.DataLoader interface.
//
// The data file is a line-oriented listing:
//
//	scene <index> <background>
//	hotspot <x> <y> <w> <h> <cursor>
//	opening <chapter> <index>
//
// hotspot lines attach to the most recent scene line.
func (m *Manager) LoadDataFile(v archive.Volume) error {
	name := fmt.Sprintf("SCENES%d.DAT", int(v))

	r, _, err := m.res.Open(name)
	if err != nil {
		return curated.Errorf("scenes: %v", err)
	}

	table := make(map[game.SceneIndex]*Scene)
	opening := make(map[int]game.SceneIndex)

	var curr *Scene

	num := func(f string) int {
		n, _ := strconv.Atoi(f)
		return n
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) == 0 || strings.HasPrefix(f[0], "#") {
			continue
		}

		switch f[0] {
		case "scene":
			if len(f) != 3 {
				return curated.Errorf("scenes: %s: bad scene line", name)
			}
			curr = &Scene{
				Index:      game.SceneIndex(num(f[1])),
				Background: f[2],
			}
			table[curr.Index] = curr

		case "hotspot":
			if curr == nil || len(f) != 6 {
				return curated.Errorf("scenes: %s: bad hotspot line", name)
			}
			curr.Hotspots = append(curr.Hotspots, Hotspot{
				X: num(f[1]), Y: num(f[2]),
				W: num(f[3]), H: num(f[4]),
				Cursor: num(f[5]),
			})

		case "opening":
			if len(f) != 3 {
				return curated.Errorf("scenes: %s: bad opening line", name)
			}
			opening[num(f[1])] = game.SceneIndex(num(f[2]))

		default:
			return curated.Errorf("scenes: %s: unknown record (%s)", name, f[0])
		}
	}
	if err := sc.Err(); err != nil {
		return curated.Errorf("scenes: %v", err)
	}

	m.vol = v
	m.table = table
	m.opening = opening

	logger.Logf(logger.Allow, "scenes", "loaded %d scenes from %s", len(table), v)

	return nil
}

// Get the scene record for the index. Returns nil if the mounted volume has
// no such scene.
func (m *Manager) Get(idx game.SceneIndex) *Scene {
	return m.table[idx]
}

// OpeningScene returns the scene a chapter opens with. Chapters without an
// explicit opening record open with the lowest-numbered scene of the
// mounted volume's table, or scene zero for an empty table.
func (m *Manager) OpeningScene(chapter int) game.SceneIndex {
	if idx, ok := m.opening[chapter]; ok {
		return idx
	}

	first := game.SceneIndex(-1)
	for idx := range m.table {
		if first < 0 || idx < first {
			first = idx
		}
	}
	if first < 0 {
		first = 0
	}
	return first
}

// Draw the indexed scene's background onto the screen's background layer.
// The caller is responsible for the redraw request.
func (m *Manager) Draw(scr gui.Screen, idx game.SceneIndex) error {
	s := m.Get(idx)
	if s == nil {
		return curated.Errorf(UnknownScene, int(idx), m.vol)
	}

	r, _, err := m.res.Open(s.Background)
	if err != nil {
		return curated.Errorf("scenes: %v", err)
	}

	bg, err := LoadBackground(s.Background, r)
	if err != nil {
		return err
	}

	scr.Draw(bg, gui.LayerBackground, 0, 0)

	return nil
}
