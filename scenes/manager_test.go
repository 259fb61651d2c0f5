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

package scenes_test

import (
	"io"
	"strings"
	"testing"

	"nocturne/archive"
	"nocturne/scenes"
	"nocturne/test"
)

// stringResources serves named assets from in-memory strings.
type stringResources map[string]string

func (sr stringResources) Has(name string) bool {
	_, ok := sr[name]
	return ok
}

func (sr stringResources) Open(name string) (io.ReadSeeker, int, error) {
	s, ok := sr[name]
	if !ok {
		return nil, 0, io.ErrUnexpectedEOF
	}
	return strings.NewReader(s), len(s), nil
}

func TestLoadDataFile(t *testing.T) {
	res := stringResources{
		"SCENES1.DAT": `# volume one scene table
scene 1 STATION.BG
hotspot 10 20 100 50 2
hotspot 200 100 40 40 3
scene 2 PLATFORM.BG
opening 1 2
`,
	}

	m := scenes.NewManager(res)
	err := m.LoadDataFile(archive.Volume1)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	s := m.Get(1)
	if s == nil {
		t.Fatal("expected scene 1")
	}
	test.Equate(t, s.Background, "STATION.BG")
	test.Equate(t, len(s.Hotspots), 2)

	test.Equate(t, m.Get(99) == nil, true)

	// opening record for chapter 1
	test.Equate(t, int(m.OpeningScene(1)), 2)

	// chapters without an opening record fall back to the lowest index
	test.Equate(t, int(m.OpeningScene(3)), 1)
}

func TestLoadDataFileBadRecord(t *testing.T) {
	res := stringResources{
		"SCENES1.DAT": "nonsense 1 2 3\n",
	}

	m := scenes.NewManager(res)
	err := m.LoadDataFile(archive.Volume1)
	test.ExpectedFailure(t, err)
}

func TestLoadDataFileOrphanHotspot(t *testing.T) {
	res := stringResources{
		"SCENES1.DAT": "hotspot 1 2 3 4 5\n",
	}

	m := scenes.NewManager(res)
	err := m.LoadDataFile(archive.Volume1)
	test.ExpectedFailure(t, err)
}

func TestCheckHotspot(t *testing.T) {
	res := stringResources{
		"SCENES1.DAT": "scene 1 STATION.BG\nhotspot 10 20 100 50 2\n",
	}

	m := scenes.NewManager(res)
	err := m.LoadDataFile(archive.Volume1)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	s := m.Get(1)

	h, ok := s.CheckHotspot(10, 20)
	test.Equate(t, ok, true)
	test.Equate(t, h.Cursor, 2)

	// bounds are half-open
	_, ok = s.CheckHotspot(110, 20)
	test.Equate(t, ok, false)

	_, ok = s.CheckHotspot(0, 0)
	test.Equate(t, ok, false)
}
