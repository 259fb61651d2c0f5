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

package game

// Snapshot captures the subset of session fields that a scripted debug
// sequence overwrites to stage itself: the current scene, the location of
// one inventory item, and the chapter.
//
// Unlike the archive mount, restoration is literal. The captured values are
// written back verbatim whatever happened in between.
type Snapshot struct {
	scene    SceneIndex
	item     Item
	location ObjectLocation
	chapter  int
}

// Capture the current values of the bracketed fields. The item argument
// selects which inventory item's location is part of the snapshot.
func Capture(s *State, item Item) Snapshot {
	return Snapshot{
		scene:    s.Scene,
		item:     item,
		location: s.Inventory.Get(item).Location,
		chapter:  s.Progress.Chapter,
	}
}

// Restore writes the captured values back. Callers should arrange for this
// to run unconditionally, typically with defer immediately after Capture.
func (sn Snapshot) Restore(s *State) {
	s.Scene = sn.scene
	s.Inventory.Get(sn.item).Location = sn.location
	s.Progress.Chapter = sn.chapter
}

// Scene returns the captured scene index. Sequences redraw the captured
// scene once they have unwound.
func (sn Snapshot) Scene() SceneIndex {
	return sn.scene
}
