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

// Package game holds the mutable game session: scene, chapter progression,
// inventory and the time model. The Snapshot type captures the subset of
// fields the debug console's scripted sequences overwrite.
package game

import (
	"fmt"
	"strings"
)

// SceneIndex identifies an entry in the scene table.
type SceneIndex int

// MaxSceneIndex is the largest valid scene index.
const MaxSceneIndex = 2500

// NumChapters in the game.
const NumChapters = 5

// game time units. 900 units to the minute, 54000 to the hour.
const (
	timePerMinute = 900
	timePerHour   = 60 * timePerMinute
	timePerDay    = 24 * timePerHour
)

// State is the mutable game session.
type State struct {
	Scene SceneIndex

	// game time and the amount it advances each simulation tick
	Time      uint
	TimeDelta uint

	Progress  Progress
	Inventory Inventory

	// coordinates of the last mouse press. some sub-games read these back
	CoordX int
	CoordY int
}

// Progress is the coarse progression of the narrative.
type Progress struct {
	Chapter int
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	s := &State{
		TimeDelta: 1,
	}
	s.Progress.Chapter = 1
	s.Inventory.reset()
	return s
}

// CurrentChapter implements the archive.Progression interface.
func (s *State) CurrentChapter() int {
	return s.Progress.Chapter
}

// SetCoordinates records the position of the last mouse press.
func (s *State) SetCoordinates(x, y int) {
	s.CoordX = x
	s.CoordY = y
}

// HourMinutes converts a game time value to wall-clock hours and minutes.
func HourMinutes(time uint) (hours, minutes uint) {
	hours = (time % timePerDay) / timePerHour
	minutes = (time % timePerHour) / timePerMinute
	return hours, minutes
}

// String returns a readable dump of the game state. Used by the debug
// console's show command.
func (s *State) String() string {
	b := strings.Builder{}
	h, m := HourMinutes(s.Time)
	b.WriteString(fmt.Sprintf("scene: %d\n", s.Scene))
	b.WriteString(fmt.Sprintf("time: %d (%02d:%02d)\n", s.Time, h, m))
	b.WriteString(fmt.Sprintf("time delta: %d\n", s.TimeDelta))
	b.WriteString(fmt.Sprintf("chapter: %d\n", s.Progress.Chapter))
	return b.String()
}
