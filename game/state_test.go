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

package game_test

import (
	"testing"

	"nocturne/game"
	"nocturne/test"
)

func TestNewState(t *testing.T) {
	s := game.NewState()

	test.Equate(t, s.CurrentChapter(), 1)
	test.Equate(t, s.TimeDelta, uint(1))
	test.Equate(t, int(s.Scene), 0)
}

func TestHourMinutes(t *testing.T) {
	h, m := game.HourMinutes(0)
	test.Equate(t, h, uint(0))
	test.Equate(t, m, uint(0))

	// 900 units to the minute
	h, m = game.HourMinutes(5400)
	test.Equate(t, h, uint(0))
	test.Equate(t, m, uint(6))

	h, m = game.HourMinutes(54000)
	test.Equate(t, h, uint(1))
	test.Equate(t, m, uint(0))

	// wraps at the day boundary
	h, m = game.HourMinutes(24*54000 + 900)
	test.Equate(t, h, uint(0))
	test.Equate(t, m, uint(1))
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := game.NewState()
	s.Scene = 42
	s.Progress.Chapter = 4
	s.Inventory.Get(game.ItemBeetle).Location = game.Location2

	sn := game.Capture(s, game.ItemBeetle)
	test.Equate(t, int(sn.Scene()), 42)

	// mutate everything the snapshot covers, and some things it doesn't
	s.Scene = 128
	s.Progress.Chapter = 2
	s.Inventory.Get(game.ItemBeetle).Location = game.Location3
	s.Inventory.Get(game.ItemKey).Owned = true
	s.Time = 1000

	sn.Restore(s)

	test.Equate(t, int(s.Scene), 42)
	test.Equate(t, s.Progress.Chapter, 4)
	test.Equate(t, int(s.Inventory.Get(game.ItemBeetle).Location), int(game.Location2))

	// fields outside the snapshot are untouched
	test.Equate(t, s.Inventory.Get(game.ItemKey).Owned, true)
	test.Equate(t, s.Time, uint(1000))
}

func TestInventoryOutOfRange(t *testing.T) {
	s := game.NewState()

	// out of range items resolve to the none entry rather than panicking
	e := s.Inventory.Get(game.Item(-1))
	test.Equate(t, int(e.Item), int(game.ItemNone))

	e = s.Inventory.Get(game.Item(100))
	test.Equate(t, int(e.Item), int(game.ItemNone))
}
