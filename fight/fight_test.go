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

package fight_test

import (
	"testing"

	"nocturne/archive"
	"nocturne/fight"
	"nocturne/test"
)

func TestIDValidity(t *testing.T) {
	test.Equate(t, fight.ID(2000).IsValid(), false)
	test.Equate(t, fight.ID(2001).IsValid(), true)
	test.Equate(t, fight.ID(2005).IsValid(), true)
	test.Equate(t, fight.ID(2006).IsValid(), false)
	test.Equate(t, fight.ID(0).IsValid(), false)
}

func TestVolumeOwnership(t *testing.T) {
	test.Equate(t, int(fight.ID(2001).Volume()), int(archive.Volume1))
	test.Equate(t, int(fight.ID(2002).Volume()), int(archive.Volume2))
	test.Equate(t, int(fight.ID(2003).Volume()), int(archive.Volume3))
	test.Equate(t, int(fight.ID(2004).Volume()), int(archive.Volume3))
	test.Equate(t, int(fight.ID(2005).Volume()), int(archive.Volume3))
}

func TestOutcomeString(t *testing.T) {
	test.Equate(t, fight.OutcomeWon.String(), "won")
	test.Equate(t, fight.OutcomeLost.String(), "lost")
}
