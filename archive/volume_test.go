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

package archive_test

import (
	"testing"

	"nocturne/archive"
	"nocturne/test"
)

func TestDefaultVolume(t *testing.T) {
	test.Equate(t, int(archive.DefaultVolume(1)), int(archive.Volume1))
	test.Equate(t, int(archive.DefaultVolume(2)), int(archive.Volume2))
	test.Equate(t, int(archive.DefaultVolume(3)), int(archive.Volume2))
	test.Equate(t, int(archive.DefaultVolume(4)), int(archive.Volume3))
	test.Equate(t, int(archive.DefaultVolume(5)), int(archive.Volume3))

	// the mapping is total. chapters that don't exist fall back to the first
	// volume
	test.Equate(t, int(archive.DefaultVolume(0)), int(archive.Volume1))
	test.Equate(t, int(archive.DefaultVolume(-1)), int(archive.Volume1))
	test.Equate(t, int(archive.DefaultVolume(6)), int(archive.Volume1))
	test.Equate(t, int(archive.DefaultVolume(100)), int(archive.Volume1))
}

func TestVolumeValidity(t *testing.T) {
	test.ExpectedFailure(t, archive.VolumeNone.IsValid())
	test.ExpectedSuccess(t, archive.Volume1.IsValid())
	test.ExpectedSuccess(t, archive.Volume2.IsValid())
	test.ExpectedSuccess(t, archive.Volume3.IsValid())
	test.ExpectedFailure(t, archive.Volume(4).IsValid())
}

func TestVolumeFilename(t *testing.T) {
	test.Equate(t, archive.Volume1.Filename(), "VOL1.DAT")
	test.Equate(t, archive.Volume3.Filename(), "VOL3.DAT")
}
