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

package archive

import "fmt"

// Volume is an enumerated archive volume index. The game shipped on three
// volumes and exactly one of them is attached to the resolver at any time.
type Volume int

// List of valid Volume values.
const (
	VolumeNone Volume = iota
	Volume1
	Volume2
	Volume3
)

// NumVolumes is the number of volumes the game shipped on.
const NumVolumes = 3

func (v Volume) String() string {
	return fmt.Sprintf("volume %d", int(v))
}

// Filename of the container file for the volume.
func (v Volume) Filename() string {
	return fmt.Sprintf("VOL%d.DAT", int(v))
}

// IsValid returns true if the volume is in the mountable range.
func (v Volume) IsValid() bool {
	return v >= Volume1 && v <= Volume3
}

// DefaultVolume maps a chapter to the volume that owns the chapter's assets.
// It is a pure function, no I/O takes place.
//
// Unknown chapters map to Volume1, the same as chapter one.
func DefaultVolume(chapter int) Volume {
	switch chapter {
	case 2, 3:
		return Volume2
	case 4, 5:
		return Volume3
	}
	return Volume1
}
