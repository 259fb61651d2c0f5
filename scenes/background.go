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

package scenes

import (
	"encoding/binary"
	"io"

	"nocturne/curated"
)

// Background is a full-screen image asset. Implements the gui.Drawable
// interface.
//
// The container is a 8 byte header (width and height as little-endian
// uint32) followed by width*height*4 bytes of RGBA data.
type Background struct {
	width  int
	height int
	pix    []byte
}

// LoadBackground reads a background asset from the ReadSeeker.
func LoadBackground(name string, r io.ReadSeeker) (*Background, error) {
	var hdr struct {
		Width  uint32
		Height uint32
	}

	err := binary.Read(r, binary.LittleEndian, &hdr)
	if err != nil {
		return nil, curated.Errorf("background: %s: %v", name, err)
	}

	bg := &Background{
		width:  int(hdr.Width),
		height: int(hdr.Height),
	}

	bg.pix = make([]byte, bg.width*bg.height*4)
	_, err = io.ReadFull(r, bg.pix)
	if err != nil {
		return nil, curated.Errorf("background: %s: %v", name, err)
	}

	return bg, nil
}

// Size implements the gui.Drawable interface.
func (bg *Background) Size() (int, int) {
	return bg.width, bg.height
}

// Pixels implements the gui.Drawable interface.
func (bg *Background) Pixels() []byte {
	return bg.pix
}
