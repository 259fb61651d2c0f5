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

// Package sequence decodes animation sequence assets. A sequence is an
// ordered series of positioned frames; the Player type steps through them
// at the playback cadence decided by the caller.
package sequence

import (
	"encoding/binary"
	"io"

	"nocturne/curated"
)

// Sentinel error patterns for the sequence package.
const (
	InvalidFrame = "sequence: %s: invalid frame index (%d)"
)

// Frame is one frame of a sequence. Implements the gui.Drawable interface.
type Frame struct {
	width  int
	height int

	// position of the frame on screen
	X int
	Y int

	pix []byte
}

// Size implements the gui.Drawable interface.
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Pixels implements the gui.Drawable interface.
func (f *Frame) Pixels() []byte {
	return f.pix
}

// Sequence is a decoded animation sequence asset.
//
// The container is a uint16 frame count followed by the frame records. A
// frame record is four little-endian uint16/int16 values (width, height,
// x, y) followed by width*height*4 bytes of RGBA data.
type Sequence struct {
	name   string
	frames []*Frame
}

// Load a sequence asset from the ReadSeeker.
func Load(name string, r io.ReadSeeker) (*Sequence, error) {
	seq := &Sequence{name: name}

	var count uint16
	err := binary.Read(r, binary.LittleEndian, &count)
	if err != nil {
		return nil, curated.Errorf("sequence: %s: %v", name, err)
	}

	for i := 0; i < int(count); i++ {
		var hdr struct {
			Width  uint16
			Height uint16
			X      int16
			Y      int16
		}
		err = binary.Read(r, binary.LittleEndian, &hdr)
		if err != nil {
			return nil, curated.Errorf("sequence: %s: %v", name, err)
		}

		f := &Frame{
			width:  int(hdr.Width),
			height: int(hdr.Height),
			X:      int(hdr.X),
			Y:      int(hdr.Y),
		}
		f.pix = make([]byte, f.width*f.height*4)
		_, err = io.ReadFull(r, f.pix)
		if err != nil {
			return nil, curated.Errorf("sequence: %s: %v", name, err)
		}

		seq.frames = append(seq.frames, f)
	}

	return seq, nil
}

// Name of the asset the sequence was loaded from.
func (seq *Sequence) Name() string {
	return seq.name
}

// Count returns the number of frames in the sequence.
func (seq *Sequence) Count() int {
	return len(seq.frames)
}

// Frame returns the indexed frame.
func (seq *Sequence) Frame(idx int) (*Frame, error) {
	if idx < 0 || idx >= len(seq.frames) {
		return nil, curated.Errorf(InvalidFrame, seq.name, idx)
	}
	return seq.frames[idx], nil
}

// Player steps through a sequence's frames in order.
type Player struct {
	seq  *Sequence
	curr int
}

// NewPlayer is the preferred method of initialisation for the Player type.
func NewPlayer(seq *Sequence) *Player {
	return &Player{seq: seq}
}

// Frame returns the player's current frame.
func (p *Player) Frame() *Frame {
	f, _ := p.seq.Frame(p.curr)
	return f
}

// NextFrame advances the player. Returns false once the sequence is
// exhausted.
func (p *Player) NextFrame() bool {
	if p.curr+1 >= p.seq.Count() {
		return false
	}
	p.curr++
	return true
}
