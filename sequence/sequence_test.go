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

package sequence_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"nocturne/curated"
	"nocturne/sequence"
	"nocturne/test"
)

// asset builds a sequence container with the given frame headers. every
// frame is 2x2 pixels.
func asset(frames ...[2]int16) []byte {
	b := &bytes.Buffer{}
	binary.Write(b, binary.LittleEndian, uint16(len(frames)))
	for _, f := range frames {
		binary.Write(b, binary.LittleEndian, uint16(2))
		binary.Write(b, binary.LittleEndian, uint16(2))
		binary.Write(b, binary.LittleEndian, f[0])
		binary.Write(b, binary.LittleEndian, f[1])
		b.Write(make([]byte, 2*2*4))
	}
	return b.Bytes()
}

func TestLoad(t *testing.T) {
	seq, err := sequence.Load("GIRL.SEQ", bytes.NewReader(asset([2]int16{10, 20}, [2]int16{-5, 0})))
	if !test.ExpectedSuccess(t, err) {
		return
	}

	test.Equate(t, seq.Name(), "GIRL.SEQ")
	test.Equate(t, seq.Count(), 2)

	f, err := seq.Frame(0)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	test.Equate(t, f.X, 10)
	test.Equate(t, f.Y, 20)

	w, h := f.Size()
	test.Equate(t, w, 2)
	test.Equate(t, h, 2)
	test.Equate(t, len(f.Pixels()), 2*2*4)

	// negative coordinates survive the int16 decode
	f, err = seq.Frame(1)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	test.Equate(t, f.X, -5)
}

func TestFrameOutOfRange(t *testing.T) {
	seq, err := sequence.Load("GIRL.SEQ", bytes.NewReader(asset([2]int16{0, 0})))
	if !test.ExpectedSuccess(t, err) {
		return
	}

	_, err = seq.Frame(1)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, sequence.InvalidFrame), true)

	_, err = seq.Frame(-1)
	test.ExpectedFailure(t, err)
}

func TestLoadTruncated(t *testing.T) {
	a := asset([2]int16{0, 0})
	_, err := sequence.Load("GIRL.SEQ", bytes.NewReader(a[:len(a)-4]))
	test.ExpectedFailure(t, err)
}

func TestPlayer(t *testing.T) {
	seq, err := sequence.Load("GIRL.SEQ", bytes.NewReader(asset([2]int16{0, 0}, [2]int16{1, 1}, [2]int16{2, 2})))
	if !test.ExpectedSuccess(t, err) {
		return
	}

	p := sequence.NewPlayer(seq)

	test.Equate(t, p.Frame().X, 0)
	test.Equate(t, p.NextFrame(), true)
	test.Equate(t, p.Frame().X, 1)
	test.Equate(t, p.NextFrame(), true)
	test.Equate(t, p.Frame().X, 2)

	// the player stops on the last frame
	test.Equate(t, p.NextFrame(), false)
	test.Equate(t, p.Frame().X, 2)
}
