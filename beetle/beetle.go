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

// Package beetle implements the beetle-catching mini-game. The beetle
// scurries across the scene along a path derived from its animation
// sequence; the player catches it by clicking close enough to its current
// position.
package beetle

import (
	"io"

	"nocturne/curated"
	"nocturne/game"
	"nocturne/gui"
	"nocturne/sequence"
)

// StagingScene is the scene the mini-game plays out in.
const StagingScene = game.SceneIndex(128)

// StagingLocation is the object location the beetle item is forced to
// while the mini-game is staged.
const StagingLocation = game.Location3

// how close a click must land to count as a catch, in pixels
const catchRadius = 10

// Resources is the capability the mini-game requires of the archive
// resolver.
type Resources interface {
	Has(name string) bool
	Open(name string) (io.ReadSeeker, int, error)
}

// Beetle is the mini-game object. Update() advances it one tick; the
// surrounding loop is owned by the caller.
type Beetle struct {
	state *game.State
	res   Resources

	seq    *sequence.Sequence
	player *sequence.Player
	loaded bool

	// current position, updated from the active frame each tick
	x int
	y int
}

// NewBeetle is the preferred method of initialisation for the Beetle type.
func NewBeetle(state *game.State, res Resources) *Beetle {
	return &Beetle{
		state: state,
		res:   res,
	}
}

// IsLoaded returns true if the mini-game's assets have been loaded.
func (b *Beetle) IsLoaded() bool {
	return b.loaded
}

// Load the mini-game's assets. The beetle's assets live on the volume
// owning chapter two; the caller mounts it beforehand.
func (b *Beetle) Load() error {
	r, _, err := b.res.Open("BEETLE.SEQ")
	if err != nil {
		return err
	}

	b.seq, err = sequence.Load("BEETLE.SEQ", r)
	if err != nil {
		return err
	}
	if b.seq.Count() == 0 {
		return curated.Errorf("beetle: empty sequence")
	}

	b.player = sequence.NewPlayer(b.seq)
	b.loaded = true

	return nil
}

// Unload releases the mini-game's assets.
func (b *Beetle) Unload() {
	b.seq = nil
	b.player = nil
	b.loaded = false
}

// Update advances the beetle one tick and draws it onto the sprite layer.
func (b *Beetle) Update(scr gui.Screen) {
	if !b.loaded {
		return
	}

	frm := b.player.Frame()
	b.x = frm.X
	b.y = frm.Y

	scr.Clear(gui.LayerSprites)
	scr.Draw(frm, gui.LayerSprites, frm.X, frm.Y)

	// the path loops
	if !b.player.NextFrame() {
		b.player = sequence.NewPlayer(b.seq)
	}
}

// CatchBeetle returns true if the last recorded mouse press (see
// game.State.SetCoordinates) landed close enough to the beetle.
func (b *Beetle) CatchBeetle() bool {
	if !b.loaded {
		return false
	}

	dx := b.state.CoordX - b.x
	dy := b.state.CoordY - b.y
	return dx*dx+dy*dy <= catchRadius*catchRadius
}
