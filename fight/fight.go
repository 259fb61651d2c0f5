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

// Package fight implements the scripted fight sequences. A fight is a
// cooperative polling loop on the engine's one thread: each iteration
// advances the opponent's animation, redraws, and drains input, ending on
// the escape key or when one side prevails.
package fight

import (
	"fmt"
	"io"
	"time"

	"nocturne/archive"
	"nocturne/curated"
	"nocturne/gui"
	"nocturne/sequence"
	"nocturne/userinput"
)

// ID selects one of the fight variants.
type ID int

// List of valid fight IDs.
const (
	FightPorter   ID = 2001
	FightSmuggler ID = 2002
	FightBrakeman ID = 2003
	FightStoker   ID = 2004
	FightSaboteur ID = 2005
)

// IsValid returns true if the ID selects a real fight variant.
func (id ID) IsValid() bool {
	return id >= FightPorter && id <= FightSaboteur
}

// Volume returns the archive volume that owns the fight's assets.
func (id ID) Volume() archive.Volume {
	switch id {
	case FightSmuggler:
		return archive.Volume2
	case FightBrakeman, FightStoker, FightSaboteur:
		return archive.Volume3
	}
	return archive.Volume1
}

// strikes needed to win each fight variant
func (id ID) strikeTarget() int {
	switch id {
	case FightPorter:
		return 3
	case FightSmuggler:
		return 4
	}
	return 5
}

// Outcome of a fight.
type Outcome int

// List of Outcome values.
const (
	OutcomeWon Outcome = iota
	OutcomeLost
)

func (o Outcome) String() string {
	if o == OutcomeWon {
		return "won"
	}
	return "lost"
}

// Resources is the capability the fight requires of the archive resolver.
type Resources interface {
	Has(name string) bool
	Open(name string) (io.ReadSeeker, int, error)
}

// frame cadence of the fight loop
const frameDelay = 80 * time.Millisecond

// Fight stages and runs a scripted fight.
type Fight struct {
	scr gui.Screen
	src userinput.Source
	res Resources
}

// NewFight is the preferred method of initialisation for the Fight type.
func NewFight(scr gui.Screen, src userinput.Source, res Resources) *Fight {
	return &Fight{
		scr: scr,
		src: src,
		res: res,
	}
}

// Setup loads the fight's assets and runs the fight to its conclusion. The
// caller is responsible for mounting the volume returned by id.Volume()
// beforehand and for restoring the mount afterwards.
//
// The loop blocks the calling goroutine until the fight ends: a strike is
// landed with a left click, the fight is won when enough strikes land
// before the opponent's sequence is exhausted, and lost otherwise. Escape
// concedes.
func (f *Fight) Setup(id ID) (Outcome, error) {
	if !id.IsValid() {
		return OutcomeLost, curated.Errorf("fight: invalid fight id (%d)", int(id))
	}

	name := fmt.Sprintf("FIGHT%d.SEQ", int(id))
	r, _, err := f.res.Open(name)
	if err != nil {
		return OutcomeLost, err
	}

	seq, err := sequence.Load(name, r)
	if err != nil {
		return OutcomeLost, err
	}
	if seq.Count() == 0 {
		return OutcomeLost, curated.Errorf("fight: %s: empty sequence", name)
	}

	f.scr.ShowCursor(true)

	player := sequence.NewPlayer(seq)
	strikes := 0

	for {
		// advance opponent animation and redraw
		frm := player.Frame()
		f.scr.Clear(gui.LayerSprites)
		f.scr.Draw(frm, gui.LayerSprites, frm.X, frm.Y)
		f.scr.AskForRedraw()
		if err := f.scr.Redraw(); err != nil {
			return OutcomeLost, err
		}

		// drain pending input
		for {
			ev, ok := f.src.PollEvent()
			if !ok {
				break
			}

			switch ev := ev.(type) {
			case userinput.EventKeyboard:
				if ev.Down && ev.Key == "Escape" {
					return OutcomeLost, nil
				}
			case userinput.EventMouseButton:
				if ev.Down && ev.Button == userinput.MouseButtonLeft {
					strikes++
				}
			}
		}

		if strikes >= id.strikeTarget() {
			return OutcomeWon, nil
		}

		if !player.NextFrame() {
			return OutcomeLost, nil
		}

		time.Sleep(frameDelay)
	}
}
