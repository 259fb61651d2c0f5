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

package main

import (
	"time"

	"nocturne/archive"
	"nocturne/curated"
	"nocturne/debugger"
	"nocturne/debugger/terminal"
	"nocturne/debugger/terminal/colorterm"
	"nocturne/debugger/terminal/plainterm"
	"nocturne/game"
	"nocturne/gui/sdlaudio"
	"nocturne/gui/sdlscreen"
	"nocturne/logger"
	"nocturne/userinput"
	"nocturne/version"
)

// the key that opens the debug console.
const consoleKey = "F12"

// approximately 60 frames per second.
const frameDelay = 16 * time.Millisecond

// run the engine loop until the player quits. the loop polls the platform
// layer for input, ticks game time, presents the frame and then runs the
// second phase of any command the debug console has left pending. presenting
// before pumping means a deferred command always begins against an up to
// date frame.
func run(dataDir string, termType string) error {
	var term terminal.Terminal

	switch termType {
	case "color":
		term = &colorterm.ColorTerminal{}
	case "plain":
		term = &plainterm.PlainTerminal{}
	default:
		return curated.Errorf("unsupported terminal type: %s", termType)
	}

	scr, err := sdlscreen.NewScreen(version.ApplicationName)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	aud := sdlaudio.NewAudio()
	defer aud.Close()

	res := archive.NewResolver(dataDir)
	defer res.Close()

	state := game.NewState()

	dbg, err := debugger.NewDebugger(term, scr, scr, res, state, aud)
	if err != nil {
		return err
	}
	defer dbg.CleanUp()

	// mount the volume for the opening chapter and draw its opening scene
	if err := dbg.Context().Mount(archive.DefaultVolume(state.CurrentChapter())); err != nil {
		return err
	}
	state.Scene = dbg.Scenes().OpeningScene(state.CurrentChapter())
	if err := dbg.Scenes().Draw(scr, state.Scene); err != nil {
		return err
	}
	scr.AskForRedraw()

	done := false
	for !done {
		for ev, ok := scr.PollEvent(); ok; ev, ok = scr.PollEvent() {
			switch ev := ev.(type) {
			case userinput.EventQuit:
				done = true

			case userinput.EventKeyboard:
				if ev.Down && ev.Key == consoleKey {
					err := dbg.Console()
					if err != nil {
						if curated.Is(err, terminal.UserQuit) {
							done = true
							break
						}
						return err
					}
				}

			case userinput.EventMouseButton:
				if ev.Down && ev.Button == userinput.MouseButtonLeft {
					state.SetCoordinates(ev.X, ev.Y)
					if s := dbg.Scenes().Get(state.Scene); s != nil {
						if h, ok := s.CheckHotspot(ev.X, ev.Y); ok {
							logger.Logf(logger.Allow, "engine", "hotspot %d,%d (cursor %d)", h.X, h.Y, h.Cursor)
						}
					}
				}

			case userinput.EventMouseMotion:
				state.SetCoordinates(ev.X, ev.Y)
			}
		}

		state.Time += state.TimeDelta

		if err := scr.Redraw(); err != nil {
			return err
		}

		if dbg.CommandPending() {
			dbg.Pump()
		}

		time.Sleep(frameDelay)
	}

	return nil
}
