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

// Package userinput conceptualises input from the player. Events originate
// in the platform layer (see gui/sdlscreen) and are consumed by the engine
// loop and by the debug console's interactive sub-loops.
package userinput

// Event is the interface implemented by all userinput event types.
type Event interface {
	isEvent()
}

// MouseButton identifies the mouse button in a EventMouseButton event.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// EventKeyboard is a key press or release.
type EventKeyboard struct {
	// Key is the name of the key, eg. "Escape", "F12", "A"
	Key  string
	Down bool
}

// EventMouseButton is a mouse button press or release.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X      int
	Y      int
}

// EventMouseMotion is the mouse moving over the game window.
type EventMouseMotion struct {
	X int
	Y int
}

// EventQuit is a request to end the session, eg. the window close button.
type EventQuit struct{}

func (EventKeyboard) isEvent()    {}
func (EventMouseButton) isEvent() {}
func (EventMouseMotion) isEvent() {}
func (EventQuit) isEvent()        {}

// Source implementations produce userinput events. PollEvent returns false
// when no event is waiting; it never blocks.
type Source interface {
	PollEvent() (Event, bool)
}

// Drain discards all pending events from the source.
func Drain(src Source) {
	for {
		if _, ok := src.PollEvent(); !ok {
			return
		}
	}
}
