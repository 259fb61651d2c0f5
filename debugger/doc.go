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

// Package debugger implements the Nocturne game console. Commands arrive
// through an implementation of the terminal.Terminal interface and act on the
// running game: listing and displaying archive resources, playing sequences
// and sounds, staging the fight and beetle mini-games, and poking at the
// game state.
//
// Commands that draw to the screen cannot run while the console has control
// of the goroutine. The frame they want to draw over has not been presented
// yet. Such commands run in two phases: the first invocation validates the
// arguments and stores the command, which also closes the console read loop;
// the host loop then presents the frame and calls Pump(), which invokes the
// stored command a second time to do the actual work. Command implementations
// distinguish the two phases with hasCommand().
//
// Several commands mount an archive volume other than the one implied by the
// current chapter. The override lasts no longer than the command: every exit
// path from the second phase restores the policy default volume.
package debugger
