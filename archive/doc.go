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

// Package archive implements multi-volume archive resolution. The game's
// assets are split over three volume containers and exactly one container
// is attached to the Resolver at any time. Attaching a volume invalidates
// the previous volume's directory listing entirely.
//
// The Context type layers mount policy on top of the Resolver: each chapter
// of the game has a default volume (see DefaultVolume) and the Restore()
// function returns the mount to the default for whatever chapter the game
// is in at the time of the call. Code that mounts a volume override is
// responsible for calling Restore() on every exit path.
package archive
