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
	"fmt"

	"nocturne/game"
)

// Hotspot is a clickable region of a scene.
type Hotspot struct {
	X      int
	Y      int
	W      int
	H      int
	Cursor int
}

// Contains returns true if the point is inside the hotspot.
func (h Hotspot) Contains(x, y int) bool {
	return x >= h.X && x < h.X+h.W && y >= h.Y && y < h.Y+h.H
}

// Scene is a single entry in the scene table. The background image is not
// loaded until the scene is drawn.
type Scene struct {
	Index      game.SceneIndex
	Background string
	Hotspots   []Hotspot
}

// CheckHotspot returns the hotspot under the given point, or false if the
// point is over none of the scene's hotspots.
func (s *Scene) CheckHotspot(x, y int) (Hotspot, bool) {
	for _, h := range s.Hotspots {
		if h.Contains(x, y) {
			return h, true
		}
	}
	return Hotspot{}, false
}

// String returns a readable dump of the scene record. Used by the debug
// console's show command.
func (s *Scene) String() string {
	return fmt.Sprintf("scene %d: background %s, %d hotspots", s.Index, s.Background, len(s.Hotspots))
}
