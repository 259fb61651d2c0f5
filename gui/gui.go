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

// Package gui defines the narrow drawing capability the engine and the
// debug console require of a platform layer. The sdlscreen sub-package is
// the real implementation; tests use a stub.
package gui

// Width and Height of the game's display in pixels.
const (
	Width  = 640
	Height = 480
)

// Layer identifies one of the screen's compositing layers. Layers are
// composed in ascending order, so the overlay layer obscures the other two.
type Layer int

// List of valid Layer values.
const (
	LayerBackground Layer = iota // scene and background art
	LayerSprites                 // animation sequence frames
	LayerOverlay                 // debug visualisations
	numLayers
)

// NumLayers is the number of compositing layers.
const NumLayers = int(numLayers)

// Drawable is an image that can be drawn onto a screen layer.
type Drawable interface {
	// Size in pixels.
	Size() (w, h int)

	// Pixels in RGBA order, w*h*4 bytes. A zero alpha value leaves the
	// layer's existing pixel untouched.
	Pixels() []byte
}

// Screen is the capability interface the engine draws through.
//
// AskForRedraw() marks the composition dirty; Redraw() composes the layers
// and presents the frame only if the composition is dirty. The split mirrors
// how the engine batches drawing: several Draw() calls, one present.
type Screen interface {
	// Clear a single layer.
	Clear(Layer)

	// Clear every layer.
	ClearAll()

	// Draw the drawable onto the specified layer at the given position.
	Draw(d Drawable, l Layer, x, y int)

	// Mark the composition as dirty.
	AskForRedraw()

	// Compose the layers and present the frame if the composition is dirty.
	Redraw() error

	// Show or hide the mouse cursor.
	ShowCursor(bool)
}
