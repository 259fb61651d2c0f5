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

// Package sdlscreen is the SDL implementation of the gui.Screen interface.
// It also satisfies userinput.Source, translating SDL events into userinput
// events.
package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"

	"nocturne/curated"
	"nocturne/gui"
	"nocturne/userinput"
)

const pitch = gui.Width * 4

// Screen is an SDL implementation of gui.Screen. Each gui.Layer is backed
// by a streaming texture; Redraw() composes the textures in layer order and
// presents the result.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	textures [gui.NumLayers]*sdl.Texture
	layers   [gui.NumLayers][]byte

	// whether the composition differs from the last presented frame
	dirty bool
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(title string) (*Screen, error) {
	scr := &Screen{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		gui.Width, gui.Height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	for i := range scr.textures {
		scr.textures[i], err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
			sdl.TEXTUREACCESS_STREAMING, gui.Width, gui.Height)
		if err != nil {
			return nil, curated.Errorf("sdlscreen: %v", err)
		}
		err = scr.textures[i].SetBlendMode(sdl.BLENDMODE_BLEND)
		if err != nil {
			return nil, curated.Errorf("sdlscreen: %v", err)
		}
		scr.layers[i] = make([]byte, gui.Height*pitch)
	}

	scr.dirty = true

	return scr, nil
}

// Destroy releases all SDL resources held by the screen.
func (scr *Screen) Destroy() {
	for i := range scr.textures {
		if scr.textures[i] != nil {
			scr.textures[i].Destroy()
		}
	}
	if scr.renderer != nil {
		scr.renderer.Destroy()
	}
	if scr.window != nil {
		scr.window.Destroy()
	}
	sdl.Quit()
}

// Clear implements the gui.Screen interface.
func (scr *Screen) Clear(l gui.Layer) {
	b := scr.layers[l]
	for i := range b {
		b[i] = 0
	}
	scr.dirty = true
}

// ClearAll implements the gui.Screen interface.
func (scr *Screen) ClearAll() {
	for l := range scr.layers {
		scr.Clear(gui.Layer(l))
	}
}

// Draw implements the gui.Screen interface.
func (scr *Screen) Draw(d gui.Drawable, l gui.Layer, x, y int) {
	w, h := d.Size()
	pix := d.Pixels()
	b := scr.layers[l]

	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= gui.Height {
			continue
		}
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= gui.Width {
				continue
			}
			s := (sy*w + sx) * 4
			if pix[s+3] == 0 {
				continue
			}
			t := dy*pitch + dx*4
			copy(b[t:t+4], pix[s:s+4])
		}
	}

	scr.dirty = true
}

// AskForRedraw implements the gui.Screen interface.
func (scr *Screen) AskForRedraw() {
	scr.dirty = true
}

// Redraw implements the gui.Screen interface.
func (scr *Screen) Redraw() error {
	if !scr.dirty {
		return nil
	}

	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}
	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	// compose layers in ascending order
	for i, t := range scr.textures {
		err = t.Update(nil, scr.layers[i], pitch)
		if err != nil {
			return curated.Errorf("sdlscreen: %v", err)
		}
		err = scr.renderer.Copy(t, nil, nil)
		if err != nil {
			return curated.Errorf("sdlscreen: %v", err)
		}
	}

	scr.renderer.Present()
	scr.dirty = false

	return nil
}

// ShowCursor implements the gui.Screen interface.
func (scr *Screen) ShowCursor(show bool) {
	if show {
		sdl.ShowCursor(sdl.ENABLE)
	} else {
		sdl.ShowCursor(sdl.DISABLE)
	}
}

// PollEvent implements the userinput.Source interface.
func (scr *Screen) PollEvent() (userinput.Event, bool) {
	for {
		sev := sdl.PollEvent()
		if sev == nil {
			return nil, false
		}

		switch sev := sev.(type) {
		case *sdl.QuitEvent:
			return userinput.EventQuit{}, true

		case *sdl.KeyboardEvent:
			return userinput.EventKeyboard{
				Key:  sdl.GetKeyName(sev.Keysym.Sym),
				Down: sev.Type == sdl.KEYDOWN,
			}, true

		case *sdl.MouseButtonEvent:
			var b userinput.MouseButton
			switch sev.Button {
			case sdl.BUTTON_LEFT:
				b = userinput.MouseButtonLeft
			case sdl.BUTTON_RIGHT:
				b = userinput.MouseButtonRight
			default:
				continue
			}
			return userinput.EventMouseButton{
				Button: b,
				Down:   sev.Type == sdl.MOUSEBUTTONDOWN,
				X:      int(sev.X),
				Y:      int(sev.Y),
			}, true

		case *sdl.MouseMotionEvent:
			return userinput.EventMouseMotion{
				X: int(sev.X),
				Y: int(sev.Y),
			}, true
		}
	}
}
