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

package archive

import "nocturne/curated"

// Attacher is the capability the Context needs from the volume resolver.
// The Resolver type satisfies it.
type Attacher interface {
	Attach(Volume) error
	Current() Volume
}

// DataLoader implementations reload whatever chapter-scoped metadata is tied
// to a volume. The scenes package satisfies it; the scene table must be
// reloaded whenever a new volume is attached.
type DataLoader interface {
	LoadDataFile(Volume) error
}

// Progression implementations report the chapter the game is currently in.
type Progression interface {
	CurrentChapter() int
}

// Context tracks which volume is mounted and can mount/restore volumes by a
// chapter-derived default or an explicit override.
//
// Restore() is policy-based, not snapshot-based: it remounts the default
// volume for the chapter the game is in *now*, not the volume that happened
// to be mounted before an override. The two are different whenever the
// chapter changes while an override is mounted.
type Context struct {
	vols Attacher
	data DataLoader
	prog Progression
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(vols Attacher, data DataLoader, prog Progression) *Context {
	return &Context{
		vols: vols,
		data: data,
		prog: prog,
	}
}

// Mount attaches the specified volume and reloads the chapter-scoped scene
// data tied to it. Fails if the volume index is out of range or if the
// container cannot be opened, in which case the previous mount is untouched.
func (ctx *Context) Mount(v Volume) error {
	if !v.IsValid() {
		return curated.Errorf(InvalidVolume, int(v))
	}

	if err := ctx.vols.Attach(v); err != nil {
		return err
	}

	return ctx.data.LoadDataFile(v)
}

// Current returns the volume that is currently mounted.
func (ctx *Context) Current() Volume {
	return ctx.vols.Current()
}

// Restore remounts the default volume for the current chapter. Commands that
// mount an override must arrange for Restore to run on every exit path.
func (ctx *Context) Restore() error {
	return ctx.Mount(DefaultVolume(ctx.prog.CurrentChapter()))
}
