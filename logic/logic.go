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

// Package logic implements chapter transitions. The game progresses
// through chapters by advancing the progression state, remounting the new
// chapter's default archive volume, and opening the chapter's first scene.
package logic

import (
	"nocturne/archive"
	"nocturne/game"
	"nocturne/logger"
	"nocturne/scenes"
)

// Logic drives game progression.
type Logic struct {
	state *game.State
	ctx   *archive.Context
	scn   *scenes.Manager
}

// NewLogic is the preferred method of initialisation for the Logic type.
func NewLogic(state *game.State, ctx *archive.Context, scn *scenes.Manager) *Logic {
	return &Logic{
		state: state,
		ctx:   ctx,
		scn:   scn,
	}
}

// SwitchChapter advances progression to the next chapter: the chapter
// counter is incremented, the chapter's default volume is mounted (which
// reloads scene data) and the chapter's opening scene becomes current.
func (l *Logic) SwitchChapter() error {
	l.state.Progress.Chapter++
	if l.state.Progress.Chapter > game.NumChapters {
		l.state.Progress.Chapter = game.NumChapters
	}

	if err := l.ctx.Restore(); err != nil {
		return err
	}

	l.state.Scene = l.scn.OpeningScene(l.state.Progress.Chapter)

	logger.Logf(logger.Allow, "logic", "switched to chapter %d (scene %d)",
		l.state.Progress.Chapter, l.state.Scene)

	return nil
}
