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

package debugger

import (
	"bytes"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"nocturne/archive"
	"nocturne/beetle"
	"nocturne/debugger/terminal"
	"nocturne/fight"
	"nocturne/game"
	"nocturne/gui"
	"nocturne/scenes"
	"nocturne/sequence"
	"nocturne/userinput"

	"github.com/bradleyjkemp/memviz"
)

// pauses used by commands that put something on the screen. long enough for
// the result to register before the game's own drawing resumes.
const (
	resultPause   = 500 * time.Millisecond
	playbackDelay = 175 * time.Millisecond
	beetlePoll    = 10 * time.Millisecond
)

// command usage strings. printed in response to arguments that cannot be
// understood.
const (
	usageListFiles   = "syntax: ls <filter> (use * for all) (<volume number>)"
	usageDumpFiles   = "syntax: dump"
	usageShowFrame   = "syntax: showframe <seqname> <index> (<volume number>)"
	usageShowBg      = "syntax: showbg <bgname> (<volume number>)"
	usagePlaySeq     = "syntax: playseq <seqname> (<volume number>)"
	usagePlaySnd     = "syntax: playsnd <sndname> (<volume number>)"
	usageLoadScene   = "syntax: loadscene <scene index> (<volume number>)"
	usageFight       = "syntax: fight <id> (id=2001-2005)"
	usageBeetle      = "syntax: beetle"
	usageChapter     = "syntax: chapter <id> (id=2-6)"
	usageTimeDelta   = "syntax: delta <time delta> (delta=1-500)"
	usageTime        = "syntax: time <time to convert> (time=0 or above)"
	usageShow        = "syntax: show <state|progress|inventory>"
	usageViz         = "syntax: viz <filename>"
	usageClear       = "syntax: clear - clear the screen"
	usageHelp        = "syntax: help"
	invalidSceneIdx  = "error: invalid scene index (0-%d)"
	cannotFindFile   = "cannot find file: %s"
	unknownSceneFmt  = "cannot load scene %d from volume %d"
	invalidFrameIdx  = "invalid frame index '%s'"
	writtenReportFmt = "written %s"
)

func (dbg *Debugger) newCommandTable() map[string]commandHandler {
	return map[string]commandHandler{
		"help":      dbg.cmdHelp,
		"ls":        dbg.cmdListFiles,
		"dump":      dbg.cmdDumpFiles,
		"showframe": dbg.cmdShowFrame,
		"showbg":    dbg.cmdShowBg,
		"playseq":   dbg.cmdPlaySeq,
		"playsnd":   dbg.cmdPlaySnd,
		"loadscene": dbg.cmdLoadScene,
		"fight":     dbg.cmdFight,
		"beetle":    dbg.cmdBeetle,
		"chapter":   dbg.cmdChapter,
		"delta":     dbg.cmdTimeDelta,
		"time":      dbg.cmdTime,
		"show":      dbg.cmdShow,
		"viz":       dbg.cmdViz,
		"clear":     dbg.cmdClear,
	}
}

// getNumber interprets the string as a number, allowing the 0x prefix for
// hexadecimal values.
func getNumber(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// mountNumberedVolume mounts the volume named by a command argument.
func (dbg *Debugger) mountNumberedVolume(arg string) error {
	n, ok := getNumber(arg)
	if !ok {
		// an unparseable argument gets the same response as an out-of-range
		// volume number
		n = -1
	}
	return dbg.ctx.Mount(archive.Volume(n))
}

// Command: list files in the mounted volume matching a glob filter. An
// optional volume number lists another volume instead; the default volume is
// remounted before the command returns.
func (dbg *Debugger) cmdListFiles(args []string) bool {
	if len(args) != 2 && len(args) != 3 {
		dbg.printLine(terminal.StyleError, usageListFiles)
		return false
	}

	if len(args) == 3 {
		if err := dbg.mountNumberedVolume(args[2]); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return true
		}
		defer dbg.restoreVolume()
	}

	matches := dbg.res.List(args[1])
	dbg.printLine(terminal.StyleFeedback, "number of matches: %d", len(matches))
	for _, m := range matches {
		dbg.printLine(terminal.StyleFeedback, " %s", m)
	}

	return true
}

// Command: list every file of every volume, with size and MD5.
func (dbg *Debugger) cmdDumpFiles(args []string) bool {
	if len(args) != 1 {
		dbg.printLine(terminal.StyleError, usageDumpFiles)
		return false
	}

	defer dbg.restoreVolume()

	for i := 1; i <= archive.NumVolumes; i++ {
		v := archive.Volume(i)
		if err := dbg.res.Attach(v); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return true
		}

		files := dbg.res.List("*")
		dbg.printLine(terminal.StyleFeedback, "-- %s (%d files)", v.Filename(), len(files))
		dbg.printLine(terminal.StyleFeedback, "filename, size, md5")

		for _, n := range files {
			r, sz, err := dbg.res.Open(n)
			if err != nil {
				dbg.printLine(terminal.StyleError, err.Error())
				return true
			}

			h := md5.New()
			if _, err := io.Copy(h, r); err != nil {
				dbg.printLine(terminal.StyleError, err.Error())
				return true
			}

			dbg.printLine(terminal.StyleFeedback, "%s, %d, %x", n, sz, h.Sum(nil))
		}
	}

	return true
}

// Command: show a single frame of an animation sequence. Two-phase: the
// frame is drawn by Pump() once the current frame has been presented.
func (dbg *Debugger) cmdShowFrame(args []string) bool {
	if len(args) != 3 && len(args) != 4 {
		dbg.printLine(terminal.StyleError, usageShowFrame)
		return false
	}

	name := fmt.Sprintf("%s.SEQ", args[1])
	override := len(args) == 4

	if !dbg.hasCommand() {
		if _, ok := getNumber(args[2]); !ok {
			dbg.printLine(terminal.StyleError, usageShowFrame)
			return false
		}

		if override {
			if err := dbg.mountNumberedVolume(args[3]); err != nil {
				dbg.printLine(terminal.StyleError, err.Error())
				return true
			}
		}

		if !dbg.res.Has(name) {
			dbg.printLine(terminal.StyleError, cannotFindFile, name)
			if override {
				dbg.restoreVolume()
			}
			return true
		}

		dbg.storeCommand(dbg.cmdShowFrame, args)
		return true
	}

	// second phase. the override volume, if any, stayed mounted between the
	// phases and is released on every path out of here
	if override {
		defer dbg.restoreVolume()
	}

	r, _, err := dbg.res.Open(name)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	seq, err := sequence.Load(name, r)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	idx, _ := getNumber(args[2])
	frm, err := seq.Frame(idx)
	if err != nil {
		dbg.printLine(terminal.StyleError, invalidFrameIdx, args[2])
		return true
	}

	dbg.scr.ShowCursor(false)
	defer dbg.scr.ShowCursor(true)

	dbg.scr.Clear(gui.LayerOverlay)
	dbg.scr.Draw(frm, gui.LayerOverlay, frm.X, frm.Y)
	dbg.scr.AskForRedraw()
	if err := dbg.scr.Redraw(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	time.Sleep(resultPause)

	return true
}

// Command: show a background image. Two-phase.
func (dbg *Debugger) cmdShowBg(args []string) bool {
	if len(args) != 2 && len(args) != 3 {
		dbg.printLine(terminal.StyleError, usageShowBg)
		return false
	}

	name := fmt.Sprintf("%s.BG", args[1])
	override := len(args) == 3

	if !dbg.hasCommand() {
		if override {
			if err := dbg.mountNumberedVolume(args[2]); err != nil {
				dbg.printLine(terminal.StyleError, err.Error())
				return true
			}
		}

		if !dbg.res.Has(name) {
			dbg.printLine(terminal.StyleError, cannotFindFile, name)
			if override {
				dbg.restoreVolume()
			}
			return true
		}

		dbg.storeCommand(dbg.cmdShowBg, args)
		return true
	}

	if override {
		defer dbg.restoreVolume()
	}

	r, _, err := dbg.res.Open(name)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	bg, err := scenes.LoadBackground(name, r)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	dbg.scr.Clear(gui.LayerBackground)
	dbg.scr.Draw(bg, gui.LayerBackground, 0, 0)
	dbg.scr.AskForRedraw()
	if err := dbg.scr.Redraw(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	time.Sleep(resultPause)

	return true
}

// Command: play an animation sequence to the end. A right-click interrupts
// playback. Two-phase.
func (dbg *Debugger) cmdPlaySeq(args []string) bool {
	if len(args) != 2 && len(args) != 3 {
		dbg.printLine(terminal.StyleError, usagePlaySeq)
		return false
	}

	name := fmt.Sprintf("%s.SEQ", args[1])
	override := len(args) == 3

	if !dbg.hasCommand() {
		if override {
			if err := dbg.mountNumberedVolume(args[2]); err != nil {
				dbg.printLine(terminal.StyleError, err.Error())
				return true
			}
		}

		if !dbg.res.Has(name) {
			dbg.printLine(terminal.StyleError, cannotFindFile, name)
			if override {
				dbg.restoreVolume()
			}
			return true
		}

		dbg.storeCommand(dbg.cmdPlaySeq, args)
		return true
	}

	if override {
		defer dbg.restoreVolume()
	}

	r, _, err := dbg.res.Open(name)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	seq, err := sequence.Load(name, r)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	if seq.Count() == 0 {
		return false
	}

	dbg.scr.ShowCursor(false)
	defer dbg.scr.ShowCursor(true)

	player := sequence.NewPlayer(seq)
	for {
		frm := player.Frame()
		dbg.scr.Clear(gui.LayerSprites)
		dbg.scr.Draw(frm, gui.LayerSprites, frm.X, frm.Y)
		dbg.scr.AskForRedraw()
		if err := dbg.scr.Redraw(); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return true
		}

		// a right-click interrupts playback
		interrupted := false
		for {
			ev, ok := dbg.src.PollEvent()
			if !ok {
				break
			}
			if mb, ok := ev.(userinput.EventMouseButton); ok && mb.Down && mb.Button == userinput.MouseButtonRight {
				interrupted = true
			}
		}
		if interrupted {
			break
		}

		if !player.NextFrame() {
			break
		}

		time.Sleep(playbackDelay)
	}

	return true
}

// Command: play a sound resource. Unlike sequence playback, queued audio
// does not touch the frame in flight so the command runs immediately.
func (dbg *Debugger) cmdPlaySnd(args []string) bool {
	if len(args) != 2 && len(args) != 3 {
		dbg.printLine(terminal.StyleError, usagePlaySnd)
		return false
	}

	if len(args) == 3 {
		if err := dbg.mountNumberedVolume(args[2]); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return true
		}
		defer dbg.restoreVolume()
	}

	name := args[1]
	if !strings.Contains(name, ".") {
		name = fmt.Sprintf("%s.SND", name)
	}

	if !dbg.res.Has(name) {
		dbg.printLine(terminal.StyleError, cannotFindFile, name)
		return true
	}

	dbg.mix.StopAll()

	r, _, err := dbg.res.Open(name)
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	if err := dbg.snd.Play(name, r); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
	}

	return true
}

// Command: draw a scene. Two-phase.
func (dbg *Debugger) cmdLoadScene(args []string) bool {
	if len(args) != 2 && len(args) != 3 {
		dbg.printLine(terminal.StyleError, usageLoadScene)
		return false
	}

	idx, ok := getNumber(args[1])
	if !ok || idx < 0 || idx > game.MaxSceneIndex {
		dbg.printLine(terminal.StyleError, invalidSceneIdx, game.MaxSceneIndex)
		return false
	}

	override := len(args) == 3

	if !dbg.hasCommand() {
		if override {
			if err := dbg.mountNumberedVolume(args[2]); err != nil {
				dbg.printLine(terminal.StyleError, err.Error())
				return true
			}
		}

		dbg.storeCommand(dbg.cmdLoadScene, args)
		return true
	}

	if override {
		defer dbg.restoreVolume()
	}

	dbg.scr.ClearAll()

	if err := dbg.scn.Draw(dbg.scr, game.SceneIndex(idx)); err != nil {
		dbg.printLine(terminal.StyleError, unknownSceneFmt, idx, int(dbg.ctx.Current()))
		return true
	}

	dbg.scr.AskForRedraw()
	if err := dbg.scr.Redraw(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	time.Sleep(resultPause)

	return true
}

// Command: run a fight. The owning volume is mounted for the duration and
// the policy default remounted afterwards, whatever the outcome. Two-phase.
func (dbg *Debugger) cmdFight(args []string) bool {
	if len(args) != 2 {
		dbg.printLine(terminal.StyleError, usageFight)
		return false
	}

	id, ok := getNumber(args[1])
	if !ok || !fight.ID(id).IsValid() {
		dbg.printLine(terminal.StyleError, usageFight)
		return false
	}

	if !dbg.hasCommand() {
		dbg.storeCommand(dbg.cmdFight, args)
		return true
	}

	if err := dbg.ctx.Mount(fight.ID(id).Volume()); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	snap := game.Capture(dbg.state, game.ItemNone)

	// cleanup runs in reverse order: remount the default volume, then
	// recompose the interrupted scene from the restored volume's data
	defer func() {
		dbg.mix.StopAll()
		dbg.scr.ClearAll()
		_ = dbg.scn.Draw(dbg.scr, snap.Scene())
		dbg.scr.AskForRedraw()
		_ = dbg.scr.Redraw()
	}()
	defer dbg.restoreVolume()

	dbg.scr.ClearAll()
	dbg.scr.AskForRedraw()
	if err := dbg.scr.Redraw(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	f := fight.NewFight(dbg.scr, dbg.src, dbg.res)
	outcome, err := f.Setup(fight.ID(id))
	if err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	dbg.printLine(terminal.StyleFeedback, "%s fight!", outcome)
	time.Sleep(resultPause)

	return true
}

// Command: run the beetle mini-game. The game state is staged (chapter,
// scene, beetle item location) and restored verbatim afterwards. Two-phase.
func (dbg *Debugger) cmdBeetle(args []string) bool {
	if len(args) != 1 {
		dbg.printLine(terminal.StyleError, usageBeetle)
		return false
	}

	if !dbg.hasCommand() {
		dbg.storeCommand(dbg.cmdBeetle, args)
		return true
	}

	if err := dbg.ctx.Mount(archive.Volume2); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	snap := game.Capture(dbg.state, game.ItemBeetle)

	defer func() {
		dbg.mix.StopAll()
		dbg.scr.ClearAll()
		_ = dbg.scn.Draw(dbg.scr, snap.Scene())
		dbg.scr.AskForRedraw()
		_ = dbg.scr.Redraw()
	}()
	defer dbg.restoreVolume()
	defer snap.Restore(dbg.state)

	// stage the state the mini-game expects
	dbg.state.Progress.Chapter = 2
	dbg.state.Scene = beetle.StagingScene
	dbg.state.Inventory.Get(game.ItemBeetle).Location = beetle.StagingLocation

	b := beetle.NewBeetle(dbg.state, dbg.res)
	if !b.IsLoaded() {
		if err := b.Load(); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return true
		}
	}
	defer b.Unload()

	dbg.scr.ClearAll()
	dbg.scr.AskForRedraw()
	if err := dbg.scr.Redraw(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	for {
		b.Update(dbg.scr)
		dbg.scr.AskForRedraw()
		if err := dbg.scr.Redraw(); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return true
		}

		caught := false
		quit := false
		for {
			ev, ok := dbg.src.PollEvent()
			if !ok {
				break
			}

			switch ev := ev.(type) {
			case userinput.EventKeyboard:
				if ev.Down && ev.Key == "Escape" {
					quit = true
				}
			case userinput.EventMouseButton:
				if !ev.Down {
					dbg.state.SetCoordinates(ev.X, ev.Y)
					if b.CatchBeetle() {
						caught = true
					}
				}
			}
		}

		if caught {
			dbg.printLine(terminal.StyleFeedback, "beetle caught!")
			break
		}
		if quit {
			break
		}

		time.Sleep(beetlePoll)
	}

	time.Sleep(resultPause)

	return true
}

// Command: jump to a chapter. The argument is the chapter to leave from; the
// game's own transition logic then advances to the next chapter, reloading
// the default volume and opening scene. Two-phase.
func (dbg *Debugger) cmdChapter(args []string) bool {
	if len(args) != 2 {
		dbg.printLine(terminal.StyleError, usageChapter)
		return false
	}

	id, ok := getNumber(args[1])
	if !ok || id <= 1 || id > game.NumChapters+1 {
		dbg.printLine(terminal.StyleError, usageChapter)
		return false
	}

	if !dbg.hasCommand() {
		dbg.storeCommand(dbg.cmdChapter, args)
		return true
	}

	dbg.state.Progress.Chapter = id - 1
	if err := dbg.logic.SwitchChapter(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
	}

	return true
}

// Command: adjust the time delta.
func (dbg *Debugger) cmdTimeDelta(args []string) bool {
	if len(args) != 2 {
		dbg.printLine(terminal.StyleError, usageTimeDelta)
		return false
	}

	delta, ok := getNumber(args[1])
	if !ok || delta <= 0 || delta > 500 {
		dbg.printLine(terminal.StyleError, usageTimeDelta)
		return false
	}

	dbg.state.TimeDelta = uint(delta)

	return true
}

// Command: convert a game time value to a human readable time.
func (dbg *Debugger) cmdTime(args []string) bool {
	if len(args) != 2 {
		dbg.printLine(terminal.StyleError, usageTime)
		return false
	}

	t, ok := getNumber(args[1])
	if !ok || t < 0 {
		dbg.printLine(terminal.StyleError, usageTime)
		return false
	}

	hours, minutes := game.HourMinutes(uint(t))
	dbg.printLine(terminal.StyleGameInfo, "%02d:%02d", hours, minutes)

	return true
}

// Command: dump game data.
func (dbg *Debugger) cmdShow(args []string) bool {
	if len(args) != 2 {
		dbg.printLine(terminal.StyleError, usageShow)
		return false
	}

	dump := func(name, text string) {
		dbg.printLine(terminal.StyleGameInfo, name)
		dbg.printLine(terminal.StyleGameInfo, strings.Repeat("-", len(name)))
		dbg.printLine(terminal.StyleGameInfo, text)
	}

	switch args[1] {
	case "state", "st":
		dump("game state", dbg.state.String())
	case "progress", "pr":
		dump("progress", fmt.Sprintf("chapter: %d", dbg.state.Progress.Chapter))
	case "inventory", "inv":
		dump("inventory", dbg.state.Inventory.String())
	default:
		dbg.printLine(terminal.StyleError, usageShow)
		return false
	}

	return true
}

// Command: write a graph of the game state in graphviz dot format.
func (dbg *Debugger) cmdViz(args []string) bool {
	if len(args) != 2 {
		dbg.printLine(terminal.StyleError, usageViz)
		return false
	}

	b := &bytes.Buffer{}
	memviz.Map(b, dbg.state)

	if err := os.WriteFile(args[1], b.Bytes(), 0644); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
		return true
	}

	dbg.printLine(terminal.StyleFeedback, writtenReportFmt, args[1])

	return true
}

// Command: clear all drawing layers.
func (dbg *Debugger) cmdClear(args []string) bool {
	if len(args) != 1 {
		dbg.printLine(terminal.StyleError, usageClear)
		return false
	}

	dbg.scr.ClearAll()
	dbg.scr.AskForRedraw()
	if err := dbg.scr.Redraw(); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
	}

	return true
}
