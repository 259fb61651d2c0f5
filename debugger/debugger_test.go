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
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nocturne/archive"
	"nocturne/curated"
	"nocturne/debugger/terminal"
	"nocturne/game"
	"nocturne/gui"
	"nocturne/test"
	"nocturne/userinput"
)

// mockTerm implements the terminal.Terminal interface. input lines are
// consumed from a queue; output is recorded by style.
type mockTerm struct {
	lines  []string
	output []string
	errors []string
}

func (mt *mockTerm) Initialise() error                            { return nil }
func (mt *mockTerm) CleanUp()                                     {}
func (mt *mockTerm) RegisterTabCompletion(terminal.TabCompletion) {}
func (mt *mockTerm) Silence(bool)                                 {}
func (mt *mockTerm) TermReadCheck() bool                          { return false }
func (mt *mockTerm) IsInteractive() bool                          { return false }

func (mt *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(mt.lines) == 0 {
		return "", curated.Errorf(terminal.UserInterrupt)
	}
	l := mt.lines[0]
	mt.lines = mt.lines[1:]
	return l, nil
}

func (mt *mockTerm) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		mt.errors = append(mt.errors, s)
		return
	}
	mt.output = append(mt.output, s)
}

func (mt *mockTerm) lastError() string {
	if len(mt.errors) == 0 {
		return ""
	}
	return mt.errors[len(mt.errors)-1]
}

// mockScreen implements the gui.Screen interface and counts presented
// frames.
type mockScreen struct {
	redraws int
	draws   int
	dirty   bool
}

func (ms *mockScreen) Clear(gui.Layer)                            {}
func (ms *mockScreen) ClearAll()                                  {}
func (ms *mockScreen) Draw(_ gui.Drawable, _ gui.Layer, _, _ int) { ms.draws++ }
func (ms *mockScreen) AskForRedraw()                              { ms.dirty = true }
func (ms *mockScreen) ShowCursor(bool)                            {}

func (ms *mockScreen) Redraw() error {
	if ms.dirty {
		ms.redraws++
		ms.dirty = false
	}
	return nil
}

// mockSource implements the userinput.Source interface with a scripted
// event queue.
type mockSource struct {
	events []userinput.Event
}

func (ms *mockSource) PollEvent() (userinput.Event, bool) {
	if len(ms.events) == 0 {
		return nil, false
	}
	ev := ms.events[0]
	ms.events = ms.events[1:]
	return ev, true
}

type mockMixer struct {
	stops int
}

func (mm *mockMixer) Queue(_ float64, _ []float32) error { return nil }
func (mm *mockMixer) StopAll()                           { mm.stops++ }

// sequenceAsset builds a sequence container with a single wxh frame at the
// given position.
func sequenceAsset(w, h, x, y int) string {
	b := &bytes.Buffer{}
	binary.Write(b, binary.LittleEndian, uint16(1))
	binary.Write(b, binary.LittleEndian, uint16(w))
	binary.Write(b, binary.LittleEndian, uint16(h))
	binary.Write(b, binary.LittleEndian, int16(x))
	binary.Write(b, binary.LittleEndian, int16(y))
	b.Write(make([]byte, w*h*4))
	return b.String()
}

// backgroundAsset builds a wxh background container.
func backgroundAsset(w, h int) string {
	b := &bytes.Buffer{}
	binary.Write(b, binary.LittleEndian, uint32(w))
	binary.Write(b, binary.LittleEndian, uint32(h))
	b.Write(make([]byte, w*h*4))
	return b.String()
}

func writeVolume(t *testing.T, dir string, v archive.Volume, files map[string]string) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, v.Filename()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for n, d := range files {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(d)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

// newTestDebugger builds a console over three temporary volume containers,
// with volume one mounted, mirroring how the host engine starts up.
func newTestDebugger(t *testing.T) (*Debugger, *mockTerm, *mockScreen, *mockSource) {
	t.Helper()

	dir := t.TempDir()
	bg := backgroundAsset(2, 2)

	writeVolume(t, dir, archive.Volume1, map[string]string{
		"SCENES1.DAT": "scene 1 TRAIN.BG\nscene 2 TRAIN.BG\nopening 1 1\n",
		"TRAIN.BG":    bg,
		"GIRL.SEQ":    sequenceAsset(2, 2, 0, 0),
	})
	writeVolume(t, dir, archive.Volume2, map[string]string{
		"SCENES2.DAT":   "scene 1 TRAIN.BG\nscene 128 NIGHT.BG\nopening 2 1\nopening 3 1\n",
		"TRAIN.BG":      bg,
		"NIGHT.BG":      bg,
		"BEETLE.SEQ":    sequenceAsset(2, 2, 0, 0),
		"FIGHT2002.SEQ": sequenceAsset(2, 2, 0, 0),
	})
	writeVolume(t, dir, archive.Volume3, map[string]string{
		"SCENES3.DAT":   "scene 1 TRAIN.BG\nopening 4 1\nopening 5 1\n",
		"TRAIN.BG":      bg,
		"FIGHT2003.SEQ": sequenceAsset(2, 2, 0, 0),
	})

	term := &mockTerm{}
	scr := &mockScreen{}
	src := &mockSource{}

	dbg, err := NewDebugger(term, scr, src, archive.NewResolver(dir), game.NewState(), &mockMixer{})
	if err != nil {
		t.Fatal(err)
	}

	if err := dbg.ctx.Mount(archive.Volume1); err != nil {
		t.Fatal(err)
	}

	return dbg, term, scr, src
}

func TestUnknownCommand(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	ok := dbg.parseInput("frobnicate")
	test.ExpectedFailure(t, ok)
	test.ExpectedSuccess(t, strings.Contains(term.lastError(), "unknown command"))
	test.ExpectedFailure(t, dbg.hasCommand())
}

func TestDeltaValidation(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	for _, input := range []string{"delta 0", "delta 501", "delta -5", "delta x"} {
		test.ExpectedFailure(t, dbg.parseInput(input))
		test.Equate(t, dbg.state.TimeDelta, uint(1))
		test.Equate(t, term.lastError(), usageTimeDelta)
	}

	test.ExpectedSuccess(t, dbg.parseInput("delta 250"))
	test.Equate(t, dbg.state.TimeDelta, uint(250))

	// delta is an immediate command and must never defer
	test.ExpectedFailure(t, dbg.hasCommand())
}

func TestTimeCommand(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	test.ExpectedSuccess(t, dbg.parseInput("time 5400"))
	test.Equate(t, term.output[len(term.output)-1], "00:06")

	test.ExpectedFailure(t, dbg.parseInput("time -1"))
	test.Equate(t, term.lastError(), usageTime)
}

func TestChapterValidation(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	test.ExpectedFailure(t, dbg.parseInput("chapter 1"))
	test.Equate(t, term.lastError(), usageChapter)
	test.ExpectedFailure(t, dbg.parseInput("chapter 7"))
	test.ExpectedFailure(t, dbg.hasCommand())
}

// a deferred command must have no effect on its first invocation beyond
// storing itself. the effect happens exactly once, in Pump(), after the
// frame in flight has been presented.
func TestDeferralAndPump(t *testing.T) {
	dbg, term, scr, src := newTestDebugger(t)

	// enough strikes to win the fight on the first frame
	for i := 0; i < 5; i++ {
		src.events = append(src.events, userinput.EventMouseButton{
			Button: userinput.MouseButtonLeft,
			Down:   true,
		})
	}

	test.ExpectedSuccess(t, dbg.parseInput("fight 2002"))

	// phase one: stored, console closing, nothing presented, no mount
	test.ExpectedSuccess(t, dbg.hasCommand())
	test.ExpectedSuccess(t, dbg.exitConsole)
	test.Equate(t, scr.redraws, 0)
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume1))

	dbg.Pump()

	// phase two ran: fight presented frames, outcome reported, pending
	// cleared, policy volume restored
	test.ExpectedFailure(t, dbg.CommandPending())
	test.ExpectedSuccess(t, scr.redraws > 0)
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume1))
	test.Equate(t, term.output[len(term.output)-1], "won fight!")
}

// the pending state is cleared even when the second phase fails partway.
func TestPumpClearsOnFailure(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	// 2004 is a valid fight id but its sequence asset is missing from the
	// fixture's volume three
	test.ExpectedSuccess(t, dbg.parseInput("fight 2004"))
	test.ExpectedSuccess(t, dbg.hasCommand())
	dbg.Pump()

	test.ExpectedFailure(t, dbg.CommandPending())
	test.ExpectedSuccess(t, len(term.errors) > 0)

	// the fight's volume was mounted before the failure and must still have
	// been restored
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume1))
}

func TestPumpWithNothingPending(t *testing.T) {
	dbg, _, scr, _ := newTestDebugger(t)

	dbg.Pump()
	test.ExpectedFailure(t, dbg.CommandPending())
	test.Equate(t, scr.redraws, 0)
}

func TestSecondStoreRejected(t *testing.T) {
	dbg, _, _, _ := newTestDebugger(t)

	dbg.storeCommand(dbg.cmdClear, []string{"clear"})
	dbg.storeCommand(dbg.cmdHelp, []string{"help"})

	test.ExpectedSuccess(t, dbg.hasCommand())
	test.Equate(t, dbg.pendingArgs[0], "clear")
}

// stored arguments are deep copies. mutating the dispatch slice afterwards
// must not affect the second phase.
func TestStoredArgsAreCopied(t *testing.T) {
	dbg, _, _, _ := newTestDebugger(t)

	args := []string{"chapter", "3"}
	dbg.cmdChapter(args)
	args[1] = "9999"

	test.Equate(t, dbg.pendingArgs[1], "3")
}

func TestChapterSwitch(t *testing.T) {
	dbg, _, _, _ := newTestDebugger(t)

	test.ExpectedSuccess(t, dbg.parseInput("chapter 3"))
	test.ExpectedSuccess(t, dbg.hasCommand())

	// no chapter change until the pump
	test.Equate(t, dbg.state.Progress.Chapter, 1)

	dbg.Pump()

	test.Equate(t, dbg.state.Progress.Chapter, 3)
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume2))
	test.ExpectedFailure(t, dbg.CommandPending())
}

func TestListFilesWithVolumeOverride(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	test.ExpectedSuccess(t, dbg.parseInput("ls *.SEQ 2"))

	found := false
	for _, l := range term.output {
		if strings.Contains(l, "FIGHT2002.SEQ") {
			found = true
		}
	}
	test.ExpectedSuccess(t, found)

	// an immediate command restores the policy volume before returning
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume1))
	test.ExpectedFailure(t, dbg.hasCommand())
}

func TestShowFrameMissingFile(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	test.ExpectedSuccess(t, dbg.parseInput("showframe NOSUCH 0 3"))

	// not found during validation: nothing stored, override restored
	test.ExpectedFailure(t, dbg.hasCommand())
	test.ExpectedSuccess(t, strings.Contains(term.lastError(), "NOSUCH.SEQ"))
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume1))
}

func TestBeetleStagingAndRestore(t *testing.T) {
	dbg, term, _, src := newTestDebugger(t)

	// the beetle's first frame sits at the origin; a click next to it is
	// within the catch radius
	src.events = []userinput.Event{
		userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true, X: 5, Y: 5},
		userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false, X: 5, Y: 5},
	}

	dbg.state.Scene = 2

	test.ExpectedSuccess(t, dbg.parseInput("beetle"))
	test.ExpectedSuccess(t, dbg.hasCommand())

	dbg.Pump()

	// staged values are restored verbatim whatever the outcome
	test.Equate(t, dbg.state.Progress.Chapter, 1)
	test.Equate(t, int(dbg.state.Scene), 2)
	test.Equate(t, int(dbg.state.Inventory.Get(game.ItemBeetle).Location), int(game.LocationNone))
	test.Equate(t, int(dbg.ctx.Current()), int(archive.Volume1))

	found := false
	for _, l := range term.output {
		if strings.Contains(l, "beetle caught") {
			found = true
		}
	}
	test.ExpectedSuccess(t, found)
}

// the console read loop must end as soon as a command has been stored,
// leaving any further queued input unread until the next console entry.
func TestConsoleExitsOnStore(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	term.lines = []string{"chapter 3", "delta 9"}

	if err := dbg.Console(); err != nil {
		t.Fatal(err)
	}

	test.ExpectedSuccess(t, dbg.CommandPending())
	test.Equate(t, len(term.lines), 1)
	test.Equate(t, dbg.state.TimeDelta, uint(1))
}

func TestConsoleImmediateCommands(t *testing.T) {
	dbg, term, _, _ := newTestDebugger(t)

	term.lines = []string{"delta 120", "time 54000"}

	if err := dbg.Console(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, dbg.state.TimeDelta, uint(120))
	test.Equate(t, term.output[len(term.output)-1], "01:00")
	test.ExpectedFailure(t, dbg.CommandPending())
}
