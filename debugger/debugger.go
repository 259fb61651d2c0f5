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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nocturne/archive"
	"nocturne/curated"
	"nocturne/debugger/terminal"
	"nocturne/debugger/terminal/commandline"
	"nocturne/game"
	"nocturne/gui"
	"nocturne/logger"
	"nocturne/logic"
	"nocturne/scenes"
	"nocturne/sound"
	"nocturne/userinput"
)

const promptContent = "nocturne"

// commandHandler is the signature shared by all command implementations. The
// args slice is the full token list, command name included. The return value
// indicates whether the command was handled; an unhandled command is one
// whose arguments could not be understood at all.
type commandHandler func(args []string) bool

// Debugger is the Nocturne game console.
type Debugger struct {
	term terminal.Terminal

	scr gui.Screen
	src userinput.Source
	mix sound.Mixer

	res   *archive.Resolver
	ctx   *archive.Context
	scn   *scenes.Manager
	state *game.State
	logic *logic.Logic
	snd   *sound.StreamedSound

	commands map[string]commandHandler

	events *terminal.ReadEvents

	// the command waiting for its second phase, if any. see scheduler.go
	pendingHandler commandHandler
	pendingArgs    []string

	// the console read loop exits at the end of the current iteration when
	// this is set. storeCommand() sets it so the frame in flight can be
	// presented before the second phase runs.
	exitConsole bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The terminal is initialised here and cleaned up by CleanUp().
func NewDebugger(term terminal.Terminal, scr gui.Screen, src userinput.Source,
	res *archive.Resolver, state *game.State, mix sound.Mixer) (*Debugger, error) {

	dbg := &Debugger{
		term:  term,
		scr:   scr,
		src:   src,
		mix:   mix,
		res:   res,
		state: state,
	}

	dbg.scn = scenes.NewManager(res)
	dbg.ctx = archive.NewContext(res, dbg.scn, state)
	dbg.logic = logic.NewLogic(state, dbg.ctx, dbg.scn)
	dbg.snd = sound.NewStreamedSound(mix)

	dbg.commands = dbg.newCommandTable()

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(dbg.commandNames()))

	dbg.events = &terminal.ReadEvents{
		UserInput:        make(chan userinput.Event, 10),
		UserInputHandler: func(userinput.Event) error { return nil },
		Signal:           make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			if sig == syscall.SIGINT {
				return curated.Errorf(terminal.UserInterrupt)
			}
			return curated.Errorf(terminal.UserQuit)
		},
	}
	signal.Notify(dbg.events.Signal, syscall.SIGINT)

	return dbg, nil
}

// Context returns the console's archive mount context.
func (dbg *Debugger) Context() *archive.Context {
	return dbg.ctx
}

// Scenes returns the console's scene manager.
func (dbg *Debugger) Scenes() *scenes.Manager {
	return dbg.scn
}

// CleanUp should be called before the console is abandoned.
func (dbg *Debugger) CleanUp() {
	dbg.term.CleanUp()
}

// Console runs the console read loop. The function returns when the user
// closes the console or when a command has been stored for its second phase.
func (dbg *Debugger) Console() error {
	dbg.exitConsole = false

	for !dbg.exitConsole {
		prompt := terminal.Prompt{
			Type:    terminal.PromptTypeCommand,
			Content: promptContent,
		}
		if dbg.hasCommand() {
			prompt.Type = terminal.PromptTypePending
		}

		input, err := dbg.term.TermRead(prompt, dbg.events)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return err
		}

		dbg.parseInput(input)
	}

	return nil
}

// parseInput tokenises the input string and dispatches to the matching
// command. Command names are matched exactly.
func (dbg *Debugger) parseInput(input string) bool {
	tk := commandline.TokeniseInput(input)
	if tk.Len() == 0 {
		return true
	}

	args := tk.Arguments()

	cmd, ok := dbg.commands[args[0]]
	if !ok {
		dbg.printLine(terminal.StyleError, fmt.Sprintf("unknown command: %s", args[0]))
		return false
	}

	dbg.printLine(terminal.StyleEcho, tk.String())

	return cmd(args)
}

// printLine sends a formatted string to the terminal.
func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}

// restoreVolume remounts the policy default volume for the current chapter.
// A failure here leaves the console usable so it is logged rather than
// returned.
func (dbg *Debugger) restoreVolume() {
	if err := dbg.ctx.Restore(); err != nil {
		logger.Logf(logger.Allow, "debugger", "volume restore: %v", err)
	}
}
