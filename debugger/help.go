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
	"sort"

	"nocturne/debugger/terminal"
)

// one-line summaries for the help command. every entry in the command table
// has a corresponding entry here.
var helpSummaries = map[string]string{
	"help":      "list available commands",
	"ls":        "list files in the mounted volume",
	"dump":      "list files of every volume with size and checksum",
	"showframe": "show a frame from a sequence",
	"showbg":    "show a background",
	"playseq":   "play a sequence",
	"playsnd":   "play a sound",
	"loadscene": "load a scene",
	"fight":     "start a fight",
	"beetle":    "start the beetle game",
	"chapter":   "switch to a specific chapter",
	"delta":     "adjust the time delta",
	"time":      "convert game time to a readable time",
	"show":      "show game data",
	"viz":       "write a graph of the game state",
	"clear":     "clear the screen",
}

// commandNames returns the sorted list of command names. used for help
// output and tab completion.
func (dbg *Debugger) commandNames() []string {
	names := make([]string, 0, len(dbg.commands))
	for n := range dbg.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Command: list available commands.
func (dbg *Debugger) cmdHelp(args []string) bool {
	if len(args) != 1 {
		dbg.printLine(terminal.StyleError, usageHelp)
		return false
	}

	for _, n := range dbg.commandNames() {
		dbg.printLine(terminal.StyleHelp, fmt.Sprintf(" %s - %s", n, helpSummaries[n]))
	}

	return true
}
