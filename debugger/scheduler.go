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

import "nocturne/logger"

// hasCommand returns true if a command has been stored and is waiting for
// its second phase. Command implementations use this to tell which phase
// they are running in.
func (dbg *Debugger) hasCommand() bool {
	return dbg.pendingHandler != nil
}

// storeCommand arranges for the handler to be invoked again by Pump() once
// the frame in flight has been presented. The args slice is copied; the
// caller's slice can be reused freely.
//
// Only one command can be stored. A second store while one is pending is a
// mistake in the calling command and is dropped with a log entry.
func (dbg *Debugger) storeCommand(handler commandHandler, args []string) {
	if dbg.hasCommand() {
		logger.Logf(logger.Allow, "debugger", "store of %s dropped: %s still pending",
			args[0], dbg.pendingArgs[0])
		return
	}

	dbg.pendingHandler = handler
	dbg.pendingArgs = make([]string, len(args))
	copy(dbg.pendingArgs, args)

	// leave the console so the host loop can present the frame
	dbg.exitConsole = true
}

// resetCommand clears the stored command.
func (dbg *Debugger) resetCommand() {
	dbg.pendingHandler = nil
	dbg.pendingArgs = nil
}

// CommandPending returns true if the host loop should call Pump() on this
// iteration.
func (dbg *Debugger) CommandPending() bool {
	return dbg.hasCommand()
}

// Pump runs the second phase of the stored command. The host loop must have
// presented at least one frame since the command was stored.
//
// The stored command is cleared when the handler returns, whether or not it
// succeeded. Pump() with no stored command is a logged no-op.
func (dbg *Debugger) Pump() {
	if !dbg.hasCommand() {
		logger.Log(logger.Allow, "debugger", "pump with no stored command")
		return
	}

	defer dbg.resetCommand()
	dbg.pendingHandler(dbg.pendingArgs)
}
