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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"nocturne/curated"
	"nocturne/debugger/terminal"
	"nocturne/debugger/terminal/colorterm/easyterm"
	"nocturne/debugger/terminal/colorterm/easyterm/ansi"
)

const inputBufferLen = 255

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, inputBufferLen)

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user
	// wants to resume where they left off
	buffInput := make([]byte, inputBufferLen)
	buffN := 0

	// the method for cursor placement is as follows:
	//	for each iteration in the loop
	//		1. store current cursor position
	//		2. clear the current line
	//		3. output the prompt
	//		4. output the input buffer
	//		5. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before we begin the loop
	ct.EasyTerm.TermPrint("\r%s", ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint("%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], prompt.String(), ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		// operating system signals take precedence over keypresses
		select {
		case sig := <-events.Signal:
			return "", events.SignalHandler(sig)
		default:
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:n]))
				copy(input, []byte(s))
				n = len(s)

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
				cursor = n
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// check to see if input is the same as the last history entry
			newEntry := false
			if n > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then append
			// a new entry to the history list
			if newEntry {
				nh := make([]byte, n)
				copy(nh, input[:n])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n")
			return string(input[:n]), nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			switch r {
			case easyterm.EscCursor:
				// CURSOR KEY
				r, _, err := ct.reader.ReadRune()
				if err != nil {
					return "", err
				}

				switch r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in buffInput for possible
						// later editing
						if history == len(ct.commandHistory) {
							copy(buffInput, input[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(input, ct.commandHistory[history].input)
							n = len(ct.commandHistory[history].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(input, buffInput)
							n = buffN
							ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
							cursor = n
						}
					}
				case easyterm.CursorForward:
					// move forward through current command input
					if cursor < n {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursor++
					}
				case easyterm.CursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursor--
					}

				case easyterm.EscDelete:
					// DELETE
					if cursor < n {
						copy(input[cursor:], input[cursor+1:])
						n--
						history = len(ct.commandHistory)
					}

					// consume the closing tilde of the escape sequence
					_, _, _ = ct.reader.ReadRune()
				}
			}

		case easyterm.KeyBackspace:
			// BACKSPACE
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) && n < len(input)-utf8.UTFMax {
				ct.EasyTerm.TermPrint("%c", r)
				m := utf8.EncodeRune(er, r)
				copy(input[cursor+m:], input[cursor:])
				copy(input[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}
