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

package commandline

import (
	"sort"
	"strings"
)

// TabCompletion provides word completion for the first word of an input
// string, drawn from a fixed list of command names. Repeated calls to
// Complete() with the same input cycle through the possible matches.
type TabCompletion struct {
	commands []string

	matches []string
	match   int

	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(commands []string) *TabCompletion {
	tc := &TabCompletion{
		commands: make([]string, len(commands)),
	}
	copy(tc.commands, commands)
	sort.Strings(tc.commands)
	tc.Reset()
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to a candidate command name.
func (tc *TabCompletion) Complete(input string) string {
	// tab completion is only for the command word itself. if the user has
	// moved on to the arguments there is nothing we can offer.
	if strings.Contains(strings.TrimSpace(input), " ") {
		return input
	}

	// cycle through matches on subsequent calls with the same input
	if input == tc.lastGuess && len(tc.matches) > 0 {
		tc.match++
		if tc.match >= len(tc.matches) {
			tc.match = 0
		}
		tc.lastGuess = tc.matches[tc.match]
		return tc.lastGuess
	}

	stub := strings.ToLower(strings.TrimSpace(input))
	if stub == "" {
		return input
	}

	tc.matches = tc.matches[:0]
	for _, c := range tc.commands {
		if strings.HasPrefix(c, stub) {
			tc.matches = append(tc.matches, c)
		}
	}

	if len(tc.matches) == 0 {
		tc.Reset()
		return input
	}

	tc.match = 0
	tc.lastGuess = tc.matches[0]
	return tc.lastGuess
}

// Reset is used to clear any stored completion matches.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.lastGuess = ""
}
