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

package terminal

// Style is used to identify the category of text being sent to the
// TermPrintLine() function.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user. echoed input has
	// been normalised (eg. capitalised).
	StyleEcho Style = iota

	// help information
	StyleHelp

	// terminal feedback for a command that has run
	StyleFeedback

	// information about the game's state
	StyleGameInfo

	// an error has occurred
	StyleError
)
