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
	"bufio"
	"io"
)

// runeReader wraps the terminal's input stream in a buffered reader so that
// input can be consumed one rune at a time.
type runeReader struct {
	*bufio.Reader
}

func initRuneReader(input io.Reader) runeReader {
	return runeReader{Reader: bufio.NewReader(input)}
}
