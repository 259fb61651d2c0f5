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

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the prompt type.
type Prompt struct {
	Type PromptType

	// the content of the prompt. for PromptTypeCommand this is the name of
	// the console. for PromptTypePending it also carries the name of the
	// pending command.
	Content string
}

// PromptType identifies the type of information in the prompt.
type PromptType int

// List of prompt types.
const (
	// the console is waiting for a command
	PromptTypeCommand PromptType = iota

	// a command has been stored and will run on the next frame. the console
	// is technically still open but only until the read loop notices.
	PromptTypePending
)

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[ %s ]", strings.TrimSpace(p.Content)))

	switch p.Type {
	case PromptTypeCommand:
		s.WriteString(" >> ")
	case PromptTypePending:
		s.WriteString(" .. ")
	}

	return s.String()
}
