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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 8
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, col := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[col], _ = ColorBuild(col, "normal", "", true, false)
		DimPens[col], _ = ColorBuild(col, "normal", "", false, false)
	}

	PenStyles["bold"], _ = ColorBuild("", "", "bold", false, false)
	PenStyles["underline"], _ = ColorBuild("", "", "underline", false, false)
}

func colorCode(color string) (int, error) {
	switch strings.ToUpper(color) {
	case "BLACK":
		return colBlack, nil
	case "RED":
		return colRed, nil
	case "GREEN":
		return colGreen, nil
	case "YELLOW":
		return colYellow, nil
	case "BLUE":
		return colBlue, nil
	case "MAGENTA":
		return colMagenta, nil
	case "CYAN":
		return colCyan, nil
	case "WHITE":
		return colWhite, nil
	case "NORMAL":
		return colDefault, nil
	}
	return 0, fmt.Errorf("unknown ANSI color (%s)", color)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	// pen
	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		col, err := colorCode(pen)
		if err != nil {
			return "", err
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, col))
	}

	// paper
	if paper != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		paperType := targetPaper
		if brightPaper {
			paperType = targetBrightPaper
		}
		col, err := colorCode(paper)
		if err != nil {
			return "", err
		}
		s.WriteString(fmt.Sprintf("%d%d", paperType, col))
	}

	// attribute
	if attribute != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		switch strings.ToUpper(attribute) {
		case "BOLD":
			s.WriteString(fmt.Sprintf("%d", attrBold))
		case "UNDERLINE":
			s.WriteString(fmt.Sprintf("%d", attrUnderline))
		case "INVERSE":
			s.WriteString(fmt.Sprintf("%d", attrInverse))
		case "STRIKE":
			s.WriteString(fmt.Sprintf("%d", attrStrike))
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore is the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore is the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward (to the
// right for latin fonts) one character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward (to the
// left for latin fonts) one character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
