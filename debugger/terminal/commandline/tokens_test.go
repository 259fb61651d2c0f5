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

package commandline_test

import (
	"testing"

	"nocturne/debugger/terminal/commandline"
	"nocturne/test"
)

func TestTokeniseInput(t *testing.T) {
	tk := commandline.TokeniseInput("  fight   2001  ")
	test.Equate(t, tk.Len(), 2)

	s, ok := tk.Get()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "fight")

	s, ok = tk.Get()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "2001")

	_, ok = tk.Get()
	test.ExpectedFailure(t, ok)
}

func TestTokensTraversal(t *testing.T) {
	tk := commandline.TokeniseInput("showframe GIRL 12 3")

	// peek does not advance
	s, ok := tk.Peek()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s, "showframe")
	test.Equate(t, tk.Remaining(), 4)

	_, _ = tk.Get()
	test.Equate(t, tk.Remainder(), "GIRL 12 3")

	// unget walks backwards
	tk.Unget()
	test.Equate(t, tk.Remaining(), 4)

	tk.End()
	test.ExpectedSuccess(t, tk.IsEnd())

	tk.Reset()
	test.Equate(t, tk.Remaining(), 4)
}

func TestHexNormalisation(t *testing.T) {
	tk := commandline.TokeniseInput("time $ff")
	test.Equate(t, tk.Arguments()[1], "0xff")
}

func TestEmptyInput(t *testing.T) {
	tk := commandline.TokeniseInput("   ")
	test.Equate(t, tk.Len(), 0)
	test.ExpectedSuccess(t, tk.IsEnd())

	_, ok := tk.Get()
	test.ExpectedFailure(t, ok)
}

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion([]string{"show", "showframe", "showbg", "fight"})

	// cycling through matches with repeated completion of the same guess
	s := tc.Complete("sho")
	test.Equate(t, s, "show")
	s = tc.Complete(s)
	test.Equate(t, s, "showbg")
	s = tc.Complete(s)
	test.Equate(t, s, "showframe")
	s = tc.Complete(s)
	test.Equate(t, s, "show")

	// no match leaves input unchanged
	tc.Reset()
	test.Equate(t, tc.Complete("zz"), "zz")

	// input with arguments is never completed
	test.Equate(t, tc.Complete("fight 2001"), "fight 2001")
}
