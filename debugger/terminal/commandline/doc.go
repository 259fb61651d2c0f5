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

// Package commandline tokenises console input and provides tab completion
// over the set of command names.
//
// Tokens instances are produced by the TokeniseInput() function and handed to
// command implementations, which walk the token list with Get(), Peek(), etc.
// Input is split on white space and hex values written with a leading '$' are
// normalised to the '0x' prefix.
package commandline
