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

// Package test contains helper functions to remove common boilerplate from
// the project's unit tests.
//
// The Equate() function compares like-typed values and triggers a test
// failure if they are not equal.
//
// The ExpectedFailure() and ExpectedSuccess() functions test a value for a
// failure or success condition suitable for its type.
//
// The Writer type is an implementation of io.Writer that records what is
// written to it for later comparison with an expected string.
package test
