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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package except that the pattern string is retained and
// doubles as the error's identity.
//
// The Is() function checks whether an error was created with a specific
// pattern:
//
//	e := curated.Errorf("scene: invalid index (%d)", idx)
//
//	if curated.Is(e, "scene: invalid index (%d)") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the head.
//
// The IsAny() function answers whether the error is curated at all. The
// practical distinction is between 'expected' errors, which the caller
// created somewhere with Errorf(), and 'unexpected' errors from outside the
// project, which should usually be passed further up the call chain.
//
// The Error() function normalises the error chain, removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap
// errors: wrapping with the same message twice results in the message
// appearing only once in the final string.
//
// Chains are considered to be composed of parts separated by the sub-string
// ': ', as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
//
// There is no special provision for sentinel errors but they are achievable
// through Is() and Has(). Sentinel patterns should be stored as a const
// string, suitably named and commented.
package curated
