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

// Package version records the version of the program and the vcs state it
// was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Nocturne"

// number is set through the linker by the release process. if it is empty
// the build did not come from a release.
var number string

// Version returns the version string and the vcs revision. the revision is
// suffixed with "+dirty" if the source had uncommitted changes at build time.
//
// a version string of "unreleased" means the program was built from source
// without the release process. "local" means there is no vcs information at
// all, which happens with "go run .".
func Version() (string, string) {
	var vcs bool
	var revision string
	var modified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	version := number
	if version == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	}

	return version, revision
}
