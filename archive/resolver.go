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

package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"nocturne/curated"
	"nocturne/logger"
)

// Sentinel error patterns for the archive package.
const (
	InvalidVolume = "archive: invalid volume (was: %d, valid: [1-3])"
	NotAttached   = "archive: no volume attached"
	NotFound      = "archive: cannot find file: %s"
)

// Resolver resolves named assets from whichever volume container is
// currently attached. Asset names are matched without regard to case, the
// original archives mix upper and lower case freely.
type Resolver struct {
	// directory containing the volume container files
	path string

	vol Volume
	zf  *zip.ReadCloser

	// directory of the attached container. keyed by upper-case name
	entries map[string]*zip.File
}

// NewResolver is the preferred method of initialisation for the Resolver
// type. The path argument is the directory containing the volume container
// files. No volume is attached until the first call to Attach().
func NewResolver(path string) *Resolver {
	return &Resolver{path: path}
}

// Attach opens the container for the specified volume and replaces the
// current directory listing with the new volume's directory. Any previously
// attached volume is detached first.
func (res *Resolver) Attach(v Volume) error {
	if !v.IsValid() {
		return curated.Errorf(InvalidVolume, int(v))
	}

	zf, err := zip.OpenReader(filepath.Join(res.path, v.Filename()))
	if err != nil {
		return curated.Errorf("archive: %v", err)
	}

	// the previous volume's directory is stale the moment the new container
	// opens successfully
	if res.zf != nil {
		res.zf.Close()
	}

	res.zf = zf
	res.vol = v
	res.entries = make(map[string]*zip.File, len(zf.File))
	for _, f := range zf.File {
		if f.FileInfo().IsDir() {
			continue
		}
		res.entries[strings.ToUpper(f.Name)] = f
	}

	logger.Logf(logger.Allow, "archive", "attached %s (%d files)", v, len(res.entries))

	return nil
}

// Current returns the attached volume. VolumeNone if nothing has been
// attached yet.
func (res *Resolver) Current() Volume {
	return res.vol
}

// Has returns true if the named asset exists in the attached volume.
func (res *Resolver) Has(name string) bool {
	_, ok := res.entries[strings.ToUpper(name)]
	return ok
}

// Open returns an io.ReadSeeker for the named asset, along with the size of
// the data behind the ReadSeeker.
func (res *Resolver) Open(name string) (io.ReadSeeker, int, error) {
	if res.zf == nil {
		return nil, 0, curated.Errorf(NotAttached)
	}

	f, ok := res.entries[strings.ToUpper(name)]
	if !ok {
		return nil, 0, curated.Errorf(NotFound, name)
	}

	r, err := f.Open()
	if err != nil {
		return nil, 0, curated.Errorf("archive: %v", err)
	}
	defer r.Close()

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, curated.Errorf("archive: %v", err)
	}

	return bytes.NewReader(d), len(d), nil
}

// List returns the names of all assets in the attached volume matching the
// filter. The filter is a glob pattern, "*" matches everything. Results are
// sorted.
func (res *Resolver) List(filter string) []string {
	m := make([]string, 0, len(res.entries))
	filter = strings.ToUpper(filter)
	for n := range res.entries {
		if ok, err := path.Match(filter, n); err == nil && ok {
			m = append(m, n)
		}
	}
	sort.Strings(m)
	return m
}

// Close detaches the current volume. The resolver can be reused with a
// subsequent call to Attach().
func (res *Resolver) Close() error {
	if res.zf == nil {
		return nil
	}
	err := res.zf.Close()
	res.zf = nil
	res.vol = VolumeNone
	res.entries = nil
	return err
}
