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

package archive_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"nocturne/archive"
	"nocturne/test"
)

// writeVolume creates a volume container in dir with the supplied files.
func writeVolume(t *testing.T, dir string, v archive.Volume, files map[string]string) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, v.Filename()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for n, d := range files {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(d)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestResolver(t *testing.T) {
	dir := t.TempDir()
	writeVolume(t, dir, archive.Volume1, map[string]string{
		"INTRO.SEQ":    "frames",
		"LOBBY.BG":     "background",
		"DOORBELL.SND": "sound",
	})
	writeVolume(t, dir, archive.Volume2, map[string]string{
		"GALLERY.BG": "background",
	})

	res := archive.NewResolver(dir)
	defer res.Close()

	test.Equate(t, int(res.Current()), int(archive.VolumeNone))

	test.ExpectedSuccess(t, res.Attach(archive.Volume1))
	test.Equate(t, int(res.Current()), int(archive.Volume1))

	// name matching is case-insensitive
	test.ExpectedSuccess(t, res.Has("INTRO.SEQ"))
	test.ExpectedSuccess(t, res.Has("intro.seq"))
	test.ExpectedFailure(t, res.Has("MISSING.SEQ"))

	r, sz, err := res.Open("LOBBY.BG")
	test.ExpectedSuccess(t, err)
	test.Equate(t, sz, len("background"))
	d, err := io.ReadAll(r)
	test.ExpectedSuccess(t, err)
	test.Equate(t, string(d), "background")

	l := res.List("*.SEQ")
	test.Equate(t, len(l), 1)
	test.Equate(t, l[0], "INTRO.SEQ")

	l = res.List("*")
	test.Equate(t, len(l), 3)
}

func TestResolverAttachInvalidatesListing(t *testing.T) {
	dir := t.TempDir()
	writeVolume(t, dir, archive.Volume1, map[string]string{"A.SEQ": "a"})
	writeVolume(t, dir, archive.Volume2, map[string]string{"B.SEQ": "b"})

	res := archive.NewResolver(dir)
	defer res.Close()

	test.ExpectedSuccess(t, res.Attach(archive.Volume1))
	test.ExpectedSuccess(t, res.Has("A.SEQ"))

	// attaching a new volume invalidates the previous directory entirely
	test.ExpectedSuccess(t, res.Attach(archive.Volume2))
	test.ExpectedFailure(t, res.Has("A.SEQ"))
	test.ExpectedSuccess(t, res.Has("B.SEQ"))
}

func TestResolverMissingContainer(t *testing.T) {
	res := archive.NewResolver(t.TempDir())
	defer res.Close()

	test.ExpectedFailure(t, res.Attach(archive.Volume3))
	test.ExpectedFailure(t, res.Attach(archive.Volume(9)))

	_, _, err := res.Open("ANYTHING.SEQ")
	test.ExpectedFailure(t, err)
}
