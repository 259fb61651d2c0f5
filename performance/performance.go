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

// Package performance profiles a run of the program with the tools from the
// runtime package.
package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"nocturne/curated"
)

// Profile says which of the runtime profilers to run.
type Profile int

// List of valid Profile values.
const (
	ProfileNone  Profile = 0x00
	ProfileCPU   Profile = 0x01
	ProfileMem   Profile = 0x02
	ProfileTrace Profile = 0x04
	ProfileAll   Profile = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfileString converts the value of a command line flag to a Profile
// value. recognised strings are "none", "cpu", "mem", "trace" and "all", or
// any combination joined with commas.
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone

	for _, t := range strings.Split(strings.ToLower(s), ",") {
		switch strings.TrimSpace(t) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unrecognised profile: %s", t)
		}
	}

	return p, nil
}

// RunProfiler runs the run() function under the profilers selected by the
// profile argument. profile output is written to files named with the tag
// argument.
func RunProfiler(profile Profile, tag string, run func() error) error {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(tag + "_cpu.profile")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(tag + ".trace")
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = trace.Start(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer trace.Stop()
	}

	// the memory profile is written after run() has returned
	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := os.Create(tag + "_mem.profile")
			if err != nil {
				return
			}
			defer f.Close()

			runtime.GC()
			_ = pprof.WriteHeapProfile(f)
		}()
	}

	return run()
}
