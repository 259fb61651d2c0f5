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

package main

import (
	"fmt"
	"os"

	"nocturne/flags"
	"nocturne/logger"
	"nocturne/performance"
	"nocturne/statsview"
	"nocturne/version"
)

func main() {
	fl := flags.NewParser(os.Args[1:])
	fl.Output = os.Stdout

	termType := fl.AddString("term", "color", "terminal type for the debug console: color, plain")
	useStats := fl.AddBool("stats", false, fmt.Sprintf("launch statistics server (available: %t)", statsview.Available()))
	echoLog := fl.AddBool("log", false, "echo log entries to stderr")
	profile := fl.AddString("profile", "none", "run performance profiling: cpu, mem, trace, all")
	showVersion := fl.AddBool("version", false, "print version and exit")

	p, err := fl.Parse()
	switch p {
	case flags.ParseHelp:
		fmt.Println("\nusage: nocturne [flags] <data directory>")
		os.Exit(2)
	case flags.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(2)
	}

	if *showVersion {
		vrs, rev := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, vrs, rev)
		return
	}

	if *echoLog {
		logger.SetEcho(os.Stderr, true)
	}

	if *useStats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not compiled in (rebuild with the statsview build constraint)")
		}
	}

	dataDir := fl.GetArg(0)
	if dataDir == "" {
		fmt.Println("* no data directory specified")
		os.Exit(2)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(2)
	}

	err = performance.RunProfiler(prf, "nocturne", func() error {
		return run(dataDir, *termType)
	})
	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(2)
	}
}
