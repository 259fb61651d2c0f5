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

// Package flags is a thin wrapper around the flag package from the standard
// library. it buffers the flag package's output so that usage information is
// only printed when we decide it should be, and it folds the ErrHelp case
// into a ParseResult value rather than an error.
//
// typical usage:
//
//	fl := flags.NewParser(os.Args[1:])
//	fl.Output = os.Stdout
//	term := fl.AddString("term", "color", "terminal type to use")
//
//	p, err := fl.Parse()
//	switch p {
//	case flags.ParseHelp:
//	    os.Exit(2)
//	case flags.ParseError:
//	    fmt.Println(err)
//	    os.Exit(2)
//	}
package flags

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// ParseResult is returned by Parse(). the value indicates how the program
// should react to the parsing attempt.
type ParseResult int

// values returned by Parse().
const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

// Parser handles the flags and remaining arguments for the program's command
// line.
type Parser struct {
	// Output is where usage information is printed. defaults to os.Stdout if
	// left unset.
	Output io.Writer

	flags *flag.FlagSet
	args  []string

	// the flag package writes usage information as part of its Parse()
	// function. we buffer it so that it can be printed to Output at a time
	// of our choosing.
	usage bytes.Buffer

	// arguments left over after flag parsing
	remaining []string
}

// NewParser is the preferred method of initialisation for the Parser type.
// args should not include the program name, so typically os.Args[1:] is the
// correct value to use.
func NewParser(args []string) *Parser {
	fl := &Parser{args: args}
	fl.flags = flag.NewFlagSet("", flag.ContinueOnError)
	fl.flags.SetOutput(&fl.usage)
	return fl
}

// Parse the command line. the returned ParseResult says whether the program
// should continue, stop because help was requested, or stop because of a
// parsing error. the error value is non-nil only for ParseError.
func (fl *Parser) Parse() (ParseResult, error) {
	err := fl.flags.Parse(fl.args)
	if err != nil {
		if err == flag.ErrHelp {
			fl.printUsage()
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("flags: %w", err)
	}

	fl.remaining = fl.flags.Args()

	return ParseContinue, nil
}

func (fl *Parser) printUsage() {
	output := fl.Output
	if output == nil {
		output = os.Stdout
	}
	if fl.usage.Len() > 0 {
		io.WriteString(output, "available flags:\n")
		io.Copy(output, &fl.usage)
	}
}

// AddBool adds a boolean flag.
func (fl *Parser) AddBool(name string, value bool, usage string) *bool {
	return fl.flags.Bool(name, value, usage)
}

// AddString adds a string flag.
func (fl *Parser) AddString(name string, value string, usage string) *string {
	return fl.flags.String(name, value, usage)
}

// AddInt adds an integer flag.
func (fl *Parser) AddInt(name string, value int, usage string) *int {
	return fl.flags.Int(name, value, usage)
}

// AddDuration adds a duration flag.
func (fl *Parser) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return fl.flags.Duration(name, value, usage)
}

// RemainingArgs returns the arguments left over after flag parsing. only
// valid after Parse() has returned ParseContinue.
func (fl *Parser) RemainingArgs() []string {
	return fl.remaining
}

// GetArg returns the argument at position i of the remaining arguments, or
// the empty string if there is no such argument.
func (fl *Parser) GetArg(i int) string {
	if i >= len(fl.remaining) {
		return ""
	}
	return fl.remaining[i]
}
