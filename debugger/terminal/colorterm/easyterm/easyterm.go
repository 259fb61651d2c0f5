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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	// characters
	rows uint16
	cols uint16

	// pixels
	x uint16
	y uint16
}

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control the signal handler goroutine
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated from the signal handler goroutine so access is
	// protected with a mutex
	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return err
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	// set up sig/ack channels for the signal handler
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	// kickstart signal handler
	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// TermPrint writes the string to the output file.
func (et *EasyTerm) TermPrint(s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	et.output.WriteString(s)
	et.output.Sync()
}

// UpdateGeometry gets the current dimensions (in characters and pixels) of
// the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("error updating terminal geometry information: %v", err)
	}

	et.Geometry.rows = ws.Row
	et.Geometry.cols = ws.Col
	et.Geometry.x = ws.Xpixel
	et.Geometry.y = ws.Ypixel

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
