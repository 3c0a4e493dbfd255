// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopher86/curated"
)

// Sentinal error patterns.
const (
	NotATerminal  = "terminal: not a terminal"
	GeometryError = "terminal: geometry: %v"
)

// Terminal wraps the input and output files of an interactive session.
type Terminal struct {
	input  *os.File
	output *os.File

	// attributes of the input terminal at the time of creation
	attr unix.Termios

	// false if the input file is not a terminal. for example, if input has
	// been redirected from a file
	isTerminal bool
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
// It is not an error for the files not to be terminals.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("terminal: input and output files are required")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	pt.isTerminal = termios.Tcgetattr(pt.input.Fd(), &pt.attr) == nil

	return pt, nil
}

// IsTerminal returns true if the input file is a terminal.
func (pt *Terminal) IsTerminal() bool {
	return pt.isTerminal
}

// Geometry returns the size of the output terminal in characters.
func (pt *Terminal) Geometry() (Geometry, error) {
	if !pt.isTerminal {
		return Geometry{}, curated.Errorf(NotATerminal)
	}

	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, curated.Errorf(GeometryError, err)
	}

	return Geometry{
		Columns: int(ws.Col),
		Rows:    int(ws.Row),
	}, nil
}
