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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package terminal

import (
	"os"

	"github.com/jetsetilly/gopher86/curated"
)

// Sentinal error patterns.
const (
	NotATerminal  = "terminal: not a terminal"
	GeometryError = "terminal: geometry: %v"
)

// Terminal wraps the input and output files of an interactive session.
type Terminal struct{}

// NewTerminal is the preferred method of initialisation for the Terminal type.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, curated.Errorf("terminal: input and output files are required")
	}
	return &Terminal{}, nil
}

// IsTerminal always returns false on this platform.
func (pt *Terminal) IsTerminal() bool {
	return false
}

// Geometry is not available on this platform.
func (pt *Terminal) Geometry() (Geometry, error) {
	return Geometry{}, curated.Errorf(NotATerminal)
}
