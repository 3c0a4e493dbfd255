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

// Package terminal is a thin wrapper for "github.com/pkg/term/termios". It
// detects whether the input of an interactive session is a terminal and
// provides the host terminal geometry, which is not available from the
// third-party package. The console is line based so the terminal attributes
// are never changed.
//
// On platforms without termios support the Terminal type reports that it is
// not connected to a terminal and all other functions do nothing.
package terminal
