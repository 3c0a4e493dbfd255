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

// Package modes is the capability table for the display adapter. The table is
// a closed set of video modes, identified by the number used to select them
// with the BIOS video service.
//
// A Mode value can hold any integer but only those in the table are
// recognised. Recognised modes have a Spec, describing the static properties
// of the mode, and a Disposition, describing how the video controller treats
// a request for that mode.
package modes

import "fmt"

// Mode identifies a display configuration.
type Mode int

// List of recognised modes. Identifiers 0x08 to 0x0c are not in the table.
const (
	Mode00 Mode = 0x00
	Mode01 Mode = 0x01
	Mode02 Mode = 0x02
	Mode03 Mode = 0x03
	Mode04 Mode = 0x04
	Mode05 Mode = 0x05
	Mode06 Mode = 0x06
	Mode07 Mode = 0x07
	Mode0D Mode = 0x0d
	Mode0E Mode = 0x0e
	Mode0F Mode = 0x0f
	Mode10 Mode = 0x10
	Mode11 Mode = 0x11
	Mode12 Mode = 0x12
	Mode13 Mode = 0x13
)

// Default is the mode a video controller starts in: 80x25 16 colour text.
const Default = Mode03

func (m Mode) String() string {
	if !m.Recognised() {
		return fmt.Sprintf("unrecognised (%d)", int(m))
	}
	return fmt.Sprintf("%02xh", int(m))
}

// Recognised returns true if the mode is in the capability table.
func (m Mode) Recognised() bool {
	_, ok := table[m]
	return ok
}

// Disposition returns how the video controller treats a request for the mode.
func (m Mode) Disposition() Disposition {
	if s, ok := table[m]; ok {
		return s.Disposition
	}
	return Unrecognised
}

// Lookup returns the Spec for a mode. The bool is false if the mode is not
// recognised, in which case the Spec is the zero value.
func Lookup(m Mode) (Spec, bool) {
	s, ok := table[m]
	return s, ok
}

// All returns the specifications of every recognised mode, in ascending order
// of mode identifier.
func All() []Spec {
	all := make([]Spec, 0, len(order))
	for _, m := range order {
		all = append(all, table[m])
	}
	return all
}
