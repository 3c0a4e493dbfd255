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

package modes

import (
	"fmt"
	"strings"
)

// Adapter is the display hardware that introduced a mode.
type Adapter string

// List of adapters.
const (
	CGA Adapter = "CGA"
	MDA Adapter = "MDA"
	VGA Adapter = "VGA"
)

// Disposition describes how a request for a mode is treated by the video
// controller.
type Disposition int

// List of valid Disposition values.
const (
	// the mode is not in the capability table
	Unrecognised Disposition = iota

	// recognised but the request is refused with an error
	Rejected

	// recognised but the request is refused silently
	Declined

	// the mode the controller will adopt
	Operational
)

func (d Disposition) String() string {
	switch d {
	case Rejected:
		return "rejected"
	case Declined:
		return "declined"
	case Operational:
		return "operational"
	}
	return "unrecognised"
}

// Spec describes the static properties of a recognised mode. Text modes have
// a size in Columns and Rows; graphics modes have a size in pixels, Width and
// Height.
type Spec struct {
	ID      Mode
	Adapter Adapter

	// whether character output is permitted by the mode
	Text bool

	Columns int
	Rows    int
	Width   int
	Height  int

	Colors int
	Mono   bool

	Disposition Disposition
}

func (s Spec) String() string {
	b := strings.Builder{}
	if s.Text {
		b.WriteString(fmt.Sprintf("text %dx%d", s.Columns, s.Rows))
	} else {
		b.WriteString(fmt.Sprintf("graphics %dx%d", s.Width, s.Height))
	}
	b.WriteString(fmt.Sprintf(" %d colour", s.Colors))
	if s.Mono {
		b.WriteString(" (mono)")
	}
	return b.String()
}

func text(id Mode, adapter Adapter, columns, rows, colors int, mono bool) Spec {
	return Spec{
		ID:          id,
		Adapter:     adapter,
		Text:        true,
		Columns:     columns,
		Rows:        rows,
		Colors:      colors,
		Mono:        mono,
		Disposition: Declined,
	}
}

func graphics(id Mode, adapter Adapter, width, height, colors int, mono bool) Spec {
	return Spec{
		ID:          id,
		Adapter:     adapter,
		Width:       width,
		Height:      height,
		Colors:      colors,
		Mono:        mono,
		Disposition: Declined,
	}
}

// the capability table. order lists the table keys in ascending order.
var table map[Mode]Spec
var order []Mode

func init() {
	specs := []Spec{
		text(Mode00, CGA, 40, 25, 16, true),
		text(Mode01, CGA, 40, 25, 16, false),
		text(Mode02, CGA, 80, 25, 16, true),
		text(Mode03, CGA, 80, 25, 16, false),
		graphics(Mode04, CGA, 320, 200, 4, false),
		graphics(Mode05, CGA, 320, 200, 4, true),
		graphics(Mode06, CGA, 640, 200, 2, false),
		text(Mode07, MDA, 80, 25, 2, true),
		graphics(Mode0D, VGA, 320, 200, 16, false),
		graphics(Mode0E, VGA, 640, 200, 16, false),
		graphics(Mode0F, VGA, 640, 350, 2, true),
		graphics(Mode10, VGA, 640, 350, 16, false),
		graphics(Mode11, VGA, 640, 480, 2, true),
		graphics(Mode12, VGA, 640, 480, 16, false),
		graphics(Mode13, VGA, 320, 200, 256, false),
	}

	specs[Mode00].Disposition = Rejected
	specs[Mode03].Disposition = Operational

	table = make(map[Mode]Spec, len(specs))
	order = make([]Mode, 0, len(specs))
	for _, s := range specs {
		table[s.ID] = s
		order = append(order, s.ID)
	}
}
