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

package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jetsetilly/gopher86/hardware/video/modes"
)

// WriteTable writes the capability table to output, one mode per line.
func WriteTable(output io.Writer) {
	w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "mode\tadapter\tdescription\tdisposition")
	for _, s := range modes.All() {
		fmt.Fprintf(w, "%v\t%s\t%v\t%v\n", s.ID, s.Adapter, s, s.Disposition)
	}
	w.Flush()
}
