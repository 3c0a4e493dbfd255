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

package terminal

import "fmt"

// Geometry is the size of a terminal in characters.
type Geometry struct {
	Columns int
	Rows    int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Fits returns true if an area of columns by rows characters fits inside the
// terminal.
func (g Geometry) Fits(columns, rows int) bool {
	return columns <= g.Columns && rows <= g.Rows
}
