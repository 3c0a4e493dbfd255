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

package console_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher86/console"
	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/video"
	"github.com/jetsetilly/gopher86/hardware/video/modes"
	"github.com/jetsetilly/gopher86/reporting"
	"github.com/jetsetilly/gopher86/test"
)

func newConsole(t *testing.T) (*console.Console, *reporting.Counter, *test.CompareWriter) {
	t.Helper()
	w := &test.CompareWriter{}
	c := reporting.NewCounter(&reporting.Writer{Output: w})
	con := console.NewConsole(video.NewController(c), c, w)
	con.Prompt = ""
	return con, c, w
}

func TestParseMode(t *testing.T) {
	for s, v := range map[string]int{
		"3":    3,
		"19":   19,
		"0x13": 19,
		"13h":  19,
		"13H":  19,
		"-1":   -1,
	} {
		m, err := console.ParseMode(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, m, v, s)
	}

	for _, s := range []string{"", "h", "foo", "0xzz", "99999999999999999999999"} {
		_, err := console.ParseMode(s)
		test.ExpectSuccess(t, curated.Is(err, console.InvalidMode), s)
	}
}

func TestModeCommand(t *testing.T) {
	con, c, w := newConsole(t)

	quit, err := con.Execute("mode 3")
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "mode set: 03h text 80x25 16 colour\n")

	w.Clear()
	_, err = con.Execute("MODE 0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Count(), 1)
	test.ExpectEquality(t, w.String(), "video mode not supported: 00h\n"+
		"mode refused: active mode is 03h\n"+
		"errors reported: 1\n")

	w.Clear()
	_, err = con.Execute("MODE 13h")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Count(), 1)
	test.ExpectEquality(t, w.String(), "mode refused: active mode is 03h\n")

	_, err = con.Execute("MODE")
	test.ExpectSuccess(t, curated.Is(err, console.MissingArgs))
	_, err = con.Execute("MODE foo")
	test.ExpectSuccess(t, curated.Is(err, console.InvalidMode))
}

func TestPrintCommand(t *testing.T) {
	con, c, w := newConsole(t)

	_, err := con.Execute("print hello world")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c.Count(), 1)
	test.ExpectEquality(t, w.String(), "video mode doesn't support text: 03h\nerrors reported: 1\n")
}

func TestStateAndTable(t *testing.T) {
	con, _, w := newConsole(t)

	_, err := con.Execute("STATE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "03h text 80x25 16 colour\n")

	w.Clear()
	_, err = con.Execute("TABLE")
	test.ExpectSuccess(t, err)
	lines := w.Lines()
	test.DemandEquality(t, len(lines), len(modes.All())+1)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "mode"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "00h"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "rejected"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[4], "operational"))
}

func TestUnknownCommand(t *testing.T) {
	con, _, _ := newConsole(t)
	_, err := con.Execute("FOO")
	test.ExpectSuccess(t, curated.Is(err, console.UnknownCommand))

	// empty lines are ignored
	quit, err := con.Execute("   ")
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, err)
}

func TestRun(t *testing.T) {
	con, c, w := newConsole(t)

	script := "mode 0\nfoo\nprint hello\nquit\nmode 0\n"
	test.ExpectSuccess(t, con.Run(strings.NewReader(script)))

	// commands after quit are not executed
	test.ExpectEquality(t, c.Count(), 2)
	test.ExpectSuccess(t, strings.Contains(w.String(), "* console: unknown command: foo\n"))
}

func TestRunEndOfInput(t *testing.T) {
	con, c, _ := newConsole(t)
	con.Prompt = "> "
	test.ExpectSuccess(t, con.Run(strings.NewReader("mode 0")))
	test.ExpectEquality(t, c.Count(), 1)
}
