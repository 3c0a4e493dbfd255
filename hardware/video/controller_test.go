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

package video_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher86/hardware/video"
	"github.com/jetsetilly/gopher86/hardware/video/modes"
	"github.com/jetsetilly/gopher86/test"
)

// collects every message sent to the reporter
type collector struct {
	messages []string
}

func (c *collector) ProcessError(msg string) {
	c.messages = append(c.messages, msg)
}

func TestDefaultMode(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)
	test.ExpectEquality(t, ctl.Mode(), modes.Mode03)
	test.ExpectEquality(t, ctl.Spec().Columns, 80)
	test.ExpectEquality(t, ctl.Spec().Rows, 25)
	test.ExpectEquality(t, len(rep.messages), 0)
}

func TestSetMode3(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)
	test.ExpectSuccess(t, ctl.SetVideoMode(3))
	test.ExpectEquality(t, ctl.Mode(), modes.Mode03)
	test.ExpectEquality(t, len(rep.messages), 0)
}

func TestSetMode0(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)
	test.ExpectFailure(t, ctl.SetVideoMode(0))
	test.ExpectEquality(t, ctl.Mode(), modes.Mode03)
	test.DemandEquality(t, len(rep.messages), 1)
	test.ExpectSuccess(t, strings.Contains(rep.messages[0], "not supported"))
	test.ExpectEquality(t, rep.messages[0], "video mode not supported: 00h")
}

func TestSetMode19(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)
	test.ExpectFailure(t, ctl.SetVideoMode(19))
	test.ExpectEquality(t, ctl.Mode(), modes.Mode03)
	test.ExpectEquality(t, len(rep.messages), 0)
}

func TestPrintText(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)
	ctl.PrintText("hello")
	test.DemandEquality(t, len(rep.messages), 1)
	test.ExpectEquality(t, rep.messages[0], "video mode doesn't support text: 03h")
}

// mode 3 is the only mode that can be set. all other requests leave the
// active mode unchanged and only mode 0 is reported
func TestAllRequests(t *testing.T) {
	for m := -300; m <= 300; m++ {
		rep := &collector{}
		ctl := video.NewController(rep)

		ok := ctl.SetVideoMode(m)
		test.ExpectEquality(t, ok, m == 3, m)
		test.ExpectEquality(t, ctl.Mode(), modes.Mode03, m)

		switch m {
		case 0:
			test.ExpectEquality(t, len(rep.messages), 1, m)
		default:
			test.ExpectEquality(t, len(rep.messages), 0, m)
		}
	}
}

// the recognised modes that are valid configurations are refused in the same
// way as unrecognised modes
func TestDeclinedModes(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)

	for _, s := range modes.All() {
		if s.Disposition != modes.Declined {
			continue
		}
		test.ExpectFailure(t, ctl.SetVideoMode(int(s.ID)), s.ID)
	}
	test.ExpectEquality(t, len(rep.messages), 0)
	test.ExpectEquality(t, ctl.Mode(), modes.Mode03)
}

// text output is reported whatever the sequence of mode requests before it
func TestPrintTextAlwaysReports(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)

	for i, m := range []int{3, 1, 2, 7, 19, 3, 1000} {
		ctl.SetVideoMode(m)
		rep.messages = rep.messages[:0]
		for _, s := range []string{"", "hello", "multi\nline"} {
			ctl.PrintText(s)
		}
		test.ExpectEquality(t, len(rep.messages), 3, i)
	}
}

func TestString(t *testing.T) {
	ctl := video.NewController(&collector{})
	test.ExpectEquality(t, ctl.String(), "03h text 80x25 16 colour")
}

// a controller without a reporter does not panic
func TestNilReporter(t *testing.T) {
	ctl := video.NewController(nil)
	test.ExpectFailure(t, ctl.SetVideoMode(0))
	ctl.PrintText("hello")
	test.ExpectEquality(t, ctl.Mode(), modes.Mode03)
}

func TestSnapshot(t *testing.T) {
	rep := &collector{}
	ctl := video.NewController(rep)

	snap := ctl.Snapshot()
	test.ExpectEquality(t, snap.Mode(), ctl.Mode())
	test.ExpectEquality(t, snap.String(), ctl.String())

	// the snapshot does not share the reporter of the original
	test.ExpectFailure(t, snap.SetVideoMode(0))
	test.ExpectEquality(t, len(rep.messages), 0)
}

// the zero value is not a usable controller. NewController() is required to
// start in an accepted mode
func TestZeroValue(t *testing.T) {
	var zero video.Controller
	test.ExpectEquality(t, zero.Mode(), modes.Mode00)
	test.ExpectEquality(t, modes.Mode00.Disposition(), modes.Rejected)

	ctl := video.NewController(&collector{})
	test.ExpectEquality(t, ctl.Mode().Disposition(), modes.Operational)
}
