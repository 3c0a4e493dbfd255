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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/preferences"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.String(), "logging.echo::false\nlogging.max::256\nvideo.reporttag::video\n")
}

func TestEcho(t *testing.T) {
	w := &test.CompareWriter{}
	p, err := preferences.NewPreferences(w)
	test.DemandSuccess(t, err)
	defer logger.SetEcho(nil)

	test.ExpectSuccess(t, p.Set("logging.echo", "true"))
	logger.Log(logger.Allow, "test", "echo on")
	test.ExpectSuccess(t, w.Compare("test: echo on\n"))

	test.ExpectSuccess(t, p.Set("logging.echo", false))
	logger.Log(logger.Allow, "test", "echo off")
	test.ExpectSuccess(t, w.Compare("test: echo on\n"))
}

func TestLogEntries(t *testing.T) {
	p, err := preferences.NewPreferences(nil)
	test.DemandSuccess(t, err)
	defer p.SetDefaults()

	test.ExpectSuccess(t, p.Set("logging.max", 2))
	logger.Clear()
	logger.Log(logger.Allow, "test", "a")
	logger.Log(logger.Allow, "test", "b")
	logger.Log(logger.Allow, "test", "c")
	test.ExpectEquality(t, len(logger.Entries()), 2)

	err = p.Set("logging.max", 0)
	test.ExpectSuccess(t, curated.Has(err, preferences.LogEntriesOutOfRange))
	err = p.Set("logging.max", preferences.MaxLogEntries+1)
	test.ExpectSuccess(t, curated.Has(err, preferences.LogEntriesOutOfRange))
	test.ExpectEquality(t, p.LogEntries.Get(), prefs.Value(2))
}

func TestCommandLine(t *testing.T) {
	p, err := preferences.NewPreferences(nil)
	test.DemandSuccess(t, err)
	defer p.SetDefaults()

	prefs.PushCommandLineStack("video.reporttag::vga; logging.max::64")
	test.ExpectSuccess(t, p.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, p.ReportTag.String(), "vga")
	test.ExpectEquality(t, p.LogEntries.Get(), prefs.Value(64))
}
