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

package prefs_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/test"
)

func TestBool(t *testing.T) {
	var p prefs.Bool
	test.ExpectEquality(t, p.Get(), prefs.Value(false))

	test.ExpectSuccess(t, p.Set(true))
	test.ExpectEquality(t, p.String(), "true")

	test.ExpectSuccess(t, p.Set("TRUE"))
	test.ExpectEquality(t, p.Get(), prefs.Value(true))

	test.ExpectSuccess(t, p.Set("foo"))
	test.ExpectEquality(t, p.Get(), prefs.Value(false))

	test.ExpectFailure(t, p.Set(10))
}

func TestInt(t *testing.T) {
	var p prefs.Int
	test.ExpectEquality(t, p.String(), "0")

	test.ExpectSuccess(t, p.Set(64))
	test.ExpectEquality(t, p.Get(), prefs.Value(64))

	test.ExpectSuccess(t, p.Set(" 128 "))
	test.ExpectEquality(t, p.String(), "128")

	test.ExpectFailure(t, p.Set("abc"))
	test.ExpectEquality(t, p.String(), "128")

	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.String(), "0")
}

func TestString(t *testing.T) {
	var p prefs.String
	test.ExpectEquality(t, p.String(), "")

	test.ExpectSuccess(t, p.Set("video"))
	test.ExpectEquality(t, p.String(), "video")

	p.SetMaxLen(3)
	test.ExpectEquality(t, p.String(), "vid")

	test.ExpectSuccess(t, p.Set("console"))
	test.ExpectEquality(t, p.String(), "con")

	// multi-byte runes are never split
	test.ExpectSuccess(t, p.Set("aéb"))
	test.ExpectEquality(t, p.String(), "aé")
	test.ExpectSuccess(t, p.Set("日本"))
	test.ExpectEquality(t, p.String(), "日")

	p.SetMaxLen(0)
	test.ExpectSuccess(t, p.Set("日本語"))
	test.ExpectEquality(t, p.String(), "日本語")
	p.SetMaxLen(4)
	test.ExpectEquality(t, p.String(), "日")
	test.ExpectSuccess(t, utf8.ValidString(p.String()))
}

func TestHooks(t *testing.T) {
	var p prefs.Int
	var post int

	p.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	p.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})

	test.ExpectSuccess(t, p.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook vetoes the new value. the post hook is not called
	test.ExpectFailure(t, p.Set(-1))
	test.ExpectEquality(t, p.String(), "10")
	test.ExpectEquality(t, post, 10)
}

func TestGroup(t *testing.T) {
	var echo prefs.Bool
	var maxEntries prefs.Int

	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("logging.echo", &echo))
	test.ExpectSuccess(t, g.Add("logging.max", &maxEntries))

	err := g.Add("logging.max", &maxEntries)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicatePref))

	test.ExpectSuccess(t, g.Set("logging.max", "32"))
	v, err := g.Get("logging.max")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, prefs.Value(32))

	err = g.Set("logging.foo", "32")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownPref))
	_, err = g.Get("logging.foo")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownPref))

	err = g.Set("logging.max", "abc")
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))

	test.ExpectEquality(t, g.String(), "logging.echo::false\nlogging.max::32\n")

	test.ExpectSuccess(t, g.Reset())
	test.ExpectEquality(t, g.String(), "logging.echo::false\nlogging.max::0\n")
}

func TestGroupCommandLine(t *testing.T) {
	var echo prefs.Bool
	var maxEntries prefs.Int

	g := prefs.NewGroup()
	test.ExpectSuccess(t, g.Add("logging.echo", &echo))
	test.ExpectSuccess(t, g.Add("logging.max", &maxEntries))

	prefs.PushCommandLineStack("logging.echo::true; logging.max::16; video.unused::1")
	test.ExpectSuccess(t, g.ApplyCommandLine())
	test.ExpectEquality(t, echo.Get(), prefs.Value(true))
	test.ExpectEquality(t, maxEntries.Get(), prefs.Value(16))

	// the unused preference remains in the command line group
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "video.unused::1")
}
