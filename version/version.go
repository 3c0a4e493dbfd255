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

// Package version reports the version of the application. The version number
// is set at link time by the makefile:
//
//	-ldflags "-X github.com/jetsetilly/gopher86/version.number=v0.1.0"
//
// Revision information is taken from the build information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher86"

// set with the -X linker flag. empty if the project was not built with the
// makefile
var number string

var info struct {
	once     sync.Once
	version  string
	revision string
}

// Version returns the version string, the revision string and whether this is
// a numbered release version.
//
// The version string is "unreleased" if the project was built without the
// makefile but with vcs information, and "local" if there is no vcs
// information either. The revision is suffixed with "+dirty" if the source
// had been modified since the last commit.
func Version() (string, string, bool) {
	info.once.Do(func() {
		info.version, info.revision = fromBuildInfo(number)
	})
	return info.version, info.revision, number != "" && info.version == number
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var revision string
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case revision == "":
		revision = "no revision information"
	case modified:
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}

// String returns a single line describing the version.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
