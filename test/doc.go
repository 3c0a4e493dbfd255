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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand*() functions use t.Fatalf() and should be used
// when the result is needed for the rest of the test to be meaningful.
//
// Success and failure are judged by the type of the value being tested:
//
//	bool  -> true is success, false is failure
//	error -> nil is success, non-nil is failure
//	nil   -> success
//
// Note that an untyped nil is considered a success. This is because of how
// errors usually work in Go, with nil indicating no error.
//
// All functions accept an optional list of tags which are prepended to the
// failure message. Tags are useful when testing inside a loop.
//
// The CompareWriter type implements the io.Writer interface and can be used to
// capture output for later comparison.
package test
