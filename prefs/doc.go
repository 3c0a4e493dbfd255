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

// Package prefs implements the preference value types used by the rest of the
// application. Each type can be set from a Go value of a suitable type or
// from a string, which means values can be taken directly from the command
// line.
//
// Callbacks can be registered with SetHookPre() and SetHookPost(). A pre hook
// can refuse the new value by returning an error.
//
// Preferences are collected into a Group and addressed by key. A Group can be
// populated from the command line stack with ApplyCommandLine().
package prefs
