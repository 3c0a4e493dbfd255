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

// Package video emulates the mode handling of a PC display adapter. The
// Controller type tracks the active video mode and validates requests to
// change it against the capability table in the modes package.
//
// Problems are not returned as errors. They are passed as a message to the
// Reporter supplied when the Controller is created, and the emulation
// continues. SetVideoMode() additionally returns false when a request is
// refused, whether or not the Reporter was told about it.
//
// The Controller does not render anything. Drawing and the programming of
// adapter registers happen elsewhere, if at all.
package video
