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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and a list of values in the same
// way as fmt.Errorf().
//
// The pattern is remembered by the error and can be tested for with the Is()
// and Has() functions. For this reason, patterns that are to be tested for
// should be stored as exported string constants. For example, the video
// package exports:
//
//	const ModeNotSupported = "video mode not supported: %v"
//
// and a caller can check whether an error was created with that pattern:
//
//	if curated.Is(err, video.ModeNotSupported) {
//		...
//	}
//
// Has() is similar but looks for the pattern anywhere in the error chain. A
// chain is formed when a curated error is one of the values of another
// curated error.
//
//	e := curated.Errorf(video.ModeNotSupported, modes.Mode00)
//	f := curated.Errorf("console: %v", e)
//
//	curated.Is(f, video.ModeNotSupported)  // false
//	curated.Has(f, video.ModeNotSupported) // true
//
// The Error() implementation normalises the message. Adjacent parts of the
// chain that are identical are reduced to a single part, where parts are
// separated by the sub-string ": ". This means that a function can wrap an
// error with its own context without worrying whether the callee has already
// done so:
//
//	video: video: mode not supported
//
// is printed as:
//
//	video: mode not supported
package curated
