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

package video

import (
	"fmt"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/video/modes"
	"github.com/jetsetilly/gopher86/logger"
)

// Sentinal error patterns. The errors are not returned by the Controller but
// the message that is passed to the Reporter is created with one of these
// patterns.
const (
	ModeNotSupported = "video mode not supported: %v"
	TextNotSupported = "video mode doesn't support text: %v"
)

// Reporter is the error reporting collaborator for the Controller. Messages
// are human readable descriptions of the problem.
//
// ProcessError() is called synchronously and should not panic.
type Reporter interface {
	ProcessError(msg string)
}

// Controller holds the active video mode for the display adapter. The active
// mode can only be changed with SetVideoMode() and is always a mode that has
// been accepted by that function.
//
// A Controller must be created with NewController(). The zero value holds
// mode 00h, which SetVideoMode() would never accept.
type Controller struct {
	// the reporter is supplied by the caller and is not owned by the
	// controller
	reporter Reporter

	mode modes.Mode
}

// NewController is the preferred method of initialisation for the Controller
// type. The controller starts in the default mode.
func NewController(reporter Reporter) *Controller {
	ctl := &Controller{
		reporter: reporter,
	}

	// the default mode is always accepted
	ctl.SetVideoMode(int(modes.Default))

	return ctl
}

func (ctl *Controller) String() string {
	return fmt.Sprintf("%v %v", ctl.mode, ctl.Spec())
}

// Snapshot returns a copy of the controller. The copy has no reporter so any
// message it produces goes to the central logger.
func (ctl *Controller) Snapshot() *Controller {
	return &Controller{
		mode: ctl.mode,
	}
}

// Mode returns the active video mode.
func (ctl *Controller) Mode() modes.Mode {
	return ctl.mode
}

// Spec returns the specification of the active video mode.
func (ctl *Controller) Spec() modes.Spec {
	s, _ := modes.Lookup(ctl.mode)
	return s
}

// SetVideoMode requests a change of the active video mode. Returns true if
// the mode has been adopted. The active mode is unchanged if the request is
// refused.
//
// Only a request for a Rejected mode is passed to the Reporter. Requests for
// Declined and Unrecognised modes are refused silently. The return value
// must be checked in all cases.
func (ctl *Controller) SetVideoMode(requested int) bool {
	m := modes.Mode(requested)

	switch m.Disposition() {
	case modes.Rejected:
		ctl.report(curated.Errorf(ModeNotSupported, m))
		return false

	case modes.Declined:
		return false

	case modes.Operational:
		ctl.mode = m
		logger.Logf(logger.Allow, "video", "mode %v: %v", m, ctl.Spec())
		return true
	}

	// unrecognised mode
	return false
}

// PrintText sends text to the display. The Reporter will be told if the
// active mode does not support text output.
func (ctl *Controller) PrintText(text string) {
	if !supportsTextOutput(ctl.mode) {
		ctl.report(curated.Errorf(TextNotSupported, ctl.mode))
	}
}

// character output has not been implemented for any mode, including the text
// modes.
func supportsTextOutput(_ modes.Mode) bool {
	return false
}

func (ctl *Controller) report(err error) {
	if ctl.reporter == nil {
		logger.Log(logger.Allow, "video", err)
		return
	}
	ctl.reporter.ProcessError(err.Error())
}
