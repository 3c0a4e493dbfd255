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

// Package preferences collates the preference values used by the application.
package preferences

import (
	"io"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/prefs"
)

// the limits for the logging.max preference.
const (
	MinLogEntries = 1
	MaxLogEntries = 1024
)

// Sentinal error patterns.
const (
	LogEntriesOutOfRange = "logging.max must be between %d and %d: %d"
)

// Preferences defines and collates all the preference values used by the
// application.
type Preferences struct {
	group *prefs.Group

	// write log entries to the echo writer as they are made
	Echo prefs.Bool

	// maximum number of entries kept by the central logger
	LogEntries prefs.Int

	// the tag used for log entries made by the video error reporter
	ReportTag prefs.String
}

func (p *Preferences) String() string {
	return p.group.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The echo writer is used when the Echo preference is true.
func NewPreferences(echo io.Writer) (*Preferences, error) {
	p := &Preferences{
		group: prefs.NewGroup(),
	}

	p.Echo.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(echo)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	p.LogEntries.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < MinLogEntries || n > MaxLogEntries {
			return curated.Errorf(LogEntriesOutOfRange, MinLogEntries, MaxLogEntries, n)
		}
		return nil
	})
	p.LogEntries.SetHookPost(func(v prefs.Value) error {
		logger.SetMaxEntries(v.(int))
		return nil
	})

	p.ReportTag.SetMaxLen(16)

	if err := p.group.Add("logging.echo", &p.Echo); err != nil {
		return nil, err
	}
	if err := p.group.Add("logging.max", &p.LogEntries); err != nil {
		return nil, err
	}
	if err := p.group.Add("video.reporttag", &p.ReportTag); err != nil {
		return nil, err
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.Echo.Set(false); err != nil {
		return err
	}
	if err := p.LogEntries.Set(256); err != nil {
		return err
	}
	if err := p.ReportTag.Set("video"); err != nil {
		return err
	}
	return nil
}

// Set a preference by key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}

// ApplyCommandLine sets preferences from the current command line group.
func (p *Preferences) ApplyCommandLine() error {
	return p.group.ApplyCommandLine()
}
