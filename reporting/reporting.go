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

// Package reporting contains implementations of the video.Reporter interface.
// They can be combined, for example:
//
//	rep := reporting.NewCounter(&reporting.Logger{Tag: "video"})
//	ctl := video.NewController(rep)
package reporting

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher86/logger"
)

// ErrorProcessor is satisfied by every type in this package. It matches the
// video.Reporter interface.
type ErrorProcessor interface {
	ProcessError(msg string)
}

// Logger forwards error messages to the central logger.
type Logger struct {
	// the tag used for the log entry. an empty tag defaults to "error"
	Tag string

	// a nil Permission is treated as logger.Allow
	Permission logger.Permission
}

// ProcessError implements the video.Reporter interface.
func (l *Logger) ProcessError(msg string) {
	tag := l.Tag
	if tag == "" {
		tag = "error"
	}
	perm := l.Permission
	if perm == nil {
		perm = logger.Allow
	}
	logger.Log(perm, tag, msg)
}

// Writer writes error messages to an io.Writer, one message per line.
type Writer struct {
	Output io.Writer
}

// ProcessError implements the video.Reporter interface.
func (w *Writer) ProcessError(msg string) {
	if w.Output == nil {
		return
	}
	msg = strings.TrimRight(msg, "\n")
	_, _ = io.WriteString(w.Output, fmt.Sprintf("%s\n", msg))
}

// Counter counts the messages it receives before passing them on to the next
// ErrorProcessor, if there is one.
type Counter struct {
	next  ErrorProcessor
	count atomic.Int64
}

// NewCounter is the preferred method of initialisation for the Counter type.
// The next argument can be nil.
func NewCounter(next ErrorProcessor) *Counter {
	return &Counter{next: next}
}

// ProcessError implements the video.Reporter interface.
func (c *Counter) ProcessError(msg string) {
	c.count.Add(1)
	if c.next != nil {
		c.next.ProcessError(msg)
	}
}

// Count returns the number of messages received.
func (c *Counter) Count() int {
	return int(c.count.Load())
}

// Reset the count to zero.
func (c *Counter) Reset() {
	c.count.Store(0)
}

// Multi passes every message to each of its members in turn.
type Multi []ErrorProcessor

// ProcessError implements the video.Reporter interface.
func (m Multi) ProcessError(msg string) {
	for _, p := range m {
		if p != nil {
			p.ProcessError(msg)
		}
	}
}
