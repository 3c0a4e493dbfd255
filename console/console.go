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

// Package console is a line based interface to the video controller. Commands
// are read one per line and the result is written to the output.
//
//	MODE <n>     request a video mode. n can be decimal, 0x13 or 13h
//	PRINT <text> send text to the display
//	STATE        show the active mode
//	TABLE        list the recognised video modes
//	LOG [n]      show the last n entries of the log
//	HELP         list commands
//	QUIT         end the session
//
// Commands are case insensitive.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
	"github.com/jetsetilly/gopher86/hardware/video"
	"github.com/jetsetilly/gopher86/logger"
)

// Sentinal error patterns.
const (
	UnknownCommand = "console: unknown command: %s"
	InvalidMode    = "console: invalid mode: %s"
	MissingArgs    = "console: %s requires an argument"
)

// the number of log entries shown by LOG when no argument is given
const defaultLogTail = 10

// Counter is satisfied by types that count the number of errors reported by
// the controller. The count is shown after every command that causes a
// report.
type Counter interface {
	Count() int
}

// Console executes commands for a video controller.
type Console struct {
	ctl     *video.Controller
	reports Counter
	output  io.Writer

	// the prompt is written before every line is read. no prompt if empty
	Prompt string
}

// NewConsole is the preferred method of initialisation for the Console type.
// The reports argument can be nil.
func NewConsole(ctl *video.Controller, reports Counter, output io.Writer) *Console {
	return &Console{
		ctl:     ctl,
		reports: reports,
		output:  output,
		Prompt:  "> ",
	}
}

// Run reads and executes commands from input until QUIT or the end of input.
// Errors in commands are written to the output and do not end the session.
func (con *Console) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)

	for {
		if con.Prompt != "" {
			io.WriteString(con.output, con.Prompt)
		}

		if !scanner.Scan() {
			break // for loop
		}

		quit, err := con.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(con.output, "* %v\n", err)
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}

// Execute a single command. Returns true if the command was QUIT.
func (con *Console) Execute(line string) (bool, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}

	before := con.count()

	switch cmd := strings.ToUpper(tokens[0]); cmd {
	case "QUIT":
		return true, nil

	case "HELP":
		io.WriteString(con.output, help)

	case "MODE":
		if len(tokens) < 2 {
			return false, curated.Errorf(MissingArgs, cmd)
		}
		m, err := ParseMode(tokens[1])
		if err != nil {
			return false, err
		}
		if con.ctl.SetVideoMode(m) {
			fmt.Fprintf(con.output, "mode set: %v\n", con.ctl)
		} else {
			fmt.Fprintf(con.output, "mode refused: active mode is %v\n", con.ctl.Mode())
		}

	case "PRINT":
		// the text is everything after the command, with the spacing intact
		text := strings.TrimSpace(line)
		text = strings.TrimSpace(text[len(tokens[0]):])
		con.ctl.PrintText(text)

	case "STATE":
		fmt.Fprintf(con.output, "%v\n", con.ctl)

	case "TABLE":
		WriteTable(con.output)

	case "LOG":
		n := defaultLogTail
		if len(tokens) > 1 {
			var err error
			n, err = strconv.Atoi(tokens[1])
			if err != nil {
				return false, curated.Errorf("console: LOG: %v", err)
			}
		}
		logger.Tail(con.output, n)

	default:
		return false, curated.Errorf(UnknownCommand, tokens[0])
	}

	if after := con.count(); after > before {
		fmt.Fprintf(con.output, "errors reported: %d\n", after-before)
	}

	return false, nil
}

func (con *Console) count() int {
	if con.reports == nil {
		return 0
	}
	return con.reports.Count()
}

// ParseMode converts a string to a mode number. Decimal, hexadecimal with a
// 0x prefix and hexadecimal with an h suffix are accepted.
func ParseMode(s string) (int, error) {
	base := 0
	n := s
	if strings.HasSuffix(strings.ToLower(s), "h") {
		base = 16
		n = s[:len(s)-1]
	}

	v, err := strconv.ParseInt(n, base, strconv.IntSize)
	if err != nil {
		return 0, curated.Errorf(InvalidMode, s)
	}

	return int(v), nil
}

const help = `MODE <n>     request a video mode. n can be decimal, 0x13 or 13h
PRINT <text> send text to the display
STATE        show the active mode
TABLE        list the recognised video modes
LOG [n]      show the last n entries of the log
HELP         list commands
QUIT         end the session
`
