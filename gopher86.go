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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher86/console"
	"github.com/jetsetilly/gopher86/hardware/video"
	"github.com/jetsetilly/gopher86/hardware/video/modes"
	"github.com/jetsetilly/gopher86/logger"
	"github.com/jetsetilly/gopher86/modalflag"
	"github.com/jetsetilly/gopher86/preferences"
	"github.com/jetsetilly/gopher86/prefs"
	"github.com/jetsetilly/gopher86/reporting"
	"github.com/jetsetilly/gopher86/statsview"
	"github.com/jetsetilly/gopher86/terminal"
	"github.com/jetsetilly/gopher86/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch returns the exit value for the process. 10 indicates a problem with
// the command line and 20 a problem in the selected mode.
func launch(args []string, input *os.File, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SET", "PRINT", "TABLE", "MEMVIZ", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = runMode(md, input, output)

	case "SET":
		err = setMode(md, output)

	case "PRINT":
		err = printMode(md, output)

	case "TABLE":
		console.WriteTable(output)

	case "MEMVIZ":
		err = memvizMode(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// session is the collection of types common to all modes that create a video
// controller.
type session struct {
	prefs   *preferences.Preferences
	reports *reporting.Counter
	ctl     *video.Controller
}

// newSession applies the preferences string and the echo flag before creating
// the video controller. the preferences string uses the same format as
// prefs.PushCommandLineStack().
func newSession(prefsString string, echo bool, output io.Writer) (*session, error) {
	p, err := preferences.NewPreferences(output)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(prefsString)
	defer prefs.PopCommandLineStack()

	err = p.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	if echo {
		err = p.Echo.Set(true)
		if err != nil {
			return nil, err
		}
	}

	// reports are always logged. when the log is echoed the reports already
	// reach the output so the Writer is not needed
	procs := reporting.Multi{&reporting.Logger{Tag: p.ReportTag.String()}}
	if !p.Echo.Get().(bool) {
		procs = append(procs, &reporting.Writer{Output: output})
	}
	reports := reporting.NewCounter(procs)

	return &session{
		prefs:   p,
		reports: reports,
		ctl:     video.NewController(reports),
	}, nil
}

func runMode(md *modalflag.Modes, input *os.File, output io.Writer) error {
	md.NewMode()
	prefsString := md.AddString("prefs", "", "preferences. for example, \"logging.max::64; video.reporttag::vga\"")
	echo := md.AddBool("echo", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "run stats server (only available with the statsview build tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(*prefsString, *echo, output)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	pt, err := terminal.NewTerminal(input, os.Stdout)
	if err != nil {
		return err
	}

	con := console.NewConsole(s.ctl, s.reports, output)
	if pt.IsTerminal() {
		warnGeometry(pt, s.ctl, output)
	} else {
		con.Prompt = ""
	}

	err = con.Run(input)
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "console", "session ended with %d errors reported", s.reports.Count())

	return nil
}

// warn if the host terminal is too small to show the active video mode.
func warnGeometry(pt *terminal.Terminal, ctl *video.Controller, output io.Writer) {
	spec := ctl.Spec()
	if !spec.Text {
		return
	}

	g, err := pt.Geometry()
	if err != nil {
		logger.Log(logger.Allow, "terminal", err)
		return
	}

	if !g.Fits(spec.Columns, spec.Rows) {
		fmt.Fprintf(output, "host terminal (%v) is smaller than video mode %v (%dx%d)\n", g, ctl.Mode(), spec.Columns, spec.Rows)
	}
}

func setMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	prefsString := md.AddString("prefs", "", "preferences")
	echo := md.AddBool("echo", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one video mode required for %s mode", md)
	}

	s, err := newSession(*prefsString, *echo, output)
	if err != nil {
		return err
	}

	for _, a := range md.RemainingArgs() {
		m, err := console.ParseMode(a)
		if err != nil {
			return err
		}
		if s.ctl.SetVideoMode(m) {
			fmt.Fprintf(output, "%s: set\n", a)
		} else {
			fmt.Fprintf(output, "%s: refused\n", a)
		}
	}

	fmt.Fprintf(output, "active mode: %v\n", s.ctl)
	fmt.Fprintf(output, "errors reported: %d\n", s.reports.Count())

	return nil
}

func printMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	prefsString := md.AddString("prefs", "", "preferences")
	echo := md.AddBool("echo", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := newSession(*prefsString, *echo, output)
	if err != nil {
		return err
	}

	for _, a := range md.RemainingArgs() {
		s.ctl.PrintText(a)
	}

	fmt.Fprintf(output, "errors reported: %d\n", s.reports.Count())

	return nil
}

// memvizMode writes a graphviz description of the video controller, after
// the requested mode changes, to the named file or to output if no file is
// named.
func memvizMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	out := md.AddString("out", "", "write graph to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// reports are written to output only if the graph is going elsewhere
	var rep reporting.ErrorProcessor = &reporting.Logger{Tag: "video"}
	if *out != "" {
		rep = &reporting.Writer{Output: output}
	}
	reports := reporting.NewCounter(rep)

	ctl := video.NewController(reports)
	for _, a := range md.RemainingArgs() {
		m, err := console.ParseMode(a)
		if err != nil {
			return err
		}
		ctl.SetVideoMode(m)
	}

	spec, _ := modes.Lookup(ctl.Mode())

	w := output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	// the snapshot does not include the reporter, which may lead to the
	// internals of an os.File
	memviz.Map(w, ctl.Snapshot(), &spec)

	if *out != "" {
		fmt.Fprintf(output, "errors reported: %d\n", reports.Count())
	}

	return nil
}
