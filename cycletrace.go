// This file is part of Cycletrace.
//
// Cycletrace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cycletrace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cycletrace.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/cycletrace/catalogue"
	"github.com/jetsetilly/cycletrace/logger"
	"github.com/jetsetilly/cycletrace/modalflag"
	"github.com/jetsetilly/cycletrace/paths"
	"github.com/jetsetilly/cycletrace/performance"
	"github.com/jetsetilly/cycletrace/playback"
	"github.com/jetsetilly/cycletrace/prefs"
	"github.com/jetsetilly/cycletrace/script"
	"github.com/jetsetilly/cycletrace/statsview"
	"github.com/jetsetilly/cycletrace/terminal"
	"github.com/jetsetilly/cycletrace/terminal/colorterm"
	"github.com/jetsetilly/cycletrace/terminal/plainterm"
	"github.com/jetsetilly/cycletrace/trace"
	"github.com/jetsetilly/cycletrace/version"
	"github.com/jetsetilly/cycletrace/viewer"
)

// exit values
const (
	exitOK        = 0
	exitArgs      = 10
	exitModeError = 20
)

func main() {
	os.Exit(launch(context.Background(), os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the exit
// value for the program
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("VIEW", "SCRIPT", "LIST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "VIEW":
		err = view(ctx, md, output)
	case "SCRIPT":
		err = runScript(ctx, md, output)
	case "LIST":
		err = list(ctx, md, output)
	case "VERSION":
		fmt.Fprintln(output, version.Current())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

func view(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the trace argument can be a file or a http/https URL")

	speed := md.AddString("speed", "", "playback speed: SLOWEST, SLOW, NORMAL, FAST, FASTER, MAX or milliseconds")
	layout := md.AddString("layout", "", "display layout: DASHBOARD, THIN")
	plain := md.AddBool("plain", false, "use the plain terminal even if the color terminal is available")
	autoplay := md.AddBool("autoplay", false, "start playback as soon as the trace is loaded")
	gotoIdx := md.AddInt("goto", -1, "start at the cycle with this index")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences: \"key::value; key::value\"")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(ctx, output)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	term := createTerminal(*plain)
	defer term.CleanUp()

	sched := playback.NewEventScheduler()
	defer sched.End()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return err
	}

	v, err := viewer.NewViewer(term, sched, pth)
	if err != nil {
		return err
	}

	if *speed != "" {
		if err := v.Execute("SPEED " + *speed); err != nil {
			return err
		}
	}
	if *layout != "" {
		if err := v.Execute("LAYOUT " + *layout); err != nil {
			return err
		}
	}

	if len(md.RemainingArgs()) == 1 {
		if err := v.Load(md.GetArg(0)); err != nil {
			return err
		}
	}

	if *gotoIdx >= 0 {
		if err := v.Execute("GOTO " + strconv.Itoa(*gotoIdx)); err != nil {
			return err
		}
	}
	if *autoplay {
		if err := v.Execute("PLAY"); err != nil {
			return err
		}
	}

	return v.Run(ctx)
}

// the color terminal is preferred if it can be initialised
func createTerminal(plain bool) terminal.Terminal {
	if !plain {
		ct := &colorterm.ColorTerminal{}
		err := ct.Initialise()
		if err == nil {
			return ct
		}
		logger.Logf(logger.Allow, "cycletrace", "using plain terminal: %v", err)
	}

	pt := &plainterm.PlainTerminal{}
	_ = pt.Initialise()
	return pt
}

func runScript(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments are the lua script and an optional trace (file or URL)")

	timeout := md.AddDuration("timeout", 0, "stop the script after this duration. zero means no timeout")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run script through profiler: CPU, MEM, TRACE (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output, false)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	var source string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
	case 2:
		source = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	scr := script.NewScript(output)
	defer scr.Close()

	if source != "" {
		snapshots, err := trace.Open(ctx, source)
		if err != nil {
			return err
		}
		scr.Load(snapshots)
	}

	return performance.RunProfiler(prf, "script", func() error {
		return scr.Run(ctx, md.GetArg(0), f)
	})
}

func list(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("the argument is the directory to list. defaults to the current directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	dir := "."
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		dir = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cat, err := catalogue.Scan(ctx, dir)
	if err != nil {
		return err
	}

	return cat.Write(output)
}
