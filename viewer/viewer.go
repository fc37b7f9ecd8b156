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

package viewer

import (
	"context"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/cycletrace/catalogue"
	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/logger"
	"github.com/jetsetilly/cycletrace/paths"
	"github.com/jetsetilly/cycletrace/playback"
	"github.com/jetsetilly/cycletrace/presenter"
	"github.com/jetsetilly/cycletrace/terminal"
	"github.com/jetsetilly/cycletrace/trace"
	"golang.design/x/clipboard"
)

// number of log entries printed by the LOG command if no number is given
const defaultLogTail = 10

// Viewer connects a playback Controller to a terminal.
type Viewer struct {
	term  terminal.Terminal
	sched playback.Scheduler
	ctrl  *playback.Controller
	pres  *presenter.Presenter

	Prefs *Preferences

	// context for loading. replaced by the context given to Run()
	ctx context.Context

	// the source of the most recently loaded trace
	source string

	// clipboard is initialised the first time it is used
	clipboardReady bool

	quit bool
}

// NewViewer is the preferred method of initialisation for the Viewer type.
//
// The preferences are loaded from the prefsFile, which is created if it does
// not exist.
func NewViewer(term terminal.Terminal, sched playback.Scheduler, prefsFile string) (*Viewer, error) {
	v := &Viewer{
		term:  term,
		sched: sched,
		ctrl:  playback.NewController(sched),
		pres:  presenter.NewPresenter(presenter.Dashboard, true),
		ctx:   context.Background(),
	}

	var err error
	v.Prefs, err = newPreferences(v, prefsFile)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	v.ctrl.Subscribe(func(_ int, _ *trace.Snapshot) {
		v.render()
	})

	v.ctrl.SubscribeState(func(state playback.PlayState) {
		logger.Logf(logger.Allow, "viewer", "playback %s", state)
	})

	return v, nil
}

// Controller returns the playback Controller used by the viewer.
func (v *Viewer) Controller() *playback.Controller {
	return v.ctrl
}

// Quitting returns true if the QUIT command has been executed.
func (v *Viewer) Quitting() bool {
	return v.quit
}

// Load a trace from a file or URL. The current trace is kept if the new
// trace cannot be loaded.
func (v *Viewer) Load(source string) error {
	snapshots, err := trace.Open(v.ctx, source)
	if err != nil {
		logger.Logf(logger.Allow, "viewer", "load failed: %v", err)
		return err
	}
	v.source = source
	v.ctrl.Load(snapshots)
	return nil
}

func (v *Viewer) frame() presenter.Frame {
	return presenter.Frame{
		Index:    v.ctrl.Position(),
		Total:    v.ctrl.Len(),
		Snapshot: v.ctrl.Current(),
		History:  v.ctrl.History(),
	}
}

func (v *Viewer) render() {
	var b strings.Builder
	if err := v.pres.Render(&b, v.frame()); err != nil {
		v.term.TermPrintLine(terminal.StyleError, err.Error())
		return
	}
	v.term.TermClear()
	v.printBlock(terminal.StyleFrame, b.String())
}

// print multi-line output as a single call to TermPrintLine()
func (v *Viewer) printBlock(style terminal.Style, s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	v.term.TermPrintLine(style, s)
}

func (v *Viewer) printLine(style terminal.Style, format string, args ...any) {
	v.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

func (v *Viewer) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Position: v.ctrl.Position(),
		Total:    v.ctrl.Len(),
		Playing:  v.ctrl.Playing(),
	}
	if v.source != "" {
		p.Content = catalogue.DisplayName(path.Base(v.source))
	}
	return p
}

// Execute a single command line. An empty line is not an error.
func (v *Viewer) Execute(line string) error {
	cmd, args, err := parseCommand(line)
	if err != nil {
		return err
	}

	switch cmd.name {
	case "":
		return nil

	case cmdFirst:
		v.ctrl.Pause()
		v.ctrl.First()

	case cmdPrevious:
		v.ctrl.Pause()
		v.ctrl.Previous()

	case cmdNext:
		v.ctrl.Pause()
		v.ctrl.Next()

	case cmdLast:
		v.ctrl.Pause()
		v.ctrl.Last()

	case cmdGoto:
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return curated.Errorf(Usage, cmd.usage)
		}
		v.ctrl.Pause()
		v.ctrl.Goto(idx)

	case cmdPlay:
		v.ctrl.Play()

	case cmdPause:
		v.ctrl.Pause()

	case cmdToggle:
		v.ctrl.Toggle()

	case cmdSpeed:
		if len(args) == 0 {
			v.printLine(terminal.StyleFeedback, "speed: %s", SpeedName(v.ctrl.Speed()))
			return nil
		}
		d, err := ParseSpeed(args[0])
		if err != nil {
			return err
		}
		if err := v.Prefs.Speed.Set(d); err != nil {
			return err
		}

	case cmdReset:
		v.ctrl.Pause()
		v.ctrl.First()

	case cmdLoad:
		return v.Load(args[0])

	case cmdLayout:
		if len(args) == 0 {
			v.printLine(terminal.StyleFeedback, "layout: %s", v.pres.Layout)
			return nil
		}
		if err := v.Prefs.Layout.Set(strings.ToUpper(args[0])); err != nil {
			return err
		}
		v.render()

	case cmdHistory:
		var b strings.Builder
		if err := v.pres.RenderHistory(&b, v.ctrl.History()); err != nil {
			return err
		}
		v.printBlock(terminal.StyleFeedback, b.String())

	case cmdLog:
		n := defaultLogTail
		if len(args) > 0 {
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return curated.Errorf(Usage, cmd.usage)
			}
		}
		var b strings.Builder
		logger.Tail(&b, n)
		v.printBlock(terminal.StyleLog, b.String())

	case cmdCopy:
		return v.copyToClipboard()

	case cmdMemviz:
		fn := ""
		if len(args) > 0 {
			fn = args[0]
		}
		return v.memviz(fn)

	case cmdPrefs:
		if len(args) == 0 {
			v.printBlock(terminal.StyleFeedback, v.Prefs.String())
			return nil
		}
		switch strings.ToUpper(args[0]) {
		case "SAVE":
			if err := v.Prefs.save(); err != nil {
				return err
			}
			v.printLine(terminal.StyleFeedback, "preferences saved")
		case "LOAD":
			if err := v.Prefs.load(); err != nil {
				return err
			}
			v.printLine(terminal.StyleFeedback, "preferences loaded")
		default:
			return curated.Errorf(Usage, cmd.usage)
		}

	case cmdHelp:
		return v.help(args)

	case cmdQuit:
		v.ctrl.Pause()
		v.quit = true
	}

	return nil
}

func (v *Viewer) help(args []string) error {
	if len(args) == 0 {
		var b strings.Builder
		for _, c := range commands {
			fmt.Fprintf(&b, "%-10s %s\n", c.name, help[c.name])
		}
		v.printBlock(terminal.StyleHelp, b.String())
		return nil
	}

	cmd, err := lookupCommand(args[0])
	if err != nil {
		return err
	}
	v.printLine(terminal.StyleHelp, "%s\n  %s", cmd.usage, help[cmd.name])
	return nil
}

// the clipboard receives the current frame without colour
func (v *Viewer) copyToClipboard() error {
	if !v.clipboardReady {
		if err := clipboard.Init(); err != nil {
			return curated.Errorf("viewer: clipboard: %v", err)
		}
		v.clipboardReady = true
	}

	var b strings.Builder
	p := presenter.NewPresenter(v.pres.Layout, false)
	if err := p.Render(&b, v.frame()); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(b.String()))

	v.printLine(terminal.StyleFeedback, "cycle %d copied to clipboard", v.ctrl.Position())
	return nil
}

// memviz writes a graphviz representation of the current snapshot. if the
// filename is empty a unique filename is created
func (v *Viewer) memviz(fn string) error {
	s := v.ctrl.Current()
	if s == nil {
		return curated.Errorf("viewer: memviz: %s", presenter.NoTrace)
	}

	if fn == "" {
		fn = paths.UniqueFilename("memviz", fmt.Sprintf("cycle%d", s.CycleNumber()), "dot")
	}

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("viewer: memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, s)

	v.printLine(terminal.StyleFeedback, "snapshot written to %s", fn)
	return nil
}
