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
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/logger"
	"github.com/jetsetilly/cycletrace/terminal"
)

// eventSource is implemented by schedulers that deliver due functions on a
// channel. the playback.EventScheduler for example
type eventSource interface {
	Events() <-chan func()
}

type input struct {
	line string
	err  error
}

// Run the viewer until the QUIT command, until the context is cancelled, or
// until the terminal reaches the end of its input and playback has stopped.
func (v *Viewer) Run(ctx context.Context) error {
	v.ctx = ctx

	var events <-chan func()
	if es, ok := v.sched.(eventSource); ok {
		events = es.Events()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	// the terminal is read on its own goroutine. a prompt is sent every
	// time the loop is ready for another command
	prompts := make(chan terminal.Prompt)
	inputs := make(chan input)
	done := make(chan bool)
	defer close(done)

	go func() {
		for p := range prompts {
			s, err := v.term.TermRead(p)
			select {
			case inputs <- input{line: s, err: err}:
			case <-done:
				return
			}
		}
	}()
	defer close(prompts)

	v.render()

	var reading bool
	var eof bool

	for !v.quit {
		if eof {
			if !v.ctrl.Playing() {
				return nil
			}
		} else if !reading {
			prompts <- v.prompt()
			reading = true
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case f := <-events:
			f()

		case s := <-sig:
			if s == syscall.SIGTERM {
				return nil
			}
			v.interrupt()

		case in := <-inputs:
			reading = false

			if in.err != nil {
				switch {
				case errors.Is(in.err, io.EOF):
					eof = true
				case curated.Is(in.err, terminal.UserInterrupt):
					v.interrupt()
				default:
					return in.err
				}
				continue
			}

			if err := v.Execute(in.line); err != nil {
				logger.Logf(logger.Allow, "viewer", "%s: %v", in.line, err)
				v.term.TermPrintLine(terminal.StyleError, err.Error())
			}
		}
	}

	return nil
}

// an interrupt stops playback. if playback is already stopped the viewer
// will quit
func (v *Viewer) interrupt() {
	if v.ctrl.Playing() {
		v.ctrl.Pause()
		v.printLine(terminal.StyleFeedback, "playback interrupted")
		return
	}
	v.quit = true
}
