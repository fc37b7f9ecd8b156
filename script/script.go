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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/decoder"
	"github.com/jetsetilly/cycletrace/logger"
	"github.com/jetsetilly/cycletrace/playback"
	"github.com/jetsetilly/cycletrace/presenter"
	"github.com/jetsetilly/cycletrace/trace"
	lua "github.com/yuin/gopher-lua"
)

// ScriptError is the pattern used for errors raised by the Lua VM.
const ScriptError = "script: %v"

// Script is a Lua VM connected to a playback Controller.
type Script struct {
	L     *lua.LState
	ctrl  *playback.Controller
	sched *playback.ManualScheduler
	pres  *presenter.Presenter
	out   io.Writer

	// context for loading traces. replaced during Run()
	ctx context.Context
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() and show() functions is written to out. The Close()
// function should be called when the Script is no longer required.
func NewScript(out io.Writer) *Script {
	scr := &Script{
		L:     lua.NewState(),
		sched: playback.NewManualScheduler(),
		pres:  presenter.NewPresenter(presenter.Thin, false),
		out:   out,
		ctx:   context.Background(),
	}
	scr.ctrl = playback.NewController(scr.sched)
	scr.register()
	return scr
}

// Close the Lua VM.
func (scr *Script) Close() {
	scr.L.Close()
}

// Controller returns the Controller driven by the script.
func (scr *Script) Controller() *playback.Controller {
	return scr.ctrl
}

// Load a trace into the Controller.
func (scr *Script) Load(snapshots []trace.Snapshot) {
	scr.ctrl.Load(snapshots)
}

// Run executes the Lua source. The name is used in error messages. Playback
// is paused when the script ends.
func (scr *Script) Run(ctx context.Context, name string, r io.Reader) error {
	fn, err := scr.L.Load(r, name)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	scr.ctx = ctx
	scr.L.SetContext(ctx)
	defer func() {
		scr.L.RemoveContext()
		scr.ctx = context.Background()
		scr.ctrl.Pause()
	}()

	logger.Logf(logger.Allow, "script", "running %s", name)

	scr.L.Push(fn)
	if err := scr.L.PCall(0, lua.MultRet, nil); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	logger.Logf(logger.Allow, "script", "finished %s", name)

	return nil
}

func (scr *Script) register() {
	L := scr.L

	// the standard next() function is used when next() is called with a table
	builtinNext, _ := L.GetGlobal("next").(*lua.LFunction)

	funcs := map[string]lua.LGFunction{
		"first":  scr.navigate(scr.ctrl.First),
		"last":   scr.navigate(scr.ctrl.Last),
		"prev":   scr.navigate(scr.ctrl.Previous),
		"play":   scr.action(scr.ctrl.Play),
		"pause":  scr.action(scr.ctrl.Pause),
		"toggle": scr.action(scr.ctrl.Toggle),
		"reset":  scr.action(scr.ctrl.Reset),

		"next": func(L *lua.LState) int {
			if builtinNext != nil && L.GetTop() > 0 && L.Get(1).Type() == lua.LTTable {
				return builtinNext.GFunction(L)
			}
			scr.ctrl.Pause()
			scr.ctrl.Next()
			return 0
		},

		"seek": scr.seek,
		"goto": scr.seek,

		"speed": func(L *lua.LState) int {
			if L.GetTop() > 0 {
				ms := L.CheckInt(1)
				if ms < 0 {
					L.ArgError(1, "speed cannot be negative")
				}
				scr.ctrl.SetSpeed(time.Duration(ms) * time.Millisecond)
			}
			L.Push(lua.LNumber(scr.ctrl.Speed().Milliseconds()))
			return 1
		},

		"position": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.ctrl.Position()))
			return 1
		},

		"length": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.ctrl.Len()))
			return 1
		},

		"playing": func(L *lua.LState) int {
			L.Push(lua.LBool(scr.ctrl.Playing()))
			return 1
		},

		"cycle": func(L *lua.LState) int {
			s := scr.ctrl.Current()
			if s == nil {
				L.Push(lua.LNil)
			} else {
				L.Push(lua.LNumber(s.CycleNumber()))
			}
			return 1
		},

		"mnemonic": func(L *lua.LState) int {
			in, ok := decoder.DecodeInstruction(scr.ctrl.Current())
			if !ok {
				L.Push(lua.LNil)
			} else {
				L.Push(lua.LString(in.Mnemonic))
			}
			return 1
		},

		"flags": func(L *lua.LState) int {
			var raw trace.Value
			if s := scr.ctrl.Current(); s != nil {
				raw = s.Flags
			}
			tbl := L.NewTable()
			for _, f := range decoder.DecodeFlags(raw) {
				tbl.RawSetString(f.Name, lua.LNumber(f.Bit()))
			}
			L.Push(tbl)
			return 1
		},

		"history": func(L *lua.LState) int {
			tbl := L.NewTable()
			for e := range scr.ctrl.History().Entries() {
				entry := L.NewTable()
				entry.RawSetString("cycle", lua.LNumber(e.Cycle))
				entry.RawSetString("instruction", lua.LString(e.Instruction))
				entry.RawSetString("current", lua.LBool(e.IsCurrent))
				tbl.Append(entry)
			}
			L.Push(tbl)
			return 1
		},

		"run": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.sched.RunUntilIdle(L.OptInt(1, 0))))
			return 1
		},

		"tick": func(L *lua.LState) int {
			L.Push(lua.LNumber(scr.sched.Tick()))
			return 1
		},

		"advance": func(L *lua.LState) int {
			ms := L.CheckInt(1)
			L.Push(lua.LNumber(scr.sched.Advance(time.Duration(ms) * time.Millisecond)))
			return 1
		},

		"load": func(L *lua.LState) int {
			snapshots, err := trace.Open(scr.ctx, L.CheckString(1))
			if err != nil {
				L.RaiseError("%v", err)
				return 0
			}
			scr.ctrl.Load(snapshots)
			L.Push(lua.LNumber(scr.ctrl.Len()))
			return 1
		},

		"show": func(L *lua.LState) int {
			f := presenter.Frame{
				Index:    scr.ctrl.Position(),
				Total:    scr.ctrl.Len(),
				Snapshot: scr.ctrl.Current(),
				History:  scr.ctrl.History(),
			}
			if err := scr.pres.Render(scr.out, f); err != nil {
				L.RaiseError("%v", err)
			}
			return 0
		},

		"print": func(L *lua.LState) int {
			args := make([]string, L.GetTop())
			for i := range args {
				args[i] = L.ToStringMeta(L.Get(i + 1)).String()
			}
			fmt.Fprintln(scr.out, strings.Join(args, "\t"))
			return 0
		},
	}

	for name, f := range funcs {
		L.SetGlobal(name, L.NewFunction(f))
	}
}

// manual navigation pauses playback first
func (scr *Script) navigate(f func()) lua.LGFunction {
	return func(L *lua.LState) int {
		scr.ctrl.Pause()
		f()
		return 0
	}
}

func (scr *Script) action(f func()) lua.LGFunction {
	return func(L *lua.LState) int {
		f()
		return 0
	}
}

func (scr *Script) seek(L *lua.LState) int {
	idx := L.CheckInt(1)
	scr.ctrl.Pause()
	scr.ctrl.Goto(idx)
	return 0
}
