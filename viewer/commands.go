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
	"errors"
	"strings"

	"github.com/beevik/prefixtree"
	"github.com/jetsetilly/cycletrace/curated"
)

// viewer keywords
const (
	cmdFirst    = "FIRST"
	cmdPrevious = "PREVIOUS"
	cmdNext     = "NEXT"
	cmdLast     = "LAST"
	cmdGoto     = "GOTO"

	cmdPlay   = "PLAY"
	cmdPause  = "PAUSE"
	cmdToggle = "TOGGLE"
	cmdSpeed  = "SPEED"
	cmdReset  = "RESET"

	cmdLoad    = "LOAD"
	cmdLayout  = "LAYOUT"
	cmdHistory = "HISTORY"
	cmdLog     = "LOG"
	cmdCopy    = "COPY"
	cmdMemviz  = "MEMVIZ"
	cmdPrefs   = "PREFS"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

type command struct {
	name    string
	usage   string
	minArgs int
	maxArgs int
}

// commands in the order they are listed by HELP
var commands = []command{
	{name: cmdFirst, usage: cmdFirst},
	{name: cmdPrevious, usage: cmdPrevious},
	{name: cmdNext, usage: cmdNext},
	{name: cmdLast, usage: cmdLast},
	{name: cmdGoto, usage: "GOTO <index>", minArgs: 1, maxArgs: 1},
	{name: cmdPlay, usage: cmdPlay},
	{name: cmdPause, usage: cmdPause},
	{name: cmdToggle, usage: cmdToggle},
	{name: cmdSpeed, usage: "SPEED [SLOWEST|SLOW|NORMAL|FAST|FASTER|MAX|<ms>]", maxArgs: 1},
	{name: cmdReset, usage: cmdReset},
	{name: cmdLoad, usage: "LOAD <file|url>", minArgs: 1, maxArgs: 1},
	{name: cmdLayout, usage: "LAYOUT [DASHBOARD|THIN]", maxArgs: 1},
	{name: cmdHistory, usage: cmdHistory},
	{name: cmdLog, usage: "LOG [<n>]", maxArgs: 1},
	{name: cmdCopy, usage: cmdCopy},
	{name: cmdMemviz, usage: "MEMVIZ [<file>]", maxArgs: 1},
	{name: cmdPrefs, usage: "PREFS [SAVE|LOAD]", maxArgs: 1},
	{name: cmdHelp, usage: "HELP [<command>]", maxArgs: 1},
	{name: cmdQuit, usage: cmdQuit},
}

var help = map[string]string{
	cmdFirst:    "Move to the first cycle of the trace",
	cmdPrevious: "Move back one cycle",
	cmdNext:     "Move forward one cycle",
	cmdLast:     "Move to the last cycle of the trace",
	cmdGoto:     "Move to the cycle at the index. Out of range indexes are clamped",
	cmdPlay:     "Start automatic playback",
	cmdPause:    "Stop automatic playback",
	cmdToggle:   "Start or stop automatic playback",
	cmdSpeed:    "Set the playback speed to a preset or a number of milliseconds between steps. Show the current speed if no argument is given",
	cmdReset:    "Stop playback and move to the first cycle",
	cmdLoad:     "Load a trace from a file or a URL. The current trace is kept if loading fails",
	cmdLayout:   "Set the layout of the cycle display. Show the current layout if no argument is given",
	cmdHistory:  "Print the execution log",
	cmdLog:      "Print the most recent entries in the log",
	cmdCopy:     "Copy the current cycle to the clipboard",
	cmdMemviz:   "Write a graphviz file of the current cycle's snapshot",
	cmdPrefs:    "Show, save or reload the viewer preferences",
	cmdHelp:     "List commands or show help for a specific command",
	cmdQuit:     "Quit the viewer",
}

// Sentinal errors.
const (
	UnknownCommand   = "viewer: unrecognised command: %s"
	AmbiguousCommand = "viewer: ambiguous command: %s"
	Usage            = "viewer: usage: %s"
)

var commandTree *prefixtree.Tree

func init() {
	commandTree = prefixtree.New()
	for _, c := range commands {
		commandTree.Add(c.name, c)
	}
}

// parseCommand splits the line into a command and its arguments. The
// command can be any unique prefix of a command name and is not case
// sensitive.
func parseCommand(line string) (command, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, nil, nil
	}

	cmd, err := lookupCommand(fields[0])
	if err != nil {
		return command{}, nil, err
	}

	args := fields[1:]
	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		return command{}, nil, curated.Errorf(Usage, cmd.usage)
	}

	return cmd, args, nil
}

// lookupCommand finds the command named by a unique prefix of its name. The
// name is not case sensitive.
func lookupCommand(name string) (command, error) {
	v, err := commandTree.Find(strings.ToUpper(name))
	if err != nil {
		switch {
		case errors.Is(err, prefixtree.ErrPrefixAmbiguous):
			return command{}, curated.Errorf(AmbiguousCommand, name)
		default:
			return command{}, curated.Errorf(UnknownCommand, name)
		}
	}
	return v.(command), nil
}
