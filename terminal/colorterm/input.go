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

//go:build !windows

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/logger"
	"github.com/jetsetilly/cycletrace/terminal"
	"github.com/jetsetilly/cycletrace/terminal/colorterm/easyterm"
)

// maximum number of lines kept in the line entry history
const maxHistory = 50

// single key commands
var keyCommands = map[rune]string{
	' ': "TOGGLE",
	'n': "NEXT",
	'p': "PREVIOUS",
	'g': "FIRST",
	'G': "LAST",
	'r': "RESET",
	'h': "HELP",
	'?': "HELP",
	'q': "QUIT",
}

// cursor sequences that are translated into commands
var cursorCommands = map[rune]string{
	easyterm.CursorForward:  "NEXT",
	easyterm.CursorBackward: "PREVIOUS",
	easyterm.CursorHome:     "FIRST",
	easyterm.CursorEnd:      "LAST",
}

// key is either a rune or a cursor sequence. seq is zero for runes
type key struct {
	r   rune
	seq rune
}

func (ct *ColorTerminal) readKey() (key, error) {
	r, _, err := ct.reader.ReadRune()
	if err != nil {
		return key{}, err
	}
	if r != easyterm.KeyEsc {
		return key{r: r}, nil
	}

	r, _, err = ct.reader.ReadRune()
	if err != nil {
		return key{}, err
	}

	// alt modified key. treat as though alt was not pressed
	if r != easyterm.EscCursor && r != easyterm.EscSS3 {
		return key{r: r}, nil
	}

	r, _, err = ct.reader.ReadRune()
	if err != nil {
		return key{}, err
	}

	switch r {
	case easyterm.TildeHome, easyterm.TildeHomeAlt, easyterm.TildeEnd, easyterm.TildeEndAlt:
		t, _, err := ct.reader.ReadRune()
		if err != nil {
			return key{}, err
		}
		if t != easyterm.Tilde {
			return key{}, nil
		}
		if r == easyterm.TildeHome || r == easyterm.TildeHomeAlt {
			return key{seq: easyterm.CursorHome}, nil
		}
		return key{seq: easyterm.CursorEnd}, nil
	}

	return key{seq: r}, nil
}

// TermRead implements the terminal.Input interface. Single key presses are
// returned as commands. Longer commands are entered after pressing the colon
// key.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	for {
		k, err := ct.readKey()
		if err != nil {
			return "", err
		}

		if k.seq != 0 {
			if cmd, ok := cursorCommands[k.seq]; ok {
				return cmd, nil
			}
			continue
		}

		switch k.r {
		case ':':
			return ct.readLine()
		case easyterm.KeyInterrupt:
			return "", curated.Errorf(terminal.UserInterrupt)
		case easyterm.KeyEOF:
			return "", io.EOF
		case easyterm.KeySuspend:
			if err := easyterm.SuspendProcess(); err != nil {
				logger.Log(logger.Allow, "colorterm", err)
			}
			continue
		}

		if cmd, ok := keyCommands[k.r]; ok {
			return cmd, nil
		}
	}
}

func (ct *ColorTerminal) readLine() (string, error) {
	ct.crit.Lock()
	ct.lineEntry = true
	ct.line = ct.line[:0]
	ct.cursor = 0
	ct.redraw()
	ct.crit.Unlock()

	defer func() {
		ct.crit.Lock()
		ct.lineEntry = false
		ct.TermPrint("\r")
		ct.TermPrint(easyterm.ClearLine)
		ct.crit.Unlock()
	}()

	// index into history. len(history) is the line being edited
	hist := len(ct.history)

	for {
		k, err := ct.readKey()
		if err != nil {
			return "", err
		}

		ct.crit.Lock()

		if k.seq != 0 {
			switch k.seq {
			case easyterm.CursorUp:
				if hist > 0 {
					hist--
					ct.line = append(ct.line[:0], ct.history[hist]...)
					ct.cursor = len(ct.line)
				}
			case easyterm.CursorDown:
				if hist < len(ct.history)-1 {
					hist++
					ct.line = append(ct.line[:0], ct.history[hist]...)
				} else {
					hist = len(ct.history)
					ct.line = ct.line[:0]
				}
				ct.cursor = len(ct.line)
			case easyterm.CursorForward:
				if ct.cursor < len(ct.line) {
					ct.cursor++
				}
			case easyterm.CursorBackward:
				if ct.cursor > 0 {
					ct.cursor--
				}
			case easyterm.CursorHome:
				ct.cursor = 0
			case easyterm.CursorEnd:
				ct.cursor = len(ct.line)
			}
			ct.redraw()
			ct.crit.Unlock()
			continue
		}

		switch k.r {
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(ct.line)
			if len(ct.line) > 0 {
				ct.history = append(ct.history, append([]rune{}, ct.line...))
				if len(ct.history) > maxHistory {
					ct.history = ct.history[1:]
				}
			}
			ct.crit.Unlock()
			return s, nil

		case easyterm.KeyInterrupt:
			ct.crit.Unlock()
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEOF:
			// ctrl-d on an empty line abandons line entry
			if len(ct.line) == 0 {
				ct.crit.Unlock()
				return "", nil
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if ct.cursor > 0 {
				ct.line = append(ct.line[:ct.cursor-1], ct.line[ct.cursor:]...)
				ct.cursor--
			}

		default:
			if unicode.IsPrint(k.r) {
				ct.line = append(ct.line, 0)
				copy(ct.line[ct.cursor+1:], ct.line[ct.cursor:])
				ct.line[ct.cursor] = k.r
				ct.cursor++
			}
		}

		ct.redraw()
		ct.crit.Unlock()
	}
}
