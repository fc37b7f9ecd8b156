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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text and the information it summarises.
type Prompt struct {
	Content string

	// position in the trace
	Position int
	Total    int

	Playing bool
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Playing {
		s.WriteString("(play) ")
	}
	if p.Total > 0 {
		s.WriteString(fmt.Sprintf("%d/%d", p.Position, p.Total-1))
	} else {
		s.WriteString("no trace")
	}
	if c := strings.TrimSpace(p.Content); c != "" {
		s.WriteString(" ")
		s.WriteString(c)
	}
	s.WriteString(" ] >> ")
	return s.String()
}
