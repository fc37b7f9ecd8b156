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

package presenter

import (
	"fmt"
	"strings"
)

// Layout specifies which of the renderings is used.
type Layout int

// List of valid Layout values.
const (
	Dashboard Layout = iota
	Thin
)

// LayoutNames lists the names accepted by ParseLayout().
var LayoutNames = []string{"DASHBOARD", "THIN"}

func (l Layout) String() string {
	switch l {
	case Dashboard:
		return "DASHBOARD"
	case Thin:
		return "THIN"
	}
	return "unknown layout"
}

// ParseLayout returns the Layout with the name. The name is not case
// sensitive.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DASHBOARD":
		return Dashboard, nil
	case "THIN":
		return Thin, nil
	}
	return Dashboard, fmt.Errorf("presenter: unknown layout: %s", name)
}
