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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/cycletrace/curated"
	"github.com/jetsetilly/cycletrace/playback"
)

// Preset is a named playback speed.
type Preset struct {
	Name  string
	Speed time.Duration
}

// Presets lists the named playback speeds, slowest first.
var Presets = []Preset{
	{Name: "SLOWEST", Speed: 2000 * time.Millisecond},
	{Name: "SLOW", Speed: 1000 * time.Millisecond},
	{Name: "NORMAL", Speed: 500 * time.Millisecond},
	{Name: "FAST", Speed: 200 * time.Millisecond},
	{Name: "FASTER", Speed: 50 * time.Millisecond},
	{Name: "MAX", Speed: playback.Fastest},
}

// BadSpeed is returned by ParseSpeed() when the string is not a preset name
// or a number of milliseconds.
const BadSpeed = "speed: not a preset or a number of milliseconds: %s"

// ParseSpeed converts a preset name or a number of milliseconds into a
// duration. Preset names are not case sensitive.
func ParseSpeed(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	for _, p := range Presets {
		if strings.EqualFold(p.Name, s) {
			return p.Speed, nil
		}
	}

	ms, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(s), "ms"))
	if err != nil || ms < 0 {
		return 0, curated.Errorf(BadSpeed, s)
	}

	return time.Duration(ms) * time.Millisecond, nil
}

// SpeedName returns the name of the preset for the duration or the number of
// milliseconds if there is no preset.
func SpeedName(d time.Duration) string {
	for _, p := range Presets {
		if p.Speed == d {
			return p.Name
		}
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
