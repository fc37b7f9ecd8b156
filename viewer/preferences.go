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
	"time"

	"github.com/jetsetilly/cycletrace/presenter"
	"github.com/jetsetilly/cycletrace/prefs"
)

// default preference values
const (
	defaultSpeed  = 1000
	defaultLayout = "DASHBOARD"
	defaultColor  = true
)

// Preferences defines and collates all the preference values used by the
// viewer.
type Preferences struct {
	v   *Viewer
	dsk *prefs.Disk

	// playback speed in milliseconds. zero is the fastest speed
	Speed prefs.Int

	Layout prefs.String
	Color  prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. Changes to the preference values are applied to the
// viewer immediately.
func newPreferences(v *Viewer, path string) (*Preferences, error) {
	p := &Preferences{v: v}

	p.Speed.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("viewer: speed cannot be negative")
		}
		return nil
	})
	p.Speed.SetHookPost(func(value prefs.Value) error {
		v.ctrl.SetSpeed(time.Duration(value.(int)) * time.Millisecond)
		return nil
	})

	p.Layout.SetHookPre(func(value prefs.Value) error {
		_, err := presenter.ParseLayout(value.(string))
		return err
	})
	p.Layout.SetHookPost(func(value prefs.Value) error {
		// the layout has been checked by the pre hook
		v.pres.Layout, _ = presenter.ParseLayout(value.(string))
		return nil
	})

	p.Color.SetHookPost(func(value prefs.Value) error {
		v.pres.Color = value.(bool)
		return nil
	})

	if err := p.setDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}
	if err := p.dsk.Add("viewer.speed", &p.Speed); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("viewer.layout", &p.Layout); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("viewer.color", &p.Color); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Preferences) setDefaults() error {
	if err := p.Speed.Set(defaultSpeed); err != nil {
		return err
	}
	if err := p.Layout.Set(defaultLayout); err != nil {
		return err
	}
	return p.Color.Set(defaultColor)
}

func (p *Preferences) load() error {
	return p.dsk.Load(false)
}

func (p *Preferences) save() error {
	return p.dsk.Save()
}
