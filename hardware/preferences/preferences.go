// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences holds the configurable options of the emulated
// hardware.
package preferences

import (
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/prefs"
)

// DefaultLogMaxEntries is the default value of the cpu.logMaxEntries
// preference.
const DefaultLogMaxEntries = 256

// Preferences for the emulated hardware.
type Preferences struct {
	collection *prefs.Collection

	// log every unsupported opcode encountered by the CPU
	LogUnsupported prefs.Bool

	// the number of entries kept by the central log. values less than one
	// are treated as one
	LogMaxEntries prefs.Int

	// emulate the NMOS 6502 bug in JMP indirect. when the low byte of the
	// pointer is 0xff the high byte of the target is read from the start of
	// the same page
	IndirectJumpBug prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		collection: prefs.NewCollection(),
	}
	p.SetDefaults()

	err := p.collection.Add("cpu.logUnsupported", &p.LogUnsupported)
	if err != nil {
		return nil, err
	}
	err = p.collection.Add("cpu.indirectJumpBug", &p.IndirectJumpBug)
	if err != nil {
		return nil, err
	}
	err = p.collection.Add("cpu.logMaxEntries", &p.LogMaxEntries)
	if err != nil {
		return nil, err
	}

	// hook is added after the defaults have been set. creating a Preferences
	// instance never resizes the central log
	p.LogMaxEntries.SetHookPost(func(v prefs.Value) error {
		logger.SetMaxEntries(v.(int))
		return nil
	})

	return p, nil
}

func (p *Preferences) String() string {
	return p.collection.String()
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.LogUnsupported.Set(false)
	p.IndirectJumpBug.Set(false)
	p.LogMaxEntries.Set(DefaultLogMaxEntries)
}

// Apply a prefs string. See prefs.Collection.Apply() for the format.
func (p *Preferences) Apply(s string) error {
	return p.collection.Apply(s)
}
