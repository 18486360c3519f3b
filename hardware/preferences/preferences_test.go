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

package preferences_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/prefs"
	"github.com/jetsetilly/gopher6502/test"
)

func TestPreferences(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.String(), "cpu.indirectJumpBug::false; cpu.logMaxEntries::256; cpu.logUnsupported::false")

	test.ExpectSuccess(t, p.Apply("cpu.indirectJumpBug::true"))
	test.ExpectEquality(t, p.IndirectJumpBug.Get().(bool), true)
	test.ExpectEquality(t, p.LogUnsupported.Get().(bool), false)

	test.ExpectFailure(t, p.Apply("cpu.noSuchThing::true"))

	p.SetDefaults()
	test.ExpectEquality(t, p.IndirectJumpBug.Get().(bool), false)
}

func TestLogMaxEntries(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.LogMaxEntries.Get().(int), preferences.DefaultLogMaxEntries)

	logger.Clear()
	defer logger.Clear()
	defer p.SetDefaults()

	test.DemandSuccess(t, p.Apply("cpu.logMaxEntries::2"))
	test.ExpectEquality(t, p.LogMaxEntries.Get().(int), 2)

	logger.Log(logger.Allow, "a", "1")
	logger.Log(logger.Allow, "b", "2")
	logger.Log(logger.Allow, "c", "3")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "b: 2\nc: 3\n")

	// zero is accepted by the preference and the log keeps one entry
	test.DemandSuccess(t, p.LogMaxEntries.Set(0))
	s.Reset()
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "c: 3\n")

	err = p.Apply("cpu.logMaxEntries::lots")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrBadValue))
}
