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

// Package prefs implements typed preference values and an in-memory
// collection of them. Values are safe to read from one goroutine while being
// set in another.
//
// Preferences are grouped into a Collection and addressed by a dotted key.
// The Apply() function accepts a string of key/value pairs so that a set of
// preferences can be specified in one go:
//
//	c := prefs.NewCollection()
//	var b prefs.Bool
//	c.Add("cpu.logUnsupported", &b)
//	c.Apply("cpu.logUnsupported::true")
package prefs
