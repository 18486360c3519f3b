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

package prefs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKey is returned when a key is not in the Collection.
var ErrUnknownKey = errors.New("prefs: unknown key")

// Collection maps dotted key names to preference values. It is the
// in-memory equivalent of a preferences file.
type Collection struct {
	entries map[string]pref
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]pref),
	}
}

// Add a preference value to the collection under the key name. Adding the
// same key twice is an error.
func (c *Collection) Add(key string, p pref) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: key already in collection (%s)", key)
	}
	c.entries[key] = p
	return nil
}

// Set the value of the preference with the key name.
func (c *Collection) Set(key string, value Value) error {
	p, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("%w (%s)", ErrUnknownKey, key)
	}
	return p.Set(value)
}

// Get the value of the preference with the key name.
func (c *Collection) Get(key string) (Value, error) {
	p, ok := c.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrUnknownKey, key)
	}
	return p.Get(), nil
}

// Reset all preferences in the collection.
func (c *Collection) Reset() error {
	for _, p := range c.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the collection in the same form accepted by Apply(). Keys
// are sorted.
func (c *Collection) String() string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, c.entries[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}

// Apply a prefs string to the collection. A prefs string is made up of
// key/value pairs separated by a semi-colon. Keys and values are separated
// by a double colon:
//
//	cpu.logUnsupported::true; cpu.indirectJumpBug::false
//
// Malformed pairs are ignored. Unknown keys and bad values are errors but do
// not stop the remaining pairs from being applied. The first error found is
// returned.
func (c *Collection) Apply(prefs string) error {
	var first error

	for _, p := range ParseString(prefs) {
		err := c.Set(p.Key, p.Value)
		if err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Pair is a single key/value pair from a prefs string.
type Pair struct {
	Key   string
	Value string
}

// ParseString divides a prefs string into key/value pairs. Pairs are
// returned in the order they appear in the string.
func ParseString(prefs string) []Pair {
	var pairs []Pair

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			key := strings.TrimSpace(kv[0])
			if key == "" {
				continue
			}
			pairs = append(pairs, Pair{Key: key, Value: strings.TrimSpace(kv[1])})
		}
	}

	return pairs
}
