// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher86/curated"
)

// Sentinal error patterns.
const (
	UnknownPref   = "prefs: unknown preference: %s"
	DuplicatePref = "prefs: preference already added: %s"
	InvalidValue  = "prefs: %s: %v"
)

// Group is a named collection of preferences. Keys should take the form
// "area.name", for example "logging.echo".
type Group struct {
	crit    sync.Mutex
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]Pref),
	}
}

// String returns the preferences in the group, one per line, in the same
// key::value format used by the command line stack.
func (g *Group) String() string {
	g.crit.Lock()
	defer g.crit.Unlock()

	s := strings.Builder{}
	for _, k := range g.keys() {
		s.WriteString(fmt.Sprintf("%s::%s\n", k, g.entries[k].String()))
	}
	return s.String()
}

// keys must be called from inside the critical section.
func (g *Group) keys() []string {
	keys := make([]string, 0, len(g.entries))
	for k := range g.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add a preference to the group.
func (g *Group) Add(key string, p Pref) error {
	g.crit.Lock()
	defer g.crit.Unlock()

	if _, ok := g.entries[key]; ok {
		return curated.Errorf(DuplicatePref, key)
	}
	g.entries[key] = p
	return nil
}

// Set the value of the preference with the named key.
func (g *Group) Set(key string, v Value) error {
	g.crit.Lock()
	p, ok := g.entries[key]
	g.crit.Unlock()

	if !ok {
		return curated.Errorf(UnknownPref, key)
	}

	// set outside of the critical section. hooks may want to read other
	// values in the group
	if err := p.Set(v); err != nil {
		return curated.Errorf(InvalidValue, key, err)
	}
	return nil
}

// Get the value of the preference with the named key.
func (g *Group) Get(key string) (Value, error) {
	g.crit.Lock()
	defer g.crit.Unlock()

	p, ok := g.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownPref, key)
	}
	return p.Get(), nil
}

// Reset every preference in the group.
func (g *Group) Reset() error {
	g.crit.Lock()
	prefs := make([]Pref, 0, len(g.entries))
	for _, k := range g.keys() {
		prefs = append(prefs, g.entries[k])
	}
	g.crit.Unlock()

	for _, p := range prefs {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCommandLine sets any preference in the group that has a value in the
// current command line group. See PushCommandLineStack().
func (g *Group) ApplyCommandLine() error {
	g.crit.Lock()
	keys := g.keys()
	g.crit.Unlock()

	for _, k := range keys {
		if ok, v := GetCommandLinePref(k); ok {
			if err := g.Set(k, v); err != nil {
				return err
			}
		}
	}
	return nil
}
