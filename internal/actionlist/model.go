// SPDX-License-Identifier: AGPL-3.0-or-later

// Package actionlist loads the ordered action list a run works through.
package actionlist

import "strings"

// Entry is one action record. Order within a List is significant.
type Entry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// List is the ordered action list as read from the settings resource.
type List []Entry

// Prepared is the part of a List the attempt pipeline processes.
type Prepared struct {
	// Entries are the enabled entries with non-blank names, in list order.
	Entries []Entry
	// Total is the number of records in the source list.
	Total int
	// Blank counts enabled entries dropped for having no name.
	Blank int
}

// Enabled returns the enabled entries in order with trimmed names, and the
// number of enabled entries whose name was blank. Disabled entries are
// dropped without being counted.
func (l List) Enabled() ([]Entry, int) {
	var out []Entry
	blank := 0
	for _, e := range l {
		if !e.Enabled {
			continue
		}
		name := strings.TrimSpace(e.Name)
		if name == "" {
			blank++
			continue
		}
		out = append(out, Entry{Name: name, Enabled: true})
	}
	return out, blank
}

// Prepare filters the list down to what a run will attempt.
// It fails with ErrEmpty for an empty list and ErrNoneEnabled when nothing
// attemptable remains.
func Prepare(l List) (Prepared, error) {
	if len(l) == 0 {
		return Prepared{}, ErrEmpty
	}
	entries, blank := l.Enabled()
	p := Prepared{Entries: entries, Total: len(l), Blank: blank}
	if len(entries) == 0 {
		return p, ErrNoneEnabled
	}
	return p, nil
}
