// Package selection holds the ordered list of zones the user is
// displaying, with duplicate filtering and move-style reordering.
package selection

import "github.com/mfeld/meridian/catalog"

// List is an ordered sequence of catalog records keyed by display
// identity. Order is insertion order except where explicitly moved. A
// non-empty list can never be emptied through Remove.
type List struct {
	entries []catalog.Record
}

// New builds a list from the given records, dropping duplicates.
func New(records ...catalog.Record) *List {
	l := &List{}
	for _, r := range records {
		l.Add(r)
	}
	return l
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Entries returns a copy of the ordered entries.
func (l *List) Entries() []catalog.Record {
	out := make([]catalog.Record, len(l.entries))
	copy(out, l.entries)
	return out
}

// At returns the entry at index i.
func (l *List) At(i int) catalog.Record { return l.entries[i] }

// Contains reports whether an entry with the given display identity is
// present.
func (l *List) Contains(identity string) bool {
	return l.indexOf(identity) >= 0
}

// Add appends the record unless an entry with the same display identity
// already exists, and reports whether it was added.
func (l *List) Add(r catalog.Record) bool {
	if l.Contains(r.Identity()) {
		return false
	}
	l.entries = append(l.entries, r)
	return true
}

// Remove deletes the entry with the given display identity and reports
// whether it did. Removing an absent identity or the last remaining entry
// is a no-op.
func (l *List) Remove(identity string) bool {
	if len(l.entries) <= 1 {
		return false
	}
	i := l.indexOf(identity)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Move takes the entry at src out of the sequence and reinserts it at dst,
// where dst is interpreted against the sequence after removal. The update
// is a single splice; relative order of all other entries is preserved.
func (l *List) Move(src, dst int) bool {
	n := len(l.entries)
	if src < 0 || src >= n || dst < 0 || dst >= n || src == dst {
		return false
	}
	moved := l.entries[src]
	rest := append(l.entries[:src], l.entries[src+1:]...)
	rest = append(rest, catalog.Record{})
	copy(rest[dst+1:], rest[dst:])
	rest[dst] = moved
	l.entries = rest
	return true
}

func (l *List) indexOf(identity string) int {
	for i, e := range l.entries {
		if e.Identity() == identity {
			return i
		}
	}
	return -1
}
