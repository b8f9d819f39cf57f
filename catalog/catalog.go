// Package catalog provides the static timezone table the rest of the
// application selects from. It is loaded once at init and never mutated.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Record describes one selectable timezone. ID is an IANA zone identifier
// and is unique within the catalog; two records may share the same
// underlying zone under different cities (Mumbai and Kolkata would both
// resolve to Asia/Kolkata).
type Record struct {
	ID          string
	Name        string
	City        string
	Country     string
	OffsetLabel string
	Coordinates Coordinates

	loc *time.Location
}

// Location returns the resolved IANA location for the record.
func (r Record) Location() *time.Location {
	if r.loc == nil {
		panic(fmt.Sprintf("catalog: record %q has no resolved location", r.ID))
	}
	return r.loc
}

// Identity returns the display-identity key used for duplicate detection:
// the zone id plus the case-folded city. Two entries are "the same
// timezone" iff both match.
func (r Record) Identity() string {
	return r.ID + "|" + strings.ToLower(r.City)
}

// Label returns the human-readable "City, Country" form.
func (r Record) Label() string {
	if r.Country == "" {
		return r.City
	}
	return fmt.Sprintf("%s, %s", r.City, r.Country)
}

// Make builds a record for a zone that is not in the seeded table, e.g.
// the viewer's local zone or a zone restored from config. The id must be
// a resolvable IANA identifier.
func Make(id, city string) (Record, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Record{}, fmt.Errorf("failed to load timezone '%s': %w", id, err)
	}
	if city == "" {
		city = id
		if i := strings.LastIndex(id, "/"); i >= 0 {
			city = strings.ReplaceAll(id[i+1:], "_", " ")
		}
	}
	return Record{ID: id, Name: id, City: city, loc: loc}, nil
}

// All returns the seeded records in catalog order.
func All() []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

// ByID returns the first record with the given zone id.
func ByID(id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// ByIdentity returns the record with the given display identity.
func ByIdentity(identity string) (Record, bool) {
	for _, r := range records {
		if r.Identity() == identity {
			return r, true
		}
	}
	return Record{}, false
}

// Search returns records whose city, country or name contains the query,
// case-insensitively. Exact and prefix city matches rank first; within
// each rank, catalog order is preserved. An empty query returns the whole
// catalog.
func Search(query string) []Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return All()
	}

	var exact []Record
	var partial []Record

	for _, r := range records {
		city := strings.ToLower(r.City)
		switch {
		case city == query:
			exact = append(exact, r)
		case strings.HasPrefix(city, query):
			partial = append(partial, r)
		case strings.Contains(city, query),
			strings.Contains(strings.ToLower(r.Country), query),
			strings.Contains(strings.ToLower(r.Name), query):
			partial = append(partial, r)
		}
	}

	return append(exact, partial...)
}

// Local returns the record matching the viewer's local zone, synthesizing
// one when the local zone is not in the seeded table.
func Local() Record {
	id := time.Local.String()
	if r, ok := ByID(id); ok {
		return r
	}
	r, err := Make(id, "")
	if err != nil {
		// time.Local always resolves against itself; fall back to UTC.
		r, _ = Make("UTC", "UTC")
	}
	return r
}
