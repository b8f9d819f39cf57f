package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeld/meridian/catalog"
)

func record(t *testing.T, id string) catalog.Record {
	t.Helper()
	r, ok := catalog.ByID(id)
	require.True(t, ok, "catalog record %s", id)
	return r
}

func identities(l *List) []string {
	var out []string
	for _, e := range l.Entries() {
		out = append(out, e.Identity())
	}
	return out
}

func TestAddRejectsDuplicateIdentity(t *testing.T) {
	tokyo := record(t, "Asia/Tokyo")
	london := record(t, "Europe/London")

	l := New(tokyo)
	assert.True(t, l.Add(london))
	assert.False(t, l.Add(tokyo), "same identity must be a no-op")
	assert.False(t, l.Add(london))
	assert.Equal(t, 2, l.Len())
}

func TestAddDistinguishesCitiesSharingAZone(t *testing.T) {
	mumbai := record(t, "Asia/Kolkata") // seeded with City "Mumbai"
	kolkata, err := catalog.Make("Asia/Kolkata", "Kolkata")
	require.NoError(t, err)

	l := New(mumbai)
	assert.True(t, l.Add(kolkata), "same zone under another city is a distinct entry")
	assert.False(t, l.Add(mumbai), "the same city never appears twice")
	assert.Equal(t, 2, l.Len())
}

func TestRemoveKeepsListNonEmpty(t *testing.T) {
	tokyo := record(t, "Asia/Tokyo")
	london := record(t, "Europe/London")

	l := New(tokyo, london)
	assert.True(t, l.Remove(tokyo.Identity()))
	assert.False(t, l.Remove(london.Identity()), "last entry cannot be removed")
	assert.Equal(t, 1, l.Len())

	// Arbitrary remove sequences never empty the list.
	for _, id := range []string{london.Identity(), tokyo.Identity(), "bogus"} {
		l.Remove(id)
	}
	assert.Equal(t, 1, l.Len())
}

func TestRemoveUnknownIdentity(t *testing.T) {
	l := New(record(t, "Asia/Tokyo"), record(t, "Europe/London"))
	assert.False(t, l.Remove("nope"))
	assert.Equal(t, 2, l.Len())
}

func TestMoveSemantics(t *testing.T) {
	a := record(t, "Asia/Tokyo")
	b := record(t, "Europe/London")
	c := record(t, "America/New_York")
	d := record(t, "Asia/Singapore")

	tests := []struct {
		name     string
		src, dst int
		want     []string
	}{
		{"forward", 0, 2, []string{b.Identity(), c.Identity(), a.Identity(), d.Identity()}},
		{"backward", 3, 0, []string{d.Identity(), a.Identity(), b.Identity(), c.Identity()}},
		{"adjacent", 1, 2, []string{a.Identity(), c.Identity(), b.Identity(), d.Identity()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(a, b, c, d)
			require.True(t, l.Move(tt.src, tt.dst))
			assert.Equal(t, tt.want, identities(l))
		})
	}
}

func TestMoveIsAPermutation(t *testing.T) {
	recs := []catalog.Record{
		record(t, "Asia/Tokyo"),
		record(t, "Europe/London"),
		record(t, "America/New_York"),
		record(t, "Asia/Singapore"),
		record(t, "Australia/Sydney"),
	}

	for src := 0; src < len(recs); src++ {
		for dst := 0; dst < len(recs); dst++ {
			l := New(recs...)
			before := identities(l)
			moved := l.Move(src, dst)
			after := identities(l)

			assert.ElementsMatch(t, before, after, "move %d->%d", src, dst)
			if moved {
				assert.Equal(t, before[src], after[dst], "moved entry lands at dst")
			} else {
				assert.Equal(t, before, after)
			}
		}
	}
}

func TestMoveRejectsInvalidIndices(t *testing.T) {
	l := New(record(t, "Asia/Tokyo"), record(t, "Europe/London"))
	assert.False(t, l.Move(-1, 0))
	assert.False(t, l.Move(0, 2))
	assert.False(t, l.Move(5, 0))
	assert.False(t, l.Move(1, 1))
}

func TestEntriesReturnsACopy(t *testing.T) {
	tokyo := record(t, "Asia/Tokyo")
	london := record(t, "Europe/London")

	l := New(tokyo, london)
	entries := l.Entries()
	entries[0] = london

	assert.Equal(t, tokyo.Identity(), l.At(0).Identity())
}
