package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRecordsResolve(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seenID := map[string]bool{}
	seenIdentity := map[string]bool{}
	for _, r := range all {
		assert.False(t, seenID[r.ID], "duplicate id %s", r.ID)
		assert.False(t, seenIdentity[r.Identity()], "duplicate identity %s", r.Identity())
		seenID[r.ID] = true
		seenIdentity[r.Identity()] = true

		assert.NotNil(t, r.Location(), "zone %s", r.ID)
		assert.NotEmpty(t, r.City)
	}
}

func TestByID(t *testing.T) {
	r, ok := ByID("Asia/Tokyo")
	require.True(t, ok)
	assert.Equal(t, "Tokyo", r.City)
	assert.Equal(t, "Japan", r.Country)

	_, ok = ByID("Mars/Olympus_Mons")
	assert.False(t, ok)
}

func TestMumbaiUsesRealZone(t *testing.T) {
	r, ok := ByID("Asia/Kolkata")
	require.True(t, ok)
	assert.Equal(t, "Mumbai", r.City)
	assert.Equal(t, "Asia/Kolkata", r.Location().String())
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantFirst string // expected first city, "" for no results
	}{
		{"city substring", "new", "New York"},
		{"case insensitive", "LONDON", "London"},
		{"country match", "japan", "Tokyo"},
		{"zone name match", "pacific", "Los Angeles"},
		{"exact city ranks first", "mumbai", "Mumbai"},
		{"no match", "atlantis", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(tt.query)
			if tt.wantFirst == "" {
				assert.Empty(t, got)
				return
			}
			require.NotEmpty(t, got)
			assert.Equal(t, tt.wantFirst, got[0].City)
		})
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	assert.Equal(t, All(), Search(""))
	assert.Equal(t, All(), Search("   "))
}

func TestSearchPreservesCatalogOrder(t *testing.T) {
	got := Search("united")
	require.Len(t, got, 5) // four US cities plus London

	var cities []string
	for _, r := range got {
		cities = append(cities, r.City)
	}
	assert.Equal(t, []string{"New York", "Chicago", "Denver", "Los Angeles", "London"}, cities)
}

func TestMake(t *testing.T) {
	r, err := Make("Pacific/Auckland", "")
	require.NoError(t, err)
	assert.Equal(t, "Auckland", r.City)
	assert.Equal(t, "Pacific/Auckland", r.ID)
	assert.NotNil(t, r.Location())

	r, err = Make("America/Argentina/Buenos_Aires", "")
	require.NoError(t, err)
	assert.Equal(t, "Buenos Aires", r.City)

	_, err = Make("Not/A_Zone", "x")
	assert.Error(t, err)
}

func TestLocal(t *testing.T) {
	r := Local()
	assert.NotEmpty(t, r.ID)
	assert.NotNil(t, r.Location())
}
