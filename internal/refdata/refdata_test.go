package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySlugsAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		assert.False(t, seen[c.Slug], "duplicate category slug %q", c.Slug)
		seen[c.Slug] = true
	}
}

func TestEveryCityBelongsToAKnownState(t *testing.T) {
	for _, c := range Cities {
		assert.True(t, ValidState(c.StateCode), "city %q references unknown state %q", c.Slug, c.StateCode)
	}
}

func TestCityLookup(t *testing.T) {
	city, ok := CityBySlug("sydney")
	assert.True(t, ok)
	assert.Equal(t, "nsw", city.StateCode)

	_, ok = CityBySlug("atlantis")
	assert.False(t, ok)
}

func TestCitiesInState(t *testing.T) {
	nsw := CitiesInState("NSW")
	assert.NotEmpty(t, nsw)
	for _, c := range nsw {
		assert.Equal(t, "nsw", c.StateCode)
	}
}
