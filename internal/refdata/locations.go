package refdata

import (
	"strings"

	"github.com/paulmach/orb"
)

// City is a directory location page with its centre coordinates.
type City struct {
	Slug      string
	Name      string
	StateCode string
	Centre    orb.Point // lon/lat per orb convention.
}

// State is an Australian state or territory.
type State struct {
	Code string
	Name string
}

// States is the Australian state/territory catalog.
var States = []State{
	{Code: "nsw", Name: "New South Wales"},
	{Code: "vic", Name: "Victoria"},
	{Code: "qld", Name: "Queensland"},
	{Code: "wa", Name: "Western Australia"},
	{Code: "sa", Name: "South Australia"},
	{Code: "tas", Name: "Tasmania"},
	{Code: "act", Name: "Australian Capital Territory"},
	{Code: "nt", Name: "Northern Territory"},
}

// Cities is the location catalog. Coordinates are city centres, used for
// nearby fallbacks and sitemap entries.
var Cities = []City{
	{Slug: "sydney", Name: "Sydney", StateCode: "nsw", Centre: orb.Point{151.2093, -33.8688}},
	{Slug: "newcastle", Name: "Newcastle", StateCode: "nsw", Centre: orb.Point{151.7817, -32.9283}},
	{Slug: "wollongong", Name: "Wollongong", StateCode: "nsw", Centre: orb.Point{150.8931, -34.4278}},
	{Slug: "central-coast", Name: "Central Coast", StateCode: "nsw", Centre: orb.Point{151.3418, -33.4245}},
	{Slug: "melbourne", Name: "Melbourne", StateCode: "vic", Centre: orb.Point{144.9631, -37.8136}},
	{Slug: "geelong", Name: "Geelong", StateCode: "vic", Centre: orb.Point{144.3598, -38.1499}},
	{Slug: "ballarat", Name: "Ballarat", StateCode: "vic", Centre: orb.Point{143.8503, -37.5622}},
	{Slug: "brisbane", Name: "Brisbane", StateCode: "qld", Centre: orb.Point{153.0251, -27.4698}},
	{Slug: "gold-coast", Name: "Gold Coast", StateCode: "qld", Centre: orb.Point{153.4000, -28.0167}},
	{Slug: "sunshine-coast", Name: "Sunshine Coast", StateCode: "qld", Centre: orb.Point{153.0667, -26.6500}},
	{Slug: "townsville", Name: "Townsville", StateCode: "qld", Centre: orb.Point{146.8169, -19.2590}},
	{Slug: "perth", Name: "Perth", StateCode: "wa", Centre: orb.Point{115.8605, -31.9505}},
	{Slug: "adelaide", Name: "Adelaide", StateCode: "sa", Centre: orb.Point{138.6007, -34.9285}},
	{Slug: "hobart", Name: "Hobart", StateCode: "tas", Centre: orb.Point{147.3272, -42.8821}},
	{Slug: "canberra", Name: "Canberra", StateCode: "act", Centre: orb.Point{149.1300, -35.2809}},
	{Slug: "darwin", Name: "Darwin", StateCode: "nt", Centre: orb.Point{130.8456, -12.4634}},
}

// CityBySlug returns the city with the given slug.
func CityBySlug(slug string) (City, bool) {
	for _, c := range Cities {
		if c.Slug == slug {
			return c, true
		}
	}

	return City{}, false
}

// CitiesInState returns all catalog cities for a state code.
func CitiesInState(code string) []City {
	code = strings.ToLower(code)
	var out []City
	for _, c := range Cities {
		if c.StateCode == code {
			out = append(out, c)
		}
	}

	return out
}

// ValidState reports whether code names a known state or territory.
func ValidState(code string) bool {
	code = strings.ToLower(code)
	for _, s := range States {
		if s.Code == code {
			return true
		}
	}

	return false
}
