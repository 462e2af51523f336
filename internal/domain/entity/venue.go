// Package entity contains the core business objects of the directory,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// VenueStatus represents the moderation state of a listing.
type VenueStatus string

const (
	// VenueStatusPending marks a listing awaiting admin review.
	VenueStatusPending VenueStatus = "pending"
	// VenueStatusPublished marks a listing visible in search results.
	VenueStatusPublished VenueStatus = "published"
	// VenueStatusRejected marks a listing declined by an admin.
	VenueStatusRejected VenueStatus = "rejected"
)

// String returns the string representation of the VenueStatus.
func (s VenueStatus) String() string {
	return string(s)
}

// IsValid checks if the VenueStatus is a valid value.
func (s VenueStatus) IsValid() bool {
	switch s {
	case VenueStatusPending, VenueStatusPublished, VenueStatusRejected:
		return true
	default:
		return false
	}
}

// DayHours is the opening window for a single weekday in "HH:MM" local time.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// OpeningHours maps weekdays to their opening windows. A missing weekday
// means the venue publishes no hours for that day and counts as closed.
type OpeningHours map[time.Weekday]DayHours

// Venue is a bookable kids activity location listed in the directory.
type Venue struct {
	ID            uuid.UUID    // The unique identifier for the venue.
	Slug          string       // Stable URL identifier, unique across the directory.
	Name          string       // Display name of the venue.
	Description   string       // Long-form description shown on the detail page.
	Address       string       // Street address.
	Suburb        string       // Suburb within the city.
	City          string       // City the venue belongs to.
	State         string       // Australian state code, e.g. "nsw".
	Postcode      string       // Postal code.
	Latitude      *float64     // Geographic latitude; nil until geocoded.
	Longitude     *float64     // Geographic longitude; nil until geocoded.
	Categories    []string     // Category slugs this venue is listed under.
	AgeMin        int          // Youngest supported age in years.
	AgeMax        int          // Oldest supported age in years.
	Indoor        bool         // Whether the activity runs indoors.
	PriceRange    int          // Ordinal price tier, 1 (cheapest) to 4.
	Facilities    []string     // Facility tags, e.g. "parking", "cafe".
	OpeningHours  OpeningHours // Per-weekday opening windows.
	Status        VenueStatus  // Moderation state.
	AverageRating float64      // Mean of review ratings, maintained on write.
	ReviewCount   int          // Number of reviews, maintained on write.
	FavoriteCount int          // Number of favourites, maintained on toggle.
	IsPromoted    bool         // Paid priority placement in result ordering.
	OwnerID       *uuid.UUID   // Owning user; nil until the listing is claimed.
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined associations, populated on detail fetches only.
	Offers  []*Offer
	Reviews []*Review
	Photos  []*Photo
}

// HasCoordinates reports whether the venue has been geocoded.
func (v *Venue) HasCoordinates() bool {
	return v.Latitude != nil && v.Longitude != nil
}

// HasFacilities reports whether the venue provides every requested facility
// tag. An empty request matches any venue.
func (v *Venue) HasFacilities(requested []string) bool {
	for _, tag := range requested {
		if !slices.Contains(v.Facilities, tag) {
			return false
		}
	}

	return true
}

// IsOpenAt reports whether the venue is open at the given local time.
// Venues with no entry for the weekday, or marked closed, count as closed.
// The window is inclusive at both ends.
func (v *Venue) IsOpenAt(t time.Time) bool {
	hours, ok := v.OpeningHours[t.Weekday()]
	if !ok || hours.Closed {
		return false
	}

	openMin, ok := parseMinuteOfDay(hours.Open)
	if !ok {
		return false
	}
	closeMin, ok := parseMinuteOfDay(hours.Close)
	if !ok {
		return false
	}

	minute := t.Hour()*60 + t.Minute()

	return minute >= openMin && minute <= closeMin
}

// HasActiveOffer reports whether any offer on the venue is effectively
// active: flagged active and not yet expired.
func (v *Venue) HasActiveOffer(now time.Time) bool {
	for _, offer := range v.Offers {
		if offer.EffectivelyActive(now) {
			return true
		}
	}

	return false
}

// parseMinuteOfDay converts "HH:MM" to minutes since midnight.
func parseMinuteOfDay(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, false
	}

	return h*60 + m, true
}
