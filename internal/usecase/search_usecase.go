// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStaleQuery is returned by SearchSession.Refresh when the session's
// filters or page changed while the query was in flight. The response is
// discarded; the caller should refresh again.
var ErrStaleQuery = errors.New("search response superseded by a newer query")

// SearchMode tells which pipeline produced a result page.
type SearchMode string

const (
	// SearchModeFiltered means a directory-wide query produced the page.
	SearchModeFiltered SearchMode = "filtered"
	// SearchModeNearby means the caller shared their position, so results come
	// from a radius query around it, still honouring the other filters.
	SearchModeNearby SearchMode = "nearby"
)

// SearchFilters carries every filter a search can apply. The first eight run
// server-side; Facilities, OpenNow and HasActiveOffer are applied to the
// result set afterwards, AND-composed.
type SearchFilters struct {
	Category   string
	City       string
	State      string
	AgeMin     *int
	AgeMax     *int
	Indoor     *bool
	PriceRange *int
	Text       string

	Facilities     []string
	OpenNow        bool
	HasActiveOffer bool

	// UseLocation routes the query through the nearby pipeline, carrying the
	// filters above. Set once the caller has shared their position.
	UseLocation bool
}

// HasServerFilters reports whether any directory-wide filter is set.
func (f SearchFilters) HasServerFilters() bool {
	return f.Category != "" || f.City != "" || f.State != "" ||
		f.AgeMin != nil || f.AgeMax != nil || f.Indoor != nil ||
		f.PriceRange != nil || f.Text != ""
}

// VenueResult is one search hit. Distance fields are set in nearby mode only.
type VenueResult struct {
	Venue         *entity.Venue
	DistanceKm    *float64
	DistanceLabel string
}

// SearchPage is one page of search results. LocationNotice is set when a
// nearby query could not resolve the caller's position and the page was
// produced by the filtered pipeline instead.
type SearchPage struct {
	Results        []VenueResult
	Mode           SearchMode
	Page           int
	PageSize       int
	TotalResults   int
	TotalPages     int
	LocationNotice string
}

// SearchUsecase executes venue searches and creates search sessions.
type SearchUsecase interface {
	// Query runs one search for the given filters and page.
	Query(ctx context.Context, filters SearchFilters, page int) (*SearchPage, error)

	// NewSession returns a fresh, independent search session.
	NewSession() SearchSession
}

// SearchSession is a stateful search: filters, current page and the latest
// result page. Mutating filters resets the page to 1. A response that
// completes after a newer mutation is discarded, never shown.
type SearchSession interface {
	// UpdateFilters applies a mutation to the filters and resets the page.
	UpdateFilters(apply func(*SearchFilters))

	// ClearFilters drops every filter and resets the page.
	ClearFilters()

	// SetPage moves to another result page without touching filters.
	SetPage(page int)

	// UseLocation switches nearby mode on or off and resets the page.
	UseLocation(enabled bool)

	Filters() SearchFilters
	Page() int

	// Refresh executes the search for the current state. Returns ErrStaleQuery
	// if the state changed while the query was running.
	Refresh(ctx context.Context) (*SearchPage, error)

	// Current returns the last accepted result page, nil before any Refresh.
	Current() *SearchPage
}
