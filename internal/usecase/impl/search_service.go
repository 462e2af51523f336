// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"playfinder/config"
	deliverycontext "playfinder/internal/delivery/context"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/domain/service"
	"playfinder/internal/geo"
	"playfinder/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	searchPageSize        = 20
	defaultNearbyRadiusKm = 10.0
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	venueRepo      repository.VenueRepository
	locator        service.Locator
	nearbyRadiusKm float64
	now            func() time.Time
	logger         *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	VenueRepo repository.VenueRepository
	Locator   service.Locator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	radius := defaultNearbyRadiusKm
	if params.Config != nil && params.Config.Search != nil && params.Config.Search.NearbyRadiusKm > 0 {
		radius = params.Config.Search.NearbyRadiusKm
	}

	return &searchService{
		venueRepo:      params.VenueRepo,
		locator:        params.Locator,
		nearbyRadiusKm: radius,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Query runs one search for the given filters and page. Once the caller has
// opted into location the query runs against venues near their position,
// still honouring the other filters; otherwise it searches the whole
// directory.
func (srv *searchService) Query(ctx context.Context, filters usecase.SearchFilters, page int) (*usecase.SearchPage, error) {
	if filters.UseLocation {
		return srv.queryNearby(ctx, filters, page)
	}

	return srv.queryFiltered(ctx, filters, page)
}

// NewSession returns a fresh, independent search session.
func (srv *searchService) NewSession() usecase.SearchSession {
	return &searchSession{svc: srv, page: 1}
}

func (srv *searchService) queryFiltered(ctx context.Context, filters usecase.SearchFilters, page int) (*usecase.SearchPage, error) {
	venues, err := srv.venueRepo.ListPublished(ctx, toVenueQuery(filters))
	if err != nil {
		srv.log(ctx).Error("Filtered venue query failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list published venues")
	}

	results := make([]usecase.VenueResult, 0, len(venues))
	for _, venue := range venues {
		results = append(results, usecase.VenueResult{Venue: venue})
	}

	results = srv.applyPostFilters(results, filters)

	return paginate(results, usecase.SearchModeFiltered, page), nil
}

func (srv *searchService) queryNearby(ctx context.Context, filters usecase.SearchFilters, page int) (*usecase.SearchPage, error) {
	position, err := srv.locator.CurrentPosition(ctx)
	if err != nil {
		srv.log(ctx).Warn("Position lookup failed, falling back to directory search", slog.Any("error", err))

		// The caller still gets results; the notice tells them why there are
		// no distances on this page.
		result, err := srv.queryFiltered(ctx, filters, page)
		if err != nil {
			return nil, err
		}
		result.LocationNotice = domainerrors.ErrLocationUnavailable.Message()

		return result, nil
	}

	venues, err := srv.venueRepo.ListNearby(ctx, position.Point, srv.nearbyRadiusKm, toVenueQuery(filters))
	if err != nil {
		srv.log(ctx).Error("Nearby venue query failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list nearby venues")
	}

	results := make([]usecase.VenueResult, 0, len(venues))
	for _, venue := range venues {
		result := usecase.VenueResult{Venue: venue}
		if venue.HasCoordinates() {
			distance := geo.Distance(position.Point, orb.Point{*venue.Longitude, *venue.Latitude})
			result.DistanceKm = &distance
			result.DistanceLabel = geo.FormatDistance(distance)
		}
		results = append(results, result)
	}

	results = srv.applyPostFilters(results, filters)

	// Closest venues first in nearby mode.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm == nil || results[j].DistanceKm == nil {
			return results[j].DistanceKm == nil && results[i].DistanceKm != nil
		}

		return *results[i].DistanceKm < *results[j].DistanceKm
	})

	return paginate(results, usecase.SearchModeNearby, page), nil
}

// applyPostFilters runs the client-side filters over the fetched set. All
// active post-filters must match for a venue to survive.
func (srv *searchService) applyPostFilters(results []usecase.VenueResult, filters usecase.SearchFilters) []usecase.VenueResult {
	if len(filters.Facilities) == 0 && !filters.OpenNow && !filters.HasActiveOffer {
		return results
	}

	now := srv.now()
	filtered := results[:0]
	for _, result := range results {
		venue := result.Venue
		if len(filters.Facilities) > 0 && !venue.HasFacilities(filters.Facilities) {
			continue
		}
		if filters.OpenNow && !venue.IsOpenAt(now) {
			continue
		}
		if filters.HasActiveOffer && !venue.HasActiveOffer(now) {
			continue
		}
		filtered = append(filtered, result)
	}

	return filtered
}

func paginate(results []usecase.VenueResult, mode usecase.SearchMode, page int) *usecase.SearchPage {
	if page < 1 {
		page = 1
	}

	total := len(results)
	totalPages := (total + searchPageSize - 1) / searchPageSize

	start := (page - 1) * searchPageSize
	if start > total {
		start = total
	}
	end := start + searchPageSize
	if end > total {
		end = total
	}

	return &usecase.SearchPage{
		Results:      results[start:end],
		Mode:         mode,
		Page:         page,
		PageSize:     searchPageSize,
		TotalResults: total,
		TotalPages:   totalPages,
	}
}

func toVenueQuery(filters usecase.SearchFilters) repository.VenueQuery {
	return repository.VenueQuery{
		Category:   filters.Category,
		City:       filters.City,
		State:      filters.State,
		AgeMin:     filters.AgeMin,
		AgeMax:     filters.AgeMax,
		Indoor:     filters.Indoor,
		PriceRange: filters.PriceRange,
		Text:       filters.Text,
	}
}

// searchSession holds one client's search state. Every mutation bumps the
// generation counter so a query response that raced a newer mutation can be
// recognised and discarded.
type searchSession struct {
	mu         sync.Mutex
	svc        usecase.SearchUsecase
	filters    usecase.SearchFilters
	page       int
	generation uint64
	current    *usecase.SearchPage
}

// UpdateFilters applies a mutation to the filters and resets the page to 1.
func (s *searchSession) UpdateFilters(apply func(*usecase.SearchFilters)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	apply(&s.filters)
	s.page = 1
	s.generation++
}

// ClearFilters drops every filter and resets the page to 1.
func (s *searchSession) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = usecase.SearchFilters{}
	s.page = 1
	s.generation++
}

// SetPage moves to another result page without touching filters.
func (s *searchSession) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	s.page = page
	s.generation++
}

// UseLocation switches nearby mode on or off and resets the page.
func (s *searchSession) UseLocation(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters.UseLocation = enabled
	s.page = 1
	s.generation++
}

func (s *searchSession) Filters() usecase.SearchFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

func (s *searchSession) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page
}

// Refresh executes the search for the session's current state. If the state
// changed while the query was in flight the response is discarded and
// ErrStaleQuery returned; the session keeps its previous results.
func (s *searchSession) Refresh(ctx context.Context) (*usecase.SearchPage, error) {
	s.mu.Lock()
	filters := s.filters
	page := s.page
	generation := s.generation
	s.mu.Unlock()

	result, err := s.svc.Query(ctx, filters, page)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return nil, usecase.ErrStaleQuery
	}
	s.current = result

	return result, nil
}

// Current returns the last accepted result page, nil before any Refresh.
func (s *searchSession) Current() *usecase.SearchPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}
