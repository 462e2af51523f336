package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/domain/service"
	mockRepo "playfinder/internal/mocks/repository"
	mockSvc "playfinder/internal/mocks/service"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchServiceForTest(t *testing.T) (*searchService, *mockRepo.MockVenueRepository, *mockSvc.MockLocator) {
	mockVenueRepo := mockRepo.NewMockVenueRepository(t)
	mockLocator := mockSvc.NewMockLocator(t)

	svc := NewSearchService(SearchServiceParams{
		VenueRepo: mockVenueRepo,
		Locator:   mockLocator,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*searchService)

	return svc, mockVenueRepo, mockLocator
}

func publishedVenue(name string) *entity.Venue {
	return &entity.Venue{
		ID:     uuid.New(),
		Slug:   name,
		Name:   name,
		Status: entity.VenueStatusPublished,
	}
}

func venueAt(name string, lat, lon float64) *entity.Venue {
	venue := publishedVenue(name)
	venue.Latitude = &lat
	venue.Longitude = &lon

	return venue
}

func TestSearchService_Query_FilteredMode(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	ctx := context.Background()
	venues := []*entity.Venue{publishedVenue("trampoline-world"), publishedVenue("splash-zone")}

	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{Category: "trampoline"}).
		Return(venues, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{Category: "trampoline"}, 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchModeFiltered, page.Mode)
	assert.Equal(t, 2, page.TotalResults)
	assert.Len(t, page.Results, 2)
	assert.Nil(t, page.Results[0].DistanceKm)
	assert.Empty(t, page.Results[0].DistanceLabel)
}

func TestSearchService_Query_NearbyMode(t *testing.T) {
	svc, mockVenueRepo, mockLocator := newSearchServiceForTest(t)

	ctx := context.Background()
	position := &service.Position{Point: orb.Point{151.2093, -33.8688}}

	near := venueAt("near", -33.8700, 151.2100)
	far := venueAt("far", -33.8150, 151.0050)
	ungeocoded := publishedVenue("ungeocoded")

	mockLocator.On("CurrentPosition", ctx).Return(position, nil)
	// Repo order is deliberately not distance order.
	mockVenueRepo.On("ListNearby", ctx, position.Point, 10.0, repository.VenueQuery{}).
		Return([]*entity.Venue{far, ungeocoded, near}, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{UseLocation: true}, 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchModeNearby, page.Mode)
	assert.Empty(t, page.LocationNotice)
	require.Len(t, page.Results, 3)

	// Closest first, venues without coordinates last.
	assert.Equal(t, near.ID, page.Results[0].Venue.ID)
	assert.Equal(t, far.ID, page.Results[1].Venue.ID)
	assert.Equal(t, ungeocoded.ID, page.Results[2].Venue.ID)

	require.NotNil(t, page.Results[0].DistanceKm)
	require.NotNil(t, page.Results[1].DistanceKm)
	assert.Less(t, *page.Results[0].DistanceKm, *page.Results[1].DistanceKm)
	assert.Contains(t, page.Results[0].DistanceLabel, "away")
	assert.Nil(t, page.Results[2].DistanceKm)
}

func TestSearchService_Query_NearbyCarriesFilters(t *testing.T) {
	svc, mockVenueRepo, mockLocator := newSearchServiceForTest(t)

	ctx := context.Background()
	position := &service.Position{Point: orb.Point{151.2093, -33.8688}}

	mockLocator.On("CurrentPosition", ctx).Return(position, nil)
	mockVenueRepo.On("ListNearby", ctx, position.Point, 10.0, repository.VenueQuery{Category: "swimming"}).
		Return([]*entity.Venue{venueAt("pool", -33.8700, 151.2100)}, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{UseLocation: true, Category: "swimming"}, 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchModeNearby, page.Mode)
	require.Len(t, page.Results, 1)
	assert.NotNil(t, page.Results[0].DistanceKm)
}

func TestSearchService_Query_LocationFailureFallsBackToFiltered(t *testing.T) {
	svc, mockVenueRepo, mockLocator := newSearchServiceForTest(t)

	ctx := context.Background()
	venues := []*entity.Venue{publishedVenue("splash-zone")}

	mockLocator.On("CurrentPosition", ctx).Return(nil, service.ErrLocationUnsupported)
	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{Category: "swimming"}).
		Return(venues, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{UseLocation: true, Category: "swimming"}, 1)
	require.NoError(t, err)
	assert.Equal(t, usecase.SearchModeFiltered, page.Mode)
	assert.Equal(t, domainerrors.ErrLocationUnavailable.Message(), page.LocationNotice)
	require.Len(t, page.Results, 1)
	assert.Nil(t, page.Results[0].DistanceKm)
}

func TestSearchService_Query_LocationFailureThenRepositoryError(t *testing.T) {
	svc, mockVenueRepo, mockLocator := newSearchServiceForTest(t)

	ctx := context.Background()
	mockLocator.On("CurrentPosition", ctx).Return(nil, service.ErrLocationUnsupported)
	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{}).
		Return(nil, errors.New("connection reset"))

	page, err := svc.Query(ctx, usecase.SearchFilters{UseLocation: true}, 1)
	assert.Nil(t, page)
	assert.Error(t, err)
}

func TestSearchService_Query_FacilitiesPostFilter(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	ctx := context.Background()
	withBoth := publishedVenue("with-both")
	withBoth.Facilities = []string{"parking", "cafe", "toilets"}
	withOne := publishedVenue("with-one")
	withOne.Facilities = []string{"parking"}

	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{City: "sydney"}).
		Return([]*entity.Venue{withBoth, withOne}, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{
		City:       "sydney",
		Facilities: []string{"parking", "cafe"},
	}, 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, withBoth.ID, page.Results[0].Venue.ID)
}

func TestSearchService_Query_OpenNowPostFilter(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	// Monday 10:00.
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	open := publishedVenue("open")
	open.OpeningHours = entity.OpeningHours{
		time.Monday: {Open: "09:00", Close: "17:00"},
	}
	closedToday := publishedVenue("closed-today")
	closedToday.OpeningHours = entity.OpeningHours{
		time.Monday: {Closed: true},
	}
	noHours := publishedVenue("no-hours")

	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{State: "nsw"}).
		Return([]*entity.Venue{open, closedToday, noHours}, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{State: "nsw", OpenNow: true}, 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, open.ID, page.Results[0].Venue.ID)
}

func TestSearchService_Query_ActiveOfferPostFilter(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := context.Background()
	withOffer := publishedVenue("with-offer")
	withOffer.Offers = []*entity.Offer{
		{IsActive: true, ExpiresAt: now.Add(24 * time.Hour)},
	}
	expired := publishedVenue("expired-offer")
	expired.Offers = []*entity.Offer{
		{IsActive: true, ExpiresAt: now.Add(-time.Hour)},
	}
	switchedOff := publishedVenue("switched-off")
	switchedOff.Offers = []*entity.Offer{
		{IsActive: false, ExpiresAt: now.Add(24 * time.Hour)},
	}

	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{Category: "play-centres"}).
		Return([]*entity.Venue{withOffer, expired, switchedOff}, nil)

	page, err := svc.Query(ctx, usecase.SearchFilters{Category: "play-centres", HasActiveOffer: true}, 1)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, withOffer.ID, page.Results[0].Venue.ID)
}

func TestSearchService_Query_Pagination(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	ctx := context.Background()
	venues := make([]*entity.Venue, 45)
	for i := range venues {
		venues[i] = publishedVenue(fmt.Sprintf("venue-%d", i))
	}

	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{Text: "play"}).
		Return(venues, nil)

	filters := usecase.SearchFilters{Text: "play"}

	first, err := svc.Query(ctx, filters, 1)
	require.NoError(t, err)
	assert.Len(t, first.Results, 20)
	assert.Equal(t, 45, first.TotalResults)
	assert.Equal(t, 3, first.TotalPages)

	last, err := svc.Query(ctx, filters, 3)
	require.NoError(t, err)
	assert.Len(t, last.Results, 5)
	assert.Equal(t, venues[40].ID, last.Results[0].Venue.ID)

	beyond, err := svc.Query(ctx, filters, 4)
	require.NoError(t, err)
	assert.Empty(t, beyond.Results)
	assert.Equal(t, 4, beyond.Page)
}

func TestSearchService_Query_RepositoryError(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	ctx := context.Background()
	mockVenueRepo.On("ListPublished", ctx, mock.AnythingOfType("repository.VenueQuery")).
		Return(nil, errors.New("connection reset"))

	page, err := svc.Query(ctx, usecase.SearchFilters{Category: "dance"}, 1)
	assert.Nil(t, page)
	assert.Error(t, err)
}

func TestSearchSession_MutationsResetPage(t *testing.T) {
	svc, _, _ := newSearchServiceForTest(t)

	session := svc.NewSession()
	session.SetPage(3)
	assert.Equal(t, 3, session.Page())

	session.UpdateFilters(func(f *usecase.SearchFilters) { f.Category = "gymnastics" })
	assert.Equal(t, 1, session.Page())
	assert.Equal(t, "gymnastics", session.Filters().Category)

	session.SetPage(2)
	session.UseLocation(true)
	assert.Equal(t, 1, session.Page())
	assert.True(t, session.Filters().UseLocation)

	session.SetPage(2)
	session.ClearFilters()
	assert.Equal(t, 1, session.Page())
	assert.Equal(t, usecase.SearchFilters{}, session.Filters())
}

func TestSearchSession_Refresh_StoresResult(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	ctx := context.Background()
	venues := []*entity.Venue{publishedVenue("museum")}
	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{Category: "swimming"}).
		Return(venues, nil)

	session := svc.NewSession()
	assert.Nil(t, session.Current())

	session.UpdateFilters(func(f *usecase.SearchFilters) { f.Category = "swimming" })

	page, err := session.Refresh(ctx)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, page, session.Current())
}

func TestSearchSession_Refresh_DiscardsStaleResponse(t *testing.T) {
	svc, mockVenueRepo, _ := newSearchServiceForTest(t)

	ctx := context.Background()
	session := svc.NewSession()
	session.UpdateFilters(func(f *usecase.SearchFilters) { f.Category = "swimming" })

	// The filters change while the query is in flight, superseding it.
	mockVenueRepo.On("ListPublished", ctx, repository.VenueQuery{Category: "swimming"}).
		Run(func(mock.Arguments) {
			session.UpdateFilters(func(f *usecase.SearchFilters) { f.Category = "gymnastics" })
		}).
		Return([]*entity.Venue{publishedVenue("museum")}, nil)

	page, err := session.Refresh(ctx)
	assert.Nil(t, page)
	require.ErrorIs(t, err, usecase.ErrStaleQuery)
	assert.Nil(t, session.Current())
}
