package impl

import (
	"context"
	"strings"
	"testing"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/domain/service"
	mockRepo "playfinder/internal/mocks/repository"
	mockSvc "playfinder/internal/mocks/service"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type venueServiceMocks struct {
	txManager      *mockRepo.MockTransactionManager
	venueRepo      *mockRepo.MockVenueRepository
	photoRepo      *mockRepo.MockPhotoRepository
	photoStorage   *mockSvc.MockPhotoStorage
	eventPublisher *mockSvc.MockEventPublisher
	qrService      *mockSvc.MockQRCodeService
}

func newVenueServiceForTest(t *testing.T) (usecase.VenueUsecase, *venueServiceMocks) {
	mocks := &venueServiceMocks{
		txManager:      mockRepo.NewMockTransactionManager(t),
		venueRepo:      mockRepo.NewMockVenueRepository(t),
		photoRepo:      mockRepo.NewMockPhotoRepository(t),
		photoStorage:   mockSvc.NewMockPhotoStorage(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
		qrService:      mockSvc.NewMockQRCodeService(t),
	}

	svc := NewVenueService(VenueServiceParams{
		TxManager:      mocks.txManager,
		VenueRepo:      mocks.venueRepo,
		PhotoRepo:      mocks.photoRepo,
		PhotoStorage:   mocks.photoStorage,
		EventPublisher: mocks.eventPublisher,
		QRService:      mocks.qrService,
		Logger:         newDiscardLogger(),
	})

	return svc, mocks
}

func validSubmitInput(ownerID uuid.UUID) *usecase.SubmitVenueInput {
	return &usecase.SubmitVenueInput{
		OwnerID:    ownerID,
		Name:       "Little Kickers",
		Suburb:     "Newtown",
		City:       "sydney",
		State:      "NSW",
		Categories: []string{"play-centres"},
		AgeMin:     2,
		AgeMax:     8,
		PriceRange: 2,
	}
}

func TestVenueService_SubmitVenue_Success(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()

	mocks.venueRepo.On("Create", ctx, mock.AnythingOfType("*entity.Venue")).Return(nil)

	venue, err := svc.SubmitVenue(ctx, validSubmitInput(ownerID))
	require.NoError(t, err)
	assert.Equal(t, "little-kickers-newtown", venue.Slug)
	assert.Equal(t, "nsw", venue.State)
	assert.Equal(t, entity.VenueStatusPending, venue.Status)
	require.NotNil(t, venue.OwnerID)
	assert.Equal(t, ownerID, *venue.OwnerID)
}

func TestVenueService_SubmitVenue_SlugRetry(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	var attemptedSlugs []string

	record := func(args mock.Arguments) {
		venue := args.Get(1).(*entity.Venue)
		attemptedSlugs = append(attemptedSlugs, venue.Slug)
	}

	mocks.venueRepo.On("Create", ctx, mock.AnythingOfType("*entity.Venue")).
		Run(record).Return(domainerrors.ErrVenueSlugTaken).Twice()
	mocks.venueRepo.On("Create", ctx, mock.AnythingOfType("*entity.Venue")).
		Run(record).Return(nil).Once()

	venue, err := svc.SubmitVenue(ctx, validSubmitInput(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"little-kickers-newtown",
		"little-kickers-newtown-2",
		"little-kickers-newtown-3",
	}, attemptedSlugs)
	assert.Equal(t, "little-kickers-newtown-3", venue.Slug)
}

func TestVenueService_UpdateVenue_ResetsToPending(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	venueID := uuid.New()
	existing := &entity.Venue{
		ID:      venueID,
		Slug:    "little-kickers-newtown",
		Name:    "Little Kickers",
		Status:  entity.VenueStatusPublished,
		OwnerID: &ownerID,
	}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(existing, nil)
	mocks.venueRepo.On("Update", ctx, mock.AnythingOfType("*entity.Venue")).Return(nil)

	updated, err := svc.UpdateVenue(ctx, &usecase.UpdateVenueInput{
		VenueID:    venueID,
		ActorID:    ownerID,
		Name:       "Little Kickers Newtown",
		State:      "NSW",
		Categories: []string{"soccer"},
		AgeMin:     2,
		AgeMax:     8,
		PriceRange: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Little Kickers Newtown", updated.Name)
	assert.Equal(t, entity.VenueStatusPending, updated.Status)
}

func TestVenueService_ModerationStats(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	mocks.venueRepo.On("CountByStatus", ctx, entity.VenueStatusPending).Return(int64(4), nil)
	mocks.venueRepo.On("CountByStatus", ctx, entity.VenueStatusPublished).Return(int64(120), nil)
	mocks.venueRepo.On("CountByStatus", ctx, entity.VenueStatusRejected).Return(int64(7), nil)

	stats, err := svc.ModerationStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ModerationStats{Pending: 4, Published: 120, Rejected: 7}, stats)
}

func TestVenueService_GetVenueBySlug_PublishedVisibleToAnyone(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venue := publishedVenue("little-kickers-newtown")

	mocks.venueRepo.On("FindBySlug", ctx, "little-kickers-newtown").Return(venue, nil)

	got, err := svc.GetVenueBySlug(ctx, "little-kickers-newtown", nil)
	require.NoError(t, err)
	assert.Equal(t, venue, got)
}

func TestVenueService_GetVenueBySlug_PendingVisibleToOwner(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	venue := &entity.Venue{
		ID:      uuid.New(),
		Slug:    "pending-venue",
		Status:  entity.VenueStatusPending,
		OwnerID: &ownerID,
	}
	owner := &entity.User{
		ID:      ownerID,
		Profile: &entity.Profile{UserID: ownerID, Role: entity.RoleVenueOwner},
	}

	mocks.venueRepo.On("FindBySlug", ctx, "pending-venue").Return(venue, nil)

	got, err := svc.GetVenueBySlug(ctx, "pending-venue", owner)
	require.NoError(t, err)
	assert.Equal(t, venue, got)
}

func TestVenueService_GetVenueBySlug_PendingVisibleToAdmin(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	ownerID := uuid.New()
	adminID := uuid.New()
	venue := &entity.Venue{
		ID:      uuid.New(),
		Slug:    "pending-venue",
		Status:  entity.VenueStatusPending,
		OwnerID: &ownerID,
	}
	admin := &entity.User{
		ID:      adminID,
		Profile: &entity.Profile{UserID: adminID, Role: entity.RoleAdmin},
	}

	mocks.venueRepo.On("FindBySlug", ctx, "pending-venue").Return(venue, nil)

	got, err := svc.GetVenueBySlug(ctx, "pending-venue", admin)
	require.NoError(t, err)
	assert.Equal(t, venue, got)
}

func TestVenueService_ApproveVenue_PublishesAndEmitsEvent(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Slug: "pending-venue", Status: entity.VenueStatusPending}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.venueRepo.On("UpdateStatus", ctx, venueID, entity.VenueStatusPublished).Return(nil)
	mocks.eventPublisher.On("PublishModerationEvent", ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.ModerationEvent)
			assert.Equal(t, venueID.String(), event.VenueID)
			assert.Equal(t, "pending-venue", event.VenueSlug)
			assert.Equal(t, "published", event.Decision)
			assert.False(t, event.DecidedAt.IsZero())
		}).
		Return(nil)

	err := svc.ApproveVenue(ctx, venueID)
	require.NoError(t, err)
}

func TestVenueService_RejectVenue_Success(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Slug: "pending-venue", Status: entity.VenueStatusPending}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.venueRepo.On("UpdateStatus", ctx, venueID, entity.VenueStatusRejected).Return(nil)
	mocks.eventPublisher.On("PublishModerationEvent", ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	err := svc.RejectVenue(ctx, venueID)
	require.NoError(t, err)
}

func TestVenueService_ApproveVenue_EventFailureIsNonFatal(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Slug: "pending-venue", Status: entity.VenueStatusPending}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.venueRepo.On("UpdateStatus", ctx, venueID, entity.VenueStatusPublished).Return(nil)
	mocks.eventPublisher.On("PublishModerationEvent", ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(assert.AnError)

	err := svc.ApproveVenue(ctx, venueID)
	require.NoError(t, err)
}

func TestVenueService_UploadPhotos_AppendsToGallery(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	ownerID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished, OwnerID: &ownerID}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.photoRepo.On("ListByVenue", ctx, venueID).
		Return([]*entity.Photo{{ID: uuid.New(), VenueID: venueID, Position: 0}}, nil)
	mocks.photoStorage.On("Upload",
		mock.Anything,
		mock.MatchedBy(func(key string) bool { return strings.HasPrefix(key, "venues/"+venueID.String()+"/") }),
		"image/jpeg",
		mock.Anything,
	).Return("https://cdn.example.com/photo.jpg", nil)
	mocks.photoRepo.On("Create", ctx, mock.AnythingOfType("*entity.Photo")).Return(nil)

	photos, err := svc.UploadPhotos(ctx, venueID, ownerID, []usecase.PhotoUpload{
		{FileName: "slide.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpeg-a")},
		{FileName: "cafe.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpeg-b")},
	})
	require.NoError(t, err)
	require.Len(t, photos, 2)

	// Positions continue after the existing gallery, in upload order.
	assert.Equal(t, 1, photos[0].Position)
	assert.Equal(t, 2, photos[1].Position)
	assert.Equal(t, "https://cdn.example.com/photo.jpg", photos[0].URL)
	assert.Equal(t, venueID, photos[0].VenueID)
}

func TestVenueService_ReorderPhotos_Success(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	ownerID := uuid.New()
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}
	orderedIDs := []uuid.UUID{uuid.New(), uuid.New()}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PhotoRepo").Return(mocks.photoRepo)
	mocks.photoRepo.On("SaveOrdering", ctx, venueID, orderedIDs).Return(nil)

	mocks.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.ReorderPhotos(ctx, venueID, ownerID, orderedIDs)
	require.NoError(t, err)
}

func TestVenueService_DeletePhoto_RemovesRowAndBlob(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	ownerID := uuid.New()
	photoID := uuid.New()
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}
	photo := &entity.Photo{ID: photoID, VenueID: venueID, StorageKey: "venues/abc/slide.jpg"}

	mocks.photoRepo.On("FindByID", ctx, photoID).Return(photo, nil)
	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.photoRepo.On("Delete", ctx, photoID).Return(nil)
	mocks.photoStorage.On("Remove", ctx, "venues/abc/slide.jpg").Return(nil)

	err := svc.DeletePhoto(ctx, photoID, ownerID)
	require.NoError(t, err)
}

func TestVenueService_VenuePoster_Success(t *testing.T) {
	svc, mocks := newVenueServiceForTest(t)

	ctx := context.Background()
	venue := publishedVenue("little-kickers-newtown")

	mocks.venueRepo.On("FindBySlug", ctx, "little-kickers-newtown").Return(venue, nil)
	mocks.qrService.On("GenerateVenueQR", "little-kickers-newtown").Return([]byte("png-bytes"), nil)

	png, err := svc.VenuePoster(ctx, "little-kickers-newtown")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Little Kickers", "little-kickers"},
		{"  Mega! Play & Climb  ", "mega-play-climb"},
		{"Café Crèche", "café-crèche"},
		{"already-slugged", "already-slugged"},
		{"123 Fun", "123-fun"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}
