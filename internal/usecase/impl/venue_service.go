package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	deliverycontext "playfinder/internal/delivery/context"
	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/domain/service"
	"playfinder/internal/refdata"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	maxSlugAttempts      = 5
	maxConcurrentUploads = 4
)

// venueService implements the VenueUsecase interface.
type venueService struct {
	txManager      repository.TransactionManager
	venueRepo      repository.VenueRepository
	photoRepo      repository.PhotoRepository
	photoStorage   service.PhotoStorage
	eventPublisher service.EventPublisher
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// VenueServiceParams holds dependencies for VenueService, injected by Fx.
type VenueServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	VenueRepo      repository.VenueRepository
	PhotoRepo      repository.PhotoRepository
	PhotoStorage   service.PhotoStorage
	EventPublisher service.EventPublisher
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewVenueService is the constructor for venueService.
func NewVenueService(params VenueServiceParams) usecase.VenueUsecase {
	return &venueService{
		txManager:      params.TxManager,
		venueRepo:      params.VenueRepo,
		photoRepo:      params.PhotoRepo,
		photoStorage:   params.PhotoStorage,
		eventPublisher: params.EventPublisher,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

func (srv *venueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitVenue creates a pending listing owned by the submitting user.
func (srv *venueService) SubmitVenue(ctx context.Context, input *usecase.SubmitVenueInput) (*entity.Venue, error) {
	srv.log(ctx).Info("Submitting venue", slog.String("name", input.Name), slog.Any("ownerID", input.OwnerID))

	if err := validateVenueInput(input.Name, input.State, input.Categories, input.AgeMin, input.AgeMax, input.PriceRange); err != nil {
		return nil, err
	}

	ownerID := input.OwnerID
	venue := &entity.Venue{
		Name:         input.Name,
		Description:  input.Description,
		Address:      input.Address,
		Suburb:       input.Suburb,
		City:         input.City,
		State:        strings.ToLower(input.State),
		Postcode:     input.Postcode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Categories:   input.Categories,
		AgeMin:       input.AgeMin,
		AgeMax:       input.AgeMax,
		Indoor:       input.Indoor,
		PriceRange:   input.PriceRange,
		Facilities:   input.Facilities,
		OpeningHours: input.OpeningHours,
		Status:       entity.VenueStatusPending,
		OwnerID:      &ownerID,
	}

	// Retry with a numeric suffix when the natural slug is taken.
	base := slugify(input.Name + " " + input.Suburb)
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		venue.Slug = base
		if attempt > 0 {
			venue.Slug = fmt.Sprintf("%s-%d", base, attempt+1)
		}

		err := srv.venueRepo.Create(ctx, venue)
		if err == nil {
			return venue, nil
		}
		if !errors.Is(err, domainerrors.ErrVenueSlugTaken) {
			return nil, errors.Wrap(err, "failed to create venue")
		}
	}

	return nil, domainerrors.ErrVenueSlugTaken
}

// UpdateVenue applies owner edits. Only the listing's owner may edit, and
// edited listings drop back to pending until an admin re-approves them.
func (srv *venueService) UpdateVenue(ctx context.Context, input *usecase.UpdateVenueInput) (*entity.Venue, error) {
	if err := validateVenueInput(input.Name, input.State, input.Categories, input.AgeMin, input.AgeMax, input.PriceRange); err != nil {
		return nil, err
	}

	venue, err := srv.loadOwnedVenue(ctx, input.VenueID, input.ActorID)
	if err != nil {
		return nil, err
	}

	venue.Name = input.Name
	venue.Description = input.Description
	venue.Address = input.Address
	venue.Suburb = input.Suburb
	venue.City = input.City
	venue.State = strings.ToLower(input.State)
	venue.Postcode = input.Postcode
	venue.Latitude = input.Latitude
	venue.Longitude = input.Longitude
	venue.Categories = input.Categories
	venue.AgeMin = input.AgeMin
	venue.AgeMax = input.AgeMax
	venue.Indoor = input.Indoor
	venue.PriceRange = input.PriceRange
	venue.Facilities = input.Facilities
	venue.OpeningHours = input.OpeningHours
	venue.Status = entity.VenueStatusPending

	if err := srv.venueRepo.Update(ctx, venue); err != nil {
		return nil, errors.Wrap(err, "failed to update venue")
	}

	srv.log(ctx).Info("Venue updated, awaiting re-approval", slog.Any("venueID", venue.ID))

	return venue, nil
}

// GetVenueBySlug returns a venue with associations. Listings outside the
// published state are only visible to their owner or an admin.
func (srv *venueService) GetVenueBySlug(ctx context.Context, slug string, viewer *entity.User) (*entity.Venue, error) {
	venue, err := srv.venueRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to load venue")
	}

	if venue.Status == entity.VenueStatusPublished {
		return venue, nil
	}

	if viewer != nil {
		if viewer.Profile.IsAdmin() {
			return venue, nil
		}
		if venue.OwnerID != nil && *venue.OwnerID == viewer.ID {
			return venue, nil
		}
	}

	// Unpublished listings look absent to everyone else.
	return nil, domainerrors.ErrVenueNotFound
}

// ListMyVenues returns every listing managed by the user.
func (srv *venueService) ListMyVenues(ctx context.Context, ownerID uuid.UUID) ([]*entity.Venue, error) {
	venues, err := srv.venueRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned venues")
	}

	return venues, nil
}

// ListPendingVenues returns the moderation queue, oldest first.
func (srv *venueService) ListPendingVenues(ctx context.Context) ([]*entity.Venue, error) {
	venues, err := srv.venueRepo.ListByStatus(ctx, entity.VenueStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending venues")
	}

	return venues, nil
}

// ModerationStats counts listings per moderation state for the dashboard.
func (srv *venueService) ModerationStats(ctx context.Context) (*usecase.ModerationStats, error) {
	stats := &usecase.ModerationStats{}
	counters := []struct {
		status entity.VenueStatus
		target *int64
	}{
		{entity.VenueStatusPending, &stats.Pending},
		{entity.VenueStatusPublished, &stats.Published},
		{entity.VenueStatusRejected, &stats.Rejected},
	}

	for _, counter := range counters {
		count, err := srv.venueRepo.CountByStatus(ctx, counter.status)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to count %s venues", counter.status)
		}
		*counter.target = count
	}

	return stats, nil
}

// ApproveVenue publishes a pending listing and emits a moderation event.
func (srv *venueService) ApproveVenue(ctx context.Context, venueID uuid.UUID) error {
	return srv.decideVenue(ctx, venueID, entity.VenueStatusPublished)
}

// RejectVenue declines a pending listing and emits a moderation event.
func (srv *venueService) RejectVenue(ctx context.Context, venueID uuid.UUID) error {
	return srv.decideVenue(ctx, venueID, entity.VenueStatusRejected)
}

func (srv *venueService) decideVenue(ctx context.Context, venueID uuid.UUID, status entity.VenueStatus) error {
	venue, err := srv.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return domainerrors.ErrVenueNotFound
		}

		return errors.Wrap(err, "failed to load venue for moderation")
	}

	// Only pending listings can be decided.
	if venue.Status != entity.VenueStatusPending {
		return domainerrors.ErrConflict.WrapMessage("venue is not awaiting moderation")
	}

	if err := srv.venueRepo.UpdateStatus(ctx, venueID, status); err != nil {
		return errors.Wrap(err, "failed to update venue status")
	}

	srv.log(ctx).Info("Venue moderated",
		slog.Any("venueID", venueID),
		slog.String("decision", status.String()),
	)

	// Event delivery is best-effort; the decision itself is already durable.
	event := &service.ModerationEvent{
		VenueID:   venueID.String(),
		VenueSlug: venue.Slug,
		Decision:  status.String(),
		DecidedAt: time.Now().UTC(),
	}
	if err := srv.eventPublisher.PublishModerationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish moderation event", slog.Any("error", err))
	}

	return nil
}

// UploadPhotos stores photo binaries in parallel and appends them to the gallery.
func (srv *venueService) UploadPhotos(ctx context.Context, venueID, actorID uuid.UUID, uploads []usecase.PhotoUpload) ([]*entity.Photo, error) {
	if _, err := srv.loadOwnedVenue(ctx, venueID, actorID); err != nil {
		return nil, err
	}

	existing, err := srv.photoRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list existing photos")
	}

	photos := make([]*entity.Photo, len(uploads))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentUploads)
	for i, upload := range uploads {
		group.Go(func() error {
			key := fmt.Sprintf("venues/%s/%s-%s", venueID, uuid.New(), slugify(upload.FileName))

			url, err := srv.photoStorage.Upload(groupCtx, key, upload.ContentType, upload.Body)
			if err != nil {
				return errors.Wrapf(err, "failed to upload photo %s", upload.FileName)
			}

			photos[i] = &entity.Photo{
				VenueID:    venueID,
				StorageKey: key,
				URL:        url,
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Rows are created sequentially so gallery positions stay deterministic.
	for i, photo := range photos {
		photo.Position = len(existing) + i
		if err := srv.photoRepo.Create(ctx, photo); err != nil {
			return nil, errors.Wrap(err, "failed to record photo")
		}
	}

	return photos, nil
}

// ReorderPhotos rewrites the gallery order.
func (srv *venueService) ReorderPhotos(ctx context.Context, venueID, actorID uuid.UUID, orderedIDs []uuid.UUID) error {
	if _, err := srv.loadOwnedVenue(ctx, venueID, actorID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PhotoRepo().SaveOrdering(ctx, venueID, orderedIDs)
	})
	if err != nil {
		return errors.Wrap(err, "failed to reorder photos")
	}

	return nil
}

// DeletePhoto removes a photo row and its blob.
func (srv *venueService) DeletePhoto(ctx context.Context, photoID, actorID uuid.UUID) error {
	photo, err := srv.photoRepo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load photo")
	}

	if _, err := srv.loadOwnedVenue(ctx, photo.VenueID, actorID); err != nil {
		return err
	}

	if err := srv.photoRepo.Delete(ctx, photoID); err != nil {
		return errors.Wrap(err, "failed to delete photo row")
	}

	// Blob removal is best-effort; an orphan blob is harmless.
	if err := srv.photoStorage.Remove(ctx, photo.StorageKey); err != nil {
		srv.log(ctx).Warn("Failed to remove photo blob", slog.String("key", photo.StorageKey), slog.Any("error", err))
	}

	return nil
}

// VenuePoster renders a printable QR code for the venue page.
func (srv *venueService) VenuePoster(ctx context.Context, slug string) ([]byte, error) {
	if _, err := srv.venueRepo.FindBySlug(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to load venue for poster")
	}

	png, err := srv.qrService.GenerateVenueQR(slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render venue QR code")
	}

	return png, nil
}

func (srv *venueService) loadOwnedVenue(ctx context.Context, venueID, actorID uuid.UUID) (*entity.Venue, error) {
	venue, err := srv.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to load venue")
	}

	if venue.OwnerID == nil || *venue.OwnerID != actorID {
		return nil, domainerrors.ErrVenueOwnershipViolation
	}

	return venue, nil
}

func validateVenueInput(name, state string, categories []string, ageMin, ageMax, priceRange int) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("venue name is required")
	}
	if !refdata.ValidState(state) {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown state code")
	}
	if len(categories) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("at least one category is required")
	}
	for _, slug := range categories {
		if !refdata.ValidCategory(slug) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category: " + slug)
		}
	}
	if ageMin < 0 || ageMax < ageMin {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid age range")
	}
	if priceRange < 1 || priceRange > 4 {
		return domainerrors.ErrValidationFailed.WrapMessage("price range must be between 1 and 4")
	}

	return nil
}

// slugify lowercases and collapses non-alphanumeric runs into hyphens.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false

			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
