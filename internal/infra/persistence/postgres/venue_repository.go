package postgres

import (
	"context"
	"encoding/json"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/geo"
	"playfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// venueRepository implements the domain.VenueRepository interface.
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository is the constructor for venueRepository.
func NewVenueRepository(db *gorm.DB) repository.VenueRepository {
	return &venueRepository{db: db}
}

// ListPublished returns published venues matching the query, offers preloaded,
// ordered promoted-first then by average rating descending.
func (repo *venueRepository) ListPublished(ctx context.Context, query repository.VenueQuery) ([]*entity.Venue, error) {
	db := repo.applyQuery(repo.publishedScope(ctx), query)

	var venueModels []*model.VenueModel
	if err := db.
		Preload("Categories").
		Preload("Offers").
		Order("is_promoted DESC, average_rating DESC").
		Find(&venueModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toVenueDomainList(venueModels)
}

// ListNearby returns published venues within radiusKm of center. A bounding
// box prefilter runs in SQL; the exact Haversine cut happens in Go.
func (repo *venueRepository) ListNearby(ctx context.Context, center orb.Point, radiusKm float64, query repository.VenueQuery) ([]*entity.Venue, error) {
	latDelta := radiusKm / 111.0 // ~111 km per degree of latitude
	lonDelta := latDelta * 2     // generous at Australian latitudes; refined below

	db := repo.applyQuery(repo.publishedScope(ctx), query).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", center.Lat()-latDelta, center.Lat()+latDelta).
		Where("longitude BETWEEN ? AND ?", center.Lon()-lonDelta, center.Lon()+lonDelta)

	var venueModels []*model.VenueModel
	if err := db.
		Preload("Categories").
		Preload("Offers").
		Order("is_promoted DESC, average_rating DESC").
		Find(&venueModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	venues, err := toVenueDomainList(venueModels)
	if err != nil {
		return nil, err
	}

	within := make([]*entity.Venue, 0, len(venues))
	for _, venue := range venues {
		point := orb.Point{*venue.Longitude, *venue.Latitude}
		if geo.Distance(center, point) <= radiusKm {
			within = append(within, venue)
		}
	}

	return within, nil
}

// FindBySlug returns a venue with all associations joined, regardless of status.
func (repo *venueRepository) FindBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	var venueM model.VenueModel
	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Offers", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("slug = ?", slug).
		First(&venueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVenueNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVenueDomain(&venueM)
}

// FindByID retrieves a venue without associations.
func (repo *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venueM model.VenueModel
	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&venueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVenueNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVenueDomain(&venueM)
}

// Create persists a new venue together with its category join rows.
func (repo *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	venueM, err := fromVenueDomain(venue)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(venueM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVenueSlugTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required venue fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create venue")
	}

	venue.ID = venueM.ID
	venue.CreatedAt = venueM.CreatedAt
	venue.UpdatedAt = venueM.UpdatedAt

	return nil
}

// Update rewrites the venue row and replaces its category join rows.
func (repo *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	venueM, err := fromVenueDomain(venue)
	if err != nil {
		return err
	}

	db := repo.db.WithContext(ctx)

	if err := db.Where("venue_id = ?", venue.ID).Delete(&model.VenueCategoryModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	if err := db.Save(venueM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrVenueSlugTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update venue")
	}

	return nil
}

// UpdateStatus transitions the moderation state.
func (repo *venueRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VenueStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrVenueNotFound
	}

	return nil
}

// AssignOwner sets the owning user on an unclaimed listing.
func (repo *venueRepository) AssignOwner(ctx context.Context, venueID, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ? AND owner_id IS NULL", venueID).
		Update("owner_id", ownerID)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVenueAlreadyOwned
	}

	return nil
}

// ListByStatus returns venues in a moderation state, oldest first so the
// review queue is first-come first-served.
func (repo *venueRepository) ListByStatus(ctx context.Context, status entity.VenueStatus) ([]*entity.Venue, error) {
	var venueModels []*model.VenueModel
	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&venueModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toVenueDomainList(venueModels)
}

// CountByStatus returns the number of venues in a moderation state.
func (repo *venueRepository) CountByStatus(ctx context.Context, status entity.VenueStatus) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// ListByOwner returns all listings managed by a user.
func (repo *venueRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Venue, error) {
	var venueModels []*model.VenueModel
	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Offers").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&venueModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toVenueDomainList(venueModels)
}

// AddFavoriteCount adjusts the denormalised favourite counter by delta.
func (repo *venueRepository) AddFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ?", id).
		Update("favorite_count", gorm.Expr("GREATEST(favorite_count + ?, 0)", delta))
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrVenueNotFound
	}

	return nil
}

// RefreshRatingStats recomputes average_rating and review_count from reviews.
func (repo *venueRepository) RefreshRatingStats(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": gorm.Expr("COALESCE((SELECT AVG(rating) FROM reviews WHERE venue_id = ?), 0)", id),
			"review_count":   gorm.Expr("(SELECT COUNT(*) FROM reviews WHERE venue_id = ?)", id),
		}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// ListPublishedSlugs returns slug and last-modified pairs for the sitemap job.
func (repo *venueRepository) ListPublishedSlugs(ctx context.Context) ([]repository.SlugEntry, error) {
	var entries []repository.SlugEntry
	if err := repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Select("slug, updated_at").
		Where("status = ?", entity.VenueStatusPublished.String()).
		Order("slug ASC").
		Scan(&entries).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return entries, nil
}

func (repo *venueRepository) publishedScope(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.VenueModel{}).
		Where("status = ?", entity.VenueStatusPublished.String())
}

// applyQuery translates the nil-able query fields into SQL predicates.
func (repo *venueRepository) applyQuery(db *gorm.DB, query repository.VenueQuery) *gorm.DB {
	if query.Category != "" {
		db = db.Where("id IN (?)",
			repo.db.Model(&model.VenueCategoryModel{}).
				Select("venue_id").
				Where("category_slug = ?", query.Category))
	}
	if query.City != "" {
		db = db.Where("city = ?", query.City)
	}
	if query.State != "" {
		db = db.Where("state = ?", query.State)
	}
	if query.AgeMin != nil {
		db = db.Where("age_min >= ?", *query.AgeMin)
	}
	if query.AgeMax != nil {
		db = db.Where("age_max <= ?", *query.AgeMax)
	}
	if query.Indoor != nil {
		db = db.Where("indoor = ?", *query.Indoor)
	}
	if query.PriceRange != nil {
		db = db.Where("price_range = ?", *query.PriceRange)
	}
	if query.Text != "" {
		pattern := "%" + query.Text + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	return db
}

// --- Mapper Functions ---

func toVenueDomain(data *model.VenueModel) (*entity.Venue, error) {
	if data == nil {
		return nil, nil
	}

	var facilities []string
	if len(data.Facilities) > 0 {
		if err := json.Unmarshal(data.Facilities, &facilities); err != nil {
			return nil, errors.Wrap(err, "decode facilities")
		}
	}

	var hours entity.OpeningHours
	if len(data.OpeningHours) > 0 {
		if err := json.Unmarshal(data.OpeningHours, &hours); err != nil {
			return nil, errors.Wrap(err, "decode opening hours")
		}
	}

	categories := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		categories = append(categories, c.CategorySlug)
	}

	venue := &entity.Venue{
		ID:            data.ID,
		Slug:          data.Slug,
		Name:          data.Name,
		Description:   data.Description,
		Address:       data.Address,
		Suburb:        data.Suburb,
		City:          data.City,
		State:         data.State,
		Postcode:      data.Postcode,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Categories:    categories,
		AgeMin:        data.AgeMin,
		AgeMax:        data.AgeMax,
		Indoor:        data.Indoor,
		PriceRange:    data.PriceRange,
		Facilities:    facilities,
		OpeningHours:  hours,
		Status:        entity.VenueStatus(data.Status),
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		FavoriteCount: data.FavoriteCount,
		IsPromoted:    data.IsPromoted,
		OwnerID:       data.OwnerID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	for i := range data.Offers {
		venue.Offers = append(venue.Offers, toOfferDomain(&data.Offers[i]))
	}
	for i := range data.Reviews {
		venue.Reviews = append(venue.Reviews, toReviewDomain(&data.Reviews[i]))
	}
	for i := range data.Photos {
		venue.Photos = append(venue.Photos, toPhotoDomain(&data.Photos[i]))
	}

	return venue, nil
}

func toVenueDomainList(models []*model.VenueModel) ([]*entity.Venue, error) {
	venues := make([]*entity.Venue, 0, len(models))
	for _, venueM := range models {
		venue, err := toVenueDomain(venueM)
		if err != nil {
			return nil, err
		}
		venues = append(venues, venue)
	}

	return venues, nil
}

func fromVenueDomain(data *entity.Venue) (*model.VenueModel, error) {
	if data == nil {
		return nil, nil
	}

	facilities, err := json.Marshal(data.Facilities)
	if err != nil {
		return nil, errors.Wrap(err, "encode facilities")
	}

	hours, err := json.Marshal(data.OpeningHours)
	if err != nil {
		return nil, errors.Wrap(err, "encode opening hours")
	}

	categories := make([]model.VenueCategoryModel, 0, len(data.Categories))
	for _, slug := range data.Categories {
		categories = append(categories, model.VenueCategoryModel{
			VenueID:      data.ID,
			CategorySlug: slug,
		})
	}

	return &model.VenueModel{
		ID:            data.ID,
		Slug:          data.Slug,
		Name:          data.Name,
		Description:   data.Description,
		Address:       data.Address,
		Suburb:        data.Suburb,
		City:          data.City,
		State:         data.State,
		Postcode:      data.Postcode,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		AgeMin:        data.AgeMin,
		AgeMax:        data.AgeMax,
		Indoor:        data.Indoor,
		PriceRange:    data.PriceRange,
		Facilities:    datatypes.JSON(facilities),
		OpeningHours:  datatypes.JSON(hours),
		Status:        data.Status.String(),
		AverageRating: data.AverageRating,
		ReviewCount:   data.ReviewCount,
		FavoriteCount: data.FavoriteCount,
		IsPromoted:    data.IsPromoted,
		OwnerID:       data.OwnerID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Categories:    categories,
	}, nil
}
