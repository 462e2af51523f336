package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"playfinder/internal/delivery/http/middleware"
	"playfinder/internal/delivery/http/response"
	"playfinder/internal/domain/entity"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VenueHandler holds dependencies for listing management handlers.
type VenueHandler struct {
	uc     usecase.VenueUsecase
	logger *slog.Logger
}

// NewVenueHandler is the constructor for VenueHandler, injected by Fx.
func NewVenueHandler(uc usecase.VenueUsecase, logger *slog.Logger) *VenueHandler {
	return &VenueHandler{uc: uc, logger: logger}
}

type venueRequest struct {
	Name         string              `json:"name" validate:"required,max=200"`
	Description  string              `json:"description"`
	Address      string              `json:"address" validate:"required"`
	Suburb       string              `json:"suburb" validate:"required"`
	City         string              `json:"city" validate:"required"`
	State        string              `json:"state" validate:"required"`
	Postcode     string              `json:"postcode" validate:"required"`
	Latitude     *float64            `json:"latitude"`
	Longitude    *float64            `json:"longitude"`
	Categories   []string            `json:"categories" validate:"required,min=1"`
	AgeMin       int                 `json:"age_min" validate:"min=0"`
	AgeMax       int                 `json:"age_max" validate:"min=0"`
	Indoor       bool                `json:"indoor"`
	PriceRange   int                 `json:"price_range" validate:"min=1,max=4"`
	Facilities   []string            `json:"facilities"`
	OpeningHours map[string]dayHours `json:"opening_hours"`
}

type photoView struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func toPhotoView(photo *entity.Photo) photoView {
	return photoView{
		ID:       photo.ID.String(),
		URL:      photo.URL,
		Position: photo.Position,
	}
}

func parseOpeningHours(raw map[string]dayHours) (entity.OpeningHours, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	names := map[string]time.Weekday{
		"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
		"wednesday": time.Wednesday, "thursday": time.Thursday,
		"friday": time.Friday, "saturday": time.Saturday,
	}

	hours := make(entity.OpeningHours, len(raw))
	for name, day := range raw {
		weekday, ok := names[name]
		if !ok {
			return nil, errors.Errorf("unknown weekday %q", name)
		}
		hours[weekday] = entity.DayHours(day)
	}

	return hours, nil
}

// SubmitVenue handles new listing submissions. The listing enters moderation
// in the pending state.
func (h *VenueHandler) SubmitVenue(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid venue input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	openingHours, err := parseOpeningHours(req.OpeningHours)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	venue, err := h.uc.SubmitVenue(c.Request().Context(), &usecase.SubmitVenueInput{
		OwnerID:      userID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Suburb:       req.Suburb,
		City:         req.City,
		State:        req.State,
		Postcode:     req.Postcode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Categories:   req.Categories,
		AgeMin:       req.AgeMin,
		AgeMax:       req.AgeMax,
		Indoor:       req.Indoor,
		PriceRange:   req.PriceRange,
		Facilities:   req.Facilities,
		OpeningHours: openingHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toVenueDetail(venue), "Venue submitted for review")
}

// UpdateVenue handles owner edits to an existing listing.
func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	var req venueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid venue input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	openingHours, err := parseOpeningHours(req.OpeningHours)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	venue, err := h.uc.UpdateVenue(c.Request().Context(), &usecase.UpdateVenueInput{
		VenueID:      venueID,
		ActorID:      userID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Suburb:       req.Suburb,
		City:         req.City,
		State:        req.State,
		Postcode:     req.Postcode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Categories:   req.Categories,
		AgeMin:       req.AgeMin,
		AgeMax:       req.AgeMax,
		Indoor:       req.Indoor,
		PriceRange:   req.PriceRange,
		Facilities:   req.Facilities,
		OpeningHours: openingHours,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVenueDetail(venue), "Venue updated successfully")
}

// GetVenue handles the public venue detail page. Unpublished listings are
// visible to their owner and admins only.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	var viewer *entity.User
	if userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID); ok {
		viewer = &entity.User{ID: userID}
		if role, ok := c.Get(middleware.ContextKeyRole).(string); ok {
			viewer.Profile = &entity.Profile{UserID: userID, Role: entity.Role(role)}
		}
	}

	venue, err := h.uc.GetVenueBySlug(c.Request().Context(), c.Param("slug"), viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVenueDetail(venue), "Venue retrieved successfully")
}

// ListMyVenues returns every listing managed by the signed-in user.
func (h *VenueHandler) ListMyVenues(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venues, err := h.uc.ListMyVenues(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]venueDetail, 0, len(venues))
	for _, venue := range venues {
		views = append(views, toVenueDetail(venue))
	}

	return response.Success(c, http.StatusOK, views, "Venues retrieved successfully")
}

// UploadPhotos handles multipart photo uploads for a listing.
func (h *VenueHandler) UploadPhotos(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Expected multipart form upload")
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "No photos in upload")
	}

	uploads := make([]usecase.PhotoUpload, 0, len(files))
	opened := make([]io.Closer, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Could not read uploaded file")
		}
		opened = append(opened, file)

		uploads = append(uploads, usecase.PhotoUpload{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	photos, err := h.uc.UploadPhotos(c.Request().Context(), venueID, userID, uploads)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]photoView, 0, len(photos))
	for _, photo := range photos {
		views = append(views, toPhotoView(photo))
	}

	return response.Created(c, views, "Photos uploaded successfully")
}

type reorderPhotosRequest struct {
	PhotoIDs []string `json:"photo_ids" validate:"required,min=1"`
}

// ReorderPhotos rewrites the gallery order for a listing.
func (h *VenueHandler) ReorderPhotos(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	var req reorderPhotosRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	orderedIDs := make([]uuid.UUID, 0, len(req.PhotoIDs))
	for _, raw := range req.PhotoIDs {
		photoID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid photo ID: "+raw)
		}
		orderedIDs = append(orderedIDs, photoID)
	}

	if err := h.uc.ReorderPhotos(c.Request().Context(), venueID, userID, orderedIDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photos reordered successfully")
}

// DeletePhoto removes a photo from a listing.
func (h *VenueHandler) DeletePhoto(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid photo ID")
	}

	if err := h.uc.DeletePhoto(c.Request().Context(), photoID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Photo deleted successfully")
}

// Poster serves a printable QR code PNG linking to the venue page.
func (h *VenueHandler) Poster(c echo.Context) error {
	png, err := h.uc.VenuePoster(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
