package handler

import (
	"log/slog"
	"net/http"

	"playfinder/internal/delivery/http/middleware"
	"playfinder/internal/delivery/http/response"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for the save-venue handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// ToggleFavorite saves the venue for the signed-in user, or removes it if it
// was already saved.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	saved, err := h.uc.ToggleFavorite(c.Request().Context(), userID, venueID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Venue removed from favourites"
	if saved {
		message = "Venue saved to favourites"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"saved": saved}, message)
}

// ListFavorites returns the signed-in user's saved venues.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venues, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]venueSummary, 0, len(venues))
	for _, venue := range venues {
		views = append(views, toVenueSummary(usecase.VenueResult{Venue: venue}))
	}

	return response.Success(c, http.StatusOK, views, "Favourites retrieved successfully")
}
