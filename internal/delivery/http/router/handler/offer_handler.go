package handler

import (
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

// OfferHandler holds dependencies for offer handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{uc: uc, logger: logger}
}

type offerView struct {
	ID           string `json:"id"`
	VenueID      string `json:"venue_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Terms        string `json:"terms,omitempty"`
	DiscountText string `json:"discount_text,omitempty"`
	StartsAt     string `json:"starts_at"`
	ExpiresAt    string `json:"expires_at"`
	IsActive     bool   `json:"is_active"`
	IsPromoted   bool   `json:"is_promoted"`
}

func toOfferView(offer *entity.Offer) offerView {
	return offerView{
		ID:           offer.ID.String(),
		VenueID:      offer.VenueID.String(),
		Title:        offer.Title,
		Description:  offer.Description,
		Terms:        offer.Terms,
		DiscountText: offer.DiscountText,
		StartsAt:     offer.StartsAt.Format(time.RFC3339),
		ExpiresAt:    offer.ExpiresAt.Format(time.RFC3339),
		IsActive:     offer.IsActive,
		IsPromoted:   offer.IsPromoted,
	}
}

type offerRequest struct {
	Title        string    `json:"title" validate:"required,max=200"`
	Description  string    `json:"description"`
	Terms        string    `json:"terms"`
	DiscountText string    `json:"discount_text"`
	StartsAt     time.Time `json:"starts_at" validate:"required"`
	ExpiresAt    time.Time `json:"expires_at" validate:"required"`
	IsActive     *bool     `json:"is_active"`
}

// CreateOffer attaches an offer to a venue. Owner only, live immediately.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	offer, err := h.uc.CreateOffer(c.Request().Context(), &usecase.CreateOfferInput{
		VenueID:      venueID,
		ActorID:      userID,
		Title:        req.Title,
		Description:  req.Description,
		Terms:        req.Terms,
		DiscountText: req.DiscountText,
		StartsAt:     req.StartsAt,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toOfferView(offer), "Offer created successfully")
}

// UpdateOffer applies owner edits to an existing offer.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	var req offerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	offer, err := h.uc.UpdateOffer(c.Request().Context(), &usecase.UpdateOfferInput{
		OfferID:      offerID,
		ActorID:      userID,
		Title:        req.Title,
		Description:  req.Description,
		Terms:        req.Terms,
		DiscountText: req.DiscountText,
		StartsAt:     req.StartsAt,
		ExpiresAt:    req.ExpiresAt,
		IsActive:     isActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOfferView(offer), "Offer updated successfully")
}

// DeleteOffer removes an offer. Owner only.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offer ID")
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), offerID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Offer deleted successfully")
}

// ListVenueOffers returns a venue's offers, newest first.
func (h *OfferHandler) ListVenueOffers(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	offers, err := h.uc.ListVenueOffers(c.Request().Context(), venueID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]offerView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, toOfferView(offer))
	}

	return response.Success(c, http.StatusOK, views, "Offers retrieved successfully")
}
