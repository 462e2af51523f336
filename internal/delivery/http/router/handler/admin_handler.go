package handler

import (
	"log/slog"
	"net/http"

	"playfinder/internal/delivery/http/response"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the moderation handlers. Every route
// behind it requires the admin role.
type AdminHandler struct {
	venueUC usecase.VenueUsecase
	claimUC usecase.ClaimUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(venueUC usecase.VenueUsecase, claimUC usecase.ClaimUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{venueUC: venueUC, claimUC: claimUC, logger: logger}
}

// ListPendingVenues returns the listing moderation queue, oldest first.
func (h *AdminHandler) ListPendingVenues(c echo.Context) error {
	venues, err := h.venueUC.ListPendingVenues(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]venueDetail, 0, len(venues))
	for _, venue := range venues {
		views = append(views, toVenueDetail(venue))
	}

	return response.Success(c, http.StatusOK, views, "Pending venues retrieved successfully")
}

type moderationStatsView struct {
	Pending   int64 `json:"pending"`
	Published int64 `json:"published"`
	Rejected  int64 `json:"rejected"`
}

// ModerationStats returns listing counts per moderation state.
func (h *AdminHandler) ModerationStats(c echo.Context) error {
	stats, err := h.venueUC.ModerationStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	view := moderationStatsView{
		Pending:   stats.Pending,
		Published: stats.Published,
		Rejected:  stats.Rejected,
	}

	return response.Success(c, http.StatusOK, view, "Moderation stats retrieved successfully")
}

// ApproveVenue publishes a pending listing.
func (h *AdminHandler) ApproveVenue(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	if err := h.venueUC.ApproveVenue(c.Request().Context(), venueID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Venue approved")
}

// RejectVenue declines a pending listing.
func (h *AdminHandler) RejectVenue(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	if err := h.venueUC.RejectVenue(c.Request().Context(), venueID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Venue rejected")
}

// ListPendingClaims returns the undecided ownership claims, oldest first.
func (h *AdminHandler) ListPendingClaims(c echo.Context) error {
	claims, err := h.claimUC.ListPendingClaims(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]claimView, 0, len(claims))
	for _, claim := range claims {
		views = append(views, toClaimView(claim))
	}

	return response.Success(c, http.StatusOK, views, "Pending claims retrieved successfully")
}

// ApproveClaim assigns the claimant as the venue's owner.
func (h *AdminHandler) ApproveClaim(c echo.Context) error {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid claim ID")
	}

	if err := h.claimUC.ApproveClaim(c.Request().Context(), claimID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Claim approved")
}

// RejectClaim declines an ownership claim. The venue stays unclaimed.
func (h *AdminHandler) RejectClaim(c echo.Context) error {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid claim ID")
	}

	if err := h.claimUC.RejectClaim(c.Request().Context(), claimID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Claim rejected")
}
