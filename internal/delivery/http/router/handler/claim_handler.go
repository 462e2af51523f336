package handler

import (
	"log/slog"
	"time"

	"playfinder/internal/delivery/http/middleware"
	"playfinder/internal/delivery/http/response"
	"playfinder/internal/domain/entity"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClaimHandler holds dependencies for ownership claim handlers.
type ClaimHandler struct {
	uc     usecase.ClaimUsecase
	logger *slog.Logger
}

// NewClaimHandler is the constructor for ClaimHandler, injected by Fx.
func NewClaimHandler(uc usecase.ClaimUsecase, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{uc: uc, logger: logger}
}

type claimView struct {
	ID        string `json:"id"`
	VenueID   string `json:"venue_id"`
	UserID    string `json:"user_id"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	DecidedAt string `json:"decided_at,omitempty"`
}

func toClaimView(claim *entity.Claim) claimView {
	view := claimView{
		ID:        claim.ID.String(),
		VenueID:   claim.VenueID.String(),
		UserID:    claim.UserID.String(),
		Message:   claim.Message,
		Status:    string(claim.Status),
		CreatedAt: claim.CreatedAt.Format(time.RFC3339),
	}
	if claim.DecidedAt != nil {
		view.DecidedAt = claim.DecidedAt.Format(time.RFC3339)
	}

	return view
}

type submitClaimRequest struct {
	Message string `json:"message" validate:"required"`
}

// SubmitClaim records an ownership claim against an unclaimed listing.
func (h *ClaimHandler) SubmitClaim(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	var req submitClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid claim input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	claim, err := h.uc.SubmitClaim(c.Request().Context(), &usecase.SubmitClaimInput{
		VenueID: venueID,
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toClaimView(claim), "Claim submitted for review")
}
