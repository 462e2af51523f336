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

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

type reviewView struct {
	ID            string `json:"id"`
	VenueID       string `json:"venue_id"`
	UserID        string `json:"user_id"`
	Rating        int    `json:"rating"`
	Title         string `json:"title,omitempty"`
	Comment       string `json:"comment"`
	OwnerResponse string `json:"owner_response,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func toReviewView(review *entity.Review) reviewView {
	return reviewView{
		ID:            review.ID.String(),
		VenueID:       review.VenueID.String(),
		UserID:        review.UserID.String(),
		Rating:        review.Rating,
		Title:         review.Title,
		Comment:       review.Comment,
		OwnerResponse: review.OwnerResponse,
		CreatedAt:     review.CreatedAt.Format(time.RFC3339),
	}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title" validate:"max=200"`
	Comment string `json:"comment" validate:"required"`
}

// CreateReview handles leaving a review on a venue.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), &usecase.CreateReviewInput{
		VenueID: venueID,
		UserID:  userID,
		Rating:  req.Rating,
		Title:   req.Title,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, toReviewView(review), "Review created successfully")
}

// ListVenueReviews returns a venue's reviews, newest first.
func (h *ReviewHandler) ListVenueReviews(c echo.Context) error {
	venueID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid venue ID")
	}

	reviews, err := h.uc.ListVenueReviews(c.Request().Context(), venueID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return response.Success(c, http.StatusOK, views, "Reviews retrieved successfully")
}

type respondToReviewRequest struct {
	Response string `json:"response" validate:"required"`
}

// RespondToReview stores the venue owner's reply on a review.
func (h *ReviewHandler) RespondToReview(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	var req respondToReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.RespondToReview(c.Request().Context(), &usecase.RespondToReviewInput{
		ReviewID: reviewID,
		ActorID:  userID,
		Response: req.Response,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Response saved successfully")
}

// DeleteReview removes a review. Allowed for its author or an admin.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, _ := c.Get(middleware.ContextKeyRole).(string)

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid review ID")
	}

	isAdmin := role == entity.RoleAdmin.String()
	if err := h.uc.DeleteReview(c.Request().Context(), reviewID, userID, isAdmin); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}
