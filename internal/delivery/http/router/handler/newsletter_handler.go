package handler

import (
	"log/slog"
	"net/http"

	"playfinder/internal/delivery/http/response"
	"playfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsletterHandler holds dependencies for the newsletter opt-in handler.
type NewsletterHandler struct {
	uc     usecase.NewsletterUsecase
	logger *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{uc: uc, logger: logger}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe records a newsletter opt-in. Re-subscribing succeeds quietly.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.uc.Subscribe(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscribed to the newsletter")
}
