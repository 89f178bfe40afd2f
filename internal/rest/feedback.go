package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"mixMaster/business/feedback"
	"mixMaster/domain"
	"mixMaster/pkg/logger"
)

type (
	FeedbackHandler struct {
		validate        *validator.Validate
		feedbackService FeedbackService
	}

	FeedbackService interface {
		RecordFeedback(ctx context.Context, hash string, liked bool, userID *uint) (*domain.SuggestionFeedback, error)
		GetSummary(ctx context.Context, hash string) (domain.FeedbackSummary, error)
	}

	SuggestionFeedbackRequest struct {
		Liked *bool `json:"liked" validate:"required"`
	}
)

func NewFeedbackHandler(svc FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		validate:        validator.New(),
		feedbackService: svc,
	}
}

func feedbackError(c echo.Context, err error) error {
	if errors.Is(err, feedback.ErrInvalidHash) {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	logger.Error("suggestion feedback failed", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
}

// POST /api/v1/mixes/:hash/feedback
func (h *FeedbackHandler) Record(c echo.Context) error {
	var req SuggestionFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	// set by the optional auth middleware
	var userID *uint
	if uid, ok := c.Get("user_id").(uint); ok {
		userID = &uid
	}

	fb, err := h.feedbackService.RecordFeedback(c.Request().Context(), c.Param("hash"), *req.Liked, userID)
	if err != nil {
		return feedbackError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(fb))
}

// GET /api/v1/mixes/:hash/feedback
func (h *FeedbackHandler) Summary(c echo.Context) error {
	summary, err := h.feedbackService.GetSummary(c.Request().Context(), c.Param("hash"))
	if err != nil {
		return feedbackError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
