package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mixMaster/business/mixer"
	"mixMaster/domain"
	"mixMaster/pkg/logger"
)

type (
	MixerHandler struct {
		validate     *validator.Validate
		mixerService MixerService
	}

	MixerService interface {
		Recommend(ctx context.Context, desired domain.DesiredProfile) (*domain.Recommendation, error)
		DebugRecommend(ctx context.Context, desired domain.DesiredProfile) ([]domain.DebugSuggestion, error)
		AnalyzeCombination(ctx context.Context, ids []string, percentages []float64) (*domain.AnalysisReport, error)
		AnalyzeSingleLiquid(ctx context.Context, id string) (*domain.LiquidAnalysis, error)
	}

	MixItem struct {
		LiquidID   string  `json:"liquid_id" validate:"required,uuid"`
		Percentage float64 `json:"percentage" validate:"gt=0,lte=100"`
	}

	MixAnalysisRequest struct {
		Liquids []MixItem `json:"liquids" validate:"required,min=2,max=5,dive"`
	}
)

func NewMixerHandler(svc MixerService) *MixerHandler {
	return &MixerHandler{
		validate:     validator.New(),
		mixerService: svc,
	}
}

// mixerErrorStatus maps engine errors onto HTTP status codes.
func mixerErrorStatus(err error) int {
	switch {
	case errors.Is(err, mixer.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, mixer.ErrNoCandidates), errors.Is(err, mixer.ErrLiquidNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func mixerError(c echo.Context, op string, err error) error {
	status := mixerErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(op+" failed", err, "trace_id", mixer.TraceIDFromContext(c.Request().Context()))
	}
	return c.JSON(status, ResponseError{Message: err.Error()})
}

// POST /api/v1/mixes/recommendations
func (h *MixerHandler) Recommend(c echo.Context) error {
	var desired domain.DesiredProfile
	if err := c.Bind(&desired); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rec, err := h.mixerService.Recommend(c.Request().Context(), desired)
	if err != nil {
		return mixerError(c, "recommend", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(rec))
}

// POST /api/v1/mixes/recommendations/debug
func (h *MixerHandler) DebugRecommend(c echo.Context) error {
	var desired domain.DesiredProfile
	if err := c.Bind(&desired); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	evaluated, err := h.mixerService.DebugRecommend(c.Request().Context(), desired)
	if err != nil {
		return mixerError(c, "debug recommend", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(evaluated))
}

// POST /api/v1/mixes/analysis
func (h *MixerHandler) AnalyzeCombination(c echo.Context) error {
	var req MixAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ids := make([]string, 0, len(req.Liquids))
	percentages := make([]float64, 0, len(req.Liquids))
	for _, item := range req.Liquids {
		ids = append(ids, item.LiquidID)
		percentages = append(percentages, item.Percentage)
	}

	report, err := h.mixerService.AnalyzeCombination(c.Request().Context(), ids, percentages)
	if err != nil {
		return mixerError(c, "analyze combination", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(report))
}

// GET /api/v1/liquids/:id/analysis
func (h *MixerHandler) AnalyzeLiquid(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid liquid id"})
	}

	analysis, err := h.mixerService.AnalyzeSingleLiquid(c.Request().Context(), id)
	if err != nil {
		return mixerError(c, "analyze liquid", err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(analysis))
}
