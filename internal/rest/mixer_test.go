package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"mixMaster/business/mixer"
	"mixMaster/domain"
)

type fakeMixerService struct {
	err         error
	desired     domain.DesiredProfile
	ids         []string
	percentages []float64
}

func (f *fakeMixerService) Recommend(ctx context.Context, desired domain.DesiredProfile) (*domain.Recommendation, error) {
	f.desired = desired
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Recommendation{
		Suggestions:    []domain.Suggestion{{IdentityHash: "hash-1", MatchScore: 95}},
		CandidateCount: 2,
	}, nil
}

func (f *fakeMixerService) DebugRecommend(ctx context.Context, desired domain.DesiredProfile) ([]domain.DebugSuggestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []domain.DebugSuggestion{{GenerationIndex: 0, Accepted: false}}, nil
}

func (f *fakeMixerService) AnalyzeCombination(ctx context.Context, ids []string, percentages []float64) (*domain.AnalysisReport, error) {
	f.ids, f.percentages = ids, percentages
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AnalysisReport{CompatibilityTier: domain.TierGood, IdentityHash: "hash-2"}, nil
}

func (f *fakeMixerService) AnalyzeSingleLiquid(ctx context.Context, id string) (*domain.LiquidAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.LiquidAnalysis{LiquidID: id, Name: "Mango Ice"}, nil
}

const (
	liquidA = "6f1c1a4e-8f7a-4b8e-9d52-0d1f6c7b2a11"
	liquidB = "0b7e2c9d-3f55-4a21-8e6b-5c4d3a2b1f00"
)

func newJSONContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMixerHandlerRecommend(t *testing.T) {
	svc := &fakeMixerService{}
	h := NewMixerHandler(svc)

	c, rec := newJSONContext(http.MethodPost, `{"flavor":"tropical","menthol_level":3,"sweetness":6,"complexity":4,"max_liquids":3,"fruit_types":["mango"]}`)
	if err := h.Recommend(c); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "hash-1") {
		t.Fatalf("body missing suggestion: %s", rec.Body.String())
	}
	if svc.desired.Flavor != domain.FlavorTropical || svc.desired.MaxLiquids != 3 || svc.desired.FruitTypes[0] != "mango" {
		t.Fatalf("desired profile not bound: %+v", svc.desired)
	}
}

func TestMixerHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: max_liquids", mixer.ErrInvalidInput), http.StatusBadRequest},
		{mixer.ErrNoCandidates, http.StatusNotFound},
		{fmt.Errorf("%w: x", mixer.ErrLiquidNotFound), http.StatusNotFound},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewMixerHandler(&fakeMixerService{err: tt.err})
			c, rec := newJSONContext(http.MethodPost, `{"max_liquids":2}`)
			if err := h.Recommend(c); err != nil {
				t.Fatalf("Recommend() error: %v", err)
			}
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestMixerHandlerRecommendBadJSON(t *testing.T) {
	h := NewMixerHandler(&fakeMixerService{})
	c, rec := newJSONContext(http.MethodPost, `{"sweetness":"very"}`)
	if err := h.Recommend(c); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMixerHandlerDebugRecommend(t *testing.T) {
	h := NewMixerHandler(&fakeMixerService{})
	c, rec := newJSONContext(http.MethodPost, `{"max_liquids":2}`)
	if err := h.DebugRecommend(c); err != nil {
		t.Fatalf("DebugRecommend() error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "generation_index") {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestMixerHandlerAnalyzeCombination(t *testing.T) {
	svc := &fakeMixerService{}
	h := NewMixerHandler(svc)

	body := fmt.Sprintf(`{"liquids":[{"liquid_id":%q,"percentage":70},{"liquid_id":%q,"percentage":30}]}`, liquidA, liquidB)
	c, rec := newJSONContext(http.MethodPost, body)
	if err := h.AnalyzeCombination(c); err != nil {
		t.Fatalf("AnalyzeCombination() error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(svc.ids) != 2 || svc.ids[0] != liquidA || svc.percentages[1] != 30 {
		t.Fatalf("service got ids=%v percentages=%v", svc.ids, svc.percentages)
	}
}

func TestMixerHandlerAnalyzeCombinationValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "single liquid", body: fmt.Sprintf(`{"liquids":[{"liquid_id":%q,"percentage":100}]}`, liquidA)},
		{name: "not a uuid", body: fmt.Sprintf(`{"liquids":[{"liquid_id":"abc","percentage":50},{"liquid_id":%q,"percentage":50}]}`, liquidB)},
		{name: "zero share", body: fmt.Sprintf(`{"liquids":[{"liquid_id":%q,"percentage":0},{"liquid_id":%q,"percentage":100}]}`, liquidA, liquidB)},
		{name: "missing liquids", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeMixerService{}
			h := NewMixerHandler(svc)
			c, rec := newJSONContext(http.MethodPost, tt.body)
			if err := h.AnalyzeCombination(c); err != nil {
				t.Fatalf("AnalyzeCombination() error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if svc.ids != nil {
				t.Fatal("service should not be called")
			}
		})
	}
}

func TestMixerHandlerAnalyzeCombinationSumError(t *testing.T) {
	h := NewMixerHandler(&fakeMixerService{err: fmt.Errorf("%w: percentages sum to 90", mixer.ErrInvalidInput)})

	body := fmt.Sprintf(`{"liquids":[{"liquid_id":%q,"percentage":50},{"liquid_id":%q,"percentage":40}]}`, liquidA, liquidB)
	c, rec := newJSONContext(http.MethodPost, body)
	if err := h.AnalyzeCombination(c); err != nil {
		t.Fatalf("AnalyzeCombination() error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMixerHandlerAnalyzeLiquid(t *testing.T) {
	h := NewMixerHandler(&fakeMixerService{})

	c, rec := newJSONContext(http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(liquidA)
	if err := h.AnalyzeLiquid(c); err != nil {
		t.Fatalf("AnalyzeLiquid() error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Mango Ice") {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	c, rec = newJSONContext(http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	if err := h.AnalyzeLiquid(c); err != nil {
		t.Fatalf("AnalyzeLiquid() error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMixerHandlerAnalyzeLiquidNotFound(t *testing.T) {
	h := NewMixerHandler(&fakeMixerService{err: fmt.Errorf("%w: %s", mixer.ErrLiquidNotFound, liquidA)})

	c, rec := newJSONContext(http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(liquidA)
	if err := h.AnalyzeLiquid(c); err != nil {
		t.Fatalf("AnalyzeLiquid() error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
