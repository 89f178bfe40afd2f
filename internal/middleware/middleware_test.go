package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mixMaster/business/mixer"
	"mixMaster/pkg/metrics"
	"mixMaster/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOptionalAuth(t *testing.T) {
	valid, err := utils.GenerateJWT("7", "customer", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	badUser, err := utils.GenerateJWT("seven", "customer", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantUser   any
	}{
		{name: "anonymous", secret: "secret", wantStatus: http.StatusOK},
		{name: "valid token", secret: "secret", header: "Bearer " + valid, wantStatus: http.StatusOK, wantUser: uint(7)},
		{name: "bad format", secret: "secret", header: "Token " + valid, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", secret: "other", header: "Bearer " + valid, wantStatus: http.StatusUnauthorized},
		{name: "non numeric user", secret: "secret", header: "Bearer " + badUser, wantStatus: http.StatusUnauthorized},
		{name: "auth disabled", secret: "", header: "Bearer garbage", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(tt.header)

			called := false
			h := OptionalAuth(tt.secret)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})
			if err := h(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != (tt.wantStatus == http.StatusOK) {
				t.Fatalf("next called = %v", called)
			}
			if got := c.Get("user_id"); got != tt.wantUser {
				t.Fatalf("user_id = %v, want %v", got, tt.wantUser)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "http error", err: echo.NewHTTPError(http.StatusNotFound, "route not found"), wantCode: http.StatusNotFound, wantBody: `"code":"NOT_FOUND"`},
		{name: "plain error", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: `"code":"INTERNAL_SERVER_ERROR"`},
		{name: "method", err: echo.ErrMethodNotAllowed, wantCode: http.StatusMethodNotAllowed, wantBody: `"success":false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext("")
			ErrorHandler(tt.err, c)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("body = %s, want %s", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestTraceContext(t *testing.T) {
	c, _ := newContext("")
	c.Response().Header().Set(echo.HeaderXRequestID, "req-123")

	var got string
	h := TraceContext()(func(c echo.Context) error {
		got = mixer.TraceIDFromContext(c.Request().Context())
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != "req-123" {
		t.Fatalf("trace id = %q, want req-123", got)
	}
}

func TestHTTPMetricsCountsErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.HTTPRequestsTotal)

	c, _ := newContext("")
	c.SetPath("/api/v1/test-metrics")
	h := HTTPMetrics()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})
	if err := h(c); err == nil {
		t.Fatal("expected the handler error to pass through")
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var found bool
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/api/v1/test-metrics" && labels["status"] == "418" {
				found = m.GetCounter().GetValue() == 1
			}
		}
	}
	if !found {
		t.Fatal("request not counted with status 418")
	}
}
