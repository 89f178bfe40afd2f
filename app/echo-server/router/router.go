package router

import (
	"mixMaster/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupMixerRoutes(api *echo.Group, handler *rest.MixerHandler) {
	mixes := api.Group("/mixes")
	mixes.POST("/recommendations", handler.Recommend)
	mixes.POST("/recommendations/debug", handler.DebugRecommend)
	mixes.POST("/analysis", handler.AnalyzeCombination)

	liquids := api.Group("/liquids")
	liquids.GET("/:id/analysis", handler.AnalyzeLiquid)
}

func SetupFeedbackRoutes(api *echo.Group, handler *rest.FeedbackHandler, optionalAuth echo.MiddlewareFunc) {
	feedback := api.Group("/mixes/:hash/feedback")
	feedback.POST("", handler.Record, optionalAuth)
	feedback.GET("", handler.Summary)
}

func SetupOpsRoutes(e *echo.Echo, metricsHandler, healthHandler echo.HandlerFunc) {
	e.GET("/metrics", metricsHandler)
	e.GET("/healthz", healthHandler)
}
