package routes

import (
	"fmt"
	"slices"

	_ "StrokeRiskAssessment/docs"
	"StrokeRiskAssessment/internal/config"
	"StrokeRiskAssessment/internal/handler"
	"StrokeRiskAssessment/internal/logger"
	"StrokeRiskAssessment/internal/middleware"
	"StrokeRiskAssessment/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(h *handler.PredictionHandler, cfg *config.Config, log zerolog.Logger) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), logger.Middleware(log))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = append(corsConfig.ExposeHeaders, middleware.RequestIDHeader)

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	csrf, err := middleware.CSRF([]byte(cfg.CSRFKey), cfg.SecureCookies, h.CSRFFailed)
	if err != nil {
		return nil, err
	}

	// 폼 라우트만 CSRF 검사, /api 는 제외
	form := router.Group("/", csrf)
	{
		form.GET("/", h.Index)
		form.POST("/predict", middleware.RateLimit(cfg.RateLimitPerMinute, h.RateLimited), h.Predict)
	}

	// CORS는 /api 그룹에만 적용, preflight 요청은 cors 미들웨어가 응답
	api := router.Group("/api", cors.New(corsConfig))
	{
		api.OPTIONS("/*path", func(c *gin.Context) {})
		api.POST("/predict", middleware.RateLimit(cfg.RateLimitPerMinute, handler.APIRateLimited), h.PredictAPI)
	}

	router.GET("/health", handler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router, nil
}
