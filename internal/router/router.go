package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bboard-api/internal/handler"
	"bboard-api/internal/metrics"
	"bboard-api/internal/middleware"
	"bboard-api/internal/repository"
	"bboard-api/internal/service"
)

// Config holds the dependencies required to build the router
type Config struct {
	DB            *gorm.DB
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
	TemplatesGlob string
}

// Setup builds the gin engine with middleware, templates and routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// Wire repositories, services and handlers
	announcementRepo := repository.NewAnnouncementRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)
	boardService := service.NewBoardService(announcementRepo, commentRepo, cfg.Metrics, cfg.Logger)
	boardHandler := handler.NewBoardHandler(boardService, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.DB)

	// Board routes
	r.GET("/", boardHandler.Index)
	r.GET("/add-announcement/", boardHandler.ShowAddForm)
	r.POST("/add-announcement/", boardHandler.SubmitAnnouncement)
	r.GET("/announcement/:id/", boardHandler.ShowAnnouncement)
	r.POST("/announcement/:id/", boardHandler.SubmitComment)
	r.GET("/delete/:id/", boardHandler.Delete)

	// Operational endpoints
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Unmatched routes get the standard not-found page
	r.NoRoute(boardHandler.NotFound)

	return r
}
