// Package http wires the HTTP surface: repositories, use cases, handlers
// and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	analysispipeline "triage/internal/application/analysis/pipeline"
	analysisuc "triage/internal/application/analysis/usecases"
	ticketuc "triage/internal/application/ticket/usecases"
	"triage/internal/infrastructure/cache"
	"triage/internal/infrastructure/classifier"
	"triage/internal/infrastructure/config"
	"triage/internal/infrastructure/repository"
	analysishandlers "triage/internal/interfaces/http/handlers/analysis"
	tickethandlers "triage/internal/interfaces/http/handlers/ticket"
	"triage/internal/interfaces/http/middleware"
	"triage/internal/interfaces/http/routes"
	shareddb "triage/internal/shared/db"
	"triage/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	ticketHandler   *tickethandlers.TicketHandler
	analysisHandler *analysishandlers.AnalysisHandler
	allowedOrigins  []string
	logger          logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	analysisRepo := repository.NewAnalysisRepository(db)
	txManager := shareddb.NewTransactionManager(db)

	var latestCache cache.LatestAnalysisCache
	if redisClient != nil {
		latestCache = cache.NewRedisLatestAnalysisCache(redisClient, log)
	} else {
		latestCache = cache.NewNoopLatestAnalysisCache()
	}

	ticketClassifier := classifier.NewFromConfig(&cfg.Classifier, log)
	analysisPipeline := analysispipeline.New(ticketClassifier, cfg.Classifier.Workers, log)

	submitTicketsUC := ticketuc.NewSubmitTicketsUseCase(ticketRepo, log)
	getTicketUC := ticketuc.NewGetTicketUseCase(ticketRepo, log)
	analyzeUC := analysisuc.NewAnalyzeTicketsUseCase(ticketRepo, analysisRepo, analysisPipeline, txManager, latestCache, log)
	getAnalysisUC := analysisuc.NewGetAnalysisUseCase(ticketRepo, analysisRepo, latestCache, log)

	return &Router{
		engine:          engine,
		ticketHandler:   tickethandlers.NewTicketHandler(submitTicketsUC, getTicketUC),
		analysisHandler: analysishandlers.NewAnalysisHandler(analyzeUC, getAnalysisUC),
		allowedOrigins:  cfg.Server.AllowedOrigins,
		logger:          log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Support Ticket Analysis API"})
	})
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.engine.Group("/api")
	{
		routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
			TicketHandler: r.ticketHandler,
		})
		routes.SetupAnalysisRoutes(api, &routes.AnalysisRouteConfig{
			AnalysisHandler: r.analysisHandler,
		})
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
