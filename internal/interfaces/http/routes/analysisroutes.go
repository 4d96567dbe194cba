package routes

import (
	"github.com/gin-gonic/gin"

	analysishandlers "triage/internal/interfaces/http/handlers/analysis"
)

type AnalysisRouteConfig struct {
	AnalysisHandler *analysishandlers.AnalysisHandler
}

func SetupAnalysisRoutes(api *gin.RouterGroup, config *AnalysisRouteConfig) {
	api.POST("/analyze", config.AnalysisHandler.Analyze)

	analysis := api.Group("/analysis")
	{
		// Register specific paths before the parameterized one to avoid
		// route conflicts
		analysis.GET("/latest", config.AnalysisHandler.GetLatest)
		analysis.GET("/runs", config.AnalysisHandler.ListRuns)
		analysis.GET("/:id", config.AnalysisHandler.GetRun)
	}
}
