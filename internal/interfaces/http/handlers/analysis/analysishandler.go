package analysis

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triage/internal/application/analysis/dto"
	"triage/internal/application/analysis/usecases"
	"triage/internal/shared/errors"
	"triage/internal/shared/logger"
	"triage/internal/shared/utils"
)

type AnalysisHandler struct {
	analyzeUC     usecases.AnalyzeExecutor
	getAnalysisUC usecases.AnalysisReader
	logger        logger.Interface
}

func NewAnalysisHandler(
	analyzeUC usecases.AnalyzeExecutor,
	getAnalysisUC usecases.AnalysisReader,
) *AnalysisHandler {
	return &AnalysisHandler{
		analyzeUC:     analyzeUC,
		getAnalysisUC: getAnalysisUC,
		logger:        logger.NewLogger(),
	}
}

// Analyze handles POST /api/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for analyze", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
			return
		}
	}

	result, err := h.analyzeUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetLatest handles GET /api/analysis/latest
func (h *AnalysisHandler) GetLatest(c *gin.Context) {
	result, err := h.getAnalysisUC.ExecuteLatest(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRun handles GET /api/analysis/:id
func (h *AnalysisHandler) GetRun(c *gin.Context) {
	runID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || runID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid analysis run ID"))
		return
	}

	result, err := h.getAnalysisUC.ExecuteByID(c.Request.Context(), uint(runID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListRuns handles GET /api/analysis/runs
func (h *AnalysisHandler) ListRuns(c *gin.Context) {
	window := utils.ParseListWindow(c)

	result, err := h.getAnalysisUC.ExecuteList(c.Request.Context(), window.Skip, window.Limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
