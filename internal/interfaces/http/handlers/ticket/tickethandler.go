package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"triage/internal/application/ticket/dto"
	"triage/internal/application/ticket/usecases"
	"triage/internal/shared/errors"
	"triage/internal/shared/logger"
	"triage/internal/shared/utils"
)

type TicketHandler struct {
	submitTicketsUC usecases.SubmitTicketsExecutor
	getTicketUC     usecases.TicketReader
	logger          logger.Interface
}

func NewTicketHandler(
	submitTicketsUC usecases.SubmitTicketsExecutor,
	getTicketUC usecases.TicketReader,
) *TicketHandler {
	return &TicketHandler{
		submitTicketsUC: submitTicketsUC,
		getTicketUC:     getTicketUC,
		logger:          logger.NewLogger(),
	}
}

// SubmitTickets handles POST /api/tickets
func (h *TicketHandler) SubmitTickets(c *gin.Context) {
	var req dto.SubmitTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit tickets", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := h.submitTicketsUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	window := utils.ParseListWindow(c)

	result, err := h.getTicketUC.ExecuteList(c.Request.Context(), window.Skip, window.Limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTicket handles GET /api/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.ExecuteByID(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
