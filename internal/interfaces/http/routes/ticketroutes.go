package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "triage/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	{
		tickets.POST("", config.TicketHandler.SubmitTickets)
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
