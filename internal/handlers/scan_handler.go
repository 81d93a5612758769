package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/services"
)

type ScanHandler struct {
	tickets *services.TicketService
}

func NewScanHandler(tickets *services.TicketService) *ScanHandler {
	return &ScanHandler{tickets: tickets}
}

type ScanRequest struct {
	QRCode string `json:"qr_code" binding:"required"`
}

// ValidateTicket consumes one scan. An already-used ticket is a 200 with
// status "already_used"; only an unknown code is a 404.
func (h *ScanHandler) ValidateTicket(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	result, err := h.tickets.ValidateTicket(c.Request.Context(), req.QRCode)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ScanHandler) Status(c *gin.Context) {
	bookingID, err := helpers.StringToUint(c.Param("bookingId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}

	status, err := h.tickets.TicketStatus(c.Request.Context(), bookingID)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
