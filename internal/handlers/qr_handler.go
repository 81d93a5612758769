package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/services"
)

type QRHandler struct {
	qr *services.QRService
}

func NewQRHandler(qr *services.QRService) *QRHandler {
	return &QRHandler{qr: qr}
}

func (h *QRHandler) GenerateQR(c *gin.Context) {
	bookingID, err := helpers.StringToUint(c.Param("bookingId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}

	qrCodes, err := h.qr.GenerateTickets(c.Request.Context(), bookingID)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"qr_codes": qrCodes,
	})
}

func (h *QRHandler) TicketImage(c *gin.Context) {
	bookingID, err := helpers.StringToUint(c.Param("bookingId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}
	ticketNumber, err := helpers.StringToInt(c.Param("ticketNumber"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket number.")
		return
	}

	size, err := helpers.StringToInt(c.DefaultQuery("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid size.")
		return
	}

	png, err := h.qr.TicketQRImage(c.Request.Context(), bookingID, ticketNumber, size)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
