package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/services"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type BookingRequest struct {
	EventID      uint `json:"event_id" binding:"required"`
	TotalTickets int  `json:"total_tickets" binding:"required"`
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	booking, err := h.bookings.CreateBooking(c.Request.Context(), userID.(uint), req.EventID, req.TotalTickets)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking done successfully!",
		"booking": booking,
	})
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	bookings, err := h.bookings.ListBookingsForUser(c.Request.Context(), userID.(uint))
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	if err := h.bookings.DeleteBooking(c.Request.Context(), bookingID, userID.(uint)); err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully."})
}

func (h *BookingHandler) ListTickets(c *gin.Context) {
	bookingID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}

	tickets, err := h.bookings.TicketsForBooking(c.Request.Context(), bookingID)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}
