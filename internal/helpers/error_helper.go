package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/models"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithDomainError maps the service-layer sentinel errors to HTTP
// statuses. Unknown errors are reported as a 500 without leaking details.
func RespondWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrTicketNotFound):
		RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrForbidden):
		RespondWithError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrInvalidTicketCount),
		errors.Is(err, models.ErrInvalidRole):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrTicketsAlreadyIssued),
		errors.Is(err, models.ErrEventHasBookings),
		errors.Is(err, models.ErrConflict):
		RespondWithError(c, http.StatusConflict, err.Error())
	default:
		RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
