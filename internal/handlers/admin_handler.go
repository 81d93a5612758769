package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/models"
	"github.com/ardelia/gigpass/internal/services"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.admin.AllBookings(c.Request.Context())
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.AllUsers(c.Request.Context())
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListUsersByRole(c *gin.Context) {
	users, err := h.admin.UsersByRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListTicketCheckers(c *gin.Context) {
	users, err := h.admin.UsersByRole(c.Request.Context(), models.RoleTicketChecker)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
