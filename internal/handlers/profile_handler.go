package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/store"
)

type ProfileHandler struct {
	store store.Store
}

func NewProfileHandler(st store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), userID.(uint))
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
