package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardelia/gigpass/internal/helpers"
	"github.com/ardelia/gigpass/internal/services"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	name := c.PostForm("name")
	artist := c.PostForm("artist")
	location := c.PostForm("location")
	date := c.PostForm("date")
	eventTime := c.PostForm("time")

	if name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	in := services.EventInput{
		Name:     name,
		Artist:   artist,
		Location: location,
		Date:     date,
		Time:     eventTime,
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "event_images", helpers.EventImageUploadConfig)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		in.ImageURL = imagePath
	}

	event, err := h.events.CreateEvent(c.Request.Context(), in)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	page, err := helpers.StringToInt(c.DefaultQuery("page", "1"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	events, total, err := h.events.ListEvents(c.Request.Context(), page)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"total":  total,
		"page":   page,
	})
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	in := services.EventInput{
		Name:     c.PostForm("name"),
		Artist:   c.PostForm("artist"),
		Location: c.PostForm("location"),
		Date:     c.PostForm("date"),
		Time:     c.PostForm("time"),
	}
	if in.Name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "event_images", helpers.EventImageUploadConfig)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		in.ImageURL = imagePath
	}

	event, err := h.events.UpdateEvent(c.Request.Context(), eventID, in)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, err := helpers.StringToUint(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	if err := h.events.DeleteEvent(c.Request.Context(), eventID); err != nil {
		helpers.RespondWithDomainError(c, err)
		return
	}

	if event.ImageURL != "" {
		_ = helpers.DeleteFile(event.ImageURL)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}
