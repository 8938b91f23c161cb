package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type EventsController struct {
	eventService services.EventServiceInterface
}

func NewEventsController(eventService services.EventServiceInterface) *EventsController {
	return &EventsController{
		eventService: eventService,
	}
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param range query string false "JSON [start, end], inclusive"
// @Param sort query string false "JSON [field, order]"
// @Param filter query string false "JSON object of field filters"
// @Success 200 {array} db_models.Event
// @Header 200 {string} Content-Range "events 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /events [get]
func (h *EventsController) ListEvents(c *gin.Context) {
	page, err := h.eventService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching events")
		return
	}
	respondPage(c, page)
}

// GetEvent godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} db_models.Event
// @Failure 404 {object} utils.ErrorResponse
// @Router /events/{id} [get]
func (h *EventsController) GetEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching event")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param body body request_models.CreateEventRequest true "Event"
// @Success 201 {object} db_models.Event
// @Failure 400 {object} utils.ErrorResponse
// @Router /events [post]
func (h *EventsController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.EventRequiredMessage)
		return
	}

	item, err := h.eventService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating event")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, item)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Fields left out of the body keep their stored value
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param body body request_models.CreateEventRequest true "Fields to change"
// @Success 200 {object} db_models.Event
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /events/{id} [put]
func (h *EventsController) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	item, err := h.eventService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating event")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventsController) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting event")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Event deleted successfully!")
}
