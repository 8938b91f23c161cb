package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type OneDayToursController struct {
	tourService services.OneDayTourServiceInterface
}

func NewOneDayToursController(tourService services.OneDayTourServiceInterface) *OneDayToursController {
	return &OneDayToursController{
		tourService: tourService,
	}
}

// ListOneDayTours godoc
// @Summary List one-day tours
// @Tags OneDayTours
// @Produce json
// @Param range query string false "JSON [start, end], inclusive"
// @Param sort query string false "JSON [field, order]"
// @Param filter query string false "JSON object of field filters"
// @Success 200 {array} db_models.OneDayTour
// @Header 200 {string} Content-Range "oneDayTours 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /onedaytours [get]
func (h *OneDayToursController) ListOneDayTours(c *gin.Context) {
	page, err := h.tourService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching one-day tours")
		return
	}
	respondPage(c, page)
}

// GetOneDayTour godoc
// @Summary Get a one-day tour
// @Tags OneDayTours
// @Produce json
// @Param id path int true "OneDayTour ID"
// @Success 200 {object} db_models.OneDayTour
// @Failure 404 {object} utils.ErrorResponse
// @Router /onedaytours/{id} [get]
func (h *OneDayToursController) GetOneDayTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.tourService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching one-day tour")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// CreateOneDayTour godoc
// @Summary Create a one-day tour
// @Tags OneDayTours
// @Accept json
// @Produce json
// @Param body body request_models.CreateOneDayTourRequest true "OneDayTour"
// @Success 201 {object} db_models.OneDayTour
// @Failure 400 {object} utils.ErrorResponse
// @Router /onedaytours [post]
func (h *OneDayToursController) CreateOneDayTour(c *gin.Context) {
	var req request_models.CreateOneDayTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.TourRequiredMessage)
		return
	}

	item, err := h.tourService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating one-day tour")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, item)
}

// UpdateOneDayTour godoc
// @Summary Update a one-day tour
// @Description Fields left out of the body keep their stored value
// @Tags OneDayTours
// @Accept json
// @Produce json
// @Param id path int true "OneDayTour ID"
// @Param body body request_models.CreateOneDayTourRequest true "Fields to change"
// @Success 200 {object} db_models.OneDayTour
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /onedaytours/{id} [put]
func (h *OneDayToursController) UpdateOneDayTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request_models.TourPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	item, err := h.tourService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating one-day tour")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// DeleteOneDayTour godoc
// @Summary Delete a one-day tour
// @Tags OneDayTours
// @Produce json
// @Param id path int true "OneDayTour ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /onedaytours/{id} [delete]
func (h *OneDayToursController) DeleteOneDayTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tourService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting one-day tour")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "One-day tour deleted successfully!")
}
