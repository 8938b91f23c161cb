package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type MultiDayToursController struct {
	tourService services.MultiDayTourServiceInterface
}

func NewMultiDayToursController(tourService services.MultiDayTourServiceInterface) *MultiDayToursController {
	return &MultiDayToursController{
		tourService: tourService,
	}
}

// ListMultiDayTours godoc
// @Summary List multi-day tours
// @Tags MultiDayTours
// @Produce json
// @Param range query string false "JSON [start, end], inclusive"
// @Param sort query string false "JSON [field, order]"
// @Param filter query string false "JSON object of field filters"
// @Success 200 {array} db_models.MultiDayTour
// @Header 200 {string} Content-Range "multiDayTours 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /multidaytours [get]
func (h *MultiDayToursController) ListMultiDayTours(c *gin.Context) {
	page, err := h.tourService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching multi-day tours")
		return
	}
	respondPage(c, page)
}

// GetMultiDayTour godoc
// @Summary Get a multi-day tour
// @Tags MultiDayTours
// @Produce json
// @Param id path int true "MultiDayTour ID"
// @Success 200 {object} db_models.MultiDayTour
// @Failure 404 {object} utils.ErrorResponse
// @Router /multidaytours/{id} [get]
func (h *MultiDayToursController) GetMultiDayTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.tourService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching multi-day tour")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// CreateMultiDayTour godoc
// @Summary Create a multi-day tour
// @Tags MultiDayTours
// @Accept json
// @Produce json
// @Param body body request_models.CreateMultiDayTourRequest true "MultiDayTour"
// @Success 201 {object} db_models.MultiDayTour
// @Failure 400 {object} utils.ErrorResponse
// @Router /multidaytours [post]
func (h *MultiDayToursController) CreateMultiDayTour(c *gin.Context) {
	var req request_models.CreateMultiDayTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.TourRequiredMessage)
		return
	}

	item, err := h.tourService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating multi-day tour")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, item)
}

// UpdateMultiDayTour godoc
// @Summary Update a multi-day tour
// @Description Fields left out of the body keep their stored value
// @Tags MultiDayTours
// @Accept json
// @Produce json
// @Param id path int true "MultiDayTour ID"
// @Param body body request_models.CreateMultiDayTourRequest true "Fields to change"
// @Success 200 {object} db_models.MultiDayTour
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /multidaytours/{id} [put]
func (h *MultiDayToursController) UpdateMultiDayTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request_models.UpdateMultiDayTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	item, err := h.tourService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating tour")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// DeleteMultiDayTour godoc
// @Summary Delete a multi-day tour
// @Tags MultiDayTours
// @Produce json
// @Param id path int true "MultiDayTour ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /multidaytours/{id} [delete]
func (h *MultiDayToursController) DeleteMultiDayTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tourService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting multi-day tour")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Multi-day tour deleted successfully!")
}

// UpdateOrder godoc
// @Summary Reorder multi-day tours
// @Description Sets each tour's order to its position in the list. All updates succeed or none do.
// @Tags MultiDayTours
// @Accept json
// @Produce json
// @Param body body request_models.UpdateOrderRequest true "Tours in display order"
// @Success 200 {object} utils.MessageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /multidaytours/order [put]
func (h *MultiDayToursController) UpdateOrder(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidOrderPayload, "Error updating tour order")
		return
	}

	ids, err := request_models.ParseOrderedTours(body)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating tour order")
		return
	}

	if err := h.tourService.Reorder(c.Request.Context(), ids); err != nil {
		utils.HandleServiceError(c, err, "Error updating tour order")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Multi-day tours order updated successfully!")
}
