package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type AutorToursController struct {
	tourService services.AutorTourServiceInterface
}

func NewAutorToursController(tourService services.AutorTourServiceInterface) *AutorToursController {
	return &AutorToursController{
		tourService: tourService,
	}
}

// ListAutorTours godoc
// @Summary List author tours
// @Tags AutorTours
// @Produce json
// @Param range query string false "JSON [start, end], inclusive"
// @Param sort query string false "JSON [field, order]"
// @Param filter query string false "JSON object of field filters"
// @Success 200 {array} db_models.AutorTour
// @Header 200 {string} Content-Range "autorTours 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /autortours [get]
func (h *AutorToursController) ListAutorTours(c *gin.Context) {
	page, err := h.tourService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching author tours")
		return
	}
	respondPage(c, page)
}

// GetAutorTour godoc
// @Summary Get an author tour
// @Tags AutorTours
// @Produce json
// @Param id path int true "AutorTour ID"
// @Success 200 {object} db_models.AutorTour
// @Failure 404 {object} utils.ErrorResponse
// @Router /autortours/{id} [get]
func (h *AutorToursController) GetAutorTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.tourService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching author tour")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// CreateAutorTour godoc
// @Summary Create an author tour
// @Tags AutorTours
// @Accept json
// @Produce json
// @Param body body request_models.CreateAutorTourRequest true "AutorTour"
// @Success 201 {object} db_models.AutorTour
// @Failure 400 {object} utils.ErrorResponse
// @Router /autortours [post]
func (h *AutorToursController) CreateAutorTour(c *gin.Context) {
	var req request_models.CreateAutorTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.TourRequiredMessage)
		return
	}

	item, err := h.tourService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating author tour")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, item)
}

// UpdateAutorTour godoc
// @Summary Update an author tour
// @Description Fields left out of the body keep their stored value
// @Tags AutorTours
// @Accept json
// @Produce json
// @Param id path int true "AutorTour ID"
// @Param body body request_models.CreateAutorTourRequest true "Fields to change"
// @Success 200 {object} db_models.AutorTour
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /autortours/{id} [put]
func (h *AutorToursController) UpdateAutorTour(c *gin.Context) {
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
		utils.HandleServiceError(c, err, "Error updating author tour")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// DeleteAutorTour godoc
// @Summary Delete an author tour
// @Tags AutorTours
// @Produce json
// @Param id path int true "AutorTour ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /autortours/{id} [delete]
func (h *AutorToursController) DeleteAutorTour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tourService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting author tour")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Author tour deleted successfully!")
}
