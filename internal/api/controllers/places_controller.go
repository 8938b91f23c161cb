package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

// ListPlaces godoc
// @Summary List places
// @Tags Places
// @Produce json
// @Param range query string false "JSON [start, end], inclusive"
// @Param sort query string false "JSON [field, order]"
// @Param filter query string false "JSON object of field filters"
// @Success 200 {array} db_models.Place
// @Header 200 {string} Content-Range "places 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /places [get]
func (h *PlacesController) ListPlaces(c *gin.Context) {
	page, err := h.placeService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching places")
		return
	}
	respondPage(c, page)
}

// GetPlace godoc
// @Summary Get a place
// @Tags Places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} db_models.Place
// @Failure 404 {object} utils.ErrorResponse
// @Router /places/{id} [get]
func (h *PlacesController) GetPlace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.placeService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching place")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// CreatePlace godoc
// @Summary Create a place
// @Tags Places
// @Accept json
// @Produce json
// @Param body body request_models.CreatePlaceRequest true "Place"
// @Success 201 {object} db_models.Place
// @Failure 400 {object} utils.ErrorResponse
// @Router /places [post]
func (h *PlacesController) CreatePlace(c *gin.Context) {
	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.PlaceRequiredMessage)
		return
	}

	item, err := h.placeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating place")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, item)
}

// UpdatePlace godoc
// @Summary Update a place
// @Description Fields left out of the body keep their stored value
// @Tags Places
// @Accept json
// @Produce json
// @Param id path int true "Place ID"
// @Param body body request_models.CreatePlaceRequest true "Fields to change"
// @Success 200 {object} db_models.Place
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /places/{id} [put]
func (h *PlacesController) UpdatePlace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request_models.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	item, err := h.placeService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating place")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// DeletePlace godoc
// @Summary Delete a place
// @Tags Places
// @Produce json
// @Param id path int true "Place ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /places/{id} [delete]
func (h *PlacesController) DeletePlace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.placeService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting place")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Place deleted successfully!")
}
