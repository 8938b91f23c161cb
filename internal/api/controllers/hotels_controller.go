package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type HotelsController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelsController(hotelService services.HotelServiceInterface) *HotelsController {
	return &HotelsController{
		hotelService: hotelService,
	}
}

// ListHotels godoc
// @Summary List hotels
// @Tags Hotels
// @Produce json
// @Param range query string false "JSON [start, end], inclusive"
// @Param sort query string false "JSON [field, order]"
// @Param filter query string false "JSON object of field filters"
// @Success 200 {array} db_models.Hotel
// @Header 200 {string} Content-Range "hotels 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /hotels [get]
func (h *HotelsController) ListHotels(c *gin.Context) {
	page, err := h.hotelService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching hotels")
		return
	}
	respondPage(c, page)
}

// GetHotel godoc
// @Summary Get a hotel
// @Tags Hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} db_models.Hotel
// @Failure 404 {object} utils.ErrorResponse
// @Router /hotels/{id} [get]
func (h *HotelsController) GetHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.hotelService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching hotel")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// CreateHotel godoc
// @Summary Create a hotel
// @Tags Hotels
// @Accept json
// @Produce json
// @Param body body request_models.CreateHotelRequest true "Hotel"
// @Success 201 {object} db_models.Hotel
// @Failure 400 {object} utils.ErrorResponse
// @Router /hotels [post]
func (h *HotelsController) CreateHotel(c *gin.Context) {
	var req request_models.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.HotelRequiredMessage)
		return
	}

	item, err := h.hotelService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating hotel")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, item)
}

// UpdateHotel godoc
// @Summary Update a hotel
// @Description Fields left out of the body keep their stored value
// @Tags Hotels
// @Accept json
// @Produce json
// @Param id path int true "Hotel ID"
// @Param body body request_models.CreateHotelRequest true "Fields to change"
// @Success 200 {object} db_models.Hotel
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /hotels/{id} [put]
func (h *HotelsController) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request_models.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	item, err := h.hotelService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating hotel")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, item)
}

// DeleteHotel godoc
// @Summary Delete a hotel
// @Tags Hotels
// @Produce json
// @Param id path int true "Hotel ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /hotels/{id} [delete]
func (h *HotelsController) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.hotelService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting hotel")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Hotel deleted successfully!")
}
