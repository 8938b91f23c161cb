package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/models/request_models"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

type RegionsController struct {
	regionService services.RegionServiceInterface
}

func NewRegionsController(regionService services.RegionServiceInterface) *RegionsController {
	return &RegionsController{
		regionService: regionService,
	}
}

// ListRegions godoc
// @Summary List regions
// @Description Paginated, sorted and filtered list of regions with all related records
// @Tags Regions
// @Produce json
// @Param range query string false "JSON [start, end], inclusive" example([0,9])
// @Param sort query string false "JSON [field, order]" example(["title","ASC"])
// @Param filter query string false "JSON object of field filters" example({"title":"alps"})
// @Success 200 {array} db_models.Region
// @Header 200 {string} Content-Range "regions 0-9/42"
// @Failure 400 {object} utils.ErrorResponse
// @Router /regions [get]
func (r *RegionsController) ListRegions(c *gin.Context) {
	page, err := r.regionService.List(c.Request.Context(), listRequest(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching regions")
		return
	}
	respondPage(c, page)
}

// GetRegion godoc
// @Summary Get a region
// @Tags Regions
// @Produce json
// @Param id path int true "Region ID"
// @Success 200 {object} db_models.Region
// @Failure 404 {object} utils.ErrorResponse
// @Router /regions/{id} [get]
func (r *RegionsController) GetRegion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	region, err := r.regionService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err, "Error fetching region")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, region)
}

// CreateRegion godoc
// @Summary Create a region
// @Tags Regions
// @Accept json
// @Produce json
// @Param region body request_models.CreateRegionRequest true "Region"
// @Success 201 {object} db_models.Region
// @Failure 400 {object} utils.ErrorResponse
// @Router /regions [post]
func (r *RegionsController) CreateRegion(c *gin.Context) {
	var req request_models.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, request_models.RegionRequiredMessage)
		return
	}

	region, err := r.regionService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error creating region")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, region)
}

// UpdateRegion godoc
// @Summary Update a region
// @Description Fields left out of the body keep their stored value
// @Tags Regions
// @Accept json
// @Produce json
// @Param id path int true "Region ID"
// @Param region body request_models.CreateRegionRequest true "Fields to change"
// @Success 200 {object} db_models.Region
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /regions/{id} [put]
func (r *RegionsController) UpdateRegion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request_models.UpdateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	region, err := r.regionService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err, "Error updating region")
		return
	}
	utils.RespondSuccess(c, http.StatusOK, region)
}

// DeleteRegion godoc
// @Summary Delete a region
// @Tags Regions
// @Produce json
// @Param id path int true "Region ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /regions/{id} [delete]
func (r *RegionsController) DeleteRegion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := r.regionService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err, "Error deleting region")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Region deleted successfully!")
}
