package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

const contentRangeHeader = "Content-Range"

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func listRequest(c *gin.Context) services.ListRequest {
	return services.ListRequest{
		Range:  c.Query("range"),
		Sort:   c.Query("sort"),
		Filter: c.Query("filter"),
	}
}

func respondPage[T any](c *gin.Context, page *services.Page[T]) {
	c.Header(contentRangeHeader, page.ContentRange)
	utils.RespondSuccess(c, http.StatusOK, page.Items)
}
