package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tourcms/internal/services"
	"tourcms/pkg/utils"
)

const maxUploadSize = 10 << 20

type UploadResponse struct {
	Path string `json:"path"`
}

type UploadsController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadsController(uploadService services.UploadServiceInterface) *UploadsController {
	return &UploadsController{uploadService: uploadService}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Stores the file and returns the path to put into an img array
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /uploads [post]
func (u *UploadsController) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Multipart field \"file\" is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Cannot read uploaded file")
		return
	}
	defer file.Close()

	path, err := u.uploadService.Upload(c.Request.Context(), header.Filename, file, header.Size)
	if err != nil {
		utils.HandleServiceError(c, err, "Error uploading file")
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, UploadResponse{Path: path})
}

// ServeImage streams a previously uploaded image.
func (u *UploadsController) ServeImage(c *gin.Context) {
	body, info, err := u.uploadService.Open(c.Request.Context(), c.Param("name"))
	if err != nil {
		utils.HandleServiceError(c, err, "Error reading file")
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, info.Size, info.ContentType, body, nil)
}
