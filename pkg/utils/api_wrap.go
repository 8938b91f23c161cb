package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tourcms/internal/query"
)

// TraceIDKey is the gin context key holding the request trace id.
const TraceIDKey = "trace_id"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type serviceError struct {
	err     error
	code    int
	message string
}

var serviceErrors = []serviceError{
	{ErrRegionNotFound, http.StatusNotFound, "Region not found!"},
	{ErrHotelNotFound, http.StatusNotFound, "Hotel not found!"},
	{ErrEventNotFound, http.StatusNotFound, "Event not found!"},
	{ErrPlaceNotFound, http.StatusNotFound, "Place not found!"},
	{ErrOneDayTourNotFound, http.StatusNotFound, "One-day tour not found!"},
	{ErrMultiDayTourNotFound, http.StatusNotFound, "Multi-day tour not found!"},
	{ErrAutorTourNotFound, http.StatusNotFound, "Author tour not found!"},
	{ErrFileNotFound, http.StatusNotFound, "File not found!"},
	{ErrRegionReferenceInvalid, http.StatusBadRequest, "regionId does not reference an existing region"},
	{ErrRegionInUse, http.StatusConflict, "Region has related records and cannot be deleted"},
	{ErrInvalidOrderPayload, http.StatusBadRequest, "Invalid data format"},
	{ErrUnsupportedFileType, http.StatusBadRequest, "Only jpg, jpeg, png, gif and webp images are accepted"},
}

func RespondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError writes the response for an error returned by a
// service. Errors without a dedicated mapping become a 500 carrying
// fallback.
func HandleServiceError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, query.ErrInvalidQuery) {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			RespondError(c, se.code, se.message)
			return
		}
	}

	traceID := c.GetString(TraceIDKey)
	if !errors.Is(err, ErrDatabaseError) && !errors.Is(err, ErrStorageError) {
		zap.L().Error("unhandled service error", zap.Error(err), zap.String("trace_id", traceID))
	}
	RespondError(c, http.StatusInternalServerError, fallback)
}
