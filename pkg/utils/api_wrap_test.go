package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tourcms/internal/query"
)

func TestHandleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{err: ErrHotelNotFound, wantCode: http.StatusNotFound, wantMsg: "Hotel not found!"},
		{err: fmt.Errorf("load: %w", ErrMultiDayTourNotFound), wantCode: http.StatusNotFound, wantMsg: "Multi-day tour not found!"},
		{err: ErrRegionInUse, wantCode: http.StatusConflict},
		{err: ErrRegionReferenceInvalid, wantCode: http.StatusBadRequest},
		{err: fmt.Errorf("%w: orderedTours must be an array", ErrInvalidOrderPayload), wantCode: http.StatusBadRequest, wantMsg: "Invalid data format"},
		{err: fmt.Errorf("%w: cannot sort by \"x\"", query.ErrInvalidQuery), wantCode: http.StatusBadRequest, wantMsg: "invalid query: cannot sort by \"x\""},
		{err: ErrDatabaseError, wantCode: http.StatusInternalServerError, wantMsg: "Error fetching hotels"},
		{err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantMsg: "Error fetching hotels"},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleServiceError(c, tc.err, "Error fetching hotels")

			assert.Equal(t, tc.wantCode, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, resp.Error)
			}
		})
	}
}
