package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		want       ErrorResponse
	}{
		{
			name:       "validation error",
			err:        NewFieldValidation("model", "unknown model", errors.New("XYZ")),
			wantStatus: http.StatusBadRequest,
			want:       ErrorResponse{Error: "unknown model: XYZ", Title: "validation error", Field: "model"},
		},
		{
			name:       "http error",
			err:        echo.NewHTTPError(http.StatusNotFound, "experiment not found"),
			wantStatus: http.StatusNotFound,
			want:       ErrorResponse{Error: "experiment not found"},
		},
		{
			name:       "unhandled error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			want:       ErrorResponse{Error: "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
