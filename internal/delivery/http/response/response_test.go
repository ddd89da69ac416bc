package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "lensauth/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "1"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"1"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DetailsVisibility(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		details     any
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, details: "email: required", wantDetails: true},
		{name: "empty details are omitted", status: http.StatusBadRequest, details: "", wantDetails: false},
		{name: "unauthorized hides details", status: http.StatusUnauthorized, details: "signature invalid", wantDetails: false},
		{name: "forbidden hides details", status: http.StatusForbidden, details: "not admin", wantDetails: false},
		{name: "server error hides details", status: http.StatusInternalServerError, details: "dial tcp", wantDetails: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.status, "CODE", "message", tt.details))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, tt.details, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}
