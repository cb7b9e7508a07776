package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	Abort(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestAbortWritesUniformBody(t *testing.T) {
	w, body := perform(t, NotFound("Order not found with id: 42"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, float64(http.StatusNotFound), body["status"])
	assert.Equal(t, "Not Found", body["error"])
	assert.Equal(t, "Order not found with id: 42", body["message"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotContains(t, body, "details")
}

func TestAbortValidationDetails(t *testing.T) {
	_, body := perform(t, Validation(map[string]string{
		"email":    "must be a valid email address",
		"password": "password must be at least 6 characters",
	}))

	assert.Equal(t, "Validation failed", body["message"])
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, details, 2)
}

func TestAbortHidesInternalCause(t *testing.T) {
	w, body := perform(t, errors.New("pq: connection refused password=hunter2"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred", body["message"])
}

func TestStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want int
	}{
		{name: "validation", err: Validation(nil), want: http.StatusBadRequest},
		{name: "unauthorized", err: Unauthorized("nope"), want: http.StatusUnauthorized},
		{name: "not found", err: NotFound("gone"), want: http.StatusNotFound},
		{name: "conflict", err: Conflict("taken"), want: http.StatusConflict},
		{name: "upstream", err: Upstream(), want: http.StatusServiceUnavailable},
		{name: "internal", err: Internal(), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Status)
		})
	}
}
