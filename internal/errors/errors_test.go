package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		respond func(*gin.Context)
		status  int
		code    string
		message string
	}{
		{"unauthorized default", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required"},
		{"invalid credentials", InvalidCredentials, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid credentials"},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "nope") }, http.StatusForbidden, ErrCodeForbidden, "nope"},
		{"not found", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
		{"conflict", func(c *gin.Context) { Conflict(c, "taken") }, http.StatusConflict, ErrCodeConflict, "taken"},
		{"internal", func(c *gin.Context) { InternalError(c, "") }, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.respond(c)

			assert.Equal(t, tc.status, w.Code)
			assert.True(t, c.IsAborted())

			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequestWithDetails(c, "Invalid request body", map[string]string{"status": "taskstatus"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":"INVALID_INPUT","message":"Invalid request body","details":{"status":"taskstatus"}}`, w.Body.String())
}
