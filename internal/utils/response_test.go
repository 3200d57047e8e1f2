package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	RespondError(c, err)
	return rec
}

func TestRespondError_AppError(t *testing.T) {
	rec := respond(NotFound("Module not found"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Module not found"}`, rec.Body.String())
}

func TestRespondError_UnknownError(t *testing.T) {
	rec := respond(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		code   string
	}{
		{ValidationError("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{Unauthorized("no"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{Forbidden("denied"), http.StatusForbidden, "FORBIDDEN"},
		{NotFound("gone"), http.StatusNotFound, "NOT_FOUND"},
		{StorageError("down"), http.StatusInternalServerError, "STORAGE_ERROR"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.err.Message, tc.err.Error())
	}
}
