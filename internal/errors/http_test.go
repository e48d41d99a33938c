package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorEnvelope) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(zerolog.Nop())(err, c)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec, envelope := invoke(t, NotFound("User doesn't exist"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User doesn't exist", envelope.Message)
	assert.Equal(t, http.StatusNotFound, envelope.Error)
	assert.Equal(t, "/api/v1/auth/profile", envelope.Path)
	assert.NotEmpty(t, envelope.Timestamp)
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, envelope := invoke(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", envelope.Message)
	assert.Equal(t, http.StatusUnauthorized, envelope.Error)
}

func TestHTTPErrorHandler_UnrecognizedDefaultsTo500(t *testing.T) {
	rec, envelope := invoke(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", envelope.Message)
	assert.Equal(t, http.StatusInternalServerError, envelope.Error)
}
