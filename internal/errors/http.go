package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorEnvelope is the uniform error body returned by every endpoint.
type ErrorEnvelope struct {
	Message   string `json:"message"`
	Error     int    `json:"error"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// HTTPErrorHandler returns the single conversion point from any failure to
// the error envelope. Unrecognized faults default to 500.
func HTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var appErr *Error
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
		case errors.As(err, &echoErr):
			status = echoErr.Code
			message = fmt.Sprintf("%v", echoErr.Message)
		}

		log.Error().
			Err(err).
			Int("status", status).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg(message)

		envelope := ErrorEnvelope{
			Message:   message,
			Error:     status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      c.Request().URL.Path,
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, envelope)
		}
		if err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}
