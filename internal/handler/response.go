package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform success body returned by every endpoint. The
// transport status is always 200; StatusCode carries the operation's own
// code (201 for creations).
type Envelope struct {
	Message    string      `json:"message"`
	Status     bool        `json:"status"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
}

func success(c echo.Context, message string, statusCode int, data interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	return c.JSON(http.StatusOK, Envelope{
		Message:    message,
		Status:     true,
		StatusCode: statusCode,
		Data:       data,
	})
}
