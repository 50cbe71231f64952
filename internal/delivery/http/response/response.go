// Package response holds the JSON helpers shared by all HTTP handlers.
// The wire format matches what the mobile client parses: success bodies
// carry a Spanish "mensaje" field, failures carry a single "error" field.
package response

import "github.com/labstack/echo/v4"

// ErrorBody is the error payload shape for every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error answers a failed request with the given status and message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorBody{Error: message})
}

// Message answers with a body containing only a confirmation message.
func Message(c echo.Context, statusCode int, mensaje string) error {
	return c.JSON(statusCode, map[string]string{"mensaje": mensaje})
}
