// Package response renders the JSON envelopes of the API.
package response

import (
	"net/http"

	deliverycontext "newsguard/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse is the envelope of every 2xx reply.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	User    any    `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

// ErrorResponse is the envelope of every failed reply.
type ErrorResponse struct {
	Success   bool       `json:"success"`
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	Error     *ErrorInfo `json:"error"`
	RequestID string     `json:"requestId"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// Success returns {success:true, data}
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Success: true, Data: data})
}

// SuccessWithMessage returns {success:true, message, data?}
func SuccessWithMessage(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, SuccessResponse{Success: true, Message: message, Data: data})
}

// Session returns the signup/login shape {success, message, user, token}.
func Session(c echo.Context, statusCode int, message string, user any, token string) error {
	return c.JSON(statusCode, SuccessResponse{Success: true, Message: message, User: user, Token: token})
}

// User returns {success:true, user}
func User(c echo.Context, user any) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, User: user})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    errorCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
