// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"newsguard/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.SuccessWithMessage(c, http.StatusOK, "Service is healthy", map[string]string{"status": "ok"})
}

// Banner answers GET /api.
func Banner(c echo.Context) error {
	return response.SuccessWithMessage(c, http.StatusOK, "NewsGuard API is running", nil)
}
