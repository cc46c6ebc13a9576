package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/gateway/api"

	"github.com/labstack/echo/v4"
)

func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// upstreamError maps a forecast failure to 503 when the weather API is rate limiting, 502 otherwise
func upstreamError(c echo.Context, err error) error {
	var statusErr *api.HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.RateLimited() {
		return errorResponse(c, http.StatusServiceUnavailable, err.Error())
	}
	return errorResponse(c, http.StatusBadGateway, err.Error())
}
