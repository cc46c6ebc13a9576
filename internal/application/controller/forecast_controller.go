package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/usecase/location"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DefaultLocation is used by /forecast when the request carries no coordinates
type DefaultLocation struct {
	Name        string
	Coordinates entity.Coordinates
}

type ForecastController struct {
	api             *echo.Group
	weatherUseCase  weather.UseCase
	locationUseCase location.UseCase
	defaultLocation DefaultLocation
}

func NewForecastController(api *echo.Group, weatherUseCase weather.UseCase, locationUseCase location.UseCase, defaultLocation DefaultLocation) *ForecastController {
	return &ForecastController{
		api:             api,
		weatherUseCase:  weatherUseCase,
		locationUseCase: locationUseCase,
		defaultLocation: defaultLocation,
	}
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/forecast", controller.GetForecast)
	controller.api.GET("/locations/:id/forecast", controller.GetLocationForecast)
}

// GetForecast godoc
// @Summary Get the weather report of a point
// @Description Current conditions, today's remaining hours, the 7 day outlook, temperature feeling and clothing advice.
// @Description Without lat and lon the default location is used.
// @Tags forecast
// @Produce json
// @Param lat query number false "Latitude in [-90, 90]"
// @Param lon query number false "Longitude in [-180, 180]"
// @Param name query string false "Display name of the location"
// @Success 200 {object} model.WeatherReport
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 502 {object} map[string]string "Weather API failure"
// @Failure 503 {object} map[string]string "Weather API rate limit"
// @Router /forecast [get]
func (controller *ForecastController) GetForecast(c echo.Context) error {
	latitude, err := numberutils.ToOptionalFloat64(c.QueryParam("lat"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "lat must be a number")
	}
	longitude, err := numberutils.ToOptionalFloat64(c.QueryParam("lon"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "lon must be a number")
	}

	name := c.QueryParam("name")
	var coordinates entity.Coordinates

	switch {
	case latitude == nil && longitude == nil:
		coordinates = controller.defaultLocation.Coordinates
		if name == "" {
			name = controller.defaultLocation.Name
		}
	case latitude == nil || longitude == nil:
		return errorResponse(c, http.StatusBadRequest, "lat and lon must be given together")
	default:
		coordinates, err = entity.NewCoordinates(*latitude, *longitude)
		if err != nil {
			return errorResponse(c, http.StatusBadRequest, err.Error())
		}
	}

	report, err := controller.weatherUseCase.GetReport(c.Request().Context(), name, coordinates)
	if err != nil {
		log.Error(msg.GetMessage("forecast.error.fetch-failed", coordinates.Latitude, coordinates.Longitude, err.Error()), zap.Error(err))
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// GetLocationForecast godoc
// @Summary Get the weather report of a saved location
// @Tags forecast
// @Produce json
// @Param id path string true "Saved location id"
// @Success 200 {object} model.WeatherReport
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 502 {object} map[string]string "Weather API failure"
// @Router /locations/{id}/forecast [get]
func (controller *ForecastController) GetLocationForecast(c echo.Context) error {
	ctx := c.Request().Context()

	saved, err := controller.locationUseCase.FindByID(ctx, c.Param("id"))
	if errors.Is(err, db.ErrLocationNotFound) {
		return errorResponse(c, http.StatusNotFound, "Location not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}

	report, err := controller.weatherUseCase.GetReport(ctx, saved.Name, saved.Coordinates())
	if err != nil {
		log.Error(msg.GetMessage("forecast.error.fetch-failed", saved.Latitude, saved.Longitude, err.Error()), zap.Error(err))
		return upstreamError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
