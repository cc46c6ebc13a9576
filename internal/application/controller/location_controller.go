package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/location"

	"github.com/labstack/echo/v4"
)

type LocationController struct {
	api     *echo.Group
	useCase location.UseCase
}

func NewLocationController(api *echo.Group, useCase location.UseCase) *LocationController {
	return &LocationController{api: api, useCase: useCase}
}

// InitLocationRoutes initializes saved location, geocoding and catalog routes
func (controller *LocationController) InitLocationRoutes() {
	controller.api.GET("/locations", controller.FindAll)
	controller.api.POST("/locations", controller.Create)
	controller.api.DELETE("/locations/:id", controller.Delete)
	controller.api.GET("/geocoding/search", controller.Search)
	controller.api.GET("/cities/popular", controller.PopularCities)
}

// FindAll godoc
// @Summary List saved locations
// @Description Saved locations, oldest first
// @Tags locations
// @Produce json
// @Success 200 {array} entity.SavedLocation
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [get]
func (controller *LocationController) FindAll(c echo.Context) error {
	locations, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, locations)
}

// Create godoc
// @Summary Save a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body model.CreateLocationDTO true "Location to save"
// @Success 201 {object} entity.SavedLocation
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (controller *LocationController) Create(c echo.Context) error {
	var dto model.CreateLocationDTO
	if err := c.Bind(&dto); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Invalid request body")
	}

	created, err := controller.useCase.Create(c.Request().Context(), dto)
	if errors.Is(err, location.ErrInvalidLocation) {
		return errorResponse(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

// Delete godoc
// @Summary Delete a saved location
// @Tags locations
// @Param id path string true "Saved location id"
// @Success 204 "Location deleted"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/{id} [delete]
func (controller *LocationController) Delete(c echo.Context) error {
	err := controller.useCase.Delete(c.Request().Context(), c.Param("id"))
	if errors.Is(err, db.ErrLocationNotFound) {
		return errorResponse(c, http.StatusNotFound, "Location not found")
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// Search godoc
// @Summary Search places by name
// @Description Geocoding search. Requests are spaced 2 seconds apart and any failure yields an empty list.
// @Tags locations
// @Produce json
// @Param q query string true "Place name"
// @Success 200 {array} entity.Place
// @Router /geocoding/search [get]
func (controller *LocationController) Search(c echo.Context) error {
	places := controller.useCase.Search(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, places)
}

// PopularCities godoc
// @Summary List popular cities
// @Tags locations
// @Produce json
// @Param q query string false "Filter on city or country name"
// @Success 200 {array} entity.PopularCity
// @Router /cities/popular [get]
func (controller *LocationController) PopularCities(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.PopularCities(c.QueryParam("q")))
}
