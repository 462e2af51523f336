package handler

import (
	"net/http"

	"playfinder/internal/delivery/http/response"
	"playfinder/internal/refdata"

	"github.com/labstack/echo/v4"
)

// RefdataHandler serves the static category and location catalogs.
type RefdataHandler struct{}

// NewRefdataHandler is the constructor for RefdataHandler.
func NewRefdataHandler() *RefdataHandler {
	return &RefdataHandler{}
}

type categoryView struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type cityView struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	StateCode string  `json:"state_code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type stateView struct {
	Code   string     `json:"code"`
	Name   string     `json:"name"`
	Cities []cityView `json:"cities"`
}

// ListCategories returns the activity catalog in display order.
func (h *RefdataHandler) ListCategories(c echo.Context) error {
	views := make([]categoryView, 0, len(refdata.Categories))
	for _, category := range refdata.Categories {
		views = append(views, categoryView(category))
	}

	return response.Success(c, http.StatusOK, views, "Categories retrieved successfully")
}

// ListLocations returns states with their catalog cities.
func (h *RefdataHandler) ListLocations(c echo.Context) error {
	views := make([]stateView, 0, len(refdata.States))
	for _, state := range refdata.States {
		view := stateView{Code: state.Code, Name: state.Name}
		for _, city := range refdata.CitiesInState(state.Code) {
			view.Cities = append(view.Cities, cityView{
				Slug:      city.Slug,
				Name:      city.Name,
				StateCode: city.StateCode,
				Latitude:  city.Centre.Lat(),
				Longitude: city.Centre.Lon(),
			})
		}
		views = append(views, view)
	}

	return response.Success(c, http.StatusOK, views, "Locations retrieved successfully")
}
