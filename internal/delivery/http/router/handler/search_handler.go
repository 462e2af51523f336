package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"playfinder/internal/delivery/http/response"
	"playfinder/internal/domain/entity"
	"playfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the venue search endpoint.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{uc: uc, logger: logger}
}

// venueSummary is the search result card payload.
type venueSummary struct {
	ID            string   `json:"id"`
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Suburb        string   `json:"suburb"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Categories    []string `json:"categories"`
	AgeMin        int      `json:"age_min"`
	AgeMax        int      `json:"age_max"`
	Indoor        bool     `json:"indoor"`
	PriceRange    int      `json:"price_range"`
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	IsPromoted    bool     `json:"is_promoted"`
	DistanceKm    *float64 `json:"distance_km,omitempty"`
	DistanceLabel string   `json:"distance_label,omitempty"`
}

type searchPageView struct {
	Results        []venueSummary `json:"results"`
	Mode           string         `json:"mode"`
	Page           int            `json:"page"`
	PageSize       int            `json:"page_size"`
	TotalResults   int            `json:"total_results"`
	TotalPages     int            `json:"total_pages"`
	LocationNotice string         `json:"location_notice,omitempty"`
}

func toVenueSummary(result usecase.VenueResult) venueSummary {
	venue := result.Venue

	return venueSummary{
		ID:            venue.ID.String(),
		Slug:          venue.Slug,
		Name:          venue.Name,
		Suburb:        venue.Suburb,
		City:          venue.City,
		State:         venue.State,
		Categories:    venue.Categories,
		AgeMin:        venue.AgeMin,
		AgeMax:        venue.AgeMax,
		Indoor:        venue.Indoor,
		PriceRange:    venue.PriceRange,
		AverageRating: venue.AverageRating,
		ReviewCount:   venue.ReviewCount,
		IsPromoted:    venue.IsPromoted,
		DistanceKm:    result.DistanceKm,
		DistanceLabel: result.DistanceLabel,
	}
}

// Search handles GET /search. With use_location=true the results come from
// venues near the caller, still honouring the other filters; if the position
// cannot be resolved the response carries directory-wide results plus a
// location notice.
func (h *SearchHandler) Search(c echo.Context) error {
	filters, err := parseSearchFilters(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "page must be a positive integer")
		}
	}

	result, err := h.uc.Query(c.Request().Context(), filters, page)
	if err != nil {
		return errors.WithStack(err)
	}

	view := searchPageView{
		Results:        make([]venueSummary, 0, len(result.Results)),
		Mode:           string(result.Mode),
		Page:           result.Page,
		PageSize:       result.PageSize,
		TotalResults:   result.TotalResults,
		TotalPages:     result.TotalPages,
		LocationNotice: result.LocationNotice,
	}
	for _, r := range result.Results {
		view.Results = append(view.Results, toVenueSummary(r))
	}

	return response.Success(c, http.StatusOK, view, "Search completed")
}

func parseSearchFilters(c echo.Context) (usecase.SearchFilters, error) {
	filters := usecase.SearchFilters{
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
		State:    strings.ToLower(c.QueryParam("state")),
		Text:     c.QueryParam("q"),
	}

	var err error
	if filters.AgeMin, err = optionalInt(c.QueryParam("age_min")); err != nil {
		return filters, errors.New("age_min must be an integer")
	}
	if filters.AgeMax, err = optionalInt(c.QueryParam("age_max")); err != nil {
		return filters, errors.New("age_max must be an integer")
	}
	if filters.PriceRange, err = optionalInt(c.QueryParam("price_range")); err != nil {
		return filters, errors.New("price_range must be an integer")
	}
	if filters.Indoor, err = optionalBool(c.QueryParam("indoor")); err != nil {
		return filters, errors.New("indoor must be true or false")
	}

	if raw := c.QueryParam("facilities"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Facilities = append(filters.Facilities, tag)
			}
		}
	}
	filters.OpenNow = c.QueryParam("open_now") == "true"
	filters.HasActiveOffer = c.QueryParam("has_offer") == "true"
	filters.UseLocation = c.QueryParam("use_location") == "true"

	return filters, nil
}

func optionalInt(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func optionalBool(raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// venueDetail is the full listing payload for the detail page.
type venueDetail struct {
	venueSummary
	Description   string              `json:"description"`
	Address       string              `json:"address"`
	Postcode      string              `json:"postcode"`
	Latitude      *float64            `json:"latitude,omitempty"`
	Longitude     *float64            `json:"longitude,omitempty"`
	Facilities    []string            `json:"facilities"`
	OpeningHours  map[string]dayHours `json:"opening_hours"`
	Status        string              `json:"status"`
	FavoriteCount int                 `json:"favorite_count"`
	Offers        []offerView         `json:"offers"`
	Reviews       []reviewView        `json:"reviews"`
	Photos        []photoView         `json:"photos"`
}

type dayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

func toVenueDetail(venue *entity.Venue) venueDetail {
	detail := venueDetail{
		venueSummary:  toVenueSummary(usecase.VenueResult{Venue: venue}),
		Description:   venue.Description,
		Address:       venue.Address,
		Postcode:      venue.Postcode,
		Latitude:      venue.Latitude,
		Longitude:     venue.Longitude,
		Facilities:    venue.Facilities,
		OpeningHours:  make(map[string]dayHours, len(venue.OpeningHours)),
		Status:        venue.Status.String(),
		FavoriteCount: venue.FavoriteCount,
		Offers:        make([]offerView, 0, len(venue.Offers)),
		Reviews:       make([]reviewView, 0, len(venue.Reviews)),
		Photos:        make([]photoView, 0, len(venue.Photos)),
	}

	for day, hours := range venue.OpeningHours {
		detail.OpeningHours[strings.ToLower(day.String())] = dayHours(hours)
	}
	for _, offer := range venue.Offers {
		detail.Offers = append(detail.Offers, toOfferView(offer))
	}
	for _, review := range venue.Reviews {
		detail.Reviews = append(detail.Reviews, toReviewView(review))
	}
	for _, photo := range venue.Photos {
		detail.Photos = append(detail.Photos, toPhotoView(photo))
	}

	return detail
}
