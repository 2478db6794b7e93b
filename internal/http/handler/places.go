package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"greeter/internal/model"
	"greeter/internal/service"
)

// RegisterPlacesRoutes attaches the nearby-places routes under /api.
func RegisterPlacesRoutes(app *fiber.App, svc service.PlacesService) {
	api := app.Group("/api")
	api.Get("/hospital", SearchPlaces(svc, model.Hospitals))
	api.Get("/social-services/food", SearchPlaces(svc, model.FoodServices))
	api.Get("/social-services/shelter", SearchPlaces(svc, model.Shelters))
	api.Get("/transportation", SearchPlaces(svc, model.PublicTransport))
}

// SearchPlaces godoc
// @Summary Nearby places of one category
// @Description The radius doubles while nothing is found, up to ten queries and while under 50 km.
// @Description Served at /api/hospital, /api/social-services/food, /api/social-services/shelter and /api/transportation.
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param radius query int false "Initial radius in meters (5000, or 1000 for transportation)"
// @Success 200 {object} model.PlaceCollection
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/hospital [get]
func SearchPlaces(svc service.PlacesService, category model.PlaceCategory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		at, ok := parseCoordinates(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COORDINATES", "latitude and longitude are required and must be valid")
		}

		radius := 0
		if v := c.Query("radius"); v != "" {
			r, err := strconv.Atoi(v)
			if err != nil || r < 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_RADIUS", "radius must be a non-negative integer")
			}
			radius = r
		}

		res, err := svc.Search(c.UserContext(), category, at, radius)
		if err != nil {
			var npe *service.NoPlacesError
			if errors.As(err, &npe) {
				return writeError(c, fiber.StatusNotFound, "NO_PLACES_FOUND", npe.Error())
			}
			return upstreamFailure(err)
		}
		return c.JSON(res)
	}
}
