package handler

import (
	"bytes"
	"errors"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"greeter/internal/model"
	"greeter/internal/service"
	"greeter/internal/upstream"
)

// ArchiveNameHeader carries the name under which the raw NASA feed was archived.
const ArchiveNameHeader = "X-Archive-Name"

// RegisterDisasterRoutes attaches the disaster lookup, feed and store routes under /api.
func RegisterDisasterRoutes(app *fiber.App, svc service.DisasterService) {
	api := app.Group("/api")
	api.Get("/fema", ActiveDeclarations(svc))
	api.Get("/nasa/disasters", RecentDisasters(svc))
	api.Get("/nasa/archives/:name", DisasterArchive(svc))
	api.Put("/disasters", StoreDisasters(svc))
	api.Get("/disasters/latest", LatestDisaster(svc))
}

// ActiveDeclarations godoc
// @Summary Open FEMA disaster declarations for the county at a point
// @Description Declarations with no incident end date, declared within the last six months.
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} model.DeclarationList
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /api/fema [get]
func ActiveDeclarations(svc service.DisasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		at, ok := parseCoordinates(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_COORDINATES", "latitude and longitude are required and must be valid")
		}

		res, err := svc.ActiveDeclarations(c.UserContext(), at)
		if err != nil {
			if errors.Is(err, upstream.ErrNoCounty) {
				return writeError(c, fiber.StatusNotFound, "LOCATION_NOT_FOUND", "no US county at these coordinates")
			}
			return upstreamFailure(err)
		}
		return c.JSON(res)
	}
}

// RecentDisasters godoc
// @Summary Latest natural events from NASA EONET with their locations
// @Produce json
// @Success 200 {array} model.RecentDisaster
// @Header 200 {string} X-Archive-Name "name of the archived raw feed"
// @Failure 502 {object} errorPayload
// @Router /api/nasa/disasters [get]
func RecentDisasters(svc service.DisasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Recent(c.UserContext())
		if err != nil {
			return upstreamFailure(err)
		}
		if res.ArchiveName != "" {
			c.Set(ArchiveNameHeader, res.ArchiveName)
		}
		return c.JSON(res.Items)
	}
}

// DisasterArchive godoc
// @Summary Download an archived raw NASA feed
// @Produce json
// @Param name path string true "Archive name, e.g. 20240615T083000Z.json"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/nasa/archives/{name} [get]
func DisasterArchive(svc service.DisasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Archive(c.UserContext(), c.Params("name"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "archive not found")
			case errors.Is(err, service.ErrArchiveUnavailable):
				return writeError(c, fiber.StatusServiceUnavailable, "ARCHIVE_UNAVAILABLE", "archive storage is not configured")
			}
			return err
		}

		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEApplicationJSON
		}
		c.Set(fiber.HeaderContentType, ct)
		return c.SendStream(rc, int(info.Size))
	}
}

// StoreDisasters godoc
// @Summary Store a batch of disaster records
// @Description Empty attributes are stored as "Unknown".
// @Accept json
// @Produce json
// @Param disasters body []model.Disaster true "Disaster records"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/disasters [put]
func StoreDisasters(svc service.DisasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := bytes.TrimSpace(c.Body())
		if len(body) == 0 || body[0] != '[' {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", "expected a JSON array")
		}
		var batch []model.Disaster
		if err := c.App().Config().JSONDecoder(body, &batch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", "expected a JSON array of disaster records")
		}

		n, err := svc.Store(c.UserContext(), batch)
		if err != nil {
			if errors.Is(err, service.ErrStoreUnavailable) {
				return writeError(c, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE", "disaster store is not configured")
			}
			return err
		}
		return c.JSON(fiber.Map{"message": "Disasters processed", "count": n})
	}
}

// LatestDisaster godoc
// @Summary Most recently stored disaster record
// @Produce json
// @Success 200 {object} model.Disaster
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/disasters/latest [get]
func LatestDisaster(svc service.DisasterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Latest(c.UserContext())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no disaster stored")
			case errors.Is(err, service.ErrStoreUnavailable):
				return writeError(c, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE", "disaster store is not configured")
			}
			return err
		}
		return c.JSON(d)
	}
}

func parseCoordinates(c *fiber.Ctx) (model.Coordinates, bool) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil || math.IsNaN(lat) || lat < -90 || lat > 90 {
		return model.Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil || math.IsNaN(lon) || lon < -180 || lon > 180 {
		return model.Coordinates{}, false
	}
	return model.Coordinates{Latitude: lat, Longitude: lon}, true
}
