package http

import (
	"strconv"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/application"
	"github.com/gofiber/fiber/v2"
)

type StudioHandler struct {
	studios      *application.StudioService
	availability *application.AvailabilityService
}

// NewStudioHandler creates a new studio handler.
func NewStudioHandler(studios *application.StudioService, availability *application.AvailabilityService) *StudioHandler {
	return &StudioHandler{
		studios:      studios,
		availability: availability,
	}
}

// GetStudios handles GET /api/studios. Only active studios are listed
// publicly; ?all=true includes inactive ones for the back office.
func (h *StudioHandler) GetStudios(c *fiber.Ctx) error {
	var err error
	var studios interface{}

	if c.Query("all") == "true" {
		studios, err = h.studios.GetAllStudios()
	} else {
		studios, err = h.studios.GetActiveStudios()
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": studios,
	})
}

// GetStudio handles GET /api/studios/:id. The path segment is an id first
// and a URL slug second, so the frontend can link either way.
func (h *StudioHandler) GetStudio(c *fiber.Ctx) error {
	key := c.Params("id")

	studio, err := h.studios.GetStudioByID(key)
	if err != nil {
		studio, err = h.studios.GetStudioBySlug(key)
	}
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "",
			"studio not found", "الاستوديو غير موجود")
	}

	return c.JSON(fiber.Map{
		"data": studio,
	})
}

// GetAvailability handles GET /api/studios/:id/availability?start=&days=&cleaning=.
// This is the live endpoint behind the date picker.
func (h *StudioHandler) GetAvailability(c *fiber.Ctx) error {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "start",
			"invalid start date, use YYYY-MM-DD",
			"تاريخ البداية غير صالح، استخدم الصيغة YYYY-MM-DD")
	}
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "days",
			"days must be a positive integer",
			"عدد الأيام يجب أن يكون رقماً موجباً")
	}
	cleaning := c.Query("cleaning") == "true"

	check, err := h.availability.Resolve(c.Params("id"), start, days, cleaning)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": check,
	})
}

// GetBlockedDates handles GET /api/studios/:id/blocked-dates?from=&to=.
// Without parameters the window runs from today through six months out,
// which is as far as the public calendar paginates.
func (h *StudioHandler) GetBlockedDates(c *fiber.Ctx) error {
	now := time.Now()
	from := now
	to := now.AddDate(0, 6, 0)

	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "from",
				"invalid from date, use YYYY-MM-DD",
				"تاريخ البداية غير صالح، استخدم الصيغة YYYY-MM-DD")
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			return errorJSON(c, fiber.StatusBadRequest, "to",
				"invalid to date, use YYYY-MM-DD",
				"تاريخ النهاية غير صالح، استخدم الصيغة YYYY-MM-DD")
		}
	}

	days, err := h.availability.BlockedDates(c.Params("id"), from, to)
	if err != nil {
		return respondError(c, err)
	}

	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Format("2006-01-02"))
	}

	return c.JSON(fiber.Map{
		"data": dates,
	})
}

// GetQuote handles GET /api/studios/:id/quote?days=&cleaning=. It prices a
// stay without checking the calendar.
func (h *StudioHandler) GetQuote(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil || days <= 0 {
		return errorJSON(c, fiber.StatusBadRequest, "days",
			"days must be a positive integer",
			"عدد الأيام يجب أن يكون رقماً موجباً")
	}
	cleaning := c.Query("cleaning") == "true"

	price, err := h.availability.Quote(c.Params("id"), days, cleaning)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": price,
	})
}
