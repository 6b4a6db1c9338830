package http

import (
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/application"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	service *application.BookingService
	limiter *application.RateLimiter
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(service *application.BookingService, limiter *application.RateLimiter) *BookingHandler {
	return &BookingHandler{
		service: service,
		limiter: limiter,
	}
}

// CreateBookingRequest is the payload of the public booking form.
type CreateBookingRequest struct {
	StudioID              string `json:"studioId" validate:"required"`
	GuestName             string `json:"guestName" validate:"required"`
	GuestEmail            string `json:"guestEmail" validate:"required,email"`
	GuestPhone            string `json:"guestPhone" validate:"required"`
	GuestWhatsApp         string `json:"guestWhatsApp"`
	StartDate             string `json:"startDate" validate:"required"` // YYYY-MM-DD
	DurationDays          int    `json:"durationDays" validate:"required,gt=0"`
	WeeklyCleaningService bool   `json:"weeklyCleaningService"`
}

// UpdateStatusRequest carries the target status for an admin transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	if h.limiter != nil {
		if ok, err := h.limiter.Allow(c.IP()); !ok {
			return errorJSON(c, fiber.StatusTooManyRequests, "",
				err.Error(),
				"عدد كبير من المحاولات، يرجى المحاولة لاحقاً")
		}
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "",
			"invalid request body", "صيغة الطلب غير صالحة")
	}
	if err := validate.Struct(req); err != nil {
		return respondStructErrors(c, err)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "startDate",
			"invalid start date, use YYYY-MM-DD",
			"تاريخ البداية غير صالح، استخدم الصيغة YYYY-MM-DD")
	}

	booking, err := h.service.CreateBooking(application.CreateBookingInput{
		StudioID:              req.StudioID,
		GuestName:             req.GuestName,
		GuestEmail:            req.GuestEmail,
		GuestPhone:            req.GuestPhone,
		GuestWhatsApp:         req.GuestWhatsApp,
		StartDate:             startDate,
		DurationDays:          req.DurationDays,
		WeeklyCleaningService: req.WeeklyCleaningService,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": booking,
	})
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *fiber.Ctx) error {
	booking, err := h.service.GetBookingByID(c.Params("id"))
	if err != nil {
		return errorJSON(c, fiber.StatusNotFound, "",
			"booking not found", "الحجز غير موجود")
	}

	return c.JSON(fiber.Map{
		"data": booking,
	})
}

// GetBookingsInRange handles GET /api/bookings?from=&to=.
func (h *BookingHandler) GetBookingsInRange(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "from",
			"invalid from date, use YYYY-MM-DD",
			"تاريخ البداية غير صالح، استخدم الصيغة YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "to",
			"invalid to date, use YYYY-MM-DD",
			"تاريخ النهاية غير صالح، استخدم الصيغة YYYY-MM-DD")
	}

	bookings, err := h.service.GetBookingsInRange(from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": bookings,
	})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "",
			"invalid request body", "صيغة الطلب غير صالحة")
	}
	if err := validate.Struct(req); err != nil {
		return respondStructErrors(c, err)
	}

	if err := h.service.UpdateBookingStatus(c.Params("id"), domain.BookingStatus(req.Status)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "booking status updated",
	})
}

// ConfirmBooking handles POST /api/bookings/:id/confirm. The
// confirmation email goes out as a side effect when SMTP is configured.
func (h *BookingHandler) ConfirmBooking(c *fiber.Ctx) error {
	if err := h.service.ConfirmBooking(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "booking confirmed",
	})
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	if err := h.service.CancelBooking(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "booking cancelled",
	})
}
