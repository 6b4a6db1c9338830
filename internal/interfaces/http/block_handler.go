package http

import (
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/application"
	"github.com/gofiber/fiber/v2"
)

type BlockHandler struct {
	service *application.BlockService
}

// NewBlockHandler creates a new availability-block handler.
func NewBlockHandler(service *application.BlockService) *BlockHandler {
	return &BlockHandler{
		service: service,
	}
}

// CreateBlockRequest is the admin payload for blocking a date range.
type CreateBlockRequest struct {
	StartDate string `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate   string `json:"endDate" validate:"required"`   // YYYY-MM-DD
	Reason    string `json:"reason"`
}

// CreateBlock handles POST /api/studios/:id/blocks.
func (h *BlockHandler) CreateBlock(c *fiber.Ctx) error {
	var req CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "",
			"invalid request body", "صيغة الطلب غير صالحة")
	}
	if err := validate.Struct(req); err != nil {
		return respondStructErrors(c, err)
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "startDate",
			"invalid start date, use YYYY-MM-DD",
			"تاريخ البداية غير صالح، استخدم الصيغة YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "endDate",
			"invalid end date, use YYYY-MM-DD",
			"تاريخ النهاية غير صالح، استخدم الصيغة YYYY-MM-DD")
	}

	block, err := h.service.CreateBlock(c.Params("id"), start, end, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": block,
	})
}

// GetBlocks handles GET /api/studios/:id/blocks.
func (h *BlockHandler) GetBlocks(c *fiber.Ctx) error {
	blocks, err := h.service.GetBlocksByStudio(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": blocks,
	})
}

// DeleteBlock handles DELETE /api/blocks/:id?studioId=. The studioId
// query is only used to invalidate the blocked-dates cache.
func (h *BlockHandler) DeleteBlock(c *fiber.Ctx) error {
	if err := h.service.DeleteBlock(c.Params("id"), c.Query("studioId")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "block deleted",
	})
}
