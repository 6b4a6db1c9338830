package http

import (
	"log"
	"strconv"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/application"
	services "github.com/FerasMahmoud/MustaqarRS-sub000/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	gallery *application.GalleryService
	s3      *services.S3Service
}

// NewGalleryHandler creates a new gallery handler. The S3 service may be
// nil when the bucket is not configured; uploads then return 503.
func NewGalleryHandler(gallery *application.GalleryService, s3 *services.S3Service) *GalleryHandler {
	return &GalleryHandler{
		gallery: gallery,
		s3:      s3,
	}
}

// UploadImage handles POST /api/upload/images. The multipart form
// carries the file plus studioId, and optionally caption and sortOrder.
func (h *GalleryHandler) UploadImage(c *fiber.Ctx) error {
	if h.s3 == nil {
		return errorJSON(c, fiber.StatusServiceUnavailable, "",
			"image storage is not configured", "خدمة تخزين الصور غير مفعلة")
	}

	studioID := c.FormValue("studioId")
	if studioID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "studioId",
			"studioId is required", "معرف الاستوديو مطلوب")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "file",
			"file is required", "الملف مطلوب")
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("open uploaded file: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "",
			"could not read the uploaded file", "تعذر قراءة الملف المرفوع")
	}

	url, err := h.s3.UploadImage(c.Context(), file, fileHeader)
	if err != nil {
		log.Printf("upload to S3: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "",
			"could not store the image", "تعذر حفظ الصورة")
	}

	sortOrder, _ := strconv.Atoi(c.FormValue("sortOrder"))

	img, err := h.gallery.AddImage(studioID, url, c.FormValue("caption"), sortOrder)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": img,
	})
}

// GetStudioGallery handles GET /api/studios/:id/gallery.
func (h *GalleryHandler) GetStudioGallery(c *fiber.Ctx) error {
	images, err := h.gallery.GetImagesByStudio(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": images,
	})
}

// DeleteImage handles DELETE /api/gallery/:id.
func (h *GalleryHandler) DeleteImage(c *fiber.Ctx) error {
	if err := h.gallery.DeleteImage(c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "image deleted",
	})
}
