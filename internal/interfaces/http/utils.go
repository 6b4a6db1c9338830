package http

import (
	"errors"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validate checks request DTO shapes before anything touches the services.
var validate = validator.New()

// fieldError is the bilingual, field-scoped error envelope every endpoint
// returns: {"error": {"field": ..., "message": ..., "messageAr": ...}}.
type fieldError struct {
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	MessageAr string `json:"messageAr"`
}

func errorJSON(c *fiber.Ctx, status int, field, message, messageAr string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fieldError{Field: field, Message: message, MessageAr: messageAr},
	})
}

// respondError maps engine errors onto HTTP statuses: validation failures
// are 400, conflicts are 409 scoped to startDate, anything else is 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		return errorJSON(c, fiber.StatusBadRequest, verr.Field, verr.Message, verr.MessageAr)
	}

	var cerr *engine.ConflictError
	if errors.As(err, &cerr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fieldError{
				Field:     "startDate",
				Message:   "the selected dates are no longer available",
				MessageAr: "التواريخ المحددة لم تعد متاحة",
			},
			"conflictDate": cerr.Date.Format("2006-01-02"),
		})
	}

	return errorJSON(c, fiber.StatusInternalServerError, "", err.Error(), "حدث خطأ غير متوقع")
}

// respondStructErrors turns validator tag failures into the same envelope.
// Only the first failing field is reported; the frontend highlights one
// field at a time.
func respondStructErrors(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return errorJSON(c, fiber.StatusBadRequest, jsonFieldName(f),
			"field is missing or invalid",
			"هذا الحقل مفقود أو غير صالح")
	}
	return errorJSON(c, fiber.StatusBadRequest, "", "invalid request body", "صيغة الطلب غير صالحة")
}

// jsonFieldName lowercases the first letter of the struct field so the
// error matches the JSON key the client sent.
func jsonFieldName(f validator.FieldError) string {
	name := f.Field()
	if name == "" {
		return name
	}
	b := []byte(name)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
