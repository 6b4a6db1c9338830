package application

import (
	"regexp"
	"strings"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	nameRegex  = regexp.MustCompile(`^[\p{L}\s\-'.]+$`)
)

// Validator checks guest-supplied data. Every failure carries its message
// in both site languages, scoped to the offending field.
type Validator struct{}

// ValidateEmail validates an email address.
func (v *Validator) ValidateEmail(email string) *engine.ValidationError {
	email = strings.TrimSpace(email)
	if email == "" {
		return &engine.ValidationError{
			Field:     "guestEmail",
			Message:   "email is required",
			MessageAr: "البريد الإلكتروني مطلوب",
		}
	}
	if !emailRegex.MatchString(email) {
		return &engine.ValidationError{
			Field:     "guestEmail",
			Message:   "email format is not valid",
			MessageAr: "صيغة البريد الإلكتروني غير صحيحة",
		}
	}
	return nil
}

// ValidatePhone validates a phone number in international format.
func (v *Validator) ValidatePhone(phone string) *engine.ValidationError {
	if phone == "" {
		return &engine.ValidationError{
			Field:     "guestPhone",
			Message:   "phone number is required",
			MessageAr: "رقم الهاتف مطلوب",
		}
	}

	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phoneRegex.MatchString(clean) {
		return &engine.ValidationError{
			Field:     "guestPhone",
			Message:   "phone number must have 7 to 15 digits",
			MessageAr: "يجب أن يتكون رقم الهاتف من 7 إلى 15 رقماً",
		}
	}
	return nil
}

// ValidateName validates the guest's name. Arabic and Latin letters are
// both accepted.
func (v *Validator) ValidateName(name string) *engine.ValidationError {
	name = strings.TrimSpace(name)
	if name == "" {
		return &engine.ValidationError{
			Field:     "guestName",
			Message:   "name is required",
			MessageAr: "الاسم مطلوب",
		}
	}
	if len([]rune(name)) < 2 {
		return &engine.ValidationError{
			Field:     "guestName",
			Message:   "name must have at least 2 characters",
			MessageAr: "يجب أن يتكون الاسم من حرفين على الأقل",
		}
	}
	if len([]rune(name)) > 60 {
		return &engine.ValidationError{
			Field:     "guestName",
			Message:   "name must not exceed 60 characters",
			MessageAr: "يجب ألا يتجاوز الاسم 60 حرفاً",
		}
	}
	if !nameRegex.MatchString(name) {
		return &engine.ValidationError{
			Field:     "guestName",
			Message:   "name contains invalid characters",
			MessageAr: "يحتوي الاسم على أحرف غير صالحة",
		}
	}
	return nil
}

// ValidateGuest validates the full set of guest fields and collects every
// failure instead of stopping at the first one.
func (v *Validator) ValidateGuest(name, email, phone string) []*engine.ValidationError {
	var errs []*engine.ValidationError

	if err := v.ValidateName(name); err != nil {
		errs = append(errs, err)
	}
	if err := v.ValidateEmail(email); err != nil {
		errs = append(errs, err)
	}
	if err := v.ValidatePhone(phone); err != nil {
		errs = append(errs, err)
	}

	return errs
}
