package application

import (
	"strings"
	"testing"
)

func TestValidateNameAcceptsArabicAndLatin(t *testing.T) {
	v := &Validator{}

	for _, name := range []string{"Sara Ahmed", "فراس محمود", "O'Neill", "Jean-Luc"} {
		if err := v.ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateNameRejections(t *testing.T) {
	v := &Validator{}

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single rune", "س"},
		{"digits", "Sara123"},
		{"too long", strings.Repeat("س", 61)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateName(tt.input)
			if err == nil {
				t.Fatalf("ValidateName(%q) = nil, want error", tt.input)
			}
			if err.Field != "guestName" || err.MessageAr == "" {
				t.Errorf("error not bilingual or wrong field: %+v", err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	v := &Validator{}

	if err := v.ValidateEmail("sara@example.com"); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
	for _, email := range []string{"", "not-an-email", "a@b", "@example.com"} {
		if err := v.ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) = nil, want error", email)
		}
	}
}

func TestValidatePhoneNormalizesFormatting(t *testing.T) {
	v := &Validator{}

	for _, phone := range []string{"+966501234567", "0501234567", "+966 50 123-4567"} {
		if err := v.ValidatePhone(phone); err != nil {
			t.Errorf("ValidatePhone(%q) = %v, want nil", phone, err)
		}
	}
	for _, phone := range []string{"", "12345", "abc", "+9665012345678901234"} {
		if err := v.ValidatePhone(phone); err == nil {
			t.Errorf("ValidatePhone(%q) = nil, want error", phone)
		}
	}
}

func TestValidateGuestCollectsAllFailures(t *testing.T) {
	v := &Validator{}

	errs := v.ValidateGuest("", "bad", "")
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %+v", len(errs), errs)
	}
}
