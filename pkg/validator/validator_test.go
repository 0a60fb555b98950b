package validator

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestValidatePhone(t *testing.T) {
	type form struct {
		Phone string `validate:"omitempty,phone"`
	}

	valid := []string{"", "+33 1 23 45 67 89", "0123456789", "06.12.34.56.78", "06-12-34-56-78"}
	for _, p := range valid {
		if err := Validate(context.Background(), form{Phone: p}); err != nil {
			t.Errorf("phone %q rejected: %v", p, err)
		}
	}

	invalid := []string{"abc", "12345", "+33 (0)1 23 45 67 89"}
	for _, p := range invalid {
		err := Validate(context.Background(), form{Phone: p})
		if err == nil {
			t.Errorf("phone %q accepted", p)
			continue
		}
		if !strings.Contains(err.Error(), "Invalid phone number") {
			t.Errorf("phone %q: unexpected message %q", p, err)
		}
	}
}

func TestValidateCompanyID(t *testing.T) {
	type form struct {
		CompanyID string `validate:"omitempty,companyid"`
	}

	// SIREN and SIRET
	for _, id := range []string{"", "123456789", "12345678901234"} {
		if err := Validate(context.Background(), form{CompanyID: id}); err != nil {
			t.Errorf("company id %q rejected: %v", id, err)
		}
	}
	for _, id := range []string{"12345678", "1234567890", "123456789012345", "12345678A"} {
		if err := Validate(context.Background(), form{CompanyID: id}); err == nil {
			t.Errorf("company id %q accepted", id)
		}
	}
}

func TestValidateFutureDate(t *testing.T) {
	type form struct {
		At time.Time `validate:"future"`
	}

	if err := Validate(context.Background(), form{At: time.Now().Add(time.Hour)}); err != nil {
		t.Errorf("future date rejected: %v", err)
	}
	err := Validate(context.Background(), form{At: time.Now().Add(-time.Hour)})
	if err == nil {
		t.Fatal("past date accepted")
	}
	if !strings.Contains(err.Error(), "Date must be in the future") {
		t.Errorf("unexpected message %q", err)
	}
}

func TestValidateRequiredAndEmail(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}

	err := Validate(context.Background(), form{})
	if err == nil || !strings.Contains(err.Error(), ErrFieldRequired) {
		t.Errorf("missing email: got %v", err)
	}

	err = Validate(context.Background(), form{Email: "not-an-email"})
	if err == nil || !strings.Contains(err.Error(), ErrInvalidFormat) {
		t.Errorf("malformed email: got %v", err)
	}

	if err := Validate(context.Background(), form{Email: "a@b.fr"}); err != nil {
		t.Errorf("valid email rejected: %v", err)
	}
}
