package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/sos-cl/incident-map/internal/core/ports"
)

func validReport() ports.SubmitReportInput {
	return ports.SubmitReportInput{
		Title:       "Robo en calle X",
		CrimeType:   "ROBBERY",
		Description: "Se llevaron una bicicleta",
		Address:     "Calle X 123",
		Phone:       "55512345",
		Location:    ports.CoordinatesInput{Lat: -25.40, Lng: -70.48},
	}
}

func TestStructValidReport(t *testing.T) {
	if err := Struct(validReport()); err != nil {
		t.Fatalf("valid report rejected: %v", err)
	}
}

func TestStructReportConstraints(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.SubmitReportInput)
		field  string
	}{
		{"short title", func(in *ports.SubmitReportInput) { in.Title = "Robo" }, "title"},
		{"unknown category", func(in *ports.SubmitReportInput) { in.CrimeType = "ARSON" }, "crimetype"},
		{"short description", func(in *ports.SubmitReportInput) { in.Description = "breve" }, "description"},
		{"short address", func(in *ports.SubmitReportInput) { in.Address = "X 1" }, "address"},
		{"short phone", func(in *ports.SubmitReportInput) { in.Phone = "5551234" }, "phone"},
		{"latitude out of range", func(in *ports.SubmitReportInput) { in.Location.Lat = 91 }, "lat"},
		{"longitude out of range", func(in *ports.SubmitReportInput) { in.Location.Lng = -181 }, "lng"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validReport()
			tc.mutate(&in)
			err := Struct(in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, fe := range ve.Fields {
				if fe.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected failure on %q, got %v", tc.field, ve.Fields)
			}
		})
	}
}

func TestStructRegisterConstraints(t *testing.T) {
	in := ports.RegisterInput{
		Name:            "Ana",
		Email:           "ana@x.cl",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if err := Struct(in); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}

	in.ConfirmPassword = "secret2"
	err := Struct(in)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !strings.Contains(ve.Error(), "must match password") {
		t.Fatalf("unexpected message: %s", ve.Error())
	}

	short := ports.RegisterInput{Name: "An", Email: "not-an-email", Password: "12345", ConfirmPassword: "12345"}
	err = Struct(short)
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field failures, got %v", ve.Fields)
	}
}

func TestStructLoginConstraints(t *testing.T) {
	if err := Struct(ports.LoginInput{Email: "ana@x.cl", Password: "secret1"}); err != nil {
		t.Fatalf("valid login rejected: %v", err)
	}
	var ve *ValidationError
	if err := Struct(ports.LoginInput{Email: "ana", Password: "12345"}); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewFieldError(t *testing.T) {
	err := NewFieldError("role", "role must be USER or MODERATOR")
	if err.Error() != "validation failed: role must be USER or MODERATOR" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
