package validator

import "testing"

type patientForm struct {
	Name      string  `json:"name" validate:"required,max=5"`
	Gender    string  `json:"gender" validate:"required,oneof=Male Female"`
	BirthDate string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	form := patientForm{Name: "Li", Gender: "Female", BirthDate: "1990-06-15"}
	if err := v.Validate(&form); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()
	bad := "not-an-email"
	form := patientForm{Name: "Too long name", Gender: "Other", BirthDate: "15/06/1990", Email: &bad}

	err := v.Validate(&form)
	if err == nil {
		t.Fatal("Validate() expected error")
	}

	got := v.FormatValidationErrors(err)
	want := map[string]string{
		"name":       "name must be at most 5 characters",
		"gender":     "gender must be one of: Male, Female",
		"birth_date": "birth_date must be a date in YYYY-MM-DD format",
		"email":      "email must be a valid email address",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d errors %v, want %d", len(got), got, len(want))
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestFormatValidationErrors_Required(t *testing.T) {
	v := NewValidator()
	got := v.FormatValidationErrors(v.Validate(&patientForm{}))
	for _, field := range []string{"name", "gender", "birth_date"} {
		if got[field] != field+" is required" {
			t.Errorf("%s: got %q", field, got[field])
		}
	}
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	v := NewValidator()
	if got := v.FormatValidationErrors(nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
