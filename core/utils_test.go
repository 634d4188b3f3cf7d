package core

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "trims", s: "  Bob  ", want: "Bob"},
		{name: "lowers", s: "  BoB ", lower: true, want: "bob"},
		{name: "empty", s: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.s, tt.lower); got != tt.want {
				t.Errorf("CleanString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(nil, FieldError{Field: "id", Error: "this field is required"})
	if err.Error() != "this field is required" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError() = false, want true")
	}
}
