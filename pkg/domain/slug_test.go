package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		{"valid simple", "my-family", nil},
		{"valid digits", "family-2024", nil},
		{"valid minimum length", "abc", nil},
		{"valid maximum length", strings.Repeat("a", 50), nil},
		{"empty", "", ErrSlugRequired},
		{"uppercase", "My-Family", ErrSlugInvalidChars},
		{"spaces", "my family", ErrSlugInvalidChars},
		{"underscore", "my_family", ErrSlugInvalidChars},
		{"unicode", "famille-é", ErrSlugInvalidChars},
		{"too short", "ab", ErrSlugLength},
		{"too long", strings.Repeat("a", 51), ErrSlugLength},
		{"reserved api", "api", ErrSlugReserved},
		{"reserved setup", "setup", ErrSlugReserved},
		{"reserved hyphenated", "family-select", ErrSlugReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, err, tt.wantErr)
			}
		})
	}
}

func TestIsReservedSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"api", true},
		{"API", true},
		{"Setup", true},
		{"coming-soon", true},
		{"my-family", false},
		{"apis", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsReservedSlug(tt.slug); got != tt.want {
			t.Errorf("IsReservedSlug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}
