package shared_test

import (
	"testing"
	"venuequote/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "single part",
			parts:    []string{"quote"},
			expected: "quote",
		},
		{
			name:     "multiple parts",
			parts:    []string{"quote", "slot", "default"},
			expected: "quote:slot:default",
		},
		{
			name:     "empty",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "whole amount",
			amount:   100,
			expected: "100.00",
		},
		{
			name:     "rounds half up",
			amount:   10.005,
			expected: "10.01",
		},
		{
			name:     "truncates long fraction",
			amount:   33.3333,
			expected: "33.33",
		},
		{
			name:     "zero",
			amount:   0,
			expected: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.FormatMoney(tt.amount); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	if got := shared.FormatHours(2.0); got != "2.0" {
		t.Errorf("expected %q, got %q", "2.0", got)
	}

	if got := shared.FormatHours(3.25); got != "3.2" {
		t.Errorf("expected %q, got %q", "3.2", got)
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{
			name:     "valid quantity",
			raw:      "3",
			expected: 3,
		},
		{
			name:     "blank coerced to zero",
			raw:      "",
			expected: 0,
		},
		{
			name:     "whitespace coerced to zero",
			raw:      "   ",
			expected: 0,
		},
		{
			name:     "non-numeric coerced to zero",
			raw:      "abc",
			expected: 0,
		},
		{
			name:     "negative clamped to zero",
			raw:      "-2",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.ParseQuantity(tt.raw); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestClampQuantity(t *testing.T) {
	if got := shared.ClampQuantity(-5); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	if got := shared.ClampQuantity(4); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}
