// ABOUTME: Unit tests for lenient numeric parsing
// ABOUTME: Verifies malformed input coerces to zero

package bmi

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"170", 170},
		{" 70.5 ", 70.5},
		{"170cm", 170},
		{".5", 0.5},
		{"5.", 5},
		{"-3", -3},
		{"1e2", 100},
		{"1e", 1},
		{"", 0},
		{"abc", 0},
		{".", 0},
		{"-", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e999", 0},
	}
	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRawInput(t *testing.T) {
	raw := ParseRawInput("170", "5", "", "oops")
	if raw.HeightCm != 170 {
		t.Errorf("expected height 170, got %v", raw.HeightCm)
	}
	if raw.HeightFt != 5 {
		t.Errorf("expected feet 5, got %v", raw.HeightFt)
	}
	if raw.HeightIn != 0 {
		t.Errorf("expected inches 0, got %v", raw.HeightIn)
	}
	if raw.Weight != 0 {
		t.Errorf("expected weight 0 for malformed text, got %v", raw.Weight)
	}
}
