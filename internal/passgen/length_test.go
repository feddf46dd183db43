package passgen

import "testing"

func TestClampLength(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, MinLength},
		{0, MinLength},
		{3, MinLength},
		{4, 4},
		{12, 12},
		{50, 50},
		{51, MaxLength},
		{1 << 30, MaxLength},
	}

	for _, tt := range tests {
		if got := ClampLength(tt.in); got != tt.want {
			t.Errorf("ClampLength(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	for n := MinLength; n <= MaxLength; n++ {
		if got := ClampLength(n); got != n {
			t.Errorf("ClampLength(%d) = %d, want identity", n, got)
		}
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"16", 16},
		{" 20 ", 20},
		{"2", MinLength},
		{"99", MaxLength},
		{"-1", MinLength},
		{"", DefaultLength},
		{"abc", DefaultLength},
		{"30.5", 30},
		{"25px", 25},
		{"1e3", MinLength},
		{" 7", 7},
		{"+9", 9},
		{"-", DefaultLength},
		{"px25", DefaultLength},
		{"0", MinLength},
		{"99999999999999999999", MaxLength},
		{"-99999999999999999999", MinLength},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseLength(tt.raw); got != tt.want {
				t.Errorf("ParseLength(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
