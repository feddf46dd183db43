package passgen

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		password   string
		wantPoints int
		want       Strength
	}{
		{"", 0, Weak},
		{"a", 1, Weak},
		{"abcdefgh", 2, Weak},
		{"ABCDEFGHIJKL", 3, Medium},
		{"Abcdefgh1", 4, Medium},
		{"Abcdefghijk1", 5, Strong},
		{"Abcdefghijk1!", 6, Strong},
		{"Ab1!", 4, Medium},
		{"        ", 2, Weak},
		{"Please select at least one option", 5, Strong},
		{"😀😀😀😀", 2, Weak},
		{"ééééééé", 1, Weak},
		{"éééééééé", 2, Weak},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			if got := Points(tt.password); got != tt.wantPoints {
				t.Errorf("Points(%q) = %d, want %d", tt.password, got, tt.wantPoints)
			}
			if got := Score(tt.password); got != tt.want {
				t.Errorf("Score(%q) = %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}

func TestScoreIsStable(t *testing.T) {
	const password = "Abcdefgh1"
	if Score(password) != Score(password) {
		t.Error("Score() returned different labels for the same input")
	}
}

func TestPointsNeverExceedsMax(t *testing.T) {
	g := NewGenerator(NewSeededSampler(3))
	for i := 0; i < 100; i++ {
		res, err := g.Generate(Config{Length: MaxLength, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true})
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if p := Points(res.Password); p > MaxPoints {
			t.Fatalf("Points(%q) = %d, exceeds %d", res.Password, p, MaxPoints)
		}
	}
}
