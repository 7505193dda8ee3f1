package utils

import "testing"

func TestCacheKeyFrom(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"lowercases", []string{"Ubud Monkey Forest"}, "ubud_monkey_forest"},
		{"joins parts", []string{"map", "Trip-1", "Ubud"}, "map_trip_1_ubud"},
		{"strips punctuation", []string{"Bali, Indonesia!"}, "bali__indonesia_"},
		{"keeps digits and underscores", []string{"day_2", "9pm"}, "day_2_9pm"},
		{"non-ascii collapses", []string{"Café Hôtel"}, "caf__h_tel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CacheKeyFrom(tt.parts...); got != tt.want {
				t.Fatalf("CacheKeyFrom(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestCacheKeyFromIsDeterministic(t *testing.T) {
	a := CacheKeyFrom("Ubud Monkey Forest", "Bali, Indonesia")
	b := CacheKeyFrom("Ubud Monkey Forest", "Bali, Indonesia")
	if a != b {
		t.Fatalf("same parts produced different keys: %q vs %q", a, b)
	}
}
