package misc

import "testing"

func TestMapBoundaries(t *testing.T) {
	tests := []struct {
		name                           string
		value                          float64
		srcMin, srcMax, dstMin, dstMax float64
		want                           float64
	}{
		{"channel low", 0.0, 0.0, 1.0, 0.0, 255.0, 0.0},
		{"channel high", 1.0, 0.0, 1.0, 0.0, 255.0, 255.0},
		{"channel middle", 0.5, 0.0, 1.0, 0.0, 255.0, 127.5},
		{"negative window low", 0, 0, 2000, -0.1, 0.4, -0.1},
		{"negative window high", 2000, 0, 2000, -0.1, 0.4, 0.4},
		{"inverted destination", 2, 0, 4, 10, -10, 0},
		{"extrapolated", 2, 0, 1, 0, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Map(tt.value, tt.srcMin, tt.srcMax, tt.dstMin, tt.dstMax)
			if got != tt.want {
				t.Errorf("Map(%g, %g, %g, %g, %g) = %g, want %g", tt.value, tt.srcMin, tt.srcMax, tt.dstMin, tt.dstMax, got, tt.want)
			}
		})
	}
}

func TestMapMidpointLaw(t *testing.T) {
	ranges := [][4]float64{
		{0, 1, 0, 255},
		{-3, 5, 10, 20},
		{0, 999, 0, 4},
		{100, 0, -1, 1},
	}
	for _, r := range ranges {
		a, b, c, d := r[0], r[1], r[2], r[3]
		if got := Map(a, a, b, c, d); got != c {
			t.Errorf("Map(min) over %v = %g, want %g", r, got, c)
		}
		if got := Map(b, a, b, c, d); got != d {
			t.Errorf("Map(max) over %v = %g, want %g", r, got, d)
		}
		if got := Map((a+b)/2, a, b, c, d); got != (c+d)/2 {
			t.Errorf("Map(mid) over %v = %g, want %g", r, got, (c+d)/2)
		}
	}
}

func TestMapIndexTruncates(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{0.5, 127},
		{1.0, 255},
		{0.999, 254},
		{0.0, 0},
	}
	for _, tt := range tests {
		if got := MapIndex(tt.value, 0, 1, 0, 255); got != tt.want {
			t.Errorf("MapIndex(%g) = %d, want %d", tt.value, got, tt.want)
		}
	}

	// Bucketing floors rather than rounds: 998 of [0, 999] over [0, 4] is 3.996
	if got := MapIndex(998, 0, 999, 0, 4); got != 3 {
		t.Errorf("MapIndex(998, 0, 999, 0, 4) = %d, want 3", got)
	}
}
