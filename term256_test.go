package ansinator

import "testing"

func TestTermColorIndexExactEntries(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"maroon", 128, 0, 0, 1},
		{"silver", 192, 192, 192, 7},
		{"red", 255, 0, 0, 9},
		{"cube corner", 95, 95, 95, 59},
		{"cube mixed", 95, 135, 175, 67},
		{"darkest gray step", 8, 8, 8, 232},
		{"lightest gray step", 238, 238, 238, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TermColorIndex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("TermColorIndex(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestTermColorIndexTiesKeepLowest(t *testing.T) {
	// Black appears at index 0 and again at cube index 16; white at 15
	// and cube index 231.
	if got := TermColorIndex(0, 0, 0); got != 0 {
		t.Errorf("TermColorIndex(black) = %d, want 0", got)
	}
	if got := TermColorIndex(255, 255, 255); got != 15 {
		t.Errorf("TermColorIndex(white) = %d, want 15", got)
	}
}

func TestTermColorIndexNearby(t *testing.T) {
	// A near-black pixel sits closer to black than to the darkest gray
	// ramp entry.
	if got := TermColorIndex(2, 2, 2); got != 0 {
		t.Errorf("TermColorIndex(2,2,2) = %d, want 0", got)
	}
	// 250,250,250 is 5 away from white per channel but 12 away from the
	// top gray step.
	if got := TermColorIndex(250, 250, 250); got != 15 {
		t.Errorf("TermColorIndex(250,250,250) = %d, want 15", got)
	}
}
