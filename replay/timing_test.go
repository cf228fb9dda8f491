package replay

import (
	"testing"
	"time"
)

func TestEstimateDuration(t *testing.T) {
	fallbackScaled := float64(2*time.Second) / 1.5
	cases := []struct {
		name  string
		words int
		known time.Duration
		speed float64
		want  time.Duration
	}{
		{"known duration at 1x", 10, 4 * time.Second, 1.0, 4 * time.Second},
		{"known duration at 2x", 10, 4 * time.Second, 2.0, 2 * time.Second},
		{"fallback 250ms per word", 8, 0, 1.0, 2 * time.Second},
		{"fallback scaled by speed", 8, 0, 1.5, time.Duration(fallbackScaled)},
		{"zero words is already complete", 0, 4 * time.Second, 1.0, 0},
		{"zero speed treated as 1x", 4, 0, 0, time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateDuration(tc.words, tc.known, tc.speed); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
