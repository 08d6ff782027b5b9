package sim

import (
	"math"
	"testing"
)

func TestClockAdvanceWraps(t *testing.T) {
	tests := []struct {
		start, delta, want float32
	}{
		{0, 1, 1},
		{23, 2, 1},
		{23.5, 0.5, 0},
		{1, -2, 23},
		{0, -0.5, 23.5},
		{12, 24, 12},
		{12, -48, 12},
		{6, 100, 10},
	}

	for _, tt := range tests {
		c := Clock{Hour: tt.start}
		c.Advance(tt.delta)
		if math.Abs(float64(c.Hour-tt.want)) > eps {
			t.Errorf("Advance(%f) from %f = %f, want %f", tt.delta, tt.start, c.Hour, tt.want)
		}
		if c.Hour < 0 || c.Hour >= 24 {
			t.Errorf("clock left [0,24): %f", c.Hour)
		}
	}
}

func TestClockString(t *testing.T) {
	tests := []struct {
		hour float32
		want string
	}{
		{0, "00:00"},
		{6.5, "06:30"},
		{12, "12:00"},
		{23.75, "23:45"},
		{9.25, "09:15"},
	}

	for _, tt := range tests {
		c := Clock{Hour: tt.hour}
		if got := c.String(); got != tt.want {
			t.Errorf("Clock{%f}.String() = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
