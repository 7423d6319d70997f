package workers

import (
	"runtime"
	"testing"
)

func TestCount(t *testing.T) {
	available := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		override   int
		want       int
	}{
		{"CPU bound no limit", 1.0, 0, 0, available},
		{"Limit applies", 1.0, 1, 0, 1},
		{"Override wins", 1.0, 0, 7, 7},
		{"Override capped by limit", 1.0, 3, 7, 3},
		{"Tiny multiplier floors at one", 0.001, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.multiplier, tt.limit, tt.override); got != tt.want {
				t.Errorf("Count(%v, %d, %d) = %d, want %d",
					tt.multiplier, tt.limit, tt.override, got, tt.want)
			}
		})
	}
}

func TestForMixed(t *testing.T) {
	available := runtime.GOMAXPROCS(0)
	want := int(float64(available) * 1.5)
	if want < 1 {
		want = 1
	}
	if got := ForMixed(0, 0); got != want {
		t.Errorf("ForMixed(0, 0) = %d, want %d", got, want)
	}
}

func TestForCPU(t *testing.T) {
	if got := ForCPU(2, 0); got > 2 {
		t.Errorf("ForCPU(2, 0) = %d, want <= 2", got)
	}
}
