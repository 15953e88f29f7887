package pqcal

import (
	"errors"
	"math"
	"testing"
)

func TestPQTargetNitsEndpoints(t *testing.T) {
	got, err := PQTargetNits(0)
	if err != nil {
		t.Fatalf("PQTargetNits(0): %v", err)
	}
	if got != 0 {
		t.Fatalf("PQTargetNits(0) = %g, want 0", got)
	}

	got, err = PQTargetNits(100)
	if err != nil {
		t.Fatalf("PQTargetNits(100): %v", err)
	}
	if math.Abs(got-10000) > 1e-6 {
		t.Fatalf("PQTargetNits(100) = %g, want 10000", got)
	}
}

func TestPQTargetNitsReferencePoints(t *testing.T) {
	// Half scale sits a bit above 90 nits, 75% a bit below 1000 nits on
	// the reference curve.
	cases := []struct {
		percent  float64
		min, max float64
	}{
		{percent: 50, min: 88, max: 97},
		{percent: 75, min: 950, max: 1015},
	}
	for _, tc := range cases {
		got, err := PQTargetNits(tc.percent)
		if err != nil {
			t.Fatalf("PQTargetNits(%g): %v", tc.percent, err)
		}
		if got < tc.min || got > tc.max {
			t.Errorf("PQTargetNits(%g) = %g, want within [%g, %g]", tc.percent, got, tc.min, tc.max)
		}
	}
}

func TestPQTargetNitsMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 10.0
		got, err := PQTargetNits(p)
		if err != nil {
			t.Fatalf("PQTargetNits(%g): %v", p, err)
		}
		if got < prev {
			t.Fatalf("PQTargetNits(%g) = %g, decreased below %g", p, got, prev)
		}
		prev = got
	}
}

func TestPQTargetNitsFootOfCurve(t *testing.T) {
	// Levels below the foot of the EOTF resolve to 0 nits without error.
	got, err := PQTargetNits(1e-5)
	if err != nil {
		t.Fatalf("PQTargetNits(1e-5): %v", err)
	}
	if got != 0 {
		t.Fatalf("PQTargetNits(1e-5) = %g, want 0", got)
	}
}

func TestPQTargetNitsOutOfRange(t *testing.T) {
	for _, p := range []float64{-0.1, 100.5, 150} {
		if _, err := PQTargetNits(p); !errors.Is(err, ErrCodeValueRange) {
			t.Errorf("PQTargetNits(%g) err = %v, want ErrCodeValueRange", p, err)
		}
	}
}
