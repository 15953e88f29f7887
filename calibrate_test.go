package pqcal

import (
	"errors"
	"testing"
	"time"
)

var calibrateSamples = []Sample{
	{CodePercent: 0, MeasuredNits: 0.05},
	{CodePercent: 25, MeasuredNits: 18},
	{CodePercent: 50, MeasuredNits: 110},
	{CodePercent: 75, MeasuredNits: 420},
	{CodePercent: 100, MeasuredNits: 710},
}

func TestCalibrate(t *testing.T) {
	res, err := Calibrate(calibrateSamples, 700, 256)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	if len(res.LUT) != 256 {
		t.Fatalf("len(LUT) = %d, want 256", len(res.LUT))
	}
	if res.LUT[0].Input != 0 || res.LUT[255].Input != 1 {
		t.Fatalf("grid endpoints = %g, %g, want 0 and 1", res.LUT[0].Input, res.LUT[255].Input)
	}
	if len(res.Rows) != len(calibrateSamples) {
		t.Fatalf("len(Rows) = %d, want %d", len(res.Rows), len(calibrateSamples))
	}
	for i := 1; i < len(res.Rows); i++ {
		if res.Rows[i].InputPercent < res.Rows[i-1].InputPercent {
			t.Fatalf("rows not sorted by input percent: %v", res.Rows)
		}
	}
	// Full-scale target clamps to the display peak.
	if got := res.Rows[len(res.Rows)-1].TargetNits; got != 700 {
		t.Fatalf("full-scale target = %g, want 700", got)
	}
}

func TestCalibrateErrors(t *testing.T) {
	if _, err := Calibrate(calibrateSamples[:1], 700, 256); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single sample err = %v, want ErrInsufficientData", err)
	}
	if _, err := Calibrate(calibrateSamples, 0, 256); err == nil {
		t.Error("zero peak: want error")
	}
	if _, err := Calibrate(calibrateSamples, 700, 1); err == nil {
		t.Error("lut size 1: want error")
	}
	flat := []Sample{
		{CodePercent: 10, MeasuredNits: 40},
		{CodePercent: 90, MeasuredNits: 40},
	}
	if _, err := Calibrate(flat, 700, 256); !errors.Is(err, ErrDegenerateCurve) {
		t.Errorf("flat response err = %v, want ErrDegenerateCurve", err)
	}
}

func TestCalibrateIdempotent(t *testing.T) {
	created := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	render := func() string {
		t.Helper()
		res, err := Calibrate(calibrateSamples, 700, 64)
		if err != nil {
			t.Fatalf("Calibrate: %v", err)
		}
		return FormatCAL(res.LUT, func(o *CALOptions) { o.Created = created })
	}
	a, b := render(), render()
	if a != b {
		t.Fatal("two identical calibration runs produced different output")
	}
}

func TestCalibrateOrderInvariant(t *testing.T) {
	shuffled := []Sample{
		calibrateSamples[4], calibrateSamples[1], calibrateSamples[3],
		calibrateSamples[0], calibrateSamples[2],
	}
	a, err := Calibrate(calibrateSamples, 700, 64)
	if err != nil {
		t.Fatalf("Calibrate(sorted): %v", err)
	}
	b, err := Calibrate(shuffled, 700, 64)
	if err != nil {
		t.Fatalf("Calibrate(shuffled): %v", err)
	}
	for i := range a.LUT {
		if a.LUT[i] != b.LUT[i] {
			t.Fatalf("lut[%d] differs: %v vs %v", i, a.LUT[i], b.LUT[i])
		}
	}
	for i := range a.Rows {
		if a.Rows[i] != b.Rows[i] {
			t.Fatalf("row %d differs: %v vs %v", i, a.Rows[i], b.Rows[i])
		}
	}
}
