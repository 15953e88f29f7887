package pqcal

import "fmt"

// Calibrate runs the full correction pipeline: build the response curves
// from the measurements, compose them over an evenly spaced grid of lutSize
// points and collect the per-measurement diagnostic rows.
//
// The computation is pure and deterministic; permuting samples yields an
// identical result.
func Calibrate(samples []Sample, peakNits float64, lutSize int) (*Result, error) {
	if peakNits <= 0 {
		return nil, fmt.Errorf("peak luminance must be positive, got %g", peakNits)
	}

	curves, err := BuildResponseCurves(samples, peakNits)
	if err != nil {
		return nil, fmt.Errorf("build response curves: %w", err)
	}

	lut, err := BuildLUT(lutSize, peakNits, curves)
	if err != nil {
		return nil, fmt.Errorf("build lut: %w", err)
	}

	knots, err := buildKnots(samples, peakNits)
	if err != nil {
		return nil, err
	}
	rows := make([]ReportRow, len(knots))
	for i, k := range knots {
		rows[i] = ReportRow{
			InputPercent: k.percent,
			MeasuredNits: k.measured,
			TargetNits:   k.target,
		}
	}

	return &Result{LUT: lut, Rows: rows}, nil
}
