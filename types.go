package pqcal

// Sample is a single luminance measurement taken off the display.
type Sample struct {
	// CodePercent is the driven input level as a percentage of full scale, in [0, 100].
	CodePercent float64
	// MeasuredNits is the luminance the display emitted at that level, >= 0.
	MeasuredNits float64
}

// LUTEntry is one grid point of the corrected calibration curve.
// Input and Output are normalized code values in [0, 1].
type LUTEntry struct {
	Input  float64
	Output float64
}

// LUT is the corrected calibration curve in ascending grid order.
// The correction is neutral: the same output drives R, G and B.
type LUT []LUTEntry

// ReportRow pairs a measurement with its peak-clamped PQ target, for
// diagnostic output. Rows are ordered by ascending input level.
type ReportRow struct {
	InputPercent float64
	MeasuredNits float64
	TargetNits   float64
}

// Result is the outcome of a calibration run.
type Result struct {
	LUT  LUT
	Rows []ReportRow
}
