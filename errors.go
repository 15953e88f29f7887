package pqcal

import "errors"

var (
	// ErrCodeValueRange reports a code value outside the [0, 100] percent range.
	ErrCodeValueRange = errors.New("code value out of range")
	// ErrInsufficientData reports that too few measurements were supplied to
	// build a response curve.
	ErrInsufficientData = errors.New("at least 2 measurements required")
	// ErrDegenerateCurve reports that the measured luminance values collapse
	// to fewer than 2 distinct points, so the response cannot be inverted.
	ErrDegenerateCurve = errors.New("not enough distinct measured values to invert response")
	// ErrMissingField reports a required configuration field that is absent.
	ErrMissingField = errors.New("missing required field")
)
