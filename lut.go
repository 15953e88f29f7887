package pqcal

import (
	"errors"
	"fmt"
)

// BuildLUT evaluates the correction over an evenly spaced grid of size
// points covering [0, 1] inclusive. Each grid point is mapped through the
// forward target curve to the luminance the display should emit there, then
// through the inverse measured curve to the code value that actually emits
// it. Outputs are clamped to [0, 1] to guard against interpolation
// overshoot.
func BuildLUT(size int, peakNits float64, curves *ResponseCurves) (LUT, error) {
	if size < 2 {
		return nil, fmt.Errorf("lut size must be at least 2, got %d", size)
	}
	if peakNits <= 0 {
		return nil, fmt.Errorf("peak luminance must be positive, got %g", peakNits)
	}
	if curves == nil || curves.Forward == nil || curves.Inverse == nil {
		return nil, errors.New("response curves missing")
	}

	lut := make(LUT, size)
	for i := 0; i < size; i++ {
		in := float64(i) / float64(size-1)
		desired := curves.Forward.At(in)
		raw := curves.Inverse.At(desired)
		lut[i] = LUTEntry{Input: in, Output: clamp(raw, 0, 1)}
	}
	return lut, nil
}
