// Package pqcal computes 1D display calibration curves for the SMPTE ST 2084
// (PQ) transfer function.
//
// Given sparse luminance measurements taken off a display, it builds an
// empirical response-curve model, composes it with the ideal PQ targets
// clamped to the display's actual peak, and emits the corrected curve as an
// ArgyllCMS .cal file suitable for loading into a video card LUT.
package pqcal
