package pqcal

import (
	"fmt"
	"sort"
)

// Curve is a piecewise-linear interpolant over an ascending knot domain.
// Lookups outside the domain clamp flat to the boundary values.
type Curve struct {
	xs []float64
	ys []float64
}

// newCurve wraps parallel knot slices. xs must be sorted ascending and
// non-empty; the caller retains no aliasing obligations, slices are owned
// by the curve afterwards.
func newCurve(xs, ys []float64) *Curve {
	return &Curve{xs: xs, ys: ys}
}

// At evaluates the interpolant at x.
func (c *Curve) At(x float64) float64 {
	n := len(c.xs)
	if x <= c.xs[0] {
		return c.ys[0]
	}
	if x >= c.xs[n-1] {
		return c.ys[n-1]
	}
	i := sort.SearchFloat64s(c.xs, x)
	x0, x1 := c.xs[i-1], c.xs[i]
	y0, y1 := c.ys[i-1], c.ys[i]
	if x1 == x0 {
		// Duplicate knot, nothing to interpolate across.
		return y0
	}
	t := (x - x0) / (x1 - x0)
	return y0 + t*(y1-y0)
}

// ResponseCurves holds the two interpolants derived from a measurement run.
type ResponseCurves struct {
	// Forward maps a normalized code value to the peak-clamped PQ target in nits.
	Forward *Curve
	// Inverse maps measured nits back to the normalized code value that produced them.
	Inverse *Curve
}

// knot is one measurement after normalization and target association.
type knot struct {
	percent  float64
	code     float64
	measured float64
	target   float64
}

// buildKnots normalizes samples, associates each with its peak-clamped PQ
// target and returns them sorted by code value ascending (stable, so ties
// keep their input order).
func buildKnots(samples []Sample, peakNits float64) ([]knot, error) {
	if peakNits <= 0 {
		return nil, fmt.Errorf("peak luminance must be positive, got %g", peakNits)
	}
	if len(samples) < 2 {
		return nil, ErrInsufficientData
	}
	knots := make([]knot, len(samples))
	for i, s := range samples {
		target, err := PQTargetNits(s.CodePercent)
		if err != nil {
			return nil, err
		}
		knots[i] = knot{
			percent:  s.CodePercent,
			code:     s.CodePercent / 100.0,
			measured: s.MeasuredNits,
			target:   clamp(target, 0, peakNits),
		}
	}
	sort.SliceStable(knots, func(i, j int) bool { return knots[i].code < knots[j].code })
	return knots, nil
}

// BuildResponseCurves turns sparse, possibly unsorted measurements into the
// forward target curve and the inverse measured-response curve.
//
// Measurements sharing the same measured luminance collapse to the first
// occurrence in code order before inversion; if fewer than 2 distinct
// measured values remain the response is flat and cannot be inverted,
// reported as ErrDegenerateCurve.
func BuildResponseCurves(samples []Sample, peakNits float64) (*ResponseCurves, error) {
	knots, err := buildKnots(samples, peakNits)
	if err != nil {
		return nil, err
	}

	codes := make([]float64, len(knots))
	targets := make([]float64, len(knots))
	for i, k := range knots {
		codes[i] = k.code
		targets[i] = k.target
	}
	forward := newCurve(codes, targets)

	seen := make(map[float64]struct{}, len(knots))
	type invKnot struct{ nits, code float64 }
	inv := make([]invKnot, 0, len(knots))
	for _, k := range knots {
		if _, ok := seen[k.measured]; ok {
			continue
		}
		seen[k.measured] = struct{}{}
		inv = append(inv, invKnot{nits: k.measured, code: k.code})
	}
	if len(inv) < 2 {
		return nil, ErrDegenerateCurve
	}
	// The interpolant domain must ascend even when the measured response
	// itself is not monotone.
	sort.SliceStable(inv, func(i, j int) bool { return inv[i].nits < inv[j].nits })

	nits := make([]float64, len(inv))
	invCodes := make([]float64, len(inv))
	for i, k := range inv {
		nits[i] = k.nits
		invCodes[i] = k.code
	}
	inverse := newCurve(nits, invCodes)

	return &ResponseCurves{Forward: forward, Inverse: inverse}, nil
}
