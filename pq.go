package pqcal

import (
	"fmt"
	"math"
)

// PQTargetNits returns the ideal luminance in nits for an input level given
// as a percentage of full scale, under the SMPTE ST 2084 (PQ) EOTF with its
// 10,000 nit reference peak.
//
// Levels below the foot of the curve resolve to 0 nits; that is the
// mathematical boundary of the EOTF, not an error. Values outside [0, 100]
// return ErrCodeValueRange.
func PQTargetNits(codePercent float64) (float64, error) {
	if codePercent < 0 || codePercent > 100 {
		return 0, fmt.Errorf("%w: %g%%", ErrCodeValueRange, codePercent)
	}
	n := codePercent / 100.0
	p := math.Pow(n, 1.0/pqM2)
	den := pqC2 - pqC3*p
	if den <= 0 {
		return 0, nil
	}
	base := (p - pqC1) / den
	if base < 0 {
		return 0, nil
	}
	return math.Pow(base, 1.0/pqM1) * pqMaxNits, nil
}
