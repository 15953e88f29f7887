package pqcal

// SMPTE ST 2084 EOTF coefficients.
const (
	pqM1 = 2610.0 / 16384.0
	pqM2 = 2523.0 / 4096.0 * 128.0
	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 4096.0 * 32.0
	pqC3 = 2392.0 / 4096.0 * 32.0

	pqMaxNits = 10000.0
)

const (
	defaultDescriptor = "PQ Calibration LUT"
	defaultOriginator = "pqcal"
)

const (
	defaultPreviewSize = 512
	minPreviewSize     = 16
)
