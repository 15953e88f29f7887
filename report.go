package pqcal

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport renders the measured-vs-target table to w. The library never
// writes to stdout on its own; the caller owns the destination.
func WriteReport(w io.Writer, rows []ReportRow) error {
	sep := strings.Repeat("-", 10) + "-+-" + strings.Repeat("-", 20) + "-+-" + strings.Repeat("-", 28)

	if _, err := fmt.Fprintf(w, "%-10s | %-20s | %-28s\n", "Input %", "Measured Y (nits)", "Calculated Target Y (nits)"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-10.1f | %-20.3f | %-28.3f\n", r.InputPercent, r.MeasuredNits, r.TargetNits); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, sep); err != nil {
		return err
	}
	return nil
}
