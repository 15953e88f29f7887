package pqcal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// calCreatedLayout matches the ctime-style stamp Argyll tools write.
const calCreatedLayout = "Mon Jan 02 15:04:05 2006"

// CALOptions controls .cal serialization.
type CALOptions struct {
	// Descriptor is the DESCRIPTOR header, typically the display title.
	Descriptor string
	// Originator is the ORIGINATOR header.
	Originator string
	// Created is the CREATED stamp. Zero means time.Now in UTC; set it
	// explicitly for reproducible output.
	Created time.Time
}

// FormatCAL renders the corrected curve as an ArgyllCMS .cal file. The
// correction is neutral, so the single output value fills all three of
// RGB_R, RGB_G and RGB_B.
func FormatCAL(lut LUT, opts ...func(o *CALOptions)) string {
	o := CALOptions{
		Descriptor: defaultDescriptor,
		Originator: defaultOriginator,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Created.IsZero() {
		o.Created = time.Now()
	}

	var b strings.Builder
	b.WriteString("CAL\n")
	fmt.Fprintf(&b, "DESCRIPTOR %q\n", o.Descriptor)
	fmt.Fprintf(&b, "ORIGINATOR %q\n", o.Originator)
	fmt.Fprintf(&b, "CREATED %q\n", o.Created.UTC().Format(calCreatedLayout))
	b.WriteString("DEVICE_CLASS \"DISPLAY\"\n")
	b.WriteString("COLOR_REP \"RGB\"\n")
	b.WriteString("TABLE_RGB_FROM_DISPLAY_PRIMARIES\n")
	b.WriteString("NUMBER_OF_FIELDS 4\n")
	b.WriteString("BEGIN_DATA_FORMAT\n")
	b.WriteString("RGB_I RGB_R RGB_G RGB_B\n")
	b.WriteString("END_DATA_FORMAT\n\n")
	fmt.Fprintf(&b, "NUMBER_OF_SETS %d\n", len(lut))
	b.WriteString("BEGIN_DATA\n")
	for _, e := range lut {
		fmt.Fprintf(&b, "%.14f\t%.14f\t%.14f\t%.14f\n", e.Input, e.Output, e.Output, e.Output)
	}
	b.WriteString("END_DATA\n")
	return b.String()
}

// WriteCALFile serializes the curve and writes it to path.
func WriteCALFile(path string, lut LUT, opts ...func(o *CALOptions)) error {
	return os.WriteFile(filepath.Clean(path), []byte(FormatCAL(lut, opts...)), 0o644)
}
