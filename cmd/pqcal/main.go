package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/dispcal/pqcal"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "generate":
		if err := runGenerate(os.Args[2:]); err != nil {
			fail(err)
		}
	case "targets":
		if err := runTargets(os.Args[2:]); err != nil {
			fail(err)
		}
	case "preview":
		if err := runPreview(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: pqcal <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  generate -config cfg.json [-out lut.cal] [-quiet]")
	fmt.Fprintln(os.Stderr, "  targets  -config cfg.json")
	fmt.Fprintln(os.Stderr, "  preview  -config cfg.json -out plot.png [-size 512] [-thumb thumb.png] [-tw 128]")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "calibration config JSON")
	outPath := fs.String("out", "", "output .cal path (default: filename_cal from config)")
	quiet := fs.Bool("quiet", false, "suppress the measured-vs-target table")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath == "" {
		return errors.New("missing required arguments")
	}

	cfg, err := pqcal.LoadConfig(*cfgPath)
	if err != nil {
		return err
	}
	res, err := pqcal.Calibrate(cfg.Samples(), cfg.PeakLuminance, cfg.LUTSize)
	if err != nil {
		return err
	}

	if !*quiet {
		fmt.Printf("Target peak luminance: %.1f nits\n", cfg.PeakLuminance)
		fmt.Printf("LUT size: %d points\n\n", cfg.LUTSize)
		if err := pqcal.WriteReport(os.Stdout, res.Rows); err != nil {
			return err
		}
	}

	out := *outPath
	if out == "" {
		out = cfg.FilenameCAL
	}
	if err := pqcal.WriteCALFile(out, res.LUT, func(o *pqcal.CALOptions) {
		o.Descriptor = cfg.Descriptor()
	}); err != nil {
		return err
	}
	fmt.Printf("Saved LUT to %s\n", out)
	return nil
}

func runTargets(args []string) error {
	fs := flag.NewFlagSet("targets", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "calibration config JSON")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath == "" {
		return errors.New("missing required arguments")
	}

	cfg, err := pqcal.LoadConfig(*cfgPath)
	if err != nil {
		return err
	}
	res, err := pqcal.Calibrate(cfg.Samples(), cfg.PeakLuminance, cfg.LUTSize)
	if err != nil {
		return err
	}
	return pqcal.WriteReport(os.Stdout, res.Rows)
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "calibration config JSON")
	outPath := fs.String("out", "", "output PNG path")
	size := fs.Int("size", 512, "plot size in pixels")
	thumbPath := fs.String("thumb", "", "optional thumbnail PNG path")
	thumbWidth := fs.Uint("tw", 128, "thumbnail width in pixels")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *cfgPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}

	cfg, err := pqcal.LoadConfig(*cfgPath)
	if err != nil {
		return err
	}
	res, err := pqcal.Calibrate(cfg.Samples(), cfg.PeakLuminance, cfg.LUTSize)
	if err != nil {
		return err
	}

	img, err := pqcal.RenderPreview(res.LUT, func(o *pqcal.PreviewOptions) {
		o.Size = *size
	})
	if err != nil {
		return err
	}
	if err := writePNG(*outPath, img); err != nil {
		return err
	}
	if *thumbPath != "" {
		if err := writePNG(*thumbPath, pqcal.Thumbnail(img, *thumbWidth)); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
