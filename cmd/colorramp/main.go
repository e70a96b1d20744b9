package main

import (
	"fmt"
	"os"

	"github.com/maax3v3/csscolor"
	"github.com/maax3v3/csscolor/internal/cli"
	"github.com/maax3v3/csscolor/internal/imaging"
	"github.com/maax3v3/csscolor/internal/ramp"
)

func main() {
	cfg, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := ramp.Options{
		Width:       cfg.Width,
		StripHeight: cfg.StripHeight,
		HueMethod:   cfg.HueMethod,
		Label:       true,
	}

	spaces := csscolor.Spaces()
	fmt.Printf("Rendering %d gradient strips (%dx%d, hue=%s)...\n",
		len(spaces), opts.Width, opts.StripHeight*len(spaces), cfg.HueMethod)
	sheet := ramp.Sheet(cfg.Left, cfg.Right, spaces, opts)

	fmt.Printf("Saving output: %s\n", cfg.OutPath)
	if err := imaging.SavePNG(cfg.OutPath, sheet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done!")
}
