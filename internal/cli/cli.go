// Package cli parses and validates the colorramp command line.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/maax3v3/csscolor"
)

// Config holds the parsed CLI arguments.
type Config struct {
	Left        csscolor.Color
	Right       csscolor.Color
	OutPath     string
	Width       int
	StripHeight int
	HueMethod   csscolor.HueInterpolationMethod
}

// Parse parses CLI arguments and returns a validated Config.
func Parse() (Config, error) {
	left := flag.String("left", "srgb:1,0,0", "Left endpoint color as space:c0,c1,c2[,alpha] (use none for a missing component)")
	right := flag.String("right", "srgb:0,0,1", "Right endpoint color as space:c0,c1,c2[,alpha]")
	outPath := flag.String("out", "ramp.png", "Path to the generated PNG sheet")
	width := flag.Int("width", 1000, "Sheet width in pixels")
	stripHeight := flag.Int("strip-height", 100, "Height of each gradient strip in pixels")
	hue := flag.String("hue", "shorter", "Hue interpolation method (shorter, longer, increasing, decreasing)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: colorramp [options]\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n  colorramp --left=oklch:0.7,0.2,30 --right=hsl:250,0.8,0.5 --hue=longer --out=ramp.png\n")
	}

	flag.Parse()

	if ext := strings.ToLower(filepath.Ext(*outPath)); ext != ".png" {
		return Config{}, fmt.Errorf("--out must be a .png file, got %q", ext)
	}
	if *width <= 0 {
		return Config{}, fmt.Errorf("--width must be > 0, got %d", *width)
	}
	if *stripHeight <= 0 {
		return Config{}, fmt.Errorf("--strip-height must be > 0, got %d", *stripHeight)
	}

	leftColor, err := ParseColorSpec(*left)
	if err != nil {
		return Config{}, fmt.Errorf("--left: %w", err)
	}
	rightColor, err := ParseColorSpec(*right)
	if err != nil {
		return Config{}, fmt.Errorf("--right: %w", err)
	}
	method, ok := csscolor.ParseHueInterpolationMethod(*hue)
	if !ok {
		return Config{}, fmt.Errorf("--hue must be one of shorter, longer, increasing, decreasing, got %q", *hue)
	}

	return Config{
		Left:        leftColor,
		Right:       rightColor,
		OutPath:     *outPath,
		Width:       *width,
		StripHeight: *stripHeight,
		HueMethod:   method,
	}, nil
}

// ParseColorSpec parses the space:c0,c1,c2[,alpha] color argument form,
// e.g. "oklch:0.7,0.2,30" or "hsl:none,0.5,0.5,0.8". The keyword none
// marks a component as missing. Alpha defaults to 1.
func ParseColorSpec(spec string) (csscolor.Color, error) {
	name, rest, found := strings.Cut(spec, ":")
	if !found {
		return csscolor.Color{}, fmt.Errorf("color %q must have the form space:c0,c1,c2[,alpha]", spec)
	}

	space, ok := csscolor.ParseSpace(strings.TrimSpace(name))
	if !ok {
		return csscolor.Color{}, fmt.Errorf("unknown color space %q", name)
	}

	parts := strings.Split(rest, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return csscolor.Color{}, fmt.Errorf("color %q must have 3 components and an optional alpha", spec)
	}

	values := make([]csscolor.Component, 4)
	values[3] = 1
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "none" {
			values[i] = csscolor.None
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return csscolor.Color{}, fmt.Errorf("component %q of color %q: %w", part, spec, err)
		}
		values[i] = v
	}

	return csscolor.New(space, values[0], values[1], values[2], values[3]), nil
}
