// Package ramp rasterizes gradient strips and swatches from color
// interpolations. Every pixel is interpolated in the requested space,
// converted to sRGB and gamut mapped before it is quantized to 8 bits.
package ramp

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/maax3v3/csscolor"
)

// Options control rendering of gradient strips and sheets.
type Options struct {
	// Width of the rendered image in pixels.
	Width int
	// StripHeight is the height of each gradient strip in pixels.
	StripHeight int
	// HueMethod selects the hue interpolation method for polar spaces.
	HueMethod csscolor.HueInterpolationMethod
	// Label draws the name of the interpolation space on each strip.
	Label bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Width:       1000,
		StripHeight: 100,
		HueMethod:   csscolor.HueShorter,
		Label:       true,
	}
}

// Strip renders a single horizontal gradient between left and right,
// interpolated in the given space.
func Strip(left, right csscolor.Color, space csscolor.Space, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.StripHeight))
	drawStrip(img, img.Bounds(), left, right, space, opts)
	if opts.Label {
		labelStrip(img, img.Bounds(), space.String())
	}
	return img
}

// Sheet renders one gradient strip per space, stacked vertically.
func Sheet(left, right csscolor.Color, spaces []csscolor.Space, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.StripHeight*len(spaces)))
	for i, space := range spaces {
		bounds := image.Rect(0, i*opts.StripHeight, opts.Width, (i+1)*opts.StripHeight)
		drawStrip(img, bounds, left, right, space, opts)
		if opts.Label {
			labelStrip(img, bounds, space.String())
		}
	}
	return img
}

// Swatch renders a solid rectangle of the color, converted to sRGB and
// gamut mapped.
func Swatch(c csscolor.Color, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
	return img
}

func drawStrip(img *image.RGBA, bounds image.Rectangle, left, right csscolor.Color, space csscolor.Space, opts Options) {
	interp := left.Interpolate(right, space).WithHueInterpolation(opts.HueMethod)

	width := bounds.Dx()
	for x := 0; x < width; x++ {
		t := csscolor.Component(x) / csscolor.Component(width)
		px := toRGBA(interp.At(t))

		// The color is constant down a column.
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			img.SetRGBA(bounds.Min.X+x, y, px)
		}
	}
}

// toRGBA converts to sRGB, maps into gamut and quantizes to 8 bits.
// Missing components behave as zero; a missing alpha renders opaque.
func toRGBA(c csscolor.Color) color.RGBA {
	mapped := c.ToSpace(csscolor.SpaceSrgb).MapIntoGamutLimits()

	quantize := func(v csscolor.Component) uint8 {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return uint8(v*255 + 0.5)
	}

	r, _ := mapped.C0()
	g, _ := mapped.C1()
	b, _ := mapped.C2()
	alpha, ok := mapped.AlphaComponent()
	if !ok {
		alpha = 1
	}
	return color.RGBA{
		R: quantize(r * alpha),
		G: quantize(g * alpha),
		B: quantize(b * alpha),
		A: quantize(alpha),
	}
}

func labelStrip(img *image.RGBA, bounds image.Rectangle, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{A: 0x7f}),
		Face: basicfont.Face7x13,
	}

	width := d.MeasureString(text).Round()
	cx := bounds.Min.X + (bounds.Dx()-width)/2
	cy := bounds.Min.Y + bounds.Dy()/2 + basicfont.Face7x13.Ascent/2
	d.Dot = fixed.P(cx, cy)
	d.DrawString(text)
}
