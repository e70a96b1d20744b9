// Package csscolor converts, gamut-maps, and interpolates colors across the
// color spaces and notations of the CSS Color Module Level 4 specification.
//
// A [Color] holds three components, an alpha value, and the [Space] the
// components are expressed in. Components can be "missing" (powerless) as
// defined by CSS; missing components are tracked with [Flags] and survive
// conversion and interpolation according to the CSS carry-forward rules.
//
// Usage:
//
//	red := csscolor.New(csscolor.SpaceSrgb, 1, 0, 0, 1)
//	blue := csscolor.New(csscolor.SpaceSrgb, 0, 0, 1, 1)
//	mid := red.Interpolate(blue, csscolor.SpaceOklch).At(0.5)
//	fmt.Println(mid.ToSpace(csscolor.SpaceSrgb).MapIntoGamutLimits())
//
// All operations are pure: a Color is an immutable value, every method
// returns a new Color, and no operation can fail.
package csscolor

import "math"

// Component is a single floating point color component.
type Component = float64

// None marks a component as missing when passed to [New]. It is CSS
// "none": not an error, a value that is powerless and carried through
// conversions as such.
var None = Component(math.NaN())

// Components holds the three components that describe any color. Their
// meaning depends on the color space: red/green/blue for the RGB family,
// hue/saturation/lightness for HSL, lightness/chroma/hue for LCH forms,
// and so on.
type Components [3]Component

// Map returns new components with f applied to each component.
func (c Components) Map(f func(Component) Component) Components {
	return Components{f(c[0]), f(c[1]), f(c[2])}
}

// Flags mark missing components on a [Color].
type Flags uint8

const (
	// FlagC0Missing is set when the first component is missing.
	FlagC0Missing Flags = 1 << iota
	// FlagC1Missing is set when the second component is missing.
	FlagC1Missing
	// FlagC2Missing is set when the third component is missing.
	FlagC2Missing
	// FlagAlphaMissing is set when the alpha component is missing.
	FlagAlphaMissing
)

// Contains reports whether all bits in other are set in f.
func (f Flags) Contains(other Flags) bool { return f&other == other }

func componentFlag(index int) Flags { return FlagC0Missing << index }

// Space identifies a color space or notation supported by CSS Color 4.
type Space uint8

const (
	// SpaceSrgb is the gamma encoded sRGB color space.
	SpaceSrgb Space = iota
	// SpaceHsl is the HSL (hue, saturation, lightness) notation of sRGB.
	SpaceHsl
	// SpaceHwb is the HWB (hue, whiteness, blackness) notation of sRGB.
	SpaceHwb
	// SpaceLab is the rectangular CIE-Lab color space.
	SpaceLab
	// SpaceLch is the polar form of CIE-Lab.
	SpaceLch
	// SpaceOklab is the rectangular Oklab color space.
	SpaceOklab
	// SpaceOklch is the polar form of Oklab.
	SpaceOklch
	// SpaceSrgbLinear is sRGB with no gamma encoding.
	SpaceSrgbLinear
	// SpaceDisplayP3 is the display-p3 color space.
	SpaceDisplayP3
	// SpaceA98Rgb is the a98-rgb color space.
	SpaceA98Rgb
	// SpaceProPhotoRgb is the prophoto-rgb color space.
	SpaceProPhotoRgb
	// SpaceRec2020 is the rec2020 color space.
	SpaceRec2020
	// SpaceXyzD50 is CIE-XYZ with a D50 white point.
	SpaceXyzD50
	// SpaceXyzD65 is CIE-XYZ with a D65 white point.
	SpaceXyzD65
)

var spaceNames = map[Space]string{
	SpaceSrgb:        "srgb",
	SpaceHsl:         "hsl",
	SpaceHwb:         "hwb",
	SpaceLab:         "lab",
	SpaceLch:         "lch",
	SpaceOklab:       "oklab",
	SpaceOklch:       "oklch",
	SpaceSrgbLinear:  "srgb-linear",
	SpaceDisplayP3:   "display-p3",
	SpaceA98Rgb:      "a98-rgb",
	SpaceProPhotoRgb: "prophoto-rgb",
	SpaceRec2020:     "rec2020",
	SpaceXyzD50:      "xyz-d50",
	SpaceXyzD65:      "xyz-d65",
}

// String returns the CSS identifier of the space, e.g. "display-p3".
func (s Space) String() string { return spaceNames[s] }

// ParseSpace returns the Space for a CSS space identifier like "oklch" or
// "display-p3". It reports false for unknown identifiers.
func ParseSpace(name string) (Space, bool) {
	for s, n := range spaceNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// Spaces lists every supported space in declaration order.
func Spaces() []Space {
	return []Space{
		SpaceSrgb, SpaceHsl, SpaceHwb, SpaceLab, SpaceLch, SpaceOklab,
		SpaceOklch, SpaceSrgbLinear, SpaceDisplayP3, SpaceA98Rgb,
		SpaceProPhotoRgb, SpaceRec2020, SpaceXyzD50, SpaceXyzD65,
	}
}

// isRGBLike reports whether the space stores red, green and blue components.
func (s Space) isRGBLike() bool {
	switch s {
	case SpaceSrgb, SpaceSrgbLinear, SpaceDisplayP3, SpaceA98Rgb,
		SpaceProPhotoRgb, SpaceRec2020:
		return true
	}
	return false
}

// isXYZLike reports whether the space stores X, Y and Z components.
func (s Space) isXYZLike() bool {
	return s == SpaceXyzD50 || s == SpaceXyzD65
}

// hueIndex returns the index of the hue component, if the space has one.
func (s Space) hueIndex() (int, bool) {
	switch s {
	case SpaceHsl, SpaceHwb:
		return 0, true
	case SpaceLch, SpaceOklch:
		return 2, true
	}
	return 0, false
}

// Color holds a color specified in any of the supported spaces. It is a
// plain value: copy it freely, compare it with ==.
type Color struct {
	// Components are the three components in the color's space.
	Components Components
	// Alpha is the alpha component, clamped to [0,1] at construction.
	Alpha Component
	// Flags mark missing components. Readers must consult the flags
	// through the accessors rather than test component values for NaN.
	Flags Flags
	// Space is the color space the components are expressed in.
	Space Space
}

// New creates a Color in the given space. Pass [None] (or any NaN) for a
// component to mark it missing. Alpha is clamped to [0,1] when present.
func New(space Space, c0, c1, c2, alpha Component) Color {
	var flags Flags
	comps := Components{c0, c1, c2}
	for i, v := range comps {
		if math.IsNaN(v) {
			flags |= componentFlag(i)
		}
	}
	if math.IsNaN(alpha) {
		flags |= FlagAlphaMissing
	} else {
		alpha = clamp01(alpha)
	}
	return Color{Components: comps, Alpha: alpha, Flags: flags, Space: space}
}

// newWithFlags builds a converted color, preserving the given carried
// flags and additionally marking any NaN component produced by the
// conversion math as missing.
func newWithFlags(space Space, comps Components, alpha Component, flags Flags) Color {
	for i, v := range comps {
		if math.IsNaN(v) {
			flags |= componentFlag(i)
		}
	}
	return Color{Components: comps, Alpha: alpha, Flags: flags, Space: space}
}

// C0 returns the first component and whether it is present.
func (c Color) C0() (Component, bool) { return c.component(0) }

// C1 returns the second component and whether it is present.
func (c Color) C1() (Component, bool) { return c.component(1) }

// C2 returns the third component and whether it is present.
func (c Color) C2() (Component, bool) { return c.component(2) }

func (c Color) component(i int) (Component, bool) {
	if c.Flags.Contains(componentFlag(i)) {
		return 0, false
	}
	return c.Components[i], true
}

// AlphaComponent returns the alpha component and whether it is present.
func (c Color) AlphaComponent() (Component, bool) {
	if c.Flags.Contains(FlagAlphaMissing) {
		return 0, false
	}
	return c.Alpha, true
}

// resolved returns the components with missing ones replaced by zero,
// which is how a missing component behaves during conversion when the
// destination has no analogous component.
func (c Color) resolved() Components {
	out := c.Components
	for i := range out {
		if c.Flags.Contains(componentFlag(i)) || math.IsNaN(out[i]) {
			out[i] = 0
		}
	}
	return out
}

func clamp01(v Component) Component {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
