package csscolor

import "math"

const (
	// gamutJND is the just noticeable difference in deltaEOK under which
	// two colors are indistinguishable.
	gamutJND = 0.02
	// gamutEpsilon bounds the chroma binary search.
	gamutEpsilon = 1.0e-4
)

func inZeroToOne(v Component) bool { return v >= 0 && v <= 1 }

// DeltaEOK is the color difference between the two colors, calculated as
// the Euclidean distance in the Oklab color space.
// https://drafts.csswg.org/css-color-4/#color-difference-OK
func DeltaEOK(reference, sample Color) Component {
	r := reference.ToSpace(SpaceOklab).resolved()
	s := sample.ToSpace(SpaceOklab).resolved()

	dl := s[0] - r[0]
	da := s[1] - r[1]
	db := s[2] - r[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// InGamut reports whether the color is within the gamut limits of its
// color space. RGB based spaces are limited to components in [0, 1], HSL
// and HWB are limited by the sRGB gamut, and the Lab, LCH and XYZ spaces
// are unlimited.
func (c Color) InGamut() bool {
	switch c.Space {
	case SpaceHsl, SpaceHwb:
		return c.ToSpace(SpaceSrgb).InGamut()
	case SpaceLab, SpaceLch, SpaceOklab, SpaceOklch, SpaceXyzD50, SpaceXyzD65:
		return true
	}
	v := c.resolved()
	return inZeroToOne(v[0]) && inZeroToOne(v[1]) && inZeroToOne(v[2])
}

// Clip clamps each present component to [0, 1]. This is a lossy
// operation.
func (c Color) Clip() Color {
	out := c
	for i := range out.Components {
		if !out.Flags.Contains(componentFlag(i)) {
			out.Components[i] = clamp01(out.Components[i])
		}
	}
	return out
}

// MapIntoGamutLimits maps the color into the gamut limits of its color
// space using the CSS Color 4 gamut mapping algorithm: a binary search on
// Oklch chroma, stopping as soon as clipping the candidate is within one
// just noticeable difference of it.
// https://drafts.csswg.org/css-color-4/#gamut-mapping
func (c Color) MapIntoGamutLimits() Color {
	// Spaces without gamut limits map to themselves.
	switch c.Space {
	case SpaceLab, SpaceLch, SpaceOklab, SpaceOklch, SpaceXyzD50, SpaceXyzD65:
		return c
	}

	if c.InGamut() {
		return c
	}

	originOklch := c.ToSpace(SpaceOklch)

	// Extreme lightness maps to white or black, keeping alpha.
	lightness := originOklch.resolved()[0]
	if lightness >= 1 {
		return c.replacedComponents(1, 1, 1)
	}
	if lightness <= 0 {
		return c.replacedComponents(0, 0, 0)
	}

	min := Component(0)
	max := originOklch.resolved()[1]
	minInGamut := true

	current := originOklch

	// A clip within the just noticeable difference of the origin makes the
	// search unnecessary.
	clipped := current.ToSpace(c.Space).Clip()
	if DeltaEOK(current, clipped) < gamutJND {
		return clipped
	}

	for max-min > gamutEpsilon {
		chroma := (min + max) / 2
		current.Components[1] = chroma
		current.Flags &^= FlagC1Missing

		currentInSpace := current.ToSpace(c.Space)

		if minInGamut && currentInSpace.InGamut() {
			min = chroma
			continue
		}

		clipped := currentInSpace.Clip()
		e := DeltaEOK(clipped, current)
		if e < gamutJND {
			if gamutJND-e < gamutEpsilon {
				return clipped
			}
			minInGamut = false
			min = chroma
		} else {
			max = chroma
		}
	}

	return current.ToSpace(c.Space)
}

// replacedComponents keeps the space, alpha and alpha flag while replacing
// the three components.
func (c Color) replacedComponents(c0, c1, c2 Component) Color {
	return Color{
		Components: Components{c0, c1, c2},
		Alpha:      c.Alpha,
		Flags:      c.Flags & FlagAlphaMissing,
		Space:      c.Space,
	}
}
