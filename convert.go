package csscolor

import "github.com/maax3v3/csscolor/models"

// ToSpace converts the color to the given color space or notation.
//
// Directly related spaces convert without a detour, everything else pivots
// through XYZ with the D65 white point. Missing components behave as zero
// during the conversion math, except where the destination has an
// analogous component, in which case the missing flag carries forward per
// CSS Color 4. A NaN produced by the conversion itself (the hue of an
// achromatic color) is recorded as missing in the result.
func (c Color) ToSpace(target Space) Color {
	if c.Space == target {
		return c
	}
	out := convertComponents(c.Space, target, c.resolved())
	flags := analogousMissingComponents(c.Space, target, c.Flags)
	flags |= c.Flags & FlagAlphaMissing
	return newWithFlags(target, out, c.Alpha, flags)
}

func convertComponents(from, to Space, v Components) Components {
	// Direct conversions between related spaces.
	switch {
	case from == SpaceSrgb && to == SpaceSrgbLinear:
		l := srgbOf(v).ToLinearLight()
		return Components{l.R, l.G, l.B}
	case from == SpaceSrgbLinear && to == SpaceSrgb:
		s := srgbLinearOf(v).ToGammaEncoded()
		return Components{s.R, s.G, s.B}
	case from == SpaceSrgb && to == SpaceHsl:
		h := srgbOf(v).ToHsl()
		return Components{h.H, h.S, h.L}
	case from == SpaceHsl && to == SpaceSrgb:
		s := hslOf(v).ToSrgb()
		return Components{s.R, s.G, s.B}
	case from == SpaceSrgb && to == SpaceHwb:
		h := srgbOf(v).ToHwb()
		return Components{h.H, h.W, h.B}
	case from == SpaceHwb && to == SpaceSrgb:
		s := hwbOf(v).ToSrgb()
		return Components{s.R, s.G, s.B}
	case from == SpaceHsl && to == SpaceHwb:
		h := hslOf(v).ToSrgb().ToHwb()
		return Components{h.H, h.W, h.B}
	case from == SpaceHwb && to == SpaceHsl:
		h := hwbOf(v).ToSrgb().ToHsl()
		return Components{h.H, h.S, h.L}
	case from == SpaceXyzD50 && to == SpaceXyzD65:
		x := models.XyzD50{X: v[0], Y: v[1], Z: v[2]}.TransferToD65()
		return Components{x.X, x.Y, x.Z}
	case from == SpaceXyzD65 && to == SpaceXyzD50:
		x := models.XyzD65{X: v[0], Y: v[1], Z: v[2]}.TransferToD50()
		return Components{x.X, x.Y, x.Z}
	case from == SpaceLab && to == SpaceLch:
		p := models.Lab{L: v[0], A: v[1], B: v[2]}.ToPolar()
		return Components{p.L, p.C, p.H}
	case from == SpaceLch && to == SpaceLab:
		r := models.Lch{L: v[0], C: v[1], H: v[2]}.ToRectangular()
		return Components{r.L, r.A, r.B}
	case from == SpaceOklab && to == SpaceOklch:
		p := models.Oklab{L: v[0], A: v[1], B: v[2]}.ToPolar()
		return Components{p.L, p.C, p.H}
	case from == SpaceOklch && to == SpaceOklab:
		r := models.Oklch{L: v[0], C: v[1], H: v[2]}.ToRectangular()
		return Components{r.L, r.A, r.B}
	}

	return fromBase(to, toBase(from, v))
}

// toBase converts components in the given space to XYZ with the D65 white
// point, the pivot for all indirect conversions.
func toBase(from Space, v Components) models.XyzD65 {
	switch from {
	case SpaceSrgb:
		return srgbOf(v).ToLinearLight().ToXyz()
	case SpaceHsl:
		return hslOf(v).ToSrgb().ToLinearLight().ToXyz()
	case SpaceHwb:
		return hwbOf(v).ToSrgb().ToLinearLight().ToXyz()
	case SpaceLab:
		return models.Lab{L: v[0], A: v[1], B: v[2]}.ToXyz().TransferToD65()
	case SpaceLch:
		return models.Lch{L: v[0], C: v[1], H: v[2]}.ToRectangular().ToXyz().TransferToD65()
	case SpaceOklab:
		return models.Oklab{L: v[0], A: v[1], B: v[2]}.ToXyz()
	case SpaceOklch:
		return models.Oklch{L: v[0], C: v[1], H: v[2]}.ToRectangular().ToXyz()
	case SpaceSrgbLinear:
		return srgbLinearOf(v).ToXyz()
	case SpaceDisplayP3:
		return models.DisplayP3{R: v[0], G: v[1], B: v[2]}.ToLinearLight().ToXyz()
	case SpaceA98Rgb:
		return models.A98Rgb{R: v[0], G: v[1], B: v[2]}.ToLinearLight().ToXyz()
	case SpaceProPhotoRgb:
		return models.ProPhotoRgb{R: v[0], G: v[1], B: v[2]}.ToLinearLight().ToXyz().TransferToD65()
	case SpaceRec2020:
		return models.Rec2020{R: v[0], G: v[1], B: v[2]}.ToLinearLight().ToXyz()
	case SpaceXyzD50:
		return models.XyzD50{X: v[0], Y: v[1], Z: v[2]}.TransferToD65()
	default: // SpaceXyzD65
		return models.XyzD65{X: v[0], Y: v[1], Z: v[2]}
	}
}

// fromBase converts XYZ-D65 components to the given space.
func fromBase(to Space, xyz models.XyzD65) Components {
	switch to {
	case SpaceSrgb:
		s := xyz.ToSrgbLinear().ToGammaEncoded()
		return Components{s.R, s.G, s.B}
	case SpaceHsl:
		h := xyz.ToSrgbLinear().ToGammaEncoded().ToHsl()
		return Components{h.H, h.S, h.L}
	case SpaceHwb:
		h := xyz.ToSrgbLinear().ToGammaEncoded().ToHwb()
		return Components{h.H, h.W, h.B}
	case SpaceLab:
		l := xyz.TransferToD50().ToLab()
		return Components{l.L, l.A, l.B}
	case SpaceLch:
		p := xyz.TransferToD50().ToLab().ToPolar()
		return Components{p.L, p.C, p.H}
	case SpaceOklab:
		o := xyz.ToOklab()
		return Components{o.L, o.A, o.B}
	case SpaceOklch:
		p := xyz.ToOklab().ToPolar()
		return Components{p.L, p.C, p.H}
	case SpaceSrgbLinear:
		l := xyz.ToSrgbLinear()
		return Components{l.R, l.G, l.B}
	case SpaceDisplayP3:
		p := xyz.ToDisplayP3Linear().ToGammaEncoded()
		return Components{p.R, p.G, p.B}
	case SpaceA98Rgb:
		a := xyz.ToA98RgbLinear().ToGammaEncoded()
		return Components{a.R, a.G, a.B}
	case SpaceProPhotoRgb:
		p := xyz.TransferToD50().ToProPhotoRgbLinear().ToGammaEncoded()
		return Components{p.R, p.G, p.B}
	case SpaceRec2020:
		r := xyz.ToRec2020Linear().ToGammaEncoded()
		return Components{r.R, r.G, r.B}
	case SpaceXyzD50:
		x := xyz.TransferToD50()
		return Components{x.X, x.Y, x.Z}
	default: // SpaceXyzD65
		return Components{xyz.X, xyz.Y, xyz.Z}
	}
}

func srgbOf(v Components) models.Srgb {
	return models.Srgb{R: v[0], G: v[1], B: v[2]}
}

func srgbLinearOf(v Components) models.SrgbLinear {
	return models.SrgbLinear{R: v[0], G: v[1], B: v[2]}
}

func hslOf(v Components) models.Hsl {
	return models.Hsl{H: v[0], S: v[1], L: v[2]}
}

func hwbOf(v Components) models.Hwb {
	return models.Hwb{H: v[0], W: v[1], B: v[2]}
}

// Analogous component categories for carrying missing components forward
// through a conversion, per CSS Color 4. Red/green/blue carry between RGB
// spaces, X/Y/Z between XYZ spaces; lightness, colorfulness, hue and the
// opponent axes carry between the spaces that have them.

func lightnessIndex(s Space) (int, bool) {
	switch s {
	case SpaceLab, SpaceLch, SpaceOklab, SpaceOklch:
		return 0, true
	case SpaceHsl:
		return 2, true
	}
	return 0, false
}

func colorfulnessIndex(s Space) (int, bool) {
	switch s {
	case SpaceHsl, SpaceLch, SpaceOklch:
		return 1, true
	}
	return 0, false
}

func hasOpponentAxes(s Space) bool {
	return s == SpaceLab || s == SpaceOklab
}

func analogousMissingComponents(from, to Space, flags Flags) Flags {
	flags &= FlagC0Missing | FlagC1Missing | FlagC2Missing
	if flags == 0 || from == to {
		return flags
	}

	// Within the RGB family and within the XYZ family all three components
	// are analogous positionally.
	if (from.isRGBLike() && to.isRGBLike()) || (from.isXYZLike() && to.isXYZLike()) {
		return flags
	}

	var out Flags
	carry := func(fromIndex, toIndex int) {
		if flags.Contains(componentFlag(fromIndex)) {
			out |= componentFlag(toIndex)
		}
	}

	if fi, ok := lightnessIndex(from); ok {
		if ti, ok := lightnessIndex(to); ok {
			carry(fi, ti)
		}
	}
	if fi, ok := colorfulnessIndex(from); ok {
		if ti, ok := colorfulnessIndex(to); ok {
			carry(fi, ti)
		}
	}
	if fi, ok := from.hueIndex(); ok {
		if ti, ok := to.hueIndex(); ok {
			carry(fi, ti)
		}
	}
	if hasOpponentAxes(from) && hasOpponentAxes(to) {
		carry(1, 1)
		carry(2, 2)
	}
	return out
}
