package csscolor

import "math"

// HueInterpolationMethod selects how two hue angles are adjusted before
// they are interpolated.
// https://drafts.csswg.org/css-color-4/#hue-interpolation
type HueInterpolationMethod uint8

const (
	// HueShorter travels the shorter of the two arcs between the hues.
	// This is the CSS default.
	HueShorter HueInterpolationMethod = iota
	// HueLonger travels the longer arc.
	HueLonger
	// HueIncreasing travels with strictly increasing angles.
	HueIncreasing
	// HueDecreasing travels with strictly decreasing angles.
	HueDecreasing
)

var hueMethodNames = map[HueInterpolationMethod]string{
	HueShorter:    "shorter",
	HueLonger:     "longer",
	HueIncreasing: "increasing",
	HueDecreasing: "decreasing",
}

// String returns the CSS keyword of the method, e.g. "shorter".
func (m HueInterpolationMethod) String() string { return hueMethodNames[m] }

// ParseHueInterpolationMethod returns the method for a CSS keyword like
// "longer". It reports false for unknown keywords.
func ParseHueInterpolationMethod(name string) (HueInterpolationMethod, bool) {
	for m, n := range hueMethodNames {
		if n == name {
			return m, true
		}
	}
	return 0, false
}

// optional is a component value that may be absent.
type optional struct {
	value Component
	ok    bool
}

// premultiplied holds the components of an interpolation endpoint with
// every non-hue component multiplied by its alpha. An endpoint with
// missing alpha keeps its raw values.
type premultiplied struct {
	components [3]optional
	alpha      optional
}

func premultiply(c Color) premultiplied {
	var p premultiplied
	alpha, alphaOK := c.AlphaComponent()
	p.alpha = optional{alpha, alphaOK}

	hueIndex, hasHue := c.Space.hueIndex()
	for i := 0; i < 3; i++ {
		v, ok := c.component(i)
		if !ok {
			continue
		}
		if alphaOK && !(hasHue && i == hueIndex) {
			v *= alpha
		}
		p.components[i] = optional{v, true}
	}
	return p
}

// intoColor un-premultiplies the components and rebuilds a Color, turning
// absent components back into missing flags. No division happens when
// alpha is missing or zero.
func (p premultiplied) intoColor(space Space) Color {
	hueIndex, hasHue := space.hueIndex()

	var comps Components
	var flags Flags
	for i, o := range p.components {
		if !o.ok {
			comps[i] = Component(math.NaN())
			flags |= componentFlag(i)
			continue
		}
		v := o.value
		if p.alpha.ok && p.alpha.value != 0 && !(hasHue && i == hueIndex) {
			v /= p.alpha.value
		}
		comps[i] = v
	}

	alpha := Component(math.NaN())
	if p.alpha.ok {
		alpha = p.alpha.value
	} else {
		flags |= FlagAlphaMissing
	}
	return Color{Components: comps, Alpha: alpha, Flags: flags, Space: space}
}

// Interpolation mixes two colors in a chosen color space with
// premultiplied alpha, as css-color-4 interpolation and css-color-5
// color-mix() do.
type Interpolation struct {
	left, right premultiplied
	space       Space
	hueMethod   HueInterpolationMethod
}

// Interpolate prepares an interpolation between c and other in the given
// space. Both endpoints are converted to the space first, carrying
// missing components forward; an endpoint without an alpha takes the
// alpha of the other side.
func (c Color) Interpolate(other Color, space Space) Interpolation {
	left := c.ToSpace(space)
	right := other.ToSpace(space)

	leftAlpha, leftOK := left.AlphaComponent()
	rightAlpha, rightOK := right.AlphaComponent()
	if !leftOK && rightOK {
		left.Alpha = rightAlpha
		left.Flags &^= FlagAlphaMissing
	} else if leftOK && !rightOK {
		right.Alpha = leftAlpha
		right.Flags &^= FlagAlphaMissing
	}

	return Interpolation{
		left:  premultiply(left),
		right: premultiply(right),
		space: space,
	}
}

// WithHueInterpolation returns the interpolation with the given hue
// interpolation method.
func (i Interpolation) WithHueInterpolation(method HueInterpolationMethod) Interpolation {
	i.hueMethod = method
	return i
}

// At returns the mixed color at position t, with t=0 yielding the left
// endpoint and t=1 the right.
func (i Interpolation) At(t Component) Color {
	return i.weighted(1-t, t)
}

// WithWeights mixes with raw weights. The weights are not normalized, so
// weights summing above one are additive.
func (i Interpolation) WithWeights(left, right Component) Color {
	return i.weighted(left, right)
}

// MixWeighted mixes with css-color-5 percentage normalization: weights
// are scaled to sum to one, and when they sum below one the result's
// alpha is multiplied by the sum.
// https://drafts.csswg.org/css-color-5/#color-mix-percent-norm
func (i Interpolation) MixWeighted(left, right Component) Color {
	alphaMultiplier := Component(1)
	if sum := left + right; sum != 1 {
		left /= sum
		right /= sum
		if sum < 1 {
			alphaMultiplier = sum
		}
	}

	result := i.weighted(left, right)
	if alphaMultiplier != 1 {
		result.Alpha *= alphaMultiplier
	}
	return result
}

func (i Interpolation) weighted(leftWeight, rightWeight Component) Color {
	hueIndex, hasHue := i.space.hueIndex()

	var out premultiplied
	for idx := 0; idx < 3; idx++ {
		left, right := i.left.components[idx], i.right.components[idx]
		switch {
		case left.ok && right.ok:
			lv, rv := left.value, right.value
			if hasHue && idx == hueIndex {
				lv, rv = adjustHues(lv, rv, i.hueMethod)
				mixed := normalizeHue(lv*leftWeight + rv*rightWeight)
				out.components[idx] = optional{mixed, true}
			} else {
				out.components[idx] = optional{lv*leftWeight + rv*rightWeight, true}
			}
		case left.ok:
			// A one sided missing component takes the other side's value.
			out.components[idx] = left
		case right.ok:
			out.components[idx] = right
		}
	}

	leftAlpha, rightAlpha := i.left.alpha, i.right.alpha
	switch {
	case leftAlpha.ok && rightAlpha.ok:
		mixed := clamp01(leftAlpha.value*leftWeight + rightAlpha.value*rightWeight)
		out.alpha = optional{mixed, true}
	case leftAlpha.ok:
		out.alpha = leftAlpha
	case rightAlpha.ok:
		out.alpha = rightAlpha
	}

	return out.intoColor(i.space)
}

// adjustHues prepares the two hue angles for interpolation according to
// the method. Both are first normalized to [0, 360).
func adjustHues(left, right Component, method HueInterpolationMethod) (Component, Component) {
	left = normalizeHue(left)
	right = normalizeHue(right)

	delta := right - left
	switch method {
	case HueShorter:
		if delta > 180 {
			left += 360
		} else if delta < -180 {
			right += 360
		}
	case HueLonger:
		if 0 < delta && delta < 180 {
			left += 360
		} else if -180 < delta && delta <= 0 {
			right += 360
		}
	case HueIncreasing:
		if right < left {
			right += 360
		}
	case HueDecreasing:
		if left < right {
			left += 360
		}
	}
	return left, right
}

// normalizeHue brings a hue angle into [0, 360). NaN hues behave as zero.
func normalizeHue(hue Component) Component {
	if math.IsNaN(hue) {
		return 0
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}
