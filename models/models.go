// Package models provides statically typed views of the color spaces
// supported by the csscolor package. Each space is a concrete struct with
// named components, and conversions exist only between spaces that are
// directly related: gamma encoded forms pair with their linear-light
// forms, linear RGB forms reach CIE-XYZ, Lab and Oklab pair with their
// polar forms, and the two XYZ white points are bridged exclusively by
// TransferToD50/TransferToD65. Anything else has to be spelled as a chain,
// which makes invalid conversion paths unrepresentable.
//
// The math operates on raw component values. It carries no alpha and no
// missing-component bookkeeping; that is the concern of the generic
// csscolor.Color layer built on top of this package.
package models

import "math"

// Component is a single floating point color component.
type Component = float64

// epsilon is the smallest meaningful difference between two components.
const epsilon = 2.220446049250313e-16

func almostZero(v Component) bool { return math.Abs(v) < epsilon }

// normalizeHue brings a hue angle into [0, 360).
func normalizeHue(hue Component) Component {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	return hue
}
