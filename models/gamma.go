package models

import "math"

// The transfer functions below are extended to the full real line: they
// pass negative values through mirrored around zero, so out of gamut
// components keep their sign through an encode/decode round trip.

func srgbToLinearLight(v Component) Component {
	abs := math.Abs(v)
	if abs < 0.04045 {
		return v / 12.92
	}
	return sign(v) * math.Pow((abs+0.055)/1.055, 2.4)
}

func srgbToGammaEncoded(v Component) Component {
	abs := math.Abs(v)
	if abs > 0.0031308 {
		return sign(v) * (1.055*math.Pow(abs, 1.0/2.4) - 0.055)
	}
	return 12.92 * v
}

func a98ToLinearLight(v Component) Component {
	return sign(v) * math.Pow(math.Abs(v), 563.0/256.0)
}

func a98ToGammaEncoded(v Component) Component {
	return sign(v) * math.Pow(math.Abs(v), 256.0/563.0)
}

func proPhotoToLinearLight(v Component) Component {
	if math.Abs(v) <= 16.0/512.0 {
		return v / 16.0
	}
	return sign(v) * math.Pow(math.Abs(v), 1.8)
}

func proPhotoToGammaEncoded(v Component) Component {
	if math.Abs(v) >= 1.0/512.0 {
		return sign(v) * math.Pow(math.Abs(v), 1.0/1.8)
	}
	return 16.0 * v
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020ToLinearLight(v Component) Component {
	abs := math.Abs(v)
	if abs < rec2020Beta*4.5 {
		return v / 4.5
	}
	return sign(v) * math.Pow((abs+rec2020Alpha-1)/rec2020Alpha, 1.0/0.45)
}

func rec2020ToGammaEncoded(v Component) Component {
	abs := math.Abs(v)
	if abs > rec2020Beta {
		return sign(v) * (rec2020Alpha*math.Pow(abs, 0.45) - (rec2020Alpha - 1))
	}
	return 4.5 * v
}

func sign(v Component) Component {
	if math.Signbit(v) {
		return -1
	}
	return 1
}
