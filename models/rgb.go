package models

// Srgb is a color in the gamma encoded sRGB color space.
type Srgb struct {
	R, G, B Component
}

// SrgbLinear is a color in the sRGB color space with no gamma encoding.
type SrgbLinear struct {
	R, G, B Component
}

// ToLinearLight removes the sRGB gamma encoding.
func (c Srgb) ToLinearLight() SrgbLinear {
	return SrgbLinear{
		R: srgbToLinearLight(c.R),
		G: srgbToLinearLight(c.G),
		B: srgbToLinearLight(c.B),
	}
}

// ToGammaEncoded applies the sRGB gamma encoding.
func (c SrgbLinear) ToGammaEncoded() Srgb {
	return Srgb{
		R: srgbToGammaEncoded(c.R),
		G: srgbToGammaEncoded(c.G),
		B: srgbToGammaEncoded(c.B),
	}
}

// ToXyz converts to CIE-XYZ. sRGB shares the D65 white point.
func (c SrgbLinear) ToXyz() XyzD65 {
	x, y, z := srgbLinearToXyzD65.mul(c.R, c.G, c.B)
	return XyzD65{X: x, Y: y, Z: z}
}

// ToSrgbLinear converts to linear-light sRGB.
func (c XyzD65) ToSrgbLinear() SrgbLinear {
	r, g, b := xyzD65ToSrgbLinear.mul(c.X, c.Y, c.Z)
	return SrgbLinear{R: r, G: g, B: b}
}

// DisplayP3 is a color in the gamma encoded display-p3 color space.
type DisplayP3 struct {
	R, G, B Component
}

// DisplayP3Linear is display-p3 with no gamma encoding.
type DisplayP3Linear struct {
	R, G, B Component
}

// ToLinearLight removes the gamma encoding. display-p3 uses the sRGB
// transfer curve.
func (c DisplayP3) ToLinearLight() DisplayP3Linear {
	return DisplayP3Linear{
		R: srgbToLinearLight(c.R),
		G: srgbToLinearLight(c.G),
		B: srgbToLinearLight(c.B),
	}
}

// ToGammaEncoded applies the gamma encoding.
func (c DisplayP3Linear) ToGammaEncoded() DisplayP3 {
	return DisplayP3{
		R: srgbToGammaEncoded(c.R),
		G: srgbToGammaEncoded(c.G),
		B: srgbToGammaEncoded(c.B),
	}
}

// ToXyz converts to CIE-XYZ with the D65 white point.
func (c DisplayP3Linear) ToXyz() XyzD65 {
	x, y, z := displayP3LinearToXyzD65.mul(c.R, c.G, c.B)
	return XyzD65{X: x, Y: y, Z: z}
}

// ToDisplayP3Linear converts to linear-light display-p3.
func (c XyzD65) ToDisplayP3Linear() DisplayP3Linear {
	r, g, b := xyzD65ToDisplayP3Linear.mul(c.X, c.Y, c.Z)
	return DisplayP3Linear{R: r, G: g, B: b}
}

// A98Rgb is a color in the gamma encoded a98-rgb color space.
type A98Rgb struct {
	R, G, B Component
}

// A98RgbLinear is a98-rgb with no gamma encoding.
type A98RgbLinear struct {
	R, G, B Component
}

// ToLinearLight removes the pure 563/256 power encoding.
func (c A98Rgb) ToLinearLight() A98RgbLinear {
	return A98RgbLinear{
		R: a98ToLinearLight(c.R),
		G: a98ToLinearLight(c.G),
		B: a98ToLinearLight(c.B),
	}
}

// ToGammaEncoded applies the pure 256/563 power encoding.
func (c A98RgbLinear) ToGammaEncoded() A98Rgb {
	return A98Rgb{
		R: a98ToGammaEncoded(c.R),
		G: a98ToGammaEncoded(c.G),
		B: a98ToGammaEncoded(c.B),
	}
}

// ToXyz converts to CIE-XYZ with the D65 white point.
func (c A98RgbLinear) ToXyz() XyzD65 {
	x, y, z := a98RgbLinearToXyzD65.mul(c.R, c.G, c.B)
	return XyzD65{X: x, Y: y, Z: z}
}

// ToA98RgbLinear converts to linear-light a98-rgb.
func (c XyzD65) ToA98RgbLinear() A98RgbLinear {
	r, g, b := xyzD65ToA98RgbLinear.mul(c.X, c.Y, c.Z)
	return A98RgbLinear{R: r, G: g, B: b}
}

// ProPhotoRgb is a color in the gamma encoded prophoto-rgb color space.
type ProPhotoRgb struct {
	R, G, B Component
}

// ProPhotoRgbLinear is prophoto-rgb with no gamma encoding.
type ProPhotoRgbLinear struct {
	R, G, B Component
}

// ToLinearLight removes the piecewise 1.8 power encoding.
func (c ProPhotoRgb) ToLinearLight() ProPhotoRgbLinear {
	return ProPhotoRgbLinear{
		R: proPhotoToLinearLight(c.R),
		G: proPhotoToLinearLight(c.G),
		B: proPhotoToLinearLight(c.B),
	}
}

// ToGammaEncoded applies the piecewise 1.8 power encoding.
func (c ProPhotoRgbLinear) ToGammaEncoded() ProPhotoRgb {
	return ProPhotoRgb{
		R: proPhotoToGammaEncoded(c.R),
		G: proPhotoToGammaEncoded(c.G),
		B: proPhotoToGammaEncoded(c.B),
	}
}

// ToXyz converts to CIE-XYZ. prophoto-rgb uses the D50 white point.
func (c ProPhotoRgbLinear) ToXyz() XyzD50 {
	x, y, z := proPhotoRgbLinearToXyzD50.mul(c.R, c.G, c.B)
	return XyzD50{X: x, Y: y, Z: z}
}

// ToProPhotoRgbLinear converts to linear-light prophoto-rgb.
func (c XyzD50) ToProPhotoRgbLinear() ProPhotoRgbLinear {
	r, g, b := xyzD50ToProPhotoRgbLinear.mul(c.X, c.Y, c.Z)
	return ProPhotoRgbLinear{R: r, G: g, B: b}
}

// Rec2020 is a color in the gamma encoded rec2020 color space.
type Rec2020 struct {
	R, G, B Component
}

// Rec2020Linear is rec2020 with no gamma encoding.
type Rec2020Linear struct {
	R, G, B Component
}

// ToLinearLight removes the rec2020 transfer encoding.
func (c Rec2020) ToLinearLight() Rec2020Linear {
	return Rec2020Linear{
		R: rec2020ToLinearLight(c.R),
		G: rec2020ToLinearLight(c.G),
		B: rec2020ToLinearLight(c.B),
	}
}

// ToGammaEncoded applies the rec2020 transfer encoding.
func (c Rec2020Linear) ToGammaEncoded() Rec2020 {
	return Rec2020{
		R: rec2020ToGammaEncoded(c.R),
		G: rec2020ToGammaEncoded(c.G),
		B: rec2020ToGammaEncoded(c.B),
	}
}

// ToXyz converts to CIE-XYZ with the D65 white point.
func (c Rec2020Linear) ToXyz() XyzD65 {
	x, y, z := rec2020LinearToXyzD65.mul(c.R, c.G, c.B)
	return XyzD65{X: x, Y: y, Z: z}
}

// ToRec2020Linear converts to linear-light rec2020.
func (c XyzD65) ToRec2020Linear() Rec2020Linear {
	r, g, b := xyzD65ToRec2020Linear.mul(c.X, c.Y, c.Z)
	return Rec2020Linear{R: r, G: g, B: b}
}
