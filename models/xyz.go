package models

// White point chromaticities used for chromatic adaptation and Lab scaling.
var (
	whitePointD50 = [3]Component{0.9642956764295677, 1.0, 0.8251046025104602}
	whitePointD65 = [3]Component{0.9504559270516716, 1.0, 1.0890577507598784}
)

// XyzD50 is a color in CIE-XYZ with the D50 white point.
type XyzD50 struct {
	X, Y, Z Component
}

// XyzD65 is a color in CIE-XYZ with the D65 white point.
type XyzD65 struct {
	X, Y, Z Component
}

// TransferToD65 adapts the color to the D65 white point using the Bradford
// method. This is the only bridge between the two XYZ types.
func (c XyzD50) TransferToD65() XyzD65 {
	x, y, z := xyzD50ToXyzD65.mul(c.X, c.Y, c.Z)
	return XyzD65{X: x, Y: y, Z: z}
}

// TransferToD50 adapts the color to the D50 white point using the Bradford
// method.
func (c XyzD65) TransferToD50() XyzD50 {
	x, y, z := xyzD65ToXyzD50.mul(c.X, c.Y, c.Z)
	return XyzD50{X: x, Y: y, Z: z}
}
