package models

// matrix is a row-major 3x3 transform. mul computes the matrix-vector
// product, so the constants below read exactly like the CSS Color 4
// conversion matrices.
type matrix [3][3]Component

func (m *matrix) mul(a, b, c Component) (Component, Component, Component) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

var (
	srgbLinearToXyzD65 = matrix{
		{0.4123907992659595, 0.35758433938387796, 0.1804807884018343},
		{0.21263900587151036, 0.7151686787677559, 0.07219231536073371},
		{0.01933081871559185, 0.11919477979462599, 0.9505321522496606},
	}
	xyzD65ToSrgbLinear = matrix{
		{3.2409699419045213, -1.5373831775700935, -0.4986107602930033},
		{-0.9692436362808798, 1.8759675015077206, 0.04155505740717561},
		{0.05563007969699361, -0.20397695888897657, 1.0569715142428786},
	}

	displayP3LinearToXyzD65 = matrix{
		{0.48657094864821626, 0.26566769316909294, 0.1982172852343625},
		{0.22897456406974884, 0.6917385218365062, 0.079286914093745},
		{0.0, 0.045113381858902575, 1.0439443689009757},
	}
	xyzD65ToDisplayP3Linear = matrix{
		{2.4934969119414245, -0.9313836179191236, -0.40271078445071684},
		{-0.829488969561575, 1.7626640603183468, 0.02362468584194359},
		{0.035845830243784335, -0.07617238926804171, 0.9568845240076873},
	}

	a98RgbLinearToXyzD65 = matrix{
		{0.5766690429101308, 0.18555823790654627, 0.18822864623499472},
		{0.29734497525053616, 0.627363566255466, 0.07529145849399789},
		{0.027031361386412378, 0.07068885253582714, 0.9913375368376389},
	}
	xyzD65ToA98RgbLinear = matrix{
		{2.041587903810746, -0.5650069742788596, -0.3447313507783295},
		{-0.9692436362808798, 1.8759675015077206, 0.04155505740717561},
		{0.013444280632031024, -0.11836239223101824, 1.0151749943912054},
	}

	proPhotoRgbLinearToXyzD50 = matrix{
		{0.7977604896723027, 0.13518583717574031, 0.0313493495815248},
		{0.2880711282292934, 0.7118432178101014, 0.00008565396060525902},
		{0.0, 0.0, 0.8251046025104601},
	}
	xyzD50ToProPhotoRgbLinear = matrix{
		{1.3457989731028281, -0.25558010007997534, -0.05110628506753401},
		{-0.5446224939028347, 1.5082327413132781, 0.02053603239147973},
		{0.0, 0.0, 1.2119675456389454},
	}

	rec2020LinearToXyzD65 = matrix{
		{0.6369580483012913, 0.14461690358620838, 0.16888097516417205},
		{0.26270021201126703, 0.677998071518871, 0.059301716469861945},
		{0.0, 0.028072693049087508, 1.0609850577107909},
	}
	xyzD65ToRec2020Linear = matrix{
		{1.7166511879712676, -0.3556707837763924, -0.2533662813736598},
		{-0.666684351832489, 1.616481236634939, 0.01576854581391113},
		{0.017639857445310915, -0.042770613257808655, 0.942103121235474},
	}

	// Bradford chromatic adaptation between the D65 and D50 white points.
	// xyzD50ToXyzD65 is the exact float64 inverse of xyzD65ToXyzD50 so
	// that a transfer round trip is the identity; keep the pair in sync.
	xyzD65ToXyzD50 = matrix{
		{1.0479298208405488, 0.022946793341019088, -0.05019222954313557},
		{0.029627815688159344, 0.990434484573249, -0.01707382502938514},
		{-0.009243058152591178, 0.015055144896577895, 0.7518742899580008},
	}
	xyzD50ToXyzD65 = matrix{
		{0.95547339420489774, -0.023098374726038651, 0.063259194989114961},
		{-0.028369712866394441, 1.0099953374555604, 0.02104147560735432},
		{0.012314034948960153, -0.02050758481440557, 1.3303659126444372},
	}

	xyzD65ToLms = matrix{
		{0.8190224432164319, 0.3619062562801221, -0.12887378261216414},
		{0.0329836671980271, 0.9292868468965546, 0.03614466816999844},
		{0.048177199566046255, 0.26423952494422764, 0.6335478258136937},
	}
	lmsToOklab = matrix{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabToLms = matrix{
		{0.99999999845051981432, 0.39633779217376785678, 0.21580375806075880339},
		{1.0000000088817607767, -0.1055613423236563494, -0.063854174771705903402},
		{1.0000000546724109177, -0.089484182094965759684, -1.2914855378640917399},
	}
	lmsToXyzD65 = matrix{
		{1.2268798733741557, -0.5578149965554813, 0.28139105017721583},
		{-0.04057576262431372, 1.1122868293970594, -0.07171106666151701},
		{-0.07637294974672142, -0.4214933239627914, 1.5869240244272418},
	}
)
