package csscolor

import (
	"math"
	"testing"
)

const componentTolerance = 1.0e-5

func componentsNear(t *testing.T, got Color, want Components, tolerance Component) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got.Components[i]-want[i]) > tolerance {
			t.Fatalf("component %d: got %v, want %v (color %v)", i, got.Components[i], want[i], got.Components)
		}
	}
}

// The same chocolate tone expressed in every supported space.
var chocolate = map[Space]Components{
	SpaceSrgb:        {0.82352941, 0.41176471, 0.11764706},
	SpaceHsl:         {25.0, 0.75, 0.47058824},
	SpaceHwb:         {25.0, 0.11764706, 0.17647059},
	SpaceLab:         {56.62930022, 39.23708020, 57.55376917},
	SpaceLch:         {56.62930022, 69.65619002, 55.71592715},
	SpaceOklab:       {0.63439842, 0.09907391, 0.11919316},
	SpaceOklch:       {0.63439842, 0.15499242, 50.26648308},
	SpaceSrgbLinear:  {0.64447968, 0.14126329, 0.01298303},
	SpaceDisplayP3:   {0.77056903, 0.43401475, 0.19984926},
	SpaceA98Rgb:      {0.73040524, 0.41068841, 0.16200485},
	SpaceProPhotoRgb: {0.59231119, 0.39414858, 0.16428630},
	SpaceRec2020:     {0.66926598, 0.40190046, 0.14271567},
	SpaceXyzD50:      {0.33730087, 0.24544919, 0.03195887},
	SpaceXyzD65:      {0.31863422, 0.23900588, 0.04163696},
}

func TestToSpace(t *testing.T) {
	for from, fromComponents := range chocolate {
		for to, toComponents := range chocolate {
			from, to := from, to
			source := New(from, fromComponents[0], fromComponents[1], fromComponents[2], 1)
			t.Run(from.String()+" to "+to.String(), func(t *testing.T) {
				got := source.ToSpace(to)
				if got.Space != to {
					t.Fatalf("space = %v, want %v", got.Space, to)
				}
				componentsNear(t, got, toComponents, componentTolerance)
			})
		}
	}
}

func TestToSpaceSameSpaceIsIdentity(t *testing.T) {
	c := New(SpaceOklch, 0.7, 0.2, 30, 0.5)
	if got := c.ToSpace(SpaceOklch); got != c {
		t.Fatalf("got %+v, want %+v", got, c)
	}

	// Flags survive an identity conversion too.
	m := New(SpaceOklch, 0.7, None, 30, 0.5)
	got := m.ToSpace(SpaceOklch)
	if got.Flags != m.Flags || got.Space != m.Space || got.Alpha != m.Alpha {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}

func TestToSpaceMaintainsAlpha(t *testing.T) {
	c := New(SpaceSrgb, 0.2, 0.4, 0.6, 0.25)
	for _, space := range Spaces() {
		got := c.ToSpace(space)
		if a, ok := got.AlphaComponent(); !ok || a != 0.25 {
			t.Fatalf("%v: alpha = %v, %v", space, a, ok)
		}
	}

	missing := New(SpaceSrgb, 0.2, 0.4, 0.6, None)
	for _, space := range Spaces() {
		if _, ok := missing.ToSpace(space).AlphaComponent(); ok {
			t.Fatalf("%v: missing alpha was dropped", space)
		}
	}
}

func TestAchromaticHueIsMissing(t *testing.T) {
	t.Run("gray to hsl", func(t *testing.T) {
		got := New(SpaceSrgb, 0.5, 0.5, 0.5, 1).ToSpace(SpaceHsl)
		if _, ok := got.C0(); ok {
			t.Fatal("expected the hue of a gray to be missing")
		}
	})

	t.Run("oklab without chroma to oklch", func(t *testing.T) {
		got := New(SpaceOklab, 0.5, 0, 0, 1).ToSpace(SpaceOklch)
		if _, ok := got.C2(); ok {
			t.Fatal("expected the hue to be missing")
		}
		if v, ok := got.C1(); !ok || v != 0 {
			t.Fatalf("chroma = %v, %v", v, ok)
		}
	})
}

func TestMissingComponentsBehaveAsZero(t *testing.T) {
	t.Run("hsl with missing hue and saturation is white at full lightness", func(t *testing.T) {
		got := New(SpaceHsl, None, None, 1, 1).ToSpace(SpaceSrgb)
		componentsNear(t, got, Components{1, 1, 1}, componentTolerance)
		for i := 0; i < 3; i++ {
			if got.Flags.Contains(componentFlag(i)) {
				t.Fatalf("component %d should be present", i)
			}
		}
	})

	t.Run("all missing hsl is black", func(t *testing.T) {
		got := New(SpaceHsl, None, None, None, 1).ToSpace(SpaceSrgb)
		componentsNear(t, got, Components{0, 0, 0}, componentTolerance)
	})

	t.Run("lch with missing hue converts like hue zero", func(t *testing.T) {
		missingHue := New(SpaceLch, 56.0, 30.0, None, 1).ToSpace(SpaceSrgb)
		zeroHue := New(SpaceLch, 56.0, 30.0, 0, 1).ToSpace(SpaceSrgb)
		componentsNear(t, missingHue, zeroHue.Components, componentTolerance)
	})
}

func TestAnalogousMissingComponents(t *testing.T) {
	tests := []struct {
		name string
		from Color
		to   Space
		want Flags
	}{
		{
			name: "red carries between rgb spaces",
			from: New(SpaceSrgb, None, 0.5, 0.5, 1),
			to:   SpaceDisplayP3,
			want: FlagC0Missing,
		},
		{
			name: "red does not carry to hsl",
			from: New(SpaceSrgb, None, 0.5, 0.5, 1),
			to:   SpaceHsl,
			want: 0,
		},
		{
			name: "red does not carry to xyz",
			from: New(SpaceSrgb, None, 0.5, 0.5, 1),
			to:   SpaceXyzD65,
			want: 0,
		},
		{
			name: "x carries between white points",
			from: New(SpaceXyzD50, None, 0.2, 0.3, 1),
			to:   SpaceXyzD65,
			want: FlagC0Missing,
		},
		{
			name: "hsl hue carries to oklch hue",
			from: New(SpaceHsl, None, 0.5, 0.5, 1),
			to:   SpaceOklch,
			want: FlagC2Missing,
		},
		{
			name: "oklch hue carries to hwb hue",
			from: New(SpaceOklch, 0.7, 0.1, None, 1),
			to:   SpaceHwb,
			want: FlagC0Missing,
		},
		{
			name: "hsl saturation carries to lch chroma",
			from: New(SpaceHsl, 120, None, 0.5, 1),
			to:   SpaceLch,
			want: FlagC1Missing,
		},
		{
			name: "hsl lightness carries to lab lightness",
			from: New(SpaceHsl, 120, 0.5, None, 1),
			to:   SpaceLab,
			want: FlagC0Missing,
		},
		{
			name: "lab lightness carries to hsl lightness",
			from: New(SpaceLab, None, 20, 20, 1),
			to:   SpaceHsl,
			want: FlagC2Missing,
		},
		{
			name: "opponent axes carry between lab and oklab",
			from: New(SpaceLab, 50, None, None, 1),
			to:   SpaceOklab,
			want: FlagC1Missing | FlagC2Missing,
		},
		{
			name: "opponent axes do not carry to polar forms",
			from: New(SpaceLab, 50, None, None, 1),
			to:   SpaceOklch,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.ToSpace(tt.to).Flags &^ FlagAlphaMissing
			// Conversion math may add its own missing flags (an achromatic
			// hue), so require at least the carried flags.
			if got&tt.want != tt.want {
				t.Fatalf("flags = %b, want at least %b", got, tt.want)
			}
			carried := analogousMissingComponents(tt.from.Space, tt.to, tt.from.Flags)
			if carried != tt.want {
				t.Fatalf("carried = %b, want %b", carried, tt.want)
			}
		})
	}
}

func TestRoundTripThroughBase(t *testing.T) {
	for _, space := range Spaces() {
		c := chocolate[space]
		source := New(space, c[0], c[1], c[2], 1)
		got := source.ToSpace(SpaceXyzD65).ToSpace(space)
		componentsNear(t, got, c, componentTolerance)
	}
}
