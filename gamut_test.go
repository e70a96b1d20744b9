package csscolor

import (
	"math"
	"testing"
)

func TestMapIntoGamutLimits(t *testing.T) {
	t.Run("display-p3 yellow into srgb", func(t *testing.T) {
		yellow := New(SpaceDisplayP3, 1, 1, 0, 1)
		mapped := yellow.ToSpace(SpaceSrgb).MapIntoGamutLimits()
		if mapped.Space != SpaceSrgb {
			t.Fatalf("space = %v", mapped.Space)
		}
		componentsNear(t, mapped, Components{0.9962327282577411, 0.9990142856519192, 0.0}, 1.0e-6)
	})

	t.Run("display-p3 red into srgb", func(t *testing.T) {
		red := New(SpaceDisplayP3, 1, 0, 0, 1)
		mapped := red.ToSpace(SpaceSrgb).MapIntoGamutLimits()
		componentsNear(t, mapped, Components{1.0, 0.044567645, 0.045930468}, 1.0e-4)
	})

	t.Run("in gamut color is unchanged", func(t *testing.T) {
		c := New(SpaceSrgb, 0.2, 0.4, 0.6, 0.5)
		if got := c.MapIntoGamutLimits(); got != c {
			t.Fatalf("got %+v, want %+v", got, c)
		}
	})

	t.Run("unlimited spaces are unchanged", func(t *testing.T) {
		for _, space := range []Space{SpaceLab, SpaceLch, SpaceOklab, SpaceOklch, SpaceXyzD50, SpaceXyzD65} {
			c := New(space, 200, 500, -400, 1)
			if got := c.MapIntoGamutLimits(); got != c {
				t.Fatalf("%v: got %+v, want %+v", space, got, c)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := New(SpaceDisplayP3, 1, 1, 0, 1).ToSpace(SpaceSrgb).MapIntoGamutLimits()
		twice := once.MapIntoGamutLimits()
		if once != twice {
			t.Fatalf("mapping twice changed the color: %+v vs %+v", once, twice)
		}
	})

	t.Run("result is in gamut", func(t *testing.T) {
		out := []Color{
			New(SpaceSrgb, 1.2, -0.1, 0.5, 1),
			New(SpaceRec2020, 1, 0, 0, 1).ToSpace(SpaceSrgb),
			New(SpaceRec2020, 0, 1, 0.2, 1).ToSpace(SpaceDisplayP3),
		}
		for _, c := range out {
			mapped := c.MapIntoGamutLimits()
			if !mapped.InGamut() {
				t.Fatalf("mapped color out of gamut: %+v", mapped)
			}
			if mapped.Space != c.Space {
				t.Fatalf("space changed from %v to %v", c.Space, mapped.Space)
			}
		}
	})

	t.Run("hsl maps via the srgb gamut", func(t *testing.T) {
		mapped := New(SpaceHsl, 120, 1.5, 0.5, 1).MapIntoGamutLimits()
		if mapped.Space != SpaceHsl {
			t.Fatalf("space = %v", mapped.Space)
		}
		srgb := mapped.ToSpace(SpaceSrgb)
		for i, v := range srgb.Components {
			if v < -0.01 || v > 1.01 {
				t.Fatalf("component %d = %v, expected close to the srgb gamut", i, v)
			}
		}
	})

	t.Run("very light maps to white", func(t *testing.T) {
		mapped := New(SpaceSrgb, 3, 3, 3, 0.5).MapIntoGamutLimits()
		componentsNear(t, mapped, Components{1, 1, 1}, 0)
		if a, ok := mapped.AlphaComponent(); !ok || a != 0.5 {
			t.Fatalf("alpha = %v, %v", a, ok)
		}
	})

	t.Run("very dark maps to black", func(t *testing.T) {
		mapped := New(SpaceSrgb, -0.5, -0.5, -0.5, 1).MapIntoGamutLimits()
		componentsNear(t, mapped, Components{0, 0, 0}, 0)
	})
}

func TestInGamut(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  bool
	}{
		{"srgb inside", New(SpaceSrgb, 0, 0.5, 1, 1), true},
		{"srgb above range", New(SpaceSrgb, 1.01, 0.5, 0.5, 1), false},
		{"srgb below range", New(SpaceSrgb, 0.5, -0.01, 0.5, 1), false},
		{"lab is unlimited", New(SpaceLab, 500, 500, 500, 1), true},
		{"hsl defers to srgb", New(SpaceHsl, 120, 1.5, 0.5, 1), false},
		{"hwb inside", New(SpaceHwb, 40, 0.3, 0.4, 1), true},
		{"missing component behaves as zero", New(SpaceSrgb, None, 0.5, 0.5, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.InGamut(); got != tt.want {
				t.Fatalf("InGamut() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClip(t *testing.T) {
	c := New(SpaceSrgb, 1.5, -0.25, 0.5, 1).Clip()
	componentsNear(t, c, Components{1, 0, 0.5}, 0)

	missing := New(SpaceSrgb, None, 2, 0.5, 1).Clip()
	if _, ok := missing.C0(); ok {
		t.Fatal("clip should preserve missing components")
	}
	if v, _ := missing.C1(); v != 1 {
		t.Fatalf("C1 = %v, want 1", v)
	}
}

func TestDeltaEOK(t *testing.T) {
	white := New(SpaceSrgb, 1, 1, 1, 1)
	black := New(SpaceSrgb, 0, 0, 0, 1)

	if d := DeltaEOK(white, white); d != 0 {
		t.Fatalf("identical colors should have zero delta, got %v", d)
	}
	if d := DeltaEOK(white, black); math.Abs(d-1) > 1.0e-6 {
		t.Fatalf("white to black delta = %v, want 1", d)
	}
	// Symmetric.
	a := New(SpaceSrgb, 0.8, 0.4, 0.1, 1)
	b := New(SpaceOklch, 0.6, 0.1, 200, 1)
	if math.Abs(DeltaEOK(a, b)-DeltaEOK(b, a)) > 1.0e-12 {
		t.Fatal("delta should be symmetric")
	}
}
