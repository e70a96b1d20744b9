package cli

import (
	"math"
	"testing"

	"github.com/maax3v3/csscolor"
)

func TestParseColorSpec(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		c, err := ParseColorSpec("srgb:1,0,0.5")
		if err != nil {
			t.Fatal(err)
		}
		if c.Space != csscolor.SpaceSrgb {
			t.Fatalf("space = %v", c.Space)
		}
		if c.Components != (csscolor.Components{1, 0, 0.5}) {
			t.Fatalf("components = %v", c.Components)
		}
		if a, ok := c.AlphaComponent(); !ok || a != 1 {
			t.Fatalf("alpha = %v, %v; want default 1", a, ok)
		}
	})

	t.Run("with alpha", func(t *testing.T) {
		c, err := ParseColorSpec("oklch:0.7,0.2,30,0.5")
		if err != nil {
			t.Fatal(err)
		}
		if a, ok := c.AlphaComponent(); !ok || a != 0.5 {
			t.Fatalf("alpha = %v, %v", a, ok)
		}
	})

	t.Run("none is missing", func(t *testing.T) {
		c, err := ParseColorSpec("hsl:none,0.5,0.5,none")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := c.C0(); ok {
			t.Fatal("expected hue to be missing")
		}
		if _, ok := c.AlphaComponent(); ok {
			t.Fatal("expected alpha to be missing")
		}
	})

	t.Run("spaces allowed around parts", func(t *testing.T) {
		c, err := ParseColorSpec("display-p3: 1, 0.5 , 0")
		if err != nil {
			t.Fatal(err)
		}
		if c.Space != csscolor.SpaceDisplayP3 {
			t.Fatalf("space = %v", c.Space)
		}
	})

	t.Run("negative and scientific numbers", func(t *testing.T) {
		c, err := ParseColorSpec("lab:56.6,-39.2,5.7e1")
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(c.Components[2]-57) > 1e-12 {
			t.Fatalf("components = %v", c.Components)
		}
	})

	errors := []struct {
		name string
		spec string
	}{
		{"missing colon", "srgb 1,0,0"},
		{"unknown space", "cmyk:0,0,0"},
		{"too few components", "srgb:1,0"},
		{"too many components", "srgb:1,0,0,1,0"},
		{"bad number", "srgb:one,0,0"},
	}
	for _, tt := range errors {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseColorSpec(tt.spec); err == nil {
				t.Fatalf("expected error for %q", tt.spec)
			}
		})
	}
}
