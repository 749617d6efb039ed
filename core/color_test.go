package core

import (
	"math"
	"testing"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		dst   RGB
		src   RGB
		alpha float64
		want  RGB
	}{
		{"zero alpha keeps dst", RGBBlack, RGBWhite, 0.0, RGBBlack},
		{"full alpha takes src", RGBBlack, RGBWhite, 1.0, RGBWhite},
		{"half blend", RGBBlack, RGB{200, 100, 50}, 0.5, RGB{100, 50, 25}},
		{"negative alpha clamps to dst", RGBRed, RGBBlue, -0.5, RGBRed},
		{"excess alpha clamps to src", RGBRed, RGBBlue, 1.5, RGBBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dst.Blend(tt.src, tt.alpha)
			if got != tt.want {
				t.Errorf("Blend(%v, %v) = %v, want %v", tt.src, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		c      RGB
		factor float64
		want   RGB
	}{
		{"zero factor goes black", RGBWhite, 0.0, RGBBlack},
		{"negative factor goes black", RGBWhite, -1.0, RGBBlack},
		{"unit factor identity", RGB{10, 20, 30}, 1.0, RGB{10, 20, 30}},
		{"half factor", RGB{200, 100, 50}, 0.5, RGB{100, 50, 25}},
		{"factor above one identity", RGB{10, 20, 30}, 2.0, RGB{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Scale(tt.factor)
			if got != tt.want {
				t.Errorf("%v.Scale(%v) = %v, want %v", tt.c, tt.factor, got, tt.want)
			}
		})
	}
}

func TestBoost(t *testing.T) {
	tests := []struct {
		name   string
		c      RGB
		factor float64
		want   RGB
	}{
		{"unit factor identity", RGB{100, 100, 100}, 1.0, RGB{100, 100, 100}},
		{"below one identity", RGB{100, 100, 100}, 0.5, RGB{100, 100, 100}},
		{"clamps at white", RGB{200, 200, 200}, 2.0, RGBWhite},
		{"doubles within range", RGB{50, 60, 70}, 2.0, RGB{100, 120, 140}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Boost(tt.factor)
			if got != tt.want {
				t.Errorf("%v.Boost(%v) = %v, want %v", tt.c, tt.factor, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB
		h, s, l float64
	}{
		{"black", RGBBlack, 0, 0, 0},
		{"white", RGBWhite, 0, 0, 1},
		{"red", RGBRed, 0, 1, 0.5},
		{"green", RGBGreen, 120, 1, 0.5},
		{"blue", RGBBlue, 240, 1, 0.5},
		{"mid gray is achromatic", RGB{128, 128, 128}, 0, 0, 128.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.c)
			if math.Abs(h-tt.h) > 0.01 || math.Abs(s-tt.s) > 0.01 || math.Abs(l-tt.l) > 0.01 {
				t.Errorf("RGBToHSL(%v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.c, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

func TestHSLToRGB_Primaries(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    RGB
	}{
		{"red", 0, 1, 0.5, RGBRed},
		{"green", 120, 1, 0.5, RGBGreen},
		{"blue", 240, 1, 0.5, RGBBlue},
		{"yellow", 60, 1, 0.5, RGBYellow},
		{"gray skips chroma path", 123, 0, 0.5, RGB{128, 128, 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSLToRGB(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("HSLToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

// Every sampled 24-bit color must survive RGB -> HSL -> RGB within one
// step per channel.
func TestHSLRoundTrip(t *testing.T) {
	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d >= -1 && d <= 1
	}

	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				h, s, l := RGBToHSL(in)
				out := HSLToRGB(h, s, l)
				if !within(in.R, out.R) || !within(in.G, out.G) || !within(in.B, out.B) {
					t.Fatalf("round trip %v -> (%v, %v, %v) -> %v drifted more than 1", in, h, s, l, out)
				}
			}
		}
	}
}
