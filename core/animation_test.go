package core

import "testing"

func TestApplyAnimationNoneIdentity(t *testing.T) {
	base := RGB{10, 200, 77}
	for _, elapsed := range []int64{0, 123, 99999} {
		got := ApplyAnimation(base, AnimNone, SpeedMedium, elapsed, 3, 40, 0.5)
		if got != base {
			t.Errorf("AnimNone at %dms = %v, want %v", elapsed, got, base)
		}
	}
}

func TestApplyAnimationDeterministic(t *testing.T) {
	base := RGBCyan
	for _, style := range allAnimations {
		a := ApplyAnimation(base, style, SpeedFast, 1234, 7, 40, 0.4)
		b := ApplyAnimation(base, style, SpeedFast, 1234, 7, 40, 0.4)
		if a != b {
			t.Errorf("%v not deterministic: %v vs %v", style, a, b)
		}
	}
}

func TestShiftingFullCycleReturns(t *testing.T) {
	base := RGBRed
	cycle := SpeedMedium.ShiftCycleMS()

	start := ApplyAnimation(base, AnimShifting, SpeedMedium, 0, 0, 1, 0)
	wrapped := ApplyAnimation(base, AnimShifting, SpeedMedium, cycle, 0, 1, 0)
	if start != wrapped {
		t.Errorf("hue after full cycle %v, want %v", wrapped, start)
	}

	// Half cycle of a pure red lands near cyan (hue +180)
	half := ApplyAnimation(base, AnimShifting, SpeedMedium, cycle/2, 0, 1, 0)
	if half.R > 5 || half.G < 250 || half.B < 250 {
		t.Errorf("half cycle from red = %v, want near cyan", half)
	}
}

func TestPulsingBounds(t *testing.T) {
	base := RGB{200, 200, 200}
	period := SpeedMedium.PulsePeriodMS()

	for ms := int64(0); ms < period; ms += period / 20 {
		got := ApplyAnimation(base, AnimPulsing, SpeedMedium, ms, 0, 1, 0)
		// Brightness floor is 30% of base
		if got.R < uint8(float64(base.R)*0.3)-1 {
			t.Fatalf("pulse at %dms dimmed below floor: %v", ms, got)
		}
		if got.R > base.R {
			t.Fatalf("pulse at %dms brightened above base: %v", ms, got)
		}
	}
}

func TestWaveBounds(t *testing.T) {
	base := RGB{250, 250, 250}
	for x := 0; x < 40; x++ {
		got := ApplyAnimation(base, AnimWave, SpeedMedium, 500, x, 40, 0)
		// Scale range is [0.2, 1.0]
		if got.R < uint8(float64(base.R)*0.2)-1 {
			t.Fatalf("wave at column %d dimmed below range: %v", x, got)
		}
	}
	// Zero width must not panic
	_ = ApplyAnimation(base, AnimWave, SpeedMedium, 500, 0, 0, 0)
}

func TestReactiveBoost(t *testing.T) {
	tests := []struct {
		name  string
		base  RGB
		flash float64
		want  RGB
	}{
		{"no stimulus identity", RGB{100, 50, 25}, 0, RGB{100, 50, 25}},
		{"full stimulus doubles", RGB{100, 50, 25}, 1.0, RGB{200, 100, 50}},
		{"clamps at white", RGB{200, 200, 200}, 1.0, RGBWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyAnimation(tt.base, AnimReactive, SpeedMedium, 0, 0, 1, tt.flash)
			if got != tt.want {
				t.Errorf("reactive(%v, %v) = %v, want %v", tt.base, tt.flash, got, tt.want)
			}
		})
	}
}

func TestAnimationCycleInverse(t *testing.T) {
	for _, a := range allAnimations {
		if got := a.Next().Prev(); got != a {
			t.Errorf("animation %v: Next().Prev() = %v", a, got)
		}
	}
	for _, s := range allSpeeds {
		if got := s.Next().Prev(); got != s {
			t.Errorf("speed %v: Next().Prev() = %v", s, got)
		}
	}
	for _, b := range allBackgrounds {
		if got := b.Next().Prev(); got != b {
			t.Errorf("background %v: Next().Prev() = %v", b, got)
		}
	}
}

func TestIsColonVisible(t *testing.T) {
	tests := []struct {
		ms   int64
		want bool
	}{
		{0, true},
		{499, true},
		{500, false},
		{999, false},
		{1000, true},
		{1500, false},
	}
	for _, tt := range tests {
		if got := IsColonVisible(tt.ms); got != tt.want {
			t.Errorf("IsColonVisible(%d) = %v, want %v", tt.ms, got, tt.want)
		}
	}
}

func TestEnumTokenRoundTrips(t *testing.T) {
	for _, a := range allAnimations {
		if got := ParseAnimationStyle(a.String()); got != a {
			t.Errorf("ParseAnimationStyle(%q) = %v, want %v", a.String(), got, a)
		}
	}
	for _, s := range allSpeeds {
		if got := ParseAnimationSpeed(s.String()); got != s {
			t.Errorf("ParseAnimationSpeed(%q) = %v, want %v", s.String(), got, s)
		}
	}
	for _, b := range allBackgrounds {
		if got := ParseBackgroundStyle(b.String()); got != b {
			t.Errorf("ParseBackgroundStyle(%q) = %v, want %v", b.String(), got, b)
		}
	}
	for _, f := range []TimeFormat{FormatTwentyFourHour, FormatTwelveHour} {
		if got := ParseTimeFormat(f.String()); got != f {
			t.Errorf("ParseTimeFormat(%q) = %v, want %v", f.String(), got, f)
		}
		if got := f.Toggle().Toggle(); got != f {
			t.Errorf("%v: double toggle = %v", f, got)
		}
	}

	if got := ParseAnimationSpeed("warp"); got != SpeedMedium {
		t.Errorf("unknown speed should default to medium, got %v", got)
	}
	if got := ParseAnimationStyle("sparkle"); got != AnimNone {
		t.Errorf("unknown style should default to none, got %v", got)
	}
}
