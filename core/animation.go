package core

import "math"

// AnimationStyle transforms the base glyph color over time
type AnimationStyle uint8

const (
	AnimNone AnimationStyle = iota
	AnimShifting
	AnimPulsing
	AnimWave
	AnimReactive
)

var allAnimations = []AnimationStyle{
	AnimNone,
	AnimShifting,
	AnimPulsing,
	AnimWave,
	AnimReactive,
}

// Next cycles to the following animation style
func (a AnimationStyle) Next() AnimationStyle {
	return allAnimations[(animIndex(a)+1)%len(allAnimations)]
}

// Prev cycles to the preceding animation style
func (a AnimationStyle) Prev() AnimationStyle {
	idx := animIndex(a)
	if idx == 0 {
		idx = len(allAnimations)
	}
	return allAnimations[idx-1]
}

func animIndex(a AnimationStyle) int {
	for i, v := range allAnimations {
		if v == a {
			return i
		}
	}
	return 0
}

// String returns the stable config token for the style
func (a AnimationStyle) String() string {
	switch a {
	case AnimShifting:
		return "shifting"
	case AnimPulsing:
		return "pulsing"
	case AnimWave:
		return "wave"
	case AnimReactive:
		return "reactive"
	default:
		return "none"
	}
}

// DisplayName returns the label shown in the settings overlay
func (a AnimationStyle) DisplayName() string {
	switch a {
	case AnimShifting:
		return "Shifting"
	case AnimPulsing:
		return "Pulsing"
	case AnimWave:
		return "Wave"
	case AnimReactive:
		return "Reactive"
	default:
		return "None"
	}
}

// ParseAnimationStyle maps a config token back to a style, defaulting to none
func ParseAnimationStyle(s string) AnimationStyle {
	for _, v := range allAnimations {
		if v.String() == s {
			return v
		}
	}
	return AnimNone
}

// ApplyAnimation perturbs a base color for the glyph cell at column x of a
// width-column block. elapsedMS is the shared per-frame animation clock and
// flash is the reactive stimulus in [0,1]. Pure: identical inputs always
// produce identical output.
func ApplyAnimation(base RGB, style AnimationStyle, speed AnimationSpeed, elapsedMS int64, x, width int, flash float64) RGB {
	switch style {
	case AnimShifting:
		return applyShifting(base, elapsedMS, speed)
	case AnimPulsing:
		return applyPulsing(base, elapsedMS, speed)
	case AnimWave:
		return applyWave(base, elapsedMS, speed, x, width)
	case AnimReactive:
		return applyReactive(base, flash)
	default:
		return base
	}
}

// applyShifting rotates the hue over one full turn per cycle
func applyShifting(c RGB, elapsedMS int64, speed AnimationSpeed) RGB {
	h, s, l := RGBToHSL(c)

	cycle := speed.ShiftCycleMS()
	offset := float64(elapsedMS%cycle) / float64(cycle) * 360.0
	h = math.Mod(h+offset, 360.0)

	return HSLToRGB(h, s, l)
}

// applyPulsing oscillates brightness, floored at 30% to stay visible
func applyPulsing(c RGB, elapsedMS int64, speed AnimationSpeed) RGB {
	period := speed.PulsePeriodMS()
	phase := float64(elapsedMS%period) / float64(period)
	brightness := 0.5 + 0.5*math.Sin(phase*2.0*math.Pi)

	return c.Scale(0.3 + 0.7*brightness)
}

// applyWave runs a brightness wave across the glyph block
func applyWave(c RGB, elapsedMS int64, speed AnimationSpeed, x, width int) RGB {
	period := speed.WavePeriodMS()
	timePhase := float64(elapsedMS%period) / float64(period)
	xPhase := progressAt(x, width)

	wave := math.Sin((xPhase + timePhase) * 2.0 * math.Pi)
	return c.Scale(0.6 + 0.4*wave)
}

// applyReactive boosts brightness by the decaying flash stimulus
func applyReactive(c RGB, flash float64) RGB {
	return c.Boost(1.0 + flash)
}

// IsColonVisible gates the colon blink: on for the first half of every
// second, independent of animation speed.
func IsColonVisible(elapsedMS int64) bool {
	return elapsedMS%1000 < 500
}
