package core

// AnimationSpeed scales every time-based effect. Each speed maps to a fixed
// table of periods consumed by the animation engine and the backgrounds.
type AnimationSpeed uint8

const (
	SpeedSlow AnimationSpeed = iota
	SpeedMedium
	SpeedFast
)

var allSpeeds = []AnimationSpeed{SpeedSlow, SpeedMedium, SpeedFast}

// Next cycles to the following speed
func (s AnimationSpeed) Next() AnimationSpeed {
	return allSpeeds[(speedIndex(s)+1)%len(allSpeeds)]
}

// Prev cycles to the preceding speed
func (s AnimationSpeed) Prev() AnimationSpeed {
	idx := speedIndex(s)
	if idx == 0 {
		idx = len(allSpeeds)
	}
	return allSpeeds[idx-1]
}

func speedIndex(s AnimationSpeed) int {
	for i, v := range allSpeeds {
		if v == s {
			return i
		}
	}
	return 0
}

// ShiftCycleMS is the full hue rotation period for the shifting animation
func (s AnimationSpeed) ShiftCycleMS() int64 {
	switch s {
	case SpeedSlow:
		return 30000
	case SpeedFast:
		return 5000
	default:
		return 15000
	}
}

// PulsePeriodMS is the brightness oscillation period for pulsing
func (s AnimationSpeed) PulsePeriodMS() int64 {
	switch s {
	case SpeedSlow:
		return 3000
	case SpeedFast:
		return 750
	default:
		return 1500
	}
}

// WavePeriodMS is the traveling-wave period
func (s AnimationSpeed) WavePeriodMS() int64 {
	switch s {
	case SpeedSlow:
		return 4000
	case SpeedFast:
		return 1000
	default:
		return 2000
	}
}

// FlashDecayMS is the reactive flash decay window
func (s AnimationSpeed) FlashDecayMS() int64 {
	switch s {
	case SpeedSlow:
		return 800
	case SpeedFast:
		return 200
	default:
		return 400
	}
}

// TwinklePeriodMS is the starfield re-roll period
func (s AnimationSpeed) TwinklePeriodMS() int64 {
	switch s {
	case SpeedSlow:
		return 500
	case SpeedFast:
		return 150
	default:
		return 300
	}
}

// MatrixFallSpeed is the global rain fall-speed multiplier
func (s AnimationSpeed) MatrixFallSpeed() float64 {
	switch s {
	case SpeedSlow:
		return 0.5
	case SpeedFast:
		return 2.0
	default:
		return 1.0
	}
}

// GradientScrollMS is the gradient wave scroll period
func (s AnimationSpeed) GradientScrollMS() int64 {
	switch s {
	case SpeedSlow:
		return 5000
	case SpeedFast:
		return 1500
	default:
		return 3000
	}
}

// String returns the stable config token for the speed
func (s AnimationSpeed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "medium"
	}
}

// DisplayName returns the label shown in the settings overlay
func (s AnimationSpeed) DisplayName() string {
	switch s {
	case SpeedSlow:
		return "Slow"
	case SpeedFast:
		return "Fast"
	default:
		return "Medium"
	}
}

// ParseAnimationSpeed maps a config token back to a speed, defaulting to medium
func ParseAnimationSpeed(s string) AnimationSpeed {
	for _, v := range allSpeeds {
		if v.String() == s {
			return v
		}
	}
	return SpeedMedium
}
