package core

// BackgroundStyle selects the procedural pattern painted behind the clock
type BackgroundStyle uint8

const (
	BackgroundNone BackgroundStyle = iota
	BackgroundStarfield
	BackgroundMatrixRain
	BackgroundGradientWave
)

var allBackgrounds = []BackgroundStyle{
	BackgroundNone,
	BackgroundStarfield,
	BackgroundMatrixRain,
	BackgroundGradientWave,
}

// Next cycles to the following background style
func (b BackgroundStyle) Next() BackgroundStyle {
	return allBackgrounds[(backgroundIndex(b)+1)%len(allBackgrounds)]
}

// Prev cycles to the preceding background style
func (b BackgroundStyle) Prev() BackgroundStyle {
	idx := backgroundIndex(b)
	if idx == 0 {
		idx = len(allBackgrounds)
	}
	return allBackgrounds[idx-1]
}

func backgroundIndex(b BackgroundStyle) int {
	for i, v := range allBackgrounds {
		if v == b {
			return i
		}
	}
	return 0
}

// String returns the stable config token for the background style
func (b BackgroundStyle) String() string {
	switch b {
	case BackgroundStarfield:
		return "starfield"
	case BackgroundMatrixRain:
		return "matrix"
	case BackgroundGradientWave:
		return "gradient"
	default:
		return "none"
	}
}

// DisplayName returns the label shown in the settings overlay
func (b BackgroundStyle) DisplayName() string {
	switch b {
	case BackgroundStarfield:
		return "Starfield"
	case BackgroundMatrixRain:
		return "Matrix"
	case BackgroundGradientWave:
		return "Gradient"
	default:
		return "None"
	}
}

// ParseBackgroundStyle maps a config token back to a style, defaulting to none
func ParseBackgroundStyle(s string) BackgroundStyle {
	for _, v := range allBackgrounds {
		if v.String() == s {
			return v
		}
	}
	return BackgroundNone
}
