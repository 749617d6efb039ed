package core

// ColorTheme selects how clock glyphs are colored. Static themes map to one
// fixed color; dynamic themes derive the color from the glyph position.
type ColorTheme uint8

const (
	ThemeCyan ColorTheme = iota
	ThemeGreen
	ThemeWhite
	ThemeMagenta
	ThemeYellow
	ThemeRed
	ThemeBlue
	ThemeRainbow
	ThemeRainbowVertical
	ThemeGradientWarm
	ThemeGradientCool
	ThemeGradientOcean
	ThemeGradientNeon
	ThemeGradientFire
)

// allThemes is the cycling order; White deliberately sits between the other
// static themes and the dynamic ones.
var allThemes = []ColorTheme{
	ThemeCyan,
	ThemeGreen,
	ThemeMagenta,
	ThemeYellow,
	ThemeRed,
	ThemeBlue,
	ThemeWhite,
	ThemeRainbow,
	ThemeRainbowVertical,
	ThemeGradientWarm,
	ThemeGradientCool,
	ThemeGradientOcean,
	ThemeGradientNeon,
	ThemeGradientFire,
}

// rainbowColors partitions the horizontal or vertical extent into seven bands
var rainbowColors = []RGB{
	RGBRed,
	RGBOrange,
	RGBYellow,
	RGBGreen,
	RGBCyan,
	RGBBlue,
	RGBMagenta,
}

// Next cycles to the following theme
func (t ColorTheme) Next() ColorTheme {
	return allThemes[(themeIndex(t)+1)%len(allThemes)]
}

// Prev cycles to the preceding theme
func (t ColorTheme) Prev() ColorTheme {
	idx := themeIndex(t)
	if idx == 0 {
		idx = len(allThemes)
	}
	return allThemes[idx-1]
}

func themeIndex(t ColorTheme) int {
	for i, v := range allThemes {
		if v == t {
			return i
		}
	}
	return 0
}

// IsDynamic reports whether the theme needs per-character coloring
func (t ColorTheme) IsDynamic() bool {
	switch t {
	case ThemeRainbow, ThemeRainbowVertical, ThemeGradientWarm,
		ThemeGradientCool, ThemeGradientOcean, ThemeGradientNeon,
		ThemeGradientFire:
		return true
	}
	return false
}

// Color returns the flat color for static themes. Dynamic themes return a
// representative fallback for places that cannot color per character.
func (t ColorTheme) Color() RGB {
	switch t {
	case ThemeCyan:
		return RGBCyan
	case ThemeGreen:
		return RGBGreen
	case ThemeWhite:
		return RGBWhite
	case ThemeMagenta:
		return RGBMagenta
	case ThemeYellow:
		return RGBYellow
	case ThemeRed:
		return RGBRed
	case ThemeBlue:
		return RGBBlue
	case ThemeGradientWarm, ThemeGradientFire:
		return RGBRed
	case ThemeGradientCool, ThemeGradientOcean:
		return RGBCyan
	default: // Rainbow, RainbowVertical, GradientNeon
		return RGBMagenta
	}
}

// ColorAt returns the color for the glyph cell at (x, y) within a block of
// width*height cells. Static themes ignore the position.
func (t ColorTheme) ColorAt(x, y, width, height int) RGB {
	switch t {
	case ThemeRainbow:
		if width <= 0 {
			return rainbowColors[0]
		}
		return rainbowColors[(x*len(rainbowColors)/width)%len(rainbowColors)]

	case ThemeRainbowVertical:
		if height <= 0 {
			return rainbowColors[0]
		}
		return rainbowColors[(y*len(rainbowColors)/height)%len(rainbowColors)]

	case ThemeGradientWarm:
		// Red -> orange -> yellow
		progress := progressAt(x, width)
		if progress < 0.5 {
			return RGB{255, uint8(127.0 * (progress * 2.0)), 0}
		}
		return RGB{255, 127 + uint8(128.0*((progress-0.5)*2.0)), 0}

	case ThemeGradientCool:
		// Blue -> cyan -> green
		progress := progressAt(x, width)
		if progress < 0.5 {
			return RGB{0, uint8(255.0 * (progress * 2.0)), 255}
		}
		return RGB{0, 255, 255 - uint8(255.0*((progress-0.5)*2.0))}

	case ThemeGradientOcean:
		// Dark blue -> cyan -> teal
		progress := progressAt(x, width)
		if progress < 0.5 {
			return RGB{
				uint8(100.0 * (progress * 2.0)),
				uint8(150.0 + 105.0*(progress*2.0)),
				255,
			}
		}
		return RGB{100, 255, 255 - uint8(127.0*((progress-0.5)*2.0))}

	case ThemeGradientNeon:
		// Magenta -> cyan
		progress := progressAt(x, width)
		return RGB{
			255 - uint8(255.0*progress),
			uint8(255.0 * progress),
			255,
		}

	case ThemeGradientFire:
		// Dark red -> red -> orange -> yellow
		progress := progressAt(x, width)
		switch {
		case progress < 0.33:
			return RGB{128 + uint8(127.0*(progress*3.0)), 0, 0}
		case progress < 0.66:
			return RGB{255, uint8(165.0 * ((progress - 0.33) * 3.0)), 0}
		default:
			return RGB{255, clampChannel(165.0 + 90.0*((progress-0.66)*3.0)), 0}
		}

	default:
		return t.Color()
	}
}

// progressAt normalizes a column to [0,1); zero width counts as progress 0
func progressAt(x, width int) float64 {
	if width <= 0 {
		return 0
	}
	return float64(x) / float64(width)
}

// String returns the stable config token for the theme
func (t ColorTheme) String() string {
	switch t {
	case ThemeCyan:
		return "cyan"
	case ThemeGreen:
		return "green"
	case ThemeWhite:
		return "white"
	case ThemeMagenta:
		return "magenta"
	case ThemeYellow:
		return "yellow"
	case ThemeRed:
		return "red"
	case ThemeBlue:
		return "blue"
	case ThemeRainbow:
		return "rainbow"
	case ThemeRainbowVertical:
		return "rainbow-vertical"
	case ThemeGradientWarm:
		return "warm"
	case ThemeGradientCool:
		return "cool"
	case ThemeGradientOcean:
		return "ocean"
	case ThemeGradientNeon:
		return "neon"
	case ThemeGradientFire:
		return "fire"
	}
	return "cyan"
}

// DisplayName returns the label shown in the settings overlay
func (t ColorTheme) DisplayName() string {
	switch t {
	case ThemeRainbowVertical:
		return "Rainbow V"
	case ThemeGradientWarm:
		return "Warm"
	case ThemeGradientCool:
		return "Cool"
	case ThemeGradientOcean:
		return "Ocean"
	case ThemeGradientNeon:
		return "Neon"
	case ThemeGradientFire:
		return "Fire"
	case ThemeRainbow:
		return "Rainbow"
	case ThemeCyan:
		return "Cyan"
	case ThemeGreen:
		return "Green"
	case ThemeWhite:
		return "White"
	case ThemeMagenta:
		return "Magenta"
	case ThemeYellow:
		return "Yellow"
	case ThemeRed:
		return "Red"
	case ThemeBlue:
		return "Blue"
	}
	return "Cyan"
}

// ParseColorTheme maps a config token back to a theme, defaulting to cyan
func ParseColorTheme(s string) ColorTheme {
	for _, t := range allThemes {
		if t.String() == s {
			return t
		}
	}
	return ThemeCyan
}
