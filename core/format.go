package core

// TimeFormat toggles between 24-hour and 12-hour clock faces
type TimeFormat uint8

const (
	FormatTwentyFourHour TimeFormat = iota
	FormatTwelveHour
)

// Toggle flips between the two formats
func (f TimeFormat) Toggle() TimeFormat {
	if f == FormatTwentyFourHour {
		return FormatTwelveHour
	}
	return FormatTwentyFourHour
}

// String returns the stable config token for the format
func (f TimeFormat) String() string {
	if f == FormatTwelveHour {
		return "12h"
	}
	return "24h"
}

// DisplayName returns the label shown in the settings overlay
func (f TimeFormat) DisplayName() string {
	if f == FormatTwelveHour {
		return "12 Hour"
	}
	return "24 Hour"
}

// ParseTimeFormat maps a config token back to a format, defaulting to 24h
func ParseTimeFormat(s string) TimeFormat {
	if s == "12h" {
		return FormatTwelveHour
	}
	return FormatTwentyFourHour
}
