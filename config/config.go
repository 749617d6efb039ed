// Package config persists the clock settings to a yaml file in the user
// config directory. Loading never fails: missing or corrupt files fall back
// to defaults so the clock always starts.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lixenwraith/glyphclock/core"
)

const (
	appDirName     = "glyphclock"
	configBaseName = "config"
	configFileName = "config.yaml"
	fontsDirName   = "fonts"
)

// Settings is the persisted application state
type Settings struct {
	FontName   string
	Theme      core.ColorTheme
	TimeFormat core.TimeFormat
	Animation  core.AnimationStyle
	Speed      core.AnimationSpeed
	ColonBlink bool
	Background core.BackgroundStyle
	Chime      bool
}

// Defaults returns the out-of-the-box settings
func Defaults() Settings {
	return Settings{
		FontName:   "Standard",
		Theme:      core.ThemeCyan,
		TimeFormat: core.FormatTwentyFourHour,
		Animation:  core.AnimNone,
		Speed:      core.SpeedMedium,
		ColonBlink: false,
		Background: core.BackgroundNone,
		Chime:      false,
	}
}

// DefaultDir resolves the per-user config directory for the app
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return appDirName
		}
		return filepath.Join(home, "."+appDirName)
	}
	return filepath.Join(base, appDirName)
}

// FontsDir is where user-supplied .flf/.tlf files live, beside the config
func FontsDir(dir string) string {
	return filepath.Join(dir, fontsDirName)
}

// newViper builds a viper instance with every key defaulted, so a partial
// or absent file still yields a complete Settings.
func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	d := Defaults()
	v.SetDefault("font", d.FontName)
	v.SetDefault("theme", d.Theme.String())
	v.SetDefault("time_format", d.TimeFormat.String())
	v.SetDefault("animation", d.Animation.String())
	v.SetDefault("speed", d.Speed.String())
	v.SetDefault("colon_blink", d.ColonBlink)
	v.SetDefault("background", d.Background.String())
	v.SetDefault("chime", d.Chime)

	return v
}

// Load reads settings from dir, logging and defaulting on any problem
func Load(dir string) Settings {
	v := newViper(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			log.Printf("warning: failed to read config: %v", err)
		}
	}

	return Settings{
		FontName:   v.GetString("font"),
		Theme:      core.ParseColorTheme(v.GetString("theme")),
		TimeFormat: core.ParseTimeFormat(v.GetString("time_format")),
		Animation:  core.ParseAnimationStyle(v.GetString("animation")),
		Speed:      core.ParseAnimationSpeed(v.GetString("speed")),
		ColonBlink: v.GetBool("colon_blink"),
		Background: core.ParseBackgroundStyle(v.GetString("background")),
		Chime:      v.GetBool("chime"),
	}
}

// Save writes settings to dir, creating it if needed
func Save(dir string, s Settings) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	v := newViper(dir)
	v.Set("font", s.FontName)
	v.Set("theme", s.Theme.String())
	v.Set("time_format", s.TimeFormat.String())
	v.Set("animation", s.Animation.String())
	v.Set("speed", s.Speed.String())
	v.Set("colon_blink", s.ColonBlink)
	v.Set("background", s.Background.String())
	v.Set("chime", s.Chime)

	if err := v.WriteConfigAs(filepath.Join(dir, configFileName)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
