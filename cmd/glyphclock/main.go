package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"

	"github.com/lixenwraith/glyphclock/audio"
	"github.com/lixenwraith/glyphclock/config"
	"github.com/lixenwraith/glyphclock/engine"
	"github.com/lixenwraith/glyphclock/fonts"
)

var (
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/glyphclock.log")
	configFlag = flag.String("config", "", "Config directory (default: platform config dir)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	configDir := *configFlag
	if configDir == "" {
		configDir = config.DefaultDir()
	}
	settings := config.Load(configDir)

	registry := fonts.NewRegistry()
	registry.LoadUserFonts(config.FontsDir(configDir))
	if !registry.Has(settings.FontName) {
		log.Printf("configured font %q not available, using %s", settings.FontName, fonts.DefaultFontName)
		settings.FontName = fonts.DefaultFontName
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before reporting, so the stack
	// trace lands on a sane screen instead of the alternate buffer
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nglyphclock crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	chime, err := audio.NewChime()
	if err != nil {
		log.Printf("audio initialization failed: %v (continuing without chime)", err)
	}
	defer chime.Close()

	app := engine.New(screen, clockwork.NewRealClock(), registry, chime, configDir, settings)
	if err := app.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "glyphclock: %v\n", err)
		os.Exit(1)
	}
}
