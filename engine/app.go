// Package engine runs the clock: one synchronous frame loop over a tcell
// screen, fed by a ticker and an event channel.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphclock/audio"
	"github.com/lixenwraith/glyphclock/config"
	"github.com/lixenwraith/glyphclock/core"
	"github.com/lixenwraith/glyphclock/fonts"
	"github.com/lixenwraith/glyphclock/render"
)

// frameInterval paces redraws; the animations are smooth well below 60fps
const frameInterval = 33 * time.Millisecond

// Flash intensities for the reactive animation, by rollover magnitude
const (
	flashHour   = 1.0
	flashMinute = 0.7
	flashSecond = 0.3
	flashFloor  = 0.01
)

const dateLayout = "Monday, January 02, 2006"

// App owns all mutable state of the running clock. Single-threaded: the
// event poller goroutine only forwards events into the loop's channel.
type App struct {
	screen    tcell.Screen
	clock     clockwork.Clock
	registry  *fonts.Registry
	face      *render.ClockFace
	backdrop  *render.Background
	chime     *audio.Chime
	configDir string

	settings config.Settings
	overlay  *SettingsOverlay

	start time.Time

	// Reactive flash state, driven by clock rollovers
	lastSecond int
	lastMinute int
	lastHour   int
	flash      float64
	flashStart time.Time

	running bool
}

// New wires an App; chime may be nil when audio is unavailable
func New(screen tcell.Screen, clock clockwork.Clock, registry *fonts.Registry, chime *audio.Chime, configDir string, settings config.Settings) *App {
	return &App{
		screen:    screen,
		clock:     clock,
		registry:  registry,
		face:      render.NewClockFace(),
		backdrop:  render.NewBackground(),
		chime:     chime,
		configDir: configDir,
		settings:  settings,
		overlay:   NewSettingsOverlay(registry.Names()),
	}
}

// Run drives the frame loop until a quit key arrives
func (a *App) Run() error {
	a.running = true
	a.start = a.clock.Now()
	a.lastHour, a.lastMinute, a.lastSecond = a.start.Clock()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := a.clock.NewTicker(frameInterval)
	defer ticker.Stop()

	a.drawFrame()

	for a.running {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleEvent(ev)
		case <-ticker.Chan():
			a.drawFrame()
		}
	}
	return nil
}

// drawFrame renders one complete frame: background first, then the glyph
// layer, all from one elapsed-time snapshot.
func (a *App) drawFrame() {
	now := a.clock.Now()
	elapsedMS := now.Sub(a.start).Milliseconds()

	a.screen.Clear()

	a.backdrop.Draw(a.screen, a.settings.Background, elapsedMS, a.settings.Speed)

	a.updateFlash(now)

	font := a.registry.GetOrDefault(a.settings.FontName)
	a.face.Draw(a.screen, font, a.formatTime(now), now.Format(dateLayout), render.FaceOptions{
		Theme:      a.settings.Theme,
		Animation:  a.settings.Animation,
		Speed:      a.settings.Speed,
		ElapsedMS:  elapsedMS,
		ColonBlink: a.settings.ColonBlink,
		Flash:      a.flash,
	})

	a.drawHelp()

	if a.overlay.Visible() {
		a.overlay.Draw(a.screen, a.settings.Theme.Color())
	}

	a.screen.Show()
}

// formatTime builds the clock string for the active time format
func (a *App) formatTime(now time.Time) string {
	h, m, s := now.Clock()
	if a.settings.TimeFormat == core.FormatTwelveHour {
		ampm := "AM"
		if h >= 12 {
			ampm = "PM"
		}
		h12 := h % 12
		if h12 == 0 {
			h12 = 12
		}
		return fmt.Sprintf("%2d:%02d:%02d %s", h12, m, s, ampm)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// updateFlash triggers the reactive stimulus on clock rollovers and decays
// it toward zero over the speed table's decay window. Hour rollovers also
// fire the chime when enabled.
func (a *App) updateFlash(now time.Time) {
	h, m, s := now.Clock()

	switch {
	case h != a.lastHour:
		a.flash = flashHour
		a.flashStart = now
		a.lastHour, a.lastMinute, a.lastSecond = h, m, s
		a.playChime(true)
	case m != a.lastMinute:
		a.flash = flashMinute
		a.flashStart = now
		a.lastMinute, a.lastSecond = m, s
		a.playChime(false)
	case s != a.lastSecond:
		a.flash = flashSecond
		a.flashStart = now
		a.lastSecond = s
	}

	if !a.flashStart.IsZero() {
		decayMS := float64(a.settings.Speed.FlashDecayMS())
		progress := float64(now.Sub(a.flashStart).Milliseconds()) / decayMS
		if progress > 1 {
			progress = 1
		}
		a.flash *= 1 - progress

		if a.flash < flashFloor {
			a.flash = 0
			a.flashStart = time.Time{}
		}
	}
}

func (a *App) playChime(hour bool) {
	if !a.settings.Chime || a.chime == nil {
		return
	}
	if hour {
		a.chime.Hour()
	} else {
		a.chime.Tick()
	}
}

// drawHelp paints the key hints on the bottom row
func (a *App) drawHelp() {
	screenW, screenH := a.screen.Size()
	y := screenH - 1

	accent := render.StyleFor(a.settings.Theme.Color()).Bold(true)
	dim := render.StyleFor(core.RGB{R: 120, G: 120, B: 120})

	entries := []struct {
		key   string
		label string
	}{
		{"q", " quit  "},
		{"t", " 12/24h  "},
		{"c", " color  "},
		{"a", " anim  "},
		{"b", " bg  "},
		{"s", " settings"},
	}

	width := 0
	for _, e := range entries {
		width += runewidth.StringWidth(e.key) + runewidth.StringWidth(e.label)
	}
	x := (screenW - width) / 2
	if x < 0 {
		x = 0
	}

	for _, e := range entries {
		render.DrawString(a.screen, x, y, e.key, accent)
		x += runewidth.StringWidth(e.key)
		render.DrawString(a.screen, x, y, e.label, dim)
		x += runewidth.StringWidth(e.label)
	}
}

// handleEvent dispatches one terminal event
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// handleKey applies the main key bindings, or routes to the overlay
func (a *App) handleKey(ev *tcell.EventKey) {
	if a.overlay.Visible() {
		a.handleOverlayKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.quit()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'q':
		a.quit()
	case 't':
		a.settings.TimeFormat = a.settings.TimeFormat.Toggle()
	case 'c':
		a.settings.Theme = a.settings.Theme.Next()
	case 'a':
		a.settings.Animation = a.settings.Animation.Next()
	case 'b':
		a.settings.Background = a.settings.Background.Next()
	case 's':
		a.overlay.Open(a.settings)
	}
}

// handleOverlayKey drives the settings overlay: value changes preview live,
// Enter persists, Esc restores the snapshot taken at open.
func (a *App) handleOverlayKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.settings = a.overlay.Original()
		a.overlay.Close()
		return
	case tcell.KeyEnter:
		if err := config.Save(a.configDir, a.settings); err != nil {
			log.Printf("warning: failed to save config: %v", err)
		}
		a.overlay.Close()
		return
	case tcell.KeyUp:
		a.overlay.PrevField()
		return
	case tcell.KeyDown:
		a.overlay.NextField()
		return
	case tcell.KeyLeft:
		a.overlay.PrevValue()
		a.settings = a.overlay.Current()
		return
	case tcell.KeyRight:
		a.overlay.NextValue()
		a.settings = a.overlay.Current()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'k':
		a.overlay.PrevField()
	case 'j':
		a.overlay.NextField()
	case 'h':
		a.overlay.PrevValue()
		a.settings = a.overlay.Current()
	case 'l':
		a.overlay.NextValue()
		a.settings = a.overlay.Current()
	}
}

func (a *App) quit() {
	a.running = false
}
