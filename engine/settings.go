package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphclock/config"
	"github.com/lixenwraith/glyphclock/core"
	"github.com/lixenwraith/glyphclock/render"
)

// Overlay fields in display order
type settingsField uint8

const (
	fieldFont settingsField = iota
	fieldTheme
	fieldFormat
	fieldAnimation
	fieldSpeed
	fieldBlink
	fieldBackground
	fieldChime

	fieldCount
)

func (f settingsField) label() string {
	switch f {
	case fieldFont:
		return "Font"
	case fieldTheme:
		return "Theme"
	case fieldFormat:
		return "Format"
	case fieldAnimation:
		return "Animation"
	case fieldSpeed:
		return "Speed"
	case fieldBlink:
		return "Colon Blink"
	case fieldBackground:
		return "Background"
	case fieldChime:
		return "Chime"
	}
	return ""
}

// SettingsOverlay is the modal settings editor. It keeps two copies of the
// settings: the working copy the app previews live, and the snapshot taken
// at open so Esc can restore it.
type SettingsOverlay struct {
	visible  bool
	selected settingsField

	working  config.Settings
	original config.Settings

	fontNames []string
}

// NewSettingsOverlay builds a hidden overlay over the given font list
func NewSettingsOverlay(fontNames []string) *SettingsOverlay {
	return &SettingsOverlay{fontNames: fontNames}
}

// Open shows the overlay, snapshotting current for cancel
func (o *SettingsOverlay) Open(current config.Settings) {
	o.visible = true
	o.selected = fieldFont
	o.working = current
	o.original = current
}

// Close hides the overlay
func (o *SettingsOverlay) Close() {
	o.visible = false
}

// Visible reports whether the overlay is showing
func (o *SettingsOverlay) Visible() bool {
	return o.visible
}

// Current returns the working settings for live preview
func (o *SettingsOverlay) Current() config.Settings {
	return o.working
}

// Original returns the snapshot taken at open
func (o *SettingsOverlay) Original() config.Settings {
	return o.original
}

// NextField moves the selection down, wrapping
func (o *SettingsOverlay) NextField() {
	o.selected = (o.selected + 1) % fieldCount
}

// PrevField moves the selection up, wrapping
func (o *SettingsOverlay) PrevField() {
	if o.selected == 0 {
		o.selected = fieldCount - 1
		return
	}
	o.selected--
}

// NextValue cycles the selected field forward
func (o *SettingsOverlay) NextValue() {
	o.cycleValue(1)
}

// PrevValue cycles the selected field backward
func (o *SettingsOverlay) PrevValue() {
	o.cycleValue(-1)
}

func (o *SettingsOverlay) cycleValue(dir int) {
	switch o.selected {
	case fieldFont:
		o.working.FontName = o.cycleFont(dir)
	case fieldTheme:
		if dir > 0 {
			o.working.Theme = o.working.Theme.Next()
		} else {
			o.working.Theme = o.working.Theme.Prev()
		}
	case fieldFormat:
		o.working.TimeFormat = o.working.TimeFormat.Toggle()
	case fieldAnimation:
		if dir > 0 {
			o.working.Animation = o.working.Animation.Next()
		} else {
			o.working.Animation = o.working.Animation.Prev()
		}
	case fieldSpeed:
		if dir > 0 {
			o.working.Speed = o.working.Speed.Next()
		} else {
			o.working.Speed = o.working.Speed.Prev()
		}
	case fieldBlink:
		o.working.ColonBlink = !o.working.ColonBlink
	case fieldBackground:
		if dir > 0 {
			o.working.Background = o.working.Background.Next()
		} else {
			o.working.Background = o.working.Background.Prev()
		}
	case fieldChime:
		o.working.Chime = !o.working.Chime
	}
}

// cycleFont steps through the registry's font list
func (o *SettingsOverlay) cycleFont(dir int) string {
	if len(o.fontNames) == 0 {
		return o.working.FontName
	}
	idx := 0
	for i, name := range o.fontNames {
		if name == o.working.FontName {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(o.fontNames)) % len(o.fontNames)
	return o.fontNames[idx]
}

// value renders the display text of a field
func (o *SettingsOverlay) value(f settingsField) string {
	switch f {
	case fieldFont:
		return o.working.FontName
	case fieldTheme:
		return o.working.Theme.DisplayName()
	case fieldFormat:
		return o.working.TimeFormat.DisplayName()
	case fieldAnimation:
		return o.working.Animation.DisplayName()
	case fieldSpeed:
		return o.working.Speed.DisplayName()
	case fieldBlink:
		return onOff(o.working.ColonBlink)
	case fieldBackground:
		return o.working.Background.DisplayName()
	case fieldChime:
		return onOff(o.working.Chime)
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// Overlay box geometry
const (
	overlayWidth = 38
	overlayPadX  = 2
)

// Draw paints the modal box centered on the screen
func (o *SettingsOverlay) Draw(screen tcell.Screen, accent core.RGB) {
	screenW, screenH := screen.Size()

	innerRows := int(fieldCount) + 2 // fields plus hint row and a spacer
	boxH := innerRows + 2            // plus border
	boxW := overlayWidth

	left := (screenW - boxW) / 2
	top := (screenH - boxH) / 2
	if left < 0 || top < 0 {
		return // screen too small for the dialog
	}

	border := render.StyleFor(accent)
	text := render.StyleFor(core.RGBWhite)
	dim := render.StyleFor(core.RGB{R: 120, G: 120, B: 120})
	selectedStyle := text.Reverse(true)

	drawBox(screen, left, top, boxW, boxH, border)
	title := " Settings "
	render.DrawString(screen, left+(boxW-runewidth.StringWidth(title))/2, top, title, border.Bold(true))

	for f := settingsField(0); f < fieldCount; f++ {
		y := top + 1 + int(f)
		style := text
		marker := "  %s"
		if f == o.selected {
			style = selectedStyle
			marker = "< %s >"
		}

		line := fmt.Sprintf("%-12s "+marker, f.label()+":", o.value(f))
		if runewidth.StringWidth(line) > boxW-2*overlayPadX {
			line = runewidth.Truncate(line, boxW-2*overlayPadX, "…")
		}
		render.DrawString(screen, left+overlayPadX, y, line, style)
	}

	hint := "h/l change  j/k move  ⏎ save  Esc cancel"
	render.DrawString(screen, left+(boxW-runewidth.StringWidth(hint))/2, top+boxH-2, hint, dim)
}

// drawBox clears a rectangle and draws its border
func drawBox(screen tcell.Screen, left, top, w, h int, border tcell.Style) {
	fill := tcell.StyleDefault

	for y := top; y < top+h; y++ {
		for x := left; x < left+w; x++ {
			screen.SetContent(x, y, ' ', nil, fill)
		}
	}

	for x := left + 1; x < left+w-1; x++ {
		screen.SetContent(x, top, '─', nil, border)
		screen.SetContent(x, top+h-1, '─', nil, border)
	}
	for y := top + 1; y < top+h-1; y++ {
		screen.SetContent(left, y, '│', nil, border)
		screen.SetContent(left+w-1, y, '│', nil, border)
	}
	screen.SetContent(left, top, '┌', nil, border)
	screen.SetContent(left+w-1, top, '┐', nil, border)
	screen.SetContent(left, top+h-1, '└', nil, border)
	screen.SetContent(left+w-1, top+h-1, '┘', nil, border)
}
