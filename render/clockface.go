package render

import (
	"github.com/gdamore/tcell/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphclock/core"
	"github.com/lixenwraith/glyphclock/fonts"
)

// renderCacheSize bounds the composited-line memo; the time string changes
// once a second while the loop redraws far more often, so a small cache
// absorbs nearly every frame.
const renderCacheSize = 64

// FaceOptions carries the per-frame display settings for the clock face
type FaceOptions struct {
	Theme      core.ColorTheme
	Animation  core.AnimationStyle
	Speed      core.AnimationSpeed
	ElapsedMS  int64
	ColonBlink bool
	Flash      float64
}

// ClockFace composites the big time glyphs and the date line onto the
// screen, skipping spaces so the background layer shows through.
type ClockFace struct {
	cache *lru.Cache[string, []string]
}

// NewClockFace creates a face with an empty render cache
func NewClockFace() *ClockFace {
	cache, err := lru.New[string, []string](renderCacheSize)
	if err != nil {
		panic("render: bad clock face cache size")
	}
	return &ClockFace{cache: cache}
}

// renderLines memoizes Font.RenderText per font and text
func (cf *ClockFace) renderLines(font *fonts.Font, text string) []string {
	key := font.Name + "\x00" + text
	if lines, ok := cf.cache.Get(key); ok {
		return lines
	}
	lines := font.RenderText(text)
	cf.cache.Add(key, lines)
	return lines
}

// colonMask marks the output columns occupied by ':' glyphs so the blink
// gate can hide exactly those cells.
func colonMask(font *fonts.Font, text string, width int) []bool {
	mask := make([]bool, width)
	x := 0
	for _, ch := range text {
		w := font.CharWidth(ch)
		if ch == ':' {
			for i := 0; i < w && x+i < len(mask); i++ {
				mask[x+i] = true
			}
		}
		x += w
	}
	return mask
}

// Draw paints the time and date centered on the screen. All color decisions
// for the frame use the single ElapsedMS snapshot in opts, so the glyph and
// date layers can never disagree mid-frame.
func (cf *ClockFace) Draw(screen tcell.Screen, font *fonts.Font, timeStr, dateStr string, opts FaceOptions) {
	screenW, screenH := screen.Size()

	lines := cf.renderLines(font, timeStr)
	height := len(lines)
	width := 0
	if height > 0 {
		width = runewidth.StringWidth(lines[0])
	}

	// Vertical layout: time block, two blank rows, date line, centered
	top := (screenH - height - 3) / 2
	if top < 0 {
		top = 0
	}
	startX := (screenW - width) / 2
	if startX < 0 {
		startX = 0
	}

	var mask []bool
	if opts.ColonBlink {
		mask = colonMask(font, timeStr, width)
	}
	hideColon := opts.ColonBlink && !core.IsColonVisible(opts.ElapsedMS)

	static := opts.Theme.Color()
	dynamic := opts.Theme.IsDynamic()

	for lineIdx, line := range lines {
		y := top + lineIdx
		if y >= screenH {
			break
		}

		for charIdx, ch := range []rune(line) {
			// Spaces stay transparent so the background survives
			if ch == ' ' {
				continue
			}
			x := startX + charIdx
			if x >= screenW {
				break
			}
			if hideColon && charIdx < len(mask) && mask[charIdx] {
				continue
			}

			base := static
			if dynamic {
				base = opts.Theme.ColorAt(charIdx, lineIdx, width, height)
			}
			color := core.ApplyAnimation(base, opts.Animation, opts.Speed, opts.ElapsedMS, charIdx, width, opts.Flash)

			screen.SetContent(x, y, ch, nil, styleFor(color))
		}
	}

	cf.drawDate(screen, dateStr, top+height+2, opts)
}

// drawDate paints the date line with the same theme and animation treatment
// as the glyphs, normalized over the date's own single-row extent.
func (cf *ClockFace) drawDate(screen tcell.Screen, dateStr string, y int, opts FaceOptions) {
	screenW, screenH := screen.Size()
	if y < 0 || y >= screenH {
		return
	}

	width := runewidth.StringWidth(dateStr)
	startX := (screenW - width) / 2
	if startX < 0 {
		startX = 0
	}

	static := opts.Theme.Color()
	dynamic := opts.Theme.IsDynamic()

	for i, ch := range []rune(dateStr) {
		if ch == ' ' {
			continue
		}
		x := startX + i
		if x >= screenW {
			break
		}

		base := static
		if dynamic {
			base = opts.Theme.ColorAt(i, 0, width, 1)
		}
		color := core.ApplyAnimation(base, opts.Animation, opts.Speed, opts.ElapsedMS, i, width, opts.Flash)

		screen.SetContent(x, y, ch, nil, styleFor(color))
	}
}

// DrawString writes a plain run of text at (x, y), clipped to the screen
func DrawString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	screenW, screenH := screen.Size()
	if y < 0 || y >= screenH {
		return
	}
	for _, ch := range text {
		if x >= screenW {
			return
		}
		screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// StyleFor wraps an RGB into a tcell foreground style
func StyleFor(c core.RGB) tcell.Style {
	return styleFor(c)
}
