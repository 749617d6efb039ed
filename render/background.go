// Package render paints the animated background and the clock face onto a
// tcell screen, one cell at a time.
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphclock/core"
)

// starGlyphs is the fixed glyph set for the starfield
var starGlyphs = []rune{'.', '*', '+', '·', '✦', '✧'}

// starColors are the three brightness tiers, dim to bright
var starColors = []core.RGB{
	{R: 60, G: 60, B: 80},
	{R: 100, G: 100, B: 140},
	{R: 150, G: 150, B: 200},
}

// matrixGlyphs is the rain glyph set: halfwidth katakana plus digits, all
// single-cell wide
var matrixGlyphs = []rune{
	'ｱ', 'ｲ', 'ｳ', 'ｴ', 'ｵ', 'ｶ', 'ｷ', 'ｸ', 'ｹ', 'ｺ',
	'ｻ', 'ｼ', 'ｽ', 'ｾ', 'ｿ', 'ﾀ', 'ﾁ', 'ﾂ', 'ﾃ', 'ﾄ',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
}

// waveGlyphs quantize gradient wave intensity into four density steps
var waveGlyphs = []rune{' ', '░', '▒', '▓'}

// matrixColumn is the per-screen-column rain state
type matrixColumn struct {
	headY       float64
	speed       float64
	trailLength int
	charSeed    int
}

// Background holds the only mutable cross-frame render state: the rain
// columns plus the last seen canvas dimensions. It has a single owner (the
// app loop) and is touched once per frame, so it needs no locking.
type Background struct {
	columns      []matrixColumn
	lastWidth    int
	lastHeight   int
	lastUpdateMS int64
}

// NewBackground returns an empty state; columns initialize on first update
func NewBackground() *Background {
	return &Background{}
}

// Update advances the mutable state for one frame. Only the matrix rain
// style carries state; the other styles are pure functions of position and
// elapsed time.
func (b *Background) Update(style core.BackgroundStyle, elapsedMS int64, width, height int, speed core.AnimationSpeed) {
	if style != core.BackgroundMatrixRain {
		return
	}
	if width != b.lastWidth || height != b.lastHeight {
		b.initColumns(width, height)
	}
	b.advanceColumns(elapsedMS, height, speed)
}

// initColumns seeds one rain column per screen column. Everything derives
// deterministically from the column index: staggered start heights, varied
// fall speeds and trail lengths.
func (b *Background) initColumns(width, height int) {
	b.columns = make([]matrixColumn, width)
	for x := range b.columns {
		stagger := float64((x*7 + 3) % (height * 2))
		b.columns[x] = matrixColumn{
			headY:       -stagger,
			speed:       0.3 + float64((x*13)%10)/15.0,
			trailLength: 4 + (x*11)%8,
			charSeed:    x * 17,
		}
	}
	b.lastWidth = width
	b.lastHeight = height
}

// advanceColumns moves every rain head down and wraps finished columns back
// above the screen with a fresh character seed.
func (b *Background) advanceColumns(elapsedMS int64, height int, speed core.AnimationSpeed) {
	deltaMS := elapsedMS - b.lastUpdateMS
	if deltaMS < 0 {
		deltaMS = 0
	}
	b.lastUpdateMS = elapsedMS

	deltaY := float64(deltaMS) / 50.0 * speed.MatrixFallSpeed()

	for i := range b.columns {
		col := &b.columns[i]
		col.headY += deltaY * col.speed
		if col.headY > float64(height+col.trailLength) {
			col.headY = -float64(col.trailLength)
			col.charSeed++
		}
	}
}

// CellAt computes the background glyph and color for one screen cell. It is
// pure with respect to the current state: no randomness, no clock reads, so
// a frame can be replayed exactly.
func (b *Background) CellAt(style core.BackgroundStyle, x, y, width, height int, elapsedMS int64, speed core.AnimationSpeed) (rune, core.RGB, bool) {
	switch style {
	case core.BackgroundStarfield:
		return starfieldCell(x, y, elapsedMS, speed)
	case core.BackgroundMatrixRain:
		return b.matrixCell(x, y)
	case core.BackgroundGradientWave:
		return gradientCell(x, y, width, height, elapsedMS, speed)
	default:
		return 0, core.RGBBlack, false
	}
}

// Draw paints the whole background layer for one frame
func (b *Background) Draw(screen tcell.Screen, style core.BackgroundStyle, elapsedMS int64, speed core.AnimationSpeed) {
	if style == core.BackgroundNone {
		return
	}

	width, height := screen.Size()
	b.Update(style, elapsedMS, width, height, speed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch, color, ok := b.CellAt(style, x, y, width, height, elapsedMS, speed)
			if !ok {
				continue
			}
			if x+runewidth.RuneWidth(ch) > width {
				continue
			}
			screen.SetContent(x, y, ch, nil, styleFor(color))
		}
	}
}

// starfieldCell twinkles stars from an arithmetic hash of position and frame
// number; roughly 3% of cells light up in any given frame.
func starfieldCell(x, y int, elapsedMS int64, speed core.AnimationSpeed) (rune, core.RGB, bool) {
	frame := elapsedMS / speed.TwinklePeriodMS()
	seed := x*31 + y*17 + int(frame)

	if seed%100 >= 3 {
		return 0, core.RGBBlack, false
	}
	return starGlyphs[seed%len(starGlyphs)], starColors[seed%len(starColors)], true
}

// matrixCell renders the rain trail: bright white-green at the head fading
// to dark green at the tail.
func (b *Background) matrixCell(x, y int) (rune, core.RGB, bool) {
	if x >= len(b.columns) {
		return 0, core.RGBBlack, false
	}
	col := &b.columns[x]

	fy := float64(y)
	tailY := col.headY - float64(col.trailLength)
	if fy < tailY || fy > col.headY {
		return 0, core.RGBBlack, false
	}

	distFromHead := col.headY - fy
	intensity := 1.0 - distFromHead/float64(col.trailLength)

	ch := matrixGlyphs[(col.charSeed+y)%len(matrixGlyphs)]

	if distFromHead < 1.0 {
		return ch, core.RGB{R: 200, G: 255, B: 200}, true
	}
	return ch, core.RGB{G: uint8(80.0 + 120.0*intensity)}, true
}

// gradientCell runs a diagonal traveling sine wave, quantized into density
// glyphs, with the hue drifting over time and across columns.
func gradientCell(x, y, width, height int, elapsedMS int64, speed core.AnimationSpeed) (rune, core.RGB, bool) {
	period := speed.GradientScrollMS()
	timePhase := float64(elapsedMS%period) / float64(period)

	xNorm := float64(x) / float64(max(width, 1))
	yNorm := float64(y) / float64(max(height, 1))

	wave := math.Sin((xNorm + yNorm*0.5 + timePhase) * 2.0 * math.Pi)
	intensity := (wave + 1.0) / 2.0

	var ch rune
	switch {
	case intensity < 0.25:
		ch = waveGlyphs[0]
	case intensity < 0.5:
		ch = waveGlyphs[1]
	case intensity < 0.75:
		ch = waveGlyphs[2]
	default:
		ch = waveGlyphs[3]
	}
	if ch == ' ' {
		return 0, core.RGBBlack, false
	}

	hue := math.Mod(xNorm*60.0+timePhase*360.0, 360.0)
	color := core.HSLToRGB(hue, 0.7, 0.15+intensity*0.2)

	return ch, color, true
}

// styleFor wraps an RGB into a tcell foreground style
func styleFor(c core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
