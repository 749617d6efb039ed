package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphclock/core"
	"github.com/lixenwraith/glyphclock/fonts"
)

func simScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("simulation screen init: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func TestColonMask(t *testing.T) {
	font := fonts.NewRegistry().GetOrDefault(fonts.DefaultFontName)

	text := "12:34"
	width := 0
	for _, ch := range text {
		width += font.CharWidth(ch)
	}

	mask := colonMask(font, text, width)

	colonStart := font.CharWidth('1') + font.CharWidth('2')
	colonEnd := colonStart + font.CharWidth(':')

	for x := 0; x < width; x++ {
		want := x >= colonStart && x < colonEnd
		if mask[x] != want {
			t.Errorf("mask[%d] = %v, want %v", x, mask[x], want)
		}
	}
}

func TestRenderLinesCached(t *testing.T) {
	cf := NewClockFace()
	font := fonts.NewRegistry().GetOrDefault(fonts.DefaultFontName)

	first := cf.renderLines(font, "12:34:56")
	second := cf.renderLines(font, "12:34:56")

	if len(first) != font.Height {
		t.Fatalf("rendered %d lines, want %d", len(first), font.Height)
	}
	// Cache hit returns the same backing slice
	if &first[0] != &second[0] {
		t.Error("second render did not hit the cache")
	}

	// Different fonts with the same text must not collide
	small := fonts.NewRegistry().GetOrDefault("Small")
	other := cf.renderLines(small, "12:34:56")
	if len(other) != small.Height {
		t.Errorf("small font rendered %d lines, want %d", len(other), small.Height)
	}
}

func TestDrawPaintsGlyphCells(t *testing.T) {
	screen := simScreen(t, 80, 24)
	cf := NewClockFace()
	font := fonts.NewRegistry().GetOrDefault(fonts.DefaultFontName)

	cf.Draw(screen, font, "12:34:56", "Saturday, August 30, 2025", FaceOptions{
		Theme: core.ThemeCyan,
	})
	screen.Show()

	width, height := screen.Size()
	painted := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			if ch != ' ' && ch != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("Draw painted no cells")
	}
}

func TestDrawHidesColonWhenBlinking(t *testing.T) {
	screen := simScreen(t, 80, 24)
	cf := NewClockFace()
	font := fonts.NewRegistry().GetOrDefault(fonts.DefaultFontName)

	countColonCells := func(elapsedMS int64) int {
		screen.Clear()
		cf.Draw(screen, font, "12:34:56", "", FaceOptions{
			Theme:      core.ThemeCyan,
			ColonBlink: true,
			ElapsedMS:  elapsedMS,
		})
		screen.Show()

		width, height := screen.Size()
		lit := 0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if ch, _, _, _ := screen.GetContent(x, y); ch != ' ' && ch != 0 {
					lit++
				}
			}
		}
		return lit
	}

	// Colon is shown in the first half of each second, hidden in the second
	visible := countColonCells(0)
	hidden := countColonCells(600)
	if hidden >= visible {
		t.Errorf("blink did not hide colon cells: visible %d, hidden %d", visible, hidden)
	}
}

func TestDrawStringClips(t *testing.T) {
	screen := simScreen(t, 10, 3)

	DrawString(screen, 7, 1, "hello", StyleFor(core.RGBWhite))
	screen.Show()

	if ch, _, _, _ := screen.GetContent(7, 1); ch != 'h' {
		t.Errorf("cell (7,1) = %q, want 'h'", ch)
	}
	if ch, _, _, _ := screen.GetContent(9, 1); ch != 'l' {
		t.Errorf("cell (9,1) = %q, want 'l'", ch)
	}

	// Off-screen rows are ignored
	DrawString(screen, 0, 99, "x", StyleFor(core.RGBWhite))
}
