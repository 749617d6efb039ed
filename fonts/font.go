package fonts

import "unicode/utf8"

// Font is a parsed FIGlet font: a fixed-height glyph per printable ASCII
// character. Fonts are built once by the parser and never mutated.
type Font struct {
	Name   string
	Height int

	glyphs map[rune][]string
}

// RenderText composites the glyphs for text into Height output lines, each
// the horizontal concatenation of the per-character glyph lines. Characters
// without a glyph fall back to the space glyph; if even that is missing they
// contribute no width.
func (f *Font) RenderText(text string) []string {
	lines := make([]string, f.Height)

	for _, ch := range text {
		glyph, ok := f.glyphs[ch]
		if !ok {
			glyph, ok = f.glyphs[' ']
			if !ok {
				continue
			}
		}
		for i, glyphLine := range glyph {
			if i < len(lines) {
				lines[i] += glyphLine
			}
		}
	}

	return lines
}

// CharWidth returns the column width of a character's glyph, 0 if unmapped
func (f *Font) CharWidth(ch rune) int {
	glyph, ok := f.glyphs[ch]
	if !ok || len(glyph) == 0 {
		return 0
	}
	return utf8.RuneCountInString(glyph[0])
}

// Glyph returns the raw glyph lines for a character
func (f *Font) Glyph(ch rune) ([]string, bool) {
	glyph, ok := f.glyphs[ch]
	return glyph, ok
}
