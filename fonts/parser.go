// Package fonts parses FIGlet (.flf) and TheLetterFont (.tlf) bitmap fonts
// and renders text with them.
package fonts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Supported format signatures; the header must open with one of these,
// immediately followed by the hardblank character.
const (
	flfSignature = "flf2a"
	tlfSignature = "tlf2a"
)

// Glyphs cover the printable ASCII range 32 (space) through 126 (~)
const (
	firstGlyph = ' '
	lastGlyph  = '~'
	glyphCount = int(lastGlyph-firstGlyph) + 1
)

// Parse errors. InvalidCharacter is reserved for malformed glyph content;
// the forgiving line-stripping rules mean the current parser never emits it.
var (
	ErrInvalidHeader    = errors.New("invalid header")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrUnexpectedEOF    = errors.New("unexpected end of file")
)

// header carries the fields of the first line we act on; baseline, max
// length and old layout are validated as integers but otherwise unused.
type header struct {
	hardblank    rune
	height       int
	commentLines int
}

// Parse builds a Font from the textual content of an FLF or TLF file
func Parse(name, content string) (*Font, error) {
	lines := splitLines(content)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnexpectedEOF)
	}

	hdr, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	// Comment lines are skipped verbatim, not validated
	pos := 1 + hdr.commentLines

	glyphs := make(map[rune][]string, glyphCount)
	for ch := firstGlyph; ch <= lastGlyph; ch++ {
		glyph, next, err := parseGlyph(lines, pos, hdr)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph %q", err, ch)
		}
		glyphs[ch] = glyph
		pos = next
	}

	return &Font{
		Name:   name,
		Height: hdr.height,
		glyphs: glyphs,
	}, nil
}

// parseHeader reads "<sig><hardblank> height baseline max_length old_layout
// comment_lines ...", tolerating trailing fields.
func parseHeader(line string) (header, error) {
	if !strings.HasPrefix(line, flfSignature) && !strings.HasPrefix(line, tlfSignature) {
		return header{}, fmt.Errorf("%w: missing %s or %s signature", ErrInvalidHeader, flfSignature, tlfSignature)
	}

	rest := line[len(flfSignature):]
	hardblank, size := utf8.DecodeRuneInString(rest)
	if size == 0 || hardblank == utf8.RuneError {
		return header{}, fmt.Errorf("%w: missing hardblank character", ErrInvalidHeader)
	}

	fields := strings.Fields(rest[size:])
	if len(fields) < 5 {
		return header{}, fmt.Errorf("%w: want at least 5 numeric fields, got %d", ErrInvalidHeader, len(fields))
	}

	nums := make([]int, 5)
	names := []string{"height", "baseline", "max_length", "old_layout", "comment_lines"}
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return header{}, fmt.Errorf("%w: bad %s %q", ErrInvalidHeader, names[i], fields[i])
		}
		nums[i] = n
	}

	if nums[0] < 1 {
		return header{}, fmt.Errorf("%w: height %d", ErrInvalidHeader, nums[0])
	}
	if nums[4] < 0 {
		return header{}, fmt.Errorf("%w: comment_lines %d", ErrInvalidHeader, nums[4])
	}

	return header{
		hardblank:    hardblank,
		height:       nums[0],
		commentLines: nums[4],
	}, nil
}

// parseGlyph reads height consecutive lines starting at pos. Every line is
// trimmed of trailing whitespace, stripped of its trailing '@' end markers
// (doubled on the glyph's final line, but the stripping is deliberately
// identical for every line), and has the hardblank replaced by a space.
func parseGlyph(lines []string, pos int, hdr header) ([]string, int, error) {
	glyph := make([]string, 0, hdr.height)

	for i := 0; i < hdr.height; i++ {
		if pos >= len(lines) {
			return nil, pos, ErrUnexpectedEOF
		}
		line := lines[pos]
		pos++

		cleaned := strings.TrimRightFunc(line, unicode.IsSpace)
		cleaned = strings.TrimRight(cleaned, "@")
		cleaned = strings.ReplaceAll(cleaned, string(hdr.hardblank), " ")

		glyph = append(glyph, cleaned)
	}

	return glyph, pos, nil
}

// splitLines splits on newlines the way the glyph data expects: a trailing
// newline does not produce a phantom empty line.
func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
