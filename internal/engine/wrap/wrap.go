package wrap

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnwrappableLine reports that a single word exceeds the wrap width
// with no interior whitespace in the first width characters. This is a
// hard failure: the engine refuses to silently mis-wrap such a line.
// Callers that need a layout anyway can fall back to HardWrap.
var ErrUnwrappableLine = errors.New("word exceeds wrap width with no break point")

// DefaultWidth is the column width used when none is configured.
const DefaultWidth = 60

// WrappedText is a derived view over one logical line's text producing
// soft-wrapped sub-lines at a fixed width. Breaks are inserted only at
// whitespace; the whitespace itself is consumed by the break.
type WrappedText struct {
	original string
	width    int
	lines    []string
}

// New computes the soft wrapping of text at the given column width.
// It returns ErrUnwrappableLine when a segment longer than the width
// contains no whitespace within its first width characters.
func New(text string, width int) (*WrappedText, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	lines, err := wrapRunes([]rune(text), width)
	if err != nil {
		return nil, err
	}

	return &WrappedText{original: text, width: width, lines: lines}, nil
}

// wrapRunes greedily takes up to width characters per sub-line. When the
// remainder would exceed the width it searches backward from the width
// column for the last whitespace and breaks there, excluding the
// whitespace from both sub-lines.
func wrapRunes(remaining []rune, width int) ([]string, error) {
	var lines []string

	for len(remaining) > width {
		breakAt := -1
		for i := width; i >= 0; i-- {
			if unicode.IsSpace(remaining[i]) {
				breakAt = i
				break
			}
		}
		if breakAt < 0 {
			return nil, ErrUnwrappableLine
		}

		lines = append(lines, string(remaining[:breakAt]))
		remaining = remaining[breakAt+1:]
	}

	lines = append(lines, string(remaining))
	return lines, nil
}

// HardWrap chunks text at exactly width characters with no regard for
// word boundaries. It is the fallback layout for lines New rejects.
func HardWrap(text string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	runes := []rune(text)
	var lines []string
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	return append(lines, string(runes))
}

// String returns the text with soft breaks inserted as newlines.
func (w *WrappedText) String() string {
	return strings.Join(w.lines, "\n")
}

// Lines returns the wrapped sub-lines.
func (w *WrappedText) Lines() []string {
	return w.lines
}

// LineCount returns the number of wrapped sub-lines.
func (w *WrappedText) LineCount() int {
	return len(w.lines)
}

// Length returns the content length in runes, excluding inserted breaks.
func (w *WrappedText) Length() int {
	return len([]rune(w.original))
}

// Width returns the column width the text was wrapped at.
func (w *WrappedText) Width() int {
	return w.width
}

// IsSoftWrappedLine reports whether sub-line i ends at an inserted break
// rather than the authored end of the line.
func (w *WrappedText) IsSoftWrappedLine(i int) bool {
	return i >= 0 && i < len(w.lines)-1
}

// PreviousWordBoundary scans the unwrapped text for the nearest word
// start strictly before the given offset.
func (w *WrappedText) PreviousWordBoundary(offset int) (int, bool) {
	return PreviousWordBoundary(w.original, offset)
}

// NextWordBoundary scans the unwrapped text for the nearest word start
// strictly after the given offset.
func (w *WrappedText) NextWordBoundary(offset int) (int, bool) {
	return NextWordBoundary(w.original, offset)
}
