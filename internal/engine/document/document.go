package document

import (
	"strings"

	"github.com/quilledit/quill/internal/engine/buffer"
	"github.com/quilledit/quill/internal/engine/cursor"
)

// Document is a pure view over the raw text that segments it into
// classified logical lines and converts between editor positions and raw
// character offsets. All results are recomputed from the current buffer
// content on every call; the document caches nothing.
type Document struct {
	buf *buffer.Buffer
}

// New creates a document view over the given buffer.
func New(buf *buffer.Buffer) Document {
	return Document{buf: buf}
}

// FromString creates a document over a fresh buffer with the given text.
func FromString(text string) Document {
	return Document{buf: buffer.FromString(text)}
}

// Buffer returns the underlying raw text store.
func (d Document) Buffer() *buffer.Buffer {
	return d.buf
}

// Lines segments the current content into classified lines: one entry per
// newline-delimited raw line plus a terminal empty sentinel line, so a
// cursor can rest after the final character.
func (d Document) Lines() []Line {
	raw := splitLines(d.buf.String())
	lines := make([]Line, 0, len(raw)+1)
	insideHeadline := false

	for _, text := range raw {
		level, isStart := headlineLevel(text)

		if isStart {
			insideHeadline = true
		}
		if text == "" {
			insideHeadline = false
		}

		switch {
		case isStart:
			lines = append(lines, Line{Text: text, Kind: KindHeadlineStart, Level: level})
		case insideHeadline:
			lines = append(lines, Line{Text: text, Kind: KindHeadlineContinuation})
		default:
			lines = append(lines, Line{Text: text, Kind: KindNormal})
		}
	}

	lines = append(lines, Line{Text: "", Kind: KindNormal})
	return lines
}

// Line returns the classified line at the given index, clamped into the
// valid range.
func (d Document) Line(index int) Line {
	lines := d.Lines()
	if index < 0 {
		index = 0
	}
	if index >= len(lines) {
		index = len(lines) - 1
	}
	return lines[index]
}

// LineCount returns the number of logical lines including the sentinel.
func (d Document) LineCount() int {
	return len(d.Lines())
}

// PositionToOffset converts an editor position to a raw character offset:
// the lengths of all prior lines plus their newlines, plus the hidden
// marker width on heading starts, plus the column. The result is floored
// at zero so marker columns on the first heading cannot go negative.
func (d Document) PositionToOffset(pos cursor.Position) buffer.Offset {
	lines := d.Lines()

	y := pos.Y
	if y < 0 {
		y = 0
	}
	if y >= len(lines) {
		y = len(lines) - 1
	}

	offset := 0
	for _, line := range lines[:y] {
		offset += line.Length() + 1
	}

	line := lines[y]
	switch line.Kind {
	case KindHeadlineStart:
		offset += line.Level + 1
	case KindHeadlineContinuation, KindNormal:
	}

	offset += pos.X
	if offset < 0 {
		offset = 0
	}
	return offset
}

// OffsetToPosition converts a raw character offset back to an editor
// position by walking lines until the offset falls within one, then
// shifting heading-start columns left of the hidden marker.
func (d Document) OffsetToPosition(offset buffer.Offset) cursor.Position {
	lines := d.Lines()

	x := offset
	if x < 0 {
		x = 0
	}
	y := 0

	for y < len(lines)-1 && x > lines[y].Length() {
		x -= lines[y].Length() + 1
		if x < 0 {
			x = 0
		}
		y++
	}

	line := lines[y]
	switch line.Kind {
	case KindHeadlineStart:
		x -= line.Level + 1
	case KindHeadlineContinuation, KindNormal:
	}

	return cursor.NewPosition(y, x)
}

// splitLines splits text into raw logical lines. A trailing newline does
// not produce an extra empty line; the sentinel in Lines covers the
// position after it.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		parts = parts[:len(parts)-1]
	}
	return parts
}
