package motion

import (
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/engine/document"
	"github.com/quilledit/quill/internal/engine/wrap"
)

// BeginningOfWord moves to the nearest word start strictly before the
// position. When the current line has none it recurses into previous
// lines, where an empty line is itself a valid stop, and falls back to
// the beginning of the file at the top edge.
func BeginningOfWord(d document.Document, pos cursor.Position) cursor.Position {
	line := d.Line(pos.Y)

	if b, ok := wrap.PreviousWordBoundary(line.VisibleText(), visibleOffset(line, pos.X)); ok {
		return cursor.NewPosition(pos.Y, b)
	}

	for y := pos.Y - 1; y >= 0; y-- {
		prev := d.Line(y)
		if prev.Length() == 0 {
			return cursor.NewPosition(y, 0)
		}
		visible := prev.VisibleText()
		if b, ok := wrap.PreviousWordBoundary(visible, len([]rune(visible))+1); ok {
			return cursor.NewPosition(y, b)
		}
	}
	return BeginningOfFile(d)
}

// EndOfWord moves to the nearest word start strictly after the position.
// When the current line has none it recurses into following lines,
// where an empty line is itself a valid stop, and falls back to the end
// of the file at the bottom edge.
func EndOfWord(d document.Document, pos cursor.Position) cursor.Position {
	line := d.Line(pos.Y)

	if b, ok := wrap.NextWordBoundary(line.VisibleText(), visibleOffset(line, pos.X)); ok {
		return cursor.NewPosition(pos.Y, b)
	}

	lineCount := d.LineCount()
	for y := pos.Y + 1; y < lineCount; y++ {
		next := d.Line(y)
		if next.Length() == 0 {
			return cursor.NewPosition(y, 0)
		}
		if b, ok := wrap.NextWordBoundary(next.VisibleText(), -1); ok {
			return cursor.NewPosition(y, b)
		}
	}
	return EndOfFile(d)
}

// visibleOffset maps a column to an offset into the line's visible text:
// marker columns collapse to the visible start.
func visibleOffset(line document.Line, x int) int {
	if x < 0 {
		return 0
	}
	if x > line.End() {
		return line.End()
	}
	return x
}
