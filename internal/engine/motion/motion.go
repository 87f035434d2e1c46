package motion

import (
	"github.com/quilledit/quill/internal/engine/cursor"
	"github.com/quilledit/quill/internal/engine/document"
)

// Left moves one position left, crossing onto the end of the previous
// line at a line's beginning. At the top of the document the position is
// unchanged.
func Left(d document.Document, pos cursor.Position) cursor.Position {
	line := d.Line(pos.Y)

	if pos.X <= line.Beginning() {
		if pos.Y == 0 {
			return pos
		}
		prev := d.Line(pos.Y - 1)
		return cursor.NewPosition(pos.Y-1, prev.End())
	}
	return cursor.NewPosition(pos.Y, pos.X-1)
}

// Right moves one position right, crossing onto the beginning of the next
// line at a line's end. At the bottom of the document the position is
// unchanged.
func Right(d document.Document, pos cursor.Position) cursor.Position {
	line := d.Line(pos.Y)

	if pos.X >= line.End() {
		if pos.Y >= d.LineCount()-1 {
			return pos
		}
		next := d.Line(pos.Y + 1)
		return cursor.NewPosition(pos.Y+1, next.Beginning())
	}
	return cursor.NewPosition(pos.Y, pos.X+1)
}

// Up moves to the previous line, clamping the sticky column into the
// target line's bounds. At the top of the document the position is
// unchanged.
func Up(d document.Document, pos cursor.Position, preferredX int) cursor.Position {
	if pos.Y == 0 {
		return pos
	}
	target := d.Line(pos.Y - 1)
	return cursor.NewPosition(pos.Y-1, target.ClampX(preferredX))
}

// Down moves to the next line, clamping the sticky column into the target
// line's bounds. At the bottom of the document the position is unchanged.
func Down(d document.Document, pos cursor.Position, preferredX int) cursor.Position {
	if pos.Y >= d.LineCount()-1 {
		return pos
	}
	target := d.Line(pos.Y + 1)
	return cursor.NewPosition(pos.Y+1, target.ClampX(preferredX))
}

// BeginningOfLine moves to the current line's beginning. On heading
// starts that is the start of the hidden marker.
func BeginningOfLine(d document.Document, pos cursor.Position) cursor.Position {
	return cursor.NewPosition(pos.Y, d.Line(pos.Y).Beginning())
}

// EndOfLine moves to the current line's end.
func EndOfLine(d document.Document, pos cursor.Position) cursor.Position {
	return cursor.NewPosition(pos.Y, d.Line(pos.Y).End())
}

// BeginningOfFile returns the first addressable position of the document.
func BeginningOfFile(d document.Document) cursor.Position {
	return cursor.NewPosition(0, d.Line(0).Beginning())
}

// EndOfFile returns the last addressable position of the document.
func EndOfFile(d document.Document) cursor.Position {
	lastY := d.LineCount() - 1
	return cursor.NewPosition(lastY, d.Line(lastY).End())
}
