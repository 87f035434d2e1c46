package cursor

import "fmt"

// Cursor is an insertion point plus the sticky column remembered across
// vertical moves, so traversing a short line does not permanently lose
// the original column.
// Cursor is an immutable value type.
type Cursor struct {
	Position   Position
	PreferredX int
}

// NewCursor creates a cursor at the given line and column. The preferred
// column starts at the cursor's own column.
func NewCursor(y, x int) Cursor {
	return Cursor{Position: NewPosition(y, x), PreferredX: x}
}

// WithPreferredX returns a cursor with the given sticky column.
func (c Cursor) WithPreferredX(x int) Cursor {
	return Cursor{Position: c.Position, PreferredX: x}
}

// MoveTo returns a cursor at the given position keeping the sticky column.
func (c Cursor) MoveTo(p Position) Cursor {
	return Cursor{Position: p, PreferredX: c.PreferredX}
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor%s", c.Position)
}
