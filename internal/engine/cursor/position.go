package cursor

import "fmt"

// Position is a two-dimensional editor position. Y is the logical line
// index. X is the column relative to the line's visible text start, so it
// may be negative on heading lines, where the hidden marker occupies the
// range [-(level+1), -1].
// Position is an immutable value type.
type Position struct {
	Y int
	X int
}

// NewPosition creates a position at the given line and column.
func NewPosition(y, x int) Position {
	return Position{Y: y, X: x}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Y, p.X)
}

// Compare orders positions lexicographically by (Y, X).
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Y < other.Y {
		return -1
	}
	if p.Y > other.Y {
		return 1
	}
	if p.X < other.X {
		return -1
	}
	if p.X > other.X {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}
