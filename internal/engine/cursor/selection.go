package cursor

import "fmt"

// Direction reports which way a selection extends.
type Direction uint8

const (
	Forwards Direction = iota
	Backwards
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forwards:
		return "forwards"
	case Backwards:
		return "backwards"
	default:
		return "forwards"
	}
}

// Selection is a range of selected text. Start is the anchor where the
// selection began; End is the floating endpoint that moves with extending
// commands.
// Selection is an immutable value type.
type Selection struct {
	Start Position
	End   Position
}

// NewSelection creates a selection from anchor to end.
func NewSelection(start, end Position) Selection {
	return Selection{Start: start, End: end}
}

// Direction returns Backwards if the floating end precedes the anchor.
func (s Selection) Direction() Direction {
	if s.End.Before(s.Start) {
		return Backwards
	}
	return Forwards
}

// Smallest returns the earlier of the two endpoints.
func (s Selection) Smallest() Position {
	if s.Start.Before(s.End) {
		return s.Start
	}
	return s.End
}

// Largest returns the later of the two endpoints.
func (s Selection) Largest() Position {
	if s.Start.After(s.End) {
		return s.Start
	}
	return s.End
}

// IsEmpty returns true if both endpoints coincide.
func (s Selection) IsEmpty() bool {
	return s.Start.Compare(s.End) == 0
}

// Extend returns a selection with the same anchor and a new floating end.
func (s Selection) Extend(end Position) Selection {
	return Selection{Start: s.Start, End: end}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	arrow := "→"
	if s.Direction() == Backwards {
		arrow = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Start, arrow, s.End)
}
