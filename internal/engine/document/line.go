package document

import "strings"

// LineKind classifies a logical line. The set is closed: consumers
// dispatch over exactly these three kinds.
type LineKind uint8

const (
	KindNormal               LineKind = iota // regular text outside any heading
	KindHeadlineStart                        // begins with a 1-6 '#' marker and a space
	KindHeadlineContinuation                 // inside a heading block, until an empty line
)

// String returns the string representation of the line kind.
func (k LineKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindHeadlineStart:
		return "headline-start"
	case KindHeadlineContinuation:
		return "headline-continuation"
	}
	return "normal"
}

// Line is one classified logical line of the document. Level is the
// heading level and is meaningful only when Kind is KindHeadlineStart.
type Line struct {
	Text  string
	Kind  LineKind
	Level int
}

// Beginning returns the smallest addressable column of the line.
// Heading starts reserve the negative range [-(level+1), -1] for the
// hidden marker, so their beginning sits before the visible text.
func (l Line) Beginning() int {
	switch l.Kind {
	case KindHeadlineStart:
		return -(l.Level + 1)
	case KindHeadlineContinuation, KindNormal:
		return 0
	}
	return 0
}

// End returns the largest addressable column of the line, measured from
// the visible text start.
func (l Line) End() int {
	switch l.Kind {
	case KindHeadlineStart:
		return l.Length() - l.Level - 1
	case KindHeadlineContinuation, KindNormal:
		return l.Length()
	}
	return l.Length()
}

// Length returns the raw line length in runes, marker included.
func (l Line) Length() int {
	return len([]rune(l.Text))
}

// VisibleText returns the line text without the hidden heading marker.
func (l Line) VisibleText() string {
	switch l.Kind {
	case KindHeadlineStart:
		runes := []rune(l.Text)
		return string(runes[l.Level+1:])
	case KindHeadlineContinuation, KindNormal:
		return l.Text
	}
	return l.Text
}

// ClampX clamps a target column into [Beginning, End].
func (l Line) ClampX(preferredX int) int {
	if preferredX < l.Beginning() {
		return l.Beginning()
	}
	if preferredX > l.End() {
		return l.End()
	}
	return preferredX
}

// headlineLevel reports whether the line opens a heading and at which
// level. After trimming leading whitespace the line must start with 1-6
// '#' characters immediately followed by a space, and the marker must not
// be the whole line.
func headlineLevel(line string) (int, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "#") {
		return 0, false
	}

	runes := []rune(trimmed)
	level := 0
	for level < len(runes) && runes[level] == '#' {
		level++
	}

	if level < 1 || level > 6 {
		return 0, false
	}
	if level >= len(runes) || runes[level] != ' ' {
		return 0, false
	}
	return level, true
}
