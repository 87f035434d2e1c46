package buffer

import (
	"io"
	"strings"
)

// Offset is a rune position in the buffer. The document model is
// character-addressed, so every public offset counts runes, not bytes.
type Offset = int

// LineEnding specifies a line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding returns the most common line ending in the text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lfCount, crlfCount, crCount int

	for i := 0; i < len(text); i++ {
		if text[i] == '\r' {
			if i+1 < len(text) && text[i+1] == '\n' {
				crlfCount++
				i++
			} else {
				crCount++
			}
		} else if text[i] == '\n' {
			lfCount++
		}
	}

	if crlfCount > lfCount && crlfCount >= crCount {
		return LineEndingCRLF
	}
	if crCount > lfCount && crCount > crlfCount {
		return LineEndingCR
	}
	return LineEndingLF
}

// Buffer owns the raw document text as a single mutable rune sequence.
// Replace is the only mutator. Content is kept LF-normalized; conversion
// to other line ending styles happens at the persistence boundary.
// The buffer is single-owner and not safe for concurrent use.
type Buffer struct {
	content  []rune
	revision uint64
	dirty    bool
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer with initial content.
// Line endings are normalized to LF.
func FromString(s string) *Buffer {
	return &Buffer{content: []rune(Normalize(s))}
}

// FromReader creates a buffer from an io.Reader.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// Normalize converts CRLF and CR sequences to LF. All text entering the
// buffer passes through it, so edit length math can rely on the
// normalized form.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	return string(b.content)
}

// Len returns the buffer length in runes.
func (b *Buffer) Len() Offset {
	return len(b.content)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// Slice returns the text in [start, end). The bounds are clamped into the
// buffer, so out-of-range input yields a shorter (possibly empty) result
// instead of an error.
func (b *Buffer) Slice(start, end Offset) string {
	start, end = b.clampRange(start, end)
	return string(b.content[start:end])
}

// Replace substitutes the text in [start, end) with the replacement.
// It is the sole mutator of buffer content. Bounds are clamped, the
// replacement is LF-normalized, and the revision counter advances.
func (b *Buffer) Replace(start, end Offset, text string) {
	start, end = b.clampRange(start, end)
	repl := []rune(Normalize(text))

	next := make([]rune, 0, len(b.content)-(end-start)+len(repl))
	next = append(next, b.content[:start]...)
	next = append(next, repl...)
	next = append(next, b.content[end:]...)

	b.content = next
	b.revision++
	b.dirty = true
}

// Revision returns the current revision counter. It advances on every
// Replace, so callers may use it to key caches of derived state.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// Dirty returns true if the buffer has changed since the last MarkSaved.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// MarkSaved records that the current content has been persisted.
func (b *Buffer) MarkSaved() {
	b.dirty = false
}

// clampRange clamps [start, end) into the buffer and orders the bounds.
func (b *Buffer) clampRange(start, end Offset) (Offset, Offset) {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	if start > len(b.content) {
		start = len(b.content)
	}
	if end > len(b.content) {
		end = len(b.content)
	}
	return start, end
}
