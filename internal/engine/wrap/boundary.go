package wrap

import "unicode"

// isWordStart reports whether offset i begins a whitespace-delimited word:
// a non-space character at the start of the text or right after a space.
func isWordStart(runes []rune, i int) bool {
	if i < 0 || i >= len(runes) || unicode.IsSpace(runes[i]) {
		return false
	}
	return i == 0 || unicode.IsSpace(runes[i-1])
}

// PreviousWordBoundary returns the nearest word start strictly before
// offset within the text, or false when none exists in that direction.
func PreviousWordBoundary(text string, offset int) (int, bool) {
	runes := []rune(text)
	if offset > len(runes) {
		offset = len(runes)
	}

	for i := offset - 1; i >= 0; i-- {
		if isWordStart(runes, i) {
			return i, true
		}
	}
	return 0, false
}

// NextWordBoundary returns the nearest word start strictly after offset
// within the text, or false when none exists in that direction.
func NextWordBoundary(text string, offset int) (int, bool) {
	runes := []rune(text)
	if offset < -1 {
		offset = -1
	}

	for i := offset + 1; i < len(runes); i++ {
		if isWordStart(runes, i) {
			return i, true
		}
	}
	return 0, false
}
