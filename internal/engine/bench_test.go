package engine

import (
	"strings"
	"testing"

	"github.com/quilledit/quill/internal/engine/cursor"
)

// ============================================================================
// Setup Helpers
// ============================================================================

func setupLargeEditor(b *testing.B, lines int) *Editor {
	b.Helper()
	var sb strings.Builder
	paragraph := strings.Repeat("lorem ipsum ", 7) + "\n"
	for i := 0; i < lines; i++ {
		if i%20 == 0 {
			sb.WriteString("## Section heading\n")
			continue
		}
		sb.WriteString(paragraph)
	}
	return New(WithContent(sb.String()))
}

// ============================================================================
// Read Operation Benchmarks
// ============================================================================

func BenchmarkEditorText(b *testing.B) {
	e := setupLargeEditor(b, 2000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Text()
	}
}

func BenchmarkEditorLines(b *testing.B) {
	e := setupLargeEditor(b, 2000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Lines()
	}
}

// ============================================================================
// Position Conversion Benchmarks
// ============================================================================

func BenchmarkEditorPositionToOffset(b *testing.B) {
	e := setupLargeEditor(b, 2000)
	mid := cursor.NewPosition(e.LineCount()/2, 10)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.PositionToOffset(mid)
	}
}

func BenchmarkEditorOffsetToPosition(b *testing.B) {
	e := setupLargeEditor(b, 2000)
	mid := e.Len() / 2
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.OffsetToPosition(mid)
	}
}

// ============================================================================
// Edit Benchmarks
// ============================================================================

func BenchmarkEditorInsert(b *testing.B) {
	e := setupLargeEditor(b, 2000)
	e.MoveTo(cursor.NewPosition(e.LineCount()/2, 0))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e.Insert("x")
	}
}

func BenchmarkEditorWrapLine(b *testing.B) {
	e := setupLargeEditor(b, 2000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.WrapLine(3)
	}
}
