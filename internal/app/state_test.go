package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/quilledit/quill/internal/engine"
)

func TestLoadStateMissingFile(t *testing.T) {
	st := LoadState(filepath.Join(t.TempDir(), "absent.json"))

	if st.SessionID == "" {
		t.Error("fresh state should have a session ID")
	}
	if st.LastFile != "" || len(st.Recent) != 0 {
		t.Errorf("fresh state should be empty, got %+v", st)
	}
}

func TestLoadStateInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	st := LoadState(path)
	if st.SessionID == "" || st.LastFile != "" {
		t.Errorf("invalid state file should yield a fresh state, got %+v", st)
	}
}

func TestStateSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	st := NewSessionState()
	st.Touch("/tmp/a.md", engine.Position{Y: 4, X: 7})
	st.Touch("/tmp/b.md", engine.Position{Y: 1, X: 2})

	if err := st.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "last.file").String(); got != "/tmp/b.md" {
		t.Errorf("last.file = %q", got)
	}

	loaded := LoadState(path)
	if loaded.LastFile != "/tmp/b.md" || loaded.LastLine != 1 || loaded.LastCol != 2 {
		t.Errorf("loaded last = %q %d:%d", loaded.LastFile, loaded.LastLine, loaded.LastCol)
	}
	if len(loaded.Recent) != 2 || loaded.Recent[0] != "/tmp/b.md" || loaded.Recent[1] != "/tmp/a.md" {
		t.Errorf("recent = %v", loaded.Recent)
	}
	if loaded.SessionID == st.SessionID {
		t.Error("each load should mint a new session ID")
	}
}

func TestTouchDeduplicatesAndCaps(t *testing.T) {
	st := NewSessionState()

	st.Touch("/tmp/a.md", engine.Position{})
	st.Touch("/tmp/b.md", engine.Position{})
	st.Touch("/tmp/a.md", engine.Position{})

	if len(st.Recent) != 2 || st.Recent[0] != "/tmp/a.md" || st.Recent[1] != "/tmp/b.md" {
		t.Errorf("recent = %v", st.Recent)
	}

	for i := 0; i < maxRecentFiles+5; i++ {
		st.Touch(filepath.Join("/tmp", string(rune('a'+i))+".md"), engine.Position{})
	}
	if len(st.Recent) != maxRecentFiles {
		t.Errorf("recent length = %d, want %d", len(st.Recent), maxRecentFiles)
	}
}

func TestTouchEmptyFileKeepsRecent(t *testing.T) {
	st := NewSessionState()
	st.Touch("/tmp/a.md", engine.Position{Y: 3, X: 1})
	st.Touch("", engine.Position{Y: 0, X: 0})

	if st.LastFile != "" {
		t.Errorf("LastFile = %q, want empty", st.LastFile)
	}
	if len(st.Recent) != 1 || st.Recent[0] != "/tmp/a.md" {
		t.Errorf("recent = %v", st.Recent)
	}
}

func TestLastPosition(t *testing.T) {
	st := NewSessionState()
	st.Touch("/tmp/a.md", engine.Position{Y: 5, X: 2})

	if pos, ok := st.LastPosition("/tmp/a.md"); !ok || pos != (engine.Position{Y: 5, X: 2}) {
		t.Errorf("LastPosition = %+v ok=%v", pos, ok)
	}
	if _, ok := st.LastPosition("/tmp/other.md"); ok {
		t.Error("position should not apply to a different file")
	}
	if _, ok := st.LastPosition(""); ok {
		t.Error("position should not apply to an unnamed buffer")
	}
}
