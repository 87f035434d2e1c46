package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/quilledit/quill/internal/engine"
)

// maxRecentFiles caps the recent files list in the session state.
const maxRecentFiles = 10

// SessionState persists editing context between runs: the last open
// file, the cursor position in it, and recently opened files.
type SessionState struct {
	SessionID string
	LastFile  string
	LastLine  int
	LastCol   int
	Recent    []string
}

// NewSessionState returns a fresh state with a generated session ID.
func NewSessionState() *SessionState {
	return &SessionState{SessionID: uuid.New().String()}
}

// LoadState reads session state from path. A missing or unreadable file
// yields a fresh state; a new session ID is generated either way so
// each run is distinguishable in logs.
func LoadState(path string) *SessionState {
	st := NewSessionState()

	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	if !gjson.ValidBytes(data) {
		return st
	}

	st.LastFile = gjson.GetBytes(data, "last.file").String()
	st.LastLine = int(gjson.GetBytes(data, "last.line").Int())
	st.LastCol = int(gjson.GetBytes(data, "last.col").Int())

	gjson.GetBytes(data, "recent").ForEach(func(_, value gjson.Result) bool {
		if len(st.Recent) >= maxRecentFiles {
			return false
		}
		if value.String() != "" {
			st.Recent = append(st.Recent, value.String())
		}
		return true
	})

	return st
}

// Save writes the state to path, creating parent directories as needed.
func (s *SessionState) Save(path string) error {
	if path == "" {
		return errors.New("save state: empty path")
	}

	data := []byte("{}")
	var err error

	if data, err = sjson.SetBytes(data, "session_id", s.SessionID); err != nil {
		return err
	}
	if data, err = sjson.SetBytes(data, "last.file", s.LastFile); err != nil {
		return err
	}
	if data, err = sjson.SetBytes(data, "last.line", s.LastLine); err != nil {
		return err
	}
	if data, err = sjson.SetBytes(data, "last.col", s.LastCol); err != nil {
		return err
	}
	if data, err = sjson.SetBytes(data, "recent", s.Recent); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Touch records file as the most recent entry and remembers the cursor
// position within it.
func (s *SessionState) Touch(file string, pos engine.Position) {
	s.LastFile = file
	s.LastLine = pos.Y
	s.LastCol = pos.X

	if file == "" {
		return
	}

	recent := make([]string, 0, len(s.Recent)+1)
	recent = append(recent, file)
	for _, f := range s.Recent {
		if f == file {
			continue
		}
		recent = append(recent, f)
	}
	if len(recent) > maxRecentFiles {
		recent = recent[:maxRecentFiles]
	}
	s.Recent = recent
}

// LastPosition returns the stored cursor position for file, or ok=false
// when the state belongs to a different file.
func (s *SessionState) LastPosition(file string) (engine.Position, bool) {
	if file == "" || s.LastFile != file {
		return engine.Position{}, false
	}
	return engine.Position{Y: s.LastLine, X: s.LastCol}, true
}
