package app

import (
	"path/filepath"

	"github.com/quilledit/quill/internal/engine"
	"github.com/quilledit/quill/internal/input"
	"github.com/quilledit/quill/internal/renderer/backend"
	"github.com/quilledit/quill/internal/storage"
)

// handleEvent routes a backend event. Returns ErrQuit when the user
// requested exit.
func (a *App) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		// Draw reads the current size, nothing to do here.
		return nil
	case backend.EventKey:
		cmd, ok := a.keymap.Resolve(ev)
		if !ok {
			return nil
		}
		return a.apply(cmd)
	default:
		return nil
	}
}

// apply executes a resolved command against the editor.
func (a *App) apply(cmd input.Command) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch cmd.Action {
	case input.ActionCursorLeft:
		a.editor.MoveLeft()
	case input.ActionCursorRight:
		a.editor.MoveRight()
	case input.ActionCursorUp:
		a.editor.MoveUp()
	case input.ActionCursorDown:
		a.editor.MoveDown()
	case input.ActionCursorLineBegin:
		a.editor.MoveBeginningOfLine()
	case input.ActionCursorLineEnd:
		a.editor.MoveEndOfLine()
	case input.ActionCursorFileBegin:
		a.editor.MoveBeginningOfFile()
	case input.ActionCursorFileEnd:
		a.editor.MoveEndOfFile()
	case input.ActionCursorWordPrev:
		a.editor.MoveBeginningOfWord()
	case input.ActionCursorWordNext:
		a.editor.MoveEndOfWord()

	case input.ActionSelectLeft:
		a.editor.SelectLeft()
	case input.ActionSelectRight:
		a.editor.SelectRight()
	case input.ActionSelectUp:
		a.editor.SelectUp()
	case input.ActionSelectDown:
		a.editor.SelectDown()
	case input.ActionSelectLineBegin:
		a.editor.SelectBeginningOfLine()
	case input.ActionSelectLineEnd:
		a.editor.SelectEndOfLine()
	case input.ActionSelectFileBegin:
		a.editor.SelectBeginningOfFile()
	case input.ActionSelectFileEnd:
		a.editor.SelectEndOfFile()
	case input.ActionSelectWordPrev:
		a.editor.SelectBeginningOfWord()
	case input.ActionSelectWordNext:
		a.editor.SelectEndOfWord()
	case input.ActionSelectAll:
		a.editor.SelectAll()
	case input.ActionSelectCollapse:
		a.editor.CollapseSelection()

	case input.ActionEditInsert:
		if a.readOnly {
			return nil
		}
		a.editor.Insert(cmd.Text)
	case input.ActionEditNewline:
		if a.readOnly {
			return nil
		}
		a.editor.Enter()
	case input.ActionEditBackspace:
		if a.readOnly {
			return nil
		}
		a.editor.Backspace()

	case input.ActionClipboardCopy:
		a.copySelection()
	case input.ActionClipboardCut:
		if a.readOnly {
			return nil
		}
		if a.copySelection() {
			a.editor.Backspace()
		}
	case input.ActionClipboardPaste:
		if a.readOnly || a.clip.IsEmpty() {
			return nil
		}
		a.editor.Insert(a.clip.Get())

	case input.ActionFileSave:
		return a.saveFile()
	case input.ActionAppQuit:
		return ErrQuit
	}
	return nil
}

// copySelection copies the selected text to the clipboard. Reports
// whether there was a non-empty selection.
func (a *App) copySelection() bool {
	sel, ok := a.editor.Location().(engine.Selection)
	if !ok || sel.IsEmpty() {
		return false
	}
	a.clip.Set(a.editor.SelectedText())
	return true
}

// SaveAs associates path as the new target and saves the buffer to it.
func (a *App) SaveAs(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.readOnly {
		return nil
	}
	a.store.SetTarget(path)
	a.docName = filepath.Base(path)
	if err := a.store.Save(a.editor.Text()); err != nil {
		a.logger.Error("save failed: %v", err)
		return err
	}
	a.editor.MarkSaved()
	a.logger.Info("saved %s", path)
	return nil
}

// saveFile writes the buffer to the target file. Without a target the
// save is refused and logged, assigning one interactively is not
// supported yet.
func (a *App) saveFile() error {
	if a.readOnly {
		return nil
	}
	if !a.store.HasTarget() {
		a.logger.Warn("save refused: %v", storage.ErrNoTarget)
		return nil
	}
	if err := a.store.Save(a.editor.Text()); err != nil {
		a.logger.Error("save failed: %v", err)
		return err
	}
	a.editor.MarkSaved()
	a.logger.Info("saved %s", a.store.Target())
	return nil
}
