package input

import (
	"testing"

	"github.com/quilledit/quill/internal/renderer/backend"
)

func keyEvent(key backend.Key, r rune, mod backend.ModMask) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key, Rune: r, Mod: mod}
}

func TestResolveMotionKeys(t *testing.T) {
	k := Default()

	tests := []struct {
		ev   backend.Event
		want Action
	}{
		{keyEvent(backend.KeyLeft, 0, backend.ModNone), ActionCursorLeft},
		{keyEvent(backend.KeyRight, 0, backend.ModNone), ActionCursorRight},
		{keyEvent(backend.KeyUp, 0, backend.ModNone), ActionCursorUp},
		{keyEvent(backend.KeyDown, 0, backend.ModNone), ActionCursorDown},
		{keyEvent(backend.KeyHome, 0, backend.ModNone), ActionCursorLineBegin},
		{keyEvent(backend.KeyEnd, 0, backend.ModNone), ActionCursorLineEnd},
		{keyEvent(backend.KeyHome, 0, backend.ModCtrl), ActionCursorFileBegin},
		{keyEvent(backend.KeyLeft, 0, backend.ModAlt), ActionCursorWordPrev},
		{keyEvent(backend.KeyLeft, 0, backend.ModShift), ActionSelectLeft},
		{keyEvent(backend.KeyRight, 0, backend.ModShift|backend.ModAlt), ActionSelectWordNext},
		{keyEvent(backend.KeyEscape, 0, backend.ModNone), ActionSelectCollapse},
		{keyEvent(backend.KeyBackspace, 0, backend.ModNone), ActionEditBackspace},
		{keyEvent(backend.KeyEnter, 0, backend.ModNone), ActionEditNewline},
		{keyEvent(backend.KeyCtrlS, 0, backend.ModNone), ActionFileSave},
		{keyEvent(backend.KeyCtrlQ, 0, backend.ModNone), ActionAppQuit},
		{keyEvent(backend.KeyCtrlA, 0, backend.ModNone), ActionSelectAll},
		{keyEvent(backend.KeyCtrlC, 0, backend.ModNone), ActionClipboardCopy},
	}
	for _, tt := range tests {
		cmd, ok := k.Resolve(tt.ev)
		if !ok || cmd.Action != tt.want {
			t.Errorf("Resolve(%+v) = %q ok=%v, want %q", tt.ev, cmd.Action, ok, tt.want)
		}
	}
}

func TestResolveControlModifierFallback(t *testing.T) {
	k := Default()

	cmd, ok := k.Resolve(keyEvent(backend.KeyCtrlS, 0, backend.ModCtrl))
	if !ok || cmd.Action != ActionFileSave {
		t.Errorf("ctrl-modified control key should resolve, got %q ok=%v", cmd.Action, ok)
	}
}

func TestResolveRuneInsert(t *testing.T) {
	k := Default()

	cmd, ok := k.Resolve(keyEvent(backend.KeyRune, 'q', backend.ModNone))
	if !ok || cmd.Action != ActionEditInsert || cmd.Text != "q" {
		t.Errorf("unexpected command %+v ok=%v", cmd, ok)
	}

	cmd, ok = k.Resolve(keyEvent(backend.KeyRune, 'Q', backend.ModShift))
	if !ok || cmd.Text != "Q" {
		t.Errorf("shifted rune should insert, got %+v ok=%v", cmd, ok)
	}
}

func TestResolveTabInsertsTab(t *testing.T) {
	k := Default()

	cmd, ok := k.Resolve(keyEvent(backend.KeyTab, 0, backend.ModNone))
	if !ok || cmd.Action != ActionEditInsert || cmd.Text != "\t" {
		t.Errorf("unexpected command %+v ok=%v", cmd, ok)
	}
}

func TestResolveUnbound(t *testing.T) {
	k := Default()

	if _, ok := k.Resolve(keyEvent(backend.KeyRune, 'x', backend.ModAlt)); ok {
		t.Error("alt-modified rune should not insert")
	}
	if _, ok := k.Resolve(keyEvent(backend.KeyDelete, 0, backend.ModNone)); ok {
		t.Error("unbound key should not resolve")
	}
	if _, ok := k.Resolve(backend.Event{Type: backend.EventResize}); ok {
		t.Error("non-key event should not resolve")
	}
}

func TestBindOverride(t *testing.T) {
	k := Default()
	k.Bind(backend.KeyCtrlQ, backend.ModNone, ActionFileSave)

	cmd, ok := k.Resolve(keyEvent(backend.KeyCtrlQ, 0, backend.ModNone))
	if !ok || cmd.Action != ActionFileSave {
		t.Errorf("rebinding should replace the action, got %q", cmd.Action)
	}
}
