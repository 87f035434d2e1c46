// Package input maps terminal key events onto named editor actions.
//
// The keymap resolves each key event to a Command; unbound printable
// characters resolve to text insertion. Action names are dotted
// "area.verb" identifiers so logs and future user keymaps read
// naturally.
package input

import "github.com/quilledit/quill/internal/renderer/backend"

// Action identifies an editor operation.
type Action string

// The built-in action set.
const (
	ActionNone Action = ""

	ActionCursorLeft      Action = "cursor.left"
	ActionCursorRight     Action = "cursor.right"
	ActionCursorUp        Action = "cursor.up"
	ActionCursorDown      Action = "cursor.down"
	ActionCursorLineBegin Action = "cursor.line-begin"
	ActionCursorLineEnd   Action = "cursor.line-end"
	ActionCursorFileBegin Action = "cursor.file-begin"
	ActionCursorFileEnd   Action = "cursor.file-end"
	ActionCursorWordPrev  Action = "cursor.word-prev"
	ActionCursorWordNext  Action = "cursor.word-next"

	ActionSelectLeft      Action = "select.left"
	ActionSelectRight     Action = "select.right"
	ActionSelectUp        Action = "select.up"
	ActionSelectDown      Action = "select.down"
	ActionSelectLineBegin Action = "select.line-begin"
	ActionSelectLineEnd   Action = "select.line-end"
	ActionSelectFileBegin Action = "select.file-begin"
	ActionSelectFileEnd   Action = "select.file-end"
	ActionSelectWordPrev  Action = "select.word-prev"
	ActionSelectWordNext  Action = "select.word-next"
	ActionSelectAll       Action = "select.all"
	ActionSelectCollapse  Action = "select.collapse"

	ActionEditInsert    Action = "edit.insert"
	ActionEditBackspace Action = "edit.backspace"
	ActionEditNewline   Action = "edit.newline"

	ActionClipboardCopy  Action = "clipboard.copy"
	ActionClipboardCut   Action = "clipboard.cut"
	ActionClipboardPaste Action = "clipboard.paste"

	ActionFileSave Action = "file.save"
	ActionAppQuit  Action = "app.quit"
)

// Command is a resolved input: an action plus, for text insertion,
// the text to insert.
type Command struct {
	Action Action
	Text   string
}

type binding struct {
	key backend.Key
	mod backend.ModMask
}

// Keymap maps key events to actions.
type Keymap struct {
	bindings map[binding]Action
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[binding]Action)}
}

// Bind maps a key and modifier combination to an action, replacing
// any existing binding.
func (k *Keymap) Bind(key backend.Key, mod backend.ModMask, action Action) {
	k.bindings[binding{key: key, mod: mod}] = action
}

// Resolve maps a terminal event to a Command. ok is false for events
// with no binding and no insertable text.
func (k *Keymap) Resolve(ev backend.Event) (Command, bool) {
	if ev.Type != backend.EventKey {
		return Command{}, false
	}

	action, ok := k.bindings[binding{key: ev.Key, mod: ev.Mod}]
	if !ok && ev.Key != backend.KeyRune && ev.Mod == backend.ModCtrl {
		// Terminals vary on whether control keys carry the Ctrl
		// modifier; fall back to the bare binding.
		action, ok = k.bindings[binding{key: ev.Key, mod: backend.ModNone}]
	}
	if ok {
		cmd := Command{Action: action}
		if action == ActionEditInsert && ev.Key == backend.KeyTab {
			cmd.Text = "\t"
		}
		return cmd, true
	}

	if ev.Key == backend.KeyRune && !ev.Mod.Has(backend.ModCtrl) && !ev.Mod.Has(backend.ModAlt) {
		return Command{Action: ActionEditInsert, Text: string(ev.Rune)}, true
	}
	return Command{}, false
}

// Default returns the standard keymap.
func Default() *Keymap {
	k := NewKeymap()

	k.Bind(backend.KeyLeft, backend.ModNone, ActionCursorLeft)
	k.Bind(backend.KeyRight, backend.ModNone, ActionCursorRight)
	k.Bind(backend.KeyUp, backend.ModNone, ActionCursorUp)
	k.Bind(backend.KeyDown, backend.ModNone, ActionCursorDown)
	k.Bind(backend.KeyHome, backend.ModNone, ActionCursorLineBegin)
	k.Bind(backend.KeyEnd, backend.ModNone, ActionCursorLineEnd)
	k.Bind(backend.KeyHome, backend.ModCtrl, ActionCursorFileBegin)
	k.Bind(backend.KeyEnd, backend.ModCtrl, ActionCursorFileEnd)
	k.Bind(backend.KeyPageUp, backend.ModNone, ActionCursorFileBegin)
	k.Bind(backend.KeyPageDown, backend.ModNone, ActionCursorFileEnd)
	k.Bind(backend.KeyLeft, backend.ModAlt, ActionCursorWordPrev)
	k.Bind(backend.KeyRight, backend.ModAlt, ActionCursorWordNext)

	k.Bind(backend.KeyLeft, backend.ModShift, ActionSelectLeft)
	k.Bind(backend.KeyRight, backend.ModShift, ActionSelectRight)
	k.Bind(backend.KeyUp, backend.ModShift, ActionSelectUp)
	k.Bind(backend.KeyDown, backend.ModShift, ActionSelectDown)
	k.Bind(backend.KeyHome, backend.ModShift, ActionSelectLineBegin)
	k.Bind(backend.KeyEnd, backend.ModShift, ActionSelectLineEnd)
	k.Bind(backend.KeyHome, backend.ModShift|backend.ModCtrl, ActionSelectFileBegin)
	k.Bind(backend.KeyEnd, backend.ModShift|backend.ModCtrl, ActionSelectFileEnd)
	k.Bind(backend.KeyLeft, backend.ModShift|backend.ModAlt, ActionSelectWordPrev)
	k.Bind(backend.KeyRight, backend.ModShift|backend.ModAlt, ActionSelectWordNext)
	k.Bind(backend.KeyCtrlA, backend.ModNone, ActionSelectAll)
	k.Bind(backend.KeyEscape, backend.ModNone, ActionSelectCollapse)

	k.Bind(backend.KeyBackspace, backend.ModNone, ActionEditBackspace)
	k.Bind(backend.KeyEnter, backend.ModNone, ActionEditNewline)
	k.Bind(backend.KeyTab, backend.ModNone, ActionEditInsert)

	k.Bind(backend.KeyCtrlC, backend.ModNone, ActionClipboardCopy)
	k.Bind(backend.KeyCtrlX, backend.ModNone, ActionClipboardCut)
	k.Bind(backend.KeyCtrlV, backend.ModNone, ActionClipboardPaste)

	k.Bind(backend.KeyCtrlS, backend.ModNone, ActionFileSave)
	k.Bind(backend.KeyCtrlQ, backend.ModNone, ActionAppQuit)

	return k
}
