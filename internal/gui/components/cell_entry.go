package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// cellEntry is the inline input of an editing cell. It reports Escape and
// focus loss, which the plain Entry does not expose.
type cellEntry struct {
	widget.Entry

	onCancel    func()
	onFocusLost func()
}

func newCellEntry() *cellEntry {
	entry := &cellEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

func (e *cellEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onCancel != nil {
		e.onCancel()
		return
	}
	e.Entry.TypedKey(key)
}

func (e *cellEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocusLost != nil {
		e.onFocusLost()
	}
}
