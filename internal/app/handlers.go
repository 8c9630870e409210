package app

import (
	"errors"
	"fmt"

	"types-editor/internal/loader"
	"types-editor/internal/logger"
	"types-editor/internal/table"

	"fyne.io/fyne/v2"
)

const handlersComponent = "Handlers"

// View is the part of the window the handlers drive
type View interface {
	ShowFolderDialog(chosen func(dir string), failed func(err error))
	SetDirectory(dir string)
	SetRecordCount(count int)
	SetStatus(status string)
	RefreshTable()
	FocusEditor()
}

// TypesLoader reads a mission's types file in the background
type TypesLoader interface {
	Start(dir string, done func(loader.Result))
}

type Handlers struct {
	session *Session
	view    View
	loader  TypesLoader
	logger  logger.Logger

	// post runs fn on the UI goroutine
	post func(fn func())
}

func NewHandlers(session *Session, view View, typesLoader TypesLoader, log logger.Logger) *Handlers {
	h := &Handlers{
		session: session,
		view:    view,
		loader:  typesLoader,
		logger:  log,
		post:    fyne.Do,
	}

	session.Editor.SetPatchHandler(h.onPatched)
	return h
}

func (h *Handlers) HandleSelectDirectory() {
	h.view.ShowFolderDialog(h.HandleDirectoryChosen, func(err error) {
		h.logger.Error(handlersComponent, fmt.Errorf("directory selection: %w", err), nil)
	})
}

// HandleDirectoryChosen discards the current records and loads dir
func (h *Handlers) HandleDirectoryChosen(dir string) {
	h.logger.Info(handlersComponent, "mission directory selected", map[string]interface{}{
		"dir": dir,
	})

	h.session.Begin(dir)
	h.view.SetDirectory(dir)
	h.view.SetRecordCount(0)
	h.view.SetStatus("Loading types...")
	h.view.RefreshTable()

	h.loader.Start(dir, func(result loader.Result) {
		h.post(func() {
			h.applyLoad(result)
		})
	})
}

func (h *Handlers) applyLoad(result loader.Result) {
	if result.Dir != h.session.Directory {
		return
	}

	if result.Err != nil {
		// already logged by the loader; the table stays empty
		h.view.SetStatus("Ready")
		return
	}

	h.session.Fill(result.Items)
	h.view.SetRecordCount(h.session.Model.Len())
	h.view.SetStatus("Ready")
	h.view.RefreshTable()
}

// HandleCellSelected opens a cell for editing
func (h *Handlers) HandleCellSelected(cell table.Cell) {
	_, err := h.session.Editor.Begin(cell)
	switch {
	case err == nil:
		h.view.SetStatus("Editing " + cell.Field + " of " + cell.Name)
		h.view.RefreshTable()
		h.view.FocusEditor()
	case errors.Is(err, table.ErrNotEditable):
		h.commitOpenCell()
	default:
		h.reportEditError(err)
	}
}

func (h *Handlers) HandleEditInput(text string) {
	h.session.Editor.Input(text)
}

func (h *Handlers) HandleEditSubmit() {
	h.afterCommit(h.session.Editor.Confirm())
}

func (h *Handlers) HandleEditFocusLost() {
	if h.session.Editor.State() != table.Editing {
		return
	}
	h.afterCommit(h.session.Editor.ClickOutside())
}

func (h *Handlers) HandleEditCancel() {
	h.session.Editor.Cancel()
	h.view.SetStatus("Ready")
	h.view.RefreshTable()
}

// commitOpenCell treats a click on a read-only cell as a click outside
func (h *Handlers) commitOpenCell() {
	if h.session.Editor.State() != table.Editing {
		return
	}
	h.afterCommit(h.session.Editor.ClickOutside())
}

func (h *Handlers) afterCommit(err error) {
	if err != nil {
		h.reportEditError(err)
		return
	}
	h.view.RefreshTable()
}

func (h *Handlers) reportEditError(err error) {
	var verr *table.ValidationError
	switch {
	case errors.As(err, &verr):
		h.view.SetStatus(verr.Error())
		h.view.RefreshTable()
		h.view.FocusEditor()
	case errors.Is(err, table.ErrNotEditing):
	case errors.Is(err, table.ErrRecordNotFound):
		h.logger.Warning(handlersComponent, "edit dropped", map[string]interface{}{
			"error": err.Error(),
		})
	default:
		h.logger.Error(handlersComponent, err, nil)
	}
}

func (h *Handlers) onPatched(patch table.Patch) {
	for field, value := range patch.Fields {
		fields := map[string]interface{}{
			"name":  patch.Name,
			"field": field,
		}
		if value != nil {
			fields["value"] = *value
		}
		h.logger.Debug(handlersComponent, "record patched", fields)
		h.view.SetStatus(fmt.Sprintf("Updated %s of %s", field, patch.Name))
	}
}
