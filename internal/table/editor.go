package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"types-editor/internal/types"
)

type CellState int

const (
	Viewing CellState = iota
	Editing
)

func (s CellState) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

var (
	ErrNotEditable = errors.New("column is not editable")
	ErrNotEditing  = errors.New("no cell is being edited")
)

// Cell addresses one grid cell by record key and column key
type Cell struct {
	Name  string
	Field string
}

// ValidationError rejects an edited value. The cell stays open.
type ValidationError struct {
	Field  string
	Title  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Title + " " + e.Reason
}

// Editor drives the per-cell Viewing/Editing state machine. At most one
// cell is in Editing at a time; every successful confirmation applies
// exactly one Patch to the model.
type Editor struct {
	model *Model
	state CellState
	cell  Cell
	draft string

	onPatch func(Patch)
}

func NewEditor(model *Model) *Editor {
	return &Editor{model: model}
}

// SetPatchHandler registers a callback run after each applied patch
func (e *Editor) SetPatchHandler(handler func(Patch)) {
	e.onPatch = handler
}

func (e *Editor) State() CellState {
	return e.state
}

// Active returns the cell being edited
func (e *Editor) Active() (Cell, bool) {
	return e.cell, e.state == Editing
}

// IsEditing reports whether c is the open cell
func (e *Editor) IsEditing(c Cell) bool {
	return e.state == Editing && e.cell == c
}

func (e *Editor) Draft() string {
	return e.draft
}

// Input records the current text of the open cell
func (e *Editor) Input(text string) {
	if e.state == Editing {
		e.draft = text
	}
}

// Begin opens c for editing and returns its initial text. Any other open
// cell is committed first, as a click outside it would; if that commit is
// rejected the other cell stays open and c is not opened.
func (e *Editor) Begin(c Cell) (string, error) {
	if e.IsEditing(c) {
		return e.draft, nil
	}

	col, ok := ColumnByKey(c.Field)
	if !ok || !col.Editable {
		return "", fmt.Errorf("%w: %q", ErrNotEditable, c.Field)
	}
	item, ok := e.model.Lookup(c.Name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRecordNotFound, c.Name)
	}

	if e.state == Editing {
		if err := e.commit(); err != nil {
			return "", err
		}
	}

	e.state = Editing
	e.cell = c
	e.draft = CellText(item, c.Field)
	return e.draft, nil
}

// Confirm validates the draft and applies it (Enter / submit)
func (e *Editor) Confirm() error {
	if e.state != Editing {
		return ErrNotEditing
	}
	return e.commit()
}

// ClickOutside applies the draft when the user clicks away from the open
// cell. It is a no-op while nothing is being edited.
func (e *Editor) ClickOutside() error {
	if e.state != Editing {
		return nil
	}
	return e.commit()
}

// Cancel closes the open cell without touching the model
func (e *Editor) Cancel() {
	e.reset()
}

// Reset drops any edit in progress, used when the model is reloaded
func (e *Editor) Reset() {
	e.reset()
}

func (e *Editor) commit() error {
	value, err := e.validate()
	if err != nil {
		return err
	}

	patch := Patch{
		Name:   e.cell.Name,
		Fields: map[string]*int{e.cell.Field: types.Int(value)},
	}
	if err := e.model.Patch(patch); err != nil {
		return err
	}

	e.reset()
	if e.onPatch != nil {
		e.onPatch(patch)
	}
	return nil
}

func (e *Editor) validate() (int, error) {
	col, _ := ColumnByKey(e.cell.Field)

	text := strings.TrimSpace(e.draft)
	if text == "" {
		return 0, &ValidationError{Field: col.Key, Title: col.Title, Reason: "is required."}
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ValidationError{Field: col.Key, Title: col.Title, Reason: "must be a whole number."}
	}
	return value, nil
}

func (e *Editor) reset() {
	e.state = Viewing
	e.cell = Cell{}
	e.draft = ""
}
