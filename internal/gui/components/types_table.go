package components

import (
	"image/color"

	"types-editor/internal/table"
	"types-editor/internal/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// HeaderRows is the number of sticky rows above the records: the
// column-group row ("Quantity") and the title row.
const HeaderRows = 2

// RowSource supplies the records shown in the grid
type RowSource interface {
	Len() int
	Row(i int) (types.Item, bool)
}

// EditState tells the grid which cell shows the inline input
type EditState interface {
	IsEditing(c table.Cell) bool
	Draft() string
}

var columnWidths = map[string]float32{
	table.ColumnName:   260,
	table.ColumnUsages: 180,
}

const defaultColumnWidth = 110

// TypesTable renders item records with one inline editable cell at a time
type TypesTable struct {
	widget  *widget.Table
	columns []table.Column
	source  RowSource
	editing EditState
	canvas  fyne.Canvas

	focusPending bool

	cellSelectedHandler func(table.Cell)
	inputHandler        func(string)
	submitHandler       func()
	focusLostHandler    func()
	cancelHandler       func()
}

func NewTypesTable(source RowSource, editing EditState) *TypesTable {
	tt := &TypesTable{
		columns: table.Columns(),
		source:  source,
		editing: editing,
	}

	tt.widget = widget.NewTable(tt.length, tt.createCell, tt.updateCell)
	tt.widget.StickyRowCount = HeaderRows
	tt.widget.OnSelected = tt.onSelected

	for i, col := range tt.columns {
		width, ok := columnWidths[col.Key]
		if !ok {
			width = defaultColumnWidth
		}
		tt.widget.SetColumnWidth(i, width)
	}

	return tt
}

func (tt *TypesTable) GetWidget() *widget.Table {
	return tt.widget
}

// SetCanvas gives the table the canvas used to focus the inline input
func (tt *TypesTable) SetCanvas(c fyne.Canvas) {
	tt.canvas = c
}

func (tt *TypesTable) SetCellSelectedHandler(handler func(table.Cell)) {
	tt.cellSelectedHandler = handler
}

func (tt *TypesTable) SetInputHandler(handler func(string)) {
	tt.inputHandler = handler
}

func (tt *TypesTable) SetSubmitHandler(handler func()) {
	tt.submitHandler = handler
}

func (tt *TypesTable) SetFocusLostHandler(handler func()) {
	tt.focusLostHandler = handler
}

func (tt *TypesTable) SetCancelHandler(handler func()) {
	tt.cancelHandler = handler
}

// FocusEditor focuses the inline input on the next redraw of its cell
func (tt *TypesTable) FocusEditor() {
	tt.focusPending = true
	tt.widget.Refresh()
}

func (tt *TypesTable) Refresh() {
	tt.widget.Refresh()
}

// CellAt maps a grid position to a record cell. Header positions and
// positions past the last record report false.
func (tt *TypesTable) CellAt(id widget.TableCellID) (table.Cell, bool) {
	if id.Row < HeaderRows || id.Col < 0 || id.Col >= len(tt.columns) {
		return table.Cell{}, false
	}
	item, ok := tt.source.Row(id.Row - HeaderRows)
	if !ok {
		return table.Cell{}, false
	}
	return table.Cell{Name: item.Name, Field: tt.columns[id.Col].Key}, true
}

func (tt *TypesTable) length() (int, int) {
	return tt.source.Len() + HeaderRows, len(tt.columns)
}

func (tt *TypesTable) createCell() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis

	tagRect := canvas.NewRectangle(color.Transparent)
	tagRect.CornerRadius = theme.InputRadiusSize()
	tagText := canvas.NewText("", color.White)
	tagText.TextSize = theme.CaptionTextSize()
	tag := container.NewStack(tagRect, container.NewCenter(tagText))
	tag.Hide()

	entry := newCellEntry()
	entry.OnChanged = func(text string) {
		if tt.inputHandler != nil {
			tt.inputHandler(text)
		}
	}
	entry.OnSubmitted = func(string) {
		if tt.submitHandler != nil {
			tt.submitHandler()
		}
	}
	entry.onCancel = func() {
		if tt.cancelHandler != nil {
			tt.cancelHandler()
		}
	}
	entry.onFocusLost = func() {
		if tt.focusLostHandler != nil {
			tt.focusLostHandler()
		}
	}
	entry.Hide()

	view := container.NewBorder(nil, nil, nil, tag, label)
	return container.NewStack(view, entry)
}

type cellParts struct {
	label   *widget.Label
	tag     *fyne.Container
	tagRect *canvas.Rectangle
	tagText *canvas.Text
	entry   *cellEntry
}

func partsOf(obj fyne.CanvasObject) cellParts {
	stack := obj.(*fyne.Container)
	view := stack.Objects[0].(*fyne.Container)
	tag := view.Objects[1].(*fyne.Container)

	return cellParts{
		label:   view.Objects[0].(*widget.Label),
		tag:     tag,
		tagRect: tag.Objects[0].(*canvas.Rectangle),
		tagText: tag.Objects[1].(*fyne.Container).Objects[0].(*canvas.Text),
		entry:   stack.Objects[1].(*cellEntry),
	}
}

func (tt *TypesTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	parts := partsOf(obj)
	parts.tag.Hide()
	parts.label.TextStyle = fyne.TextStyle{}

	if id.Col < 0 || id.Col >= len(tt.columns) {
		return
	}
	col := tt.columns[id.Col]

	switch id.Row {
	case 0:
		parts.entry.Hide()
		parts.label.TextStyle = fyne.TextStyle{Bold: true}
		parts.label.SetText(groupTitle(tt.columns, id.Col))
		return
	case 1:
		parts.entry.Hide()
		parts.label.TextStyle = fyne.TextStyle{Bold: true}
		parts.label.SetText(col.Title)
		return
	}

	item, ok := tt.source.Row(id.Row - HeaderRows)
	if !ok {
		parts.entry.Hide()
		parts.label.SetText("")
		return
	}

	cell := table.Cell{Name: item.Name, Field: col.Key}
	if tt.editing != nil && tt.editing.IsEditing(cell) {
		parts.label.SetText("")
		if parts.entry.Text != tt.editing.Draft() {
			parts.entry.SetText(tt.editing.Draft())
		}
		parts.entry.Show()
		if tt.focusPending && tt.canvas != nil {
			tt.focusPending = false
			tt.canvas.Focus(parts.entry)
		}
		return
	}

	parts.entry.Hide()
	parts.label.SetText(table.CellText(item, col.Key))

	if col.Key == table.ColumnName && item.Category != nil {
		parts.tagText.Text = *item.Category
		parts.tagRect.FillColor = types.TagColor(*item.Category)
		parts.tagText.Refresh()
		parts.tagRect.Refresh()
		parts.tag.Show()
	}
}

// groupTitle labels the first column of each group; a column shows its
// group only once so the pair reads as a merged header.
func groupTitle(columns []table.Column, i int) string {
	group := columns[i].Group
	if group == "" {
		return ""
	}
	if i > 0 && columns[i-1].Group == group {
		return ""
	}
	return group
}

func (tt *TypesTable) onSelected(id widget.TableCellID) {
	tt.widget.UnselectAll()

	cell, ok := tt.CellAt(id)
	if !ok {
		return
	}
	if tt.cellSelectedHandler != nil {
		tt.cellSelectedHandler(cell)
	}
}
