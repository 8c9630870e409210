package gui

import (
	"types-editor/internal/gui/components"
	"types-editor/internal/table"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// View owns the window content around the types grid
type View struct {
	window fyne.Window

	selectButton  *widget.Button
	typesTable    *components.TypesTable
	statusBar     *components.StatusBar
	mainContainer *fyne.Container

	selectDirectoryHandler func()
	quitHandler            func()
}

func NewView(window fyne.Window, source components.RowSource, editing components.EditState) *View {
	view := &View{
		window: window,
	}

	view.setupComponents(source, editing)
	view.setupLayout()
	view.setupMenus()

	return view
}

func (v *View) setupComponents(source components.RowSource, editing components.EditState) {
	v.selectButton = widget.NewButtonWithIcon("Select Mission Directory", theme.FolderOpenIcon(), func() {
		if v.selectDirectoryHandler != nil {
			v.selectDirectoryHandler()
		}
	})
	v.selectButton.Importance = widget.HighImportance

	v.typesTable = components.NewTypesTable(source, editing)
	v.typesTable.SetCanvas(v.window.Canvas())
	v.statusBar = components.NewStatusBar()
}

func (v *View) setupLayout() {
	toolbar := container.NewHBox(v.selectButton)

	v.mainContainer = container.NewBorder(
		toolbar,
		v.statusBar.GetContainer(),
		nil, nil,
		v.typesTable.GetWidget(),
	)
}

func (v *View) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Select Mission Directory...", func() {
			if v.selectDirectoryHandler != nil {
				v.selectDirectoryHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if v.quitHandler != nil {
				v.quitHandler()
			}
		}),
	)
	fileMenu.Items[2].IsQuit = true

	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func (v *View) GetContainer() *fyne.Container {
	return v.mainContainer
}

// Event handler setters - called by the application

func (v *View) SetSelectDirectoryHandler(handler func()) {
	v.selectDirectoryHandler = handler
}

func (v *View) SetQuitHandler(handler func()) {
	v.quitHandler = handler
}

func (v *View) SetCellSelectedHandler(handler func(table.Cell)) {
	v.typesTable.SetCellSelectedHandler(handler)
}

func (v *View) SetEditInputHandler(handler func(string)) {
	v.typesTable.SetInputHandler(handler)
}

func (v *View) SetEditSubmitHandler(handler func()) {
	v.typesTable.SetSubmitHandler(handler)
}

func (v *View) SetEditFocusLostHandler(handler func()) {
	v.typesTable.SetFocusLostHandler(handler)
}

func (v *View) SetEditCancelHandler(handler func()) {
	v.typesTable.SetCancelHandler(handler)
}

// UI update methods. Callers are on the UI goroutine.

// ShowFolderDialog asks for a mission directory; cancelling calls nothing
func (v *View) ShowFolderDialog(chosen func(dir string), failed func(err error)) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			if failed != nil {
				failed(err)
			}
			return
		}
		if uri == nil {
			return
		}
		chosen(uri.Path())
	}, v.window)
}

func (v *View) SetDirectory(dir string) {
	v.statusBar.SetDirectory(dir)
	if dir != "" {
		v.window.SetTitle(AppName + " - " + dir)
	} else {
		v.window.SetTitle(AppName)
	}
}

func (v *View) SetRecordCount(count int) {
	v.statusBar.SetRecordCount(count)
}

func (v *View) SetStatus(status string) {
	v.statusBar.SetStatus(status)
}

func (v *View) RefreshTable() {
	v.typesTable.Refresh()
}

func (v *View) FocusEditor() {
	v.typesTable.FocusEditor()
}

// AppName is the window title prefix
const AppName = "Types Editor"
