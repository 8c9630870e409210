package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container      *fyne.Container
	statusLabel    *widget.Label
	directoryLabel *widget.Label
	countLabel     *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	directoryLabel := widget.NewLabel("No mission directory")
	directoryLabel.Truncation = fyne.TextTruncateEllipsis
	countLabel := widget.NewLabel("Records: --")

	infoContainer := container.NewHBox(
		widget.NewSeparator(),
		countLabel,
	)

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		infoContainer,
		directoryLabel,
	)

	return &StatusBar{
		container:      mainContainer,
		statusLabel:    statusLabel,
		directoryLabel: directoryLabel,
		countLabel:     countLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	if status == "" {
		status = "Ready"
	}
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetDirectory(dir string) {
	if dir == "" {
		dir = "No mission directory"
	}
	sb.directoryLabel.SetText(dir)
}

func (sb *StatusBar) SetRecordCount(count int) {
	sb.countLabel.SetText(fmt.Sprintf("Records: %d", count))
}

func (sb *StatusBar) GetRecordCount() string {
	return sb.countLabel.Text
}
