package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// maxActivityLines caps the diagnostics pane so it never grows unbounded.
const maxActivityLines = 200

// ActivityLog is the diagnostics pane at the bottom of the window. Every
// log line emitted through the GUI logger is mirrored here.
type ActivityLog struct {
	lines []string
	list  *widget.List
}

// NewActivityLog creates an empty activity log.
func NewActivityLog() *ActivityLog {
	al := &ActivityLog{}
	al.list = widget.NewList(
		func() int { return len(al.lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(al.lines[i])
		},
	)
	return al
}

// Build returns the log pane sized to a few visible rows.
func (al *ActivityLog) Build() fyne.CanvasObject {
	scroll := container.NewVScroll(al.list)
	scroll.SetMinSize(fyne.NewSize(0, 110))
	return scroll
}

// Append adds one line and scrolls to it.
func (al *ActivityLog) Append(line string) {
	al.lines = append(al.lines, line)
	if len(al.lines) > maxActivityLines {
		al.lines = al.lines[len(al.lines)-maxActivityLines:]
	}
	al.list.Refresh()
	al.list.ScrollToBottom()
}
