package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// VerticalSpacer creates a fixed-height vertical spacer for adding breathing
// room between sidebar sections.
func VerticalSpacer(height float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(nil) // Transparent
	spacer.SetMinSize(fyne.NewSize(0, height))
	return spacer
}

// NewPrimaryButton creates a button with white text on the primary
// background. Fyne only uses ColorNameForegroundOnPrimary for
// HighImportance buttons, so HighImportance is required for the effect.
func NewPrimaryButton(label string, tapped func()) *widget.Button {
	btn := widget.NewButton(label, tapped)
	btn.Importance = widget.HighImportance
	return btn
}
