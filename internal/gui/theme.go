package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// spectralTheme is a custom theme for the Spectral Preprocessing Tool.
type spectralTheme struct{}

func (t *spectralTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF} // slate
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x34, G: 0x49, B: 0x5E, A: 0xFF}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *spectralTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *spectralTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *spectralTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	default:
		return theme.DefaultTheme().Size(name)
	}
}
