package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Text and link colours per mode
var (
	DarkTextColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	DarkLinkColor  = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	LightTextColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	LightLinkColor = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// HeadlinesTheme forces the light or dark variant regardless of the system
// preference and optionally replaces the regular text font.
type HeadlinesTheme struct {
	dark bool
	font fyne.Resource
}

// NewHeadlinesTheme creates the theme; font may be nil
func NewHeadlinesTheme(dark bool, font fyne.Resource) fyne.Theme {
	return &HeadlinesTheme{dark: dark, font: font}
}

func (t *HeadlinesTheme) variant() fyne.ThemeVariant {
	if t.dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns theme colors
func (t *HeadlinesTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameForeground:
		if t.dark {
			return DarkTextColor
		}
		return LightTextColor
	case theme.ColorNameHyperlink:
		if t.dark {
			return DarkLinkColor
		}
		return LightLinkColor
	}

	return theme.DefaultTheme().Color(name, t.variant())
}

// Font returns the custom font for plain and bold text when one is loaded
func (t *HeadlinesTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace && !style.Symbol {
		return t.font
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *HeadlinesTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *HeadlinesTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return Padding
	}
	return theme.DefaultTheme().Size(name)
}
