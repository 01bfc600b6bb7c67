package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// TopBar shows the heading icon and the close, refresh and theme buttons
type TopBar struct {
	closeBtn   *widget.Button
	refreshBtn *widget.Button
	themeBtn   *widget.Button
	content    *fyne.Container

	onClose       func()
	onToggleTheme func() bool
}

// NewTopBar creates the bar. onToggleTheme returns the new dark mode flag.
func NewTopBar(dark bool, onClose func(), onToggleTheme func() bool) *TopBar {
	tb := &TopBar{
		onClose:       onClose,
		onToggleTheme: onToggleTheme,
	}

	heading := widget.NewLabelWithStyle(IconHeading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	tb.closeBtn = widget.NewButton(IconClose, tb.close)
	tb.closeBtn.Importance = widget.LowImportance

	// Refreshing is not supported; the button is shown for layout only
	tb.refreshBtn = widget.NewButton(IconRefresh, nil)
	tb.refreshBtn.Importance = widget.LowImportance
	tb.refreshBtn.Disable()

	tb.themeBtn = widget.NewButton(themeIcon(dark), tb.toggleTheme)
	tb.themeBtn.Importance = widget.LowImportance

	tb.content = container.NewHBox(heading, layout.NewSpacer(), tb.closeBtn, tb.refreshBtn, tb.themeBtn)
	return tb
}

func (tb *TopBar) close() {
	if tb.onClose != nil {
		tb.onClose()
	}
}

func (tb *TopBar) toggleTheme() {
	if tb.onToggleTheme == nil {
		return
	}
	tb.SetDark(tb.onToggleTheme())
}

// SetDark updates the theme button icon
func (tb *TopBar) SetDark(dark bool) {
	tb.themeBtn.SetText(themeIcon(dark))
}

// Content returns the bar container
func (tb *TopBar) Content() fyne.CanvasObject {
	return tb.content
}

// themeIcon shows the sun in dark mode and the moon in light mode
func themeIcon(dark bool) string {
	if dark {
		return IconSun
	}
	return IconMoon
}
