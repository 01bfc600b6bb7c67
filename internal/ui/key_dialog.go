package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// KeyDialog is the configuration screen shown until an API key is entered
type KeyDialog struct {
	entry   *widget.Entry
	content fyne.CanvasObject

	onCommit func(key string) bool
}

// NewKeyDialog creates the configuration screen. onCommit receives the
// entered text when the user presses Enter and reports whether it was
// accepted; a rejected key stays in the entry.
func NewKeyDialog(onCommit func(key string) bool) *KeyDialog {
	kd := &KeyDialog{onCommit: onCommit}
	kd.createUI()
	return kd
}

func (kd *KeyDialog) createUI() {
	kd.entry = widget.NewEntry()
	kd.entry.SetPlaceHolder(KeyPlaceholder)
	kd.entry.OnSubmitted = kd.onSubmit

	newsAPI, _ := url.Parse(NewsAPIURL)

	form := container.NewVBox(
		widget.NewLabel(KeyPrompt),
		kd.entry,
		container.NewHBox(
			widget.NewLabel(RegisterHint),
			widget.NewHyperlink(NewsAPIHost, newsAPI),
		),
	)

	card := widget.NewCard(KeyDialogTitle, "", form)
	kd.content = container.NewPadded(container.NewVBox(card))
}

func (kd *KeyDialog) onSubmit(text string) {
	if kd.onCommit == nil {
		return
	}
	kd.onCommit(text)
}

// Content returns the screen content
func (kd *KeyDialog) Content() fyne.CanvasObject {
	return kd.content
}

// Entry returns the key input
func (kd *KeyDialog) Entry() *widget.Entry {
	return kd.entry
}
