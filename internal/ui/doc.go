package ui

// Package ui contains the Fyne desktop interface of the reader. It renders
// the key entry screen or the main screen from appstate.State and runs the
// frame loop that lets the state drain fetch messages on the UI goroutine.
