package fetch

// Package fetch runs the one-shot headline fetch off the UI goroutine. A
// Worker calls the news client once and streams the result back as tagged
// model.Message values over a buffered channel that the UI drains per frame.
