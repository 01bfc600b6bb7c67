package appstate

// Package appstate holds the session state of the reader: the persisted
// settings, the streamed articles and the one-shot fetch lifecycle. It has no
// GUI dependencies; the ui package calls PostRender once per frame.
