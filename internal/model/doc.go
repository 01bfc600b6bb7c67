package model

// Package model defines the domain data structures shared by the fetch worker,
// the application state and the UI: article records, the fetch status enum and
// the tagged messages a fetch streams back to the UI goroutine.
