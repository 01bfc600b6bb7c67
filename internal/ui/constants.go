package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconHeading  = "📓"
	IconClose    = "❌"
	IconRefresh  = "🔄"
	IconSun      = "🌞"
	IconMoon     = "🌙"
	IconBullet   = "▶"
	IconReadMore = "⤴"
)

// Text fragments
const (
	KeyDialogTitle    = "Configuration"
	KeyPrompt         = "Enter your API KEY for newsapi.org"
	KeyPlaceholder    = "API key"
	RegisterHint      = "If you haven't registered for the API_KEY, head over to"
	ReadMoreText      = "read more " + IconReadMore
	FetchingText      = "Fetching headlines…"
	FetchFailedFormat = "Fetch failed: %v"
	NoHeadlinesText   = "No headlines"
	APISourceLabel    = "API source:"
	MadeWithText      = "Made with Fyne"
)

// URLs
const (
	NewsAPIURL  = "https://newsapi.org"
	NewsAPIHost = "newsapi.org"
	FyneURL     = "https://fyne.io"
)

// Layout sizing
const (
	Padding float32 = 5
)

// DefaultFrameInterval is used when Options.FrameInterval is not positive
const DefaultFrameInterval = 16 * time.Millisecond
