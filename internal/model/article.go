package model

import "strings"

// MissingDescription replaces descriptions the news API did not provide
const MissingDescription = "..."

// Article is the display data of one news item. It is a value type and is
// never mutated after construction.
type Article struct {
	Title       string
	Description string
	URL         string
}

// NewArticle builds an Article, substituting MissingDescription when the
// description is absent or blank.
func NewArticle(title, url, description string, hasDescription bool) Article {
	if !hasDescription || strings.TrimSpace(description) == "" {
		description = MissingDescription
	}
	return Article{
		Title:       singleLine(title),
		Description: strings.TrimSpace(description),
		URL:         strings.TrimSpace(url),
	}
}

// singleLine collapses line breaks and tabs so titles render on one line
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.TrimSpace(s)
}
