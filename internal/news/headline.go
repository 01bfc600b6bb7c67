package news

// Headline is one article as returned by the news API
type Headline struct {
	title          string
	url            string
	description    string
	hasDescription bool
}

// NewHeadline builds a Headline; a nil description marks it as absent
func NewHeadline(title, url string, description *string) Headline {
	h := Headline{title: title, url: url}
	if description != nil {
		h.description = *description
		h.hasDescription = true
	}
	return h
}

// Title returns the headline title
func (h Headline) Title() string { return h.title }

// URL returns the link to the full article
func (h Headline) URL() string { return h.url }

// Description returns the description and whether the API provided one
func (h Headline) Description() (string, bool) { return h.description, h.hasDescription }
