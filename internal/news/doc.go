// Package news is the newsapi.org client. It fetches top headlines over
// resty and exposes them as Headline values whose description may be absent.
// Descriptions are reduced to plain text, since the API passes publisher HTML
// through unchanged.
package news
