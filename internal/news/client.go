package news

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// API constants
const (
	TopHeadlinesPath = "/top-headlines"
	APIKeyHeader     = "X-Api-Key"
	UserAgent        = "headlines/1.0 (+https://github.com/ytget/headlines)"
	StatusOK         = "ok"
)

// ErrMissingAPIKey is returned when TopHeadlines is called without a key
var ErrMissingAPIKey = errors.New("news: api key is required")

// APIError is the error body newsapi.org returns, e.g. code "apiKeyInvalid"
type APIError struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type apiArticle struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
}

type topHeadlinesResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
}

// Client fetches top headlines for one country
type Client struct {
	http     *resty.Client
	country  string
	pageSize int
}

// NewClient creates a client against baseURL (e.g. https://newsapi.org/v2)
func NewClient(baseURL, country string, pageSize int, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     c,
		country:  country,
		pageSize: pageSize,
	}
}

// TopHeadlines performs one request and returns the headlines in API order
func (c *Client) TopHeadlines(ctx context.Context, apiKey string) ([]Headline, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	var (
		out    topHeadlinesResponse
		apiErr APIError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(APIKeyHeader, apiKey).
		SetQueryParams(map[string]string{
			"country":  c.country,
			"pageSize": strconv.Itoa(c.pageSize),
		}).
		SetResult(&out).
		SetError(&apiErr).
		Get(TopHeadlinesPath)
	if err != nil {
		return nil, fmt.Errorf("requesting top headlines: %w", err)
	}

	if resp.IsError() {
		if apiErr.Message != "" || apiErr.Code != "" {
			apiErr.StatusCode = resp.StatusCode()
			return nil, &apiErr
		}
		return nil, fmt.Errorf("requesting top headlines: unexpected status %s", resp.Status())
	}

	if out.Status != StatusOK {
		return nil, fmt.Errorf("requesting top headlines: unexpected response status %q", out.Status)
	}

	headlines := make([]Headline, 0, len(out.Articles))
	for _, a := range out.Articles {
		headlines = append(headlines, NewHeadline(a.Title, a.URL, cleanDescription(a.Description)))
	}
	return headlines, nil
}

// cleanDescription turns publisher HTML into plain text. A description that
// is empty once cleaned counts as absent.
func cleanDescription(description *string) *string {
	if description == nil {
		return nil
	}

	text := *description
	if strings.ContainsAny(text, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
			text = doc.Text()
		}
	}
	text = strings.Join(strings.Fields(text), " ")

	if text == "" {
		return nil
	}
	return &text
}
