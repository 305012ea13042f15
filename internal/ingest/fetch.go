// Package ingest turns live job-posting URLs and generated sample corpora
// into Job documents ready for matching.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies posting fetches to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; HireSkill/1.0)"

// Page holds the raw and extracted content of a fetched posting.
type Page struct {
	URL        string
	HTML       string
	Title      string
	Text       string
	StatusCode int
}

// FetchError wraps a failure while retrieving or parsing one posting URL.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest: %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest: %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// FetchOptions configure posting retrieval.
type FetchOptions struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultFetchOptions returns the defaults used by the CLI.
func DefaultFetchOptions() *FetchOptions {
	return &FetchOptions{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FetchPage retrieves a posting URL and extracts its visible text.
func FetchPage(ctx context.Context, urlStr string, opts *FetchOptions) (*Page, error) {
	if opts == nil {
		opts = DefaultFetchOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &Page{URL: urlStr, HTML: string(body), StatusCode: resp.StatusCode},
			&FetchError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	page := &Page{URL: urlStr, HTML: string(body), StatusCode: resp.StatusCode}
	if err := page.extract(); err != nil {
		return nil, &FetchError{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}
	return page, nil
}

// postingSelectors locate the description block on common job board layouts.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// extract parses the page HTML, fills Title, and pulls the posting text out
// of the first matching content selector, falling back to the body.
func (p *Page) extract() error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.HTML))
	if err != nil {
		return err
	}

	p.Title = strings.TrimSpace(doc.Find("title").First().Text())
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		p.Title = h1
	}

	doc.Find("nav, footer, header, script, style, noscript, form, .sidebar, .cookie-banner, .social-share").Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	p.Text = collapseWhitespace(content.Text())
	return nil
}

// collapseWhitespace trims each line and drops blank ones.
func collapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
